package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/users"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository users.UserRepository
	SessionService contracts.SessionService
	MailerService  contracts.MailerService
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	userRepository users.UserRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		MailerService:  mailerService,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Register, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Name:         request.Name,
		Email:        request.Email,
		Password:     hashedPassword,
		Phone:        request.Phone,
		Address:      request.Address,
		Role:         constvars.RoleUser,
		Reservations: []models.Reservation{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		ID:    userID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		Role:      user.Role,
	}

	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	if err := uc.SessionService.CreateSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	reservations := make([]responses.Reservation, 0, len(user.Reservations))
	for _, reservation := range user.Reservations {
		reservations = append(reservations, responses.Reservation{
			BookingID:  reservation.BookingID.Hex(),
			ClinicName: reservation.ClinicName,
			Date:       reservation.Date,
			Time:       reservation.Time,
			Status:     reservation.Status,
		})
	}

	return &responses.Login{
		Token: token,
		User: responses.User{
			ID:           user.ID.Hex(),
			Name:         user.Name,
			Email:        user.Email,
			Phone:        user.Phone,
			Address:      user.Address,
			Role:         user.Role,
			Reservations: reservations,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		},
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}

	rawToken, hashedToken, err := utils.GenerateResetPasswordToken()
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	expiryMinutes := uc.InternalConfig.App.ForgotPasswordTokenExpTimeInMinute
	expiresAt := time.Now().Add(time.Duration(expiryMinutes) * time.Minute)
	user.ResetPasswordToken = hashedToken
	user.ResetPasswordExpires = &expiresAt
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", uc.InternalConfig.App.ResetPasswordUrl, rawToken)
	payload := contracts.EmailPayload{
		ReceiverEmail: user.Email,
		Subject:       constvars.EmailResetPasswordSubject,
		Body:          fmt.Sprintf(constvars.EmailResetPasswordBodyFormat, expiryMinutes, resetLink),
	}
	return uc.MailerService.QueueEmail(ctx, payload)
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	hashedToken := utils.HashResetPasswordToken(request.Token)

	user, err := uc.UserRepository.FindByResetToken(ctx, hashedToken)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrTokenInvalidOrExpired(nil)
	}
	if user.ResetPasswordExpires == nil || time.Now().After(*user.ResetPasswordExpires) {
		return exceptions.ErrResetPasswordTokenExpired(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	user.Password = hashedPassword
	user.ResetPasswordToken = ""
	user.ResetPasswordExpires = nil
	user.UpdatedAt = time.Now()

	return uc.UserRepository.UpdateUser(ctx, user)
}
