package users

import (
	"context"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository UserRepository
}

func NewUserUsecase(userRepository UserRepository) UserUsecase {
	return &userUsecase{UserRepository: userRepository}
}

func (uc *userUsecase) GetAllUsers(ctx context.Context, page, pageSize int) ([]responses.User, int, error) {
	total, err := uc.UserRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	userModels, err := uc.UserRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	users := make([]responses.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *buildUserResponse(&userModels[i]))
	}
	return users, int(total), nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return buildUserResponse(user), nil
}

func (uc *userUsecase) GetUserProfileBySession(ctx context.Context, sessionUserID string) (*responses.User, error) {
	return uc.GetUserByID(ctx, sessionUserID)
}

func (uc *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}
	if request.Address != "" {
		user.Address = request.Address
	}
	if request.Role != "" {
		user.Role = request.Role
	}
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return buildUserResponse(user), nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}
	return uc.UserRepository.DeleteByID(ctx, userID)
}

func buildUserResponse(user *models.User) *responses.User {
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

	return &responses.User{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Address:      user.Address,
		Role:         user.Role,
		Reservations: reservations,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
