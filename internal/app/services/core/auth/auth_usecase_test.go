package auth

import (
	"context"
	"testing"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.User, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, hashedToken string) (*models.User, error) {
	args := m.Called(ctx, hashedToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	args := m.Called(ctx, userModel)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) PushReservation(ctx context.Context, userID primitive.ObjectID, reservation models.Reservation) error {
	args := m.Called(ctx, userID, reservation)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateReservationStatus(ctx context.Context, userID, bookingID primitive.ObjectID, status string) error {
	args := m.Called(ctx, userID, bookingID, status)
	return args.Error(0)
}

func (m *MockUserRepository) PullReservation(ctx context.Context, userID, bookingID primitive.ObjectID) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) QueueEmail(ctx context.Context, payload contracts.EmailPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newAuthUsecaseWithMocks() (AuthUsecase, *MockUserRepository, *MockSessionService, *MockMailerService) {
	userRepository := new(MockUserRepository)
	sessionService := new(MockSessionService)
	mailerService := new(MockMailerService)

	internalConfig := &config.InternalConfig{
		App: config.App{
			ResetPasswordUrl:                   "https://clinic.example.com/reset-password",
			ForgotPasswordTokenExpTimeInMinute: 10,
		},
		JWT: config.JWT{Secret: "test-jwt-secret", ExpTimeInHour: 24},
	}

	usecase := NewAuthUsecase(userRepository, sessionService, mailerService, internalConfig)
	return usecase, userRepository, sessionService, mailerService
}

func TestRegister(t *testing.T) {
	request := &requests.RegisterUser{
		Name:     "Ahmed Ali",
		Email:    "ahmed@example.com",
		Password: "strong-password",
		Phone:    "0501234567",
	}

	t.Run("New email creates a user with a hashed password", func(t *testing.T) {
		usecase, userRepository, _, _ := newAuthUsecaseWithMocks()

		userRepository.On("FindByEmail", mock.Anything, request.Email).Return(nil, nil)
		userRepository.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RoleUser &&
				user.Password != request.Password &&
				utils.CheckPasswordHash(request.Password, user.Password)
		})).Return(primitive.NewObjectID().Hex(), nil)

		result, err := usecase.Register(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, request.Email, result.Email)
		assert.Equal(t, constvars.RoleUser, result.Role)
		userRepository.AssertExpectations(t)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		usecase, userRepository, _, _ := newAuthUsecaseWithMocks()

		userRepository.On("FindByEmail", mock.Anything, request.Email).Return(&models.User{Email: request.Email}, nil)

		_, err := usecase.Register(context.Background(), request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)
		userRepository.AssertNotCalled(t, "CreateUser")
	})
}

func TestLogin(t *testing.T) {
	password := "strong-password"
	hashedPassword, err := utils.HashPassword(password)
	assert.NoError(t, err)

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Name:     "Ahmed Ali",
		Email:    "ahmed@example.com",
		Password: hashedPassword,
		Role:     constvars.RoleUser,
	}

	t.Run("Valid credentials open a session and return a parseable token", func(t *testing.T) {
		usecase, userRepository, sessionService, _ := newAuthUsecaseWithMocks()

		userRepository.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		var storedSession models.Session
		sessionService.On("CreateSession", mock.Anything, mock.MatchedBy(func(session models.Session) bool {
			storedSession = session
			return session.UserID == user.ID.Hex() && session.Role == constvars.RoleUser
		}), 24*time.Hour).Return(nil)

		result, err := usecase.Login(context.Background(), &requests.LoginUser{Email: user.Email, Password: password})

		assert.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), result.User.ID)

		sessionID, err := utils.ParseSessionJWT(result.Token, "test-jwt-secret")
		assert.NoError(t, err)
		assert.Equal(t, storedSession.SessionID, sessionID)
		sessionService.AssertExpectations(t)
	})

	t.Run("Wrong password is rejected without opening a session", func(t *testing.T) {
		usecase, userRepository, sessionService, _ := newAuthUsecaseWithMocks()

		userRepository.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := usecase.Login(context.Background(), &requests.LoginUser{Email: user.Email, Password: "wrong-password"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		sessionService.AssertNotCalled(t, "CreateSession")
	})

	t.Run("Unknown email gets the same rejection as a wrong password", func(t *testing.T) {
		usecase, userRepository, _, _ := newAuthUsecaseWithMocks()

		userRepository.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		_, err := usecase.Login(context.Background(), &requests.LoginUser{Email: "nobody@example.com", Password: password})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
	})
}

func TestForgotPassword(t *testing.T) {
	t.Run("Known email stores a hashed token and queues the reset mail", func(t *testing.T) {
		usecase, userRepository, _, mailerService := newAuthUsecaseWithMocks()

		user := &models.User{
			ID:    primitive.NewObjectID(),
			Email: "ahmed@example.com",
		}

		userRepository.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		userRepository.On("UpdateUser", mock.Anything, mock.MatchedBy(func(updated *models.User) bool {
			return updated.ResetPasswordToken != "" &&
				updated.ResetPasswordExpires != nil &&
				updated.ResetPasswordExpires.After(time.Now())
		})).Return(nil)
		mailerService.On("QueueEmail", mock.Anything, mock.MatchedBy(func(payload contracts.EmailPayload) bool {
			return payload.ReceiverEmail == user.Email
		})).Return(nil)

		err := usecase.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: user.Email})

		assert.NoError(t, err)
		userRepository.AssertExpectations(t)
		mailerService.AssertExpectations(t)
	})

	t.Run("Unknown email fails with not found", func(t *testing.T) {
		usecase, userRepository, _, mailerService := newAuthUsecaseWithMocks()

		userRepository.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		err := usecase.ForgotPassword(context.Background(), &requests.ForgotPassword{Email: "nobody@example.com"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mailerService.AssertNotCalled(t, "QueueEmail")
	})
}

func TestResetPassword(t *testing.T) {
	rawToken := "raw-reset-token"
	hashedToken := utils.HashResetPasswordToken(rawToken)

	t.Run("Valid token replaces the password and clears the token", func(t *testing.T) {
		usecase, userRepository, _, _ := newAuthUsecaseWithMocks()

		expiresAt := time.Now().Add(5 * time.Minute)
		user := &models.User{
			ID:                   primitive.NewObjectID(),
			Email:                "ahmed@example.com",
			Password:             "old-hash",
			ResetPasswordToken:   hashedToken,
			ResetPasswordExpires: &expiresAt,
		}

		userRepository.On("FindByResetToken", mock.Anything, hashedToken).Return(user, nil)
		userRepository.On("UpdateUser", mock.Anything, mock.MatchedBy(func(updated *models.User) bool {
			return updated.ResetPasswordToken == "" &&
				updated.ResetPasswordExpires == nil &&
				utils.CheckPasswordHash("new-password", updated.Password)
		})).Return(nil)

		err := usecase.ResetPassword(context.Background(), &requests.ResetPassword{Token: rawToken, Password: "new-password"})

		assert.NoError(t, err)
		userRepository.AssertExpectations(t)
	})

	t.Run("Expired token is rejected", func(t *testing.T) {
		usecase, userRepository, _, _ := newAuthUsecaseWithMocks()

		expiresAt := time.Now().Add(-time.Minute)
		user := &models.User{
			ID:                   primitive.NewObjectID(),
			ResetPasswordToken:   hashedToken,
			ResetPasswordExpires: &expiresAt,
		}

		userRepository.On("FindByResetToken", mock.Anything, hashedToken).Return(user, nil)

		err := usecase.ResetPassword(context.Background(), &requests.ResetPassword{Token: rawToken, Password: "new-password"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode)
		userRepository.AssertNotCalled(t, "UpdateUser")
	})

	t.Run("Unknown token is rejected", func(t *testing.T) {
		usecase, userRepository, _, _ := newAuthUsecaseWithMocks()

		userRepository.On("FindByResetToken", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)

		err := usecase.ResetPassword(context.Background(), &requests.ResetPassword{Token: "bogus", Password: "new-password"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	usecase, _, sessionService, _ := newAuthUsecaseWithMocks()

	sessionService.On("DeleteSession", mock.Anything, "session-123").Return(nil)

	err := usecase.Logout(context.Background(), "session-123")

	assert.NoError(t, err)
	sessionService.AssertExpectations(t)
}
