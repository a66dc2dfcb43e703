package users

import (
	"context"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserUsecase interface {
	GetAllUsers(ctx context.Context, page, pageSize int) ([]responses.User, int, error)
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
	GetUserProfileBySession(ctx context.Context, sessionUserID string) (*responses.User, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.User, error)
	CountAll(ctx context.Context) (int64, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByResetToken(ctx context.Context, hashedToken string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	DeleteByID(ctx context.Context, userID string) error
	PushReservation(ctx context.Context, userID primitive.ObjectID, reservation models.Reservation) error
	UpdateReservationStatus(ctx context.Context, userID, bookingID primitive.ObjectID, status string) error
	PullReservation(ctx context.Context, userID, bookingID primitive.ObjectID) error
}
