package bookings

import (
	"context"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking, session *models.Session) (*responses.Booking, error)
	GetAllBookings(ctx context.Context, page, pageSize int) ([]responses.Booking, int, error)
	GetMyBookings(ctx context.Context, sessionUserID string) ([]responses.Booking, error)
	GetValidDates(ctx context.Context) (*responses.ValidDates, error)
	CancelBooking(ctx context.Context, bookingID string, session *models.Session) (*responses.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string, session *models.Session) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, bookingModel *models.Booking) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Booking, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, bookingModel *models.Booking) error
	DeleteByID(ctx context.Context, bookingID string) error
	DistinctDates(ctx context.Context) ([]time.Time, error)
	NextBookingNumber(ctx context.Context, clinicID primitive.ObjectID, date time.Time) (int64, error)
	CountForClinicBetween(ctx context.Context, clinicID primitive.ObjectID, from, to time.Time) (int64, error)
}

// ClinicProvider is the slice of the clinic repository booking flows
// depend on.
type ClinicProvider interface {
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	IncrementTotalBookings(ctx context.Context, clinicID primitive.ObjectID, delta int64) error
}

// ReservationWriter mirrors booking lifecycle changes into the owning
// user's reservation list.
type ReservationWriter interface {
	PushReservation(ctx context.Context, userID primitive.ObjectID, reservation models.Reservation) error
	UpdateReservationStatus(ctx context.Context, userID, bookingID primitive.ObjectID, status string) error
	PullReservation(ctx context.Context, userID, bookingID primitive.ObjectID) error
}
