package bookings

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, bookingModel *models.Booking) (string, error) {
	args := m.Called(ctx, bookingModel)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Booking, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, bookingModel *models.Booking) error {
	args := m.Called(ctx, bookingModel)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteByID(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockBookingRepository) DistinctDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockBookingRepository) NextBookingNumber(ctx context.Context, clinicID primitive.ObjectID, date time.Time) (int64, error) {
	args := m.Called(ctx, clinicID, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountForClinicBetween(ctx context.Context, clinicID primitive.ObjectID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, clinicID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockClinicProvider struct {
	mock.Mock
}

func (m *MockClinicProvider) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Clinic), args.Error(1)
}

func (m *MockClinicProvider) IncrementTotalBookings(ctx context.Context, clinicID primitive.ObjectID, delta int64) error {
	args := m.Called(ctx, clinicID, delta)
	return args.Error(0)
}

type MockReservationWriter struct {
	mock.Mock
}

func (m *MockReservationWriter) PushReservation(ctx context.Context, userID primitive.ObjectID, reservation models.Reservation) error {
	args := m.Called(ctx, userID, reservation)
	return args.Error(0)
}

func (m *MockReservationWriter) UpdateReservationStatus(ctx context.Context, userID, bookingID primitive.ObjectID, status string) error {
	args := m.Called(ctx, userID, bookingID, status)
	return args.Error(0)
}

func (m *MockReservationWriter) PullReservation(ctx context.Context, userID, bookingID primitive.ObjectID) error {
	args := m.Called(ctx, userID, bookingID)
	return args.Error(0)
}

func newBookingUsecaseWithMocks() (BookingUsecase, *MockBookingRepository, *MockClinicProvider, *MockReservationWriter) {
	bookingRepository := new(MockBookingRepository)
	clinicProvider := new(MockClinicProvider)
	reservationWriter := new(MockReservationWriter)
	usecase := NewBookingUsecase(bookingRepository, clinicProvider, reservationWriter, zap.NewNop())
	return usecase, bookingRepository, clinicProvider, reservationWriter
}

func validCreateBookingRequest(clinicID primitive.ObjectID) *requests.CreateBooking {
	return &requests.CreateBooking{
		ClinicID:      clinicID.Hex(),
		ClientName:    "Ahmed Ali",
		ClientEmail:   "ahmed@example.com",
		ClientPhone:   "0501234567",
		ClientAddress: "Riyadh",
		Date:          "2026-09-15",
		Time:          "10:30",
	}
}

func TestCreateBooking(t *testing.T) {
	clinicID := primitive.NewObjectID()
	clinic := &models.Clinic{
		ID:   clinicID,
		Name: models.LocalizedText{Ar: "عيادة الأسنان", En: "Dental Clinic"},
	}

	t.Run("Guest booking gets counter number, code and pending status", func(t *testing.T) {
		usecase, bookingRepository, clinicProvider, reservationWriter := newBookingUsecaseWithMocks()

		clinicProvider.On("FindByID", mock.Anything, clinicID.Hex()).Return(clinic, nil)
		bookingRepository.On("NextBookingNumber", mock.Anything, clinicID, mock.AnythingOfType("time.Time")).Return(int64(3), nil)
		bookingRepository.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(primitive.NewObjectID().Hex(), nil)
		clinicProvider.On("IncrementTotalBookings", mock.Anything, clinicID, int64(1)).Return(nil)

		result, err := usecase.CreateBooking(context.Background(), validCreateBookingRequest(clinicID), nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), result.BookingNumber)
		assert.Equal(t, constvars.BookingStatusPending, result.Status)
		assert.Equal(t, "عيادة الأسنان", result.ClinicName)

		code, convErr := strconv.Atoi(result.ConfirmationCode)
		assert.NoError(t, convErr)
		assert.GreaterOrEqual(t, code, constvars.ConfirmationCodeMin)
		assert.LessOrEqual(t, code, constvars.ConfirmationCodeMax)

		reservationWriter.AssertNotCalled(t, "PushReservation")
		bookingRepository.AssertExpectations(t)
		clinicProvider.AssertExpectations(t)
	})

	t.Run("Authenticated booking is mirrored into the user's reservations", func(t *testing.T) {
		usecase, bookingRepository, clinicProvider, reservationWriter := newBookingUsecaseWithMocks()

		userID := primitive.NewObjectID()
		session := &models.Session{UserID: userID.Hex(), Role: constvars.RoleUser}

		clinicProvider.On("FindByID", mock.Anything, clinicID.Hex()).Return(clinic, nil)
		bookingRepository.On("NextBookingNumber", mock.Anything, clinicID, mock.AnythingOfType("time.Time")).Return(int64(1), nil)
		bookingRepository.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(primitive.NewObjectID().Hex(), nil)
		reservationWriter.On("PushReservation", mock.Anything, userID, mock.MatchedBy(func(reservation models.Reservation) bool {
			return !reservation.BookingID.IsZero() &&
				reservation.Status == constvars.BookingStatusPending &&
				reservation.ClinicName == "عيادة الأسنان"
		})).Return(nil)
		clinicProvider.On("IncrementTotalBookings", mock.Anything, clinicID, int64(1)).Return(nil)

		result, err := usecase.CreateBooking(context.Background(), validCreateBookingRequest(clinicID), session)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.BookingNumber)
		reservationWriter.AssertExpectations(t)
	})

	t.Run("Unknown clinic fails with not found", func(t *testing.T) {
		usecase, _, clinicProvider, _ := newBookingUsecaseWithMocks()

		missingID := primitive.NewObjectID()
		clinicProvider.On("FindByID", mock.Anything, missingID.Hex()).Return(nil, nil)

		_, err := usecase.CreateBooking(context.Background(), validCreateBookingRequest(missingID), nil)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Malformed date fails before allocating a number", func(t *testing.T) {
		usecase, bookingRepository, clinicProvider, _ := newBookingUsecaseWithMocks()

		clinicProvider.On("FindByID", mock.Anything, clinicID.Hex()).Return(clinic, nil)

		request := validCreateBookingRequest(clinicID)
		request.Date = "15/09/2026"

		_, err := usecase.CreateBooking(context.Background(), request, nil)

		assert.Error(t, err)
		bookingRepository.AssertNotCalled(t, "NextBookingNumber")
	})
}

func TestCancelBooking(t *testing.T) {
	ownerID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	newPendingBooking := func() *models.Booking {
		return &models.Booking{
			ID:     bookingID,
			Clinic: primitive.NewObjectID(),
			User:   &ownerID,
			Status: constvars.BookingStatusPending,
		}
	}

	t.Run("Owner can cancel and the reservation mirror follows", func(t *testing.T) {
		usecase, bookingRepository, _, reservationWriter := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(newPendingBooking(), nil)
		bookingRepository.On("UpdateBooking", mock.Anything, mock.MatchedBy(func(booking *models.Booking) bool {
			return booking.Status == constvars.BookingStatusCancelled
		})).Return(nil)
		reservationWriter.On("UpdateReservationStatus", mock.Anything, ownerID, bookingID, constvars.BookingStatusCancelled).Return(nil)

		session := &models.Session{UserID: ownerID.Hex(), Role: constvars.RoleUser}
		result, err := usecase.CancelBooking(context.Background(), bookingID.Hex(), session)

		assert.NoError(t, err)
		assert.Equal(t, constvars.BookingStatusCancelled, result.Status)
		reservationWriter.AssertExpectations(t)
	})

	t.Run("Another user is rejected", func(t *testing.T) {
		usecase, bookingRepository, _, reservationWriter := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(newPendingBooking(), nil)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleUser}
		_, err := usecase.CancelBooking(context.Background(), bookingID.Hex(), session)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNotBookingOwner, customErr.ClientMessage)
		reservationWriter.AssertNotCalled(t, "UpdateReservationStatus")
	})

	t.Run("Admin can cancel any booking", func(t *testing.T) {
		usecase, bookingRepository, _, reservationWriter := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(newPendingBooking(), nil)
		bookingRepository.On("UpdateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)
		reservationWriter.On("UpdateReservationStatus", mock.Anything, ownerID, bookingID, constvars.BookingStatusCancelled).Return(nil)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}
		result, err := usecase.CancelBooking(context.Background(), bookingID.Hex(), session)

		assert.NoError(t, err)
		assert.Equal(t, constvars.BookingStatusCancelled, result.Status)
	})

	t.Run("Missing booking fails with not found", func(t *testing.T) {
		usecase, bookingRepository, _, _ := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(nil, nil)

		session := &models.Session{UserID: ownerID.Hex(), Role: constvars.RoleUser}
		_, err := usecase.CancelBooking(context.Background(), bookingID.Hex(), session)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDeleteBooking(t *testing.T) {
	ownerID := primitive.NewObjectID()
	clinicID := primitive.NewObjectID()
	bookingID := primitive.NewObjectID()

	newOwnedBooking := func() *models.Booking {
		return &models.Booking{
			ID:     bookingID,
			Clinic: clinicID,
			User:   &ownerID,
			Status: constvars.BookingStatusPending,
		}
	}

	t.Run("Owner deletion pulls the reservation and decrements the clinic total", func(t *testing.T) {
		usecase, bookingRepository, clinicProvider, reservationWriter := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(newOwnedBooking(), nil)
		bookingRepository.On("DeleteByID", mock.Anything, bookingID.Hex()).Return(nil)
		reservationWriter.On("PullReservation", mock.Anything, ownerID, bookingID).Return(nil)
		clinicProvider.On("IncrementTotalBookings", mock.Anything, clinicID, int64(-1)).Return(nil)

		session := &models.Session{UserID: ownerID.Hex(), Role: constvars.RoleUser}
		err := usecase.DeleteBooking(context.Background(), bookingID.Hex(), session)

		assert.NoError(t, err)
		bookingRepository.AssertExpectations(t)
		reservationWriter.AssertExpectations(t)
		clinicProvider.AssertExpectations(t)
	})

	t.Run("Another user is rejected", func(t *testing.T) {
		usecase, bookingRepository, _, reservationWriter := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(newOwnedBooking(), nil)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleUser}
		err := usecase.DeleteBooking(context.Background(), bookingID.Hex(), session)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientNotBookingOwner, customErr.ClientMessage)
		bookingRepository.AssertNotCalled(t, "DeleteByID")
		reservationWriter.AssertNotCalled(t, "PullReservation")
	})

	t.Run("Admin can delete any booking", func(t *testing.T) {
		usecase, bookingRepository, clinicProvider, reservationWriter := newBookingUsecaseWithMocks()

		bookingRepository.On("FindByID", mock.Anything, bookingID.Hex()).Return(newOwnedBooking(), nil)
		bookingRepository.On("DeleteByID", mock.Anything, bookingID.Hex()).Return(nil)
		reservationWriter.On("PullReservation", mock.Anything, ownerID, bookingID).Return(nil)
		clinicProvider.On("IncrementTotalBookings", mock.Anything, clinicID, int64(-1)).Return(nil)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleAdmin}
		err := usecase.DeleteBooking(context.Background(), bookingID.Hex(), session)

		assert.NoError(t, err)
		bookingRepository.AssertExpectations(t)
	})

	t.Run("Guest booking deletion skips the reservation mirror", func(t *testing.T) {
		usecase, bookingRepository, clinicProvider, reservationWriter := newBookingUsecaseWithMocks()

		guestBookingID := primitive.NewObjectID()
		booking := &models.Booking{
			ID:     guestBookingID,
			Clinic: clinicID,
			Status: constvars.BookingStatusPending,
		}

		bookingRepository.On("FindByID", mock.Anything, guestBookingID.Hex()).Return(booking, nil)
		bookingRepository.On("DeleteByID", mock.Anything, guestBookingID.Hex()).Return(nil)
		clinicProvider.On("IncrementTotalBookings", mock.Anything, clinicID, int64(-1)).Return(nil)

		session := &models.Session{UserID: primitive.NewObjectID().Hex(), Role: constvars.RoleUser}
		err := usecase.DeleteBooking(context.Background(), guestBookingID.Hex(), session)

		assert.NoError(t, err)
		reservationWriter.AssertNotCalled(t, "PullReservation")
	})
}

func TestGetValidDates(t *testing.T) {
	usecase, bookingRepository, _, _ := newBookingUsecaseWithMocks()

	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	bookingRepository.On("DistinctDates", mock.Anything).Return([]time.Time{
		day,
		day.Add(2 * time.Hour),
		day.AddDate(0, 0, 1),
	}, nil)

	result, err := usecase.GetValidDates(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-09-15", "2026-09-16"}, result.Dates)
}
