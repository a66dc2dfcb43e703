package bookings

import (
	"context"
	"sort"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository BookingRepository
	ClinicProvider    ClinicProvider
	ReservationWriter ReservationWriter
	Log               *zap.Logger
}

func NewBookingUsecase(
	bookingRepository BookingRepository,
	clinicProvider ClinicProvider,
	reservationWriter ReservationWriter,
	logger *zap.Logger,
) BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingRepository,
		ClinicProvider:    clinicProvider,
		ReservationWriter: reservationWriter,
		Log:               logger,
	}
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking, session *models.Session) (*responses.Booking, error) {
	clinic, err := uc.ClinicProvider.FindByID(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	bookingDate, err := utils.ParseBookingDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	bookingNumber, err := uc.BookingRepository.NextBookingNumber(ctx, clinic.ID, bookingDate)
	if err != nil {
		return nil, err
	}

	confirmationCode, err := utils.GenerateConfirmationCode()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	now := time.Now()
	bookingModel := &models.Booking{
		Clinic:           clinic.ID,
		ClinicName:       clinic.Name.Ar,
		ClientName:       request.ClientName,
		ClientEmail:      request.ClientEmail,
		ClientPhone:      request.ClientPhone,
		ClientAddress:    request.ClientAddress,
		Date:             bookingDate,
		Time:             request.Time,
		Notes:            request.Notes,
		BookingNumber:    bookingNumber,
		ConfirmationCode: confirmationCode,
		Status:           constvars.BookingStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if session != nil {
		userID, err := primitive.ObjectIDFromHex(session.UserID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		bookingModel.User = &userID
	}

	bookingID, err := uc.BookingRepository.CreateBooking(ctx, bookingModel)
	if err != nil {
		return nil, err
	}

	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	bookingModel.ID = objectID

	if bookingModel.User != nil {
		reservation := models.Reservation{
			BookingID:  bookingModel.ID,
			ClinicName: bookingModel.ClinicName,
			Date:       bookingModel.Date,
			Time:       bookingModel.Time,
			Status:     bookingModel.Status,
		}
		if err := uc.ReservationWriter.PushReservation(ctx, *bookingModel.User, reservation); err != nil {
			return nil, err
		}
	}

	if err := uc.ClinicProvider.IncrementTotalBookings(ctx, clinic.ID, 1); err != nil {
		return nil, err
	}

	return buildBookingResponse(bookingModel), nil
}

func (uc *bookingUsecase) GetAllBookings(ctx context.Context, page, pageSize int) ([]responses.Booking, int, error) {
	bookingsList, err := uc.BookingRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.BookingRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Booking, 0, len(bookingsList))
	for i := range bookingsList {
		result = append(result, *buildBookingResponse(&bookingsList[i]))
	}
	return result, int(total), nil
}

func (uc *bookingUsecase) GetMyBookings(ctx context.Context, sessionUserID string) ([]responses.Booking, error) {
	userID, err := primitive.ObjectIDFromHex(sessionUserID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	bookingsList, err := uc.BookingRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Booking, 0, len(bookingsList))
	for i := range bookingsList {
		result = append(result, *buildBookingResponse(&bookingsList[i]))
	}
	return result, nil
}

func (uc *bookingUsecase) GetValidDates(ctx context.Context) (*responses.ValidDates, error) {
	dates, err := uc.BookingRepository.DistinctDates(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(dates))
	formatted := make([]string, 0, len(dates))
	for _, date := range dates {
		day := date.Format("2006-01-02")
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		formatted = append(formatted, day)
	}
	sort.Strings(formatted)

	return &responses.ValidDates{Dates: formatted}, nil
}

func (uc *bookingUsecase) CancelBooking(ctx context.Context, bookingID string, session *models.Session) (*responses.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	if session.Role != constvars.RoleAdmin && booking.User != nil && booking.User.Hex() != session.UserID {
		return nil, exceptions.ErrNotBookingOwner(nil)
	}

	booking.Status = constvars.BookingStatusCancelled
	booking.UpdatedAt = time.Now()

	if err := uc.BookingRepository.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if booking.User != nil {
		if err := uc.ReservationWriter.UpdateReservationStatus(ctx, *booking.User, booking.ID, constvars.BookingStatusCancelled); err != nil {
			return nil, err
		}
	}

	return buildBookingResponse(booking), nil
}

func (uc *bookingUsecase) DeleteBooking(ctx context.Context, bookingID string, session *models.Session) error {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking == nil {
		return exceptions.ErrBookingNotFound(nil)
	}

	if session.Role != constvars.RoleAdmin && booking.User != nil && booking.User.Hex() != session.UserID {
		return exceptions.ErrNotBookingOwner(nil)
	}

	if err := uc.BookingRepository.DeleteByID(ctx, bookingID); err != nil {
		return err
	}

	if booking.User != nil {
		if err := uc.ReservationWriter.PullReservation(ctx, *booking.User, booking.ID); err != nil {
			return err
		}
	}

	// The booking document is already gone, so a failed counter decrement
	// only skews the clinic total.
	if err := uc.ClinicProvider.IncrementTotalBookings(ctx, booking.Clinic, -1); err != nil {
		uc.Log.Warn("failed to decrement clinic booking counter",
			zap.String("clinic_id", booking.Clinic.Hex()),
			zap.Error(err),
		)
	}
	return nil
}

func buildBookingResponse(booking *models.Booking) *responses.Booking {
	return &responses.Booking{
		ID:               booking.ID.Hex(),
		ClinicID:         booking.Clinic.Hex(),
		ClinicName:       booking.ClinicName,
		ClientName:       booking.ClientName,
		ClientEmail:      booking.ClientEmail,
		ClientPhone:      booking.ClientPhone,
		ClientAddress:    booking.ClientAddress,
		Date:             booking.Date,
		Time:             booking.Time,
		Notes:            booking.Notes,
		BookingNumber:    booking.BookingNumber,
		ConfirmationCode: booking.ConfirmationCode,
		Status:           booking.Status,
		CreatedAt:        booking.CreatedAt,
	}
}
