package clinics

import (
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockClinicRepository struct {
	mock.Mock
}

func (m *MockClinicRepository) CreateClinic(ctx context.Context, clinicModel *models.Clinic) (string, error) {
	args := m.Called(ctx, clinicModel)
	return args.String(0), args.Error(1)
}

func (m *MockClinicRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Clinic), args.Error(1)
}

func (m *MockClinicRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Clinic), args.Error(1)
}

func (m *MockClinicRepository) FindByIDs(ctx context.Context, clinicIDs []primitive.ObjectID) ([]models.Clinic, error) {
	args := m.Called(ctx, clinicIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Clinic), args.Error(1)
}

func (m *MockClinicRepository) UpdateClinic(ctx context.Context, clinicModel *models.Clinic) error {
	args := m.Called(ctx, clinicModel)
	return args.Error(0)
}

func (m *MockClinicRepository) DeleteByID(ctx context.Context, clinicID string) error {
	args := m.Called(ctx, clinicID)
	return args.Error(0)
}

func (m *MockClinicRepository) AddDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error {
	args := m.Called(ctx, clinicID, doctorIDs)
	return args.Error(0)
}

func (m *MockClinicRepository) PullDoctorFromAll(ctx context.Context, doctorID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

func (m *MockClinicRepository) PushVideos(ctx context.Context, clinicID primitive.ObjectID, videos []models.ClinicVideo) error {
	args := m.Called(ctx, clinicID, videos)
	return args.Error(0)
}

func (m *MockClinicRepository) PullVideo(ctx context.Context, clinicID, videoID primitive.ObjectID) error {
	args := m.Called(ctx, clinicID, videoID)
	return args.Error(0)
}

func (m *MockClinicRepository) IncrementTotalBookings(ctx context.Context, clinicID primitive.ObjectID, delta int64) error {
	args := m.Called(ctx, clinicID, delta)
	return args.Error(0)
}

type MockDoctorLinker struct {
	mock.Mock
}

func (m *MockDoctorLinker) CountByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, doctorIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorLinker) FindByClinicID(ctx context.Context, clinicID primitive.ObjectID) ([]models.Doctor, error) {
	args := m.Called(ctx, clinicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorLinker) AddClinicToDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error {
	args := m.Called(ctx, clinicID, doctorIDs)
	return args.Error(0)
}

func (m *MockDoctorLinker) PullClinicFromAll(ctx context.Context, clinicID primitive.ObjectID) error {
	args := m.Called(ctx, clinicID)
	return args.Error(0)
}

type MockBookingStatsProvider struct {
	mock.Mock
}

func (m *MockBookingStatsProvider) CountForClinicBetween(ctx context.Context, clinicID primitive.ObjectID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, clinicID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, string, error) {
	args := m.Called(ctx, file, fileHeader, objectName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) RemoveObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) TranslateToEnglish(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

func newClinicUsecaseWithMocks() (ClinicUsecase, *MockClinicRepository, *MockDoctorLinker, *MockBookingStatsProvider, *MockTranslator) {
	clinicRepository := new(MockClinicRepository)
	doctorLinker := new(MockDoctorLinker)
	bookingStats := new(MockBookingStatsProvider)
	storage := new(MockStorage)
	translator := new(MockTranslator)

	usecase := NewClinicUsecase(zap.NewNop(), clinicRepository, doctorLinker, bookingStats, storage, translator, &config.InternalConfig{})
	return usecase, clinicRepository, doctorLinker, bookingStats, translator
}

func boolPtr(v bool) *bool { return &v }

func TestCreateClinic(t *testing.T) {
	t.Run("Stores price, special words and the booking flag", func(t *testing.T) {
		usecase, clinicRepository, _, _, translator := newClinicUsecaseWithMocks()

		translator.On("TranslateToEnglish", mock.Anything, mock.AnythingOfType("string")).Return("translated")
		clinicRepository.On("CreateClinic", mock.Anything, mock.MatchedBy(func(clinic *models.Clinic) bool {
			return clinic.Price == 250 &&
				clinic.IsAvailableForBooking &&
				len(clinic.SpecialWords) == 1 &&
				clinic.SpecialWords[0].Ar == "أشعة"
		})).Return(primitive.NewObjectID().Hex(), nil)

		request := &requests.CreateClinic{
			Name:                  "عيادة الأشعة",
			Phone:                 "0112345678",
			Specialization:        constvars.SpecializationGeneral,
			SpecialWords:          []string{"أشعة"},
			AvailableDays:         []string{"Monday"},
			Price:                 250,
			IsAvailableForBooking: boolPtr(true),
		}

		result, err := usecase.CreateClinic(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, float64(250), result.Price)
		assert.True(t, result.IsAvailableForBooking)
		assert.Empty(t, result.Doctors)
		clinicRepository.AssertExpectations(t)
	})
}

func TestGetClinicByID(t *testing.T) {
	t.Run("Joins the clinic's doctors into the response", func(t *testing.T) {
		usecase, clinicRepository, doctorLinker, bookingStats, _ := newClinicUsecaseWithMocks()

		clinicID := primitive.NewObjectID()
		doctorID := primitive.NewObjectID()
		clinic := &models.Clinic{
			ID:            clinicID,
			Name:          models.LocalizedText{Ar: "عيادة الجلدية"},
			Doctors:       []primitive.ObjectID{doctorID},
			TotalBookings: 12,
		}

		clinicRepository.On("FindByID", mock.Anything, clinicID.Hex()).Return(clinic, nil)
		bookingStats.On("CountForClinicBetween", mock.Anything, clinicID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(int64(2), nil)
		doctorLinker.On("FindByClinicID", mock.Anything, clinicID).Return([]models.Doctor{
			{
				ID:             doctorID,
				Name:           models.LocalizedText{Ar: "د. أحمد"},
				Status:         constvars.DoctorStatusAvailable,
				Specialization: constvars.SpecializationGeneral,
				Clinics:        []primitive.ObjectID{clinicID},
				Schedules: []models.ScheduleEntry{
					{Days: []string{"Monday"}},
				},
			},
		}, nil)

		result, err := usecase.GetClinicByID(context.Background(), clinicID.Hex())

		assert.NoError(t, err)
		assert.Len(t, result.Doctors, 1)
		assert.Equal(t, doctorID.Hex(), result.Doctors[0].ID)
		assert.Equal(t, "د. أحمد", result.Doctors[0].Name.Ar)
		assert.Equal(t, constvars.DoctorStatusAvailable, result.Doctors[0].Status)
		assert.Empty(t, result.Doctors[0].Schedules[0].Clinic)
		assert.Equal(t, int64(12), result.BookingStats.Total)
		doctorLinker.AssertExpectations(t)
	})

	t.Run("Missing clinic fails with not found", func(t *testing.T) {
		usecase, clinicRepository, doctorLinker, _, _ := newClinicUsecaseWithMocks()

		missingID := primitive.NewObjectID()
		clinicRepository.On("FindByID", mock.Anything, missingID.Hex()).Return(nil, nil)

		_, err := usecase.GetClinicByID(context.Background(), missingID.Hex())

		assert.Error(t, err)
		doctorLinker.AssertNotCalled(t, "FindByClinicID")
	})
}

func TestUpdateClinic(t *testing.T) {
	t.Run("Booking flag and price follow the request", func(t *testing.T) {
		usecase, clinicRepository, doctorLinker, bookingStats, _ := newClinicUsecaseWithMocks()

		clinicID := primitive.NewObjectID()
		clinic := &models.Clinic{
			ID:                    clinicID,
			Name:                  models.LocalizedText{Ar: "عيادة الأسنان"},
			Specialization:        constvars.SpecializationGeneral,
			Price:                 100,
			IsAvailableForBooking: true,
		}

		clinicRepository.On("FindByID", mock.Anything, clinicID.Hex()).Return(clinic, nil)
		clinicRepository.On("UpdateClinic", mock.Anything, mock.MatchedBy(func(updated *models.Clinic) bool {
			return updated.Price == 300 && !updated.IsAvailableForBooking
		})).Return(nil)
		bookingStats.On("CountForClinicBetween", mock.Anything, clinicID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(int64(0), nil)
		doctorLinker.On("FindByClinicID", mock.Anything, clinicID).Return([]models.Doctor{}, nil)

		price := float64(300)
		request := &requests.UpdateClinic{
			Price:                 &price,
			IsAvailableForBooking: boolPtr(false),
		}

		result, err := usecase.UpdateClinic(context.Background(), clinicID.Hex(), request)

		assert.NoError(t, err)
		assert.Equal(t, float64(300), result.Price)
		assert.False(t, result.IsAvailableForBooking)
		clinicRepository.AssertExpectations(t)
	})
}
