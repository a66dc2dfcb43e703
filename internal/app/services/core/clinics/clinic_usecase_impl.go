package clinics

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/services/core/doctors"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type clinicUsecase struct {
	Log              *zap.Logger
	ClinicRepository ClinicRepository
	DoctorLinker     DoctorLinker
	BookingStats     BookingStatsProvider
	Storage          contracts.Storage
	Translator       contracts.Translator
	InternalConfig   *config.InternalConfig
}

func NewClinicUsecase(
	logger *zap.Logger,
	clinicRepository ClinicRepository,
	doctorLinker DoctorLinker,
	bookingStats BookingStatsProvider,
	storage contracts.Storage,
	translator contracts.Translator,
	internalConfig *config.InternalConfig,
) ClinicUsecase {
	return &clinicUsecase{
		Log:              logger,
		ClinicRepository: clinicRepository,
		DoctorLinker:     doctorLinker,
		BookingStats:     bookingStats,
		Storage:          storage,
		Translator:       translator,
		InternalConfig:   internalConfig,
	}
}

func (uc *clinicUsecase) GetAllClinics(ctx context.Context, page, pageSize int) ([]responses.Clinic, int, error) {
	total, err := uc.ClinicRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	clinicModels, err := uc.ClinicRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	clinics := make([]responses.Clinic, 0, len(clinicModels))
	for i := range clinicModels {
		stats, err := uc.collectBookingStats(ctx, &clinicModels[i])
		if err != nil {
			return nil, 0, err
		}
		clinicDoctors, err := uc.joinDoctors(ctx, clinicModels[i].ID)
		if err != nil {
			return nil, 0, err
		}
		clinics = append(clinics, *buildClinicResponse(&clinicModels[i], clinicDoctors, stats))
	}
	return clinics, int(total), nil
}

func (uc *clinicUsecase) GetClinicByID(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	stats, err := uc.collectBookingStats(ctx, clinic)
	if err != nil {
		return nil, err
	}
	clinicDoctors, err := uc.joinDoctors(ctx, clinic.ID)
	if err != nil {
		return nil, err
	}
	return buildClinicResponse(clinic, clinicDoctors, stats), nil
}

func (uc *clinicUsecase) CreateClinic(ctx context.Context, request *requests.CreateClinic) (*responses.Clinic, error) {
	if request.Specialization == constvars.SpecializationSpecialized && len(request.Specialties) == 0 {
		return nil, exceptions.ErrMissingSpecialties(nil)
	}
	if request.Specialization == constvars.SpecializationGeneral {
		request.Specialties = nil
	}

	status := request.Status
	if status == "" {
		status = constvars.ClinicStatusActive
	}

	now := time.Now()
	clinic := &models.Clinic{
		Name:                  uc.localize(ctx, request.Name),
		Description:           uc.localize(ctx, request.Description),
		Address:               uc.localize(ctx, request.Address),
		Phone:                 request.Phone,
		Email:                 request.Email,
		Status:                status,
		Specialization:        request.Specialization,
		Specialties:           uc.localizeAll(ctx, request.Specialties),
		SpecialWords:          uc.localizeAll(ctx, request.SpecialWords),
		AvailableDays:         request.AvailableDays,
		Price:                 request.Price,
		IsAvailableForBooking: *request.IsAvailableForBooking,
		Doctors:               []primitive.ObjectID{},
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	clinicID, err := uc.ClinicRepository.CreateClinic(ctx, clinic)
	if err != nil {
		return nil, err
	}

	clinic.ID, _ = primitive.ObjectIDFromHex(clinicID)
	return buildClinicResponse(clinic, nil, responses.BookingStats{}), nil
}

func (uc *clinicUsecase) UpdateClinic(ctx context.Context, clinicID string, request *requests.UpdateClinic) (*responses.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	if request.Name != "" {
		clinic.Name = uc.localize(ctx, request.Name)
	}
	if request.Description != "" {
		clinic.Description = uc.localize(ctx, request.Description)
	}
	if request.Address != "" {
		clinic.Address = uc.localize(ctx, request.Address)
	}
	if request.Phone != "" {
		clinic.Phone = request.Phone
	}
	if request.Email != "" {
		clinic.Email = request.Email
	}
	if request.Status != "" {
		clinic.Status = request.Status
	}
	if request.Specialization != "" {
		clinic.Specialization = request.Specialization
	}
	if len(request.Specialties) > 0 {
		clinic.Specialties = uc.localizeAll(ctx, request.Specialties)
	}
	if len(request.SpecialWords) > 0 {
		clinic.SpecialWords = uc.localizeAll(ctx, request.SpecialWords)
	}
	if len(request.AvailableDays) > 0 {
		clinic.AvailableDays = request.AvailableDays
	}
	if request.Price != nil {
		clinic.Price = *request.Price
	}
	if request.IsAvailableForBooking != nil {
		clinic.IsAvailableForBooking = *request.IsAvailableForBooking
	}

	if clinic.Specialization == constvars.SpecializationSpecialized && len(clinic.Specialties) == 0 {
		return nil, exceptions.ErrMissingSpecialties(nil)
	}
	if clinic.Specialization == constvars.SpecializationGeneral {
		clinic.Specialties = nil
	}

	clinic.UpdatedAt = time.Now()
	if err := uc.ClinicRepository.UpdateClinic(ctx, clinic); err != nil {
		return nil, err
	}

	stats, err := uc.collectBookingStats(ctx, clinic)
	if err != nil {
		return nil, err
	}
	clinicDoctors, err := uc.joinDoctors(ctx, clinic.ID)
	if err != nil {
		return nil, err
	}
	return buildClinicResponse(clinic, clinicDoctors, stats), nil
}

func (uc *clinicUsecase) DeleteClinic(ctx context.Context, clinicID string) error {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return err
	}
	if clinic == nil {
		return exceptions.ErrClinicNotFound(nil)
	}

	if clinic.ImageKey != "" {
		uc.removeMedia(ctx, clinic.ImageKey)
	}
	for _, video := range clinic.Videos {
		uc.removeMedia(ctx, video.VideoKey)
	}

	if err := uc.DoctorLinker.PullClinicFromAll(ctx, clinic.ID); err != nil {
		return err
	}
	return uc.ClinicRepository.DeleteByID(ctx, clinicID)
}

func (uc *clinicUsecase) AddDoctorsToClinic(ctx context.Context, clinicID string, request *requests.AddDoctorsToClinic) (*responses.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	doctorIDs := make([]primitive.ObjectID, 0, len(request.DoctorIDs))
	for _, doctorID := range request.DoctorIDs {
		objectID, err := primitive.ObjectIDFromHex(doctorID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		doctorIDs = append(doctorIDs, objectID)
	}

	count, err := uc.DoctorLinker.CountByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(doctorIDs)) {
		return nil, exceptions.ErrSomeDoctorsNotFound(nil)
	}

	if err := uc.ClinicRepository.AddDoctors(ctx, clinic.ID, doctorIDs); err != nil {
		return nil, err
	}
	if err := uc.DoctorLinker.AddClinicToDoctors(ctx, clinic.ID, doctorIDs); err != nil {
		return nil, err
	}

	return uc.GetClinicByID(ctx, clinicID)
}

func (uc *clinicUsecase) UploadClinicImage(ctx context.Context, clinicID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	objectName := utils.GenerateFileName("clinic", clinicID, filepath.Ext(fileHeader.Filename))
	url, objectKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName)
	if err != nil {
		return nil, err
	}

	if clinic.ImageKey != "" {
		uc.removeMedia(ctx, clinic.ImageKey)
	}

	clinic.ImageURL = url
	clinic.ImageKey = objectKey
	clinic.UpdatedAt = time.Now()
	if err := uc.ClinicRepository.UpdateClinic(ctx, clinic); err != nil {
		return nil, err
	}

	stats, err := uc.collectBookingStats(ctx, clinic)
	if err != nil {
		return nil, err
	}
	clinicDoctors, err := uc.joinDoctors(ctx, clinic.ID)
	if err != nil {
		return nil, err
	}
	return buildClinicResponse(clinic, clinicDoctors, stats), nil
}

func (uc *clinicUsecase) UploadClinicVideos(ctx context.Context, clinicID string, labels []string, files []*multipart.FileHeader) (*responses.Clinic, error) {
	if len(labels) != len(files) {
		return nil, exceptions.ErrVideoLabelMismatch(nil)
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	videos := make([]models.ClinicVideo, 0, len(files))
	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}

		objectName := utils.GenerateFileName("clinic_video", clinicID, filepath.Ext(fileHeader.Filename))
		url, objectKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName)
		file.Close()
		if err != nil {
			return nil, err
		}

		videos = append(videos, models.ClinicVideo{
			ID:       primitive.NewObjectID(),
			Label:    uc.localize(ctx, labels[i]),
			VideoURL: url,
			VideoKey: objectKey,
		})
	}

	if err := uc.ClinicRepository.PushVideos(ctx, clinic.ID, videos); err != nil {
		return nil, err
	}
	return uc.GetClinicByID(ctx, clinicID)
}

func (uc *clinicUsecase) DeleteClinicVideo(ctx context.Context, clinicID, videoID string) error {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return err
	}
	if clinic == nil {
		return exceptions.ErrClinicNotFound(nil)
	}

	videoObjectID, err := primitive.ObjectIDFromHex(videoID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	var videoKey string
	for _, video := range clinic.Videos {
		if video.ID == videoObjectID {
			videoKey = video.VideoKey
			break
		}
	}
	if videoKey == "" {
		return exceptions.ErrClinicVideoNotFound(nil)
	}

	uc.removeMedia(ctx, videoKey)
	return uc.ClinicRepository.PullVideo(ctx, clinic.ID, videoObjectID)
}

// joinDoctors loads the clinic's doctors so reads return full documents
// instead of bare references.
func (uc *clinicUsecase) joinDoctors(ctx context.Context, clinicID primitive.ObjectID) ([]responses.Doctor, error) {
	doctorModels, err := uc.DoctorLinker.FindByClinicID(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	clinicDoctors := make([]responses.Doctor, 0, len(doctorModels))
	for i := range doctorModels {
		clinicDoctors = append(clinicDoctors, *doctors.BuildDoctorResponse(&doctorModels[i]))
	}
	return clinicDoctors, nil
}

func (uc *clinicUsecase) collectBookingStats(ctx context.Context, clinic *models.Clinic) (responses.BookingStats, error) {
	now := time.Now()
	startOfToday := utils.NormalizeBookingDate(now)

	today, err := uc.BookingStats.CountForClinicBetween(ctx, clinic.ID, startOfToday, startOfToday.AddDate(0, 0, 1))
	if err != nil {
		return responses.BookingStats{}, err
	}
	lastWeek, err := uc.BookingStats.CountForClinicBetween(ctx, clinic.ID, startOfToday.AddDate(0, 0, -7), startOfToday.AddDate(0, 0, 1))
	if err != nil {
		return responses.BookingStats{}, err
	}
	lastMonth, err := uc.BookingStats.CountForClinicBetween(ctx, clinic.ID, startOfToday.AddDate(0, 0, -30), startOfToday.AddDate(0, 0, 1))
	if err != nil {
		return responses.BookingStats{}, err
	}

	return responses.BookingStats{
		Total:     clinic.TotalBookings,
		Today:     today,
		LastWeek:  lastWeek,
		LastMonth: lastMonth,
	}, nil
}

func (uc *clinicUsecase) localize(ctx context.Context, text string) models.LocalizedText {
	if text == "" {
		return models.LocalizedText{}
	}
	return models.NewLocalizedText(text, uc.Translator.TranslateToEnglish(ctx, text))
}

func (uc *clinicUsecase) localizeAll(ctx context.Context, texts []string) []models.LocalizedText {
	if len(texts) == 0 {
		return nil
	}
	localized := make([]models.LocalizedText, 0, len(texts))
	for _, text := range texts {
		localized = append(localized, uc.localize(ctx, text))
	}
	return localized
}

func (uc *clinicUsecase) removeMedia(ctx context.Context, objectKey string) {
	if err := uc.Storage.RemoveObject(ctx, objectKey); err != nil {
		uc.Log.Warn(constvars.ErrDevStorageFailedToRemoveObject, zap.String("object_key", objectKey), zap.Error(err))
	}
}

func buildClinicResponse(clinic *models.Clinic, clinicDoctors []responses.Doctor, stats responses.BookingStats) *responses.Clinic {
	if clinicDoctors == nil {
		clinicDoctors = []responses.Doctor{}
	}

	specialties := make([]responses.LocalizedText, 0, len(clinic.Specialties))
	for _, specialty := range clinic.Specialties {
		specialties = append(specialties, responses.LocalizedText{Ar: specialty.Ar, En: specialty.En})
	}

	specialWords := make([]responses.LocalizedText, 0, len(clinic.SpecialWords))
	for _, word := range clinic.SpecialWords {
		specialWords = append(specialWords, responses.LocalizedText{Ar: word.Ar, En: word.En})
	}

	videos := make([]responses.ClinicVideo, 0, len(clinic.Videos))
	for _, video := range clinic.Videos {
		videos = append(videos, responses.ClinicVideo{
			ID:       video.ID.Hex(),
			Label:    responses.LocalizedText{Ar: video.Label.Ar, En: video.Label.En},
			VideoURL: video.VideoURL,
		})
	}

	return &responses.Clinic{
		ID:                    clinic.ID.Hex(),
		Name:                  responses.LocalizedText{Ar: clinic.Name.Ar, En: clinic.Name.En},
		Description:           responses.LocalizedText{Ar: clinic.Description.Ar, En: clinic.Description.En},
		Address:               responses.LocalizedText{Ar: clinic.Address.Ar, En: clinic.Address.En},
		Phone:                 clinic.Phone,
		Email:                 clinic.Email,
		Status:                clinic.Status,
		Specialization:        clinic.Specialization,
		Specialties:           specialties,
		SpecialWords:          specialWords,
		AvailableDays:         clinic.AvailableDays,
		Price:                 clinic.Price,
		IsAvailableForBooking: clinic.IsAvailableForBooking,
		Doctors:               clinicDoctors,
		Videos:                videos,
		ImageURL:              clinic.ImageURL,
		BookingStats:          stats,
		CreatedAt:             clinic.CreatedAt,
		UpdatedAt:             clinic.UpdatedAt,
	}
}
