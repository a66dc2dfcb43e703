package doctors

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	Log              *zap.Logger
	DoctorRepository DoctorRepository
	ClinicProvider   ClinicProvider
	Storage          contracts.Storage
	Translator       contracts.Translator
}

func NewDoctorUsecase(
	logger *zap.Logger,
	doctorRepository DoctorRepository,
	clinicProvider ClinicProvider,
	storage contracts.Storage,
	translator contracts.Translator,
) DoctorUsecase {
	return &doctorUsecase{
		Log:              logger,
		DoctorRepository: doctorRepository,
		ClinicProvider:   clinicProvider,
		Storage:          storage,
		Translator:       translator,
	}
}

func (uc *doctorUsecase) GetAllDoctors(ctx context.Context, page, pageSize int) ([]responses.Doctor, int, error) {
	total, err := uc.DoctorRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	doctorModels, err := uc.DoctorRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	doctors := make([]responses.Doctor, 0, len(doctorModels))
	for i := range doctorModels {
		doctors = append(doctors, *BuildDoctorResponse(&doctorModels[i]))
	}
	return doctors, int(total), nil
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return BuildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	if request.Specialization == constvars.SpecializationSpecialized && len(request.Specialties) == 0 {
		return nil, exceptions.ErrMissingSpecialties(nil)
	}
	if request.Specialization == constvars.SpecializationGeneral {
		request.Specialties = nil
	}

	clinicIDs, clinicsByID, err := uc.resolveClinics(ctx, request.Clinics)
	if err != nil {
		return nil, err
	}

	schedules, err := buildScheduleEntries(request.Schedules)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchedules(request.Specialization, clinicIDs, schedules, clinicsByID); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.DoctorStatusAvailable
	}

	now := time.Now()
	doctor := &models.Doctor{
		Name:              uc.localize(ctx, request.Name),
		Email:             request.Email,
		Phone:             request.Phone,
		Address:           uc.localize(ctx, request.Address),
		Status:            status,
		Specialization:    request.Specialization,
		Specialties:       uc.localizeAll(ctx, request.Specialties),
		SpecialWords:      uc.localizeAll(ctx, request.SpecialWords),
		Bio:               uc.localize(ctx, request.Bio),
		YearsOfExperience: request.YearsOfExperience,
		Clinics:           clinicIDs,
		Schedules:         schedules,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID, _ = primitive.ObjectIDFromHex(doctorID)

	for _, clinicID := range clinicIDs {
		if err := uc.ClinicProvider.AddDoctors(ctx, clinicID, []primitive.ObjectID{doctor.ID}); err != nil {
			return nil, err
		}
	}

	return BuildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if request.Email != "" && request.Email != doctor.Email {
		existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		doctor.Email = request.Email
	}

	if request.Name != "" {
		doctor.Name = uc.localize(ctx, request.Name)
	}
	if request.Phone != "" {
		doctor.Phone = request.Phone
	}
	if request.Address != "" {
		doctor.Address = uc.localize(ctx, request.Address)
	}
	if request.Status != "" {
		doctor.Status = request.Status
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if len(request.Specialties) > 0 {
		doctor.Specialties = uc.localizeAll(ctx, request.Specialties)
	}
	if len(request.SpecialWords) > 0 {
		doctor.SpecialWords = uc.localizeAll(ctx, request.SpecialWords)
	}
	if request.Bio != "" {
		doctor.Bio = uc.localize(ctx, request.Bio)
	}
	if request.YearsOfExperience != nil {
		doctor.YearsOfExperience = *request.YearsOfExperience
	}

	if doctor.Specialization == constvars.SpecializationSpecialized && len(doctor.Specialties) == 0 {
		return nil, exceptions.ErrMissingSpecialties(nil)
	}
	if doctor.Specialization == constvars.SpecializationGeneral {
		doctor.Specialties = nil
	}

	clinicsChanged := len(request.Clinics) > 0
	if clinicsChanged {
		clinicIDs, _, err := uc.resolveClinics(ctx, request.Clinics)
		if err != nil {
			return nil, err
		}
		doctor.Clinics = clinicIDs
	}

	if len(request.Schedules) > 0 {
		schedules, err := buildScheduleEntries(request.Schedules)
		if err != nil {
			return nil, err
		}
		doctor.Schedules = schedules
	}

	clinics, err := uc.ClinicProvider.FindByIDs(ctx, doctor.Clinics)
	if err != nil {
		return nil, err
	}
	clinicsByID := make(map[primitive.ObjectID]models.Clinic, len(clinics))
	for _, clinic := range clinics {
		clinicsByID[clinic.ID] = clinic
	}
	if err := ValidateSchedules(doctor.Specialization, doctor.Clinics, doctor.Schedules, clinicsByID); err != nil {
		return nil, err
	}

	doctor.UpdatedAt = time.Now()
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	if clinicsChanged {
		if err := uc.ClinicProvider.PullDoctorFromAll(ctx, doctor.ID); err != nil {
			return nil, err
		}
		for _, clinicID := range doctor.Clinics {
			if err := uc.ClinicProvider.AddDoctors(ctx, clinicID, []primitive.ObjectID{doctor.ID}); err != nil {
				return nil, err
			}
		}
	}

	return BuildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	if doctor.ImageKey != "" {
		if err := uc.Storage.RemoveObject(ctx, doctor.ImageKey); err != nil {
			uc.Log.Warn(constvars.ErrDevStorageFailedToRemoveObject, zap.String("object_key", doctor.ImageKey), zap.Error(err))
		}
	}

	if err := uc.ClinicProvider.PullDoctorFromAll(ctx, doctor.ID); err != nil {
		return err
	}
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func (uc *doctorUsecase) UploadDoctorImage(ctx context.Context, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	objectName := utils.GenerateFileName("doctor", doctorID, filepath.Ext(fileHeader.Filename))
	url, objectKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName)
	if err != nil {
		return nil, err
	}

	if doctor.ImageKey != "" {
		if err := uc.Storage.RemoveObject(ctx, doctor.ImageKey); err != nil {
			uc.Log.Warn(constvars.ErrDevStorageFailedToRemoveObject, zap.String("object_key", doctor.ImageKey), zap.Error(err))
		}
	}

	doctor.ImageURL = url
	doctor.ImageKey = objectKey
	doctor.UpdatedAt = time.Now()
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return BuildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) resolveClinics(ctx context.Context, clinicIDParams []string) ([]primitive.ObjectID, map[primitive.ObjectID]models.Clinic, error) {
	clinicIDs := make([]primitive.ObjectID, 0, len(clinicIDParams))
	for _, clinicID := range clinicIDParams {
		objectID, err := primitive.ObjectIDFromHex(clinicID)
		if err != nil {
			return nil, nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		clinicIDs = append(clinicIDs, objectID)
	}

	clinics, err := uc.ClinicProvider.FindByIDs(ctx, clinicIDs)
	if err != nil {
		return nil, nil, err
	}
	if len(clinics) != len(clinicIDs) {
		return nil, nil, exceptions.ErrSomeClinicsNotFound(nil)
	}

	clinicsByID := make(map[primitive.ObjectID]models.Clinic, len(clinics))
	for _, clinic := range clinics {
		clinicsByID[clinic.ID] = clinic
	}
	return clinicIDs, clinicsByID, nil
}

func buildScheduleEntries(entries []requests.ScheduleEntry) ([]models.ScheduleEntry, error) {
	schedules := make([]models.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		var clinicID primitive.ObjectID
		if entry.Clinic != "" {
			var err error
			clinicID, err = primitive.ObjectIDFromHex(entry.Clinic)
			if err != nil {
				return nil, exceptions.ErrMongoDBNotObjectID(err)
			}
		}
		schedules = append(schedules, models.ScheduleEntry{
			Clinic:    clinicID,
			Days:      utils.ExpandAllDays(entry.Days),
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
		})
	}
	return schedules, nil
}

func (uc *doctorUsecase) localize(ctx context.Context, text string) models.LocalizedText {
	if text == "" {
		return models.LocalizedText{}
	}
	return models.NewLocalizedText(text, uc.Translator.TranslateToEnglish(ctx, text))
}

func (uc *doctorUsecase) localizeAll(ctx context.Context, texts []string) []models.LocalizedText {
	if len(texts) == 0 {
		return nil
	}
	localized := make([]models.LocalizedText, 0, len(texts))
	for _, text := range texts {
		localized = append(localized, uc.localize(ctx, text))
	}
	return localized
}

// BuildDoctorResponse maps a doctor document onto its API shape. The
// clinic flows reuse it when joining a clinic's doctors into reads.
func BuildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	clinics := make([]string, 0, len(doctor.Clinics))
	for _, clinicID := range doctor.Clinics {
		clinics = append(clinics, clinicID.Hex())
	}

	specialties := make([]responses.LocalizedText, 0, len(doctor.Specialties))
	for _, specialty := range doctor.Specialties {
		specialties = append(specialties, responses.LocalizedText{Ar: specialty.Ar, En: specialty.En})
	}

	specialWords := make([]responses.LocalizedText, 0, len(doctor.SpecialWords))
	for _, word := range doctor.SpecialWords {
		specialWords = append(specialWords, responses.LocalizedText{Ar: word.Ar, En: word.En})
	}

	schedules := make([]responses.ScheduleEntry, 0, len(doctor.Schedules))
	for _, schedule := range doctor.Schedules {
		clinicID := ""
		if !schedule.Clinic.IsZero() {
			clinicID = schedule.Clinic.Hex()
		}
		schedules = append(schedules, responses.ScheduleEntry{
			Clinic:    clinicID,
			Days:      schedule.Days,
			StartTime: schedule.StartTime,
			EndTime:   schedule.EndTime,
		})
	}

	return &responses.Doctor{
		ID:                doctor.ID.Hex(),
		Name:              responses.LocalizedText{Ar: doctor.Name.Ar, En: doctor.Name.En},
		Email:             doctor.Email,
		Phone:             doctor.Phone,
		Address:           responses.LocalizedText{Ar: doctor.Address.Ar, En: doctor.Address.En},
		Status:            doctor.Status,
		Specialization:    doctor.Specialization,
		Specialties:       specialties,
		SpecialWords:      specialWords,
		Bio:               responses.LocalizedText{Ar: doctor.Bio.Ar, En: doctor.Bio.En},
		YearsOfExperience: doctor.YearsOfExperience,
		Clinics:           clinics,
		Schedules:         schedules,
		ImageURL:          doctor.ImageURL,
		CreatedAt:         doctor.CreatedAt,
		UpdatedAt:         doctor.UpdatedAt,
	}
}
