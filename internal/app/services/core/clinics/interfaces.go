package clinics

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClinicUsecase interface {
	GetAllClinics(ctx context.Context, page, pageSize int) ([]responses.Clinic, int, error)
	GetClinicByID(ctx context.Context, clinicID string) (*responses.Clinic, error)
	CreateClinic(ctx context.Context, request *requests.CreateClinic) (*responses.Clinic, error)
	UpdateClinic(ctx context.Context, clinicID string, request *requests.UpdateClinic) (*responses.Clinic, error)
	DeleteClinic(ctx context.Context, clinicID string) error
	AddDoctorsToClinic(ctx context.Context, clinicID string, request *requests.AddDoctorsToClinic) (*responses.Clinic, error)
	UploadClinicImage(ctx context.Context, clinicID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Clinic, error)
	UploadClinicVideos(ctx context.Context, clinicID string, labels []string, files []*multipart.FileHeader) (*responses.Clinic, error)
	DeleteClinicVideo(ctx context.Context, clinicID, videoID string) error
}

type ClinicRepository interface {
	CreateClinic(ctx context.Context, clinicModel *models.Clinic) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	FindByIDs(ctx context.Context, clinicIDs []primitive.ObjectID) ([]models.Clinic, error)
	UpdateClinic(ctx context.Context, clinicModel *models.Clinic) error
	DeleteByID(ctx context.Context, clinicID string) error
	AddDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error
	PullDoctorFromAll(ctx context.Context, doctorID primitive.ObjectID) error
	PushVideos(ctx context.Context, clinicID primitive.ObjectID, videos []models.ClinicVideo) error
	PullVideo(ctx context.Context, clinicID, videoID primitive.ObjectID) error
	IncrementTotalBookings(ctx context.Context, clinicID primitive.ObjectID, delta int64) error
}

// DoctorLinker is the slice of the doctor repository the clinic flows
// need: existence checks when linking, cleanup when a clinic goes, and
// the member lookup that joins a clinic's doctors into reads.
type DoctorLinker interface {
	CountByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) (int64, error)
	FindByClinicID(ctx context.Context, clinicID primitive.ObjectID) ([]models.Doctor, error)
	AddClinicToDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error
	PullClinicFromAll(ctx context.Context, clinicID primitive.ObjectID) error
}

// BookingStatsProvider supplies the rolling booking counts reported on
// clinic reads.
type BookingStatsProvider interface {
	CountForClinicBetween(ctx context.Context, clinicID primitive.ObjectID, from, to time.Time) (int64, error)
}
