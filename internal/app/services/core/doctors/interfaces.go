package doctors

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context, page, pageSize int) ([]responses.Doctor, int, error)
	GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
	UploadDoctorImage(ctx context.Context, doctorID string, file io.Reader, fileHeader *multipart.FileHeader) (*responses.Doctor, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Doctor, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	FindByClinicID(ctx context.Context, clinicID primitive.ObjectID) ([]models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error
	CountByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) (int64, error)
	AddClinicToDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error
	PullClinicFromAll(ctx context.Context, clinicID primitive.ObjectID) error
}

// ClinicProvider is the slice of the clinic repository the doctor flows
// depend on: referenced-clinic lookups and membership maintenance.
type ClinicProvider interface {
	FindByIDs(ctx context.Context, clinicIDs []primitive.ObjectID) ([]models.Clinic, error)
	AddDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error
	PullDoctorFromAll(ctx context.Context, doctorID primitive.ObjectID) error
}
