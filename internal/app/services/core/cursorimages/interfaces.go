package cursorimages

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
)

type CursorImageUsecase interface {
	GetAllCursorImages(ctx context.Context, page, pageSize int) ([]responses.CursorImage, int, error)
	GetActiveCursorImages(ctx context.Context) ([]responses.CursorImage, error)
	GetCursorImageByID(ctx context.Context, cursorImageID string) (*responses.CursorImage, error)
	CreateCursorImage(ctx context.Context, request *requests.CreateCursorImage, file io.Reader, fileHeader *multipart.FileHeader) (*responses.CursorImage, error)
	UpdateCursorImage(ctx context.Context, cursorImageID string, request *requests.UpdateCursorImage, file io.Reader, fileHeader *multipart.FileHeader) (*responses.CursorImage, error)
	DeleteCursorImage(ctx context.Context, cursorImageID string) error
}

type CursorImageRepository interface {
	CreateCursorImage(ctx context.Context, cursorImageModel *models.CursorImage) (string, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.CursorImage, error)
	CountAll(ctx context.Context) (int64, error)
	FindActive(ctx context.Context) ([]models.CursorImage, error)
	FindByID(ctx context.Context, cursorImageID string) (*models.CursorImage, error)
	UpdateCursorImage(ctx context.Context, cursorImageModel *models.CursorImage) error
	DeleteByID(ctx context.Context, cursorImageID string) error
}
