package cursorimages

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/requests"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/dto/responses"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type cursorImageUsecase struct {
	CursorImageRepository CursorImageRepository
	Storage               contracts.Storage
	Log                   *zap.Logger
}

func NewCursorImageUsecase(
	cursorImageRepository CursorImageRepository,
	storage contracts.Storage,
	logger *zap.Logger,
) CursorImageUsecase {
	return &cursorImageUsecase{
		CursorImageRepository: cursorImageRepository,
		Storage:               storage,
		Log:                   logger,
	}
}

func (uc *cursorImageUsecase) GetAllCursorImages(ctx context.Context, page, pageSize int) ([]responses.CursorImage, int, error) {
	images, err := uc.CursorImageRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.CursorImageRepository.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.CursorImage, 0, len(images))
	for i := range images {
		result = append(result, *buildCursorImageResponse(&images[i]))
	}
	return result, int(total), nil
}

func (uc *cursorImageUsecase) GetActiveCursorImages(ctx context.Context) ([]responses.CursorImage, error) {
	images, err := uc.CursorImageRepository.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.CursorImage, 0, len(images))
	for i := range images {
		result = append(result, *buildCursorImageResponse(&images[i]))
	}
	return result, nil
}

func (uc *cursorImageUsecase) GetCursorImageByID(ctx context.Context, cursorImageID string) (*responses.CursorImage, error) {
	image, err := uc.CursorImageRepository.FindByID(ctx, cursorImageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, exceptions.ErrCursorImageNotFound(nil)
	}
	return buildCursorImageResponse(image), nil
}

func (uc *cursorImageUsecase) CreateCursorImage(ctx context.Context, request *requests.CreateCursorImage, file io.Reader, fileHeader *multipart.FileHeader) (*responses.CursorImage, error) {
	objectName := utils.GenerateFileName("cursor", "gallery", filepath.Ext(fileHeader.Filename))
	url, objectKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName)
	if err != nil {
		return nil, err
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	now := time.Now()
	imageModel := &models.CursorImage{
		Title:       request.Title,
		Description: request.Description,
		ImageURL:    url,
		ImageKey:    objectKey,
		Order:       *request.Order,
		IsActive:    isActive,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	imageID, err := uc.CursorImageRepository.CreateCursorImage(ctx, imageModel)
	if err != nil {
		uc.removeMedia(ctx, objectKey)
		return nil, err
	}

	objectID, err := primitive.ObjectIDFromHex(imageID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	imageModel.ID = objectID

	return buildCursorImageResponse(imageModel), nil
}

func (uc *cursorImageUsecase) UpdateCursorImage(ctx context.Context, cursorImageID string, request *requests.UpdateCursorImage, file io.Reader, fileHeader *multipart.FileHeader) (*responses.CursorImage, error) {
	image, err := uc.CursorImageRepository.FindByID(ctx, cursorImageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, exceptions.ErrCursorImageNotFound(nil)
	}

	if request.Title != "" {
		image.Title = request.Title
	}
	if request.Description != "" {
		image.Description = request.Description
	}
	if request.Order != nil {
		image.Order = *request.Order
	}
	if request.IsActive != nil {
		image.IsActive = *request.IsActive
	}

	if file != nil && fileHeader != nil {
		objectName := utils.GenerateFileName("cursor", cursorImageID, filepath.Ext(fileHeader.Filename))
		url, objectKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, objectName)
		if err != nil {
			return nil, err
		}
		if image.ImageKey != "" {
			uc.removeMedia(ctx, image.ImageKey)
		}
		image.ImageURL = url
		image.ImageKey = objectKey
	}

	image.UpdatedAt = time.Now()
	if err := uc.CursorImageRepository.UpdateCursorImage(ctx, image); err != nil {
		return nil, err
	}

	return buildCursorImageResponse(image), nil
}

func (uc *cursorImageUsecase) DeleteCursorImage(ctx context.Context, cursorImageID string) error {
	image, err := uc.CursorImageRepository.FindByID(ctx, cursorImageID)
	if err != nil {
		return err
	}
	if image == nil {
		return exceptions.ErrCursorImageNotFound(nil)
	}

	if image.ImageKey != "" {
		uc.removeMedia(ctx, image.ImageKey)
	}

	return uc.CursorImageRepository.DeleteByID(ctx, cursorImageID)
}

func (uc *cursorImageUsecase) removeMedia(ctx context.Context, objectKey string) {
	if err := uc.Storage.RemoveObject(ctx, objectKey); err != nil {
		uc.Log.Warn("failed to remove media object",
			zap.String("object_key", objectKey),
			zap.Error(err),
		)
	}
}

func buildCursorImageResponse(image *models.CursorImage) *responses.CursorImage {
	return &responses.CursorImage{
		ID:          image.ID.Hex(),
		Title:       image.Title,
		Description: image.Description,
		ImageURL:    image.ImageURL,
		Order:       image.Order,
		IsActive:    image.IsActive,
		CreatedAt:   image.CreatedAt,
	}
}
