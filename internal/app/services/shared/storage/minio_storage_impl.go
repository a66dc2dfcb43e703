package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/minio/minio-go/v7"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	PublicUrl   string
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  driverConfig.Minio.BucketName,
		PublicUrl:   driverConfig.Minio.PublicUrl,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", "", exceptions.ErrStoragePutObject(err, m.BucketName)
	}

	url := fmt.Sprintf("%s/%s/%s", m.PublicUrl, m.BucketName, objectName)
	return url, objectName, nil
}

func (m *minioStorage) RemoveObject(ctx context.Context, objectKey string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrStorageRemoveObject(err, m.BucketName)
	}
	return nil
}
