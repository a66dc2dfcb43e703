package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

// Storage abstracts where uploaded media lands. UploadFile returns the
// public URL and the object key used for later removal.
type Storage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (url string, objectKey string, err error)
	RemoveObject(ctx context.Context, objectKey string) error
}
