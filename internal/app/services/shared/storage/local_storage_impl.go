package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
)

type localStorage struct {
	Dir     string
	BaseUrl string
}

func NewLocalStorage(internalConfig *config.InternalConfig) (contracts.Storage, error) {
	dir := internalConfig.Media.LocalDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &localStorage{
		Dir:     dir,
		BaseUrl: internalConfig.Media.LocalBaseUrl,
	}, nil
}

func (l *localStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, objectName string) (string, string, error) {
	targetPath := filepath.Join(l.Dir, objectName)

	dst, err := os.Create(targetPath)
	if err != nil {
		return "", "", exceptions.ErrStoragePutObject(err, l.Dir)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(targetPath)
		return "", "", exceptions.ErrStoragePutObject(err, l.Dir)
	}

	url := fmt.Sprintf("%s/%s", l.BaseUrl, objectName)
	return url, objectName, nil
}

func (l *localStorage) RemoveObject(ctx context.Context, objectKey string) error {
	err := os.Remove(filepath.Join(l.Dir, objectKey))
	if err != nil && !os.IsNotExist(err) {
		return exceptions.ErrStorageRemoveObject(err, l.Dir)
	}
	return nil
}
