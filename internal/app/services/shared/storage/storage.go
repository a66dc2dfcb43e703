package storage

import (
	"github.com/minio/minio-go/v7"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
)

// NewStorage selects the media backend from configuration. The minio
// client may be nil when the local driver is configured.
func NewStorage(internalConfig *config.InternalConfig, driverConfig *config.DriverConfig, minioClient *minio.Client) (contracts.Storage, error) {
	if internalConfig.Media.Driver == constvars.MediaDriverMinio {
		return NewMinioStorage(minioClient, driverConfig), nil
	}
	return NewLocalStorage(internalConfig)
}
