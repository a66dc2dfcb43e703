package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
	allowedVideoExtensions = []string{".mp4", ".webm", ".mov"}
)

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := primitive.ObjectIDFromHex(param)
	if err != nil {
		return err
	}

	return nil
}

func ValidateImageFile(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	return validateFile(fileHeader, maxSizeInMegabytes, allowedImageExtensions)
}

func ValidateVideoFile(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64) error {
	return validateFile(fileHeader, maxSizeInMegabytes, allowedVideoExtensions)
}

func validateFile(fileHeader *multipart.FileHeader, maxSizeInMegabytes int64, allowedExtensions []string) error {
	if fileHeader == nil {
		return nil
	}

	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return fmt.Errorf("file size exceeds the maximum limit of %dMB", maxSizeInMegabytes)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid file format. Allowed formats are: %s", strings.Join(allowedExtensions, ", "))
}
