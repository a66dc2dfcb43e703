package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
)

func GenerateSessionID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateConfirmationCode returns a 5-digit code in [10000, 99999].
func GenerateConfirmationCode() (string, error) {
	span := int64(constvars.ConfirmationCodeMax-constvars.ConfirmationCodeMin) + 1
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+int64(constvars.ConfirmationCodeMin), 10), nil
}

// GenerateResetPasswordToken returns the raw token sent to the user and
// the sha256 hex digest persisted for lookup.
func GenerateResetPasswordToken() (rawToken, hashedToken string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	rawToken = hex.EncodeToString(buf)
	digest := sha256.Sum256([]byte(rawToken))
	hashedToken = hex.EncodeToString(digest[:])
	return rawToken, hashedToken, nil
}

func HashResetPasswordToken(rawToken string) string {
	digest := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(digest[:])
}

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}
