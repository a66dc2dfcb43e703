package contracts

import (
	"context"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session models.Session, exp time.Duration) error
	GetSessionData(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
