package middlewares

import (
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/mmhmddd/khobaraalafia-server/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}
