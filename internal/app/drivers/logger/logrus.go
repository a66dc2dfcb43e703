package logger

import (
	"github.com/mmhmddd/khobaraalafia-server/internal/app/config"
	"github.com/sirupsen/logrus"
)

func NewLogrusLogger(driverConfig *config.DriverConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
