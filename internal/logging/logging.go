package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging returns the JSON logger. An unknown level falls back to info.
func SetupLogging(level string) *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}

	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.Level = parsed
	}

	return &logger
}
