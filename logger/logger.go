package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger configures the process-wide logrus instance. The level comes
// from LOG_LEVEL and defaults to info.
func InitLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level := logrus.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			logrus.Warnf("Unknown LOG_LEVEL %q, using info", raw)
		} else {
			level = parsed
		}
	}
	logrus.SetLevel(level)

	logrus.Info("Logger initialized")
}
