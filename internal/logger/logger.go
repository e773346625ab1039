// Package logger provides a wrapper around logrus for structured logging.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to out. JSON output is used when jsonFormat is
// set, colored text otherwise.
func New(out io.Writer, logLevel string, jsonFormat bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to info", logLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	return logger
}
