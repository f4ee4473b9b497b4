package logging

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

// InitLogger configures the process-wide logger. It can be called again to change the level.
func InitLogger(level logrus.Level) *logrus.Logger {
	l := GetLogger()
	mu.Lock()
	defer mu.Unlock()
	l.SetLevel(level)
	return l
}

// SetFormat switches between the text and JSON formatters. Anything other than "json" selects text.
func SetFormat(format string) {
	l := GetLogger()
	mu.Lock()
	defer mu.Unlock()
	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// GetLogger returns the shared logger, creating it with defaults on first use.
func GetLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
