package logger

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var std = logrus.New()

// Init configures the process logger from the environment:
// LOG_LEVEL (debug/info/warn/error, default info) and
// LOG_FORMAT ("json" for machine-readable output, text otherwise).
func Init() {
	std.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	std.SetLevel(level)

	if os.Getenv("LOG_FORMAT") == "json" {
		std.SetFormatter(&logrus.JSONFormatter{})
	} else {
		std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// L returns the process logger.
func L() *logrus.Logger {
	return std
}

// WithRequest returns an entry carrying the request's routing fields and
// request ID, for handler-side logging.
func WithRequest(c *gin.Context) *logrus.Entry {
	return std.WithFields(logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("request_id"),
	})
}
