// Package logger builds the logrus loggers used by the interaction systems
// and the binaries.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the log level and output format.
type Config struct {
	// Level is any level accepted by logrus.ParseLevel. Defaults to "info".
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is "json" for production log collection or "text" for development.
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// New creates a logger writing to stdout.
func New(cfg Config) *logrus.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a logger writing to out. An unknown level falls back
// to info.
func NewWithOutput(cfg Config, out io.Writer) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(out)
	return log
}

// Discard returns a logger that drops everything. Used by tests and as the
// default when no logger is configured.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}
