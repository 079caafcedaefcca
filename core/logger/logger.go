package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/sbalogh/rttr/core/config"
	"github.com/sirupsen/logrus"
)

const defaultLevel = "warning"

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the process logger. On first use the level and format are
// read from RTTR_LOGGING_LEVEL and RTTR_LOGGING_FORMAT. An unknown format
// falls back to text, an unknown level panics.
func Logger() *logrus.Logger {
	once.Do(func() {
		l, err := fromEnv()
		if err != nil {
			panic(err)
		}
		lg = l
	})

	return lg
}

func fromEnv() (*logrus.Logger, error) {
	levelStr := os.Getenv(config.EnvLoggingLevel)
	if levelStr == "" {
		levelStr = defaultLevel
	}

	format := os.Getenv(config.EnvLoggingFormat)
	switch format {
	case config.FormatJSON, config.FormatText:
	default:
		format = config.FormatText
	}

	return New(config.Logging{Level: levelStr, Format: format})
}

// New builds a logger writing to stderr.
func New(cfg config.Logging) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stderr)

	if err := apply(l, cfg); err != nil {
		return nil, err
	}

	return l, nil
}

// Configure applies cfg to the process logger.
func Configure(cfg config.Logging) error {
	return apply(Logger(), cfg)
}

func apply(l *logrus.Logger, cfg config.Logging) error {
	if cfg.Level != "" {
		lvl, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("parsing logging level: %w", err)
		}
		l.SetLevel(lvl)
	}

	switch cfg.Format {
	case config.FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	case config.FormatText, "":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("%w: '%s'", config.ErrInvalidFormat, cfg.Format)
	}

	return nil
}
