package logger

import (
	"go.uber.org/zap"
)

var _logger = newDefaultLogger()

func newDefaultLogger() *zap.Logger {
	c := zap.NewProductionConfig()
	c.DisableStacktrace = true
	l, err := c.Build()
	if err != nil {
		panic(err)
	}
	return l
}

// InitLogger rebuilds the process logger, optionally in development mode.
func InitLogger(pretty bool) error {
	var c zap.Config
	if pretty {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
		c.DisableStacktrace = true
	}

	l, err := c.Build()
	if err != nil {
		return err
	}
	_logger = l
	return nil
}

// Log returns the process-wide logger.
func Log() *zap.Logger {
	return _logger
}
