// Package lumber wraps zap and logrus behind a single printf style Logger.
package lumber

import (
	"strings"

	"github.com/LambdaTest/coverage-status/pkg/errs"
)

// LoggingConfig stores the config for the logger.
// For logrus there is a single level across writers, the Console level is picked when set.
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// Fields Type to pass when we want to call WithFields for structured logging
type Fields map[string]interface{}

const (
	// Debug has verbose message
	Debug = "debug"
	// Info is default log level
	Info = "info"
	// Warn is for logging messages about possible issues
	Warn = "warn"
	// Error is for logging errors
	Error = "error"
	// Fatal is for logging fatal messages. The system shutsdown after logging the message.
	Fatal = "fatal"
)

// List of supported loggers.
const (
	InstanceZapLogger int = iota
	InstanceLogrusLogger
)

var instanceNames = map[string]int{
	"zap":    InstanceZapLogger,
	"logrus": InstanceLogrusLogger,
}

// Logger is our contract for the logger
type Logger interface {
	// Debugf logs a message at level Debug on the standard logger.
	Debugf(format string, args ...interface{})
	// Infof logs a message at level Info on the standard logger.
	Infof(format string, args ...interface{})
	// Warnf logs a message at level Warn on the standard logger.
	Warnf(format string, args ...interface{})
	// Errorf logs a message at level Error on the standard logger.
	Errorf(format string, args ...interface{})
	// Fatalf logs a message at level Fatal on the standard logger then the process will exit with status set to 1.
	Fatalf(format string, args ...interface{})
	// Panicf logs a message at level Panic on the standard logger.
	Panicf(format string, args ...interface{})
	// WithFields creates an entry carrying the given fields.
	// Nothing is logged until one of the level methods is called on the returned Logger.
	WithFields(keyValues Fields) Logger
}

// ParseInstance maps a logger name (zap, logrus) to its instance constant.
// An empty name selects zap.
func ParseInstance(name string) (int, error) {
	if name == "" {
		return InstanceZapLogger, nil
	}
	instance, ok := instanceNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return -1, errs.ErrInvalidLoggerInstance
	}
	return instance, nil
}

// NewLogger returns an instance of logger. Every secret is masked in the console and file output.
func NewLogger(config LoggingConfig, verbose bool, loggerInstance int, secrets ...string) (Logger, error) {
	switch loggerInstance {
	case InstanceZapLogger:
		return newZapLogger(config, verbose, secrets), nil
	case InstanceLogrusLogger:
		return newLogrusLogger(config, verbose, secrets)
	default:
		return nil, errs.ErrInvalidLoggerInstance
	}
}
