// Package log provides a structured logger used across linesample, backed by
// logrus. Log output is kept separate from sampled lines; the CLI points it
// at stderr so stdout stays clean for selected lines.
package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Modular is a log printer that allows adding fields.
type Modular interface {
	WithFields(fields map[string]string) Modular
	With(keyValues ...any) Modular

	Fatal(format string, v ...any)
	Error(format string, v ...any)
	Warn(format string, v ...any)
	Info(format string, v ...any)
	Debug(format string, v ...any)
	Trace(format string, v ...any)
}

// Config holds configuration options for a logger object.
type Config struct {
	LogLevel     string
	Format       string
	AddTimeStamp bool
	StaticFields map[string]string
}

// NewConfig returns a config struct with the default values for each field.
func NewConfig() Config {
	return Config{
		LogLevel:     "INFO",
		Format:       "logfmt",
		AddTimeStamp: false,
		StaticFields: map[string]string{
			"@service": "linesample",
		},
	}
}

//------------------------------------------------------------------------------

// Logger is an object with support for levelled logging and modular
// components.
type Logger struct {
	entry *logrus.Entry
}

// New returns a new logger from a config, or an error if the config is
// invalid.
func New(stream io.Writer, config Config) (Modular, error) {
	logger := logrus.New()
	logger.Out = stream

	switch config.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: !config.AddTimeStamp,
		})
	case "logfmt":
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: !config.AddTimeStamp,
			FullTimestamp:    config.AddTimeStamp,
			QuoteEmptyFields: true,
			DisableColors:    true,
		})
	default:
		return nil, fmt.Errorf("log format '%v' not recognized", config.Format)
	}

	switch strings.ToUpper(config.LogLevel) {
	case "OFF", "NONE":
		logger.Level = logrus.PanicLevel
	case "FATAL":
		logger.Level = logrus.FatalLevel
	case "ERROR":
		logger.Level = logrus.ErrorLevel
	case "WARN":
		logger.Level = logrus.WarnLevel
	case "INFO":
		logger.Level = logrus.InfoLevel
	case "DEBUG":
		logger.Level = logrus.DebugLevel
	case "TRACE":
		logger.Level = logrus.TraceLevel
	default:
		return nil, fmt.Errorf("log level '%v' not recognized", config.LogLevel)
	}

	sFields := logrus.Fields{}
	for k, v := range config.StaticFields {
		sFields[k] = v
	}
	logEntry := logger.WithFields(sFields)

	return &Logger{entry: logEntry}, nil
}

// Noop creates and returns a new logger object that writes nothing.
func Noop() Modular {
	logger := logrus.New()
	logger.Out = io.Discard
	return &Logger{entry: logger.WithFields(logrus.Fields{})}
}

//------------------------------------------------------------------------------

// WithFields returns a logger with new fields added to the JSON formatted
// output.
func (l *Logger) WithFields(inboundFields map[string]string) Modular {
	newFields := make(logrus.Fields, len(inboundFields))
	for k, v := range inboundFields {
		newFields[k] = v
	}
	return &Logger{entry: l.entry.WithFields(newFields)}
}

// With returns a copy of the logger with new labels added to the logging
// context.
func (l *Logger) With(keyValues ...any) Modular {
	newEntry := l.entry
	for i := 0; i < (len(keyValues) - 1); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyValues[i])
		}
		newEntry = newEntry.WithField(key, keyValues[i+1])
	}
	return &Logger{entry: newEntry}
}

// Fatal prints a fatal message to the console. Does NOT cause panic.
func (l *Logger) Fatal(format string, v ...any) {
	l.entry.Errorf(strings.TrimSuffix(format, "\n"), v...)
}

// Error prints an error message to the console.
func (l *Logger) Error(format string, v ...any) {
	l.entry.Errorf(strings.TrimSuffix(format, "\n"), v...)
}

// Warn prints a warning message to the console.
func (l *Logger) Warn(format string, v ...any) {
	l.entry.Warnf(strings.TrimSuffix(format, "\n"), v...)
}

// Info prints an information message to the console.
func (l *Logger) Info(format string, v ...any) {
	l.entry.Infof(strings.TrimSuffix(format, "\n"), v...)
}

// Debug prints a debug message to the console.
func (l *Logger) Debug(format string, v ...any) {
	l.entry.Debugf(strings.TrimSuffix(format, "\n"), v...)
}

// Trace prints a trace message to the console.
func (l *Logger) Trace(format string, v ...any) {
	l.entry.Tracef(strings.TrimSuffix(format, "\n"), v...)
}
