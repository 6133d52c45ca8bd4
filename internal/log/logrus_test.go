package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		message  string
		level    string
		format   string
		expected string
	}{
		{
			name:    "logger with default format and level emits INFO logs",
			message: "Info message",
			expected: `level=info msg="Info message" @service=linesample_service @system=foo
`,
		},
		{
			name:    "logger with DEBUG level emits DEBUG logs",
			level:   "DEBUG",
			message: "Info message",
			expected: `level=debug msg="debug message" @service=linesample_service @system=foo
level=info msg="Info message" @service=linesample_service @system=foo
`,
		},
		{
			name: "logger with WARN level and custom fields doesn't emit INFO logs",
			fields: map[string]string{
				"foo": "bar",
			},
			level:   "WARN",
			message: "Warning message",
			expected: `level=warning msg="Warning message" @service=linesample_service @system=foo foo=bar
`,
		},
		{
			name: "logger with json format",
			fields: map[string]string{
				"foo": "bar",
			},
			level:   "WARN",
			format:  "json",
			message: "Warning message foo fields",
			expected: `{"@service":"linesample_service","@system":"foo","foo":"bar","level":"warning","msg":"Warning message foo fields"}
`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			loggerConfig := NewConfig()
			loggerConfig.AddTimeStamp = false
			loggerConfig.StaticFields = map[string]string{
				"@service": "linesample_service",
				"@system":  "foo",
			}

			if test.level != "" {
				loggerConfig.LogLevel = test.level
			}
			if test.format != "" {
				loggerConfig.Format = test.format
			}

			var buf bytes.Buffer
			logger, err := New(&buf, loggerConfig)
			require.NoError(t, err)

			if test.fields != nil {
				logger = logger.WithFields(test.fields)
			}
			logger.Debug("debug message")
			switch test.level {
			case "WARN":
				logger.Warn(test.message)
			default:
				logger.Info(test.message)
			}

			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	conf := NewConfig()
	conf.LogLevel = "SHOUTING"

	_, err := New(&bytes.Buffer{}, conf)
	require.Error(t, err)
}

func TestLoggerRejectsUnknownFormat(t *testing.T) {
	conf := NewConfig()
	conf.Format = "xml"

	_, err := New(&bytes.Buffer{}, conf)
	require.Error(t, err)
}

func TestLoggerWith(t *testing.T) {
	conf := NewConfig()
	conf.StaticFields = map[string]string{
		"@service": "linesample_service",
	}

	var buf bytes.Buffer
	logger, err := New(&buf, conf)
	require.NoError(t, err)

	logger.With("mode", "reservoir", "k", 10).Info("sampling")
	assert.Equal(t, `level=info msg=sampling @service=linesample_service k=10 mode=reservoir
`, buf.String())
}
