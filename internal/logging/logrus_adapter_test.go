package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "uppercase level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "invalid", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterWithOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapterWithOutput("info", "json", &buf)
	logger.Info("portfolio created", F(FieldPortfolioID, "p-1"))

	assert.Contains(t, buf.String(), `"portfolio_id":"p-1"`)
	assert.Contains(t, buf.String(), "portfolio created")
}

func TestNewLogrusAdapterFromLogger(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		existingLogger := logrus.New()
		logger := NewLogrusAdapterFromLogger(existingLogger)

		adapter, ok := logger.(*LogrusAdapter)
		require.True(t, ok)
		assert.Equal(t, existingLogger, adapter.logger)
	})

	t.Run("with nil logger creates new one", func(t *testing.T) {
		adapter, ok := NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
		require.True(t, ok)
		assert.NotNil(t, adapter.logger)
	})
}

func TestLogrusAdapter_LoggingMethods(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...Field)
		message string
	}{
		{name: "Debug", logFunc: func(l Logger, msg string, f ...Field) { l.Debug(msg, f...) }, message: "debug message"},
		{name: "Info", logFunc: func(l Logger, msg string, f ...Field) { l.Info(msg, f...) }, message: "info message"},
		{name: "Warn", logFunc: func(l Logger, msg string, f ...Field) { l.Warn(msg, f...) }, message: "warn message"},
		{name: "Error", logFunc: func(l Logger, msg string, f ...Field) { l.Error(msg, f...) }, message: "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferedLogger(logrus.DebugLevel)
			tt.logFunc(logger, tt.message, F(FieldDebtID, "d-7"))

			assert.Contains(t, buf.String(), tt.message)
			assert.Contains(t, buf.String(), "debt_id=d-7")
		})
	}
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := bufferedLogger(logrus.InfoLevel)
	testErr := errors.New("disk full")

	logger.
		WithField(FieldOperation, "add_debt").
		WithFields(F(FieldKey, "financeos_portfolios")).
		WithError(testErr).
		Error("persist failed")

	output := buf.String()
	assert.Contains(t, output, "persist failed")
	assert.Contains(t, output, "add_debt")
	assert.Contains(t, output, "financeos_portfolios")
	assert.Contains(t, output, "disk full")
}

func TestNewDiscardLogger(t *testing.T) {
	logger := NewDiscardLogger()
	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.WithField("k", "v").Warn("ignored") })
}

func TestConvertFields(t *testing.T) {
	logrusFields := convertFields([]Field{F("key1", "value1"), F("key2", 42)})

	assert.Len(t, logrusFields, 2)
	assert.Equal(t, "value1", logrusFields["key1"])
	assert.Equal(t, 42, logrusFields["key2"])
	assert.Len(t, convertFields(nil), 0)
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
