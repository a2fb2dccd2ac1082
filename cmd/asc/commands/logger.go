package commands

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/fivetwenty-io/asc/pkg/asc"
)

// ZapLogger adapts a zap logger to asc.Logger.
type ZapLogger struct {
	logger *zap.Logger
}

var _ asc.Logger = (*ZapLogger)(nil)

// NewZapLogger builds a logger writing to stderr. Verbose selects the
// development console encoder at debug level; otherwise JSON at info level.
func NewZapLogger(verbose bool) (*ZapLogger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
	}

	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return NewZapLoggerFrom(logger), nil
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, zapFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, zapFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, zapFields(fields)...)
}

func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, zapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

// zapFields converts fields in key order so output is stable.
func zapFields(fields map[string]interface{}) []zap.Field {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	converted := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		converted = append(converted, zap.Any(key, fields[key]))
	}

	return converted
}
