package logger

import (
	"context"

	"github.com/alexisbeaulieu97/patterns/internal/ports"
)

// NoOpLogger discards all log entries. The theme store falls back to it when
// constructed without WithLogger.
type NoOpLogger struct{}

// Debug implements ports.Logger.
func (n *NoOpLogger) Debug(context.Context, string, ...interface{}) {}

// Info implements ports.Logger.
func (n *NoOpLogger) Info(context.Context, string, ...interface{}) {}

// Warn implements ports.Logger.
func (n *NoOpLogger) Warn(context.Context, string, ...interface{}) {}

// Error implements ports.Logger.
func (n *NoOpLogger) Error(context.Context, string, ...interface{}) {}

// With implements ports.Logger.
func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOp returns the silent logger used as the store default.
func NewNoOp() ports.Logger {
	return &NoOpLogger{}
}
