//go:generate mockgen -destination=./mocks/logging.go -package=mocks . Logger

package providers

import (
	"context"

	"github.com/spf13/viper"
)

// Logger is an interface for logging
type Logger interface {
	// Info logs an info message
	Info(ctx context.Context, msg string, tags ...map[string]any)
	// Error logs an error message
	Error(ctx context.Context, msg string, tags ...map[string]any)
	// Warn logs a warning message
	Warn(ctx context.Context, msg string, tags ...map[string]any)
	// Debug logs a debug message
	Debug(ctx context.Context, msg string, tags ...map[string]any)
}

// LoggingProvider is a function that returns a Logger
type LoggingProvider func(ctx context.Context, cfg *viper.Viper) (Logger, error)
