package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// no-op until InitStructured runs, so early callers never panic
var zlog = zerolog.Nop()

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	var w io.Writer

	if env == "development" || env == "dev" {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "denwa-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithProjectID returns a logger with project_id field
func WithProjectID(projectID int) zerolog.Logger {
	return zlog.With().Int("project_id", projectID).Logger()
}

// WithOperatorID returns a logger with operator_id field
func WithOperatorID(operatorID int) zerolog.Logger {
	return zlog.With().Int("operator_id", operatorID).Logger()
}
