// Package logger builds the service's zerolog instances. Every line
// carries the service name; components attach their own context through
// the With helpers.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the log level and output shape. Values come from the
// application config; an unknown level falls back to info.
type Config struct {
	// Level is the minimum level emitted (debug, info, warn, error)
	Level string

	// Format is json for machine ingestion or console for local runs
	Format string

	// EnableCaller adds the file:line of the call site to each entry
	EnableCaller bool

	// ServiceName is stamped on every entry as the service field
	ServiceName string
}

// Logger embeds a zerolog.Logger preconfigured with service context.
type Logger struct {
	zerolog.Logger
}

// New builds a logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput builds a logger writing to the given writer. Tests pass
// a buffer here to assert on emitted fields.
func NewWithOutput(cfg Config, out io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writer := out
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithField returns a copy of the logger carrying one extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.Logger.With().Str(key, value).Logger()}
}

// WithRequestID tags log lines with the request correlation ID.
func (l *Logger) WithRequestID(id string) *Logger {
	return l.WithField("request_id", id)
}

// WithProvider tags log lines with the resource-type provider being
// queried (destination, flight, accommodation, activity).
func (l *Logger) WithProvider(name string) *Logger {
	return l.WithField("provider", name)
}

// WithSearchID tags log lines with the search being served.
func (l *Logger) WithSearchID(id string) *Logger {
	return l.WithField("search_id", id)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Global is the process-wide logger, installed once at startup.
var Global *Logger

// SetGlobal installs l as the process-wide logger.
func SetGlobal(l *Logger) {
	Global = l
}
