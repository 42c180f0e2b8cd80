// Package logger provides configured zerolog loggers for the binaries.
package logger

import (
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON logger for a long-running service. When logFile is not
// empty, records are also written to that file with size-based rotation.
// Call sites should use .Stack() on error events to include stacks.
func New(serviceName, logFile string) zerolog.Logger {
	installStackMarshalers()

	var out io.Writer = os.Stdout
	if logFile != "" {
		out = zerolog.MultiLevelWriter(os.Stdout, RotatingFile(logFile))
	}
	return zerolog.New(out).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger on stderr for command-line
// tools. debug lowers the level from info to debug.
func NewConsole(debug bool, logFile string) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if logFile != "" {
		out = zerolog.MultiLevelWriter(out, RotatingFile(logFile))
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// RotatingFile returns a writer that rotates path at 10 MB, keeping three
// compressed backups for at most 28 days.
func RotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
		LocalTime:  true,
	}
}

func installStackMarshalers() {
	// Configure zerolog to work with github.com/pkg/errors: marshal stacks
	// when present and attach one to std errors when .Stack() is used.
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}
}
