// Package logging configures the global zerolog logger. Diagnostics go to
// stderr, and optionally to a rotating file, so stdout stays reserved for
// prompts and reports.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// File, when set, receives JSON logs rotated by size.
	File string
	// Console defaults to os.Stderr.
	Console io.Writer
	NoColor bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the logger as log.Logger and returns a closer for the
// file sink. Every event carries the run_id of this invocation.
func Setup(opts Options) (io.Closer, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen, NoColor: opts.NoColor}}

	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		writers = append(writers, file)
		closer = file
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	return closer, nil
}
