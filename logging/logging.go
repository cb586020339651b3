// Package logging builds the charmbracelet/log loggers used by the dialog
// hosts. Output goes to stderr and, when a file is configured, to a rotating
// log file as well.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction. FromEnv reads them from
//   - DIALOG_LOG_LEVEL=debug|info|warn|error
//   - DIALOG_LOG_FORMAT=text|json
//   - DIALOG_LOG_FILE=<path>
type Options struct {
	Level  string
	Format string
	File   string
	Prefix string
}

// FromEnv builds Options from the environment.
func FromEnv() Options {
	return Options{
		Level:  getenv("DIALOG_LOG_LEVEL", "info"),
		Format: getenv("DIALOG_LOG_FORMAT", "text"),
		File:   os.Getenv("DIALOG_LOG_FILE"),
	}
}

// New returns a logger for opts and the writer closer for the log file, if
// any. Unknown levels fall back to info.
func New(opts Options) (*log.Logger, io.Closer) {
	return NewTo(os.Stderr, opts)
}

// NewTo is New writing to w instead of stderr.
func NewTo(w io.Writer, opts Options) (*log.Logger, io.Closer) {
	if file := strings.TrimSpace(opts.File); file != "" {
		lj := &lumberjack.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		return NewWithWriter(io.MultiWriter(w, lj), opts), lj
	}
	return NewWithWriter(w, opts), nopCloser{}
}

// NewFileOnly is New without the stderr sink, for hosts that own the
// terminal. Without a file the logger discards everything.
func NewFileOnly(opts Options) (*log.Logger, io.Closer) {
	return NewTo(io.Discard, opts)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, opts Options) *log.Logger {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
	})
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
