// Package log wraps [log/slog] with a package-level logger and a
// [Level] type that can be disabled entirely or used as a command-line
// flag.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

// DiscardHandler suppresses all log output.
var DiscardHandler Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]Attr) Handler                  { return discardHandler{} }
func (discardHandler) WithGroup(string) Handler                  { return discardHandler{} }

var (
	level         = new(slog.LevelVar)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// SetLogLevel sets the minimum level of the default handlers.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// SetHandler sets the default logger's handler to the one given.
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}

// SetTextHandler sets the default logger's handler to a text handler
// writing to w at the level set by [SetLogLevel].
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler sets the default logger's handler to a JSON handler
// writing to w at the level set by [SetLogLevel].
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Debug logs at [LevelDebug].
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs at [LevelInfo].
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs at [LevelWarn].
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs at [LevelError]. A non-nil err is prepended to args as the
// "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}

	defaultLogger.Error(msg, args...)
}

// Fatal logs like [Error] and then exits the process.
func Fatal(msg string, err error, args ...any) {
	Error(msg, err, args...)
	os.Exit(1)
}
