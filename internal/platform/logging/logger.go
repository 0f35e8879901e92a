// Package logging provides the process-wide structured logger and the
// request-scoped helpers built on top of it.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// RFC3339Micros is the timestamp layout written to every log line.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z07:00"

const (
	levelCritical  = slog.LevelError + 4
	levelEmergency = slog.LevelError + 12
)

var severityNames = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARNING",
	slog.LevelError: "ERROR",
	levelCritical:   "CRITICAL",
	levelEmergency:  "EMERGENCY",
}

var (
	loggerOnce sync.Once
	baseLogger *slog.Logger
	level      = new(slog.LevelVar)
)

// utcHandler normalises record times to UTC before delegating.
type utcHandler struct {
	slog.Handler
}

func (h *utcHandler) Handle(ctx context.Context, r slog.Record) error {
	r.Time = r.Time.UTC()
	return h.Handler.Handle(ctx, r)
}

func (h *utcHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &utcHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *utcHandler) WithGroup(name string) slog.Handler {
	return &utcHandler{Handler: h.Handler.WithGroup(name)}
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "timestamp"
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(RFC3339Micros))
	case slog.LevelKey:
		a.Key = "severity"
		if lvl, ok := a.Value.Any().(slog.Level); ok {
			if name, found := severityNames[lvl]; found {
				a.Value = slog.StringValue(name)
			}
		}
	case slog.MessageKey:
		a.Key = "message"
	}
	return a
}

// New builds a JSON logger writing to w with the shared key layout and level.
func New(w io.Writer) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})
	return slog.New(&utcHandler{Handler: h})
}

// Logger returns the process-wide slog.Logger instance.
func Logger() *slog.Logger {
	loggerOnce.Do(func() {
		baseLogger = New(os.Stdout)
	})
	return baseLogger
}

// SetLevel changes the minimum level of every logger built by this package.
// Accepted values: debug, info, warn, error.
func SetLevel(name string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.Set(lvl)
	return nil
}
