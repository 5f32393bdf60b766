package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Process-wide leveled logger backed by log/slog.
// Init sets the level, SetFormat switches between text and json output.

var (
	mu     sync.RWMutex
	level  = new(slog.LevelVar)
	out    io.Writer = os.Stdout
	format           = "text"
	base             = build()
)

// LevelFatal sits above slog's error level so fatal records survive any filter.
const LevelFatal = slog.Level(12)

func build() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok && lv == LevelFatal {
					a.Value = slog.StringValue("FATAL")
				}
			}
			return a
		},
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(slog.NewTextHandler(out, opts))
}

func parseLevel(l string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "fatal":
		return LevelFatal
	default:
		return slog.LevelInfo
	}
}

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Unknown input falls back to info.
func Init(l string) {
	level.Set(parseLevel(l))
}

// SetFormat selects "json" or "text" (default) output.
func SetFormat(f string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.EqualFold(strings.TrimSpace(f), "json") {
		format = "json"
	} else {
		format = "text"
	}
	base = build()
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	base = build()
}

// L returns the underlying structured logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func logf(lv slog.Level, f string, v ...interface{}) {
	l := L()
	if !l.Enabled(context.Background(), lv) {
		return
	}
	l.Log(context.Background(), lv, fmt.Sprintf(f, v...))
}

func Debugf(f string, v ...interface{}) { logf(slog.LevelDebug, f, v...) }
func Infof(f string, v ...interface{})  { logf(slog.LevelInfo, f, v...) }
func Warnf(f string, v ...interface{})  { logf(slog.LevelWarn, f, v...) }
func Errorf(f string, v ...interface{}) { logf(slog.LevelError, f, v...) }

func Fatalf(f string, v ...interface{}) {
	logf(LevelFatal, f, v...)
	os.Exit(1)
}

// Println kept for brief messages (maps to Info)
func Println(v ...interface{}) {
	logf(slog.LevelInfo, "%s", strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// LevelString returns the current level as text.
func LevelString() string {
	switch lv := level.Level(); {
	case lv >= LevelFatal:
		return "fatal"
	case lv >= slog.LevelError:
		return "error"
	case lv >= slog.LevelWarn:
		return "warn"
	case lv >= slog.LevelInfo:
		return "info"
	default:
		return "debug"
	}
}
