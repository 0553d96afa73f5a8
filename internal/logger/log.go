package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/GlitchedDuck/Manager-hub/internal/config"
	"github.com/lmittmann/tint"
	"golang.org/x/term"
	"gopkg.in/lumberjack.v2"
)

// Init installs the process-wide slog logger. Format "text" gives tinted
// console output; anything else is JSON. A configured file is rotated by
// lumberjack and always receives JSON.
func Init(cfg config.LogConfig) {
	slog.SetDefault(slog.New(NewHandler(cfg, os.Stdout)))
	Info("logger initialized", "level", cfg.Level, "format", cfg.Format, "file", cfg.File)
}

// NewHandler builds the handler Init installs, writing console output to w.
func NewHandler(cfg config.LogConfig, w io.Writer) slog.Handler {
	level := parseLevel(cfg.Level)

	var handlers []slog.Handler
	if cfg.Console || cfg.File == "" {
		if strings.EqualFold(cfg.Format, "text") {
			handlers = append(handlers, tint.NewHandler(w, &tint.Options{
				Level:      level,
				TimeFormat: time.DateTime,
				NoColor:    !isTerminal(w),
			}))
		} else {
			handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
		}
	}
	if cfg.File != "" {
		handlers = append(handlers, slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}, &slog.HandlerOptions{Level: level}))
	}
	if len(handlers) == 1 {
		return handlers[0]
	}
	return fanout(handlers)
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
