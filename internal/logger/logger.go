package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"servi-search/internal/config"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger. Console format is meant for local runs;
// everything else writes JSON. When a file path is set, output is teed into
// a size-rotated file.
func New(cfg config.LogConfig, appName string) (zerolog.Logger, error) {
	var out io.Writer = os.Stdout
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return zerolog.Nop(), err
		}
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
	}

	l := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp()
	if appName != "" {
		l = l.Str("app", appName)
	}
	return l.Logger(), nil
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}
