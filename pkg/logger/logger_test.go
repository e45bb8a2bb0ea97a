package logger

import (
	"path/filepath"
	"testing"
	"trivia_backend/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		level string
		want  zapcore.Level
	}{
		{"explicit level wins", "debug", "warn", zapcore.WarnLevel},
		{"debug mode", "debug", "", zapcore.DebugLevel},
		{"release mode", "release", "", zapcore.InfoLevel},
		{"bad level falls back", "release", "loud", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Mode = tt.mode
			cfg.Log.Level = tt.level
			if got := parseLevel(cfg); got != tt.want {
				t.Fatalf("parseLevel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitLoggerReplacesNop(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	cfg := &config.Config{}
	cfg.Server.Mode = "release"
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")

	InitLogger(cfg)
	if !Log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info level should be enabled after InitLogger")
	}
	if Log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level should be disabled in release mode")
	}
}
