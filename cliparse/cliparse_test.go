// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// cliparse/cliparse_test.go
package cliparse

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// clearEnv blanks every variable ParseFlags reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "LOG_FORMAT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func noEnvFile(t *testing.T) string {
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := ParseFlags([]string{noEnvFile(t)})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{noEnvFile(t), "-p", "8080", "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{noEnvFile(t), "-d", "file:test.db"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected default text log format, got %s", cfg.LogFormat)
	}
	level, err := cfg.SlogLevel()
	if err != nil || level != slog.LevelInfo {
		t.Errorf("expected info level, got %v (%v)", level, err)
	}
}

func TestParseFlags_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("DATABASE_URL=file:dotenv.db\nPORT=7000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("PORT")
	})

	cfg, err := ParseFlags([]string{"-env-file", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "file:dotenv.db" {
		t.Errorf("expected URL from .env, got %q", cfg.DatabaseURL)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"missing database url", nil, nil},
		{"invalid port env", map[string]string{"PORT": "abc", "DATABASE_URL": "x"}, nil},
		{"unsupported database type", nil, []string{"-d", "x", "-t", "mysql"}},
		{"unsupported log format", nil, []string{"-d", "x", "-log-format", "xml"}},
		{"unsupported log level", nil, []string{"-d", "x", "-log-level", "loud"}},
		{"unknown flag", nil, []string{"-nope"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			args := append([]string{noEnvFile(t)}, tc.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		format    string
		level     string
		json      bool
		debugOn   bool
		warningOn bool
	}{
		{"text", "info", false, false, true},
		{"json", "debug", true, true, true},
		{"text", "error", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.format+"/"+tc.level, func(t *testing.T) {
			logger := Config{LogFormat: tc.format, LogLevel: tc.level}.NewLogger()

			_, isJSON := logger.Handler().(*slog.JSONHandler)
			if isJSON != tc.json {
				t.Errorf("expected JSON handler %v, got %T", tc.json, logger.Handler())
			}
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tc.debugOn {
				t.Errorf("expected debug enabled %v, got %v", tc.debugOn, got)
			}
			if got := logger.Enabled(context.Background(), slog.LevelWarn); got != tc.warningOn {
				t.Errorf("expected warn enabled %v, got %v", tc.warningOn, got)
			}
		})
	}
}
