package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var allVars = []string{
	"RF_PORT", "RF_DB_PATH", "RF_DEV_MODE", "RF_PERSIST_CATALOG",
	"RF_UPLOAD_MIN_DELAY", "RF_UPLOAD_MAX_DELAY", "RF_UPLOAD_FAILURE_RATE",
	"RF_CORS_ORIGINS", "RF_SESSION_CLEANUP",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allVars {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Errorf("port = %q addr = %q", cfg.Port, cfg.Addr())
	}
	if cfg.DBPath != "" || cfg.DevMode || cfg.PersistCatalog {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Upload.MinDelay != 1500*time.Millisecond || cfg.Upload.MaxDelay != 2500*time.Millisecond {
		t.Errorf("upload delays = %v..%v", cfg.Upload.MinDelay, cfg.Upload.MaxDelay)
	}
	if cfg.Upload.FailureRate != 0.1 {
		t.Errorf("failure rate = %v", cfg.Upload.FailureRate)
	}
	if diff := cmp.Diff([]string{"*"}, cfg.CORSOrigins); diff != "" {
		t.Errorf("cors origins (-want +got):\n%s", diff)
	}
	if cfg.SessionCleanup != "@hourly" {
		t.Errorf("session cleanup = %q", cfg.SessionCleanup)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RF_PORT", "9090")
	t.Setenv("RF_DB_PATH", "/tmp/rf.db")
	t.Setenv("RF_DEV_MODE", "true")
	t.Setenv("RF_PERSIST_CATALOG", "true")
	t.Setenv("RF_UPLOAD_MIN_DELAY", "0s")
	t.Setenv("RF_UPLOAD_MAX_DELAY", "200ms")
	t.Setenv("RF_UPLOAD_FAILURE_RATE", "0")
	t.Setenv("RF_CORS_ORIGINS", "http://localhost:8081, exp://192.168.1.4:8081,")
	t.Setenv("RF_SESSION_CLEANUP", "*/30 * * * *")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" || cfg.DBPath != "/tmp/rf.db" || !cfg.DevMode || !cfg.PersistCatalog {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Upload.MinDelay != 0 || cfg.Upload.MaxDelay != 200*time.Millisecond || cfg.Upload.FailureRate != 0 {
		t.Errorf("upload = %+v", cfg.Upload)
	}
	want := []string{"http://localhost:8081", "exp://192.168.1.4:8081"}
	if diff := cmp.Diff(want, cfg.CORSOrigins); diff != "" {
		t.Errorf("cors origins (-want +got):\n%s", diff)
	}
	if cfg.SessionCleanup != "*/30 * * * *" {
		t.Errorf("session cleanup = %q", cfg.SessionCleanup)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"bad min delay", map[string]string{"RF_UPLOAD_MIN_DELAY": "soon"}},
		{"negative max delay", map[string]string{"RF_UPLOAD_MAX_DELAY": "-1s"}},
		{"max below min", map[string]string{"RF_UPLOAD_MIN_DELAY": "3s", "RF_UPLOAD_MAX_DELAY": "1s"}},
		{"rate not a number", map[string]string{"RF_UPLOAD_FAILURE_RATE": "often"}},
		{"rate above one", map[string]string{"RF_UPLOAD_FAILURE_RATE": "1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.vars {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RF_DEV_MODE", "false")
	// .env values only apply to variables that are not set at all.
	if err := os.Unsetenv("RF_PORT"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "RF_PORT=7070\nRF_DEV_MODE=true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("port = %q, want 7070 from .env", cfg.Port)
	}
	if cfg.DevMode {
		t.Error("existing RF_DEV_MODE should win over .env")
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file: %v", err)
	}
}
