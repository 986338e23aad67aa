package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level info, got %s", cfg.Logging.Level)
	}
	if cfg.Interleave.EndPolicy != "clamp" {
		t.Errorf("expected end policy clamp, got %s", cfg.Interleave.EndPolicy)
	}
	if cfg.Interleave.BufferSize != 1024 {
		t.Errorf("expected buffer size 1024, got %d", cfg.Interleave.BufferSize)
	}
	if cfg.Observability.ServiceName != "weave" {
		t.Errorf("expected service name weave, got %s", cfg.Observability.ServiceName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"bad end policy", func(c *Config) { c.Interleave.EndPolicy = "truncate" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"zero buffer", func(c *Config) { c.Interleave.BufferSize = -1 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := []byte("logging:\n  level: \"debug\"\ninterleave:\n  end_policy: \"reject\"\n  trust_sorted: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := Load(&cfg, WithConfigFile(path)); err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Logging.Level)
	}
	if cfg.Interleave.EndPolicy != "reject" {
		t.Errorf("expected reject, got %s", cfg.Interleave.EndPolicy)
	}
	if !cfg.Interleave.TrustSorted {
		t.Error("expected trust_sorted true")
	}
	// untouched keys fall back to defaults
	if cfg.Interleave.BufferSize != 1024 {
		t.Errorf("expected default buffer size, got %d", cfg.Interleave.BufferSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WEAVE_INTERLEAVE_END_POLICY", "reject")
	t.Setenv("WEAVE_LOGGING_FORMAT", "json")

	var cfg Config
	if err := Load(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Interleave.EndPolicy != "reject" {
		t.Errorf("expected reject from env, got %s", cfg.Interleave.EndPolicy)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json from env, got %s", cfg.Logging.Format)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("WEAVE_LOGGING_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := Load(&cfg, WithEnvFile(envPath)); err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn from .env, got %s", cfg.Logging.Level)
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	t.Setenv("WEAVE_INTERLEAVE_END_POLICY", "truncate")

	var cfg Config
	if err := Load(&cfg); err == nil {
		t.Fatal("expected validation error for bad end policy")
	}
}
