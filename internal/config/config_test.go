package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var benchKeys = []string{
	"CACHE_CAPACITY",
	"BENCH_OPERATIONS",
	"BENCH_KEY_SPACE",
	"BENCH_CACHE_SIZE",
	"BENCH_SEED",
	"BENCH_SOURCE_COST",
	"BENCH_DISTRIBUTION",
	"BENCH_PROGRESS_EVERY",
}

// isolate runs the test from an empty directory so no stray .env is picked up.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range benchKeys {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Cache.Capacity != 3 {
		t.Errorf("expected capacity 3, got %d", cfg.Cache.Capacity)
	}
	if cfg.Bench.Operations != 500000 {
		t.Errorf("expected 500000 operations, got %d", cfg.Bench.Operations)
	}
	if cfg.Bench.KeySpace != 70 || cfg.Bench.CacheSize != 50 {
		t.Errorf("expected key space 70 and cache size 50, got %d and %d", cfg.Bench.KeySpace, cfg.Bench.CacheSize)
	}
	if cfg.Bench.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Bench.Seed)
	}
	if cfg.Bench.Distribution != "uniform" {
		t.Errorf("expected uniform distribution, got %q", cfg.Bench.Distribution)
	}
	if cfg.Bench.ProgressEvery != time.Second {
		t.Errorf("expected progress every 1s, got %s", cfg.Bench.ProgressEvery)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CACHE_CAPACITY", "8")
	t.Setenv("BENCH_SEED", "9000000000")
	t.Setenv("BENCH_DISTRIBUTION", "ZIPF")
	t.Setenv("BENCH_PROGRESS_EVERY", "250ms")
	t.Setenv("BENCH_KEY_SPACE", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Cache.Capacity != 8 {
		t.Errorf("expected capacity 8, got %d", cfg.Cache.Capacity)
	}
	if cfg.Bench.Seed != 9000000000 {
		t.Errorf("expected seed 9000000000, got %d", cfg.Bench.Seed)
	}
	if cfg.Bench.Distribution != "zipf" {
		t.Errorf("expected zipf distribution, got %q", cfg.Bench.Distribution)
	}
	if cfg.Bench.ProgressEvery != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", cfg.Bench.ProgressEvery)
	}
	if cfg.Bench.KeySpace != 70 {
		t.Errorf("expected unparsable value to fall back to 70, got %d", cfg.Bench.KeySpace)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolate(t)
	os.Unsetenv("CACHE_CAPACITY")

	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("CACHE_CAPACITY=5\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.Capacity != 5 {
		t.Errorf("expected capacity 5 from .env, got %d", cfg.Cache.Capacity)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero capacity", "CACHE_CAPACITY", "0"},
		{"negative operations", "BENCH_OPERATIONS", "-5"},
		{"zero cache size", "BENCH_CACHE_SIZE", "0"},
		{"negative cost", "BENCH_SOURCE_COST", "-1"},
		{"unknown distribution", "BENCH_DISTRIBUTION", "pareto"},
		{"negative progress", "BENCH_PROGRESS_EVERY", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
			if cfg != nil {
				t.Error("expected nil config on error")
			}
		})
	}
}
