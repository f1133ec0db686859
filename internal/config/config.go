package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Cache CacheConfig
	Bench BenchConfig
}

type CacheConfig struct {
	Capacity int
}

type BenchConfig struct {
	Operations    int
	KeySpace      int
	CacheSize     int
	Seed          int64
	SourceCost    int
	Distribution  string
	ProgressEvery time.Duration
}

func Load() (*Config, error) {
	// Load .env if it exists (local dev), ignore if not
	_ = godotenv.Load()

	cfg := &Config{
		Cache: CacheConfig{
			Capacity: getEnvAsInt("CACHE_CAPACITY", 3),
		},
		Bench: BenchConfig{
			Operations:    getEnvAsInt("BENCH_OPERATIONS", 500000),
			KeySpace:      getEnvAsInt("BENCH_KEY_SPACE", 70),
			CacheSize:     getEnvAsInt("BENCH_CACHE_SIZE", 50),
			Seed:          getEnvAsInt64("BENCH_SEED", 42),
			SourceCost:    getEnvAsInt("BENCH_SOURCE_COST", 50000),
			Distribution:  strings.ToLower(getEnv("BENCH_DISTRIBUTION", "uniform")),
			ProgressEvery: getEnvAsDuration("BENCH_PROGRESS_EVERY", time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Cache.Capacity < 1 {
		errs = append(errs, fmt.Errorf("%w: CACHE_CAPACITY must be at least 1, got %d", ErrInvalidConfig, c.Cache.Capacity))
	}
	if c.Bench.Operations < 1 {
		errs = append(errs, fmt.Errorf("%w: BENCH_OPERATIONS must be at least 1, got %d", ErrInvalidConfig, c.Bench.Operations))
	}
	if c.Bench.KeySpace < 1 {
		errs = append(errs, fmt.Errorf("%w: BENCH_KEY_SPACE must be at least 1, got %d", ErrInvalidConfig, c.Bench.KeySpace))
	}
	if c.Bench.CacheSize < 1 {
		errs = append(errs, fmt.Errorf("%w: BENCH_CACHE_SIZE must be at least 1, got %d", ErrInvalidConfig, c.Bench.CacheSize))
	}
	if c.Bench.SourceCost < 0 {
		errs = append(errs, fmt.Errorf("%w: BENCH_SOURCE_COST must not be negative, got %d", ErrInvalidConfig, c.Bench.SourceCost))
	}
	switch c.Bench.Distribution {
	case "uniform", "zipf":
	default:
		errs = append(errs, fmt.Errorf("%w: BENCH_DISTRIBUTION must be uniform or zipf, got %q", ErrInvalidConfig, c.Bench.Distribution))
	}
	if c.Bench.ProgressEvery < 0 {
		errs = append(errs, fmt.Errorf("%w: BENCH_PROGRESS_EVERY must not be negative, got %s", ErrInvalidConfig, c.Bench.ProgressEvery))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
