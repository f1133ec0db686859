package benchmark

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Varun5711/lrucache/internal/cache"
	"github.com/Varun5711/lrucache/internal/config"
	"github.com/Varun5711/lrucache/internal/logger"
	"github.com/Varun5711/lrucache/internal/workload"
)

func quietLogger() *logger.Logger {
	log := logger.New("bench-test")
	log.SetOutput(io.Discard)
	return log
}

func TestRun(t *testing.T) {
	opts := Options{
		Operations:   5000,
		KeySpace:     70,
		CacheSize:    50,
		Seed:         42,
		SourceCost:   10,
		Distribution: workload.Uniform,
	}

	res, err := Run(context.Background(), opts, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.RunID == "" {
		t.Error("expected a run id")
	}
	if res.Operations != 5000 {
		t.Errorf("expected 5000 operations, got %d", res.Operations)
	}
	if res.Hits+res.Misses != 5000 {
		t.Errorf("expected hits+misses=5000, got %d", res.Hits+res.Misses)
	}
	// Every key misses at least once on first sight.
	if res.Misses < 70 {
		t.Errorf("expected at least 70 misses, got %d", res.Misses)
	}
	if res.HitRatio() <= 0 || res.HitRatio() >= 1 {
		t.Errorf("expected hit ratio in (0, 1), got %v", res.HitRatio())
	}
}

func TestRun_CacheCoversKeySpace(t *testing.T) {
	opts := Options{
		Operations: 1000,
		KeySpace:   10,
		CacheSize:  10,
		Seed:       7,
		SourceCost: 1,
	}

	res, err := Run(context.Background(), opts, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Misses > 10 {
		t.Errorf("expected at most 10 compulsory misses, got %d", res.Misses)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Operations: 100, KeySpace: 10, CacheSize: 5, SourceCost: 1}, quietLogger())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Operations: 10, KeySpace: 0, CacheSize: 5}, quietLogger())
	if !errors.Is(err, workload.ErrInvalidParams) {
		t.Errorf("expected ErrInvalidParams, got %v", err)
	}

	_, err = Run(context.Background(), Options{Operations: 10, KeySpace: 5, CacheSize: 0}, quietLogger())
	if !errors.Is(err, cache.ErrInvalidCapacity) {
		t.Errorf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestResult_Speedup(t *testing.T) {
	r := &Result{RawTime: 3 * time.Second, CachedTime: time.Second}
	if r.Speedup() != 3 {
		t.Errorf("expected speedup 3, got %v", r.Speedup())
	}

	r.CachedTime = 0
	if r.Speedup() != 0 {
		t.Errorf("expected speedup 0 for zero cached time, got %v", r.Speedup())
	}
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.BenchConfig{
		Operations:    10,
		KeySpace:      20,
		CacheSize:     5,
		Seed:          3,
		SourceCost:    100,
		Distribution:  "zipf",
		ProgressEvery: time.Minute,
	})

	if opts.Distribution != workload.Zipf || opts.CacheSize != 5 || opts.ProgressEvery != time.Minute {
		t.Errorf("unexpected options %+v", opts)
	}
}
