// Package benchmark measures how much a read-through LRU front saves over
// hitting a slow source directly for the same key sequence.
package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Varun5711/lrucache/internal/config"
	"github.com/Varun5711/lrucache/internal/logger"
	"github.com/Varun5711/lrucache/internal/source"
	"github.com/Varun5711/lrucache/internal/workload"
)

type Options struct {
	Operations    int
	KeySpace      int
	CacheSize     int
	Seed          int64
	SourceCost    int
	Distribution  workload.Distribution
	ProgressEvery time.Duration
}

func OptionsFromConfig(cfg config.BenchConfig) Options {
	return Options{
		Operations:    cfg.Operations,
		KeySpace:      cfg.KeySpace,
		CacheSize:     cfg.CacheSize,
		Seed:          cfg.Seed,
		SourceCost:    cfg.SourceCost,
		Distribution:  workload.Distribution(cfg.Distribution),
		ProgressEvery: cfg.ProgressEvery,
	}
}

type Result struct {
	RunID        string
	Operations   int
	KeySpace     int
	CacheSize    int
	Distribution workload.Distribution
	RawTime      time.Duration
	CachedTime   time.Duration
	Hits         uint64
	Misses       uint64
}

func (r *Result) HitRatio() float64 {
	total := r.Hits + r.Misses
	if total == 0 {
		return 0
	}
	return float64(r.Hits) / float64(total)
}

// Speedup is RawTime / CachedTime, or 0 when the cached pass took no measurable time.
func (r *Result) Speedup() float64 {
	if r.CachedTime <= 0 {
		return 0
	}
	return float64(r.RawTime) / float64(r.CachedTime)
}

const ctxCheckEvery = 1024

func Run(ctx context.Context, opts Options, log *logger.Logger) (*Result, error) {
	keys, err := workload.Generate(workload.Params{
		Operations:   opts.Operations,
		KeySpace:     opts.KeySpace,
		Seed:         opts.Seed,
		Distribution: opts.Distribution,
	})
	if err != nil {
		return nil, err
	}

	raw := source.NewExpensive(opts.SourceCost)
	cached, err := source.NewCached[int, int](source.NewExpensive(opts.SourceCost), opts.CacheSize)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:        uuid.NewString(),
		Operations:   len(keys),
		KeySpace:     opts.KeySpace,
		CacheSize:    opts.CacheSize,
		Distribution: opts.Distribution,
	}

	log.Info("run %s: %d operations over %d keys, cache size %d", res.RunID, res.Operations, res.KeySpace, res.CacheSize)

	res.RawTime, err = measure(ctx, "raw", keys, raw, opts.ProgressEvery, log)
	if err != nil {
		return nil, err
	}

	res.CachedTime, err = measure(ctx, "cached", keys, cached, opts.ProgressEvery, log)
	if err != nil {
		return nil, err
	}

	res.Hits = cached.Hits()
	res.Misses = cached.Misses()

	return res, nil
}

func measure(ctx context.Context, name string, keys []int, src source.Source[int, int], every time.Duration, log *logger.Logger) (time.Duration, error) {
	start := time.Now()
	lastReport := start

	for i, key := range keys {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, fmt.Errorf("%s pass interrupted after %d operations: %w", name, i, err)
			}
			if every > 0 && time.Since(lastReport) >= every {
				log.Info("%s pass: %d/%d operations", name, i, len(keys))
				lastReport = time.Now()
			}
		}

		if _, err := src.Fetch(ctx, key); err != nil {
			return 0, fmt.Errorf("%s pass: %w", name, err)
		}
	}

	elapsed := time.Since(start)
	log.Debug("%s pass finished in %s", name, elapsed)
	return elapsed, nil
}
