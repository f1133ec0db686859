package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Varun5711/lrucache/internal/benchmark"
	"github.com/Varun5711/lrucache/internal/config"
	"github.com/Varun5711/lrucache/internal/logger"
)

func main() {
	log := logger.New("lru-bench")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Running benchmark...")

	res, err := benchmark.Run(ctx, benchmark.OptionsFromConfig(cfg.Bench), log)
	if err != nil {
		log.Error("Benchmark failed: %v", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("===== RESULTS =====")
	fmt.Printf("Run             : %s\n", res.RunID)
	fmt.Printf("Operations      : %d\n", res.Operations)
	fmt.Printf("Key space       : %d (%s)\n", res.KeySpace, res.Distribution)
	fmt.Printf("Cache size      : %d\n\n", res.CacheSize)

	fmt.Printf("No cache time   : %s\n", res.RawTime)
	fmt.Printf("LRU cache time  : %s\n\n", res.CachedTime)

	fmt.Printf("Cache hits      : %d\n", res.Hits)
	fmt.Printf("Cache misses    : %d\n", res.Misses)
	fmt.Printf("Hit ratio       : %.2f%%\n", res.HitRatio()*100)
	fmt.Printf("\nSpeedup         : %.2fx\n", res.Speedup())
}
