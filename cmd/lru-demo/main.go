package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Varun5711/lrucache/internal/cache"
	"github.com/Varun5711/lrucache/internal/config"
	"github.com/Varun5711/lrucache/internal/logger"
	"github.com/Varun5711/lrucache/internal/trace"
)

// walkthrough is the default script: fill, touch, evict, then miss on the victim.
var walkthrough = []string{"put:1", "put:2", "put:3", "get:1", "put:4", "get:2"}

type step struct {
	op  cache.Op
	key int
}

func main() {
	log := logger.New("lru-demo")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	capacity := flag.Int("capacity", cfg.Cache.Capacity, "cache capacity")
	flag.Parse()

	script := flag.Args()
	if len(script) == 0 {
		script = walkthrough
	}

	steps, err := parseSteps(script)
	if err != nil {
		log.Fatal("Invalid script: %v", err)
	}

	tracer := trace.NewLogObserver[int](log)
	rec := trace.NewRecorder[int]()

	lru, err := cache.New[int, struct{}](*capacity, cache.WithObserver(trace.Tee[int](tracer, rec)))
	if err != nil {
		log.Fatal("Failed to create cache: %v", err)
	}

	log.Info("Session %s: capacity=%d, %d steps", tracer.Session(), lru.Cap(), len(steps))

	for _, s := range steps {
		switch s.op {
		case cache.OpGet:
			lru.Get(s.key)
		case cache.OpPut:
			lru.Put(s.key, struct{}{})
		}
		log.Info("%s %d -> MRU..LRU %v", s.op, s.key, lru.Keys())
	}

	stats := lru.Stats()
	log.Info("Done: size=%d hits=%d misses=%d evicted=%v", stats.Len, stats.Hits, stats.Misses, rec.Evicted())
	fmt.Printf("hit ratio: %.2f\n", stats.HitRatio())
}

// parseSteps reads "put:1" / "get:2" tokens.
func parseSteps(args []string) ([]step, error) {
	steps := make([]step, 0, len(args))
	for _, arg := range args {
		opName, keyText, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("%q: expected op:key", arg)
		}

		key, err := strconv.Atoi(keyText)
		if err != nil {
			return nil, fmt.Errorf("%q: key must be an integer", arg)
		}

		var op cache.Op
		switch strings.ToLower(opName) {
		case "get":
			op = cache.OpGet
		case "put":
			op = cache.OpPut
		default:
			return nil, fmt.Errorf("%q: unknown op %q", arg, opName)
		}

		steps = append(steps, step{op: op, key: key})
	}
	return steps, nil
}
