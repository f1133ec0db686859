// Package trace provides observers for the cache event feed: a logging
// observer for walkthroughs and a recorder for tallying what happened.
package trace

import (
	"github.com/google/uuid"

	"github.com/Varun5711/lrucache/internal/cache"
	"github.com/Varun5711/lrucache/internal/logger"
)

// LogObserver writes every cache event to a logger. Outcome events go out at
// INFO, intermediate steps at DEBUG.
type LogObserver[K comparable] struct {
	log     *logger.Logger
	session string
}

func NewLogObserver[K comparable](log *logger.Logger) *LogObserver[K] {
	return &LogObserver[K]{
		log:     log,
		session: uuid.NewString(),
	}
}

func (o *LogObserver[K]) Session() string {
	return o.session
}

func (o *LogObserver[K]) Observe(ev cache.Event[K]) {
	switch ev.Kind {
	case cache.EventLookupStarted, cache.EventRelocatedToMRU:
		o.log.Debug("[%s] op=%s key=%v event=%s", o.session[:8], ev.Op, ev.Key, ev.Kind)
	default:
		o.log.Info("[%s] op=%s key=%v event=%s", o.session[:8], ev.Op, ev.Key, ev.Kind)
	}
}

// Recorder keeps every event it sees. It is not safe for concurrent use on
// its own; behind cache.Locked it is only called under the cache lock.
type Recorder[K comparable] struct {
	events []cache.Event[K]
	counts map[cache.EventKind]int
}

func NewRecorder[K comparable]() *Recorder[K] {
	return &Recorder[K]{counts: make(map[cache.EventKind]int)}
}

func (r *Recorder[K]) Observe(ev cache.Event[K]) {
	r.events = append(r.events, ev)
	r.counts[ev.Kind]++
}

// Events returns a copy of everything recorded so far.
func (r *Recorder[K]) Events() []cache.Event[K] {
	out := make([]cache.Event[K], len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder[K]) Count(kind cache.EventKind) int {
	return r.counts[kind]
}

// Evicted lists evicted keys in eviction order.
func (r *Recorder[K]) Evicted() []K {
	var out []K
	for _, ev := range r.events {
		if ev.Kind == cache.EventEvicted {
			out = append(out, ev.Key)
		}
	}
	return out
}

func (r *Recorder[K]) Reset() {
	r.events = r.events[:0]
	clear(r.counts)
}

type tee[K comparable] []cache.Observer[K]

func (t tee[K]) Observe(ev cache.Event[K]) {
	for _, o := range t {
		o.Observe(ev)
	}
}

// Tee fans each event out to every non-nil observer, in order.
func Tee[K comparable](observers ...cache.Observer[K]) cache.Observer[K] {
	out := make(tee[K], 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}
