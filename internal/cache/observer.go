package cache

type Op uint8

const (
	OpGet Op = iota + 1
	OpPut
)

func (o Op) String() string {
	switch o {
	case OpGet:
		return "get"
	case OpPut:
		return "put"
	default:
		return "unknown"
	}
}

type EventKind uint8

const (
	EventLookupStarted EventKind = iota + 1
	EventHit
	EventMiss
	EventRelocatedToMRU
	EventEvicted
	EventInserted
	EventUpdated
)

var eventNames = map[EventKind]string{
	EventLookupStarted:  "lookup_started",
	EventHit:            "hit",
	EventMiss:           "miss",
	EventRelocatedToMRU: "relocated_to_mru",
	EventEvicted:        "evicted",
	EventInserted:       "inserted",
	EventUpdated:        "updated",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one step of a Get or Put. For EventEvicted, Key is the victim,
// not the key passed to Put.
type Event[K comparable] struct {
	Op   Op
	Kind EventKind
	Key  K
}

// Observer receives events synchronously from inside the cache operation.
// Implementations must not call back into the cache.
type Observer[K comparable] interface {
	Observe(ev Event[K])
}

type ObserverFunc[K comparable] func(ev Event[K])

func (f ObserverFunc[K]) Observe(ev Event[K]) {
	f(ev)
}

type nopObserver[K comparable] struct{}

func (nopObserver[K]) Observe(Event[K]) {}

type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	observer Observer[K]
}

// WithObserver installs obs as the event sink. A nil obs keeps the no-op default.
func WithObserver[K comparable](obs Observer[K]) Option[K] {
	return func(o *options[K]) {
		if obs != nil {
			o.observer = obs
		}
	}
}
