package cache

const (
	headSentinel = 0
	tailSentinel = 1
)

type node[K comparable, V any] struct {
	key   K
	value V
	prev  int
	next  int
}

// recencyList keeps entries in MRU -> LRU order. Nodes live in an arena and
// are addressed by handle; slots 0 and 1 are the head and tail sentinels.
type recencyList[K comparable, V any] struct {
	nodes []node[K, V]
	free  []int
	size  int
}

func newRecencyList[K comparable, V any](capacity int) *recencyList[K, V] {
	l := &recencyList[K, V]{
		nodes: make([]node[K, V], 2, capacity+2),
	}
	l.reset()
	return l
}

func (l *recencyList[K, V]) reset() {
	clear(l.nodes[2:])
	l.nodes = l.nodes[:2]
	l.nodes[headSentinel] = node[K, V]{prev: -1, next: tailSentinel}
	l.nodes[tailSentinel] = node[K, V]{prev: headSentinel, next: -1}
	l.free = l.free[:0]
	l.size = 0
}

// alloc returns an unlinked handle holding key and value.
func (l *recencyList[K, V]) alloc(key K, value V) int {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[h] = node[K, V]{key: key, value: value, prev: -1, next: -1}
		return h
	}
	l.nodes = append(l.nodes, node[K, V]{key: key, value: value, prev: -1, next: -1})
	return len(l.nodes) - 1
}

// release returns a detached handle to the arena.
func (l *recencyList[K, V]) release(h int) {
	l.nodes[h] = node[K, V]{prev: -1, next: -1}
	l.free = append(l.free, h)
}

func (l *recencyList[K, V]) detach(h int) {
	n := &l.nodes[h]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	n.prev, n.next = -1, -1
	l.size--
}

func (l *recencyList[K, V]) insertFront(h int) {
	first := l.nodes[headSentinel].next

	n := &l.nodes[h]
	n.next = first
	n.prev = headSentinel

	l.nodes[first].prev = h
	l.nodes[headSentinel].next = h
	l.size++
}

func (l *recencyList[K, V]) moveToFront(h int) {
	l.detach(h)
	l.insertFront(h)
}

// peekBack returns the LRU handle, or false when the list holds no entries.
func (l *recencyList[K, V]) peekBack() (int, bool) {
	h := l.nodes[tailSentinel].prev
	if h == headSentinel {
		return 0, false
	}
	return h, true
}

func (l *recencyList[K, V]) front() (int, bool) {
	h := l.nodes[headSentinel].next
	if h == tailSentinel {
		return 0, false
	}
	return h, true
}

func (l *recencyList[K, V]) len() int {
	return l.size
}

func (l *recencyList[K, V]) keys() []K {
	out := make([]K, 0, l.size)
	for h := l.nodes[headSentinel].next; h != tailSentinel; h = l.nodes[h].next {
		out = append(out, l.nodes[h].key)
	}
	return out
}
