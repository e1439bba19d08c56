// This file implements least-recently-used eviction.

package eviction

// lruNode represents ONE key inside the LRU structure. We use a doubly-linked
// list to track usage order.
type lruNode struct {
	key string

	// prev points toward the more recently used side
	prev *lruNode

	// next points toward the less recently used side
	next *lruNode
}

// LRU tracks recency for the cache. Most recently used at the head, the
// eviction candidate at the tail. Lookup, refresh, insert and evict are
// all O(1).
//
// Ties cannot occur: every access or insert moves exactly one node to the
// head, so list position totally orders the keys. Two entries touched at
// the "same" instant keep their relative order, which means the earlier
// created one is still closer to the tail and goes first.
type LRU struct {
	// nodes maps cache keys to their list nodes so moves are O(1).
	nodes map[string]*lruNode

	head *lruNode // most recently used
	tail *lruNode // least recently used
}

func NewLRU() *LRU {
	return &LRU{nodes: make(map[string]*lruNode)}
}

// OnGet marks a key as just used by moving its node to the front.
func (l *LRU) OnGet(k string) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		l.addFront(n)
	}
}

// OnPut registers a new key at the front. Re-putting an existing key is
// treated as a use, not a fresh insert.
func (l *LRU) OnPut(k string) {
	if _, ok := l.nodes[k]; ok {
		l.OnGet(k)
		return
	}
	n := &lruNode{key: k}
	l.nodes[k] = n
	l.addFront(n)
}

// Evict removes and returns the least recently used key, always the tail.
func (l *LRU) Evict() string {
	if l.tail == nil {
		return ""
	}
	k := l.tail.key
	l.remove(l.tail)
	delete(l.nodes, k)
	return k
}

// Remove drops a key that left the cache without being evicted.
func (l *LRU) Remove(k string) {
	if n, ok := l.nodes[k]; ok {
		l.remove(n)
		delete(l.nodes, k)
	}
}

// Keys walks head to tail: most recently used first.
func (l *LRU) Keys() []string {
	out := make([]string, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func (l *LRU) addFront(n *lruNode) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
}

func (l *LRU) remove(n *lruNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
