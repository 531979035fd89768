package cache

import (
	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/format"
	"github.com/arloliu/nibs/internal/hash"
)

// entry pairs a cached node with the exact (type, payload) it was stored
// under, so a hash bucket can hold more than one distinct value without
// a collision silently returning the wrong node.
type entry struct {
	typ     format.Type
	payload []byte
	node    *arena.SliceNode
}

// NodeCache memoizes already-encoded leaf values by content hash. Callers
// that know a value (a string, a byte string) is likely to repeat across a
// document can look it up before encoding and reuse the existing node
// instead of allocating a new one.
//
// NodeCache is not safe for concurrent use.
type NodeCache struct {
	buckets map[uint64][]entry
	hits    int
	misses  int
}

// New returns an empty NodeCache.
func New() *NodeCache {
	return &NodeCache{buckets: make(map[uint64][]entry)}
}

// Get returns the previously cached node for (typ, payload), if any.
func (c *NodeCache) Get(typ format.Type, payload []byte) (*arena.SliceNode, bool) {
	h := hashKey(typ, payload)
	for _, e := range c.buckets[h] {
		if e.typ == typ && string(e.payload) == string(payload) {
			c.hits++
			return e.node, true
		}
	}

	c.misses++

	return nil, false
}

// Put records node as the encoding of (typ, payload) for future Get calls.
// payload is copied so the cache does not alias the caller's slice.
func (c *NodeCache) Put(typ format.Type, payload []byte, node *arena.SliceNode) {
	h := hashKey(typ, payload)
	stored := make([]byte, len(payload))
	copy(stored, payload)
	c.buckets[h] = append(c.buckets[h], entry{typ: typ, payload: stored, node: node})
}

// Hits returns the number of Get calls that found a cached node.
func (c *NodeCache) Hits() int { return c.hits }

// Misses returns the number of Get calls that found nothing.
func (c *NodeCache) Misses() int { return c.misses }

// Reset clears all cached entries and counters, preserving the underlying
// map's capacity.
func (c *NodeCache) Reset() {
	for k := range c.buckets {
		delete(c.buckets, k)
	}
	c.hits = 0
	c.misses = 0
}

// hashKey computes the bucket key for a (type, payload) tuple.
func hashKey(typ format.Type, payload []byte) uint64 {
	return hash.Key(byte(typ), payload)
}
