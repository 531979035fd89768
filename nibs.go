// Package nibs provides a compact, self-describing binary serialization
// format together with its textual companion syntax, Tibs.
//
// # Core Features
//
//   - A single-byte-minimum type+size header ("pair") fronting every value
//   - ZigZag-folded signed integers and canonical-NaN IEEE-754 doubles
//   - Automatic hex-string compression for even-length lowercase-hex strings
//   - Five container kinds: list, map, array (indexed list), trie (indexed
//     map) and scope (value plus reference table)
//   - A bump-allocating arena backing every encoded byte, released as a unit
//   - A JSON-superset textual syntax (Tibs) that parses directly into Nibs
//     nodes without an intermediate tree
//
// # Basic Usage
//
// Encoding Nibs values directly:
//
//	a, err := arena.New()
//	node, err := codec.EncodeList(a,
//	    must(codec.EncodeInteger(a, 1)),
//	    must(codec.EncodeInteger(a, 2)),
//	)
//	flat, err := arena.Flatten(a, node)
//	flat.Data // []byte{0xb2, 0x02, 0x04}
//
// Parsing Tibs text into Nibs bytes:
//
//	a, _ := arena.New()
//	node, _, err := tibs.Parse(a, []byte(`[1, 2, "deadbeef"]`))
//	flat, _ := arena.Flatten(a, node)
//
// Parsing repeatedly against a shared node cache, so literals repeated
// across calls reuse their previously encoded bytes instead of re-encoding:
//
//	a, _ := arena.New()
//	c := nibs.NewNodeCache()
//	node, _, err := nibs.ParseWithCache(a, []byte(`["tag", "tag", "tag"]`), c)
//
// # Package Structure
//
// This package re-exports the most common entry points from arena, cache,
// codec and tibs for convenience. For fine-grained control over individual
// encoders, containers, or the tokenizer, use those packages directly.
package nibs

import (
	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/cache"
	"github.com/arloliu/nibs/codec"
	"github.com/arloliu/nibs/tibs"
)

// NewArena creates a new bump-allocating arena with the given options.
// Callers must call Deinit on the returned arena once its nodes are no
// longer needed.
func NewArena(opts ...arena.Option) (*arena.Arena, error) {
	return arena.New(opts...)
}

// EncodeString encodes s, auto-selecting HexString compression when s is a
// non-empty, even-length, all-lowercase-hex string.
func EncodeString(a *arena.Arena, s string) (*arena.SliceNode, error) {
	return codec.EncodeString(a, s)
}

// EncodeInteger encodes a signed 64-bit integer.
func EncodeInteger(a *arena.Arena, n int64) (*arena.SliceNode, error) {
	return codec.EncodeInteger(a, n)
}

// EncodeDouble encodes an IEEE-754 double, canonicalizing any NaN payload.
func EncodeDouble(a *arena.Arena, f float64) (*arena.SliceNode, error) {
	return codec.EncodeDouble(a, f)
}

// Parse parses exactly one Tibs value from buf, returning its Nibs node and
// the offset just past the value's final token.
func Parse(a *arena.Arena, buf []byte) (*arena.SliceNode, int, error) {
	return tibs.Parse(a, buf)
}

// NewNodeCache creates an empty content-addressed node cache. Pass it to
// ParseWithCache to reuse previously encoded string/bytes literals across
// one or more Parse calls instead of re-encoding them each time they
// recur.
func NewNodeCache() *cache.NodeCache {
	return cache.New()
}

// ParseWithCache behaves like Parse, consulting c before encoding each
// STRING or BYTES literal and reusing the cached encoding of one already
// seen instead of encoding it again.
func ParseWithCache(a *arena.Arena, buf []byte, c *cache.NodeCache) (*arena.SliceNode, int, error) {
	return tibs.ParseWithCache(a, buf, c)
}

// Flatten coalesces a SliceNode chain into a single contiguous node.
func Flatten(a *arena.Arena, head *arena.SliceNode) (*arena.SliceNode, error) {
	return arena.Flatten(a, head)
}
