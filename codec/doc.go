// Package codec implements the Nibs binary encoders: pair headers, leaf
// value encoders (integers, doubles, booleans, null, bytes, strings,
// refs), and the five container encoders (list, map, array, trie, scope).
//
// Every encoder returns a chain of arena.SliceNode values; flattening a
// chain with arena.Flatten yields the finished, contiguous byte encoding.
// Encoded bytes always live in the arena passed to an encoder; the
// SliceNode records that link them are ordinary Go values.
//
// # Pair headers
//
// Every Nibs value begins with a pair (small, big): a 4-bit type code and
// a 64-bit argument packed into the smallest of five header widths (1, 2,
// 3, 5, or 9 bytes). AllocPair implements that width selection; the value
// and container encoders build on it.
//
//	header, _ := codec.AllocPair(a, format.ZigZag, codec.ZigZagEncode(-10), false)
//	// header.Data == []byte{0x0c, 0x13}
package codec
