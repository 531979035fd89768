package codec

import (
	"fmt"
	"math"

	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/cache"
	"github.com/arloliu/nibs/errs"
	"github.com/arloliu/nibs/format"
)

// canonicalNaNBits is the bit pattern every NaN double encodes to,
// regardless of its original payload bits, so encoded output is
// byte-stable across platforms and runtimes.
const canonicalNaNBits uint64 = 0x7FF8000000000000

// ZigZagEncode folds a signed 64-bit integer into the unsigned argument
// Nibs stores for type ZigZag, placing small magnitudes near zero:
// 0->0, -1->1, 1->2, -2->3, 2->4, ...
func ZigZagEncode(n int64) uint64 {
	return uint64((n >> 63) ^ (n << 1))
}

// ZigZagDecode inverts ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// FloatBits returns the canonical Nibs argument for a double: its raw
// IEEE-754 bit pattern, except every NaN (regardless of input bits)
// collapses to canonicalNaNBits.
func FloatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return canonicalNaNBits
	}

	return math.Float64bits(f)
}

// EncodeInteger encodes a signed 64-bit integer as a ZigZag value.
func EncodeInteger(a *arena.Arena, n int64) (*arena.SliceNode, error) {
	return AllocPair(a, format.ZigZag, ZigZagEncode(n), false)
}

// EncodeDouble encodes an IEEE-754 double. +0.0 collapses to the 1-byte
// pair form (big == 0); every NaN encodes to the canonical bit pattern.
func EncodeDouble(a *arena.Arena, f float64) (*arena.SliceNode, error) {
	return AllocPair(a, format.Float, FloatBits(f), false)
}

// EncodeBoolean encodes a boolean as a Simple value.
func EncodeBoolean(a *arena.Arena, b bool) (*arena.SliceNode, error) {
	sub := format.False
	if b {
		sub = format.True
	}

	return AllocPair(a, format.Simple, uint64(sub), false)
}

// EncodeNull encodes the null Simple value.
func EncodeNull(a *arena.Arena) (*arena.SliceNode, error) {
	return AllocPair(a, format.Simple, uint64(format.Null), false)
}

// EncodeRef encodes a Ref value: an index into an enclosing scope's
// reference list. The index itself is not validated here — resolving it
// against a scope is outside this package's scope.
func EncodeRef(a *arena.Arena, index uint64) (*arena.SliceNode, error) {
	return AllocPair(a, format.Ref, index, false)
}

// EncodeBytes encodes a raw byte payload as type Bytes.
func EncodeBytes(a *arena.Arena, raw []byte) (*arena.SliceNode, error) {
	node, err := AllocPair(a, format.Bytes, uint64(len(raw)), true)
	if err != nil {
		return nil, err
	}

	copy(node.Data[len(node.Data)-len(raw):], raw)

	return node, nil
}

// EncodeString encodes a UTF-8 string. The empty string always encodes as
// UTF8 with big=0. A non-empty string whose bytes are entirely lowercase
// hex digits ([0-9a-f]) and whose length is even encodes as HexString
// instead, halving its stored size; every other string encodes as UTF8.
func EncodeString(a *arena.Arena, s string) (*arena.SliceNode, error) {
	if len(s) == 0 {
		return AllocPair(a, format.UTF8, 0, false)
	}

	if IsLowercaseHex(s) {
		decodedLen := len(s) / 2

		node, err := AllocPair(a, format.HexString, uint64(decodedLen), true)
		if err != nil {
			return nil, err
		}

		payload := node.Data[len(node.Data)-decodedLen:]
		for i := range decodedLen {
			payload[i] = (lowercaseHexNibble(s[2*i]) << 4) | lowercaseHexNibble(s[2*i+1])
		}

		return node, nil
	}

	node, err := AllocPair(a, format.UTF8, uint64(len(s)), true)
	if err != nil {
		return nil, err
	}

	copy(node.Data[len(node.Data)-len(s):], s)

	return node, nil
}

// EncodeStringCached behaves like EncodeString, but first consults c (if
// non-nil) for a node already encoded from the same logical string. On a
// hit it returns a new, unlinked SliceNode over that node's arena bytes
// instead of encoding them again, so the result can be linked into a chain
// like any fresh node. A nil c makes this identical to EncodeString. The
// cache key uses the same type code EncodeString would produce (HexString
// or UTF8), so a cache hit is only ever returned for a string that would
// encode identically.
func EncodeStringCached(a *arena.Arena, s string, c *cache.NodeCache) (*arena.SliceNode, error) {
	if c == nil {
		return EncodeString(a, s)
	}

	typ := format.UTF8
	if IsLowercaseHex(s) {
		typ = format.HexString
	}

	if node, ok := c.Get(typ, []byte(s)); ok {
		return &arena.SliceNode{Data: node.Data}, nil
	}

	node, err := EncodeString(a, s)
	if err != nil {
		return nil, err
	}

	c.Put(typ, []byte(s), node)

	return node, nil
}

// EncodeBytesCached behaves like EncodeBytes, but first consults c (if
// non-nil) for a node already encoded from the same raw payload. On a hit
// it returns a new, unlinked SliceNode over that node's arena bytes instead
// of encoding them again. A nil c makes this identical to EncodeBytes.
func EncodeBytesCached(a *arena.Arena, raw []byte, c *cache.NodeCache) (*arena.SliceNode, error) {
	if c == nil {
		return EncodeBytes(a, raw)
	}

	if node, ok := c.Get(format.Bytes, raw); ok {
		return &arena.SliceNode{Data: node.Data}, nil
	}

	node, err := EncodeBytes(a, raw)
	if err != nil {
		return nil, err
	}

	c.Put(format.Bytes, raw, node)

	return node, nil
}

// IsLowercaseHex reports whether s is eligible for HexString compression:
// non-empty, even length, and every byte in [0-9a-f].
func IsLowercaseHex(s string) bool {
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}

	for i := range len(s) {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}

	return true
}

// lowercaseHexNibble converts a byte already validated by IsLowercaseHex
// into its 4-bit value: from_hex(c) = c < 0x40 ? c-0x30 : c-0x61+10.
func lowercaseHexNibble(c byte) byte {
	if c < 0x40 {
		return c - 0x30
	}

	return c - 0x61 + 10
}

// hexNibble decodes a single hex digit, accepting both cases, for general
// hex literals (the Tibs <...>/|...| byte-literal syntax is not
// restricted to lowercase the way string hex-compression is).
func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// EncodeBytesFromHex decodes a hex string (formatting characters already
// stripped by the caller) and encodes the result as type Bytes. It
// reports errs.ErrInvalidHex if the digit count is odd or a non-hex byte
// remains.
func EncodeBytesFromHex(a *arena.Arena, hex string) (*arena.SliceNode, error) {
	if len(hex)%2 != 0 {
		return nil, fmt.Errorf("%w: %d hex digits after stripping formatting", errs.ErrInvalidHex, len(hex))
	}

	n := len(hex) / 2

	node, err := AllocPair(a, format.Bytes, uint64(n), true)
	if err != nil {
		return nil, err
	}

	payload := node.Data[len(node.Data)-n:]
	for i := range n {
		hi, ok1 := hexNibble(hex[2*i])
		lo, ok2 := hexNibble(hex[2*i+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: invalid hex digit", errs.ErrInvalidHex)
		}

		payload[i] = hi<<4 | lo
	}

	return node, nil
}

// EncodeBytesFromHexCached behaves like EncodeBytesFromHex, but decodes hex
// first and consults c (if non-nil) for a node already encoded from the
// same decoded payload via EncodeBytesCached, reusing its encoded bytes
// instead of encoding them again. A nil c makes this identical to
// EncodeBytesFromHex.
func EncodeBytesFromHexCached(a *arena.Arena, hex string, c *cache.NodeCache) (*arena.SliceNode, error) {
	if c == nil {
		return EncodeBytesFromHex(a, hex)
	}

	if len(hex)%2 != 0 {
		return nil, fmt.Errorf("%w: %d hex digits after stripping formatting", errs.ErrInvalidHex, len(hex))
	}

	decoded := make([]byte, len(hex)/2)
	for i := range decoded {
		hi, ok1 := hexNibble(hex[2*i])
		lo, ok2 := hexNibble(hex[2*i+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: invalid hex digit", errs.ErrInvalidHex)
		}

		decoded[i] = hi<<4 | lo
	}

	return EncodeBytesCached(a, decoded, c)
}
