package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Key computes the xxHash64 of a (tag, payload) tuple by folding tag onto
// the front of payload and hashing the result through ID, so two tuples
// with identical payload bytes but different tags never collide onto the
// same key.
func Key(tag byte, payload []byte) uint64 {
	buf := make([]byte, 1+len(payload))
	buf[0] = tag
	copy(buf[1:], payload)

	return ID(string(buf))
}
