// Package errs defines the sentinel error values shared across the nibs
// codec, arena, and tibs packages.
//
// Callers should compare against these with errors.Is, since the errors
// returned by arena allocation, the codec encoders and the tibs driver wrap
// one of them with contextual detail via fmt.Errorf("%w: ...", errs.ErrX,
// ...). The size validation error of arena.WithSize wraps none of them.
package errs

import "errors"

var (
	// ErrOutOfArena is returned when an allocation would exceed the arena's
	// reserved region. The arena is left in an unspecified state after this
	// error; the caller must discard it.
	ErrOutOfArena = errors.New("arena: allocation exceeds reserved region")

	// ErrInvalidTibs is returned when the tokenizer produces an ERROR token,
	// or the driver encounters a token it cannot use in its current
	// position (e.g. a LIST_END with no matching LIST_BEGIN, or an odd
	// number of children in a map).
	ErrInvalidTibs = errors.New("tibs: invalid input")

	// ErrInvalidHex is returned when a BYTES literal contains an odd number
	// of hex digits after stripping non-hex formatting characters.
	ErrInvalidHex = errors.New("tibs: odd number of hex digits")

	// ErrOverflow is returned when a parsed integer literal exceeds the
	// range of int64.
	ErrOverflow = errors.New("tibs: integer literal overflows int64")
)
