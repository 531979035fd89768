package arena

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arloliu/nibs/errs"
	"github.com/arloliu/nibs/internal/options"
)

// DefaultSize is the default size, in bytes, of a new Arena's backing
// region: 1 GiB, matching the reference implementation's ARENA_SIZE.
//
// It can be overridden process-wide by setting the NIBS_ARENA_SIZE
// environment variable to a positive byte count in the process's starting
// environment; the variable is read once, when this package is
// initialized, mirroring the reference implementation's build-time
// "#ifndef ARENA_SIZE" override with a runtime one. An invalid or
// non-positive value is ignored and DefaultSize keeps its built-in value.
var DefaultSize = defaultSizeFromEnv(0x40000000) // 1 GiB

func defaultSizeFromEnv(builtin int) int {
	raw, ok := os.LookupEnv("NIBS_ARENA_SIZE")
	if !ok {
		return builtin
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return builtin
	}

	return n
}

// Option configures an Arena at construction time. Use WithSize to
// override DefaultSize for a single arena.
type Option = options.Option[*Arena]

// WithSize overrides the arena's backing region size, in bytes. Sizes less
// than 1 are rejected.
func WithSize(size int) Option {
	return options.New(func(a *Arena) error {
		if size < 1 {
			return fmt.Errorf("arena: size must be positive, got %d", size)
		}
		a.buf = make([]byte, size)

		return nil
	})
}

// Arena is a single-owner bump allocator over one contiguous backing
// region. Alloc never moves or resizes the region, so addresses handed out
// remain valid for the arena's entire lifetime. Arena is not safe for
// concurrent use.
type Arena struct {
	buf     []byte
	current int
}

// New reserves a new Arena with DefaultSize bytes, or the size given by
// WithSize.
func New(opts ...Option) (*Arena, error) {
	a := &Arena{buf: make([]byte, DefaultSize)}
	if err := options.Apply(a, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

// Alloc returns a fresh, zeroed region of n bytes from the arena's backing
// storage and advances the bump pointer past it. The returned slice is
// valid for the arena's entire lifetime; it is never moved or reused by a
// later Alloc call.
//
// Alloc fails with errs.ErrOutOfArena if n would exceed the arena's
// remaining capacity.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		panic("arena: negative allocation size")
	}
	if a.current+n > len(a.buf) {
		return nil, fmt.Errorf("%w: requested %d bytes, %d available", errs.ErrOutOfArena, n, len(a.buf)-a.current)
	}

	start := a.current
	a.current += n

	// Cap the returned slice at its own length so appends by callers can
	// never silently clobber the next allocation.
	return a.buf[start:a.current:a.current], nil
}

// AllocNode allocates n bytes and wraps them in a fresh, unlinked
// SliceNode.
func (a *Arena) AllocNode(n int) (*SliceNode, error) {
	data, err := a.Alloc(n)
	if err != nil {
		return nil, err
	}

	return &SliceNode{Data: data}, nil
}

// Len returns the number of bytes allocated so far.
func (a *Arena) Len() int {
	return a.current
}

// Cap returns the total size of the arena's backing region.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available for allocation.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.current
}

// Deinit releases the arena's backing region. Every SliceNode and byte
// slice derived from this arena is invalid after Deinit returns; using one
// is undefined behavior.
func (a *Arena) Deinit() {
	a.buf = nil
	a.current = 0
}
