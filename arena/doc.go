// Package arena provides a bump allocator and the SliceNode chain that the
// nibs codec uses to assemble encoded values without intermediate copies.
//
// An Arena reserves one contiguous backing region up front (DefaultSize,
// 1 GiB, unless overridden). Alloc hands out successive, non-overlapping
// subslices of that region with a monotonically advancing offset; there is
// no per-allocation free, only whole-arena release via Deinit.
//
// SliceNode is a singly-linked fragment of encoded bytes. Encoders build a
// value as a chain of SliceNodes — a header node followed by the nodes of
// its children — and Flatten coalesces a chain into one contiguous node
// when the caller needs the finished byte stream.
//
// Arenas are not safe for concurrent use; each arena is owned by one
// logical task for its lifetime.
package arena
