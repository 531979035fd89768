package codec

import (
	"fmt"

	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/errs"
	"github.com/arloliu/nibs/format"
)

// EncodeList builds a List container from its ordered children. The
// header's argument is the total byte length of the concatenated
// children, excluding the header itself.
func EncodeList(a *arena.Arena, children ...*arena.SliceNode) (*arena.SliceNode, error) {
	return encodeContainer(a, format.List, children)
}

// EncodeMap builds a Map container from an alternating key, value, key,
// value, ... sequence of children. len(children) must be even.
func EncodeMap(a *arena.Arena, children ...*arena.SliceNode) (*arena.SliceNode, error) {
	if len(children)%2 != 0 {
		return nil, fmt.Errorf("%w: map requires an even number of children, got %d", errs.ErrInvalidTibs, len(children))
	}

	return encodeContainer(a, format.Map, children)
}

// EncodeArray builds an Array container, the indexed variant of List.
//
// Constructing the index itself is outside this package's scope; index is
// the pre-built index chain from
// that collaborator, or nil when none exists yet. When non-nil, its bytes
// are counted in the header's argument and emitted before elements,
// exactly like any other child — Array differs from List only in its
// type code and in index's presence.
func EncodeArray(a *arena.Arena, index *arena.SliceNode, elements ...*arena.SliceNode) (*arena.SliceNode, error) {
	children := make([]*arena.SliceNode, 0, len(elements)+1)
	if index != nil {
		children = append(children, index)
	}
	children = append(children, elements...)

	return encodeContainer(a, format.Array, children)
}

// EncodeTrie builds a Trie container, the indexed variant of Map. See
// EncodeArray for the index parameter's meaning. pairs must hold an even
// number of key, value, ... children.
func EncodeTrie(a *arena.Arena, index *arena.SliceNode, pairs ...*arena.SliceNode) (*arena.SliceNode, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("%w: trie requires an even number of key/value children, got %d", errs.ErrInvalidTibs, len(pairs))
	}

	children := make([]*arena.SliceNode, 0, len(pairs)+1)
	if index != nil {
		children = append(children, index)
	}
	children = append(children, pairs...)

	return encodeContainer(a, format.Trie, children)
}

// EncodeScope builds a Scope container: a two-element container binding a
// value to its reference list. Resolving Ref values against refs is
// outside this package's scope; EncodeScope only frames the pair.
func EncodeScope(a *arena.Arena, value, refs *arena.SliceNode) (*arena.SliceNode, error) {
	return encodeContainer(a, format.Scope, []*arena.SliceNode{value, refs})
}

// encodeContainer sums the byte length of children, allocates the
// container's header with that length as its argument, and links the
// header in front of the children chain. Children are emitted in the
// order given, unchanged.
func encodeContainer(a *arena.Arena, typ format.Type, children []*arena.SliceNode) (*arena.SliceNode, error) {
	var total uint64
	for _, c := range children {
		for n := c; n != nil; n = n.Next {
			total += uint64(len(n.Data))
		}
	}

	header, err := AllocPair(a, typ, total, false)
	if err != nil {
		return nil, err
	}

	chains := make([]*arena.SliceNode, 0, len(children)+1)
	chains = append(chains, header)
	chains = append(chains, children...)

	return arena.Link(chains...), nil
}
