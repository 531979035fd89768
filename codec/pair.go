package codec

import (
	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/endian"
	"github.com/arloliu/nibs/format"
)

// le is the byte order Nibs headers always use, regardless of host
// endianness.
var le = endian.GetLittleEndianEngine()

// pair header size-code bytes, per the minimal-width selection rule.
const (
	sizeCode8  = 0xc
	sizeCode16 = 0xd
	sizeCode32 = 0xe
	sizeCode64 = 0xf
)

// HeaderLen returns the number of bytes the pair header alone occupies for
// the given argument, before any trailing payload. The encoder always
// picks the smallest valid width: 1 byte for big < 12, 2 for big < 2^8, 3
// for big < 2^16, 5 for big < 2^32, 9 otherwise.
func HeaderLen(big uint64) int {
	switch {
	case big < 12:
		return 1
	case big < 1<<8:
		return 2
	case big < 1<<16:
		return 3
	case big < 1<<32:
		return 5
	default:
		return 9
	}
}

// AllocPair builds the minimal-width (small, big) pair header for a Nibs
// value and returns it as a fresh, arena-allocated SliceNode.
//
// If isContainer is true, the node's Data is sized headerBytes+big, with
// the trailing big bytes left for the caller to fill with the value's
// payload (see EncodeBytes, EncodeString). If isContainer is false, the
// node holds exactly the header bytes and big is the argument itself, not
// a payload length.
func AllocPair(a *arena.Arena, small format.Type, big uint64, isContainer bool) (*arena.SliceNode, error) {
	headerLen := HeaderLen(big)

	extra := 0
	if isContainer {
		extra = int(big)
	}

	node, err := a.AllocNode(headerLen + extra)
	if err != nil {
		return nil, err
	}

	switch headerLen {
	case 1:
		node.Data[0] = byte(small<<4) | byte(big)
	case 2:
		node.Data[0] = byte(small<<4) | sizeCode8
		node.Data[1] = byte(big)
	case 3:
		node.Data[0] = byte(small<<4) | sizeCode16
		le.PutUint16(node.Data[1:3], uint16(big))
	case 5:
		node.Data[0] = byte(small<<4) | sizeCode32
		le.PutUint32(node.Data[1:5], uint32(big))
	default: // 9
		node.Data[0] = byte(small<<4) | sizeCode64
		le.PutUint64(node.Data[1:9], big)
	}

	return node, nil
}
