package codec

import (
	"testing"

	"github.com/arloliu/nibs/arena"
	"github.com/arloliu/nibs/format"
	"github.com/stretchr/testify/require"
)

func TestHeaderLen_MinimalWidth(t *testing.T) {
	cases := []struct {
		big  uint64
		want int
	}{
		{11, 1},
		{12, 2},
		{255, 2},
		{256, 3},
		{65535, 3},
		{65536, 5},
		{1<<32 - 1, 5},
		{1 << 32, 9},
	}

	for _, c := range cases {
		require.Equal(t, c.want, HeaderLen(c.big), "big=%d", c.big)
	}
}

func TestAllocPair_NonContainer(t *testing.T) {
	a, err := newTestArena(t)
	require.NoError(t, err)

	node, err := AllocPair(a, format.ZigZag, 19, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0c, 0x13}, node.Data)
	require.Nil(t, node.Next)
}

func TestAllocPair_Container(t *testing.T) {
	a, err := newTestArena(t)
	require.NoError(t, err)

	node, err := AllocPair(a, format.Bytes, 4, true)
	require.NoError(t, err)
	require.Len(t, node.Data, 1+4)
	require.Equal(t, byte(0x84), node.Data[0])
}

// newTestArena returns a small arena sized generously for unit tests.
func newTestArena(t *testing.T) (*arena.Arena, error) {
	t.Helper()
	return arena.New(arena.WithSize(4096))
}
