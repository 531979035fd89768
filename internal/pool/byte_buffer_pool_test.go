package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_WriteByte(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)

	require.NoError(t, bb.WriteByte('a'))
	require.NoError(t, bb.WriteByte('b'))
	assert.Equal(t, []byte("ab"), bb.B)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("hello"), bb.B)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.B = append(bb.B, []byte("test data")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	bb.B = append(bb.B, []byte("test")...)

	ew := &errorWriter{err: io.ErrShortWrite}
	n, err := bb.WriteTo(ew)

	assert.Error(t, err)
	assert.Equal(t, io.ErrShortWrite, err)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.B = append(bb.B, []byte("hello world")...)

	assert.Equal(t, []byte("hello"), bb.Slice(0, 5))
}

func TestByteBuffer_Slice_PanicsOnInvalidRange(t *testing.T) {
	bb := NewByteBuffer(16)

	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.Slice(4, 2) })
	assert.Panics(t, func() { bb.Slice(0, 100) })
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(ScratchBufferDefaultSize)
	originalCap := cap(bb.B)

	bb.Grow(10)

	assert.Equal(t, originalCap, cap(bb.B))
}

func TestByteBuffer_Grow_ForcesReallocation(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.B = append(bb.B, make([]byte, 8)...)

	bb.Grow(100)

	assert.GreaterOrEqual(t, cap(bb.B), 108)
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(4)
	testData := []byte("important data that must be preserved")
	bb.B = append(bb.B, testData...)

	bb.Grow(1024)

	assert.Equal(t, testData, bb.B)
}

func TestNewByteBufferPool(t *testing.T) {
	pool := NewByteBufferPool(64, 256)

	bb := pool.Get()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, cap(bb.B), 64)

	pool.Put(bb)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	pool := NewByteBufferPool(64, 256)

	bb := pool.Get()
	bb.Grow(1000)
	assert.Greater(t, cap(bb.B), 256)

	pool.Put(bb)

	bb2 := pool.Get()
	assert.LessOrEqual(t, cap(bb2.B), 256*2)
}

func TestByteBufferPool_MaxThreshold_Zero(t *testing.T) {
	pool := NewByteBufferPool(64, 0)

	bb := pool.Get()
	bb.Grow(10000)
	pool.Put(bb)

	bb2 := pool.Get()
	require.NotNil(t, bb2)
}

func TestByteBufferPool_Put_Nil(t *testing.T) {
	pool := NewByteBufferPool(64, 256)
	assert.NotPanics(t, func() { pool.Put(nil) })
}

func TestScratchBufferPool_GetResetsOnPut(t *testing.T) {
	bb := GetScratchBuffer()
	bb.MustWrite([]byte("scratch"))

	PutScratchBuffer(bb)

	assert.Equal(t, 0, len(bb.B))
}

func TestScratchBufferPool_Concurrent(t *testing.T) {
	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for range goroutines {
		go func() {
			defer wg.Done()
			for range iterations {
				bb := GetScratchBuffer()
				bb.MustWrite([]byte("data"))
				assert.Equal(t, 4, bb.Len())
				PutScratchBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (n int, err error) {
	return 0, ew.err
}
