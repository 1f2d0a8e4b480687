// bytearray_test.go
package avm2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newMemory(t *testing.T) *ByteArray {
	t.Helper()
	b := NewByteArray()
	b.SetLength(DefaultDomainMemoryLength)
	return b
}

func Test_ByteArray_BoundsAtEdges(t *testing.T) {
	b := newMemory(t)

	// Last addressable byte works; one past fails.
	require.NoError(t, b.WriteU8(b.Len()-1, 0xAB))
	v, err := b.ReadU8(b.Len() - 1)
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), v)

	err = b.WriteU8(b.Len(), 0)
	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, 1506, rangeErr.Code)

	// Wide accesses respect the access size, not just the start offset.
	require.NoError(t, b.WriteU32(b.Len()-4, 0xDEADBEEF))
	require.Error(t, b.WriteU32(b.Len()-3, 0))
	_, err = b.ReadF64(b.Len() - 7)
	require.Error(t, err)

	// Negative offsets are out of range, never a slice panic.
	require.Error(t, b.WriteU8(-1, 0))
	_, err = b.ReadU32(-4)
	require.Error(t, err)
}

func Test_ByteArray_GrowPreservesContents(t *testing.T) {
	b := newMemory(t)
	require.NoError(t, b.WriteU32(0, 0x01020304))
	require.NoError(t, b.WriteU8(1023, 0x7F))

	b.SetLength(2048)
	require.Equal(t, 2048, b.Len())

	v32, err := b.ReadU32(0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), v32)
	v8, err := b.ReadU8(1023)
	require.NoError(t, err)
	require.Equal(t, uint8(0x7F), v8)

	// Newly grown region reads as zero.
	v8, err = b.ReadU8(2047)
	require.NoError(t, err)
	require.Zero(t, v8)
}

func Test_ByteArray_ShrinkDiscardsTail(t *testing.T) {
	b := newMemory(t)
	require.NoError(t, b.WriteU8(512, 0xEE))

	b.SetLength(256)
	_, err := b.ReadU8(512)
	require.Error(t, err)

	// Regrowing must not resurrect the discarded bytes.
	b.SetLength(1024)
	v, err := b.ReadU8(512)
	require.NoError(t, err)
	require.Zero(t, v)
}

func Test_ByteArray_LittleEndianLayout(t *testing.T) {
	b := newMemory(t)
	require.NoError(t, b.WriteU32(0, 0x01020304))
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b.Bytes()[:4])

	require.NoError(t, b.WriteU16(8, 0xBEEF))
	require.Equal(t, []byte{0xEF, 0xBE}, b.Bytes()[8:10])
}

func Test_ByteArray_SignedAndFloatRoundTrips(t *testing.T) {
	b := newMemory(t)

	require.NoError(t, b.WriteI8(0, -5))
	i8, err := b.ReadI8(0)
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)

	require.NoError(t, b.WriteI16(2, -30000))
	i16, err := b.ReadI16(2)
	require.NoError(t, err)
	require.Equal(t, int16(-30000), i16)

	require.NoError(t, b.WriteI32(4, -2000000000))
	i32, err := b.ReadI32(4)
	require.NoError(t, err)
	require.Equal(t, int32(-2000000000), i32)

	require.NoError(t, b.WriteF32(8, 3.5))
	f32, err := b.ReadF32(8)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	require.NoError(t, b.WriteF64(16, -123.0625))
	f64, err := b.ReadF64(16)
	require.NoError(t, err)
	require.Equal(t, -123.0625, f64)
}

func Test_ByteArray_ZeroLengthBuffer(t *testing.T) {
	b := NewByteArray()
	require.Zero(t, b.Len())
	require.Error(t, b.WriteU8(0, 1))
	_, err := b.ReadU8(0)
	require.Error(t, err)
}
