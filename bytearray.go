// bytearray.go — growable linear byte buffer backing domain memory
//
// The VM's low-level memory opcodes (li8/li16/li32/lf32/lf64 and the si*
// stores) address the current domain's memory as a little-endian linear
// buffer. Every access is bounds-checked against the logical length and
// fails with a RangeError; there is no silent truncation and no undefined
// behavior. Resizing is explicit: growth zero-fills, shrink discards the
// tail, and either way the single caller never observes a partial copy.
package avm2

import (
	"encoding/binary"
	"math"
)

// DefaultDomainMemoryLength is the size of the buffer a freshly-constructed
// domain starts with.
const DefaultDomainMemoryLength = 1024

// ByteArray is the subsystem's realization of the host byte-buffer type.
// A domain owns its ByteArray exclusively.
type ByteArray struct {
	data []byte
}

func NewByteArray() *ByteArray { return &ByteArray{} }

// Len returns the current logical length in bytes.
func (b *ByteArray) Len() int { return len(b.data) }

// Bytes exposes the backing store. Callers must not resize through it.
func (b *ByteArray) Bytes() []byte { return b.data }

// SetLength grows (zero-filled) or shrinks the buffer to n bytes. Bytes
// beyond a shrink are discarded; regrowing later reads back zeroes, never
// stale contents. Negative lengths are caller misuse.
func (b *ByteArray) SetLength(n int) {
	if n < 0 {
		panic("ByteArray length cannot be negative")
	}
	if n == len(b.data) {
		return
	}
	next := make([]byte, n)
	copy(next, b.data)
	b.data = next
}

// check validates an access of size bytes at offset.
func (b *ByteArray) check(offset, size int) error {
	if offset < 0 || offset > len(b.data)-size {
		return rangeError()
	}
	return nil
}

func (b *ByteArray) ReadU8(offset int) (uint8, error) {
	if err := b.check(offset, 1); err != nil {
		return 0, err
	}
	return b.data[offset], nil
}

func (b *ByteArray) ReadU16(offset int) (uint16, error) {
	if err := b.check(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.data[offset:]), nil
}

func (b *ByteArray) ReadU32(offset int) (uint32, error) {
	if err := b.check(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.data[offset:]), nil
}

func (b *ByteArray) ReadI8(offset int) (int8, error) {
	v, err := b.ReadU8(offset)
	return int8(v), err
}

func (b *ByteArray) ReadI16(offset int) (int16, error) {
	v, err := b.ReadU16(offset)
	return int16(v), err
}

func (b *ByteArray) ReadI32(offset int) (int32, error) {
	v, err := b.ReadU32(offset)
	return int32(v), err
}

func (b *ByteArray) ReadF32(offset int) (float32, error) {
	v, err := b.ReadU32(offset)
	return math.Float32frombits(v), err
}

func (b *ByteArray) ReadF64(offset int) (float64, error) {
	if err := b.check(offset, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b.data[offset:])), nil
}

func (b *ByteArray) WriteU8(offset int, v uint8) error {
	if err := b.check(offset, 1); err != nil {
		return err
	}
	b.data[offset] = v
	return nil
}

func (b *ByteArray) WriteU16(offset int, v uint16) error {
	if err := b.check(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.data[offset:], v)
	return nil
}

func (b *ByteArray) WriteU32(offset int, v uint32) error {
	if err := b.check(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.data[offset:], v)
	return nil
}

func (b *ByteArray) WriteI8(offset int, v int8) error   { return b.WriteU8(offset, uint8(v)) }
func (b *ByteArray) WriteI16(offset int, v int16) error { return b.WriteU16(offset, uint16(v)) }
func (b *ByteArray) WriteI32(offset int, v int32) error { return b.WriteU32(offset, uint32(v)) }

func (b *ByteArray) WriteF32(offset int, v float32) error {
	return b.WriteU32(offset, math.Float32bits(v))
}

func (b *ByteArray) WriteF64(offset int, v float64) error {
	if err := b.check(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.data[offset:], math.Float64bits(v))
	return nil
}
