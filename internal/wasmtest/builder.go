// Package wasmtest builds module bytes for tests.
package wasmtest

import (
	"bytes"
	"encoding/binary"
)

// Builder accumulates encoded bytes. Methods return the builder so
// fixtures can be written as one chained expression.
type Builder struct {
	buf bytes.Buffer
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Module returns a builder primed with the magic number and version.
func Module() *Builder {
	return New().U32LE(0x6D736100).U32LE(1)
}

// Bytes returns the encoded bytes.
func (b *Builder) Bytes() []byte {
	return bytes.Clone(b.buf.Bytes())
}

// Len returns the number of bytes written.
func (b *Builder) Len() int {
	return b.buf.Len()
}

// Byte writes raw bytes.
func (b *Builder) Byte(bs ...byte) *Builder {
	b.buf.Write(bs)
	return b
}

// Raw writes a byte slice unchanged.
func (b *Builder) Raw(data []byte) *Builder {
	b.buf.Write(data)
	return b
}

// U32 writes an unsigned LEB128 uint32.
func (b *Builder) U32(v uint32) *Builder {
	return b.U64(uint64(v))
}

// U64 writes an unsigned LEB128 uint64.
func (b *Builder) U64(v uint64) *Builder {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			c |= 0x80
		}
		b.buf.WriteByte(c)
		if v == 0 {
			return b
		}
	}
}

// S32 writes a signed LEB128 int32.
func (b *Builder) S32(v int32) *Builder {
	return b.S64(int64(v))
}

// S64 writes a signed LEB128 int64.
func (b *Builder) S64(v int64) *Builder {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0) {
			b.buf.WriteByte(c)
			return b
		}
		b.buf.WriteByte(c | 0x80)
	}
}

// U32LE writes a fixed-width little-endian uint32.
func (b *Builder) U32LE(v uint32) *Builder {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf.Write(tmp[:])
	return b
}

// Name writes a length-prefixed string. The bytes are not checked, so
// invalid UTF-8 can be written on purpose.
func (b *Builder) Name(s string) *Builder {
	return b.NameBytes([]byte(s))
}

// NameBytes writes a length-prefixed byte string.
func (b *Builder) NameBytes(data []byte) *Builder {
	b.U32(uint32(len(data)))
	b.buf.Write(data)
	return b
}

// Vec writes a count followed by the concatenated items.
func (b *Builder) Vec(items ...[]byte) *Builder {
	b.U32(uint32(len(items)))
	for _, it := range items {
		b.buf.Write(it)
	}
	return b
}

// Sized writes payload preceded by its LEB128 length.
func (b *Builder) Sized(payload []byte) *Builder {
	return b.NameBytes(payload)
}

// Section writes a section id, its size and payload.
func (b *Builder) Section(id byte, payload []byte) *Builder {
	b.buf.WriteByte(id)
	return b.Sized(payload)
}

// Custom writes a custom section with the given name and contents.
func (b *Builder) Custom(name string, payload []byte) *Builder {
	return b.Section(0, New().Name(name).Raw(payload).Bytes())
}

// Vec is shorthand for New().Vec(items...).Bytes().
func Vec(items ...[]byte) []byte {
	return New().Vec(items...).Bytes()
}

// Cat concatenates byte slices.
func Cat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// U32 encodes v as unsigned LEB128.
func U32(v uint32) []byte {
	return New().U32(v).Bytes()
}

// Name encodes a length-prefixed string.
func Name(s string) []byte {
	return New().Name(s).Bytes()
}
