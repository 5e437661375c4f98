package binary

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/wippyai/wasmview/errors"
)

// MaxStringSize bounds length-prefixed strings.
const MaxStringSize = 100_000

// Reader is a bounds-checked cursor over an immutable byte slice.
// Offsets reported by the reader and its errors are absolute: the position
// within data plus the base offset the reader was created with.
type Reader struct {
	data []byte
	pos  int
	base int
}

// NewReader creates a Reader over data whose first byte sits at absolute offset base.
func NewReader(data []byte, base int) *Reader {
	return &Reader{data: data, base: base}
}

// Offset returns the absolute offset of the next byte.
func (r *Reader) Offset() int {
	return r.base + r.pos
}

// Base returns the absolute offset of the first byte.
func (r *Reader) Base() int {
	return r.base
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// EOF reports whether every byte has been consumed.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

func (r *Reader) eof(start, need int) error {
	have := len(r.data) - (start - r.base)
	return errors.UnexpectedEOF(start, need, have)
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.eof(r.Offset(), 1)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.eof(r.Offset(), 1)
	}
	return r.data[r.pos], nil
}

// ReadBytes reads exactly n bytes. The returned slice aliases the input.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, r.eof(r.Offset(), n)
	}
	out := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return out, nil
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// Sub returns a reader over the next n bytes and advances past them.
func (r *Reader) Sub(n int) (*Reader, error) {
	start := r.Offset()
	data, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return NewReader(data, start), nil
}

// Since returns the bytes consumed from absolute offset start up to the
// cursor. start must not lie before Base or after Offset.
func (r *Reader) Since(start int) []byte {
	from := start - r.base
	if from < 0 || from > r.pos {
		return nil
	}
	return r.data[from:r.pos:r.pos]
}

// ReadRemaining returns every unread byte.
func (r *Reader) ReadRemaining() []byte {
	out := r.data[r.pos:len(r.data):len(r.data)]
	r.pos = len(r.data)
	return out
}

// ReadU32 reads an unsigned LEB128 encoded uint32.
func (r *Reader) ReadU32() (uint32, error) {
	v, err := r.readUnsigned(32)
	return uint32(v), err
}

// ReadU64 reads an unsigned LEB128 encoded uint64.
func (r *Reader) ReadU64() (uint64, error) {
	return r.readUnsigned(64)
}

// ReadS32 reads a signed LEB128 encoded int32.
func (r *Reader) ReadS32() (int32, error) {
	v, err := r.readSigned(32)
	return int32(v), err
}

// ReadS33 reads a signed 33-bit LEB128 value, as used by block types.
func (r *Reader) ReadS33() (int64, error) {
	return r.readSigned(33)
}

// ReadS64 reads a signed LEB128 encoded int64.
func (r *Reader) ReadS64() (int64, error) {
	return r.readSigned(64)
}

// readUnsigned decodes at most ceil(bits/7) bytes; the final byte may only
// carry the bits that still fit.
func (r *Reader) readUnsigned(bits uint) (uint64, error) {
	start := r.Offset()
	maxBytes := int((bits + 6) / 7)
	used := bits - 7*uint(maxBytes-1)

	var result uint64
	var shift uint
	for i := 0; ; i++ {
		if r.pos >= len(r.data) {
			return 0, r.eof(start, i+1)
		}
		b := r.data[r.pos]
		r.pos++
		if i == maxBytes-1 {
			if b&0x80 != 0 {
				return 0, errors.Malformed(start, "integer representation too long")
			}
			if (b&0x7f)>>used != 0 {
				return 0, errors.Malformed(start, "integer too large")
			}
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
}

// readSigned is readUnsigned for two's complement values: unused bits of the
// final byte must replicate the sign bit.
func (r *Reader) readSigned(bits uint) (int64, error) {
	start := r.Offset()
	maxBytes := int((bits + 6) / 7)
	used := bits - 7*uint(maxBytes-1)

	var result int64
	var shift uint
	var b byte
	for i := 0; ; i++ {
		if r.pos >= len(r.data) {
			return 0, r.eof(start, i+1)
		}
		b = r.data[r.pos]
		r.pos++
		if i == maxBytes-1 {
			if b&0x80 != 0 {
				return 0, errors.Malformed(start, "integer representation too long")
			}
			ext := (b & 0x7f) >> (used - 1)
			if ext != 0 && ext != 0x7f>>(used-1) {
				return 0, errors.Malformed(start, "integer too large")
			}
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
	}
	// Sign extend
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}
	return result, nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadF32 reads a little-endian IEEE 754 float32.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32LE()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads a little-endian IEEE 754 float64.
func (r *Reader) ReadF64() (float64, error) {
	buf, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
}

// ReadString reads a length-prefixed UTF-8 string. When the bytes are
// present but not valid UTF-8 the cursor is still advanced past them.
func (r *Reader) ReadString() (string, error) {
	start := r.Offset()
	length, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	if length > MaxStringSize {
		return "", errors.Malformed(start, "string size out of bounds")
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(start, data)
	}
	return string(data), nil
}
