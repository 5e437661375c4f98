package binary

import (
	"bytes"
	stderrors "errors"
	"math"
	"testing"

	"github.com/wippyai/wasmview/errors"
)

func kindOf(t *testing.T, err error) errors.Kind {
	t.Helper()
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %T (%v)", err, err)
	}
	return e.Kind
}

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(data, 100)

	for i, want := range data {
		if r.Offset() != 100+i {
			t.Errorf("offset before read %d: got %d, want %d", i, r.Offset(), 100+i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if !r.EOF() {
		t.Error("expected EOF after reading all bytes")
	}

	_, err := r.ReadByte()
	if !stderrors.Is(err, errors.ErrUnexpectedEOF) {
		t.Errorf("expected unexpected EOF, got %v", err)
	}
	if e, _ := errors.As(err); e.Offset != 103 {
		t.Errorf("EOF offset: got %d, want 103", e.Offset)
	}
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(data, 0)

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}

	_, err = r.ReadBytes(10)
	if err == nil {
		t.Fatal("expected error for reading past end")
	}
	if kindOf(t, err) != errors.KindUnexpectedEOF {
		t.Errorf("kind: got %v", kindOf(t, err))
	}
	if r.Offset() != 3 {
		t.Errorf("failed read must not advance: offset %d", r.Offset())
	}
}

func TestReaderSub(t *testing.T) {
	r := NewReader([]byte{0xaa, 0x01, 0x02, 0xbb}, 10)
	if _, err := r.ReadByte(); err != nil {
		t.Fatal(err)
	}
	sub, err := r.Sub(2)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}
	if sub.Offset() != 11 || sub.Remaining() != 2 {
		t.Errorf("sub: offset %d remaining %d", sub.Offset(), sub.Remaining())
	}
	if r.Offset() != 13 {
		t.Errorf("parent offset: got %d, want 13", r.Offset())
	}
	if _, err := r.Sub(5); err == nil {
		t.Error("expected EOF for oversized sub-reader")
	}
}

func TestReaderReadU32(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x00}, 0},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded, 0)
		got, err := r.ReadU32()
		if err != nil {
			t.Errorf("ReadU32(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU32(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderLEBErrors(t *testing.T) {
	tests := []struct {
		name    string
		encoded []byte
		read    func(*Reader) error
		kind    errors.Kind
	}{
		{"u32 too long", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, readU32, errors.KindMalformed},
		{"u32 unused bits", []byte{0xff, 0xff, 0xff, 0xff, 0x1f}, readU32, errors.KindMalformed},
		{"u32 truncated", []byte{0x80, 0x80}, readU32, errors.KindUnexpectedEOF},
		{"u64 unused bits", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x02}, readU64, errors.KindMalformed},
		{"s32 bad sign bits", []byte{0xff, 0xff, 0xff, 0xff, 0x4f}, readS32, errors.KindMalformed},
		{"s33 too long", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, readS33, errors.KindMalformed},
		{"s64 bad sign bits", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}, readS64, errors.KindMalformed},
		{"empty", nil, readU32, errors.KindUnexpectedEOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(append([]byte{0xaa}, tt.encoded...), 40)
			r.ReadByte()
			err := tt.read(r)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := kindOf(t, err); got != tt.kind {
				t.Errorf("kind: got %v, want %v", got, tt.kind)
			}
			if e, _ := errors.As(err); e.Offset != 41 {
				t.Errorf("offset: got %d, want 41 (start of read)", e.Offset)
			}
		})
	}
}

func readU32(r *Reader) error { _, err := r.ReadU32(); return err }
func readU64(r *Reader) error { _, err := r.ReadU64(); return err }
func readS32(r *Reader) error { _, err := r.ReadS32(); return err }
func readS33(r *Reader) error { _, err := r.ReadS33(); return err }
func readS64(r *Reader) error { _, err := r.ReadS64(); return err }

func TestReaderReadU64(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, math.MaxUint64},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded, 0)
		got, err := r.ReadU64()
		if err != nil {
			t.Errorf("ReadU64(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadU64(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadS32(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    int32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, -1},
		{[]byte{0x3f}, 63},
		{[]byte{0x40}, -64},
		{[]byte{0xc0, 0x00}, 64},
		{[]byte{0xbf, 0x7f}, -65},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x07}, math.MaxInt32},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x78}, math.MinInt32},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded, 0)
		got, err := r.ReadS32()
		if err != nil {
			t.Errorf("ReadS32(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadS32(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadS33(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    int64
	}{
		{[]byte{0x40}, -64},
		{[]byte{0x7f}, -1},
		{[]byte{0x05}, 5},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded, 0)
		got, err := r.ReadS33()
		if err != nil {
			t.Errorf("ReadS33(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadS33(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadS64(t *testing.T) {
	tests := []struct {
		encoded []byte
		want    int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, -1},
		{[]byte{0x3f}, 63},
		{[]byte{0x40}, -64},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}, math.MinInt64},
	}

	for _, tt := range tests {
		r := NewReader(tt.encoded, 0)
		got, err := r.ReadS64()
		if err != nil {
			t.Errorf("ReadS64(%v): %v", tt.encoded, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadS64(%v): got %d, want %d", tt.encoded, got, tt.want)
		}
	}
}

func TestReaderReadString(t *testing.T) {
	r := NewReader([]byte{0x05, 'h', 'e', 'l', 'l', 'o'}, 0)
	got, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "hello" {
		t.Errorf("ReadString: got %q, want %q", got, "hello")
	}
}

func TestReaderReadStringInvalidUTF8(t *testing.T) {
	data := []byte{0x02, 0xff, 0xfe, 0x01}
	r := NewReader(data, 8)
	_, err := r.ReadString()
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if kindOf(t, err) != errors.KindInvalidUTF8 {
		t.Errorf("kind: got %v", kindOf(t, err))
	}
	if e, _ := errors.As(err); e.Offset != 8 {
		t.Errorf("offset: got %d, want 8", e.Offset)
	}
	if r.Offset() != 11 {
		t.Errorf("cursor should sit past the string bytes, got %d", r.Offset())
	}
}

func TestReaderReadStringTruncated(t *testing.T) {
	r := NewReader([]byte{0x04, 'a', 'b'}, 0)
	_, err := r.ReadString()
	if kindOf(t, err) != errors.KindUnexpectedEOF {
		t.Errorf("kind: got %v", kindOf(t, err))
	}
}

func TestReaderFixedWidth(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	data = append(data, 0x00, 0x00, 0x80, 0x3f)
	data = append(data, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f)
	r := NewReader(data, 0)

	u, err := r.ReadU32LE()
	if err != nil || u != 0x04030201 {
		t.Errorf("ReadU32LE: got 0x%x, %v", u, err)
	}
	f32, err := r.ReadF32()
	if err != nil || f32 != 1.0 {
		t.Errorf("ReadF32: got %v, %v", f32, err)
	}
	f64, err := r.ReadF64()
	if err != nil || f64 != 1.0 {
		t.Errorf("ReadF64: got %v, %v", f64, err)
	}
	if _, err := r.ReadF64(); err == nil {
		t.Error("expected EOF")
	}
}

func TestReaderReadRemaining(t *testing.T) {
	r := NewReader([]byte{1, 2, 3}, 0)
	r.ReadByte()
	if got := r.ReadRemaining(); !bytes.Equal(got, []byte{2, 3}) {
		t.Errorf("ReadRemaining: got %v", got)
	}
	if !r.EOF() {
		t.Error("expected EOF")
	}
}
