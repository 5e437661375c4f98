package wasmtest

import (
	"bytes"
	"testing"
)

func TestLEB(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"u32 zero", New().U32(0).Bytes(), []byte{0x00}},
		{"u32 624485", New().U32(624485).Bytes(), []byte{0xE5, 0x8E, 0x26}},
		{"u32 max", New().U32(0xFFFFFFFF).Bytes(), []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
		{"s32 -1", New().S32(-1).Bytes(), []byte{0x7F}},
		{"s64 -123456", New().S64(-123456).Bytes(), []byte{0xC0, 0xBB, 0x78}},
		{"s32 64", New().S32(64).Bytes(), []byte{0xC0, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.got, tt.want) {
				t.Errorf("got % x, want % x", tt.got, tt.want)
			}
		})
	}
}

func TestSection(t *testing.T) {
	got := Module().Section(1, Vec([]byte{0x60, 0x00, 0x00})).Bytes()
	want := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00, 0x01, 0x04, 0x01, 0x60, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestCustom(t *testing.T) {
	got := New().Custom("a", []byte{0x09}).Bytes()
	want := []byte{0x00, 0x03, 0x01, 'a', 0x09}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}
