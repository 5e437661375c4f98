package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message and offset",
			err:      &Error{Kind: KindMalformed, Message: "invalid value type", Offset: 0x2a},
			contains: []string{"invalid value type", "offset 0x2a"},
		},
		{
			name:     "zero offset",
			err:      &Error{Kind: KindUnexpectedEOF, Message: "unexpected end-of-file"},
			contains: []string{"unexpected end-of-file", "offset 0x0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{Kind: KindMalformed, Message: "bad flags", Offset: 7}

	if !errors.Is(err, ErrMalformed) {
		t.Error("errors.Is should match kind sentinel")
	}
	if errors.Is(err, ErrUnexpectedEOF) {
		t.Error("errors.Is should not match different kind")
	}
	if !err.Is(&Error{Kind: KindMalformed, Offset: 7}) {
		t.Error("Is should match same kind and offset")
	}
	if err.Is(&Error{Kind: KindMalformed, Offset: 8}) {
		t.Error("Is should not match different offset")
	}
	if err.Is(errors.New("bad flags")) {
		t.Error("Is should not match foreign errors")
	}
}

func TestBuilder(t *testing.T) {
	err := New(KindMalformed, 12).
		Message("expected %d entries, got %d", 3, 2).
		Build()

	if err.Kind != KindMalformed {
		t.Errorf("Kind = %v, want %v", err.Kind, KindMalformed)
	}
	if err.Offset != 12 {
		t.Errorf("Offset = %d, want 12", err.Offset)
	}
	if err.Message != "expected 3 entries, got 2" {
		t.Errorf("Message = %q", err.Message)
	}

	plain := New(KindUnknownOpcode, 0).Build()
	if plain.Message != "unknown opcode" {
		t.Errorf("default Message = %q, want %q", plain.Message, "unknown opcode")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnexpectedEOF", func(t *testing.T) {
		err := UnexpectedEOF(5, 4, 1)
		if err.Kind != KindUnexpectedEOF || err.Offset != 5 {
			t.Errorf("got %+v", err)
		}
		if !strings.Contains(err.Message, "need 4") {
			t.Errorf("Message = %q, should mention required size", err.Message)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		err := Malformed(3, "invalid flags 0x%x", 9)
		if err.Kind != KindMalformed || err.Message != "invalid flags 0x9" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		err := InvalidUTF8(10, []byte{0xff, 0xfe})
		if err.Kind != KindInvalidUTF8 || err.Offset != 10 {
			t.Errorf("got %+v", err)
		}
		if !strings.Contains(err.Message, "fffe") {
			t.Errorf("Message = %q, should preview bytes", err.Message)
		}
	})

	t.Run("UnknownOpcode", func(t *testing.T) {
		err := UnknownOpcode(1, 0, 0xff)
		if err.Kind != KindUnknownOpcode || !strings.Contains(err.Message, "0xff") {
			t.Errorf("got %+v", err)
		}
		prefixed := UnknownOpcode(1, 0xfd, 0x200)
		if !strings.Contains(prefixed.Message, "0xfd") {
			t.Errorf("Message = %q, should name the prefix", prefixed.Message)
		}
	})

	t.Run("InvalidDiscriminant", func(t *testing.T) {
		err := InvalidDiscriminant(4, "external kind", byte(9))
		if err.Kind != KindMalformed {
			t.Errorf("Kind = %v, want %v", err.Kind, KindMalformed)
		}
	})
}

func TestAs(t *testing.T) {
	var err error = Malformed(1, "x")
	e, ok := As(err)
	if !ok || e.Offset != 1 {
		t.Fatalf("As = %v, %v", e, ok)
	}
	if _, ok := As(errors.New("plain")); ok {
		t.Error("As should reject foreign errors")
	}
}

func TestAs_Wrapped(t *testing.T) {
	err := fmt.Errorf("import section: %w", UnexpectedEOF(12, 4, 1))
	e, ok := As(err)
	if !ok {
		t.Fatalf("As(%v) found no *Error", err)
	}
	if e.Kind != KindUnexpectedEOF || e.Offset != 12 {
		t.Errorf("As = %v at %d, want %v at 12", e.Kind, e.Offset, KindUnexpectedEOF)
	}
}
