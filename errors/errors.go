package errors

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindUnexpectedEOF Kind = "unexpected_eof" // fewer bytes remain than required
	KindMalformed     Kind = "malformed"      // LEB overflow or unknown discriminant
	KindInvalidUTF8   Kind = "invalid_utf8"   // string field is not UTF-8
	KindUnknownOpcode Kind = "unknown_opcode" // instruction not in the operator catalog
)

// Error is the single error shape produced while decoding a module.
// Offset is absolute within the buffer handed to the top-level decoder.
type Error struct {
	Kind    Kind
	Message string
	Offset  int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(" (at offset 0x")
	b.WriteString(strconv.FormatInt(int64(e.Offset), 16))
	b.WriteByte(')')
	return b.String()
}

// Is reports whether target has the same Kind. A target with a
// non-negative Offset must match it as well.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Offset < 0 || t.Offset == e.Offset
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder positioned at offset.
func New(kind Kind, offset int) *Builder {
	return &Builder{
		err: Error{
			Kind:   kind,
			Offset: offset,
		},
	}
}

// Message sets the human-readable message
func (b *Builder) Message(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Message = fmt.Sprintf(msg, args...)
	} else {
		b.err.Message = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	if b.err.Message == "" {
		b.err.Message = strings.ReplaceAll(string(b.err.Kind), "_", " ")
	}
	return &b.err
}

// Sentinels for errors.Is matching on Kind alone.
var (
	ErrUnexpectedEOF = &Error{Kind: KindUnexpectedEOF, Offset: -1}
	ErrMalformed     = &Error{Kind: KindMalformed, Offset: -1}
	ErrInvalidUTF8   = &Error{Kind: KindInvalidUTF8, Offset: -1}
	ErrUnknownOpcode = &Error{Kind: KindUnknownOpcode, Offset: -1}
)

// Convenience constructors for common error patterns

// UnexpectedEOF reports that need bytes were required at offset but fewer remained.
func UnexpectedEOF(offset, need, have int) *Error {
	msg := "unexpected end-of-file"
	if need > 0 {
		msg = fmt.Sprintf("unexpected end-of-file: need %d byte(s), have %d", need, have)
	}
	return &Error{
		Kind:    KindUnexpectedEOF,
		Message: msg,
		Offset:  offset,
	}
}

// Malformed creates a malformed encoding error
func Malformed(offset int, format string, args ...any) *Error {
	return New(KindMalformed, offset).Message(format, args...).Build()
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(offset int, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Kind:    KindInvalidUTF8,
		Message: fmt.Sprintf("malformed UTF-8 encoding: %x", preview),
		Offset:  offset,
	}
}

// UnknownOpcode creates an unknown opcode error. prefix is zero for
// single-byte opcodes.
func UnknownOpcode(offset int, prefix byte, code uint32) *Error {
	msg := fmt.Sprintf("illegal opcode: 0x%02x", code)
	if prefix != 0 {
		msg = fmt.Sprintf("unknown 0x%02x subopcode: 0x%x", prefix, code)
	}
	return &Error{
		Kind:    KindUnknownOpcode,
		Message: msg,
		Offset:  offset,
	}
}

// InvalidDiscriminant creates a malformed error for a tag byte with no mapping.
func InvalidDiscriminant(offset int, what string, value any) *Error {
	return &Error{
		Kind:    KindMalformed,
		Message: fmt.Sprintf("invalid %s: 0x%x", what, value),
		Offset:  offset,
	}
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrors.As(err, &e)
	return e, ok
}
