package wasm

import (
	"iter"

	"github.com/wippyai/wasmview/errors"
	"github.com/wippyai/wasmview/wasm/internal/binary"
)

// Result is the outcome of decoding one entry. Usually exactly one of Value
// or Err is meaningful. An entry holding a nested vector that stopped early
// keeps the nested entries decoded so far in Value alongside Err. Range
// covers the bytes the attempt consumed.
type Result[T any] struct {
	Value T
	Err   error
	Range ByteRange
}

// OK reports whether the entry decoded cleanly.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// resumable marks an entry error after which the cursor sits at the start of
// the next entry. It never escapes the package.
type resumable struct {
	err error
}

func (r *resumable) Error() string { return r.err.Error() }

func resume(err error) error {
	if err == nil {
		return nil
	}
	return &resumable{err: err}
}

// halt marks an entry that ended decoding but still carries the part of its
// value read before the failure.
type halt struct {
	err error
}

func (h *halt) Error() string { return h.err.Error() }

// deferred collects an entry's first non-fatal error while decoding continues.
type deferred struct {
	err error
}

// absorb keeps going past invalid UTF-8, whose bytes are already consumed,
// and past resumable errors from nested readers. Any other error is
// returned for the caller to abort on.
func (d *deferred) absorb(err error) error {
	if err == nil {
		return nil
	}
	if rs, ok := err.(*resumable); ok {
		d.note(rs.err)
		return nil
	}
	if e, ok := errors.As(err); ok && e.Kind == errors.KindInvalidUTF8 {
		d.note(err)
		return nil
	}
	return err
}

func (d *deferred) note(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *deferred) result() error {
	return resume(d.err)
}

// entryDecoder decodes one entry, leaving r positioned after it.
type entryDecoder[T any] func(r *binary.Reader) (T, error)

// SectionReader yields the entries of one section in declaration order.
// An entry that fails yields a Result with Err set. Decoding resumes at the
// next entry when the failed entry's extent is known and stops otherwise, so
// fewer entries than Count may be produced.
type SectionReader[T any] struct {
	r       *binary.Reader
	decode  entryDecoder[T]
	rng     ByteRange
	count   uint32
	read    uint32
	counted bool
	stopped bool
}

// newSectionReader reads the entry count. Failing to read it fails the section.
func newSectionReader[T any](data []byte, offset int, decode func(*binary.Reader) (T, error)) (*SectionReader[T], error) {
	r := binary.NewReader(data, offset)
	count, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	return &SectionReader[T]{
		r:       r,
		decode:  decode,
		rng:     ByteRange{Start: offset, End: offset + len(data)},
		count:   count,
		counted: true,
	}, nil
}

// newUncountedReader reads entries until the payload is exhausted.
func newUncountedReader[T any](data []byte, offset int, decode func(*binary.Reader) (T, error)) *SectionReader[T] {
	return &SectionReader[T]{
		r:      binary.NewReader(data, offset),
		decode: decode,
		rng:    ByteRange{Start: offset, End: offset + len(data)},
	}
}

// Count returns the declared number of entries. Uncounted sections report
// the number produced so far.
func (s *SectionReader[T]) Count() uint32 {
	if !s.counted {
		return s.read
	}
	return s.count
}

// Range returns the payload range.
func (s *SectionReader[T]) Range() ByteRange {
	return s.rng
}

// Offset returns the absolute offset of the next entry.
func (s *SectionReader[T]) Offset() int {
	return s.r.Offset()
}

// Stopped reports whether decoding ended early after an unrecoverable entry error.
func (s *SectionReader[T]) Stopped() bool {
	return s.stopped
}

// Next decodes the next entry. It returns false once every entry has been
// produced or decoding has stopped.
func (s *SectionReader[T]) Next() (Result[T], bool) {
	if s.stopped {
		return Result[T]{}, false
	}
	if s.counted && s.read >= s.count {
		return Result[T]{}, false
	}
	if !s.counted && s.r.EOF() {
		return Result[T]{}, false
	}

	start := s.r.Offset()
	v, err := s.decode(s.r)
	s.read++
	res := Result[T]{Range: ByteRange{Start: start, End: s.r.Offset()}}
	switch e := err.(type) {
	case nil:
		res.Value = v
	case *resumable:
		res.Err = e.err
	case *halt:
		res.Value = v
		res.Err = e.err
		s.stopped = true
	default:
		res.Err = err
		s.stopped = true
	}
	return res, true
}

// All iterates the remaining entries.
func (s *SectionReader[T]) All() iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		for {
			res, ok := s.Next()
			if !ok || !yield(res) {
				return
			}
		}
	}
}

// Collect decodes the remaining entries.
func (s *SectionReader[T]) Collect() []Result[T] {
	var out []Result[T]
	for res := range s.All() {
		out = append(out, res)
	}
	return out
}

// Finish reports bytes left over after the last declared entry. It returns
// nil when decoding stopped early, since the remainder is then unknown.
func (s *SectionReader[T]) Finish() error {
	if s.stopped || s.r.EOF() {
		return nil
	}
	if s.counted && s.read < s.count {
		return nil
	}
	return errors.Malformed(s.r.Offset(), "section size mismatch: unexpected data at the end of the section")
}

// capHint bounds a declared vector length by the bytes available, so a
// corrupt count cannot force a huge allocation.
func capHint(n uint32, r *binary.Reader) int {
	if int64(n) > int64(r.Remaining()) {
		return r.Remaining()
	}
	return int(n)
}
