package wasm

import (
	"github.com/wippyai/wasmview/wasm/internal/binary"
)

// NameSectionName is the custom section name carrying debug names.
const NameSectionName = "name"

// NewNameSectionReader reads the subsections of a name custom section.
// data is the custom section's payload after its name string.
func NewNameSectionReader(data []byte, offset int) *SectionReader[Name] {
	return newUncountedReader(data, offset, decodeName)
}

// decodeName reads one subsection. Once its size is known every failure
// inside is recoverable; the contents are best effort.
func decodeName(r *binary.Reader) (Name, error) {
	id, err := r.ReadByte()
	if err != nil {
		return Name{}, err
	}
	size, err := r.ReadU32()
	if err != nil {
		return Name{}, err
	}
	body, err := r.Sub(int(size))
	if err != nil {
		return Name{}, err
	}

	n := Name{Range: ByteRange{Start: body.Base(), End: body.Base() + int(size)}}
	switch id {
	case nameModule:
		n.Kind = NameKindModule
		if n.Module, err = body.ReadString(); err != nil {
			return Name{}, resume(err)
		}
	case nameFunction, nameType, nameTable, nameMemory, nameGlobal, nameElement, nameData:
		n.Kind = NameKind(id)
		if n.Map, _, err = readVec(body, decodeNaming); err != nil {
			return Name{}, resume(err)
		}
	case nameLocal, nameLabel:
		n.Kind = NameKind(id)
		if n.IndirectMap, _, err = readVec(body, decodeIndirectNaming); err != nil {
			return Name{}, resume(err)
		}
	default:
		n.Kind = NameKindUnknown
		n.Unknown = &NameUnknown{ID: id, Data: body.ReadRemaining()}
	}
	return n, nil
}

func decodeNaming(r *binary.Reader) (Naming, error) {
	var d deferred
	idx, err := r.ReadU32()
	if err != nil {
		return Naming{}, err
	}
	name, err := r.ReadString()
	if err := d.absorb(err); err != nil {
		return Naming{}, err
	}
	return Naming{Index: idx, Name: name}, d.result()
}

// decodeIndirectNaming keeps the namings read before an inner map stops.
// The end of the group is then unknown, so the outer map stops too.
func decodeIndirectNaming(r *binary.Reader) (IndirectNaming, error) {
	idx, err := r.ReadU32()
	if err != nil {
		return IndirectNaming{}, err
	}
	names, stopped, err := readVec(r, decodeNaming)
	if err != nil {
		return IndirectNaming{}, err
	}
	group := IndirectNaming{Index: idx, Names: names}
	if stopped {
		return group, &halt{err: names[len(names)-1].Err}
	}
	return group, nil
}

// readVec reads a counted vector in place, applying the same recovery rules
// as a section. It reports whether decoding stopped early.
func readVec[T any](r *binary.Reader, decode func(*binary.Reader) (T, error)) ([]Result[T], bool, error) {
	count, err := r.ReadU32()
	if err != nil {
		return nil, false, err
	}
	s := &SectionReader[T]{
		r:       r,
		decode:  decode,
		rng:     ByteRange{Start: r.Offset(), End: r.Offset() + r.Remaining()},
		count:   count,
		counted: true,
	}
	out := s.Collect()
	return out, s.Stopped(), nil
}
