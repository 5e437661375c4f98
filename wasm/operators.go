package wasm

import (
	"github.com/wippyai/wasmview/errors"
	"github.com/wippyai/wasmview/wasm/internal/binary"
	"github.com/wippyai/wasmview/wasm/internal/opcode"
)

// readOperator decodes one instruction, consuming its immediates.
func readOperator(r *binary.Reader) (Operator, error) {
	start := r.Offset()
	b, err := r.ReadByte()
	if err != nil {
		return Operator{}, err
	}

	key := opcode.Key{Code: uint32(b)}
	if opcode.IsPrefix(b) {
		sub, err := r.ReadU32()
		if err != nil {
			return Operator{}, err
		}
		key = opcode.Key{Prefix: b, Code: sub}
	}

	info, ok := opcode.Lookup(key)
	if !ok {
		return Operator{}, errors.UnknownOpcode(start, key.Prefix, key.Code)
	}
	if err := skipImmediates(r, info.Imm); err != nil {
		return Operator{}, err
	}
	return Operator{Name: info.Name, Offset: start}, nil
}

func skipImmediates(r *binary.Reader, imm opcode.Imm) error {
	var err error
	switch imm {
	case opcode.ImmNone:
	case opcode.ImmU32:
		_, err = r.ReadU32()
	case opcode.ImmU32x2:
		if _, err = r.ReadU32(); err == nil {
			_, err = r.ReadU32()
		}
	case opcode.ImmBlock:
		err = skipBlockType(r)
	case opcode.ImmBrTable:
		err = skipBrTable(r)
	case opcode.ImmI32:
		_, err = r.ReadS32()
	case opcode.ImmI64:
		_, err = r.ReadS64()
	case opcode.ImmF32:
		err = r.Skip(4)
	case opcode.ImmF64:
		err = r.Skip(8)
	case opcode.ImmHeapType:
		_, err = readHeapType(r)
	case opcode.ImmSelectT:
		err = skipValTypes(r)
	case opcode.ImmMemArg:
		err = skipMemArg(r)
	case opcode.ImmMemArgLane:
		if err = skipMemArg(r); err == nil {
			_, err = r.ReadByte()
		}
	case opcode.ImmLane:
		_, err = r.ReadByte()
	case opcode.ImmV128, opcode.ImmShuffle:
		err = r.Skip(16)
	case opcode.ImmByte:
		off := r.Offset()
		var b byte
		if b, err = r.ReadByte(); err == nil && b != 0 {
			err = errors.Malformed(off, "nonzero byte after atomic.fence")
		}
	case opcode.ImmTryTable:
		err = skipTryTable(r)
	case opcode.ImmBrOnCast:
		err = skipBrOnCast(r)
	}
	return err
}

// skipBlockType accepts the empty type, a value type, or a type index.
func skipBlockType(r *binary.Reader) error {
	start := r.Offset()
	b, err := r.PeekByte()
	if err != nil {
		return err
	}
	if b == blockTypeEmpty {
		r.ReadByte()
		return nil
	}
	if isValTypeByte(b) {
		_, err := readValType(r)
		return err
	}
	idx, err := r.ReadS33()
	if err != nil {
		return err
	}
	if idx < 0 {
		return errors.InvalidDiscriminant(start, "block type", b)
	}
	return nil
}

func skipBrTable(r *binary.Reader) error {
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i <= n; i++ {
		if _, err := r.ReadU32(); err != nil {
			return err
		}
	}
	return nil
}

func skipValTypes(r *binary.Reader) error {
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		if _, err := readValType(r); err != nil {
			return err
		}
	}
	return nil
}

// skipMemArg reads align and offset. Bit 6 of align signals an explicit
// memory index.
func skipMemArg(r *binary.Reader) error {
	align, err := r.ReadU32()
	if err != nil {
		return err
	}
	if align&0x40 != 0 {
		if _, err := r.ReadU32(); err != nil {
			return err
		}
	}
	_, err = r.ReadU64()
	return err
}

func skipTryTable(r *binary.Reader) error {
	if err := skipBlockType(r); err != nil {
		return err
	}
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		off := r.Offset()
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch kind {
		case catchKindCatch, catchKindCatchRef:
			if _, err := r.ReadU32(); err != nil {
				return err
			}
		case catchKindCatchAll, catchKindCatchAllRef:
		default:
			return errors.InvalidDiscriminant(off, "catch kind", kind)
		}
		if _, err := r.ReadU32(); err != nil {
			return err
		}
	}
	return nil
}

func skipBrOnCast(r *binary.Reader) error {
	off := r.Offset()
	flags, err := r.ReadByte()
	if err != nil {
		return err
	}
	if flags > 3 {
		return errors.InvalidDiscriminant(off, "cast flags", flags)
	}
	if _, err := r.ReadU32(); err != nil {
		return err
	}
	if _, err := readHeapType(r); err != nil {
		return err
	}
	_, err = readHeapType(r)
	return err
}

// decodeOperators decodes every instruction in data. Decoding stops at the
// first error since the next instruction boundary is then unknown.
func decodeOperators(data []byte, offset int) []Result[Operator] {
	r := binary.NewReader(data, offset)
	var ops []Result[Operator]
	for !r.EOF() {
		start := r.Offset()
		op, err := readOperator(r)
		res := Result[Operator]{Range: ByteRange{Start: start, End: r.Offset()}}
		if err != nil {
			res.Err = err
			return append(ops, res)
		}
		res.Value = op
		ops = append(ops, res)
	}
	return ops
}

// Operators decodes the expression's instructions.
func (c ConstExpr) Operators() []Result[Operator] {
	return decodeOperators(c.Data, c.Offset)
}

// Operators decodes the body's instruction stream.
func (b FunctionBody) Operators() []Result[Operator] {
	return decodeOperators(b.code, b.codeOffset)
}

// CodeRange covers the instructions, after the local declarations.
func (b FunctionBody) CodeRange() ByteRange {
	return ByteRange{Start: b.codeOffset, End: b.codeOffset + len(b.code)}
}

// WithOperators returns a copy of b with Ops populated.
func (b FunctionBody) WithOperators() FunctionBody {
	b.Ops = b.Operators()
	return b
}
