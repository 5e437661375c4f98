package wasm

import (
	"github.com/wippyai/wasmview/errors"
	"github.com/wippyai/wasmview/wasm/internal/binary"
)

func isAbstractHeap(b byte) (HeapKind, bool) {
	switch b {
	case heapFunc:
		return HeapKindFunc, true
	case heapExtern:
		return HeapKindExtern, true
	case heapAny:
		return HeapKindAny, true
	case heapEq:
		return HeapKindEq, true
	case heapI31:
		return HeapKindI31, true
	case heapStruct:
		return HeapKindStruct, true
	case heapArray:
		return HeapKindArray, true
	case heapNone:
		return HeapKindNone, true
	case heapNoExtern:
		return HeapKindNoExtern, true
	case heapNoFunc:
		return HeapKindNoFunc, true
	}
	return 0, false
}

// readHeapType reads an abstract heap type byte or a non-negative s33 type index.
func readHeapType(r *binary.Reader) (HeapType, error) {
	start := r.Offset()
	b, err := r.PeekByte()
	if err != nil {
		return HeapType{}, err
	}
	if kind, ok := isAbstractHeap(b); ok {
		r.ReadByte()
		return HeapType{Kind: kind}, nil
	}
	idx, err := r.ReadS33()
	if err != nil {
		return HeapType{}, err
	}
	if idx < 0 || idx > int64(^uint32(0)) {
		return HeapType{}, errors.InvalidDiscriminant(start, "heap type", b)
	}
	return HeapType{Kind: HeapKindTypedFunc, Index: uint32(idx)}, nil
}

// readRefType reads a reference type: a nullable shorthand byte, or
// 0x63/0x64 followed by a heap type.
func readRefType(r *binary.Reader) (RefType, error) {
	start := r.Offset()
	b, err := r.ReadByte()
	if err != nil {
		return RefType{}, err
	}
	return refTypeFrom(r, b, start)
}

func refTypeFrom(r *binary.Reader, b byte, start int) (RefType, error) {
	switch b {
	case valRefNull, valRef:
		ht, err := readHeapType(r)
		if err != nil {
			return RefType{}, err
		}
		return RefType{Heap: ht, Nullable: b == valRefNull}, nil
	}
	if kind, ok := isAbstractHeap(b); ok {
		return RefType{Heap: HeapType{Kind: kind}, Nullable: true}, nil
	}
	return RefType{}, errors.InvalidDiscriminant(start, "reference type", b)
}

// readValType reads a single value type.
func readValType(r *binary.Reader) (ValType, error) {
	start := r.Offset()
	b, err := r.ReadByte()
	if err != nil {
		return ValType{}, err
	}
	switch b {
	case valI32:
		return I32, nil
	case valI64:
		return I64, nil
	case valF32:
		return F32, nil
	case valF64:
		return F64, nil
	case valV128:
		return V128, nil
	}
	rt, err := refTypeFrom(r, b, start)
	if err != nil {
		if e, ok := errors.As(err); ok && e.Offset == start {
			return ValType{}, errors.InvalidDiscriminant(start, "value type", b)
		}
		return ValType{}, err
	}
	return RefVal(rt), nil
}

func isValTypeByte(b byte) bool {
	switch b {
	case valI32, valI64, valF32, valF64, valV128, valRefNull, valRef:
		return true
	}
	_, ok := isAbstractHeap(b)
	return ok
}

// readFuncType reads the 0x60 form and its flattened signature.
func readFuncType(r *binary.Reader) (*FuncType, error) {
	start := r.Offset()
	form, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if form != funcTypeByte {
		return nil, errors.InvalidDiscriminant(start, "type form", form)
	}

	numParams, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	types := make([]ValType, 0, capHint(numParams, r))
	for i := uint32(0); i < numParams; i++ {
		vt, err := readValType(r)
		if err != nil {
			return nil, err
		}
		types = append(types, vt)
	}

	numResults, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < numResults; i++ {
		vt, err := readValType(r)
		if err != nil {
			return nil, err
		}
		types = append(types, vt)
	}
	return &FuncType{ParamsResults: types, NumParams: int(numParams)}, nil
}

// readTableType reads reftype followed by 32-bit limits.
func readTableType(r *binary.Reader) (TableType, error) {
	elem, err := readRefType(r)
	if err != nil {
		return TableType{}, err
	}
	flagsOff := r.Offset()
	flags, err := r.ReadByte()
	if err != nil {
		return TableType{}, err
	}
	if flags&^limitsHasMax != 0 {
		return TableType{}, errors.Malformed(flagsOff, "invalid table resizable limits flags: 0x%x", flags)
	}
	tt := TableType{ElemType: elem}
	if tt.Initial, err = r.ReadU32(); err != nil {
		return TableType{}, err
	}
	if flags&limitsHasMax != 0 {
		max, err := r.ReadU32()
		if err != nil {
			return TableType{}, err
		}
		tt.Maximum = &max
	}
	return tt, nil
}

// readMemoryType reads memory limits. A shared memory without a maximum is
// reported only after the whole entry is consumed, so the caller can resume.
func readMemoryType(r *binary.Reader) (MemoryType, error) {
	flagsOff := r.Offset()
	flags, err := r.ReadByte()
	if err != nil {
		return MemoryType{}, err
	}
	if flags&^(limitsHasMax|limitsShared|limitsMemory64) != 0 {
		return MemoryType{}, errors.Malformed(flagsOff, "invalid memory limits flags: 0x%x", flags)
	}
	mt := MemoryType{
		Memory64: flags&limitsMemory64 != 0,
		Shared:   flags&limitsShared != 0,
	}
	if mt.Initial, err = readMemoryLimit(r, mt.Memory64); err != nil {
		return MemoryType{}, err
	}
	if flags&limitsHasMax != 0 {
		max, err := readMemoryLimit(r, mt.Memory64)
		if err != nil {
			return MemoryType{}, err
		}
		mt.Maximum = &max
	}
	if mt.Shared && mt.Maximum == nil {
		return MemoryType{}, resume(errors.Malformed(flagsOff, "shared memory must have a maximum size"))
	}
	return mt, nil
}

func readMemoryLimit(r *binary.Reader, memory64 bool) (uint64, error) {
	if memory64 {
		return r.ReadU64()
	}
	v, err := r.ReadU32()
	return uint64(v), err
}

// readGlobalType reads a content type and mutability byte. A bad
// mutability byte is deferred so the initializer can still be consumed.
func readGlobalType(r *binary.Reader, d *deferred) (GlobalType, error) {
	vt, err := readValType(r)
	if err != nil {
		return GlobalType{}, err
	}
	off := r.Offset()
	mut, err := r.ReadByte()
	if err != nil {
		return GlobalType{}, err
	}
	if mut > 1 {
		d.note(errors.Malformed(off, "malformed mutability: 0x%x", mut))
	}
	return GlobalType{ContentType: vt, Mutable: mut == 1}, nil
}

// readTagType reads the attribute byte and signature index. A non-zero
// attribute is deferred.
func readTagType(r *binary.Reader, d *deferred) (TagType, error) {
	off := r.Offset()
	attr, err := r.ReadByte()
	if err != nil {
		return TagType{}, err
	}
	if attr != 0 {
		d.note(errors.InvalidDiscriminant(off, "tag attribute", attr))
	}
	idx, err := r.ReadU32()
	if err != nil {
		return TagType{}, err
	}
	return TagType{Kind: TagKindException, FuncTypeIdx: idx}, nil
}

// readConstExpr captures operators up to and including the first end.
func readConstExpr(r *binary.Reader) (ConstExpr, error) {
	start := r.Offset()
	for {
		op, err := readOperator(r)
		if err != nil {
			return ConstExpr{}, err
		}
		if op.Name == "end" {
			break
		}
	}
	return ConstExpr{Data: r.Since(start), Offset: start}, nil
}
