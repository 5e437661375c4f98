package wasm

import (
	"github.com/wippyai/wasmview/errors"
	"github.com/wippyai/wasmview/wasm/internal/binary"
)

// Each NewXSectionReader takes a section payload (without its id and size
// prefix) and the payload's absolute offset in the module. The returned
// error is a section-level failure: the entry count could not be read.

// NewTypeSectionReader reads the type section.
func NewTypeSectionReader(data []byte, offset int) (*SectionReader[Type], error) {
	return newSectionReader(data, offset, decodeType)
}

// NewImportSectionReader reads the import section.
func NewImportSectionReader(data []byte, offset int) (*SectionReader[Import], error) {
	return newSectionReader(data, offset, decodeImport)
}

// NewFunctionSectionReader reads the function section.
func NewFunctionSectionReader(data []byte, offset int) (*SectionReader[Function], error) {
	return newSectionReader(data, offset, decodeFunction)
}

// NewTableSectionReader reads the table section.
func NewTableSectionReader(data []byte, offset int) (*SectionReader[Table], error) {
	return newSectionReader(data, offset, decodeTable)
}

// NewMemorySectionReader reads the memory section.
func NewMemorySectionReader(data []byte, offset int) (*SectionReader[MemoryType], error) {
	return newSectionReader(data, offset, readMemoryType)
}

// NewGlobalSectionReader reads the global section.
func NewGlobalSectionReader(data []byte, offset int) (*SectionReader[Global], error) {
	return newSectionReader(data, offset, decodeGlobal)
}

// NewExportSectionReader reads the export section.
func NewExportSectionReader(data []byte, offset int) (*SectionReader[Export], error) {
	return newSectionReader(data, offset, decodeExport)
}

// NewElementSectionReader reads the element section.
func NewElementSectionReader(data []byte, offset int) (*SectionReader[Element], error) {
	return newSectionReader(data, offset, decodeElement)
}

// NewCodeSectionReader reads the code section. Bodies carry no operators
// until FunctionBody.WithOperators is called.
func NewCodeSectionReader(data []byte, offset int) (*SectionReader[FunctionBody], error) {
	return newSectionReader(data, offset, decodeFunctionBody)
}

// NewDataSectionReader reads the data section.
func NewDataSectionReader(data []byte, offset int) (*SectionReader[Data], error) {
	return newSectionReader(data, offset, decodeData)
}

// NewTagSectionReader reads the tag section.
func NewTagSectionReader(data []byte, offset int) (*SectionReader[TagType], error) {
	return newSectionReader(data, offset, decodeTag)
}

// ReadStartSection reads the start function index.
func ReadStartSection(data []byte, offset int) (uint32, error) {
	return readSingleIndex(data, offset)
}

// ReadDataCountSection reads the declared number of data segments.
func ReadDataCountSection(data []byte, offset int) (uint32, error) {
	return readSingleIndex(data, offset)
}

func readSingleIndex(data []byte, offset int) (uint32, error) {
	r := binary.NewReader(data, offset)
	idx, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if !r.EOF() {
		return 0, errors.Malformed(r.Offset(), "section size mismatch: unexpected data at the end of the section")
	}
	return idx, nil
}

// ReadCustomSection reads a custom section's name. The rest of the payload
// is kept as opaque bytes.
func ReadCustomSection(data []byte, offset int) (CustomSection, error) {
	r := binary.NewReader(data, offset)
	name, err := r.ReadString()
	if err != nil {
		return CustomSection{}, err
	}
	dataOffset := r.Offset()
	return CustomSection{Name: name, Data: r.ReadRemaining(), DataOffset: dataOffset}, nil
}

func decodeType(r *binary.Reader) (Type, error) {
	start := r.Offset()
	ft, err := readFuncType(r)
	if err != nil {
		return Type{}, err
	}
	return Type{Kind: TypeKindFunc, Func: ft, Offset: start}, nil
}

// decodeImport reads module, name and a tagged TypeRef. An unknown tag is
// reported at the entry's offset; the next entry starts right after the tag.
func decodeImport(r *binary.Reader) (Import, error) {
	start := r.Offset()
	var d deferred

	module, err := r.ReadString()
	if err := d.absorb(err); err != nil {
		return Import{}, err
	}
	name, err := r.ReadString()
	if err := d.absorb(err); err != nil {
		return Import{}, err
	}
	kind, err := r.ReadByte()
	if err != nil {
		return Import{}, err
	}

	imp := Import{Module: module, Name: name, Offset: start}
	switch kind {
	case kindFunc:
		imp.Type.Kind = ExternalFunc
		if imp.Type.FuncTypeIdx, err = r.ReadU32(); err != nil {
			return Import{}, err
		}
	case kindTable:
		table, err := readTableType(r)
		if err != nil {
			return Import{}, err
		}
		imp.Type = TypeRef{Kind: ExternalTable, Table: &table}
	case kindMemory:
		memory, err := readMemoryType(r)
		if err := d.absorb(err); err != nil {
			return Import{}, err
		}
		imp.Type = TypeRef{Kind: ExternalMemory, Memory: &memory}
	case kindGlobal:
		global, err := readGlobalType(r, &d)
		if err != nil {
			return Import{}, err
		}
		imp.Type = TypeRef{Kind: ExternalGlobal, Global: &global}
	case kindTag:
		tag, err := readTagType(r, &d)
		if err != nil {
			return Import{}, err
		}
		imp.Type = TypeRef{Kind: ExternalTag, Tag: &tag}
	default:
		d.note(errors.InvalidDiscriminant(start, "external kind", kind))
	}
	return imp, d.result()
}

func decodeFunction(r *binary.Reader) (Function, error) {
	start := r.Offset()
	idx, err := r.ReadU32()
	if err != nil {
		return Function{}, err
	}
	return Function{TypeIdx: idx, Offset: start}, nil
}

// decodeTable reads either a plain table type, or 0x40 0x00 followed by a
// table type and an initializer expression.
func decodeTable(r *binary.Reader) (Table, error) {
	b, err := r.PeekByte()
	if err != nil {
		return Table{}, err
	}
	if b != tableInitPrefix {
		tt, err := readTableType(r)
		if err != nil {
			return Table{}, err
		}
		return Table{Type: tt, Init: TableInit{Kind: TableInitRefNull}}, nil
	}

	r.ReadByte()
	off := r.Offset()
	reserved, err := r.ReadByte()
	if err != nil {
		return Table{}, err
	}
	if reserved != 0 {
		return Table{}, errors.Malformed(off, "invalid table encoding: reserved byte 0x%x", reserved)
	}
	tt, err := readTableType(r)
	if err != nil {
		return Table{}, err
	}
	expr, err := readConstExpr(r)
	if err != nil {
		return Table{}, err
	}
	return Table{Type: tt, Init: TableInit{Kind: TableInitExpr, Expr: &expr}}, nil
}

func decodeGlobal(r *binary.Reader) (Global, error) {
	var d deferred
	gt, err := readGlobalType(r, &d)
	if err != nil {
		return Global{}, err
	}
	init, err := readConstExpr(r)
	if err != nil {
		return Global{}, err
	}
	return Global{Type: gt, Init: init}, d.result()
}

func decodeExport(r *binary.Reader) (Export, error) {
	var d deferred
	name, err := r.ReadString()
	if err := d.absorb(err); err != nil {
		return Export{}, err
	}
	off := r.Offset()
	kind, err := r.ReadByte()
	if err != nil {
		return Export{}, err
	}
	idx, err := r.ReadU32()
	if err != nil {
		return Export{}, err
	}
	if kind > kindTag {
		d.note(errors.InvalidDiscriminant(off, "external kind", kind))
	}
	return Export{Name: name, Kind: ExternalKind(kind), Index: idx}, d.result()
}

// decodeElement reads one segment; see Element for the flag layout.
func decodeElement(r *binary.Reader) (Element, error) {
	start := r.Offset()
	flags, err := r.ReadU32()
	if err != nil {
		return Element{}, err
	}
	if flags > 7 {
		return Element{}, errors.Malformed(start, "invalid flags byte in element segment: 0x%x", flags)
	}

	passive := flags&0x01 != 0
	explicit := flags&0x02 != 0
	usesExprs := flags&0x04 != 0

	var elem Element
	switch {
	case passive && explicit:
		elem.Kind.Mode = ElementDeclared
	case passive:
		elem.Kind.Mode = ElementPassive
	default:
		elem.Kind.Mode = ElementActive
		if explicit {
			if elem.Kind.TableIndex, err = r.ReadU32(); err != nil {
				return Element{}, err
			}
		}
		expr, err := readConstExpr(r)
		if err != nil {
			return Element{}, err
		}
		elem.Kind.OffsetExpr = &expr
	}

	// Flags 1, 2, 3: elemkind follows (must be 0x00 for funcref)
	// Flags 5, 6, 7: reftype follows
	elem.Type = FuncRef
	if flags&0x03 != 0 {
		if usesExprs {
			if elem.Type, err = readRefType(r); err != nil {
				return Element{}, err
			}
		} else {
			off := r.Offset()
			kind, err := r.ReadByte()
			if err != nil {
				return Element{}, err
			}
			if kind != 0x00 {
				return Element{}, errors.InvalidDiscriminant(off, "element kind", kind)
			}
		}
	}

	n, err := r.ReadU32()
	if err != nil {
		return Element{}, err
	}
	if usesExprs {
		exprs := make([]ConstExpr, 0, capHint(n, r))
		for i := uint32(0); i < n; i++ {
			expr, err := readConstExpr(r)
			if err != nil {
				return Element{}, err
			}
			exprs = append(exprs, expr)
		}
		elem.Items = ElementItems{Kind: ElementItemsExpressions, Expressions: exprs}
	} else {
		funcs := make([]uint32, 0, capHint(n, r))
		for i := uint32(0); i < n; i++ {
			idx, err := r.ReadU32()
			if err != nil {
				return Element{}, err
			}
			funcs = append(funcs, idx)
		}
		elem.Items = ElementItems{Kind: ElementItemsFunctions, Functions: funcs}
	}
	return elem, nil
}

func decodeData(r *binary.Reader) (Data, error) {
	start := r.Offset()
	flags, err := r.ReadU32()
	if err != nil {
		return Data{}, err
	}

	var seg Data
	switch flags {
	case 0, 2:
		seg.Kind.Mode = DataActive
		if flags == 2 {
			if seg.Kind.MemoryIndex, err = r.ReadU32(); err != nil {
				return Data{}, err
			}
		}
		expr, err := readConstExpr(r)
		if err != nil {
			return Data{}, err
		}
		seg.Kind.OffsetExpr = &expr
	case 1:
		seg.Kind.Mode = DataPassive
	default:
		return Data{}, errors.Malformed(start, "invalid flags byte in data segment: 0x%x", flags)
	}

	n, err := r.ReadU32()
	if err != nil {
		return Data{}, err
	}
	if seg.Data, err = r.ReadBytes(int(n)); err != nil {
		return Data{}, err
	}
	return seg, nil
}

func decodeTag(r *binary.Reader) (TagType, error) {
	var d deferred
	tag, err := readTagType(r, &d)
	if err != nil {
		return TagType{}, err
	}
	return tag, d.result()
}

// decodeFunctionBody reads the size prefix and local declarations. Once the
// size is known every later failure is resumable.
func decodeFunctionBody(r *binary.Reader) (FunctionBody, error) {
	size, err := r.ReadU32()
	if err != nil {
		return FunctionBody{}, err
	}
	body, err := r.Sub(int(size))
	if err != nil {
		return FunctionBody{}, err
	}

	fb := FunctionBody{Range: ByteRange{Start: body.Base(), End: body.Base() + int(size)}}
	groups, err := body.ReadU32()
	if err != nil {
		return FunctionBody{}, resume(err)
	}
	fb.Locals = make([]LocalDecl, 0, capHint(groups, body))
	for i := uint32(0); i < groups; i++ {
		count, err := body.ReadU32()
		if err != nil {
			return FunctionBody{}, resume(err)
		}
		vt, err := readValType(body)
		if err != nil {
			return FunctionBody{}, resume(err)
		}
		fb.Locals = append(fb.Locals, LocalDecl{Count: count, Type: vt})
	}
	fb.codeOffset = body.Offset()
	fb.code = body.ReadRemaining()
	return fb, nil
}
