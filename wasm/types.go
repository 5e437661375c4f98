package wasm

import (
	"strconv"
	"strings"
)

// ByteRange is a half-open range of absolute offsets into the module buffer.
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes covered.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// Contains reports whether offset lies within the range.
func (r ByteRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ValKind discriminates ValType.
type ValKind byte

const (
	ValKindI32 ValKind = iota
	ValKindI64
	ValKindF32
	ValKindF64
	ValKindV128
	ValKindRef
)

// ValType represents a WebAssembly value type. Ref is set only for ValKindRef.
type ValType struct {
	Ref  RefType
	Kind ValKind
}

// Numeric and vector value types.
var (
	I32  = ValType{Kind: ValKindI32}
	I64  = ValType{Kind: ValKindI64}
	F32  = ValType{Kind: ValKindF32}
	F64  = ValType{Kind: ValKindF64}
	V128 = ValType{Kind: ValKindV128}
)

// RefVal wraps a reference type as a value type.
func RefVal(rt RefType) ValType {
	return ValType{Kind: ValKindRef, Ref: rt}
}

func (v ValType) String() string {
	switch v.Kind {
	case ValKindI32:
		return "i32"
	case ValKindI64:
		return "i64"
	case ValKindF32:
		return "f32"
	case ValKindF64:
		return "f64"
	case ValKindV128:
		return "v128"
	case ValKindRef:
		return v.Ref.String()
	default:
		return "unknown"
	}
}

// HeapKind discriminates HeapType.
type HeapKind byte

const (
	HeapKindTypedFunc HeapKind = iota // concrete type index
	HeapKindFunc
	HeapKindExtern
	HeapKindAny
	HeapKindNone
	HeapKindNoExtern
	HeapKindNoFunc
	HeapKindEq
	HeapKindStruct
	HeapKindArray
	HeapKindI31
)

var heapKindNames = [...]string{
	HeapKindTypedFunc: "typed_func",
	HeapKindFunc:      "func",
	HeapKindExtern:    "extern",
	HeapKindAny:       "any",
	HeapKindNone:      "none",
	HeapKindNoExtern:  "noextern",
	HeapKindNoFunc:    "nofunc",
	HeapKindEq:        "eq",
	HeapKindStruct:    "struct",
	HeapKindArray:     "array",
	HeapKindI31:       "i31",
}

func (k HeapKind) String() string {
	if int(k) < len(heapKindNames) {
		return heapKindNames[k]
	}
	return "unknown"
}

// HeapType is an abstract heap type or, for HeapKindTypedFunc, a reference
// to the type section entry at Index.
type HeapType struct {
	Kind  HeapKind
	Index uint32
}

func (h HeapType) String() string {
	if h.Kind == HeapKindTypedFunc {
		return strconv.FormatUint(uint64(h.Index), 10)
	}
	return h.Kind.String()
}

// RefType represents a reference type with nullable flag and heap type.
type RefType struct {
	Heap     HeapType
	Nullable bool
}

// FuncRef is the (ref null func) shorthand.
var FuncRef = RefType{Heap: HeapType{Kind: HeapKindFunc}, Nullable: true}

// ExternRef is the (ref null extern) shorthand.
var ExternRef = RefType{Heap: HeapType{Kind: HeapKindExtern}, Nullable: true}

func (r RefType) String() string {
	if r.Nullable && r.Heap.Kind != HeapKindTypedFunc {
		switch r.Heap.Kind {
		case HeapKindNone:
			return "nullref"
		case HeapKindNoExtern:
			return "nullexternref"
		case HeapKindNoFunc:
			return "nullfuncref"
		default:
			return r.Heap.Kind.String() + "ref"
		}
	}
	if r.Nullable {
		return "(ref null " + r.Heap.String() + ")"
	}
	return "(ref " + r.Heap.String() + ")"
}

// FuncType is a function signature. Parameters and results share one slice:
// the first NumParams entries are parameters, the rest are results.
type FuncType struct {
	ParamsResults []ValType
	NumParams     int
}

// Params returns the parameter types.
func (f *FuncType) Params() []ValType {
	return f.ParamsResults[:f.NumParams]
}

// Results returns the result types.
func (f *FuncType) Results() []ValType {
	return f.ParamsResults[f.NumParams:]
}

func (f *FuncType) String() string {
	var b strings.Builder
	b.WriteString("(func")
	if f.NumParams > 0 {
		b.WriteString(" (param")
		for _, p := range f.Params() {
			b.WriteByte(' ')
			b.WriteString(p.String())
		}
		b.WriteByte(')')
	}
	if len(f.ParamsResults) > f.NumParams {
		b.WriteString(" (result")
		for _, r := range f.Results() {
			b.WriteByte(' ')
			b.WriteString(r.String())
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

// TypeKind discriminates Type. Only function types are recognized.
type TypeKind byte

const (
	TypeKindFunc TypeKind = iota
)

// Type is one type section entry, tagged with its absolute offset.
type Type struct {
	Func   *FuncType
	Offset int
	Kind   TypeKind
}

// ExternalKind identifies the kind of an imported or exported item.
type ExternalKind byte

const (
	ExternalFunc ExternalKind = iota
	ExternalTable
	ExternalMemory
	ExternalGlobal
	ExternalTag
)

func (k ExternalKind) String() string {
	switch k {
	case ExternalFunc:
		return "func"
	case ExternalTable:
		return "table"
	case ExternalMemory:
		return "memory"
	case ExternalGlobal:
		return "global"
	case ExternalTag:
		return "tag"
	default:
		return "unknown"
	}
}

// TypeRef describes what an import refers to. Only the field matching
// Kind is set.
type TypeRef struct {
	Table       *TableType
	Memory      *MemoryType
	Global      *GlobalType
	Tag         *TagType
	FuncTypeIdx uint32
	Kind        ExternalKind
}

// Import represents an imported function, table, memory, global, or tag.
type Import struct {
	Module string
	Name   string
	Type   TypeRef
	Offset int
}

// TableType describes a table with element type and size limits.
type TableType struct {
	Maximum  *uint32
	ElemType RefType
	Initial  uint32
}

// TableInitKind discriminates TableInit.
type TableInitKind byte

const (
	TableInitRefNull TableInitKind = iota
	TableInitExpr
)

// TableInit holds the initial contents of a table.
type TableInit struct {
	Expr *ConstExpr
	Kind TableInitKind
}

// Table is one table section entry.
type Table struct {
	Init TableInit
	Type TableType
}

// MemoryType describes a linear memory with size limits.
// A shared memory always has a Maximum.
type MemoryType struct {
	Maximum  *uint64
	Initial  uint64
	Memory64 bool
	Shared   bool
}

// GlobalType describes a global variable's type and mutability.
type GlobalType struct {
	ContentType ValType
	Mutable     bool
}

// ConstExpr is the raw encoding of an initializer expression, including
// its terminating end opcode. Offset is the absolute offset of Data[0].
type ConstExpr struct {
	Data   []byte
	Offset int
}

// Range returns the bytes covered by the expression.
func (c ConstExpr) Range() ByteRange {
	return ByteRange{Start: c.Offset, End: c.Offset + len(c.Data)}
}

// Global represents a global variable with type and initialization.
type Global struct {
	Init ConstExpr
	Type GlobalType
}

// TagKind discriminates tag types. Only exceptions exist.
type TagKind byte

const (
	TagKindException TagKind = iota
)

// TagType describes an exception handling tag type.
type TagType struct {
	FuncTypeIdx uint32
	Kind        TagKind
}

// Function is one function section entry.
type Function struct {
	TypeIdx uint32
	Offset  int
}

// Export describes an exported item.
type Export struct {
	Name  string
	Index uint32
	Kind  ExternalKind
}

// ElementMode discriminates ElementKind.
type ElementMode byte

const (
	ElementPassive ElementMode = iota
	ElementActive
	ElementDeclared
)

func (m ElementMode) String() string {
	switch m {
	case ElementPassive:
		return "passive"
	case ElementActive:
		return "active"
	case ElementDeclared:
		return "declared"
	default:
		return "unknown"
	}
}

// ElementKind says how an element segment is applied. TableIndex and
// OffsetExpr are set only for active segments.
type ElementKind struct {
	OffsetExpr *ConstExpr
	TableIndex uint32
	Mode       ElementMode
}

// ElementItemsKind discriminates ElementItems.
type ElementItemsKind byte

const (
	ElementItemsFunctions ElementItemsKind = iota
	ElementItemsExpressions
)

// ElementItems are the initial values of an element segment.
type ElementItems struct {
	Functions   []uint32
	Expressions []ConstExpr
	Kind        ElementItemsKind
}

// Element represents an element segment.
// Flags determine the format:
//   - 0: active, tableIdx=0, offset expr, vec(funcidx)
//   - 1: passive, elemkind, vec(funcidx)
//   - 2: active, tableIdx, offset expr, elemkind, vec(funcidx)
//   - 3: declarative, elemkind, vec(funcidx)
//   - 4: active, tableIdx=0, offset expr, vec(expr)
//   - 5: passive, reftype, vec(expr)
//   - 6: active, tableIdx, offset expr, reftype, vec(expr)
//   - 7: declarative, reftype, vec(expr)
type Element struct {
	Items ElementItems
	Kind  ElementKind
	Type  RefType
}

// DataMode discriminates DataKind.
type DataMode byte

const (
	DataPassive DataMode = iota
	DataActive
)

// DataKind says how a data segment is applied. MemoryIndex and OffsetExpr
// are set only for active segments.
type DataKind struct {
	OffsetExpr  *ConstExpr
	MemoryIndex uint32
	Mode        DataMode
}

// Data represents a data segment.
// Flags determine the format:
//   - 0: active, memIdx=0, offset expr, vec(byte)
//   - 1: passive, vec(byte)
//   - 2: active, memIdx, offset expr, vec(byte)
type Data struct {
	Data []byte
	Kind DataKind
}

// CustomSection holds a named custom section's data.
type CustomSection struct {
	Name       string
	Data       []byte
	DataOffset int
}

// Operator is one decoded instruction. Immediates are consumed but not kept.
type Operator struct {
	Name   string
	Offset int
}

// LocalDecl declares Count locals of one type.
type LocalDecl struct {
	Type  ValType
	Count uint32
}

// FunctionBody is one code section entry. Range covers the body after its
// size prefix. Ops is empty until WithOperators is called.
type FunctionBody struct {
	Locals []LocalDecl
	Ops    []Result[Operator]
	code   []byte
	Range  ByteRange
	// codeOffset is the absolute offset of code[0], just past the locals.
	codeOffset int
}

// Naming maps an index to a name.
type Naming struct {
	Name  string
	Index uint32
}

// IndirectNaming groups the namings that belong to one outer index,
// such as the locals of a function.
type IndirectNaming struct {
	Names []Result[Naming]
	Index uint32
}

// NameKind identifies a name subsection.
type NameKind byte

const (
	NameKindModule NameKind = iota
	NameKindFunction
	NameKindLocal
	NameKindLabel
	NameKindType
	NameKindTable
	NameKindMemory
	NameKindGlobal
	NameKindElement
	NameKindData
	NameKindUnknown
)

var nameKindNames = [...]string{
	NameKindModule:   "module",
	NameKindFunction: "function",
	NameKindLocal:    "local",
	NameKindLabel:    "label",
	NameKindType:     "type",
	NameKindTable:    "table",
	NameKindMemory:   "memory",
	NameKindGlobal:   "global",
	NameKindElement:  "element",
	NameKindData:     "data",
	NameKindUnknown:  "unknown",
}

func (k NameKind) String() string {
	if int(k) < len(nameKindNames) {
		return nameKindNames[k]
	}
	return "unknown"
}

// NameUnknown preserves a subsection with an unrecognized identifier.
type NameUnknown struct {
	Data []byte
	ID   byte
}

// Name is one subsection of the name custom section. Which field is set
// depends on Kind: Module for NameKindModule, IndirectMap for local and
// label names, Unknown for NameKindUnknown, Map otherwise.
type Name struct {
	Unknown     *NameUnknown
	Module      string
	Map         []Result[Naming]
	IndirectMap []Result[IndirectNaming]
	Range       ByteRange
	Kind        NameKind
}
