package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// SectionID is the one-byte identifier that precedes every section.
type SectionID byte

// Section IDs define the binary identifiers for each module section.
const (
	SectionCustom    SectionID = 0  // Custom section (can appear anywhere)
	SectionType      SectionID = 1  // Type section (function signatures)
	SectionImport    SectionID = 2  // Import section
	SectionFunction  SectionID = 3  // Function section (type indices)
	SectionTable     SectionID = 4  // Table section
	SectionMemory    SectionID = 5  // Memory section
	SectionGlobal    SectionID = 6  // Global section
	SectionExport    SectionID = 7  // Export section
	SectionStart     SectionID = 8  // Start section
	SectionElement   SectionID = 9  // Element section
	SectionCode      SectionID = 10 // Code section (function bodies)
	SectionData      SectionID = 11 // Data section
	SectionDataCount SectionID = 12 // Data count section (bulk memory)
	SectionTag       SectionID = 13 // Tag section (exception handling)
)

var sectionNames = [...]string{
	SectionCustom:    "custom",
	SectionType:      "type",
	SectionImport:    "import",
	SectionFunction:  "function",
	SectionTable:     "table",
	SectionMemory:    "memory",
	SectionGlobal:    "global",
	SectionExport:    "export",
	SectionStart:     "start",
	SectionElement:   "element",
	SectionCode:      "code",
	SectionData:      "data",
	SectionDataCount: "datacount",
	SectionTag:       "tag",
}

func (id SectionID) String() string {
	if int(id) < len(sectionNames) {
		return sectionNames[id]
	}
	return "unknown"
}

// External kind bytes used by imports and exports.
const (
	kindFunc   byte = 0x00
	kindTable  byte = 0x01
	kindMemory byte = 0x02
	kindGlobal byte = 0x03
	kindTag    byte = 0x04
)

// Value type encodings as defined in the WebAssembly binary format.
const (
	valI32  byte = 0x7F
	valI64  byte = 0x7E
	valF32  byte = 0x7D
	valF64  byte = 0x7C
	valV128 byte = 0x7B

	// (ref null ht) and (ref ht)
	valRefNull byte = 0x63
	valRef     byte = 0x64
)

// Abstract heap type encodings. As single bytes they double as the
// nullable reference shorthands (0x70 funcref, 0x6F externref, ...).
const (
	heapFunc     byte = 0x70
	heapExtern   byte = 0x6F
	heapAny      byte = 0x6E
	heapEq       byte = 0x6D
	heapI31      byte = 0x6C
	heapStruct   byte = 0x6B
	heapArray    byte = 0x6A
	heapNone     byte = 0x71
	heapNoExtern byte = 0x72
	heapNoFunc   byte = 0x73
)

// Block type with no results.
const blockTypeEmpty byte = 0x40

// Type section encodings
const (
	funcTypeByte byte = 0x60
)

// Limits flags
const (
	limitsHasMax   byte = 0x01
	limitsShared   byte = 0x02
	limitsMemory64 byte = 0x04
)

// Table entry prefix for tables with an explicit initializer.
const tableInitPrefix byte = 0x40

// Catch clause kinds for try_table
const (
	catchKindCatch       byte = 0x00
	catchKindCatchRef    byte = 0x01
	catchKindCatchAll    byte = 0x02
	catchKindCatchAllRef byte = 0x03
)

// Name subsection identifiers.
const (
	nameModule   byte = 0
	nameFunction byte = 1
	nameLocal    byte = 2
	nameLabel    byte = 3
	nameType     byte = 4
	nameTable    byte = 5
	nameMemory   byte = 6
	nameGlobal   byte = 7
	nameElement  byte = 8
	nameData     byte = 9
)
