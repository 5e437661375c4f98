// Package opcode holds the closed catalog of instruction encodings the
// decoder recognizes, keyed by (prefix, code).
package opcode

// Imm describes the immediate operands that follow an opcode.
type Imm int

const (
	ImmNone      Imm = iota
	ImmU32           // local.get, br, call, etc.
	ImmU32x2         // call_indirect, memory.copy, struct.get, etc.
	ImmBlock         // block type (s33)
	ImmBrTable       // vec(label) default
	ImmI32           // i32.const
	ImmI64           // i64.const
	ImmF32           // f32.const
	ImmF64           // f64.const
	ImmHeapType      // ref.null, ref.test, ref.cast
	ImmSelectT       // vec(valtype)
	ImmMemArg        // align (with memory index bit), offset
	ImmMemArgLane    // memarg + lane byte
	ImmLane          // lane byte
	ImmV128          // 16 literal bytes
	ImmShuffle       // 16 lane bytes
	ImmByte          // reserved byte (atomic.fence)
	ImmTryTable      // block type + vec(catch)
	ImmBrOnCast      // flags, label, heap type, heap type
)

// Opcode prefixes for multi-byte encodings.
const (
	PrefixNone   byte = 0x00
	PrefixGC     byte = 0xFB
	PrefixMisc   byte = 0xFC
	PrefixSIMD   byte = 0xFD
	PrefixAtomic byte = 0xFE
)

// Key identifies an encoding. Prefix is PrefixNone for single-byte opcodes.
type Key struct {
	Prefix byte
	Code   uint32
}

// Info is one catalog entry.
type Info struct {
	Name string
	Imm  Imm
}

var catalog = make(map[Key]Info, 700)

// Lookup returns the entry for key.
func Lookup(key Key) (Info, bool) {
	info, ok := catalog[key]
	return info, ok
}

// IsPrefix reports whether b introduces a multi-byte opcode.
func IsPrefix(b byte) bool {
	switch b {
	case PrefixGC, PrefixMisc, PrefixSIMD, PrefixAtomic:
		return true
	}
	return false
}

// Len returns the number of recognized encodings.
func Len() int {
	return len(catalog)
}

// Each calls fn for every entry, in no particular order.
func Each(fn func(Key, Info)) {
	for k, v := range catalog {
		fn(k, v)
	}
}

func register(prefix byte, ops map[uint32]Info) {
	for code, info := range ops {
		k := Key{Prefix: prefix, Code: code}
		if _, dup := catalog[k]; dup {
			panic("opcode: duplicate encoding " + info.Name)
		}
		catalog[k] = info
	}
}

func init() {
	register(PrefixNone, base)
	register(PrefixMisc, misc)
	register(PrefixSIMD, simd)
	register(PrefixSIMD, relaxedSIMD)
	register(PrefixAtomic, atomics())
	register(PrefixGC, gc)
}
