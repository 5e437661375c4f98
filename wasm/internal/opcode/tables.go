package opcode

import "fmt"

var base = map[uint32]Info{
	// Control
	0x00: {"unreachable", ImmNone},
	0x01: {"nop", ImmNone},
	0x02: {"block", ImmBlock},
	0x03: {"loop", ImmBlock},
	0x04: {"if", ImmBlock},
	0x05: {"else", ImmNone},
	0x0B: {"end", ImmNone},
	0x0C: {"br", ImmU32},
	0x0D: {"br_if", ImmU32},
	0x0E: {"br_table", ImmBrTable},
	0x0F: {"return", ImmNone},
	0x10: {"call", ImmU32},
	0x11: {"call_indirect", ImmU32x2},

	// Exception handling (legacy and exnref)
	0x06: {"try", ImmBlock},
	0x07: {"catch", ImmU32},
	0x08: {"throw", ImmU32},
	0x09: {"rethrow", ImmU32},
	0x0A: {"throw_ref", ImmNone},
	0x18: {"delegate", ImmU32},
	0x19: {"catch_all", ImmNone},
	0x1F: {"try_table", ImmTryTable},

	// Tail call and typed function references
	0x12: {"return_call", ImmU32},
	0x13: {"return_call_indirect", ImmU32x2},
	0x14: {"call_ref", ImmU32},
	0x15: {"return_call_ref", ImmU32},

	// Parametric
	0x1A: {"drop", ImmNone},
	0x1B: {"select", ImmNone},
	0x1C: {"select", ImmSelectT},

	// Variables
	0x20: {"local.get", ImmU32},
	0x21: {"local.set", ImmU32},
	0x22: {"local.tee", ImmU32},
	0x23: {"global.get", ImmU32},
	0x24: {"global.set", ImmU32},

	// Tables
	0x25: {"table.get", ImmU32},
	0x26: {"table.set", ImmU32},

	// Loads
	0x28: {"i32.load", ImmMemArg},
	0x29: {"i64.load", ImmMemArg},
	0x2A: {"f32.load", ImmMemArg},
	0x2B: {"f64.load", ImmMemArg},
	0x2C: {"i32.load8_s", ImmMemArg},
	0x2D: {"i32.load8_u", ImmMemArg},
	0x2E: {"i32.load16_s", ImmMemArg},
	0x2F: {"i32.load16_u", ImmMemArg},
	0x30: {"i64.load8_s", ImmMemArg},
	0x31: {"i64.load8_u", ImmMemArg},
	0x32: {"i64.load16_s", ImmMemArg},
	0x33: {"i64.load16_u", ImmMemArg},
	0x34: {"i64.load32_s", ImmMemArg},
	0x35: {"i64.load32_u", ImmMemArg},

	// Stores
	0x36: {"i32.store", ImmMemArg},
	0x37: {"i64.store", ImmMemArg},
	0x38: {"f32.store", ImmMemArg},
	0x39: {"f64.store", ImmMemArg},
	0x3A: {"i32.store8", ImmMemArg},
	0x3B: {"i32.store16", ImmMemArg},
	0x3C: {"i64.store8", ImmMemArg},
	0x3D: {"i64.store16", ImmMemArg},
	0x3E: {"i64.store32", ImmMemArg},

	// Memory
	0x3F: {"memory.size", ImmU32},
	0x40: {"memory.grow", ImmU32},

	// Constants
	0x41: {"i32.const", ImmI32},
	0x42: {"i64.const", ImmI64},
	0x43: {"f32.const", ImmF32},
	0x44: {"f64.const", ImmF64},

	// i32 comparison
	0x45: {"i32.eqz", ImmNone},
	0x46: {"i32.eq", ImmNone},
	0x47: {"i32.ne", ImmNone},
	0x48: {"i32.lt_s", ImmNone},
	0x49: {"i32.lt_u", ImmNone},
	0x4A: {"i32.gt_s", ImmNone},
	0x4B: {"i32.gt_u", ImmNone},
	0x4C: {"i32.le_s", ImmNone},
	0x4D: {"i32.le_u", ImmNone},
	0x4E: {"i32.ge_s", ImmNone},
	0x4F: {"i32.ge_u", ImmNone},

	// i64 comparison
	0x50: {"i64.eqz", ImmNone},
	0x51: {"i64.eq", ImmNone},
	0x52: {"i64.ne", ImmNone},
	0x53: {"i64.lt_s", ImmNone},
	0x54: {"i64.lt_u", ImmNone},
	0x55: {"i64.gt_s", ImmNone},
	0x56: {"i64.gt_u", ImmNone},
	0x57: {"i64.le_s", ImmNone},
	0x58: {"i64.le_u", ImmNone},
	0x59: {"i64.ge_s", ImmNone},
	0x5A: {"i64.ge_u", ImmNone},

	// f32 comparison
	0x5B: {"f32.eq", ImmNone},
	0x5C: {"f32.ne", ImmNone},
	0x5D: {"f32.lt", ImmNone},
	0x5E: {"f32.gt", ImmNone},
	0x5F: {"f32.le", ImmNone},
	0x60: {"f32.ge", ImmNone},

	// f64 comparison
	0x61: {"f64.eq", ImmNone},
	0x62: {"f64.ne", ImmNone},
	0x63: {"f64.lt", ImmNone},
	0x64: {"f64.gt", ImmNone},
	0x65: {"f64.le", ImmNone},
	0x66: {"f64.ge", ImmNone},

	// i32 arithmetic
	0x67: {"i32.clz", ImmNone},
	0x68: {"i32.ctz", ImmNone},
	0x69: {"i32.popcnt", ImmNone},
	0x6A: {"i32.add", ImmNone},
	0x6B: {"i32.sub", ImmNone},
	0x6C: {"i32.mul", ImmNone},
	0x6D: {"i32.div_s", ImmNone},
	0x6E: {"i32.div_u", ImmNone},
	0x6F: {"i32.rem_s", ImmNone},
	0x70: {"i32.rem_u", ImmNone},
	0x71: {"i32.and", ImmNone},
	0x72: {"i32.or", ImmNone},
	0x73: {"i32.xor", ImmNone},
	0x74: {"i32.shl", ImmNone},
	0x75: {"i32.shr_s", ImmNone},
	0x76: {"i32.shr_u", ImmNone},
	0x77: {"i32.rotl", ImmNone},
	0x78: {"i32.rotr", ImmNone},

	// i64 arithmetic
	0x79: {"i64.clz", ImmNone},
	0x7A: {"i64.ctz", ImmNone},
	0x7B: {"i64.popcnt", ImmNone},
	0x7C: {"i64.add", ImmNone},
	0x7D: {"i64.sub", ImmNone},
	0x7E: {"i64.mul", ImmNone},
	0x7F: {"i64.div_s", ImmNone},
	0x80: {"i64.div_u", ImmNone},
	0x81: {"i64.rem_s", ImmNone},
	0x82: {"i64.rem_u", ImmNone},
	0x83: {"i64.and", ImmNone},
	0x84: {"i64.or", ImmNone},
	0x85: {"i64.xor", ImmNone},
	0x86: {"i64.shl", ImmNone},
	0x87: {"i64.shr_s", ImmNone},
	0x88: {"i64.shr_u", ImmNone},
	0x89: {"i64.rotl", ImmNone},
	0x8A: {"i64.rotr", ImmNone},

	// f32 arithmetic
	0x8B: {"f32.abs", ImmNone},
	0x8C: {"f32.neg", ImmNone},
	0x8D: {"f32.ceil", ImmNone},
	0x8E: {"f32.floor", ImmNone},
	0x8F: {"f32.trunc", ImmNone},
	0x90: {"f32.nearest", ImmNone},
	0x91: {"f32.sqrt", ImmNone},
	0x92: {"f32.add", ImmNone},
	0x93: {"f32.sub", ImmNone},
	0x94: {"f32.mul", ImmNone},
	0x95: {"f32.div", ImmNone},
	0x96: {"f32.min", ImmNone},
	0x97: {"f32.max", ImmNone},
	0x98: {"f32.copysign", ImmNone},

	// f64 arithmetic
	0x99: {"f64.abs", ImmNone},
	0x9A: {"f64.neg", ImmNone},
	0x9B: {"f64.ceil", ImmNone},
	0x9C: {"f64.floor", ImmNone},
	0x9D: {"f64.trunc", ImmNone},
	0x9E: {"f64.nearest", ImmNone},
	0x9F: {"f64.sqrt", ImmNone},
	0xA0: {"f64.add", ImmNone},
	0xA1: {"f64.sub", ImmNone},
	0xA2: {"f64.mul", ImmNone},
	0xA3: {"f64.div", ImmNone},
	0xA4: {"f64.min", ImmNone},
	0xA5: {"f64.max", ImmNone},
	0xA6: {"f64.copysign", ImmNone},

	// Conversions
	0xA7: {"i32.wrap_i64", ImmNone},
	0xA8: {"i32.trunc_f32_s", ImmNone},
	0xA9: {"i32.trunc_f32_u", ImmNone},
	0xAA: {"i32.trunc_f64_s", ImmNone},
	0xAB: {"i32.trunc_f64_u", ImmNone},
	0xAC: {"i64.extend_i32_s", ImmNone},
	0xAD: {"i64.extend_i32_u", ImmNone},
	0xAE: {"i64.trunc_f32_s", ImmNone},
	0xAF: {"i64.trunc_f32_u", ImmNone},
	0xB0: {"i64.trunc_f64_s", ImmNone},
	0xB1: {"i64.trunc_f64_u", ImmNone},
	0xB2: {"f32.convert_i32_s", ImmNone},
	0xB3: {"f32.convert_i32_u", ImmNone},
	0xB4: {"f32.convert_i64_s", ImmNone},
	0xB5: {"f32.convert_i64_u", ImmNone},
	0xB6: {"f32.demote_f64", ImmNone},
	0xB7: {"f64.convert_i32_s", ImmNone},
	0xB8: {"f64.convert_i32_u", ImmNone},
	0xB9: {"f64.convert_i64_s", ImmNone},
	0xBA: {"f64.convert_i64_u", ImmNone},
	0xBB: {"f64.promote_f32", ImmNone},
	0xBC: {"i32.reinterpret_f32", ImmNone},
	0xBD: {"i64.reinterpret_f64", ImmNone},
	0xBE: {"f32.reinterpret_i32", ImmNone},
	0xBF: {"f64.reinterpret_i64", ImmNone},

	// Sign extension
	0xC0: {"i32.extend8_s", ImmNone},
	0xC1: {"i32.extend16_s", ImmNone},
	0xC2: {"i64.extend8_s", ImmNone},
	0xC3: {"i64.extend16_s", ImmNone},
	0xC4: {"i64.extend32_s", ImmNone},

	// Reference types
	0xD0: {"ref.null", ImmHeapType},
	0xD1: {"ref.is_null", ImmNone},
	0xD2: {"ref.func", ImmU32},
	0xD3: {"ref.eq", ImmNone},
	0xD4: {"ref.as_non_null", ImmNone},
	0xD5: {"br_on_null", ImmU32},
	0xD6: {"br_on_non_null", ImmU32},
}

var misc = map[uint32]Info{
	// Saturating truncation
	0x00: {"i32.trunc_sat_f32_s", ImmNone},
	0x01: {"i32.trunc_sat_f32_u", ImmNone},
	0x02: {"i32.trunc_sat_f64_s", ImmNone},
	0x03: {"i32.trunc_sat_f64_u", ImmNone},
	0x04: {"i64.trunc_sat_f32_s", ImmNone},
	0x05: {"i64.trunc_sat_f32_u", ImmNone},
	0x06: {"i64.trunc_sat_f64_s", ImmNone},
	0x07: {"i64.trunc_sat_f64_u", ImmNone},

	// Bulk memory
	0x08: {"memory.init", ImmU32x2},
	0x09: {"data.drop", ImmU32},
	0x0A: {"memory.copy", ImmU32x2},
	0x0B: {"memory.fill", ImmU32},

	// Table operations
	0x0C: {"table.init", ImmU32x2},
	0x0D: {"elem.drop", ImmU32},
	0x0E: {"table.copy", ImmU32x2},
	0x0F: {"table.grow", ImmU32},
	0x10: {"table.size", ImmU32},
	0x11: {"table.fill", ImmU32},

	// Memory control
	0x12: {"memory.discard", ImmU32},
}

var gc = map[uint32]Info{
	0x00: {"struct.new", ImmU32},
	0x01: {"struct.new_default", ImmU32},
	0x02: {"struct.get", ImmU32x2},
	0x03: {"struct.get_s", ImmU32x2},
	0x04: {"struct.get_u", ImmU32x2},
	0x05: {"struct.set", ImmU32x2},
	0x06: {"array.new", ImmU32},
	0x07: {"array.new_default", ImmU32},
	0x08: {"array.new_fixed", ImmU32x2},
	0x09: {"array.new_data", ImmU32x2},
	0x0A: {"array.new_elem", ImmU32x2},
	0x0B: {"array.get", ImmU32},
	0x0C: {"array.get_s", ImmU32},
	0x0D: {"array.get_u", ImmU32},
	0x0E: {"array.set", ImmU32},
	0x0F: {"array.len", ImmNone},
	0x10: {"array.fill", ImmU32},
	0x11: {"array.copy", ImmU32x2},
	0x12: {"array.init_data", ImmU32x2},
	0x13: {"array.init_elem", ImmU32x2},
	0x14: {"ref.test", ImmHeapType},
	0x15: {"ref.test", ImmHeapType},
	0x16: {"ref.cast", ImmHeapType},
	0x17: {"ref.cast", ImmHeapType},
	0x18: {"br_on_cast", ImmBrOnCast},
	0x19: {"br_on_cast_fail", ImmBrOnCast},
	0x1A: {"any.convert_extern", ImmNone},
	0x1B: {"extern.convert_any", ImmNone},
	0x1C: {"ref.i31", ImmNone},
	0x1D: {"i31.get_s", ImmNone},
	0x1E: {"i31.get_u", ImmNone},
}

// atomics builds the threads table. Read-modify-write operators come in
// families of seven that differ only in width.
func atomics() map[uint32]Info {
	ops := map[uint32]Info{
		0x00: {"memory.atomic.notify", ImmMemArg},
		0x01: {"memory.atomic.wait32", ImmMemArg},
		0x02: {"memory.atomic.wait64", ImmMemArg},
		0x03: {"atomic.fence", ImmByte},

		0x10: {"i32.atomic.load", ImmMemArg},
		0x11: {"i64.atomic.load", ImmMemArg},
		0x12: {"i32.atomic.load8_u", ImmMemArg},
		0x13: {"i32.atomic.load16_u", ImmMemArg},
		0x14: {"i64.atomic.load8_u", ImmMemArg},
		0x15: {"i64.atomic.load16_u", ImmMemArg},
		0x16: {"i64.atomic.load32_u", ImmMemArg},
		0x17: {"i32.atomic.store", ImmMemArg},
		0x18: {"i64.atomic.store", ImmMemArg},
		0x19: {"i32.atomic.store8", ImmMemArg},
		0x1A: {"i32.atomic.store16", ImmMemArg},
		0x1B: {"i64.atomic.store8", ImmMemArg},
		0x1C: {"i64.atomic.store16", ImmMemArg},
		0x1D: {"i64.atomic.store32", ImmMemArg},
	}
	widths := []string{
		"i32.atomic.rmw.%s",
		"i64.atomic.rmw.%s",
		"i32.atomic.rmw8.%s_u",
		"i32.atomic.rmw16.%s_u",
		"i64.atomic.rmw8.%s_u",
		"i64.atomic.rmw16.%s_u",
		"i64.atomic.rmw32.%s_u",
	}
	code := uint32(0x1E)
	for _, op := range []string{"add", "sub", "and", "or", "xor", "xchg", "cmpxchg"} {
		for _, w := range widths {
			ops[code] = Info{Name: fmt.Sprintf(w, op), Imm: ImmMemArg}
			code++
		}
	}
	return ops
}
