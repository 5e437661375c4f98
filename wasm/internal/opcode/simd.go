package opcode

var simd = map[uint32]Info{
	// Memory
	0x00: {"v128.load", ImmMemArg},
	0x01: {"v128.load8x8_s", ImmMemArg},
	0x02: {"v128.load8x8_u", ImmMemArg},
	0x03: {"v128.load16x4_s", ImmMemArg},
	0x04: {"v128.load16x4_u", ImmMemArg},
	0x05: {"v128.load32x2_s", ImmMemArg},
	0x06: {"v128.load32x2_u", ImmMemArg},
	0x07: {"v128.load8_splat", ImmMemArg},
	0x08: {"v128.load16_splat", ImmMemArg},
	0x09: {"v128.load32_splat", ImmMemArg},
	0x0A: {"v128.load64_splat", ImmMemArg},
	0x0B: {"v128.store", ImmMemArg},
	0x5C: {"v128.load32_zero", ImmMemArg},
	0x5D: {"v128.load64_zero", ImmMemArg},
	0x54: {"v128.load8_lane", ImmMemArgLane},
	0x55: {"v128.load16_lane", ImmMemArgLane},
	0x56: {"v128.load32_lane", ImmMemArgLane},
	0x57: {"v128.load64_lane", ImmMemArgLane},
	0x58: {"v128.store8_lane", ImmMemArgLane},
	0x59: {"v128.store16_lane", ImmMemArgLane},
	0x5A: {"v128.store32_lane", ImmMemArgLane},
	0x5B: {"v128.store64_lane", ImmMemArgLane},

	// Constants and shuffles
	0x0C: {"v128.const", ImmV128},
	0x0D: {"i8x16.shuffle", ImmShuffle},
	0x0E: {"i8x16.swizzle", ImmNone},

	// Splats
	0x0F: {"i8x16.splat", ImmNone},
	0x10: {"i16x8.splat", ImmNone},
	0x11: {"i32x4.splat", ImmNone},
	0x12: {"i64x2.splat", ImmNone},
	0x13: {"f32x4.splat", ImmNone},
	0x14: {"f64x2.splat", ImmNone},

	// Lanes
	0x15: {"i8x16.extract_lane_s", ImmLane},
	0x16: {"i8x16.extract_lane_u", ImmLane},
	0x17: {"i8x16.replace_lane", ImmLane},
	0x18: {"i16x8.extract_lane_s", ImmLane},
	0x19: {"i16x8.extract_lane_u", ImmLane},
	0x1A: {"i16x8.replace_lane", ImmLane},
	0x1B: {"i32x4.extract_lane", ImmLane},
	0x1C: {"i32x4.replace_lane", ImmLane},
	0x1D: {"i64x2.extract_lane", ImmLane},
	0x1E: {"i64x2.replace_lane", ImmLane},
	0x1F: {"f32x4.extract_lane", ImmLane},
	0x20: {"f32x4.replace_lane", ImmLane},
	0x21: {"f64x2.extract_lane", ImmLane},
	0x22: {"f64x2.replace_lane", ImmLane},

	// i8x16 comparison
	0x23: {"i8x16.eq", ImmNone},
	0x24: {"i8x16.ne", ImmNone},
	0x25: {"i8x16.lt_s", ImmNone},
	0x26: {"i8x16.lt_u", ImmNone},
	0x27: {"i8x16.gt_s", ImmNone},
	0x28: {"i8x16.gt_u", ImmNone},
	0x29: {"i8x16.le_s", ImmNone},
	0x2A: {"i8x16.le_u", ImmNone},
	0x2B: {"i8x16.ge_s", ImmNone},
	0x2C: {"i8x16.ge_u", ImmNone},

	// i16x8 comparison
	0x2D: {"i16x8.eq", ImmNone},
	0x2E: {"i16x8.ne", ImmNone},
	0x2F: {"i16x8.lt_s", ImmNone},
	0x30: {"i16x8.lt_u", ImmNone},
	0x31: {"i16x8.gt_s", ImmNone},
	0x32: {"i16x8.gt_u", ImmNone},
	0x33: {"i16x8.le_s", ImmNone},
	0x34: {"i16x8.le_u", ImmNone},
	0x35: {"i16x8.ge_s", ImmNone},
	0x36: {"i16x8.ge_u", ImmNone},

	// i32x4 comparison
	0x37: {"i32x4.eq", ImmNone},
	0x38: {"i32x4.ne", ImmNone},
	0x39: {"i32x4.lt_s", ImmNone},
	0x3A: {"i32x4.lt_u", ImmNone},
	0x3B: {"i32x4.gt_s", ImmNone},
	0x3C: {"i32x4.gt_u", ImmNone},
	0x3D: {"i32x4.le_s", ImmNone},
	0x3E: {"i32x4.le_u", ImmNone},
	0x3F: {"i32x4.ge_s", ImmNone},
	0x40: {"i32x4.ge_u", ImmNone},

	// Float comparison
	0x41: {"f32x4.eq", ImmNone},
	0x42: {"f32x4.ne", ImmNone},
	0x43: {"f32x4.lt", ImmNone},
	0x44: {"f32x4.gt", ImmNone},
	0x45: {"f32x4.le", ImmNone},
	0x46: {"f32x4.ge", ImmNone},
	0x47: {"f64x2.eq", ImmNone},
	0x48: {"f64x2.ne", ImmNone},
	0x49: {"f64x2.lt", ImmNone},
	0x4A: {"f64x2.gt", ImmNone},
	0x4B: {"f64x2.le", ImmNone},
	0x4C: {"f64x2.ge", ImmNone},

	// Bitwise
	0x4D: {"v128.not", ImmNone},
	0x4E: {"v128.and", ImmNone},
	0x4F: {"v128.andnot", ImmNone},
	0x50: {"v128.or", ImmNone},
	0x51: {"v128.xor", ImmNone},
	0x52: {"v128.bitselect", ImmNone},
	0x53: {"v128.any_true", ImmNone},

	// Float conversion
	0x5E: {"f32x4.demote_f64x2_zero", ImmNone},
	0x5F: {"f64x2.promote_low_f32x4", ImmNone},

	// i8x16 arithmetic
	0x60: {"i8x16.abs", ImmNone},
	0x61: {"i8x16.neg", ImmNone},
	0x62: {"i8x16.popcnt", ImmNone},
	0x63: {"i8x16.all_true", ImmNone},
	0x64: {"i8x16.bitmask", ImmNone},
	0x65: {"i8x16.narrow_i16x8_s", ImmNone},
	0x66: {"i8x16.narrow_i16x8_u", ImmNone},
	0x6B: {"i8x16.shl", ImmNone},
	0x6C: {"i8x16.shr_s", ImmNone},
	0x6D: {"i8x16.shr_u", ImmNone},
	0x6E: {"i8x16.add", ImmNone},
	0x6F: {"i8x16.add_sat_s", ImmNone},
	0x70: {"i8x16.add_sat_u", ImmNone},
	0x71: {"i8x16.sub", ImmNone},
	0x72: {"i8x16.sub_sat_s", ImmNone},
	0x73: {"i8x16.sub_sat_u", ImmNone},
	0x76: {"i8x16.min_s", ImmNone},
	0x77: {"i8x16.min_u", ImmNone},
	0x78: {"i8x16.max_s", ImmNone},
	0x79: {"i8x16.max_u", ImmNone},
	0x7B: {"i8x16.avgr_u", ImmNone},

	// Float rounding interleaved with the integer ops
	0x67: {"f32x4.ceil", ImmNone},
	0x68: {"f32x4.floor", ImmNone},
	0x69: {"f32x4.trunc", ImmNone},
	0x6A: {"f32x4.nearest", ImmNone},
	0x74: {"f64x2.ceil", ImmNone},
	0x75: {"f64x2.floor", ImmNone},
	0x7A: {"f64x2.trunc", ImmNone},
	0x94: {"f64x2.nearest", ImmNone},

	// Pairwise
	0x7C: {"i16x8.extadd_pairwise_i8x16_s", ImmNone},
	0x7D: {"i16x8.extadd_pairwise_i8x16_u", ImmNone},
	0x7E: {"i32x4.extadd_pairwise_i16x8_s", ImmNone},
	0x7F: {"i32x4.extadd_pairwise_i16x8_u", ImmNone},

	// i16x8 arithmetic
	0x80: {"i16x8.abs", ImmNone},
	0x81: {"i16x8.neg", ImmNone},
	0x82: {"i16x8.q15mulr_sat_s", ImmNone},
	0x83: {"i16x8.all_true", ImmNone},
	0x84: {"i16x8.bitmask", ImmNone},
	0x85: {"i16x8.narrow_i32x4_s", ImmNone},
	0x86: {"i16x8.narrow_i32x4_u", ImmNone},
	0x87: {"i16x8.extend_low_i8x16_s", ImmNone},
	0x88: {"i16x8.extend_high_i8x16_s", ImmNone},
	0x89: {"i16x8.extend_low_i8x16_u", ImmNone},
	0x8A: {"i16x8.extend_high_i8x16_u", ImmNone},
	0x8B: {"i16x8.shl", ImmNone},
	0x8C: {"i16x8.shr_s", ImmNone},
	0x8D: {"i16x8.shr_u", ImmNone},
	0x8E: {"i16x8.add", ImmNone},
	0x8F: {"i16x8.add_sat_s", ImmNone},
	0x90: {"i16x8.add_sat_u", ImmNone},
	0x91: {"i16x8.sub", ImmNone},
	0x92: {"i16x8.sub_sat_s", ImmNone},
	0x93: {"i16x8.sub_sat_u", ImmNone},
	0x95: {"i16x8.mul", ImmNone},
	0x96: {"i16x8.min_s", ImmNone},
	0x97: {"i16x8.min_u", ImmNone},
	0x98: {"i16x8.max_s", ImmNone},
	0x99: {"i16x8.max_u", ImmNone},
	0x9B: {"i16x8.avgr_u", ImmNone},
	0x9C: {"i16x8.extmul_low_i8x16_s", ImmNone},
	0x9D: {"i16x8.extmul_high_i8x16_s", ImmNone},
	0x9E: {"i16x8.extmul_low_i8x16_u", ImmNone},
	0x9F: {"i16x8.extmul_high_i8x16_u", ImmNone},

	// i32x4 arithmetic
	0xA0: {"i32x4.abs", ImmNone},
	0xA1: {"i32x4.neg", ImmNone},
	0xA3: {"i32x4.all_true", ImmNone},
	0xA4: {"i32x4.bitmask", ImmNone},
	0xA7: {"i32x4.extend_low_i16x8_s", ImmNone},
	0xA8: {"i32x4.extend_high_i16x8_s", ImmNone},
	0xA9: {"i32x4.extend_low_i16x8_u", ImmNone},
	0xAA: {"i32x4.extend_high_i16x8_u", ImmNone},
	0xAB: {"i32x4.shl", ImmNone},
	0xAC: {"i32x4.shr_s", ImmNone},
	0xAD: {"i32x4.shr_u", ImmNone},
	0xAE: {"i32x4.add", ImmNone},
	0xB1: {"i32x4.sub", ImmNone},
	0xB5: {"i32x4.mul", ImmNone},
	0xB6: {"i32x4.min_s", ImmNone},
	0xB7: {"i32x4.min_u", ImmNone},
	0xB8: {"i32x4.max_s", ImmNone},
	0xB9: {"i32x4.max_u", ImmNone},
	0xBA: {"i32x4.dot_i16x8_s", ImmNone},
	0xBC: {"i32x4.extmul_low_i16x8_s", ImmNone},
	0xBD: {"i32x4.extmul_high_i16x8_s", ImmNone},
	0xBE: {"i32x4.extmul_low_i16x8_u", ImmNone},
	0xBF: {"i32x4.extmul_high_i16x8_u", ImmNone},

	// i64x2 arithmetic
	0xC0: {"i64x2.abs", ImmNone},
	0xC1: {"i64x2.neg", ImmNone},
	0xC3: {"i64x2.all_true", ImmNone},
	0xC4: {"i64x2.bitmask", ImmNone},
	0xC7: {"i64x2.extend_low_i32x4_s", ImmNone},
	0xC8: {"i64x2.extend_high_i32x4_s", ImmNone},
	0xC9: {"i64x2.extend_low_i32x4_u", ImmNone},
	0xCA: {"i64x2.extend_high_i32x4_u", ImmNone},
	0xCB: {"i64x2.shl", ImmNone},
	0xCC: {"i64x2.shr_s", ImmNone},
	0xCD: {"i64x2.shr_u", ImmNone},
	0xCE: {"i64x2.add", ImmNone},
	0xD1: {"i64x2.sub", ImmNone},
	0xD5: {"i64x2.mul", ImmNone},
	0xD6: {"i64x2.eq", ImmNone},
	0xD7: {"i64x2.ne", ImmNone},
	0xD8: {"i64x2.lt_s", ImmNone},
	0xD9: {"i64x2.gt_s", ImmNone},
	0xDA: {"i64x2.le_s", ImmNone},
	0xDB: {"i64x2.ge_s", ImmNone},
	0xDC: {"i64x2.extmul_low_i32x4_s", ImmNone},
	0xDD: {"i64x2.extmul_high_i32x4_s", ImmNone},
	0xDE: {"i64x2.extmul_low_i32x4_u", ImmNone},
	0xDF: {"i64x2.extmul_high_i32x4_u", ImmNone},

	// f32x4 arithmetic
	0xE0: {"f32x4.abs", ImmNone},
	0xE1: {"f32x4.neg", ImmNone},
	0xE3: {"f32x4.sqrt", ImmNone},
	0xE4: {"f32x4.add", ImmNone},
	0xE5: {"f32x4.sub", ImmNone},
	0xE6: {"f32x4.mul", ImmNone},
	0xE7: {"f32x4.div", ImmNone},
	0xE8: {"f32x4.min", ImmNone},
	0xE9: {"f32x4.max", ImmNone},
	0xEA: {"f32x4.pmin", ImmNone},
	0xEB: {"f32x4.pmax", ImmNone},

	// f64x2 arithmetic
	0xEC: {"f64x2.abs", ImmNone},
	0xED: {"f64x2.neg", ImmNone},
	0xEF: {"f64x2.sqrt", ImmNone},
	0xF0: {"f64x2.add", ImmNone},
	0xF1: {"f64x2.sub", ImmNone},
	0xF2: {"f64x2.mul", ImmNone},
	0xF3: {"f64x2.div", ImmNone},
	0xF4: {"f64x2.min", ImmNone},
	0xF5: {"f64x2.max", ImmNone},
	0xF6: {"f64x2.pmin", ImmNone},
	0xF7: {"f64x2.pmax", ImmNone},

	// Conversions
	0xF8: {"i32x4.trunc_sat_f32x4_s", ImmNone},
	0xF9: {"i32x4.trunc_sat_f32x4_u", ImmNone},
	0xFA: {"f32x4.convert_i32x4_s", ImmNone},
	0xFB: {"f32x4.convert_i32x4_u", ImmNone},
	0xFC: {"i32x4.trunc_sat_f64x2_s_zero", ImmNone},
	0xFD: {"i32x4.trunc_sat_f64x2_u_zero", ImmNone},
	0xFE: {"f64x2.convert_low_i32x4_s", ImmNone},
	0xFF: {"f64x2.convert_low_i32x4_u", ImmNone},
}

var relaxedSIMD = map[uint32]Info{
	0x100: {"i8x16.relaxed_swizzle", ImmNone},
	0x101: {"i32x4.relaxed_trunc_f32x4_s", ImmNone},
	0x102: {"i32x4.relaxed_trunc_f32x4_u", ImmNone},
	0x103: {"i32x4.relaxed_trunc_f64x2_s_zero", ImmNone},
	0x104: {"i32x4.relaxed_trunc_f64x2_u_zero", ImmNone},
	0x105: {"f32x4.relaxed_madd", ImmNone},
	0x106: {"f32x4.relaxed_nmadd", ImmNone},
	0x107: {"f64x2.relaxed_madd", ImmNone},
	0x108: {"f64x2.relaxed_nmadd", ImmNone},
	0x109: {"i8x16.relaxed_laneselect", ImmNone},
	0x10A: {"i16x8.relaxed_laneselect", ImmNone},
	0x10B: {"i32x4.relaxed_laneselect", ImmNone},
	0x10C: {"i64x2.relaxed_laneselect", ImmNone},
	0x10D: {"f32x4.relaxed_min", ImmNone},
	0x10E: {"f32x4.relaxed_max", ImmNone},
	0x10F: {"f64x2.relaxed_min", ImmNone},
	0x110: {"f64x2.relaxed_max", ImmNone},
	0x111: {"i16x8.relaxed_q15mulr_s", ImmNone},
	0x112: {"i16x8.relaxed_dot_i8x16_i7x16_s", ImmNone},
	0x113: {"i32x4.relaxed_dot_i8x16_i7x16_add_s", ImmNone},
}
