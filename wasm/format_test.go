package wasm_test

import (
	"fmt"
	"testing"

	"github.com/wippyai/wasmview/wasm"
)

func TestFormat(t *testing.T) {
	max32 := uint32(10)
	max64 := uint64(4)

	tests := []struct {
		value fmt.Stringer
		want  string
	}{
		{wasm.TableType{ElemType: wasm.FuncRef, Initial: 1, Maximum: &max32}, "1 10 funcref"},
		{wasm.TableType{ElemType: wasm.ExternRef}, "0 externref"},
		{wasm.MemoryType{Initial: 1, Maximum: &max64, Memory64: true, Shared: true}, "i64 1 4 shared"},
		{wasm.GlobalType{ContentType: wasm.I64, Mutable: true}, "(mut i64)"},
		{wasm.GlobalType{ContentType: wasm.F32}, "f32"},
		{wasm.DataActive, "active"},
		{wasm.TypeRef{Kind: wasm.ExternalFunc, FuncTypeIdx: 3}, "(func (type 3))"},
		{wasm.ConstExpr{Data: []byte{0x41, 0x05, 0x0B}}, "i32.const"},
		{wasm.ConstExpr{Data: []byte{0x23, 0x00, 0x41, 0x01, 0x6A, 0x0B}}, "global.get i32.const i32.add"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("%T.String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}
