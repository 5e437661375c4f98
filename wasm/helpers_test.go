package wasm_test

import (
	"testing"

	"github.com/wippyai/wasmview/errors"
	"github.com/wippyai/wasmview/internal/wasmtest"
)

var (
	vec  = wasmtest.Vec
	cat  = wasmtest.Cat
	u32  = wasmtest.U32
	name = wasmtest.Name
)

func requireKind(t *testing.T, err error, kind errors.Kind, offset int) {
	t.Helper()
	e, ok := errors.As(err)
	if !ok {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Kind != kind || e.Offset != offset {
		t.Fatalf("got %v at %d (%v), want %v at %d", e.Kind, e.Offset, err, kind, offset)
	}
}

// addModule is (module $calc (func $add (export "add") (param i32 i32) (result i32)
// local.get 0 local.get 1 i32.add)) with a name section.
func addModule() []byte {
	names := cat(
		wasmtest.New().Section(0, name("calc")).Bytes(),
		wasmtest.New().Section(1, vec(cat(u32(0), name("add")))).Bytes(),
	)
	return wasmtest.Module().
		Section(1, vec(cat([]byte{0x60}, vec([]byte{0x7F}, []byte{0x7F}), vec([]byte{0x7F})))).
		Section(3, vec(u32(0))).
		Section(7, vec(cat(name("add"), []byte{0x00}, u32(0)))).
		Section(10, vec(wasmtest.New().Sized([]byte{0x00, 0x20, 0x00, 0x20, 0x01, 0x6A, 0x0B}).Bytes())).
		Custom("name", names).
		Bytes()
}

// richModule exercises every section kind.
func richModule() []byte {
	i32Const0 := []byte{0x41, 0x00, 0x0B}
	return wasmtest.Module().
		Section(1, vec(
			cat([]byte{0x60}, vec(), vec()),
			cat([]byte{0x60}, vec([]byte{0x7F}), vec([]byte{0x7E})),
		)).
		Section(2, vec(
			cat(name("env"), name("log"), []byte{0x00}, u32(1)),
			cat(name("env"), name("tbl"), []byte{0x01, 0x70, 0x00, 0x01}),
		)).
		Section(3, vec(u32(0), u32(1))).
		Section(4, vec([]byte{0x70, 0x01, 0x01, 0x10})).
		Section(5, vec([]byte{0x01, 0x01, 0x02})).
		Section(13, vec([]byte{0x00, 0x00})).
		Section(6, vec(cat([]byte{0x7F, 0x01}, i32Const0))).
		Section(7, vec(
			cat(name("run"), []byte{0x00}, u32(1)),
			cat(name("memory"), []byte{0x02}, u32(0)),
		)).
		Section(8, u32(1)).
		Section(9, vec(cat(u32(0), i32Const0, vec(u32(1), u32(2))))).
		Section(12, u32(1)).
		Section(10, vec(
			wasmtest.New().Sized([]byte{0x00, 0x0B}).Bytes(),
			wasmtest.New().Sized([]byte{0x01, 0x01, 0x7F, 0x20, 0x00, 0x1A, 0x42, 0x00, 0x0B}).Bytes(),
		)).
		Section(11, vec(cat(u32(0), i32Const0, vec([]byte("h"), []byte("i"))))).
		Custom("producers", []byte{0x00}).
		Bytes()
}
