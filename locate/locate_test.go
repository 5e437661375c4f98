package locate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wasmview/internal/wasmtest"
	"github.com/wippyai/wasmview/locate"
	"github.com/wippyai/wasmview/wasm"
)

// fixture lays out as:
//
//	8  type section, entry at 11
//	14 function section, entry at 17
//	18 code section, body entry at 21, nop nop end at 23..25
//	26 name section
func fixture(t *testing.T) *wasm.Module {
	t.Helper()
	names := wasmtest.New().Section(1, wasmtest.Vec(wasmtest.Cat(wasmtest.U32(0), wasmtest.Name("main")))).Bytes()
	data := wasmtest.Module().
		Section(1, wasmtest.Vec([]byte{0x60, 0x00, 0x00})).
		Section(3, wasmtest.Vec(wasmtest.U32(0))).
		Section(10, wasmtest.Vec(wasmtest.New().Sized([]byte{0x00, 0x01, 0x01, 0x0B}).Bytes())).
		Custom("name", names).
		Bytes()

	m, err := wasm.DecodeModuleWithOptions(data, wasm.Options{})
	require.NoError(t, err)
	require.NoError(t, m.Errors())
	return m
}

func kinds(entries []locate.Entry) []locate.Kind {
	var out []locate.Kind
	for _, e := range entries {
		out = append(out, e.Kind)
	}
	return out
}

func TestLookup_Operator(t *testing.T) {
	ix := locate.Build(fixture(t))

	got := ix.Lookup(24)
	require.Equal(t, []locate.Kind{locate.KindOperator, locate.KindCode, locate.KindSection}, kinds(got))
	assert.Equal(t, "nop", got[0].Label)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, wasm.ByteRange{Start: 24, End: 25}, got[0].Range)
	assert.Equal(t, "func 0 $main", got[1].Label)
	assert.Equal(t, "code", got[2].Label)
}

func TestLookup_Entries(t *testing.T) {
	ix := locate.Build(fixture(t))

	got := ix.Lookup(11)
	require.Equal(t, []locate.Kind{locate.KindType, locate.KindSection}, kinds(got))
	assert.Equal(t, "(func)", got[0].Label)

	got = ix.Lookup(17)
	require.Equal(t, []locate.Kind{locate.KindFunction, locate.KindSection}, kinds(got))
	assert.Equal(t, "type 0 $main", got[0].Label)
}

func TestLookup_Names(t *testing.T) {
	ix := locate.Build(fixture(t))

	var naming locate.Entry
	for off := 26; off < 60; off++ {
		got := ix.Lookup(off)
		if len(got) > 0 && got[0].Kind == locate.KindNaming {
			naming = got[0]
			require.Equal(t, []locate.Kind{locate.KindNaming, locate.KindName, locate.KindSection}, kinds(got))
			break
		}
	}
	assert.Equal(t, `0 "main"`, naming.Label)
	assert.Equal(t, 2, naming.Depth)
}

func TestLookup_OutsideModule(t *testing.T) {
	ix := locate.Build(fixture(t))
	assert.Empty(t, ix.Lookup(3))
	assert.Empty(t, ix.Lookup(10_000))
	assert.Empty(t, ix.Lookup(-1))
	assert.Positive(t, ix.Len())
}

func TestLookup_ErrorEntries(t *testing.T) {
	data := wasmtest.Module().
		Section(2, wasmtest.Vec(wasmtest.Cat(wasmtest.Name("env"), wasmtest.Name("x"), []byte{0x09}))).
		Bytes()
	m, err := wasm.DecodeModule(data)
	require.NoError(t, err)

	got := locate.Build(m).Lookup(12)
	require.Equal(t, []locate.Kind{locate.KindImport, locate.KindSection}, kinds(got))
	require.Error(t, got[0].Err)
	assert.Empty(t, got[0].Label)
	assert.Contains(t, got[0].String(), "import 0")
}

func TestBuild_UnknownIndexSpace(t *testing.T) {
	overflow := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}
	data := wasmtest.Module().
		Section(1, wasmtest.Vec([]byte{0x60, 0x00, 0x00})).
		Section(2, wasmtest.Vec(wasmtest.Cat(wasmtest.Name("env"), wasmtest.Name("f"), []byte{0x00}, overflow))).
		Section(3, wasmtest.Vec(wasmtest.U32(0))).
		Section(10, wasmtest.Vec(wasmtest.New().Sized([]byte{0x00, 0x0B}).Bytes())).
		Bytes()

	m, err := wasm.DecodeModuleWithOptions(data, wasm.Options{})
	require.NoError(t, err)

	sections, err := wasm.Sections(data)
	require.NoError(t, err)
	code := sections[len(sections)-1]

	got := locate.Build(m).Lookup(code.Payload.Start + 1)
	require.Equal(t, []locate.Kind{locate.KindCode, locate.KindSection}, kinds(got))
	assert.Equal(t, "body 0", got[0].Label)
}
