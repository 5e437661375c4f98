package wasm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/wasmview/wasm"
)

// TestAgainstWazero compares decoded exports and names with wazero's own
// decoder on a module both accept.
func TestAgainstWazero(t *testing.T) {
	ctx := context.Background()
	data := addModule()

	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	require.NoError(t, err)
	defer compiled.Close(ctx)

	m, err := wasm.DecodeModule(data)
	require.NoError(t, err)
	require.NoError(t, m.Errors())

	modName, ok := m.ModuleName()
	require.True(t, ok)
	assert.Equal(t, compiled.Name(), modName)

	exported := compiled.ExportedFunctions()
	require.Len(t, m.Exports, len(exported))
	for _, res := range m.Exports {
		require.NoError(t, res.Err)
		def, ok := exported[res.Value.Name]
		require.True(t, ok, "wazero is missing export %q", res.Value.Name)

		ft, ok := m.FuncType(res.Value.Index)
		require.True(t, ok)
		assert.Len(t, ft.Params(), len(def.ParamTypes()))
		assert.Len(t, ft.Results(), len(def.ResultTypes()))

		fn, ok := m.FunctionName(res.Value.Index)
		require.True(t, ok)
		assert.Equal(t, def.Name(), fn)
	}
}
