// Package wasmview decodes WebAssembly binary modules for inspection.
//
// Nothing here executes or validates a module. Decoding is forgiving: each
// section entry succeeds or fails on its own, with the absolute offset of
// the failing byte, so tools can show as much of a damaged module as
// possible.
//
// # Layout
//
//	wasmview/
//	├── errors/          Decode error kinds with absolute offsets
//	├── wasm/            Section readers, name section, whole-module decode
//	├── locate/          Offset to entity lookup
//	└── cmd/wasmview/    CLI and interactive browser
//
// # Quick Start
//
//	data, _ := os.ReadFile("module.wasm")
//	m, err := wasm.DecodeModule(data)
//	if err != nil {
//	    log.Fatal(err) // not a module
//	}
//	for _, res := range m.Exports {
//	    if res.Err == nil {
//	        fmt.Println(res.Value.Name)
//	    }
//	}
package wasmview
