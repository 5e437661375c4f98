// Package wasm decodes WebAssembly binary modules section by section.
//
// Decoding never executes or validates a module. Every entry of a section
// decodes to a Result carrying either the value or an *errors.Error with
// the absolute offset of the failing byte, so one bad entry does not hide
// the rest of the section.
//
// # Supported Encodings
//
//	WebAssembly 2.0:
//	  - Value, reference and function types
//	  - Imports, exports, tables, memories, globals
//	  - Element and data segments in every flag form
//	  - Start and data count sections
//
//	Proposals:
//	  - Exception handling (tag section, try_table)
//	  - Typed function references and GC instructions
//	  - SIMD and relaxed SIMD
//	  - Threads (atomics, shared memory)
//	  - Memory64 and multi-memory
//	  - Tail calls
//
// # Section Readers
//
// Each section has a constructor taking the payload and its absolute
// offset:
//
//	sr, err := wasm.NewImportSectionReader(payload, offset)
//	if err != nil {
//	    return err // count unreadable
//	}
//	for res := range sr.All() {
//	    if res.Err != nil {
//	        log.Printf("bad import: %v", res.Err)
//	        continue
//	    }
//	    fmt.Println(res.Value.Module, res.Value.Name)
//	}
//
// A reader resumes after a failed entry when the entry's extent is still
// known, and stops otherwise.
//
// # Whole Modules
//
// DecodeModule splits a module with Sections and runs every reader:
//
//	m, err := wasm.DecodeModule(data)
//	if err != nil {
//	    log.Fatal(err) // bad header
//	}
//	if err := m.Errors(); err != nil {
//	    log.Print(err)
//	}
//
// Function bodies decode their operator stream on demand through
// FunctionBody.Operators, or eagerly with Options.DecodeOperators.
package wasm
