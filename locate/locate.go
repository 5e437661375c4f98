// Package locate maps byte offsets in a module back to the decoded
// entities that cover them.
package locate

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/wippyai/wasmview/wasm"
)

// Kind names the entity an Entry covers.
type Kind string

const (
	KindSection  Kind = "section"
	KindType     Kind = "type"
	KindImport   Kind = "import"
	KindFunction Kind = "function"
	KindTable    Kind = "table"
	KindMemory   Kind = "memory"
	KindGlobal   Kind = "global"
	KindExport   Kind = "export"
	KindElement  Kind = "element"
	KindCode     Kind = "code"
	KindData     Kind = "data"
	KindTag      Kind = "tag"
	KindName     Kind = "name"
	KindNaming   Kind = "naming"
	KindOperator Kind = "operator"
)

// Entry is one located entity. Depth grows with nesting: sections are 0,
// section entries 1, operators and name records below them.
type Entry struct {
	Err   error
	Kind  Kind
	Label string
	Range wasm.ByteRange
	Index int
	Depth int
}

func (e Entry) String() string {
	s := fmt.Sprintf("%s %d [0x%x, 0x%x) %s", e.Kind, e.Index, e.Range.Start, e.Range.End, e.Label)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Index answers offset lookups over one decoded module.
type Index struct {
	entries []Entry
}

// Build indexes every section, entry, operator and name record of m.
// Bodies decoded without operators are decoded here.
func Build(m *wasm.Module) *Index {
	b := &builder{}
	for i, s := range m.Sections {
		b.add(Entry{Kind: KindSection, Index: i, Range: s.Range(), Label: s.String()})
	}

	addResults(b, 1, KindType, m.Types, func(_ int, t wasm.Type) string {
		if t.Func == nil {
			return ""
		}
		return t.Func.String()
	})
	addResults(b, 1, KindImport, m.Imports, func(_ int, imp wasm.Import) string {
		return fmt.Sprintf("%s.%s (%s)", imp.Module, imp.Name, imp.Type.Kind)
	})
	imported, indexed := m.NumImportedFuncs()
	addResults(b, 1, KindFunction, m.Functions, func(i int, f wasm.Function) string {
		if !indexed {
			return fmt.Sprintf("type %d", f.TypeIdx)
		}
		return fmt.Sprintf("type %d", f.TypeIdx) + funcName(m, imported+i)
	})
	addResults(b, 1, KindTable, m.Tables, func(_ int, t wasm.Table) string {
		return t.Type.ElemType.String()
	})
	addResults(b, 1, KindMemory, m.Memories, func(_ int, mt wasm.MemoryType) string {
		return fmt.Sprintf("initial %d", mt.Initial)
	})
	addResults(b, 1, KindGlobal, m.Globals, func(_ int, g wasm.Global) string {
		return g.Type.ContentType.String()
	})
	addResults(b, 1, KindExport, m.Exports, func(_ int, e wasm.Export) string {
		return fmt.Sprintf("%q %s %d", e.Name, e.Kind, e.Index)
	})
	addResults(b, 1, KindElement, m.Elements, func(_ int, e wasm.Element) string {
		return e.Kind.Mode.String()
	})
	addResults(b, 1, KindData, m.Data, func(_ int, d wasm.Data) string {
		return fmt.Sprintf("%d bytes", len(d.Data))
	})
	addResults(b, 1, KindTag, m.Tags, func(_ int, t wasm.TagType) string {
		return fmt.Sprintf("type %d", t.FuncTypeIdx)
	})
	addResults(b, 1, KindCode, m.Code, func(i int, _ wasm.FunctionBody) string {
		if !indexed {
			return fmt.Sprintf("body %d", i)
		}
		return fmt.Sprintf("func %d", imported+i) + funcName(m, imported+i)
	})

	for _, body := range m.Code {
		if !body.OK() {
			continue
		}
		ops := body.Value.Ops
		if len(ops) == 0 {
			ops = body.Value.Operators()
		}
		addResults(b, 2, KindOperator, ops, func(_ int, op wasm.Operator) string { return op.Name })
	}

	addResults(b, 1, KindName, m.Names, func(_ int, n wasm.Name) string { return n.Kind.String() })
	for _, n := range m.Names {
		addResults(b, 2, KindNaming, n.Value.Map, labelNaming)
		addResults(b, 2, KindNaming, n.Value.IndirectMap, func(_ int, g wasm.IndirectNaming) string {
			return fmt.Sprintf("group %d", g.Index)
		})
		for _, g := range n.Value.IndirectMap {
			addResults(b, 3, KindNaming, g.Value.Names, labelNaming)
		}
	}

	slices.SortStableFunc(b.entries, func(x, y Entry) int {
		return cmp.Compare(x.Range.Start, y.Range.Start)
	})
	return &Index{entries: b.entries}
}

func labelNaming(_ int, n wasm.Naming) string {
	return fmt.Sprintf("%d %q", n.Index, n.Name)
}

func funcName(m *wasm.Module, idx int) string {
	if name, ok := m.FunctionName(uint32(idx)); ok {
		return " $" + name
	}
	return ""
}

type builder struct {
	entries []Entry
}

func (b *builder) add(e Entry) {
	b.entries = append(b.entries, e)
}

func addResults[T any](b *builder, depth int, kind Kind, results []wasm.Result[T], label func(int, T) string) {
	for i, r := range results {
		e := Entry{Kind: kind, Index: i, Depth: depth, Range: r.Range, Err: r.Err}
		if r.Err == nil {
			e.Label = label(i, r.Value)
		}
		b.add(e)
	}
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Lookup returns the entries containing offset, most specific first.
// A zero-length entry contains only its start offset.
func (ix *Index) Lookup(offset int) []Entry {
	end, _ := slices.BinarySearchFunc(ix.entries, offset+1, func(e Entry, target int) int {
		return cmp.Compare(e.Range.Start, target)
	})

	var out []Entry
	for _, e := range ix.entries[:end] {
		if e.Range.Contains(offset) || (e.Range.Len() == 0 && e.Range.Start == offset) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(x, y Entry) int {
		if c := cmp.Compare(y.Depth, x.Depth); c != 0 {
			return c
		}
		return cmp.Compare(x.Range.Len(), y.Range.Len())
	})
	return out
}
