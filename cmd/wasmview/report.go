package main

import (
	"fmt"

	"github.com/wippyai/wasmview/wasm"
)

// entryReport is one decoded entry as shown by dump.
type entryReport struct {
	Value  string `yaml:"value,omitempty"`
	Error  string `yaml:"error,omitempty"`
	Offset string `yaml:"offset"`
	Index  int    `yaml:"index"`
}

// sectionReport is one section with the entries that fall inside it.
type sectionReport struct {
	Section string        `yaml:"section"`
	Offset  string        `yaml:"offset"`
	Entries []entryReport `yaml:"entries,omitempty"`
	Errors  []string      `yaml:"errors,omitempty"`
	Size    int           `yaml:"size"`
	id      wasm.SectionID
	custom  string
}

func hex(offset int) string {
	return fmt.Sprintf("0x%x", offset)
}

func buildReport(m *wasm.Module) []sectionReport {
	reports := make([]sectionReport, 0, len(m.Sections))
	for _, s := range m.Sections {
		rep := sectionReport{
			Section: s.String(),
			Offset:  hex(s.Offset),
			Size:    s.Payload.Len(),
			id:      s.ID,
			custom:  s.Name,
		}
		rep.Entries = sectionEntries(m, s)
		for _, se := range m.SectionErrors {
			if se.Section.Offset == s.Offset {
				rep.Errors = append(rep.Errors, se.Err.Error())
			}
		}
		reports = append(reports, rep)
	}
	return reports
}

func sectionEntries(m *wasm.Module, s wasm.Section) []entryReport {
	switch s.ID {
	case wasm.SectionType:
		return entries(m.Types, s, func(t wasm.Type) string { return t.Func.String() })
	case wasm.SectionImport:
		return entries(m.Imports, s, func(imp wasm.Import) string {
			return fmt.Sprintf("%q %q %s", imp.Module, imp.Name, imp.Type)
		})
	case wasm.SectionFunction:
		return entries(m.Functions, s, func(f wasm.Function) string {
			return fmt.Sprintf("(type %d)", f.TypeIdx)
		})
	case wasm.SectionTable:
		return entries(m.Tables, s, func(t wasm.Table) string {
			if t.Init.Expr != nil {
				return t.Type.String() + " init " + t.Init.Expr.String()
			}
			return t.Type.String()
		})
	case wasm.SectionMemory:
		return entries(m.Memories, s, wasm.MemoryType.String)
	case wasm.SectionGlobal:
		return entries(m.Globals, s, func(g wasm.Global) string {
			return g.Type.String() + " = " + g.Init.String()
		})
	case wasm.SectionExport:
		return entries(m.Exports, s, func(e wasm.Export) string {
			return fmt.Sprintf("%q %s %d", e.Name, e.Kind, e.Index)
		})
	case wasm.SectionElement:
		return entries(m.Elements, s, describeElement)
	case wasm.SectionCode:
		return entries(m.Code, s, describeBody)
	case wasm.SectionData:
		return entries(m.Data, s, describeData)
	case wasm.SectionTag:
		return entries(m.Tags, s, func(t wasm.TagType) string {
			return fmt.Sprintf("(type %d)", t.FuncTypeIdx)
		})
	case wasm.SectionStart:
		if m.Start != nil {
			return []entryReport{{Offset: hex(s.Payload.Start), Value: fmt.Sprintf("func %d", *m.Start)}}
		}
	case wasm.SectionDataCount:
		if m.DataCount != nil {
			return []entryReport{{Offset: hex(s.Payload.Start), Value: fmt.Sprintf("%d segments", *m.DataCount)}}
		}
	case wasm.SectionCustom:
		if s.Name == wasm.NameSectionName {
			return entries(m.Names, s, describeName)
		}
		for _, cs := range m.Customs {
			if s.Payload.Contains(cs.DataOffset) || cs.DataOffset == s.Payload.End {
				return []entryReport{{Offset: hex(cs.DataOffset), Value: fmt.Sprintf("%d bytes", len(cs.Data))}}
			}
		}
	}
	return nil
}

// entries keeps the results lying inside s, so repeated sections of one
// kind are reported separately.
func entries[T any](results []wasm.Result[T], s wasm.Section, describe func(T) string) []entryReport {
	var out []entryReport
	for i, r := range results {
		if !s.Payload.Contains(r.Range.Start) {
			continue
		}
		e := entryReport{Index: i, Offset: hex(r.Range.Start)}
		if r.Err != nil {
			e.Error = r.Err.Error()
		} else {
			e.Value = describe(r.Value)
		}
		out = append(out, e)
	}
	return out
}

func describeElement(e wasm.Element) string {
	s := e.Kind.Mode.String()
	if e.Kind.Mode == wasm.ElementActive {
		s += fmt.Sprintf(" table %d offset %s", e.Kind.TableIndex, e.Kind.OffsetExpr)
	}
	n := len(e.Items.Functions)
	if e.Items.Kind == wasm.ElementItemsExpressions {
		n = len(e.Items.Expressions)
	}
	return fmt.Sprintf("%s %s, %d items", s, e.Type, n)
}

func describeData(d wasm.Data) string {
	s := d.Kind.Mode.String()
	if d.Kind.Mode == wasm.DataActive {
		s += fmt.Sprintf(" memory %d offset %s", d.Kind.MemoryIndex, d.Kind.OffsetExpr)
	}
	return fmt.Sprintf("%s, %d bytes", s, len(d.Data))
}

func describeBody(b wasm.FunctionBody) string {
	locals := 0
	for _, l := range b.Locals {
		locals += int(l.Count)
	}
	return fmt.Sprintf("%d locals, %d code bytes, %d operators", locals, b.CodeRange().Len(), len(b.Ops))
}

func describeName(n wasm.Name) string {
	switch n.Kind {
	case wasm.NameKindModule:
		return fmt.Sprintf("module %q", n.Module)
	case wasm.NameKindLocal, wasm.NameKindLabel:
		return fmt.Sprintf("%s names for %d functions", n.Kind, len(n.IndirectMap))
	case wasm.NameKindUnknown:
		return fmt.Sprintf("unknown subsection %d, %d bytes", n.Unknown.ID, len(n.Unknown.Data))
	}
	return fmt.Sprintf("%s names, %d entries", n.Kind, len(n.Map))
}
