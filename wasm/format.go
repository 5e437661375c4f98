package wasm

import (
	"fmt"
	"strings"
)

// Text-format renderings used by tooling output.

func (t TableType) String() string {
	if t.Maximum != nil {
		return fmt.Sprintf("%d %d %s", t.Initial, *t.Maximum, t.ElemType)
	}
	return fmt.Sprintf("%d %s", t.Initial, t.ElemType)
}

func (m MemoryType) String() string {
	var b strings.Builder
	if m.Memory64 {
		b.WriteString("i64 ")
	}
	fmt.Fprintf(&b, "%d", m.Initial)
	if m.Maximum != nil {
		fmt.Fprintf(&b, " %d", *m.Maximum)
	}
	if m.Shared {
		b.WriteString(" shared")
	}
	return b.String()
}

func (g GlobalType) String() string {
	if g.Mutable {
		return "(mut " + g.ContentType.String() + ")"
	}
	return g.ContentType.String()
}

func (m DataMode) String() string {
	if m == DataActive {
		return "active"
	}
	return "passive"
}

func (t TypeRef) String() string {
	switch {
	case t.Kind == ExternalFunc:
		return fmt.Sprintf("(func (type %d))", t.FuncTypeIdx)
	case t.Table != nil:
		return "(table " + t.Table.String() + ")"
	case t.Memory != nil:
		return "(memory " + t.Memory.String() + ")"
	case t.Global != nil:
		return "(global " + t.Global.String() + ")"
	case t.Tag != nil:
		return fmt.Sprintf("(tag (type %d))", t.Tag.FuncTypeIdx)
	}
	return t.Kind.String()
}

// String lists the expression's instruction names.
func (c ConstExpr) String() string {
	var names []string
	for _, op := range c.Operators() {
		if op.Err != nil {
			names = append(names, "<"+op.Err.Error()+">")
			break
		}
		if op.Value.Name != "end" {
			names = append(names, op.Value.Name)
		}
	}
	return strings.Join(names, " ")
}
