package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/wippyai/wasmview/locate"
	"github.com/wippyai/wasmview/wasm"
)

func newSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections FILE",
		Short: "List the sections of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args[0], wasm.Options{})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st := newStyles(out)
			for _, s := range m.Sections {
				fmt.Fprintf(out, "%s %s size %d\n",
					st.offset.Render(fmt.Sprintf("%08x", s.Offset)),
					st.section.Render(fmt.Sprintf("%-12s", s)),
					s.Payload.Len())
			}
			if m.Framing != nil {
				fmt.Fprintln(out, st.err.Render("error: "+m.Framing.Error()))
			}
			return nil
		},
	}
}

type dumpOptions struct {
	section string
	format  string
}

func newDumpCommand() *cobra.Command {
	opts := &dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every decoded entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args[0], wasm.DefaultOptions())
			if err != nil {
				return err
			}
			return runDump(cmd.OutOrStdout(), m, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "Only dump sections with this name (type, import, ..., or a custom section name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or yaml")
	return cmd
}

func runDump(out io.Writer, m *wasm.Module, opts *dumpOptions) error {
	var reports []sectionReport
	for _, rep := range buildReport(m) {
		if opts.section == "" || opts.section == rep.id.String() || opts.section == rep.custom {
			reports = append(reports, rep)
		}
	}
	if opts.section != "" && len(reports) == 0 {
		return fmt.Errorf("no %q section", opts.section)
	}

	switch opts.format {
	case "yaml":
		data, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "text":
		st := newStyles(out)
		for _, rep := range reports {
			writeSectionText(out, st, rep)
		}
		if m.Framing != nil {
			fmt.Fprintln(out, st.err.Render("error: "+m.Framing.Error()))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func writeSectionText(out io.Writer, st styles, rep sectionReport) {
	fmt.Fprintf(out, "%s at %s, %d bytes\n", st.section.Render(rep.Section), rep.Offset, rep.Size)
	for _, e := range rep.Entries {
		prefix := fmt.Sprintf("  [%d] %s ", e.Index, st.offset.Render(e.Offset))
		if e.Error != "" {
			fmt.Fprintln(out, prefix+st.err.Render("error: "+e.Error))
		} else {
			fmt.Fprintln(out, prefix+e.Value)
		}
	}
	for _, msg := range rep.Errors {
		fmt.Fprintln(out, "  "+st.err.Render("section error: "+msg))
	}
}

func newOpsCommand() *cobra.Command {
	var funcIdx uint32
	cmd := &cobra.Command{
		Use:   "ops FILE",
		Short: "Disassemble one function body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args[0], wasm.DefaultOptions())
			if err != nil {
				return err
			}
			return runOps(cmd.OutOrStdout(), m, funcIdx)
		},
	}
	cmd.Flags().Uint32Var(&funcIdx, "func", 0, "Function index, counting imported functions")
	_ = cmd.MarkFlagRequired("func")
	return cmd
}

var (
	opensBlock  = map[string]bool{"block": true, "loop": true, "if": true, "try": true, "try_table": true}
	closesBlock = map[string]bool{"end": true, "delegate": true}
	midBlock    = map[string]bool{"else": true, "catch": true, "catch_all": true}
)

func runOps(out io.Writer, m *wasm.Module, funcIdx uint32) error {
	imported, ok := m.NumImportedFuncs()
	if !ok {
		return fmt.Errorf("function %d: imports failed to decode, function indices are unknown", funcIdx)
	}
	if int(funcIdx) < imported {
		return fmt.Errorf("function %d is imported", funcIdx)
	}
	i := int(funcIdx) - imported
	if i >= len(m.Code) {
		return fmt.Errorf("function %d has no body", funcIdx)
	}
	body := m.Code[i]
	if body.Err != nil {
		return fmt.Errorf("function %d: %w", funcIdx, body.Err)
	}

	st := newStyles(out)
	header := fmt.Sprintf("func %d", funcIdx)
	if name, ok := m.FunctionName(funcIdx); ok {
		header += " $" + name
	}
	if ft, ok := m.FuncType(funcIdx); ok {
		header += " " + st.typ.Render(ft.String())
	}
	fmt.Fprintln(out, st.name.Render(header))
	for _, l := range body.Value.Locals {
		fmt.Fprintf(out, "  (local %d %s)\n", l.Count, st.typ.Render(l.Type.String()))
	}

	depth := 1
	for _, op := range body.Value.Ops {
		off := st.offset.Render(fmt.Sprintf("%08x", op.Range.Start))
		if op.Err != nil {
			fmt.Fprintf(out, "%s %s\n", off, st.err.Render("error: "+op.Err.Error()))
			break
		}
		name := op.Value.Name
		if (closesBlock[name] || midBlock[name]) && depth > 0 {
			depth--
		}
		fmt.Fprintf(out, "%s %s%s\n", off, strings.Repeat("  ", depth), name)
		if opensBlock[name] || midBlock[name] {
			depth++
		}
	}
	return nil
}

func newNamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "names FILE",
		Short: "Print the debug names of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadModule(args[0], wasm.Options{})
			if err != nil {
				return err
			}
			runNames(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func runNames(out io.Writer, m *wasm.Module) {
	st := newStyles(out)
	if len(m.Names) == 0 {
		fmt.Fprintln(out, "no name section")
		return
	}
	printNaming := func(indent string, n wasm.Result[wasm.Naming]) {
		if n.Err != nil {
			fmt.Fprintln(out, indent+st.err.Render("error: "+n.Err.Error()))
			return
		}
		fmt.Fprintf(out, "%s%d %s\n", indent, n.Value.Index, st.name.Render(n.Value.Name))
	}

	for _, res := range m.Names {
		if res.Err != nil {
			fmt.Fprintln(out, st.err.Render("error: "+res.Err.Error()))
			continue
		}
		n := res.Value
		switch n.Kind {
		case wasm.NameKindModule:
			fmt.Fprintf(out, "%s %s\n", st.section.Render("module"), st.name.Render(n.Module))
		case wasm.NameKindLocal, wasm.NameKindLabel:
			fmt.Fprintln(out, st.section.Render(n.Kind.String()))
			for _, g := range n.IndirectMap {
				if g.Err != nil && len(g.Value.Names) == 0 {
					fmt.Fprintln(out, "  "+st.err.Render("error: "+g.Err.Error()))
					continue
				}
				fmt.Fprintf(out, "  func %d\n", g.Value.Index)
				for _, naming := range g.Value.Names {
					printNaming("    ", naming)
				}
			}
		case wasm.NameKindUnknown:
			fmt.Fprintf(out, "%s id %d, %d bytes\n", st.section.Render("unknown"), n.Unknown.ID, len(n.Unknown.Data))
		default:
			fmt.Fprintln(out, st.section.Render(n.Kind.String()))
			for _, naming := range n.Map {
				printNaming("  ", naming)
			}
		}
	}
}

func newLocateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate FILE OFFSET",
		Short: "Show what lies at a byte offset",
		Long:  "Show every decoded entity containing OFFSET, innermost first. OFFSET accepts 0x, 0o and 0b prefixes.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.ParseInt(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("parse offset: %w", err)
			}
			m, err := loadModule(args[0], wasm.Options{})
			if err != nil {
				return err
			}
			return runLocate(cmd.OutOrStdout(), locate.Build(m), int(offset))
		},
	}
}

func runLocate(out io.Writer, ix *locate.Index, offset int) error {
	found := ix.Lookup(offset)
	if len(found) == 0 {
		return fmt.Errorf("offset 0x%x is not inside any section", offset)
	}
	st := newStyles(out)
	for _, e := range found {
		line := e.String()
		if e.Err != nil {
			line = st.err.Render(line)
		}
		fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", e.Depth), line)
	}
	return nil
}
