package wasm

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/wasmview/errors"
	"github.com/wippyai/wasmview/wasm/internal/binary"
)

// Section is one framed section of a module.
type Section struct {
	// Name is set for custom sections when their name decodes.
	Name string
	// Data aliases the payload bytes.
	Data    []byte
	Payload ByteRange
	// Offset is the absolute offset of the id byte.
	Offset int
	ID     SectionID
}

// Range covers the whole section including its id and size prefix.
func (s Section) Range() ByteRange {
	return ByteRange{Start: s.Offset, End: s.Payload.End}
}

func (s Section) String() string {
	if s.ID == SectionCustom && s.Name != "" {
		return fmt.Sprintf("custom %q", s.Name)
	}
	return s.ID.String()
}

// Sections checks the header and splits data into sections. Section order
// is not checked. On a framing error the sections read so far are returned
// along with the error.
func Sections(data []byte) ([]Section, error) {
	r := binary.NewReader(data, 0)
	if err := readHeader(r); err != nil {
		return nil, err
	}

	var sections []Section
	for !r.EOF() {
		start := r.Offset()
		id, _ := r.ReadByte()
		sizeOff := r.Offset()
		size, err := r.ReadU32()
		if err != nil {
			return sections, err
		}
		payload, err := r.ReadBytes(int(size))
		if err != nil {
			return sections, errors.UnexpectedEOF(sizeOff, int(size), r.Remaining())
		}
		s := Section{
			ID:      SectionID(id),
			Offset:  start,
			Payload: ByteRange{Start: r.Offset() - len(payload), End: r.Offset()},
			Data:    payload,
		}
		if s.ID == SectionCustom {
			if cs, err := ReadCustomSection(payload, s.Payload.Start); err == nil {
				s.Name = cs.Name
			}
		}
		sections = append(sections, s)
	}
	return sections, nil
}

func readHeader(r *binary.Reader) error {
	magic, err := r.ReadU32LE()
	if err != nil {
		return err
	}
	if magic != Magic {
		return errors.Malformed(0, "magic header not detected: bad magic number")
	}
	version, err := r.ReadU32LE()
	if err != nil {
		return err
	}
	if version != Version {
		return errors.Malformed(4, "unknown binary version: 0x%x", version)
	}
	return nil
}

// Options control whole-module decoding.
type Options struct {
	// Logger receives per-section debug records. Nil uses Logger().
	Logger *zap.Logger
	// DecodeOperators fills FunctionBody.Ops for every body.
	DecodeOperators bool
}

// DefaultOptions decodes operators and logs through the package logger.
func DefaultOptions() Options {
	return Options{DecodeOperators: true}
}

// SectionError is a failure that affected a whole section.
type SectionError struct {
	Err     error
	Section Section
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("%s section: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error {
	return e.Err
}

// Module is a decoded module. Entry slices hold one Result per decoded
// entry, so a failed entry keeps its position in the index space.
type Module struct {
	Start     *uint32
	DataCount *uint32
	// Framing is set when splitting stopped at a truncated section.
	Framing       error
	Sections      []Section
	Types         []Result[Type]
	Imports       []Result[Import]
	Functions     []Result[Function]
	Tables        []Result[Table]
	Memories      []Result[MemoryType]
	Globals       []Result[Global]
	Exports       []Result[Export]
	Elements      []Result[Element]
	Code          []Result[FunctionBody]
	Data          []Result[Data]
	Tags          []Result[TagType]
	Customs       []CustomSection
	Names         []Result[Name]
	SectionErrors []*SectionError

	// importsShort is set when an import section ended before its
	// declared count.
	importsShort bool
}

// DecodeModule decodes data with DefaultOptions.
func DecodeModule(data []byte) (*Module, error) {
	return DecodeModuleWithOptions(data, DefaultOptions())
}

// DecodeModuleWithOptions decodes every section of data. The returned error
// is non-nil only when the header is invalid; everything else is recorded
// on the Module.
func DecodeModuleWithOptions(data []byte, opts Options) (*Module, error) {
	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	if err := readHeader(binary.NewReader(data, 0)); err != nil {
		return nil, err
	}
	sections, err := Sections(data)

	m := &Module{Sections: sections, Framing: err}
	for _, s := range sections {
		before := len(m.SectionErrors)
		n, failed := m.decodeSection(s, opts)
		if len(m.SectionErrors) > before {
			failed++
		}
		log.Debug("decoded section",
			zap.Stringer("section", s.ID),
			zap.Int("offset", s.Offset),
			zap.Int("size", s.Payload.Len()),
			zap.Int("entries", n),
			zap.Int("errors", failed))
	}
	if m.Framing != nil {
		log.Debug("section framing stopped", zap.Error(m.Framing))
	}
	return m, nil
}

func (m *Module) decodeSection(s Section, opts Options) (entries, failed int) {
	switch s.ID {
	case SectionType:
		return collectSection(m, s, NewTypeSectionReader, &m.Types)
	case SectionImport:
		var complete bool
		entries, failed, complete = collectEntries(m, s, NewImportSectionReader, &m.Imports)
		if !complete {
			m.importsShort = true
		}
		return entries, failed
	case SectionFunction:
		return collectSection(m, s, NewFunctionSectionReader, &m.Functions)
	case SectionTable:
		return collectSection(m, s, NewTableSectionReader, &m.Tables)
	case SectionMemory:
		return collectSection(m, s, NewMemorySectionReader, &m.Memories)
	case SectionGlobal:
		return collectSection(m, s, NewGlobalSectionReader, &m.Globals)
	case SectionExport:
		return collectSection(m, s, NewExportSectionReader, &m.Exports)
	case SectionElement:
		return collectSection(m, s, NewElementSectionReader, &m.Elements)
	case SectionData:
		return collectSection(m, s, NewDataSectionReader, &m.Data)
	case SectionTag:
		return collectSection(m, s, NewTagSectionReader, &m.Tags)
	case SectionCode:
		first := len(m.Code)
		entries, failed = collectSection(m, s, NewCodeSectionReader, &m.Code)
		if opts.DecodeOperators {
			for i := first; i < len(m.Code); i++ {
				if m.Code[i].OK() {
					m.Code[i].Value = m.Code[i].Value.WithOperators()
				}
			}
		}
		return entries, failed
	case SectionStart:
		idx, err := ReadStartSection(s.Data, s.Payload.Start)
		if err != nil {
			m.addSectionError(s, err)
			return 0, 0
		}
		m.Start = &idx
		return 1, 0
	case SectionDataCount:
		n, err := ReadDataCountSection(s.Data, s.Payload.Start)
		if err != nil {
			m.addSectionError(s, err)
			return 0, 0
		}
		m.DataCount = &n
		return 1, 0
	case SectionCustom:
		cs, err := ReadCustomSection(s.Data, s.Payload.Start)
		if err != nil {
			m.addSectionError(s, err)
			return 0, 0
		}
		m.Customs = append(m.Customs, cs)
		if cs.Name != NameSectionName {
			return 1, 0
		}
		first := len(m.Names)
		m.Names = append(m.Names, NewNameSectionReader(cs.Data, cs.DataOffset).Collect()...)
		return len(m.Names) - first, countFailed(m.Names[first:])
	default:
		m.addSectionError(s, errors.Malformed(s.Offset, "malformed section id: %d", byte(s.ID)))
		return 0, 0
	}
}

func collectSection[T any](m *Module, s Section, open func([]byte, int) (*SectionReader[T], error), dst *[]Result[T]) (int, int) {
	entries, failed, _ := collectEntries(m, s, open, dst)
	return entries, failed
}

// collectEntries also reports whether every declared entry was produced.
func collectEntries[T any](m *Module, s Section, open func([]byte, int) (*SectionReader[T], error), dst *[]Result[T]) (int, int, bool) {
	sr, err := open(s.Data, s.Payload.Start)
	if err != nil {
		m.addSectionError(s, err)
		return 0, 0, false
	}
	results := sr.Collect()
	if err := sr.Finish(); err != nil {
		m.addSectionError(s, err)
	}
	*dst = append(*dst, results...)
	return len(results), countFailed(results), !sr.Stopped()
}

func countFailed[T any](results []Result[T]) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func (m *Module) addSectionError(s Section, err error) {
	m.SectionErrors = append(m.SectionErrors, &SectionError{Section: s, Err: err})
}

// Errors combines every error recorded while decoding, including entry,
// name and operator errors. It returns nil for a clean module.
func (m *Module) Errors() error {
	err := m.Framing
	for _, se := range m.SectionErrors {
		err = multierr.Append(err, se)
	}
	err = appendEntryErrors(err, m.Types)
	err = appendEntryErrors(err, m.Imports)
	err = appendEntryErrors(err, m.Functions)
	err = appendEntryErrors(err, m.Tables)
	err = appendEntryErrors(err, m.Memories)
	err = appendEntryErrors(err, m.Globals)
	err = appendEntryErrors(err, m.Exports)
	err = appendEntryErrors(err, m.Elements)
	err = appendEntryErrors(err, m.Code)
	err = appendEntryErrors(err, m.Data)
	err = appendEntryErrors(err, m.Tags)
	err = appendEntryErrors(err, m.Names)
	for _, body := range m.Code {
		err = appendEntryErrors(err, body.Value.Ops)
	}
	for _, n := range m.Names {
		err = appendEntryErrors(err, n.Value.Map)
		for _, group := range n.Value.IndirectMap {
			// A group that stopped repeats its last naming's error.
			if group.Err != nil && len(group.Value.Names) == 0 {
				err = multierr.Append(err, group.Err)
			}
			err = appendEntryErrors(err, group.Value.Names)
		}
	}
	return err
}

func appendEntryErrors[T any](err error, results []Result[T]) error {
	for _, r := range results {
		if r.Err != nil {
			err = multierr.Append(err, r.Err)
		}
	}
	return err
}

// NumImportedFuncs counts function imports, which precede local functions
// in the function index space. It reports false when an import failed to
// decode or the import section ended early, since the count is then unknown.
func (m *Module) NumImportedFuncs() (int, bool) {
	if m.importsShort {
		return 0, false
	}
	n := 0
	for _, imp := range m.Imports {
		if !imp.OK() {
			return 0, false
		}
		if imp.Value.Type.Kind == ExternalFunc {
			n++
		}
	}
	return n, true
}

// FuncType resolves the signature of function funcIdx across imports and
// local functions. It reports false when any link in the chain is missing
// or failed to decode. Function imports before the first failed import
// still resolve; every later index is unknown.
func (m *Module) FuncType(funcIdx uint32) (*FuncType, bool) {
	typeIdx, ok := m.funcTypeIndex(funcIdx)
	if !ok || int(typeIdx) >= len(m.Types) {
		return nil, false
	}
	t := m.Types[typeIdx]
	if !t.OK() || t.Value.Func == nil {
		return nil, false
	}
	return t.Value.Func, true
}

func (m *Module) funcTypeIndex(funcIdx uint32) (uint32, bool) {
	idx := int(funcIdx)
	for _, imp := range m.Imports {
		if !imp.OK() {
			return 0, false
		}
		if imp.Value.Type.Kind != ExternalFunc {
			continue
		}
		if idx == 0 {
			return imp.Value.Type.FuncTypeIdx, true
		}
		idx--
	}
	if m.importsShort {
		return 0, false
	}
	if idx >= len(m.Functions) || !m.Functions[idx].OK() {
		return 0, false
	}
	return m.Functions[idx].Value.TypeIdx, true
}

// FunctionName looks funcIdx up in the name section's function names.
func (m *Module) FunctionName(funcIdx uint32) (string, bool) {
	for _, n := range m.Names {
		if !n.OK() || n.Value.Kind != NameKindFunction {
			continue
		}
		for _, naming := range n.Value.Map {
			if naming.OK() && naming.Value.Index == funcIdx {
				return naming.Value.Name, true
			}
		}
	}
	return "", false
}

// ModuleName returns the module subsection's name, if present.
func (m *Module) ModuleName() (string, bool) {
	for _, n := range m.Names {
		if n.OK() && n.Value.Kind == NameKindModule {
			return n.Value.Module, true
		}
	}
	return "", false
}
