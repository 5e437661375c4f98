package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/wasmview/wasm"
)

func newBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse sections interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("browse needs an interactive terminal; use dump instead")
			}
			m, err := loadModule(args[0], wasm.DefaultOptions())
			if err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(args[0], m, newStyles(os.Stdout)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

type sectionItem struct {
	rep sectionReport
}

func (i sectionItem) Title() string { return i.rep.Section }

func (i sectionItem) Description() string {
	desc := fmt.Sprintf("offset %s, %d bytes, %d entries", i.rep.Offset, i.rep.Size, len(i.rep.Entries))
	failed := len(i.rep.Errors)
	for _, e := range i.rep.Entries {
		if e.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		desc += fmt.Sprintf(", %d errors", failed)
	}
	return desc
}

func (i sectionItem) FilterValue() string { return i.rep.Section }

type browseModel struct {
	list     list.Model
	view     viewport.Model
	st       styles
	filename string
	detail   bool
}

func newBrowseModel(filename string, m *wasm.Module, st styles) *browseModel {
	reports := buildReport(m)
	items := make([]list.Item, len(reports))
	for i, rep := range reports {
		items[i] = sectionItem{rep: rep}
	}
	l := list.New(items, newSectionDelegate(st), 0, 0)
	l.Title = filename
	l.Styles.Title = st.title
	return &browseModel{
		list:     l,
		view:     viewport.New(0, 0),
		st:       st,
		filename: filename,
	}
}

// newSectionDelegate renders the selected section with the selected style.
func newSectionDelegate(st styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = st.selected.PaddingLeft(2)
	d.Styles.SelectedDesc = st.selected.PaddingLeft(2)
	return d
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 3
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace":
			if m.detail {
				m.detail = false
				return m, nil
			}
		case "q":
			if m.detail {
				m.detail = false
				return m, nil
			}
			if m.list.FilterState() != list.Filtering {
				return m, tea.Quit
			}
		case "enter":
			if !m.detail && m.list.FilterState() != list.Filtering {
				if item, ok := m.list.SelectedItem().(sectionItem); ok {
					m.showSection(item.rep)
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.detail {
		m.view, cmd = m.view.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *browseModel) showSection(rep sectionReport) {
	var b strings.Builder
	writeSectionText(&b, m.st, rep)
	m.view.SetContent(b.String())
	m.view.GotoTop()
	m.detail = true
}

func (m *browseModel) View() string {
	if !m.detail {
		return m.list.View()
	}
	var b strings.Builder
	b.WriteString(m.st.title.Render("wasmview"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n")
	b.WriteString(m.view.View())
	b.WriteString("\n")
	b.WriteString(m.st.help.Render("↑/↓ scroll • esc back • ctrl+c quit"))
	return b.String()
}
