package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/darksworm/fuzzypick"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// model hosts a picker full screen with a status line and key help below
type model struct {
	picker *fuzzypick.Picker[item]
	help   help.Model
	keys   fuzzypick.KeyMap

	width, height int
	loading       bool
	loadErr       error

	cache *renderCache

	selected  *fuzzypick.Entry[item]
	cancelled bool
}

func newModel(picker *fuzzypick.Picker[item]) model {
	return model{
		picker:  picker,
		help:    help.New(),
		keys:    picker.KeyMap(),
		loading: true,
		cache:   &renderCache{},
	}
}

// renderCache keeps the last picker frame between View calls
type renderCache struct {
	view       string
	rows, cols int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case entriesMsg:
		m.picker.Extend(slices.Values(msg))

	case loadDoneMsg:
		m.loading = false
		m.loadErr = msg.err

	case tea.KeyMsg:
		if m.picker.Mode() == fuzzypick.ModeNormal && key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.cache.view = ""
			return m, nil
		}
	}

	// Everything goes to the picker; it ignores what is not a key press
	switch resp := m.picker.Update(msg); resp.Kind {
	case fuzzypick.ResponseSelect:
		m.selected = &resp.Entry
		return m, tea.Quit
	case fuzzypick.ResponseCancel:
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.selected != nil || m.cancelled {
		return ""
	}
	footer := m.footer()
	rows := m.height - lipgloss.Height(footer)

	// Only re-render the picker when it changed or the grid was resized
	c := m.cache
	if c.view == "" || m.picker.NeedsRedraw() || c.rows != rows || c.cols != m.width {
		c.view = m.picker.Render(rows, m.width)
		c.rows, c.cols = rows, m.width
	}

	body := lipgloss.NewStyle().Height(max(rows, 0)).Render(c.view)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m model) footer() string {
	status := fmt.Sprintf("  %d/%d", m.picker.ResultCount(), len(m.picker.Entries()))
	if m.loading {
		status += " loading…"
	}
	if m.loadErr != nil {
		status += " " + m.loadErr.Error()
	}
	parts := []string{statusStyle.Render(status), m.help.View(m.keys)}
	return strings.Join(parts, "\n")
}
