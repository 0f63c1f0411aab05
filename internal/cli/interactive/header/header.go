// Package header renders the post title input and the screen that hosts it.
package header

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/models"
)

// AccessibilityLabel names the title input, and is also its mouse zone
const AccessibilityLabel = "post-title"

var titlePlaceholderMessage = &i18n.Message{
	ID:    "header_title_placeholder",
	Other: "Add title",
}

// PostEditor receives partial post edits
type PostEditor interface {
	EditPost(edits models.PostEdits)
}

// SelectionClearer clears the current block selection
type SelectionClearer interface {
	ClearSelectedBlock()
}

// Config wires the header to the edited post
type Config struct {
	Title  string
	Editor PostEditor
	// ClearSelection is held for hosts that pass it along; the header
	// itself never clears the selection.
	ClearSelection SelectionClearer
	Theme          common.Theme
	Zones          *zone.Manager // optional
}

// Model is the post title input
type Model struct {
	config Config
	input  textinput.Model
}

// New creates a header showing config.Title
func New(config Config) *Model {
	input := textinput.New()
	input.Placeholder = i18n.Localize(titlePlaceholderMessage, nil)
	input.Prompt = ""
	input.CharLimit = 0
	input.Width = 60
	input.SetValue(config.Title)

	return &Model{
		config: config,
		input:  input,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Title returns the title currently shown
func (m *Model) Title() string {
	return m.input.Value()
}

// SetTitle replaces the shown title with one supplied from outside. It does
// not produce an edit.
func (m *Model) SetTitle(title string) {
	if title == m.input.Value() {
		return
	}
	m.input.SetValue(title)
	m.input.CursorEnd()
}

// Placeholder returns the text shown while the title is empty
func (m *Model) Placeholder() string {
	return m.input.Placeholder
}

func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.input.Blur()
}

func (m *Model) Focused() bool {
	return m.input.Focused()
}

// SetSize sets the width of the input
func (m *Model) SetSize(width int) {
	if width > 1 {
		m.input.Width = width - 1
	}
}

// Update handles tea messages and updates the component. Every change to
// the text is forwarded as a title edit.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		if m.clicked(msg) && !m.input.Focused() {
			return m, m.input.Focus()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before && m.config.Editor != nil {
		m.config.Editor.EditPost(models.PostEdits{Title: &after})
	}
	return m, cmd
}

func (m *Model) clicked(msg tea.MouseMsg) bool {
	if m.config.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}
	z := m.config.Zones.Get(AccessibilityLabel)
	return z != nil && z.InBounds(msg)
}

// View renders the title input
func (m *Model) View() string {
	view := m.config.Theme.HighlightStyle().Render(m.input.View())
	if m.config.Zones != nil {
		view = m.config.Zones.Mark(AccessibilityLabel, view)
	}
	return view
}
