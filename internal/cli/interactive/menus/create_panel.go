package menus

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/services"
)

// CreateMenuRequestedMsg is sent when the panel holds a valid new name
type CreateMenuRequestedMsg struct {
	Name string
}

// CreatePanelCancelMsg is sent when the user backs out of creating a menu
type CreatePanelCancelMsg struct{}

// CreatePanelConfig configures the create menu panel
type CreatePanelConfig struct {
	ExistingNames []string
	// CanCancel is false while creating the first menu
	CanCancel bool
	Theme     common.Theme
}

// CreatePanel asks for the name of a new menu
type CreatePanel struct {
	config  CreatePanelConfig
	input   textinput.Model
	errText string
	busy    bool
	width   int
}

// NewCreatePanel creates a focused create menu panel
func NewCreatePanel(config CreatePanelConfig) *CreatePanel {
	input := textinput.New()
	input.Placeholder = i18n.Localize(namePlaceholderMessage, nil)
	input.CharLimit = services.MaxMenuNameLength
	input.Width = 40
	input.Focus()

	return &CreatePanel{
		config: config,
		input:  input,
	}
}

func (p *CreatePanel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the dimensions of the panel
func (p *CreatePanel) SetSize(width, _ int) {
	p.width = width
	if width > 8 {
		p.input.Width = width - 8
	}
}

// SetCanCancel updates whether Esc leaves the panel
func (p *CreatePanel) SetCanCancel(canCancel bool) {
	p.config.CanCancel = canCancel
}

// SetExistingNames updates the names a new menu may not reuse
func (p *CreatePanel) SetExistingNames(names []string) {
	p.config.ExistingNames = names
}

// SetError shows a failure reported after the request left the panel
func (p *CreatePanel) SetError(text string) {
	p.busy = false
	p.errText = text
}

// Busy reports whether a create request is in flight
func (p *CreatePanel) Busy() bool {
	return p.busy
}

// Value returns the current name input
func (p *CreatePanel) Value() string {
	return p.input.Value()
}

func (p *CreatePanel) nameTaken(name string) bool {
	for _, existing := range p.config.ExistingNames {
		if strings.EqualFold(existing, name) {
			return true
		}
	}
	return false
}

// Update handles tea messages and updates the component
func (p *CreatePanel) Update(msg tea.Msg) (*CreatePanel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			if !p.config.CanCancel {
				return p, nil
			}
			return p, func() tea.Msg { return CreatePanelCancelMsg{} }
		case tea.KeyEnter:
			if p.busy {
				return p, nil
			}
			name := strings.TrimSpace(p.input.Value())
			switch {
			case name == "":
				p.errText = i18n.Localize(nameEmptyMessage, nil)
				return p, nil
			case p.nameTaken(name):
				p.errText = i18n.Localize(nameTakenMessage, nil)
				return p, nil
			}
			p.errText = ""
			p.busy = true
			return p, func() tea.Msg { return CreateMenuRequestedMsg{Name: name} }
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the panel
func (p *CreatePanel) View() string {
	theme := p.config.Theme
	var sb strings.Builder

	sb.WriteString(theme.HighlightStyle().Render(i18n.Localize(nameLabelMessage, nil)) + "\n")
	sb.WriteString(p.input.View() + "\n")
	if p.errText != "" {
		sb.WriteString(theme.ErrorStyle().Render(p.errText) + "\n")
	}

	hint := i18n.Localize(createHintMessage, nil)
	if p.config.CanCancel {
		hint += " · " + i18n.Localize(cancelHintMessage, nil)
	}
	sb.WriteString("\n" + theme.MutedStyle().Render(hint))

	return theme.CardStyle(true).Render(sb.String())
}
