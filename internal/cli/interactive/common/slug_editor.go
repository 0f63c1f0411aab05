package common

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/services"
)

var (
	slugPromptMessage = &i18n.Message{
		ID:    "common_slug_prompt",
		Other: "Edit the slug themes use to place \"{{.Name}}\":",
	}
	slugHintMessage = &i18n.Message{
		ID:    "common_slug_hint",
		Other: "Enter to keep this slug, Esc to cancel",
	}
	slugPreviewMessage = &i18n.Message{
		ID:    "common_slug_preview",
		Other: "Saved as: {{.Slug}}",
	}
)

type SlugEditorCompleteMsg struct {
	Slug string
}

type SlugEditorCancelMsg struct{}

type SlugEditorConfig struct {
	Title       string
	MenuName    string
	InitialSlug string
	Theme       Theme
}

// SlugEditor asks for a new menu slug. The value is normalised the same way
// generated slugs are before it is reported.
type SlugEditor struct {
	config SlugEditorConfig
	input  textinput.Model
	width  int
}

func NewSlugEditor(config SlugEditorConfig) *SlugEditor {
	input := textinput.New()
	input.Placeholder = "main-menu"
	input.Focus()
	input.SetValue(config.InitialSlug)
	input.Width = 40

	return &SlugEditor{
		config: config,
		input:  input,
		width:  50,
	}
}

func (s *SlugEditor) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the width of the slug editor
func (s *SlugEditor) SetSize(width int) {
	s.width = width
	if width > 8 {
		s.input.Width = width - 8
	}
}

// Update handles tea messages and updates the component
func (s *SlugEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEsc:
			return s, func() tea.Msg {
				return SlugEditorCancelMsg{}
			}
		case tea.KeyEnter:
			if strings.TrimSpace(s.input.Value()) == "" {
				return s, nil
			}
			slug := services.SanitizeSlug(s.input.Value())
			return s, func() tea.Msg {
				return SlugEditorCompleteMsg{Slug: slug}
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SlugEditor) View() string {
	theme := s.config.Theme
	var sb strings.Builder

	sb.WriteString(theme.HighlightStyle().Render(s.config.Title) + "\n\n")
	sb.WriteString(i18n.Localize(slugPromptMessage, map[string]interface{}{"Name": s.config.MenuName}) + "\n\n")
	sb.WriteString(s.input.View() + "\n")

	if value := strings.TrimSpace(s.input.Value()); value != "" {
		if slug := services.SanitizeSlug(value); slug != value {
			sb.WriteString(theme.MutedStyle().Render(i18n.Localize(slugPreviewMessage, map[string]interface{}{"Slug": slug})) + "\n")
		}
	}
	sb.WriteString("\n" + theme.MutedStyle().Render(i18n.Localize(slugHintMessage, nil)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(theme.Accent).
		Padding(1, 2).
		Width(s.width).
		Render(sb.String())
}
