package header

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/models"
)

var (
	loadingMessage = &i18n.Message{
		ID:    "header_loading",
		Other: "Loading post…",
	}
	loadFailedMessage = &i18n.Message{
		ID:    "header_load_failed",
		Other: "Could not load the post: {{.Error}}",
	}
	unsavedMessage = &i18n.Message{
		ID:    "header_unsaved",
		Other: "Unsaved changes",
	}
	savedMessage = &i18n.Message{
		ID:    "header_saved",
		Other: "Saved",
	}
	saveFailedMessage = &i18n.Message{
		ID:    "header_save_failed",
		Other: "Could not save: {{.Error}}",
	}
	helpMessage = &i18n.Message{
		ID:    "header_help",
		Other: "ctrl+s save · esc quit",
	}
)

// PostStore is the part of the editor store the post screen reads and writes
type PostStore interface {
	PostEditor
	SelectionClearer
	GetEditedPostAttribute(attr string) string
	IsEditedPostDirty() bool
}

// PostBackend runs post loads and saves off the update loop
type PostBackend interface {
	LoadPostCmd(id string) tea.Cmd
	SavePostCmd() tea.Cmd
}

// ScreenConfig configures the post title screen
type ScreenConfig struct {
	PostID        string
	Store         PostStore
	Backend       PostBackend
	Theme         common.Theme
	ReadableWidth int
	Zones         *zone.Manager // optional
}

// Screen shows the title of one post inside a readable-width column
type Screen struct {
	config ScreenConfig
	header *Model
	save   key.Binding
	quit   key.Binding

	loaded  bool
	saving  bool
	status  string
	errText string
	width   int
	height  int
}

// NewScreen creates the post title screen; the post is loaded by Init
func NewScreen(config ScreenConfig) *Screen {
	if config.ReadableWidth <= 0 {
		config.ReadableWidth = 80
	}
	return &Screen{
		config: config,
		header: New(Config{
			Editor:         config.Store,
			ClearSelection: config.Store,
			Theme:          config.Theme,
			Zones:          config.Zones,
		}),
		save:   key.NewBinding(key.WithKeys("ctrl+s")),
		quit:   key.NewBinding(key.WithKeys("esc")),
		width:  config.ReadableWidth,
		height: 24,
	}
}

// Header returns the title input
func (s *Screen) Header() *Model {
	return s.header
}

func (s *Screen) Init() tea.Cmd {
	return s.config.Backend.LoadPostCmd(s.config.PostID)
}

// SetSize sets the dimensions of the screen
func (s *Screen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.header.SetSize(s.columnWidth() - 4)
}

func (s *Screen) columnWidth() int {
	if s.width > 0 && s.width < s.config.ReadableWidth {
		return s.width
	}
	return s.config.ReadableWidth
}

// Update handles tea messages and updates the screen
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case interactive.PostLoadedMsg:
		if msg.Err != nil {
			s.errText = i18n.Localize(loadFailedMessage, map[string]interface{}{"Error": msg.Err.Error()})
			return s, nil
		}
		s.loaded = true
		s.errText = ""
		s.header.SetTitle(s.config.Store.GetEditedPostAttribute(models.PostAttrTitle))
		return s, tea.Batch(s.header.Init(), s.header.Focus())

	case interactive.PostSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.status = ""
			s.errText = i18n.Localize(saveFailedMessage, map[string]interface{}{"Error": msg.Err.Error()})
			return s, nil
		}
		s.errText = ""
		s.status = i18n.Localize(savedMessage, nil)
		logging.Info(logging.SubsystemHeader, "saved post %s", msg.Post.ID)
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.quit):
			return s, tea.Quit
		case key.Matches(msg, s.save):
			if !s.loaded || s.saving {
				return s, nil
			}
			s.saving = true
			return s, s.config.Backend.SavePostCmd()
		}
		if !s.loaded {
			return s, nil
		}
		s.status = ""
	}

	if !s.loaded {
		return s, nil
	}
	var cmd tea.Cmd
	s.header, cmd = s.header.Update(msg)
	return s, cmd
}

// View renders the screen
func (s *Screen) View() string {
	theme := s.config.Theme

	if !s.loaded {
		if s.errText != "" {
			return theme.ErrorStyle().Render(s.errText)
		}
		return theme.MutedStyle().Render(i18n.Localize(loadingMessage, nil))
	}

	var sb strings.Builder
	sb.WriteString(s.header.View())

	var footer []string
	if s.config.Store.IsEditedPostDirty() {
		footer = append(footer, theme.HighlightStyle().Render("● "+i18n.Localize(unsavedMessage, nil)))
	} else if s.status != "" {
		footer = append(footer, theme.MutedStyle().Render(s.status))
	}
	if s.errText != "" {
		footer = append(footer, theme.ErrorStyle().Render(s.errText))
	}
	footer = append(footer, theme.MutedStyle().Render(i18n.Localize(helpMessage, nil)))
	sb.WriteString("\n\n" + strings.Join(footer, "\n"))

	border := theme.Muted
	if s.header.Focused() {
		border = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(s.columnWidth() - 2).
		Render(sb.String())
}
