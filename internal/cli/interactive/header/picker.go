package header

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/i18n"
)

var pickTitleMessage = &i18n.Message{
	ID:    "header_pick_title",
	Other: "Pick a post",
}

// PickerBackend lists posts in addition to loading and saving them
type PickerBackend interface {
	PostBackend
	ListPostsCmd() tea.Cmd
}

// PickerConfig configures the post picker
type PickerConfig struct {
	Store         PostStore
	Backend       PickerBackend
	Theme         common.Theme
	ReadableWidth int
	Zones         *zone.Manager // optional
}

// Picker lists posts and opens the title screen for the chosen one
type Picker struct {
	config   PickerConfig
	selector common.PostSelector
	screen   *Screen
	errText  string
	width    int
	height   int
}

// NewPicker creates a post picker; posts are listed by Init
func NewPicker(config PickerConfig) *Picker {
	return &Picker{
		config: config,
		selector: common.NewPostSelector(common.PostSelectorConfig{
			Title: i18n.Localize(pickTitleMessage, nil),
			Theme: config.Theme,
		}),
	}
}

// Screen returns the title screen once a post was picked
func (p *Picker) Screen() *Screen {
	return p.screen
}

func (p *Picker) Init() tea.Cmd {
	return p.config.Backend.ListPostsCmd()
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.screen != nil {
		_, cmd := p.screen.Update(msg)
		return p, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.selector.SetSize(msg.Width, msg.Height)
		return p, nil

	case interactive.PostsListedMsg:
		if msg.Err != nil {
			p.errText = i18n.Localize(loadFailedMessage, map[string]interface{}{"Error": msg.Err.Error()})
			return p, nil
		}
		p.selector.SetPosts(msg.Posts)
		return p, nil

	case common.PostSelectedMsg:
		p.screen = NewScreen(ScreenConfig{
			PostID:        msg.PostID,
			Store:         p.config.Store,
			Backend:       p.config.Backend,
			Theme:         p.config.Theme,
			ReadableWidth: p.config.ReadableWidth,
			Zones:         p.config.Zones,
		})
		if p.width > 0 {
			p.screen.SetSize(p.width, p.height)
		}
		return p, p.screen.Init()

	case tea.KeyMsg:
		if (msg.String() == "esc" || msg.String() == "q") && !p.selector.Filtering() {
			return p, tea.Quit
		}
	}

	_, cmd := p.selector.Update(msg)
	return p, cmd
}

func (p *Picker) View() string {
	if p.screen != nil {
		return p.screen.View()
	}
	if p.errText != "" {
		return p.config.Theme.ErrorStyle().Render(p.errText)
	}
	return p.selector.View()
}
