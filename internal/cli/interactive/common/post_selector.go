package common

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/models"
)

var (
	noPostsMessage = &i18n.Message{
		ID:    "common_no_posts",
		Other: "No posts available.",
	}
	untitledMessage = &i18n.Message{
		ID:    "common_untitled",
		Other: "(no title)",
	}
)

// PostSelectedMsg is sent when a post is selected
type PostSelectedMsg struct {
	PostID string
}

// PostSelectorConfig configures the behavior of the post selector
type PostSelectorConfig struct {
	Title string
	Theme Theme
}

type postItem struct {
	post *models.Post
}

func (p postItem) FilterValue() string {
	return p.post.Title
}

// postDelegate handles rendering of post items in the list
type postDelegate struct {
	theme Theme
}

func (d postDelegate) Height() int                             { return 1 }
func (d postDelegate) Spacing() int                            { return 0 }
func (d postDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d postDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(postItem)
	if !ok {
		return
	}

	str := item.post.Title
	if str == "" {
		str = i18n.Localize(untitledMessage, nil)
	}
	str = TruncateToWidth(str, m.Width()-2)

	if index == m.Index() {
		fmt.Fprint(w, d.theme.HighlightStyle().Render("> "+str))
	} else {
		fmt.Fprint(w, "  "+str)
	}
}

// PostSelector lists posts to pick one for editing
type PostSelector struct {
	list   list.Model
	config PostSelectorConfig
}

// NewPostSelector creates a new post selector component
func NewPostSelector(config PostSelectorConfig) PostSelector {
	l := list.New([]list.Item{}, postDelegate{theme: config.Theme}, 0, 0)
	l.Title = config.Title
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)

	return PostSelector{
		list:   l,
		config: config,
	}
}

// SetSize sets the dimensions of the post selector
func (s *PostSelector) SetSize(width, height int) {
	s.list.SetSize(width, height)
}

// SetPosts sets the available posts
func (s *PostSelector) SetPosts(posts []*models.Post) {
	items := make([]list.Item, len(posts))
	for i, post := range posts {
		items[i] = postItem{post: post}
	}
	s.list.SetItems(items)
}

// Filtering reports whether the list is taking filter input
func (s *PostSelector) Filtering() bool {
	return s.list.FilterState() == list.Filtering
}

// Update handles tea messages and updates the component
func (s *PostSelector) Update(msg tea.Msg) (*PostSelector, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" && !s.Filtering() {
		if item, ok := s.list.SelectedItem().(postItem); ok {
			id := item.post.ID
			return s, func() tea.Msg {
				return PostSelectedMsg{PostID: id}
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// View renders the post selector
func (s *PostSelector) View() string {
	if len(s.list.Items()) == 0 {
		return s.config.Title + "\n\n" + s.config.Theme.MutedStyle().Render(i18n.Localize(noPostsMessage, nil))
	}
	return s.list.View()
}
