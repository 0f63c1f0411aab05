package common

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/zamm-dev/navedit/internal/models"
)

// MenuSelectedMsg is sent when a menu option is chosen
type MenuSelectedMsg struct {
	MenuID int
}

// MenuSelectorConfig configures the behavior of the menu selector
type MenuSelectorConfig struct {
	Title string
	Theme Theme
	Zones *zone.Manager // optional, enables mouse selection
}

// menuDelegate handles rendering of menu options in the list
type menuDelegate struct {
	theme      Theme
	zones      *zone.Manager
	selectedID int
}

func (d *menuDelegate) Height() int                             { return 1 }
func (d *menuDelegate) Spacing() int                            { return 0 }
func (d *menuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d *menuDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	menu, ok := listItem.(models.MenuSummary)
	if !ok {
		return
	}

	str := TruncateToWidth(menu.Name, m.Width()-4)
	if menu.ID == d.selectedID {
		str += " ✓"
	}

	var line string
	if index == m.Index() {
		line = d.theme.HighlightStyle().Render("> " + str)
	} else {
		line = lipgloss.NewStyle().Render("  " + str)
	}

	if d.zones != nil {
		line = d.zones.Mark(menuOptionZone(menu.ID), line)
	}
	fmt.Fprint(w, line)
}

func menuOptionZone(id int) string {
	return fmt.Sprintf("menu-option-%d", id)
}

// TruncateToWidth shortens s to fit in width terminal cells
func TruncateToWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// MenuSelector is the select control listing the menus that can be edited
type MenuSelector struct {
	list     list.Model
	config   MenuSelectorConfig
	delegate *menuDelegate
	width    int
	height   int
}

// NewMenuSelector creates a new menu selector component
func NewMenuSelector(config MenuSelectorConfig) MenuSelector {
	delegate := &menuDelegate{theme: config.Theme, zones: config.Zones}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = config.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	// quitting belongs to the screen
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.Styles.Title = lipgloss.NewStyle().Bold(true)

	return MenuSelector{
		list:     l,
		config:   config,
		delegate: delegate,
	}
}

// SetSize sets the dimensions of the menu selector
func (s *MenuSelector) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.list.SetSize(width, height)
}

// SetMenus replaces the options and moves the cursor onto the selected menu
func (s *MenuSelector) SetMenus(menus []models.MenuSummary, selectedID int) {
	items := make([]list.Item, len(menus))
	cursor := 0
	for i, menu := range menus {
		items[i] = menu
		if menu.ID == selectedID {
			cursor = i
		}
	}
	s.list.SetItems(items)
	s.list.Select(cursor)
	s.delegate.selectedID = selectedID
}

// Highlighted returns the option under the cursor, if any
func (s *MenuSelector) Highlighted() (models.MenuSummary, bool) {
	if item := s.list.SelectedItem(); item != nil {
		if menu, ok := item.(models.MenuSummary); ok {
			return menu, true
		}
	}
	return models.MenuSummary{}, false
}

// Update handles tea messages and updates the component
func (s *MenuSelector) Update(msg tea.Msg) (*MenuSelector, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if menu, ok := s.Highlighted(); ok {
				return s, func() tea.Msg {
					return MenuSelectedMsg{MenuID: menu.ID}
				}
			}
			return s, nil
		}
	case tea.MouseMsg:
		if id, ok := s.clickedMenu(msg); ok {
			return s, func() tea.Msg {
				return MenuSelectedMsg{MenuID: id}
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *MenuSelector) clickedMenu(msg tea.MouseMsg) (int, bool) {
	if s.config.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return 0, false
	}
	for _, item := range s.list.Items() {
		menu, ok := item.(models.MenuSummary)
		if !ok {
			continue
		}
		if z := s.config.Zones.Get(menuOptionZone(menu.ID)); z != nil && z.InBounds(msg) {
			return menu.ID, true
		}
	}
	return 0, false
}

// View renders the menu selector
func (s *MenuSelector) View() string {
	return s.list.View()
}
