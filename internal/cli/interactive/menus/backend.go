// Package menus implements the menus editor screen: choosing which menu to
// edit, creating menus and editing the selected one.
package menus

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/navedit/internal/models"
)

// Source is the read side of the editor store used by the screen
type Source interface {
	GetMenus() []models.MenuSummary
	HasLoadedMenus() bool
}

// Backend runs the screen's blocking work
type Backend interface {
	ResolveMenusCmd() tea.Cmd
	CreateMenuCmd(name string) tea.Cmd
	LoadMenuCmd(id int) tea.Cmd
	SaveMenuCmd(menu models.Menu) tea.Cmd
	DeleteMenuCmd(id int) tea.Cmd
	CopySlugCmd(slug string) tea.Cmd
}
