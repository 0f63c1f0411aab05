package interactive

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/services"
	"github.com/zamm-dev/navedit/internal/store"
)

// slugTimeout bounds the model call made while creating a menu
const slugTimeout = 30 * time.Second

type AppInterface interface {
	MenuService() services.MenuService
	PostService() services.PostService
	Store() *store.Store
}

// Coordinator turns screen requests into commands that run off the update
// loop and report back with a message
type Coordinator struct {
	app       AppInterface
	clipboard func(string) error
}

func NewCoordinator(app AppInterface) *Coordinator {
	return &Coordinator{
		app:       app,
		clipboard: clipboard.WriteAll,
	}
}

// WithClipboard replaces the system clipboard, for terminals without one
func (c *Coordinator) WithClipboard(write func(string) error) *Coordinator {
	c.clipboard = write
	return c
}

func (c *Coordinator) ResolveMenusCmd() tea.Cmd {
	return func() tea.Msg {
		err := c.app.Store().ResolveMenus()
		if err != nil {
			logging.Error(logging.SubsystemStore, err, "failed to resolve menus")
		}
		return MenusResolvedMsg{Err: err}
	}
}

func (c *Coordinator) CreateMenuCmd(name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), slugTimeout)
		defer cancel()

		menu, err := c.app.MenuService().CreateMenu(ctx, name)
		if err != nil {
			return MenuCreateFailedMsg{Name: name, Err: err}
		}
		logging.Info(logging.SubsystemMenus, "created menu %d (%s)", menu.ID, menu.Name)
		return MenuCreatedMsg{Menu: menu}
	}
}

func (c *Coordinator) LoadMenuCmd(id int) tea.Cmd {
	return func() tea.Msg {
		menu, err := c.app.MenuService().GetMenu(id)
		return MenuLoadedMsg{Menu: menu, Err: err}
	}
}

func (c *Coordinator) SaveMenuCmd(menu models.Menu) tea.Cmd {
	return func() tea.Msg {
		menu.Items = append([]models.MenuItem(nil), menu.Items...)
		if err := c.app.MenuService().SaveMenu(&menu); err != nil {
			return MenuSavedMsg{Err: err}
		}
		logging.Info(logging.SubsystemMenus, "saved menu %d", menu.ID)
		return MenuSavedMsg{Menu: &menu}
	}
}

func (c *Coordinator) DeleteMenuCmd(id int) tea.Cmd {
	return func() tea.Msg {
		if err := c.app.MenuService().DeleteMenu(id); err != nil {
			return MenuDeletedMsg{MenuID: id, Err: err}
		}
		logging.Info(logging.SubsystemMenus, "deleted menu %d", id)
		return MenuDeletedMsg{MenuID: id}
	}
}

func (c *Coordinator) CopySlugCmd(slug string) tea.Cmd {
	return func() tea.Msg {
		if err := c.clipboard(slug); err != nil {
			logging.Warn(logging.SubsystemMenus, "clipboard unavailable: %v", err)
			return SlugCopiedMsg{Slug: slug, Err: err}
		}
		return SlugCopiedMsg{Slug: slug}
	}
}

func (c *Coordinator) LoadPostCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return PostLoadedMsg{Err: c.app.Store().LoadPost(id)}
	}
}

func (c *Coordinator) SavePostCmd() tea.Cmd {
	return func() tea.Msg {
		post, err := c.app.Store().SavePost()
		if err != nil {
			logging.Error(logging.SubsystemHeader, err, "failed to save post")
			return PostSavedMsg{Err: err}
		}
		return PostSavedMsg{Post: post}
	}
}

func (c *Coordinator) ListPostsCmd() tea.Cmd {
	return func() tea.Msg {
		if c.app.PostService() == nil {
			return PostsListedMsg{Err: models.NewNavError(models.ErrTypeSystem, "no post service configured")}
		}
		posts, err := c.app.PostService().ListPosts()
		return PostsListedMsg{Posts: posts, Err: err}
	}
}
