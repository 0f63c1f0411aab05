package interactive

import (
	"github.com/zamm-dev/navedit/internal/services"
	"github.com/zamm-dev/navedit/internal/store"
)

// AppAdapter exposes the services and editor store to the coordinator
type AppAdapter struct {
	menuService services.MenuService
	postService services.PostService
	store       *store.Store
}

func NewAppAdapter(menuService services.MenuService, postService services.PostService, editorStore *store.Store) *AppAdapter {
	return &AppAdapter{
		menuService: menuService,
		postService: postService,
		store:       editorStore,
	}
}

func (a *AppAdapter) MenuService() services.MenuService {
	return a.menuService
}

func (a *AppAdapter) PostService() services.PostService {
	return a.postService
}

func (a *AppAdapter) Store() *store.Store {
	return a.store
}
