package interactive

import (
	"github.com/zamm-dev/navedit/internal/models"
)

// MenusResolvedMsg reports that the store finished resolving the menu list.
// Err is set when resolution failed and the store is still unresolved.
type MenusResolvedMsg struct {
	Err error
}

// MenuCreatedMsg carries a freshly persisted menu
type MenuCreatedMsg struct {
	Menu *models.Menu
}

// MenuCreateFailedMsg reports why a menu could not be created
type MenuCreateFailedMsg struct {
	Name string
	Err  error
}

// MenuLoadedMsg carries the full menu for the menu editor
type MenuLoadedMsg struct {
	Menu *models.Menu
	Err  error
}

// MenuSavedMsg carries the menu as persisted
type MenuSavedMsg struct {
	Menu *models.Menu
	Err  error
}

// MenuDeletedMsg reports a deleted menu
type MenuDeletedMsg struct {
	MenuID int
	Err    error
}

// SlugCopiedMsg reports the outcome of copying a slug to the clipboard
type SlugCopiedMsg struct {
	Slug string
	Err  error
}

// PostLoadedMsg reports that the edited post is available in the store
type PostLoadedMsg struct {
	Err error
}

// PostSavedMsg carries the post as persisted
type PostSavedMsg struct {
	Post *models.Post
	Err  error
}

// PostsListedMsg carries the posts offered by the post picker
type PostsListedMsg struct {
	Posts []*models.Post
	Err   error
}
