// Package store holds the editor state that screens read from and write to:
// the resolved menu list and the post being edited with its pending edits.
package store

import (
	"sync"

	"github.com/zamm-dev/navedit/internal/models"
)

// MenuSource resolves the menu summaries shown by the menus editor
type MenuSource interface {
	ListMenuSummaries() ([]models.MenuSummary, error)
}

// PostSource loads and persists posts
type PostSource interface {
	GetPost(id string) (*models.Post, error)
	UpdatePost(id string, edits models.PostEdits) (*models.Post, error)
}

// Store is safe for concurrent use; commands resolve data on their own
// goroutines while views read it from the update loop.
type Store struct {
	mu sync.RWMutex

	menuSource MenuSource
	postSource PostSource

	menusResolved bool
	menus         []models.MenuSummary

	post  *models.Post
	edits models.PostEdits

}

// New creates a store backed by the given sources. Either may be nil when the
// screen using the store does not need it.
func New(menuSource MenuSource, postSource PostSource) *Store {
	return &Store{
		menuSource: menuSource,
		postSource: postSource,
	}
}

// ResolveMenus fetches the menu list. On failure the store stays unresolved.
func (s *Store) ResolveMenus() error {
	if s.menuSource == nil {
		return models.NewNavError(models.ErrTypeSystem, "no menu source configured")
	}

	menus, err := s.menuSource.ListMenuSummaries()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus = append([]models.MenuSummary(nil), menus...)
	s.menusResolved = true
	return nil
}

// GetMenus returns a copy of the resolved menus, nil before resolution
func (s *Store) GetMenus() []models.MenuSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.menus == nil {
		return nil
	}
	return append([]models.MenuSummary(nil), s.menus...)
}

// HasLoadedMenus reports whether the first menu resolution has completed
func (s *Store) HasLoadedMenus() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.menusResolved
}

// LoadPost makes the post with the given ID the edited post, discarding any
// pending edits
func (s *Store) LoadPost(id string) error {
	if s.postSource == nil {
		return models.NewNavError(models.ErrTypeSystem, "no post source configured")
	}

	post, err := s.postSource.GetPost(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.post = post
	s.edits = models.PostEdits{}
	return nil
}

// EditedPostID returns the ID of the loaded post, empty if none
func (s *Store) EditedPostID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.post == nil {
		return ""
	}
	return s.post.ID
}

// GetEditedPostAttribute returns the pending value of attr if it was edited,
// else the persisted one
func (s *Store) GetEditedPostAttribute(attr string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch attr {
	case models.PostAttrTitle:
		if s.edits.Title != nil {
			return *s.edits.Title
		}
		if s.post != nil {
			return s.post.Title
		}
	case models.PostAttrContent:
		if s.edits.Content != nil {
			return *s.edits.Content
		}
		if s.post != nil {
			return s.post.Content
		}
	}
	return ""
}

// EditPost records a partial edit on top of earlier ones
func (s *Store) EditPost(edits models.PostEdits) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edits = s.edits.Merge(edits)
}

// IsEditedPostDirty reports whether a pending edit differs from the
// persisted post
func (s *Store) IsEditedPostDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var persisted models.Post
	if s.post != nil {
		persisted = *s.post
	}
	if s.edits.Title != nil && *s.edits.Title != persisted.Title {
		return true
	}
	if s.edits.Content != nil && *s.edits.Content != persisted.Content {
		return true
	}
	return false
}

// SavePost persists the pending edits and clears them
func (s *Store) SavePost() (*models.Post, error) {
	s.mu.RLock()
	post := s.post
	edits := s.edits
	s.mu.RUnlock()

	if post == nil {
		return nil, models.NewNavError(models.ErrTypeValidation, "no post loaded")
	}
	if s.postSource == nil {
		return nil, models.NewNavError(models.ErrTypeSystem, "no post source configured")
	}

	saved, err := s.postSource.UpdatePost(post.ID, edits)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.post = saved
	// Keep edits made while the save was in flight
	s.edits = pendingSince(edits, s.edits)
	return saved, nil
}

// pendingSince drops the fields of current that were already saved
func pendingSince(saved, current models.PostEdits) models.PostEdits {
	var pending models.PostEdits
	if current.Title != nil && (saved.Title == nil || *saved.Title != *current.Title) {
		pending.Title = current.Title
	}
	if current.Content != nil && (saved.Content == nil || *saved.Content != *current.Content) {
		pending.Content = current.Content
	}
	return pending
}

// ClearSelectedBlock satisfies the header's selection clearer. Editing a
// post title involves no block list, so there is no selection to clear.
func (s *Store) ClearSelectedBlock() {}
