package storage

import (
	"fmt"

	"github.com/zamm-dev/navedit/internal/models"
)

// Storage defines the interface for all storage operations
type Storage interface {
	// Menu operations. CreateMenu assigns the next free ID.
	CreateMenu(menu *models.Menu) error
	GetMenu(id int) (*models.Menu, error)
	ListMenus() ([]*models.Menu, error)
	UpdateMenu(menu *models.Menu) error
	DeleteMenu(id int) error

	// Post operations
	CreatePost(post *models.Post) error
	GetPost(id string) (*models.Post, error)
	ListPosts() ([]*models.Post, error)
	UpdatePost(post *models.Post) error
	DeletePost(id string) error

	// Utility
	InitializeStorage() error
	Close() error
}

// Supported storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SQLiteFileName is the database file used inside the storage directory
const SQLiteFileName = "navedit.db"

// New opens the storage backend rooted at path
func New(backend, path string) (Storage, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStorage(path), nil
	case BackendSQLite:
		return NewSQLiteStorage(sqlitePath(path))
	default:
		return nil, models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("unknown storage backend: %s", backend))
	}
}
