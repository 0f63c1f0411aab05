package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/zamm-dev/navedit/internal/models"
)

// FileStorage implements file-based storage: one JSON file per menu and per
// post, plus metadata.json holding the menu ID counter.
type FileStorage struct {
	baseDir string
	mu      sync.Mutex
}

// storeMetadata is the content of metadata.json
type storeMetadata struct {
	NextMenuID int `json:"next_menu_id"`
}

// NewFileStorage creates a new file-based storage instance
func NewFileStorage(baseDir string) *FileStorage {
	return &FileStorage{
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory path
func (fs *FileStorage) BaseDir() string {
	return fs.baseDir
}

// InitializeStorage creates the necessary directory structure
func (fs *FileStorage) InitializeStorage() error {
	dirs := []string{
		fs.baseDir,
		filepath.Join(fs.baseDir, "menus"),
		filepath.Join(fs.baseDir, "posts"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return models.NewNavErrorWithCause(models.ErrTypeStorage, fmt.Sprintf("failed to create directory %s", dir), err)
		}
	}

	path := fs.metadataPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := fs.writeJSONFile(path, storeMetadata{NextMenuID: 1}); err != nil {
			return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to write metadata", err)
		}
	}

	return nil
}

// Close is a no-op for file storage
func (fs *FileStorage) Close() error {
	return nil
}

// Menu operations

// CreateMenu stores a new menu under the next free ID
func (fs *FileStorage) CreateMenu(menu *models.Menu) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.InitializeStorage(); err != nil {
		return err
	}

	var meta storeMetadata
	if err := fs.readJSONFile(fs.metadataPath(), &meta); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to read metadata", err)
	}
	if meta.NextMenuID < 1 {
		meta.NextMenuID = 1
	}

	menu.ID = meta.NextMenuID
	if err := fs.writeJSONFile(fs.menuPath(menu.ID), menu); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to write menu", err)
	}

	meta.NextMenuID++
	if err := fs.writeJSONFile(fs.metadataPath(), meta); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to write metadata", err)
	}
	return nil
}

// GetMenu retrieves a menu by ID
func (fs *FileStorage) GetMenu(id int) (*models.Menu, error) {
	var menu models.Menu
	if err := fs.readJSONFile(fs.menuPath(id), &menu); err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewNavError(models.ErrTypeNotFound, fmt.Sprintf("menu %d not found", id))
		}
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to read menu", err)
	}
	return &menu, nil
}

// ListMenus returns all menus ordered by ID
func (fs *FileStorage) ListMenus() ([]*models.Menu, error) {
	ids, err := fs.listIDs("menus")
	if err != nil {
		return nil, err
	}

	var menus []*models.Menu
	for _, name := range ids {
		id, err := strconv.Atoi(name)
		if err != nil {
			continue // Skip foreign files
		}
		menu, err := fs.GetMenu(id)
		if err != nil {
			continue // Skip invalid files
		}
		menus = append(menus, menu)
	}

	sort.Slice(menus, func(i, j int) bool {
		return menus[i].ID < menus[j].ID
	})

	return menus, nil
}

// UpdateMenu overwrites an existing menu
func (fs *FileStorage) UpdateMenu(menu *models.Menu) error {
	if _, err := fs.GetMenu(menu.ID); err != nil {
		return err
	}
	if err := fs.writeJSONFile(fs.menuPath(menu.ID), menu); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to write menu", err)
	}
	return nil
}

// DeleteMenu deletes a menu
func (fs *FileStorage) DeleteMenu(id int) error {
	return fs.removeFile(fs.menuPath(id), fmt.Sprintf("menu %d not found", id))
}

// Post operations

// CreatePost stores a new post
func (fs *FileStorage) CreatePost(post *models.Post) error {
	if post.ID == "" {
		return models.NewNavError(models.ErrTypeValidation, "post ID cannot be empty")
	}
	if err := fs.InitializeStorage(); err != nil {
		return err
	}
	path := fs.postPath(post.ID)
	if _, err := os.Stat(path); err == nil {
		return models.NewNavError(models.ErrTypeConflict, fmt.Sprintf("post %s already exists", post.ID))
	}
	if err := fs.writeJSONFile(path, post); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to write post", err)
	}
	return nil
}

// GetPost retrieves a post by ID
func (fs *FileStorage) GetPost(id string) (*models.Post, error) {
	var post models.Post
	if err := fs.readJSONFile(fs.postPath(id), &post); err != nil {
		if os.IsNotExist(err) {
			return nil, models.NewNavError(models.ErrTypeNotFound, fmt.Sprintf("post %s not found", id))
		}
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to read post", err)
	}
	return &post, nil
}

// ListPosts returns all posts ordered by ID
func (fs *FileStorage) ListPosts() ([]*models.Post, error) {
	ids, err := fs.listIDs("posts")
	if err != nil {
		return nil, err
	}

	var posts []*models.Post
	for _, id := range ids {
		post, err := fs.GetPost(id)
		if err != nil {
			continue // Skip invalid files
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// UpdatePost overwrites an existing post
func (fs *FileStorage) UpdatePost(post *models.Post) error {
	if _, err := fs.GetPost(post.ID); err != nil {
		return err
	}
	if err := fs.writeJSONFile(fs.postPath(post.ID), post); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to write post", err)
	}
	return nil
}

// DeletePost deletes a post
func (fs *FileStorage) DeletePost(id string) error {
	return fs.removeFile(fs.postPath(id), fmt.Sprintf("post %s not found", id))
}

func (fs *FileStorage) metadataPath() string {
	return filepath.Join(fs.baseDir, "metadata.json")
}

func (fs *FileStorage) menuPath(id int) string {
	return filepath.Join(fs.baseDir, "menus", strconv.Itoa(id)+".json")
}

func (fs *FileStorage) postPath(id string) string {
	return filepath.Join(fs.baseDir, "posts", id+".json")
}

// listIDs returns the sorted file stems of the JSON files in a subdirectory.
// A missing directory means nothing has been stored yet.
func (fs *FileStorage) listIDs(subdir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(fs.baseDir, subdir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, fmt.Sprintf("failed to list %s", subdir), err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (fs *FileStorage) removeFile(path, notFound string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.NewNavError(models.ErrTypeNotFound, notFound)
	}
	if err := os.Remove(path); err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to delete file", err)
	}
	return nil
}

// readJSONFile reads JSON data from a file
func (fs *FileStorage) readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

// writeJSONFile writes JSON data to a file
func (fs *FileStorage) writeJSONFile(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
