package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/zamm-dev/navedit/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db   *sql.DB
	path string
}

// NewSQLiteStorage opens (or creates) the database and brings its schema up to date
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to open database", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to connect to database", err)
	}

	storage := &SQLiteStorage{
		db:   db,
		path: dbPath,
	}

	if err := storage.InitializeStorage(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// InitializeStorage applies pending schema migrations
func (s *SQLiteStorage) InitializeStorage() error {
	return runMigrations(s.db)
}

// Close closes the database
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// CreateMenu inserts a menu and stores the generated ID on it
func (s *SQLiteStorage) CreateMenu(menu *models.Menu) error {
	itemsJSON, err := marshalItems(menu.Items)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`INSERT INTO menus (name, slug, items) VALUES (?, ?, ?)`,
		menu.Name, menu.Slug, itemsJSON)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.NewNavError(models.ErrTypeConflict, fmt.Sprintf("menu %q already exists", menu.Name))
		}
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to create menu", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to read menu ID", err)
	}
	menu.ID = int(id)
	return nil
}

// GetMenu retrieves a menu by ID
func (s *SQLiteStorage) GetMenu(id int) (*models.Menu, error) {
	row := s.db.QueryRow(`SELECT id, name, slug, items FROM menus WHERE id = ?`, id)
	menu, err := scanMenu(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNavError(models.ErrTypeNotFound, fmt.Sprintf("menu %d not found", id))
	}
	if err != nil {
		return nil, err
	}
	return menu, nil
}

// ListMenus returns all menus ordered by ID
func (s *SQLiteStorage) ListMenus() ([]*models.Menu, error) {
	rows, err := s.db.Query(`SELECT id, name, slug, items FROM menus ORDER BY id`)
	if err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to query menus", err)
	}
	defer rows.Close()

	var menus []*models.Menu
	for rows.Next() {
		menu, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to iterate menus", err)
	}
	return menus, nil
}

// UpdateMenu updates a menu
func (s *SQLiteStorage) UpdateMenu(menu *models.Menu) error {
	itemsJSON, err := marshalItems(menu.Items)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`UPDATE menus SET name = ?, slug = ?, items = ? WHERE id = ?`,
		menu.Name, menu.Slug, itemsJSON, menu.ID)
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to update menu", err)
	}
	return requireAffected(result, fmt.Sprintf("menu %d not found", menu.ID))
}

// DeleteMenu deletes a menu
func (s *SQLiteStorage) DeleteMenu(id int) error {
	result, err := s.db.Exec(`DELETE FROM menus WHERE id = ?`, id)
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to delete menu", err)
	}
	return requireAffected(result, fmt.Sprintf("menu %d not found", id))
}

// CreatePost inserts a post
func (s *SQLiteStorage) CreatePost(post *models.Post) error {
	if post.ID == "" {
		return models.NewNavError(models.ErrTypeValidation, "post ID cannot be empty")
	}

	_, err := s.db.Exec(`INSERT INTO posts (id, title, content, updated_at) VALUES (?, ?, ?, ?)`,
		post.ID, post.Title, post.Content, post.UpdatedAt.UnixNano())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return models.NewNavError(models.ErrTypeConflict, fmt.Sprintf("post %s already exists", post.ID))
		}
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to create post", err)
	}
	return nil
}

// GetPost retrieves a post by ID
func (s *SQLiteStorage) GetPost(id string) (*models.Post, error) {
	row := s.db.QueryRow(`SELECT id, title, content, updated_at FROM posts WHERE id = ?`, id)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewNavError(models.ErrTypeNotFound, fmt.Sprintf("post %s not found", id))
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts ordered by ID
func (s *SQLiteStorage) ListPosts() ([]*models.Post, error) {
	rows, err := s.db.Query(`SELECT id, title, content, updated_at FROM posts ORDER BY id`)
	if err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to query posts", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to iterate posts", err)
	}
	return posts, nil
}

// UpdatePost updates a post
func (s *SQLiteStorage) UpdatePost(post *models.Post) error {
	result, err := s.db.Exec(`UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		post.Title, post.Content, post.UpdatedAt.UnixNano(), post.ID)
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to update post", err)
	}
	return requireAffected(result, fmt.Sprintf("post %s not found", post.ID))
}

// DeletePost deletes a post
func (s *SQLiteStorage) DeletePost(id string) error {
	result, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to delete post", err)
	}
	return requireAffected(result, fmt.Sprintf("post %s not found", id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenu(row rowScanner) (*models.Menu, error) {
	var menu models.Menu
	var itemsJSON string
	if err := row.Scan(&menu.ID, &menu.Name, &menu.Slug, &itemsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to scan menu", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &menu.Items); err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to unmarshal menu items", err)
	}
	return &menu, nil
}

// scanPost reads a post row; updated_at is stored as Unix nanoseconds
func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var updatedAt int64
	if err := row.Scan(&post.ID, &post.Title, &post.Content, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to scan post", err)
	}
	post.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &post, nil
}

func marshalItems(items []models.MenuItem) (string, error) {
	if items == nil {
		items = []models.MenuItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to marshal menu items", err)
	}
	return string(data), nil
}

func requireAffected(result sql.Result, notFound string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return models.NewNavErrorWithCause(models.ErrTypeStorage, "failed to read affected rows", err)
	}
	if n == 0 {
		return models.NewNavError(models.ErrTypeNotFound, notFound)
	}
	return nil
}

// sqlitePath resolves the database file for a storage directory. A path that
// already names a .db file is used as is.
func sqlitePath(path string) string {
	if strings.HasSuffix(path, ".db") {
		return path
	}
	return filepath.Join(path, SQLiteFileName)
}
