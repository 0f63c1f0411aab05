package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/storage"
)

// MaxMenuNameLength is the longest menu name accepted, in characters
const MaxMenuNameLength = 100

// MenuService interface defines operations for managing navigation menus
type MenuService interface {
	ListMenus() ([]*models.Menu, error)
	ListMenuSummaries() ([]models.MenuSummary, error)
	GetMenu(id int) (*models.Menu, error)
	CreateMenu(ctx context.Context, name string) (*models.Menu, error)
	RenameMenu(id int, name string) (*models.Menu, error)
	SaveMenu(menu *models.Menu) error
	DeleteMenu(id int) error

	// Item operations
	AddMenuItem(menuID int, label, url string) (*models.MenuItem, error)
	RemoveMenuItem(menuID int, clientID string) error
}

// menuService implements the MenuService interface
type menuService struct {
	storage storage.Storage
	slugger LLMService
}

// NewMenuService creates a new MenuService instance
func NewMenuService(storage storage.Storage, slugger LLMService) MenuService {
	if slugger == nil {
		slugger = localSlugService{}
	}
	return &menuService{
		storage: storage,
		slugger: slugger,
	}
}

// ListMenus retrieves all menus
func (s *menuService) ListMenus() ([]*models.Menu, error) {
	return s.storage.ListMenus()
}

// ListMenuSummaries returns the ID and name of every menu in storage order
func (s *menuService) ListMenuSummaries() ([]models.MenuSummary, error) {
	menus, err := s.storage.ListMenus()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.MenuSummary, 0, len(menus))
	for _, menu := range menus {
		summaries = append(summaries, menu.Summary())
	}
	return summaries, nil
}

// GetMenu retrieves a menu by ID
func (s *menuService) GetMenu(id int) (*models.Menu, error) {
	if id <= 0 {
		return nil, models.NewNavError(models.ErrTypeValidation, "menu ID must be positive")
	}
	return s.storage.GetMenu(id)
}

// CreateMenu creates an empty menu with a unique name
func (s *menuService) CreateMenu(ctx context.Context, name string) (*models.Menu, error) {
	name = strings.TrimSpace(name)
	if err := s.validateName(name, 0); err != nil {
		return nil, err
	}

	slug, err := s.slugger.GenerateSlug(ctx, name)
	if err != nil {
		// A failed model call must not block menu creation
		slug = SanitizeSlug(name)
	}

	menu := &models.Menu{
		Name:  name,
		Slug:  slug,
		Items: []models.MenuItem{},
	}
	if err := s.storage.CreateMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// RenameMenu changes a menu's name, keeping names unique
func (s *menuService) RenameMenu(id int, name string) (*models.Menu, error) {
	menu, err := s.GetMenu(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if err := s.validateName(name, id); err != nil {
		return nil, err
	}

	menu.Name = name
	if err := s.storage.UpdateMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// SaveMenu persists a menu edited in memory
func (s *menuService) SaveMenu(menu *models.Menu) error {
	if menu == nil {
		return models.NewNavError(models.ErrTypeValidation, "menu cannot be nil")
	}
	menu.Name = strings.TrimSpace(menu.Name)
	if err := s.validateName(menu.Name, menu.ID); err != nil {
		return err
	}
	for _, item := range menu.Items {
		if err := validateItem(item.Label, item.URL); err != nil {
			return err
		}
	}
	return s.storage.UpdateMenu(menu)
}

// DeleteMenu deletes a menu
func (s *menuService) DeleteMenu(id int) error {
	if id <= 0 {
		return models.NewNavError(models.ErrTypeValidation, "menu ID must be positive")
	}
	return s.storage.DeleteMenu(id)
}

// AddMenuItem appends a link to a menu
func (s *menuService) AddMenuItem(menuID int, label, url string) (*models.MenuItem, error) {
	label = strings.TrimSpace(label)
	url = strings.TrimSpace(url)
	if err := validateItem(label, url); err != nil {
		return nil, err
	}

	menu, err := s.GetMenu(menuID)
	if err != nil {
		return nil, err
	}

	item := models.MenuItem{
		ClientID: uuid.New().String(),
		Label:    label,
		URL:      url,
	}
	menu.Items = append(menu.Items, item)

	if err := s.storage.UpdateMenu(menu); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveMenuItem removes the item with the given client ID
func (s *menuService) RemoveMenuItem(menuID int, clientID string) error {
	if clientID == "" {
		return models.NewNavError(models.ErrTypeValidation, "item client ID cannot be empty")
	}

	menu, err := s.GetMenu(menuID)
	if err != nil {
		return err
	}

	kept := menu.Items[:0]
	for _, item := range menu.Items {
		if item.ClientID != clientID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(menu.Items) {
		return models.NewNavError(models.ErrTypeNotFound, fmt.Sprintf("item %s not found in menu %d", clientID, menuID))
	}
	menu.Items = kept

	return s.storage.UpdateMenu(menu)
}

// validateName checks a menu name; exceptID is the menu being renamed
func (s *menuService) validateName(name string, exceptID int) error {
	if name == "" {
		return models.NewNavError(models.ErrTypeValidation, "menu name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxMenuNameLength {
		return models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("menu name cannot exceed %d characters", MaxMenuNameLength))
	}

	menus, err := s.storage.ListMenus()
	if err != nil {
		return err
	}
	for _, menu := range menus {
		if menu.ID != exceptID && strings.EqualFold(menu.Name, name) {
			return &models.NavError{
				Type:    models.ErrTypeConflict,
				Message: "a menu with that name already exists",
				Details: name,
			}
		}
	}
	return nil
}

func validateItem(label, url string) error {
	if label == "" {
		return models.NewNavError(models.ErrTypeValidation, "item label cannot be empty")
	}
	if url == "" {
		return models.NewNavError(models.ErrTypeValidation, "item URL cannot be empty")
	}
	return nil
}
