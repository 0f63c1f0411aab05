// Package selection decides which mode the menus editor presents (loading,
// create first menu, create another menu, edit selected menu) from the menus
// the store has resolved and the menu the user has selected.
//
// State is a value: every operation returns the next State and leaves the
// receiver untouched, so the owning bubbletea model can simply reassign it
// inside Update.
package selection

import (
	"fmt"

	"github.com/zamm-dev/navedit/internal/models"
)

// Phase tracks whether the local menu snapshot has been taken
type Phase int

const (
	// Unloaded means no non-empty menu list has been observed yet
	Unloaded Phase = iota
	// Loaded means the snapshot was taken; later observations are ignored
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Mode is the UI mode derived from a State
type Mode int

const (
	ModeLoading Mode = iota
	ModeCreatingFirstMenu
	ModeCreatingAdditionalMenu
	ModeEditingSelectedMenu
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeCreatingFirstMenu:
		return "creating-first-menu"
	case ModeCreatingAdditionalMenu:
		return "creating-additional-menu"
	case ModeEditingSelectedMenu:
		return "editing-selected-menu"
	default:
		return "unknown"
	}
}

// State is the selection state of the menus editor. The zero value is an
// unloaded state with no menus and no selection.
type State struct {
	phase        Phase
	resolved     bool
	menus        []models.MenuSummary
	selectedID   int
	hasSelection bool
}

// New returns the initial, unloaded state
func New() State {
	return State{}
}

// Observe feeds the store's readiness flag and current menu list into the
// state. The first time menus is non-empty the list is copied and its first
// element selected, moving the state from Unloaded to Loaded. Once Loaded,
// only the readiness flag is updated.
func (s State) Observe(resolved bool, menus []models.MenuSummary) State {
	s.resolved = resolved
	if s.phase == Loaded || len(menus) == 0 {
		return s
	}

	s.phase = Loaded
	s.menus = cloneMenus(menus)
	s.selectedID = s.menus[0].ID
	s.hasSelection = true
	return s
}

// SelectMenu selects the menu with the given ID. IDs that are not in the
// local collection are rejected and the state is returned unchanged.
func (s State) SelectMenu(id int) (State, error) {
	if s.indexOf(id) < 0 {
		return s, models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("menu %d is not in the current menu list", id))
	}
	s.selectedID = id
	s.hasSelection = true
	return s, nil
}

// StartCreatingNewMenu clears the selection
func (s State) StartCreatingNewMenu() State {
	s.selectedID = 0
	s.hasSelection = false
	return s
}

// CanCancelCreation reports whether there is a menu to fall back to
func (s State) CanCancelCreation() bool {
	return s.HasMenus()
}

// CancelCreation leaves creation mode by selecting the first local menu.
// It fails while no menus exist: the first menu must be created.
func (s State) CancelCreation() (State, error) {
	if !s.CanCancelCreation() {
		return s, models.NewNavError(models.ErrTypeValidation, "there is no menu to return to")
	}
	s.selectedID = s.menus[0].ID
	s.hasSelection = true
	return s, nil
}

// MenuDeleted removes every local entry with deletedID. A selection that
// survives the removal is kept; otherwise the first remaining menu is
// selected, or the selection is cleared when none remain.
func (s State) MenuDeleted(deletedID int) State {
	remaining := make([]models.MenuSummary, 0, len(s.menus))
	for _, menu := range s.menus {
		if menu.ID != deletedID {
			remaining = append(remaining, menu)
		}
	}
	s.menus = remaining

	if s.hasSelection && s.indexOf(s.selectedID) >= 0 {
		return s
	}
	if len(remaining) > 0 {
		s.selectedID = remaining[0].ID
		s.hasSelection = true
	} else {
		s.selectedID = 0
		s.hasSelection = false
	}
	return s
}

// MenuAdded appends a menu created from this screen and selects it. An
// existing entry with the same ID is replaced instead.
func (s State) MenuAdded(menu models.MenuSummary) State {
	menus := cloneMenus(s.menus)
	if i := s.indexOf(menu.ID); i >= 0 {
		menus[i] = menu
	} else {
		menus = append(menus, menu)
	}
	s.menus = menus
	s.phase = Loaded
	s.selectedID = menu.ID
	s.hasSelection = true
	return s
}

// MenuRenamed updates the name of a local entry; unknown IDs are ignored
func (s State) MenuRenamed(menu models.MenuSummary) State {
	i := s.indexOf(menu.ID)
	if i < 0 {
		return s
	}
	menus := cloneMenus(s.menus)
	menus[i] = menu
	s.menus = menus
	return s
}

// Phase reports whether the menu snapshot was taken
func (s State) Phase() Phase {
	return s.phase
}

// Resolved reports the last readiness flag passed to Observe
func (s State) Resolved() bool {
	return s.resolved
}

// Menus returns a copy of the local menu collection
func (s State) Menus() []models.MenuSummary {
	return cloneMenus(s.menus)
}

// SelectedID returns the selected menu ID and whether one is selected
func (s State) SelectedID() (int, bool) {
	return s.selectedID, s.hasSelection
}

// SelectedMenu returns the selected menu summary, if any
func (s State) SelectedMenu() (models.MenuSummary, bool) {
	if !s.hasSelection {
		return models.MenuSummary{}, false
	}
	if i := s.indexOf(s.selectedID); i >= 0 {
		return s.menus[i], true
	}
	return models.MenuSummary{}, false
}

// HasMenus reports whether resolved menus exist locally
func (s State) HasMenus() bool {
	return s.resolved && len(s.menus) > 0
}

// IsCreatingFirstMenu reports whether the first menu must be created
func (s State) IsCreatingFirstMenu() bool {
	return !s.HasMenus()
}

// IsCreatingAdditionalMenu reports creation while other menus exist
func (s State) IsCreatingAdditionalMenu() bool {
	return s.HasMenus() && !s.hasSelection
}

// IsCreatingMenu reports either creation mode
func (s State) IsCreatingMenu() bool {
	return s.IsCreatingFirstMenu() || s.IsCreatingAdditionalMenu()
}

// HasSelectedMenu reports whether a menu is being edited
func (s State) HasSelectedMenu() bool {
	return s.HasMenus() && s.hasSelection
}

// Mode collapses the derived flags into the screen to present
func (s State) Mode() Mode {
	switch {
	case !s.resolved:
		return ModeLoading
	case s.IsCreatingFirstMenu():
		return ModeCreatingFirstMenu
	case s.IsCreatingAdditionalMenu():
		return ModeCreatingAdditionalMenu
	default:
		return ModeEditingSelectedMenu
	}
}

func (s State) indexOf(id int) int {
	for i, menu := range s.menus {
		if menu.ID == id {
			return i
		}
	}
	return -1
}

func cloneMenus(menus []models.MenuSummary) []models.MenuSummary {
	if menus == nil {
		return nil
	}
	out := make([]models.MenuSummary, len(menus))
	copy(out, menus)
	return out
}
