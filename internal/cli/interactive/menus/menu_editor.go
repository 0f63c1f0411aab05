package menus

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/models"
)

type editorMode int

const (
	editorLoading editorMode = iota
	editorBrowsing
	editorRenaming
	editorAddingItem
	editorConfirmingDelete
	editorEditingSlug
)

// MenuEditor edits one menu: its name and items. Changes stay local until
// saved; deleting asks for confirmation first.
type MenuEditor struct {
	menuID  int
	backend Backend
	theme   common.Theme
	keys    keyMap

	mode     editorMode
	menu     models.Menu
	original models.Menu
	cursor   int

	nameInput  textinput.Model
	labelInput textinput.Model
	urlInput   textinput.Model

	confirm *common.ConfirmationDialog
	slug    *common.SlugEditor
	status  string
	errText string
	width   int
	height  int
}

// NewMenuEditor creates an editor for menuID; the menu arrives with a
// MenuLoadedMsg or through SetMenu
func NewMenuEditor(menuID int, backend Backend, theme common.Theme) *MenuEditor {
	newInput := func(placeholder string) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholder
		input.CharLimit = 200
		input.Width = 40
		return input
	}

	return &MenuEditor{
		menuID:     menuID,
		backend:    backend,
		theme:      theme,
		keys:       defaultKeyMap(),
		mode:       editorLoading,
		nameInput:  newInput(i18n.Localize(namePlaceholderMessage, nil)),
		labelInput: newInput(i18n.Localize(itemLabelPlaceholderMessage, nil)),
		urlInput:   newInput(i18n.Localize(itemURLPlaceholderMessage, nil)),
	}
}

// MenuID returns the menu being edited
func (e *MenuEditor) MenuID() int {
	return e.menuID
}

// Menu returns the working copy of the menu
func (e *MenuEditor) Menu() models.Menu {
	return e.menu
}

// SetMenu installs a loaded menu as both the working copy and the baseline
func (e *MenuEditor) SetMenu(menu *models.Menu) {
	e.menu = cloneMenu(*menu)
	e.original = cloneMenu(*menu)
	e.cursor = 0
	e.mode = editorBrowsing
}

// Loaded reports whether the menu has arrived
func (e *MenuEditor) Loaded() bool {
	return e.mode != editorLoading
}

// Capturing reports whether the editor consumes every key, because an input
// or the delete confirmation is active
func (e *MenuEditor) Capturing() bool {
	switch e.mode {
	case editorRenaming, editorAddingItem, editorConfirmingDelete, editorEditingSlug:
		return true
	}
	return false
}

// IsDirty reports unsaved changes
func (e *MenuEditor) IsDirty() bool {
	if e.menu.Name != e.original.Name || e.menu.Slug != e.original.Slug || len(e.menu.Items) != len(e.original.Items) {
		return true
	}
	for i := range e.menu.Items {
		if e.menu.Items[i] != e.original.Items[i] {
			return true
		}
	}
	return false
}

// SetSize sets the dimensions of the editor
func (e *MenuEditor) SetSize(width, height int) {
	e.width = width
	e.height = height
	if width > 8 {
		e.nameInput.Width = width - 8
		e.labelInput.Width = width - 8
		e.urlInput.Width = width - 8
	}
}

// Update handles tea messages and updates the component
func (e *MenuEditor) Update(msg tea.Msg) (*MenuEditor, tea.Cmd) {
	switch msg := msg.(type) {
	case interactive.MenuLoadedMsg:
		if msg.Menu != nil && msg.Menu.ID != e.menuID {
			return e, nil
		}
		if msg.Err != nil {
			e.errText = msg.Err.Error()
			return e, nil
		}
		e.SetMenu(msg.Menu)
		return e, nil

	case interactive.MenuSavedMsg:
		if msg.Err != nil {
			e.errText = localizeError(saveFailedMessage, msg.Err)
			return e, nil
		}
		if msg.Menu.ID == e.menuID {
			e.SetMenu(msg.Menu)
			e.errText = ""
			e.status = i18n.Localize(savedMessage, nil)
		}
		return e, nil

	case interactive.MenuDeletedMsg:
		if msg.MenuID == e.menuID && msg.Err != nil {
			e.errText = localizeError(deleteFailedMessage, msg.Err)
		}
		return e, nil

	case interactive.SlugCopiedMsg:
		data := map[string]interface{}{"Slug": msg.Slug}
		if msg.Err != nil {
			e.errText = i18n.Localize(slugCopyFailedMessage, data)
		} else {
			e.status = i18n.Localize(slugCopiedMessage, data)
		}
		return e, nil

	case common.ConfirmationAcceptedMsg:
		if e.mode != editorConfirmingDelete {
			return e, nil
		}
		e.mode = editorBrowsing
		e.confirm = nil
		return e, e.backend.DeleteMenuCmd(msg.TargetID)

	case common.SlugEditorCompleteMsg:
		if e.mode == editorEditingSlug {
			e.menu.Slug = msg.Slug
			e.mode = editorBrowsing
			e.slug = nil
		}
		return e, nil

	case common.SlugEditorCancelMsg:
		if e.mode == editorEditingSlug {
			e.mode = editorBrowsing
			e.slug = nil
		}
		return e, nil

	case common.ConfirmationCancelledMsg:
		if e.mode == editorConfirmingDelete {
			e.mode = editorBrowsing
			e.confirm = nil
		}
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e, nil
}

func (e *MenuEditor) handleKey(msg tea.KeyMsg) (*MenuEditor, tea.Cmd) {
	switch e.mode {
	case editorConfirmingDelete:
		_, cmd := e.confirm.Update(msg)
		return e, cmd
	case editorEditingSlug:
		_, cmd := e.slug.Update(msg)
		return e, cmd
	case editorRenaming:
		return e.updateRenaming(msg)
	case editorAddingItem:
		return e.updateAddingItem(msg)
	case editorBrowsing:
		return e.updateBrowsing(msg)
	}
	return e, nil
}

func (e *MenuEditor) updateBrowsing(msg tea.KeyMsg) (*MenuEditor, tea.Cmd) {
	e.status = ""
	switch {
	case key.Matches(msg, e.keys.Up):
		if e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(msg, e.keys.Down):
		if e.cursor < len(e.menu.Items)-1 {
			e.cursor++
		}
	case key.Matches(msg, e.keys.Rename):
		e.mode = editorRenaming
		e.errText = ""
		e.nameInput.SetValue(e.menu.Name)
		e.nameInput.CursorEnd()
		return e, e.nameInput.Focus()
	case key.Matches(msg, e.keys.AddItem):
		e.mode = editorAddingItem
		e.errText = ""
		e.labelInput.SetValue("")
		e.urlInput.SetValue("")
		e.urlInput.Blur()
		return e, e.labelInput.Focus()
	case key.Matches(msg, e.keys.Remove):
		if len(e.menu.Items) == 0 {
			return e, nil
		}
		e.menu.Items = append(e.menu.Items[:e.cursor:e.cursor], e.menu.Items[e.cursor+1:]...)
		if e.cursor >= len(e.menu.Items) && e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(msg, e.keys.Save):
		e.errText = ""
		return e, e.backend.SaveMenuCmd(cloneMenu(e.menu))
	case key.Matches(msg, e.keys.CopySlug):
		return e, e.backend.CopySlugCmd(e.menu.Slug)
	case key.Matches(msg, e.keys.EditSlug):
		e.mode = editorEditingSlug
		e.slug = common.NewSlugEditor(common.SlugEditorConfig{
			Title:       i18n.Localize(slugTitleMessage, nil),
			MenuName:    e.menu.Name,
			InitialSlug: e.menu.Slug,
			Theme:       e.theme,
		})
		return e, e.slug.Init()
	case key.Matches(msg, e.keys.Delete):
		e.mode = editorConfirmingDelete
		e.confirm = common.NewConfirmationDialog(common.ConfirmationDialogConfig{
			Title:    i18n.Localize(deleteTitleMessage, nil),
			Message:  i18n.Localize(deleteConfirmMessage, map[string]interface{}{"Name": e.menu.Name}),
			TargetID: e.menuID,
			Theme:    e.theme,
		})
	}
	return e, nil
}

func (e *MenuEditor) updateRenaming(msg tea.KeyMsg) (*MenuEditor, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		e.mode = editorBrowsing
		e.nameInput.Blur()
		return e, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(e.nameInput.Value())
		if name == "" {
			e.errText = i18n.Localize(nameEmptyMessage, nil)
			return e, nil
		}
		e.menu.Name = name
		e.errText = ""
		e.mode = editorBrowsing
		e.nameInput.Blur()
		return e, nil
	}

	var cmd tea.Cmd
	e.nameInput, cmd = e.nameInput.Update(msg)
	return e, cmd
}

func (e *MenuEditor) updateAddingItem(msg tea.KeyMsg) (*MenuEditor, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		e.mode = editorBrowsing
		e.labelInput.Blur()
		e.urlInput.Blur()
		return e, nil
	case tea.KeyTab, tea.KeyShiftTab:
		if e.labelInput.Focused() {
			e.labelInput.Blur()
			return e, e.urlInput.Focus()
		}
		e.urlInput.Blur()
		return e, e.labelInput.Focus()
	case tea.KeyEnter:
		if e.labelInput.Focused() {
			e.labelInput.Blur()
			return e, e.urlInput.Focus()
		}
		label := strings.TrimSpace(e.labelInput.Value())
		url := strings.TrimSpace(e.urlInput.Value())
		if label == "" || url == "" {
			e.errText = i18n.Localize(itemRequiredMessage, nil)
			return e, nil
		}
		e.menu.Items = append(e.menu.Items, models.MenuItem{
			ClientID: uuid.New().String(),
			Label:    label,
			URL:      url,
		})
		e.cursor = len(e.menu.Items) - 1
		e.errText = ""
		e.mode = editorBrowsing
		e.urlInput.Blur()
		return e, nil
	}

	var cmd tea.Cmd
	if e.labelInput.Focused() {
		e.labelInput, cmd = e.labelInput.Update(msg)
	} else {
		e.urlInput, cmd = e.urlInput.Update(msg)
	}
	return e, cmd
}

// View renders the editor
func (e *MenuEditor) View() string {
	if e.mode == editorLoading {
		if e.errText != "" {
			return e.theme.ErrorStyle().Render(e.errText)
		}
		return e.theme.MutedStyle().Render(i18n.Localize(loadingMessage, nil))
	}

	var sb strings.Builder

	title := e.menu.Name
	if e.IsDirty() {
		title += " " + e.theme.MutedStyle().Render("("+i18n.Localize(unsavedMessage, nil)+")")
	}
	sb.WriteString(e.theme.HighlightStyle().Render(title) + "\n")
	sb.WriteString(e.theme.MutedStyle().Render("slug: "+e.menu.Slug) + "\n\n")

	if e.mode == editorRenaming {
		sb.WriteString(i18n.Localize(nameLabelMessage, nil) + "\n")
		sb.WriteString(e.nameInput.View() + "\n\n")
	}

	if len(e.menu.Items) == 0 {
		sb.WriteString(e.theme.MutedStyle().Render(i18n.Localize(noItemsMessage, nil)) + "\n")
	}
	itemWidth := e.width - 6
	for i, item := range e.menu.Items {
		line := common.TruncateToWidth(fmt.Sprintf("%s → %s", item.Label, item.URL), itemWidth)
		if i == e.cursor && e.mode == editorBrowsing {
			sb.WriteString(e.theme.HighlightStyle().Render("> "+line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	if e.mode == editorAddingItem {
		sb.WriteString("\n" + e.labelInput.View() + "\n")
		sb.WriteString(e.urlInput.View() + "\n")
	}

	if e.errText != "" {
		sb.WriteString("\n" + e.theme.ErrorStyle().Render(e.errText) + "\n")
	}
	if e.status != "" {
		sb.WriteString("\n" + e.theme.MutedStyle().Render(e.status) + "\n")
	}

	view := e.theme.CardStyle(true).Render(strings.TrimRight(sb.String(), "\n"))
	switch {
	case e.mode == editorConfirmingDelete && e.confirm != nil:
		return common.Overlay(e.confirm, view)
	case e.mode == editorEditingSlug && e.slug != nil:
		return common.Overlay(e.slug, view)
	}
	return view
}

func cloneMenu(menu models.Menu) models.Menu {
	items := make([]models.MenuItem, len(menu.Items))
	copy(items, menu.Items)
	menu.Items = items
	return menu
}
