package menus

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/selection"
	"github.com/zamm-dev/navedit/internal/services"
	"github.com/zamm-dev/navedit/internal/storage"
	"github.com/zamm-dev/navedit/internal/store"
)

type fixture struct {
	menus     services.MenuService
	store     *store.Store
	model     *Model
	clipboard []string
}

func newFixture(t *testing.T, names ...string) *fixture {
	fs := storage.NewFileStorage(t.TempDir())
	require.NoError(t, fs.InitializeStorage())

	f := &fixture{menus: services.NewMenuService(fs, nil)}
	for _, name := range names {
		_, err := f.menus.CreateMenu(context.Background(), name)
		require.NoError(t, err)
	}

	f.store = store.New(f.menus, nil)
	coordinator := interactive.NewCoordinator(interactive.NewAppAdapter(f.menus, nil, f.store)).
		WithClipboard(func(s string) error {
			f.clipboard = append(f.clipboard, s)
			return nil
		})

	f.model = New(Config{
		Source:  f.store,
		Backend: coordinator,
		Theme:   common.DefaultTheme(),
	})
	return f
}

// start runs Init and feeds back everything it produces
func (f *fixture) start() {
	f.settle(f.model.Init())
}

// send delivers msg and then every message the resulting commands produce
func (f *fixture) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		_, cmd := f.model.Update(msg)
		f.settle(cmd)
	}
}

func (f *fixture) settle(cmd tea.Cmd) {
	queue := execCmd(cmd)
	for i := 0; len(queue) > 0 && i < 100; i++ {
		msg := queue[0]
		queue = queue[1:]
		if !relevant(msg) {
			continue
		}
		_, next := f.model.Update(msg)
		queue = append(queue, execCmd(next)...)
	}
}

func (f *fixture) typeText(s string) {
	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *fixture) press(keys ...tea.KeyType) {
	for _, k := range keys {
		f.send(tea.KeyMsg{Type: k})
	}
}

// execCmd runs cmd, skipping anything that waits on a timer
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, execCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func relevant(msg tea.Msg) bool {
	switch msg.(type) {
	case interactive.MenusResolvedMsg, interactive.MenuCreatedMsg, interactive.MenuCreateFailedMsg,
		interactive.MenuLoadedMsg, interactive.MenuSavedMsg, interactive.MenuDeletedMsg,
		interactive.SlugCopiedMsg, common.MenuSelectedMsg, common.ConfirmationAcceptedMsg,
		common.ConfirmationCancelledMsg, common.SlugEditorCompleteMsg, common.SlugEditorCancelMsg,
		CreateMenuRequestedMsg, CreatePanelCancelMsg:
		return true
	}
	return false
}

func selected(t *testing.T, m *Model) int {
	id, ok := m.State().SelectedID()
	require.True(t, ok, "expected a selected menu")
	return id
}

func TestShowsLoadingUntilMenusResolve(t *testing.T) {
	f := newFixture(t, "Main")

	assert.Equal(t, selection.ModeLoading, f.model.State().Mode())
	assert.Contains(t, f.model.View(), "Loading menus…")
}

func TestNoMenusStartsFirstMenuCreation(t *testing.T) {
	f := newFixture(t)
	f.start()

	state := f.model.State()
	assert.Equal(t, selection.ModeCreatingFirstMenu, state.Mode())
	assert.False(t, state.HasSelectedMenu())
	assert.Contains(t, f.model.View(), "Create your first menu below.")
	assert.NotContains(t, f.model.View(), "Esc to cancel")

	// The first menu cannot be skipped
	f.press(tea.KeyEsc)
	assert.Equal(t, selection.ModeCreatingFirstMenu, f.model.State().Mode())
}

func TestCreateFirstMenu(t *testing.T) {
	f := newFixture(t)
	f.start()

	f.typeText("Main")
	f.press(tea.KeyEnter)

	state := f.model.State()
	require.True(t, state.HasSelectedMenu())
	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Main"}}, state.Menus())
	assert.Equal(t, 1, selected(t, f.model))
	require.NotNil(t, f.model.editor)
	assert.True(t, f.model.editor.Loaded())
	assert.Contains(t, f.model.View(), "Main")

	stored, err := f.menus.ListMenuSummaries()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	f := newFixture(t)
	f.start()

	f.press(tea.KeyEnter)

	assert.Contains(t, f.model.View(), "Please enter a menu name.")
	assert.Equal(t, selection.ModeCreatingFirstMenu, f.model.State().Mode())
}

func TestFirstMenuIsSelectedAndLoaded(t *testing.T) {
	f := newFixture(t, "Main", "Footer")
	f.start()

	state := f.model.State()
	assert.Equal(t, selection.ModeEditingSelectedMenu, state.Mode())
	assert.Equal(t, 1, selected(t, f.model))
	require.NotNil(t, f.model.editor)
	assert.Equal(t, "Main", f.model.editor.Menu().Name)
	assert.Contains(t, f.model.View(), "Create a new menu")
}

func TestSelectAnotherMenu(t *testing.T) {
	f := newFixture(t, "Main", "Footer")
	f.start()

	f.press(tea.KeyDown, tea.KeyEnter)

	assert.Equal(t, 2, selected(t, f.model))
	require.NotNil(t, f.model.editor)
	assert.Equal(t, "Footer", f.model.editor.Menu().Name)
}

func TestSelectUnknownMenuIsIgnored(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.send(common.MenuSelectedMsg{MenuID: 99})

	assert.Equal(t, 1, selected(t, f.model))
}

func TestStartAndCancelCreation(t *testing.T) {
	f := newFixture(t, "Main", "Footer")
	f.start()
	f.press(tea.KeyDown, tea.KeyEnter)
	require.Equal(t, 2, selected(t, f.model))

	f.typeText("n")
	assert.Equal(t, selection.ModeCreatingAdditionalMenu, f.model.State().Mode())
	assert.Contains(t, f.model.View(), "Create a new menu below.")

	f.press(tea.KeyEsc)
	assert.Equal(t, selection.ModeEditingSelectedMenu, f.model.State().Mode())
	assert.Equal(t, 1, selected(t, f.model))
}

func TestCreateAdditionalMenuRejectsDuplicateName(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.typeText("n")
	f.typeText("main")
	f.press(tea.KeyEnter)

	assert.Equal(t, selection.ModeCreatingAdditionalMenu, f.model.State().Mode())
	assert.Contains(t, f.model.View(), "A menu with that name already exists.")

	stored, err := f.menus.ListMenuSummaries()
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateAdditionalMenuAppendsAndSelects(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.typeText("n")
	f.typeText("Footer")
	f.press(tea.KeyEnter)

	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Main"}, {ID: 2, Name: "Footer"}}, f.model.State().Menus())
	assert.Equal(t, 2, selected(t, f.model))
}

func TestDeleteSelectedMenuSelectsFirstRemaining(t *testing.T) {
	f := newFixture(t, "Main", "Footer")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("D")
	require.NotNil(t, f.model.editor)
	assert.True(t, f.model.editor.Capturing())

	f.typeText("y")

	state := f.model.State()
	assert.Equal(t, []models.MenuSummary{{ID: 2, Name: "Footer"}}, state.Menus())
	assert.Equal(t, 2, selected(t, f.model))

	_, err := f.menus.GetMenu(1)
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestDeleteOnlyMenuReturnsToFirstMenuCreation(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("D")
	f.typeText("y")

	state := f.model.State()
	assert.Equal(t, selection.ModeCreatingFirstMenu, state.Mode())
	assert.Empty(t, state.Menus())
	_, ok := state.SelectedID()
	assert.False(t, ok)
	assert.Contains(t, f.model.View(), "Create your first menu below.")
}

func TestDeleteCanBeCancelled(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("D")
	f.typeText("n")

	assert.Equal(t, 1, selected(t, f.model))
	assert.False(t, f.model.editor.Capturing())
	_, err := f.menus.GetMenu(1)
	assert.NoError(t, err)
}

func TestRenameAndSaveUpdatesSelectControl(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("r")
	f.press(tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace)
	f.typeText("Primary")
	f.press(tea.KeyEnter)
	assert.True(t, f.model.editor.IsDirty())

	f.press(tea.KeyCtrlS)

	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Primary"}}, f.model.State().Menus())
	assert.False(t, f.model.editor.IsDirty())
	assert.Contains(t, f.model.View(), "Menu saved.")

	menu, err := f.menus.GetMenu(1)
	require.NoError(t, err)
	assert.Equal(t, "Primary", menu.Name)
}

func TestAddAndRemoveItems(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("a")
	f.typeText("Home")
	f.press(tea.KeyEnter)
	f.typeText("/")
	f.press(tea.KeyEnter)
	f.typeText("a")
	f.typeText("About")
	f.press(tea.KeyTab)
	f.typeText("/about")
	f.press(tea.KeyEnter)
	f.typeText("s")

	menu, err := f.menus.GetMenu(1)
	require.NoError(t, err)
	require.Len(t, menu.Items, 2)
	assert.Equal(t, "Home", menu.Items[0].Label)
	assert.Equal(t, "/about", menu.Items[1].URL)
	assert.NotEqual(t, menu.Items[0].ClientID, menu.Items[1].ClientID)

	// Saving moves the cursor back to the first item
	f.typeText("x")
	f.typeText("s")

	menu, err = f.menus.GetMenu(1)
	require.NoError(t, err)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "About", menu.Items[0].Label)
}

func TestCopySlug(t *testing.T) {
	f := newFixture(t, "Main Menu")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("y")

	assert.Equal(t, []string{"main-menu"}, f.clipboard)
	assert.Contains(t, f.model.View(), "Copied slug main-menu.")
}

func TestEditSlug(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	f.press(tea.KeyTab)
	f.typeText("e")
	require.True(t, f.model.editor.Capturing())
	f.press(tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace, tea.KeyBackspace)
	f.typeText("Top Nav")
	f.press(tea.KeyEnter)

	assert.False(t, f.model.editor.Capturing())
	assert.Equal(t, "top-nav", f.model.editor.Menu().Slug)
	assert.True(t, f.model.editor.IsDirty())

	f.typeText("s")
	menu, err := f.menus.GetMenu(1)
	require.NoError(t, err)
	assert.Equal(t, "top-nav", menu.Slug)
	assert.Equal(t, "Main", menu.Name)
}

func TestMenusSnapshotIsTakenOnce(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	_, err := f.menus.CreateMenu(context.Background(), "Added elsewhere")
	require.NoError(t, err)
	require.NoError(t, f.store.ResolveMenus())
	f.send(interactive.MenusResolvedMsg{})

	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Main"}}, f.model.State().Menus())
}

func TestResolveFailureCanBeRetried(t *testing.T) {
	f := newFixture(t, "Main")

	f.send(interactive.MenusResolvedMsg{Err: errors.New("disk unavailable")})
	assert.Contains(t, f.model.View(), "disk unavailable")
	assert.Equal(t, selection.ModeLoading, f.model.State().Mode())

	f.typeText("r")
	assert.Equal(t, selection.ModeEditingSelectedMenu, f.model.State().Mode())
}

func TestQuitFromSelector(t *testing.T) {
	f := newFixture(t, "Main")
	f.start()

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
