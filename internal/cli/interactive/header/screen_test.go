package header

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/services"
	"github.com/zamm-dev/navedit/internal/storage"
	"github.com/zamm-dev/navedit/internal/store"
)

func newScreen(t *testing.T, title string) (*Screen, services.PostService, *store.Store, *models.Post) {
	fs := storage.NewFileStorage(t.TempDir())
	require.NoError(t, fs.InitializeStorage())
	posts := services.NewPostService(fs)
	menus := services.NewMenuService(fs, nil)

	post, err := posts.CreatePost(title, "")
	require.NoError(t, err)

	st := store.New(menus, posts)
	coordinator := interactive.NewCoordinator(interactive.NewAppAdapter(menus, posts, st))

	screen := NewScreen(ScreenConfig{
		PostID:        post.ID,
		Store:         st,
		Backend:       coordinator,
		Theme:         common.DefaultTheme(),
		ReadableWidth: 60,
	})
	return screen, posts, st, post
}

func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte(text))
		},
		teatest.WithCheckInterval(time.Millisecond*50),
		teatest.WithDuration(time.Second*3),
	)
}

func TestScreenEditAndSaveTitle(t *testing.T) {
	screen, posts, _, post := newScreen(t, "Hello")

	tm := teatest.NewTestModel(t, screen, teatest.WithInitialTermSize(80, 24))
	waitFor(t, tm, "Hello")

	tm.Type(" world")
	waitFor(t, tm, "Unsaved changes")

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	waitFor(t, tm, "Saved")

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	final, ok := tm.FinalModel(t, teatest.WithFinalTimeout(time.Second*3)).(*Screen)
	require.True(t, ok)
	assert.Equal(t, "Hello world", final.Header().Title())

	saved, err := posts.GetPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", saved.Title)
}

func TestScreenShowsPlaceholderForEmptyTitle(t *testing.T) {
	screen, _, _, _ := newScreen(t, "")

	tm := teatest.NewTestModel(t, screen, teatest.WithInitialTermSize(80, 24))
	waitFor(t, tm, "Add title")

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second*3))
}

func TestScreenEditsGoThroughStore(t *testing.T) {
	screen, _, st, _ := newScreen(t, "Draft")

	require.NoError(t, st.LoadPost(screen.config.PostID))
	screen.Update(interactive.PostLoadedMsg{})
	screen.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})

	assert.Equal(t, "Drafts", st.GetEditedPostAttribute(models.PostAttrTitle))
	assert.True(t, st.IsEditedPostDirty())
	assert.Contains(t, screen.View(), "Unsaved changes")
}

func TestScreenLoadFailure(t *testing.T) {
	screen, _, _, _ := newScreen(t, "Draft")

	screen.Update(interactive.PostLoadedMsg{Err: errors.New("no such post")})

	assert.Contains(t, screen.View(), "no such post")

	// Keys other than quit do nothing until a post is loaded
	_, cmd := screen.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
}

func TestScreenSaveFailure(t *testing.T) {
	screen, _, _, _ := newScreen(t, "Draft")
	screen.loaded = true

	screen.Update(interactive.PostSavedMsg{Err: errors.New("disk full")})

	assert.Contains(t, screen.View(), "disk full")
}
