package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/storage"
)

type failingSlugger struct{}

func (failingSlugger) GenerateSlug(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

func newTestStorage(t *testing.T) storage.Storage {
	store := storage.NewFileStorage(t.TempDir())
	require.NoError(t, store.InitializeStorage())
	return store
}

func TestCreateMenu(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)

	menu, err := svc.CreateMenu(context.Background(), "  Main Menu ")
	require.NoError(t, err)
	assert.Equal(t, 1, menu.ID)
	assert.Equal(t, "Main Menu", menu.Name)
	assert.Equal(t, "main-menu", menu.Slug)
	assert.Empty(t, menu.Items)
}

func TestCreateMenuRejectsInvalidNames(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)
	ctx := context.Background()

	_, err := svc.CreateMenu(ctx, "   ")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))

	_, err = svc.CreateMenu(ctx, "Main")
	require.NoError(t, err)

	_, err = svc.CreateMenu(ctx, "main")
	assert.True(t, models.IsErrorType(err, models.ErrTypeConflict))
}

func TestMenuNameLengthCountsCharacters(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)
	ctx := context.Background()

	// 100 two-byte characters fit, 101 do not
	longest := strings.Repeat("é", MaxMenuNameLength)
	menu, err := svc.CreateMenu(ctx, longest)
	require.NoError(t, err)
	assert.Equal(t, longest, menu.Name)

	_, err = svc.CreateMenu(ctx, longest+"é")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))

	_, err = svc.RenameMenu(menu.ID, strings.Repeat("ñ", MaxMenuNameLength+1))
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))
}

func TestCreateMenuFallsBackWhenSluggerFails(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), failingSlugger{})

	menu, err := svc.CreateMenu(context.Background(), "Footer Links")
	require.NoError(t, err)
	assert.Equal(t, "footer-links", menu.Slug)
}

func TestListMenuSummaries(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)
	ctx := context.Background()

	summaries, err := svc.ListMenuSummaries()
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = svc.CreateMenu(ctx, "Main")
	require.NoError(t, err)
	_, err = svc.CreateMenu(ctx, "Footer")
	require.NoError(t, err)

	summaries, err = svc.ListMenuSummaries()
	require.NoError(t, err)
	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Main"}, {ID: 2, Name: "Footer"}}, summaries)
}

func TestRenameMenu(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)
	ctx := context.Background()

	main, err := svc.CreateMenu(ctx, "Main")
	require.NoError(t, err)
	_, err = svc.CreateMenu(ctx, "Footer")
	require.NoError(t, err)

	renamed, err := svc.RenameMenu(main.ID, "Primary")
	require.NoError(t, err)
	assert.Equal(t, "Primary", renamed.Name)
	assert.Equal(t, "main", renamed.Slug)

	// Renaming to its own name is fine, taking another menu's name is not
	_, err = svc.RenameMenu(main.ID, "Primary")
	assert.NoError(t, err)
	_, err = svc.RenameMenu(main.ID, "Footer")
	assert.True(t, models.IsErrorType(err, models.ErrTypeConflict))

	_, err = svc.RenameMenu(42, "Ghost")
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestMenuItems(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)

	menu, err := svc.CreateMenu(context.Background(), "Main")
	require.NoError(t, err)

	home, err := svc.AddMenuItem(menu.ID, "Home", "/")
	require.NoError(t, err)
	about, err := svc.AddMenuItem(menu.ID, "About", "/about")
	require.NoError(t, err)
	assert.NotEmpty(t, home.ClientID)
	assert.NotEqual(t, home.ClientID, about.ClientID)

	_, err = svc.AddMenuItem(menu.ID, "", "/nowhere")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))

	require.NoError(t, svc.RemoveMenuItem(menu.ID, home.ClientID))

	read, err := svc.GetMenu(menu.ID)
	require.NoError(t, err)
	require.Len(t, read.Items, 1)
	assert.Equal(t, "About", read.Items[0].Label)

	err = svc.RemoveMenuItem(menu.ID, home.ClientID)
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestSaveMenu(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)

	menu, err := svc.CreateMenu(context.Background(), "Main")
	require.NoError(t, err)

	menu.Items = append(menu.Items, models.MenuItem{ClientID: "x", Label: "Blog", URL: "/blog"})
	require.NoError(t, svc.SaveMenu(menu))

	read, err := svc.GetMenu(menu.ID)
	require.NoError(t, err)
	assert.Equal(t, menu.Items, read.Items)

	menu.Items = append(menu.Items, models.MenuItem{ClientID: "y", Label: "No URL"})
	assert.True(t, models.IsErrorType(svc.SaveMenu(menu), models.ErrTypeValidation))
	assert.True(t, models.IsErrorType(svc.SaveMenu(nil), models.ErrTypeValidation))
}

func TestDeleteMenu(t *testing.T) {
	svc := NewMenuService(newTestStorage(t), nil)

	menu, err := svc.CreateMenu(context.Background(), "Main")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMenu(menu.ID))
	assert.True(t, models.IsErrorType(svc.DeleteMenu(menu.ID), models.ErrTypeNotFound))
	assert.True(t, models.IsErrorType(svc.DeleteMenu(0), models.ErrTypeValidation))
}

func TestPostLifecycle(t *testing.T) {
	svc := NewPostService(newTestStorage(t))

	post, err := svc.CreatePost(" Hello ", "Body")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Hello", post.Title)

	title := "Hello, world"
	updated, err := svc.UpdatePost(post.ID, models.PostEdits{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", updated.Title)
	assert.Equal(t, "Body", updated.Content)
	assert.False(t, updated.UpdatedAt.Before(post.UpdatedAt))

	posts, err := svc.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello, world", posts[0].Title)

	require.NoError(t, svc.DeletePost(post.ID))
	_, err = svc.GetPost(post.ID)
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestUpdatePostWithoutEdits(t *testing.T) {
	svc := NewPostService(newTestStorage(t))

	post, err := svc.CreatePost("Hello", "")
	require.NoError(t, err)

	same, err := svc.UpdatePost(post.ID, models.PostEdits{})
	require.NoError(t, err)
	assert.Equal(t, post.Title, same.Title)

	_, err = svc.UpdatePost("missing", models.PostEdits{})
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))

	_, err = svc.GetPost("")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))
}
