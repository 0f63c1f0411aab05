package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zamm-dev/navedit/internal/config"
	"github.com/zamm-dev/navedit/internal/models"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, app *App, args ...string) error {
	root := app.CreateRootCommand()
	root.SetArgs(append(args, "--quiet"))
	return root.Execute()
}

func TestMenuCommands(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, execute(t, app, "menu", "create", "Main Menu"))
	require.NoError(t, execute(t, app, "menu", "create", "Footer"))
	require.NoError(t, execute(t, app, "menu", "rename", "2", "Bottom"))
	require.NoError(t, execute(t, app, "menu", "item", "add", "1", "--label", "Home", "--url", "/"))

	summaries, err := app.menuService.ListMenuSummaries()
	require.NoError(t, err)
	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Main Menu"}, {ID: 2, Name: "Bottom"}}, summaries)

	menu, err := app.menuService.GetMenu(1)
	require.NoError(t, err)
	require.Len(t, menu.Items, 1)

	require.NoError(t, execute(t, app, "menu", "item", "remove", "1", menu.Items[0].ClientID))
	require.NoError(t, execute(t, app, "menu", "delete", "2"))

	summaries, err = app.menuService.ListMenuSummaries()
	require.NoError(t, err)
	assert.Equal(t, []models.MenuSummary{{ID: 1, Name: "Main Menu"}}, summaries)
}

func TestMenuCommandErrors(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, execute(t, app, "menu", "create", "Main"))

	err := execute(t, app, "menu", "create", "main")
	assert.True(t, models.IsErrorType(err, models.ErrTypeConflict))

	err = execute(t, app, "menu", "delete", "abc")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))

	err = execute(t, app, "menu", "show", "9")
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestPostCommands(t *testing.T) {
	app := newTestApp(t)

	require.NoError(t, execute(t, app, "post", "create", "--title", "Draft"))
	posts, err := app.postService.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].ID

	require.NoError(t, execute(t, app, "post", "set-title", id, "Final"))
	post, err := app.postService.GetPost(id)
	require.NoError(t, err)
	assert.Equal(t, "Final", post.Title)

	require.NoError(t, execute(t, app, "post", "delete", id))
	_, err = app.postService.GetPost(id)
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestPostEditRejectsUnknownPost(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "post", "edit", "missing")
	assert.True(t, models.IsErrorType(err, models.ErrTypeNotFound))
}

func TestWriteExport(t *testing.T) {
	menus := []*models.Menu{{
		ID:   1,
		Name: "Main",
		Slug: "main",
		Items: []models.MenuItem{
			{ClientID: "a", Label: "Home", URL: "/"},
		},
	}}

	var yamlOut bytes.Buffer
	require.NoError(t, writeExport(&yamlOut, "yaml", menus))

	var fromYAML map[string][]exportedMenu
	require.NoError(t, yaml.Unmarshal(yamlOut.Bytes(), &fromYAML))
	assert.Equal(t, []exportedMenu{{Name: "Main", Slug: "main", Items: []exportedItem{{Label: "Home", URL: "/"}}}}, fromYAML["menus"])
	assert.NotContains(t, yamlOut.String(), "client")

	var jsonOut bytes.Buffer
	require.NoError(t, writeExport(&jsonOut, "json", menus))

	var fromJSON map[string][]exportedMenu
	require.NoError(t, json.Unmarshal(jsonOut.Bytes(), &fromJSON))
	assert.Equal(t, fromYAML, fromJSON)

	err := writeExport(&jsonOut, "xml", menus)
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))
}

func TestExportToFile(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, execute(t, app, "menu", "create", "Main"))

	out := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, execute(t, app, "menu", "export", "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Main")
}

func TestWriteRedirect(t *testing.T) {
	workingDir := t.TempDir()
	target := filepath.Join(workingDir, "shared")
	require.NoError(t, os.MkdirAll(target, 0755))

	metadataPath, resolved, err := writeRedirect(workingDir, "shared")
	require.NoError(t, err)
	assert.Equal(t, target, resolved)
	assert.Equal(t, filepath.Join(workingDir, config.DirName, "local-metadata.json"), metadataPath)

	cfg, err := config.LoadFrom(workingDir)
	require.NoError(t, err)
	assert.Equal(t, target, cfg.Storage.Path)

	_, _, err = writeRedirect(workingDir, "missing")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))
}

func TestMCPCommandRejectsUnknownTransport(t *testing.T) {
	app := newTestApp(t)

	err := execute(t, app, "mcp", "--transport", "carrier-pigeon")
	assert.True(t, models.IsErrorType(err, models.ErrTypeValidation))
}
