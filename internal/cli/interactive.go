package cli

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/zamm-dev/navedit/internal/cli/interactive"
	"github.com/zamm-dev/navedit/internal/cli/interactive/common"
	"github.com/zamm-dev/navedit/internal/cli/interactive/header"
	"github.com/zamm-dev/navedit/internal/cli/interactive/menus"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/store"
)

// Model is the root model of an interactive session. It hosts one screen,
// resolves mouse zones and optionally dumps every message it sees.
type Model struct {
	screen      tea.Model
	zones       *zone.Manager
	debugWriter io.Writer
}

// NewModel creates a session showing the menus editor
func NewModel(app *App, debugWriter io.Writer) *Model {
	zones := zone.New()
	editorStore := store.New(app.menuService, app.postService)

	screen := menus.New(menus.Config{
		Source:  editorStore,
		Backend: app.coordinator(editorStore),
		Theme:   app.theme(),
		Zones:   zones,
	})
	return &Model{screen: screen, zones: zones, debugWriter: debugWriter}
}

// NewPostModel creates a session editing the title of postID
func NewPostModel(app *App, postID string, debugWriter io.Writer) *Model {
	zones := zone.New()
	editorStore := store.New(app.menuService, app.postService)

	screen := header.NewScreen(header.ScreenConfig{
		PostID:        postID,
		Store:         editorStore,
		Backend:       app.coordinator(editorStore),
		Theme:         app.theme(),
		ReadableWidth: app.config.Editor.ReadableWidth,
		Zones:         zones,
	})
	return &Model{screen: screen, zones: zones, debugWriter: debugWriter}
}

// NewPostPickerModel creates a session that lists posts and edits the title
// of the one picked
func NewPostPickerModel(app *App, debugWriter io.Writer) *Model {
	zones := zone.New()
	editorStore := store.New(app.menuService, app.postService)

	screen := header.NewPicker(header.PickerConfig{
		Store:         editorStore,
		Backend:       app.coordinator(editorStore),
		Theme:         app.theme(),
		ReadableWidth: app.config.Editor.ReadableWidth,
		Zones:         zones,
	})
	return &Model{screen: screen, zones: zones, debugWriter: debugWriter}
}

func (a *App) coordinator(editorStore *store.Store) *interactive.Coordinator {
	return interactive.NewCoordinator(interactive.NewAppAdapter(a.menuService, a.postService, editorStore))
}

func (a *App) theme() common.Theme {
	if a.config == nil {
		return common.DefaultTheme()
	}
	return common.ThemeFor(a.config.Editor.ColorScheme)
}

func (m *Model) Init() tea.Cmd {
	return m.screen.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.debugWriter != nil {
		spew.Fdump(m.debugWriter, msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	view := m.screen.View()
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

// Close releases the zone tracker
func (m *Model) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

// createMenusEditorCommand creates the interactive menus editor command
func (a *App) createMenusEditorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "menus",
		Short: "Edit navigation menus interactively",
		Long:  "Start the interactive menus editor: pick a menu to edit, create new menus, and edit or delete the selected one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProgram(sessionMenus, func(debugWriter io.Writer) *Model {
				return NewModel(a, debugWriter)
			})
		},
	}
}

// runProgram runs an interactive session. Logs go to the configured log file
// while the alternate screen is active.
func (a *App) runProgram(session string, build func(debugWriter io.Writer) *Model) error {
	level, err := logging.ParseLevel(a.config.Logging.Level)
	if err != nil {
		level = logging.LevelInfo
	}
	logFile, err := logging.InitForInteractive(level, a.config.Logging.File)
	if err != nil {
		logging.Init(level, io.Discard)
	} else {
		defer logFile.Close()
	}
	defer logging.InitForCLI(level)

	var debugWriter io.Writer
	if a.debug {
		dir, err := a.debugLogDir()
		if err != nil {
			return err
		}
		file, err := createDebugLogFile(dir, session)
		if err != nil {
			return err
		}
		defer file.Close()
		logging.Info(logging.SubsystemCLI, "dumping messages to %s", file.Name())
		debugWriter = file
	}

	model := build(debugWriter)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
