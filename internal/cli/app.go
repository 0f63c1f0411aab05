package cli

import (
	"github.com/zamm-dev/navedit/internal/config"
	"github.com/zamm-dev/navedit/internal/i18n"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/services"
	"github.com/zamm-dev/navedit/internal/storage"
)

// App represents the CLI application
type App struct {
	config      *config.Config
	storage     storage.Storage
	menuService services.MenuService
	postService services.PostService

	// set by the global flags
	jsonOutput bool
	quiet      bool
	debug      bool
}

// NewApp creates a new CLI application
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level)

	if err := i18n.Init(cfg.Editor.Locale); err != nil {
		logging.Warn(logging.SubsystemCLI, "unsupported locale %q, using English: %v", cfg.Editor.Locale, err)
	}

	store, err := storage.New(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, store), nil
}

func newApp(cfg *config.Config, store storage.Storage) *App {
	slugger := services.NewLLMService(cfg.LLM.APIKey, cfg.LLM.Model)
	return &App{
		config:      cfg,
		storage:     store,
		menuService: services.NewMenuService(store, slugger),
		postService: services.NewPostService(store),
	}
}

// Close closes the application and cleans up resources
func (a *App) Close() error {
	if a.storage != nil {
		return a.storage.Close()
	}
	return nil
}
