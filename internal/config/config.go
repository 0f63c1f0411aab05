package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/zamm-dev/navedit/internal/models"
	"gopkg.in/yaml.v3"
)

// DirName is the per-project data directory
const DirName = ".navedit"

// DefaultLLMModel names the model used for slug generation
const DefaultLLMModel = "claude-3-haiku-20240307"

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	CLI     CLIConfig     `mapstructure:"cli" yaml:"cli"`
	Editor  EditorConfig  `mapstructure:"editor" yaml:"editor"`
	LLM     LLMConfig     `mapstructure:"llm" yaml:"llm"`
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// CLIConfig holds CLI-related configuration
type CLIConfig struct {
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
	Color        string `mapstructure:"color" yaml:"color"`
}

// EditorConfig holds settings for the interactive editors
type EditorConfig struct {
	Locale        string `mapstructure:"locale" yaml:"locale"`
	ColorScheme   string `mapstructure:"color_scheme" yaml:"color_scheme"`
	ReadableWidth int    `mapstructure:"readable_width" yaml:"readable_width"`
}

// LLMConfig configures slug generation
type LLMConfig struct {
	APIKey string `mapstructure:"api_key" yaml:"api_key,omitempty"`
	Model  string `mapstructure:"model" yaml:"model"`
}

// Color schemes accepted by editor.color_scheme
const (
	ColorSchemeAuto  = "auto"
	ColorSchemeLight = "light"
	ColorSchemeDark  = "dark"
)

// LocalMetadata represents the structure of local-metadata.json
type LocalMetadata struct {
	DataRedirect string `json:"data-redirect,omitempty"`
}

// resolveDataDir determines the data directory to use, checking for
// data-redirect in local-metadata.json
func resolveDataDir(workingDir string) (string, error) {
	localDir := filepath.Join(workingDir, DirName)
	metadataPath := filepath.Join(localDir, "local-metadata.json")

	if _, err := os.Stat(metadataPath); err == nil {
		data, err := os.ReadFile(metadataPath)
		if err != nil {
			return "", models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to read local-metadata.json: %s", metadataPath), err)
		}

		var metadata LocalMetadata
		if err := json.Unmarshal(data, &metadata); err != nil {
			return "", models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to parse local-metadata.json: %s", metadataPath), err)
		}

		if metadata.DataRedirect != "" {
			redirectPath := metadata.DataRedirect
			if !filepath.IsAbs(redirectPath) {
				redirectPath = filepath.Join(workingDir, redirectPath)
			}

			if _, err := os.Stat(redirectPath); os.IsNotExist(err) {
				return "", models.NewNavError(models.ErrTypeSystem, fmt.Sprintf("data-redirect directory does not exist: %s", redirectPath))
			}

			return redirectPath, nil
		}
	}

	return localDir, nil
}

// Load loads configuration for the current working directory
func Load() (*Config, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to get working directory", err)
	}
	return LoadFrom(workingDir)
}

// LoadFrom loads configuration from file and environment variables, resolving
// the data directory relative to workingDir
func LoadFrom(workingDir string) (*Config, error) {
	dataDir, err := resolveDataDir(workingDir)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)

	setDefaults(v, dataDir)

	v.SetEnvPrefix("NAVEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath := os.Getenv("NAVEDIT_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to read config file", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to unmarshal config", err)
	}

	if storagePath := os.Getenv("NAVEDIT_STORAGE_PATH"); storagePath != "" {
		config.Storage.Path = storagePath
	}
	if logLevel := os.Getenv("NAVEDIT_LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}
	if os.Getenv("NAVEDIT_NO_COLOR") != "" {
		config.CLI.Color = "never"
	}
	if config.LLM.APIKey == "" {
		config.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	expandPaths(&config, workingDir)
	return &config, nil
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DirName, "logs", "navedit.log")
	}
	return filepath.Join(homeDir, DirName, "logs", "navedit.log")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.path", dataDir)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", defaultLogPath())

	v.SetDefault("cli.output_format", "table")
	v.SetDefault("cli.color", "auto")

	v.SetDefault("editor.locale", "en")
	v.SetDefault("editor.color_scheme", ColorSchemeAuto)
	v.SetDefault("editor.readable_width", 80)

	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", DefaultLLMModel)
}

func validate(config *Config) error {
	switch config.Storage.Backend {
	case "file", "sqlite":
	default:
		return models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("unknown storage backend %q", config.Storage.Backend))
	}

	switch config.Editor.ColorScheme {
	case ColorSchemeAuto, ColorSchemeLight, ColorSchemeDark:
	default:
		return models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("unknown color scheme %q", config.Editor.ColorScheme))
	}

	if config.Editor.ReadableWidth < 20 {
		config.Editor.ReadableWidth = 20
	}
	return nil
}

// expandPaths expands ~ and relative paths in configuration
func expandPaths(config *Config, workingDir string) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = workingDir
	}

	if config.Storage.Path != "" {
		config.Storage.Path = expandPath(config.Storage.Path, homeDir, workingDir)
	}
	if config.Logging.File != "" {
		config.Logging.File = expandPath(config.Logging.File, homeDir, workingDir)
	}
}

// expandPath expands ~ to the home directory and resolves relative paths
// against workingDir
func expandPath(path, homeDir, workingDir string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		if len(path) == 1 {
			return homeDir
		}
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	if !filepath.IsAbs(path) {
		return filepath.Join(workingDir, path)
	}
	return path
}

// EnsureDirectories creates necessary directories for the configuration
func EnsureDirectories(config *Config) error {
	if config.Storage.Path != "" {
		if err := os.MkdirAll(config.Storage.Path, 0755); err != nil {
			return models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create storage directory: %s", config.Storage.Path), err)
		}
	}

	if config.Logging.File != "" {
		logDir := filepath.Dir(config.Logging.File)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create log directory: %s", logDir), err)
		}
	}

	return nil
}

// WriteDefaultConfig writes a default configuration file into the data
// directory of workingDir. An existing file is left alone.
func WriteDefaultConfig(workingDir string) (string, error) {
	dataDir, err := resolveDataDir(workingDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to create data directory: %s", dataDir), err)
	}

	storagePath, err := filepath.Rel(workingDir, dataDir)
	if err != nil {
		storagePath = dataDir
	}

	defaults := Config{
		Storage: StorageConfig{Backend: "file", Path: storagePath},
		Logging: LoggingConfig{Level: "info", File: defaultLogPath()},
		CLI:     CLIConfig{OutputFormat: "table", Color: "auto"},
		Editor:  EditorConfig{Locale: "en", ColorScheme: ColorSchemeAuto, ReadableWidth: 80},
		LLM:     LLMConfig{Model: DefaultLLMModel},
	}
	content, err := yaml.Marshal(defaults)
	if err != nil {
		return "", models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to render default config", err)
	}

	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", models.NewNavErrorWithCause(models.ErrTypeSystem, fmt.Sprintf("failed to write config file: %s", configPath), err)
	}

	return configPath, nil
}

// GetConfigPath returns the path to the configuration file
func GetConfigPath() (string, error) {
	if configPath := os.Getenv("NAVEDIT_CONFIG_PATH"); configPath != "" {
		return configPath, nil
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return "", models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to get working directory", err)
	}

	dataDir, err := resolveDataDir(workingDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(dataDir, "config.yaml"), nil
}
