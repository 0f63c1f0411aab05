package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zamm-dev/navedit/internal/config"
	"github.com/zamm-dev/navedit/internal/models"
)

// Version is set at build time
var Version = "v0.1.0"

// createInitCommand creates the init command
func (a *App) createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize navedit in current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir, err := os.Getwd()
			if err != nil {
				return models.NewNavErrorWithCause(models.ErrTypeSystem, "failed to get working directory", err)
			}

			configPath, err := config.WriteDefaultConfig(workingDir)
			if err != nil {
				return err
			}
			if err := config.EnsureDirectories(a.config); err != nil {
				return err
			}
			if err := a.storage.InitializeStorage(); err != nil {
				return err
			}

			if !a.quiet {
				fmt.Println("Initialized navedit successfully")
				fmt.Printf("Config file: %s\n", configPath)
				fmt.Printf("Storage directory: %s\n", a.config.Storage.Path)
			}
			return nil
		},
	}
}

// createStatusCommand creates the status command
func (a *App) createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show storage status and statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := config.GetConfigPath()
			status := map[string]interface{}{
				"config_path":     configPath,
				"storage_backend": a.config.Storage.Backend,
				"storage_path":    a.config.Storage.Path,
			}

			menus, menuErr := a.menuService.ListMenus()
			posts, postErr := a.postService.ListPosts()
			if menuErr != nil || postErr != nil {
				err := menuErr
				if err == nil {
					err = postErr
				}
				status["initialized"] = false
				status["error"] = err.Error()
			} else {
				status["initialized"] = true
				status["menu_count"] = len(menus)
				status["post_count"] = len(posts)
			}

			if a.jsonOutput {
				return a.outputJSON(status)
			}

			fmt.Printf("navedit Status\n")
			fmt.Printf("==============\n")
			if status["initialized"] == false {
				fmt.Printf("Storage: %s (not initialized)\n", a.config.Storage.Path)
				fmt.Printf("Error: %s\n", status["error"])
				return nil
			}
			fmt.Printf("Storage: %s (%s)\n", a.config.Storage.Path, a.config.Storage.Backend)
			fmt.Printf("Menus: %d\n", len(menus))
			fmt.Printf("Posts: %d\n", len(posts))
			return nil
		},
	}
}

// createVersionCommand creates the version command
func (a *App) createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("navedit %s\n", Version)
		},
	}
}

// createRedirectCommand creates the redirect command
func (a *App) createRedirectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "redirect [directory]",
		Short: "Set up data redirection to another directory",
		Long: `Configure navedit to read data from a different directory by creating a local-metadata.json file.
The specified directory will be used instead of the local .navedit directory for all data storage.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workingDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			metadataPath, targetDir, err := writeRedirect(workingDir, args[0])
			if err != nil {
				return err
			}

			if !a.quiet {
				fmt.Printf("Successfully configured data redirection\n")
				fmt.Printf("Local metadata file: %s\n", metadataPath)
				fmt.Printf("Data will be redirected to: %s\n", targetDir)
			}
			return nil
		},
	}
}

// writeRedirect points the data directory of workingDir at targetDir
func writeRedirect(workingDir, targetDir string) (string, string, error) {
	if !filepath.IsAbs(targetDir) {
		targetDir = filepath.Join(workingDir, targetDir)
	}

	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		return "", "", models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("target directory does not exist: %s", targetDir))
	}

	localDir := filepath.Join(workingDir, config.DirName)
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create %s directory: %w", config.DirName, err)
	}

	jsonData, err := json.MarshalIndent(config.LocalMetadata{DataRedirect: targetDir}, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	metadataPath := filepath.Join(localDir, "local-metadata.json")
	if err := os.WriteFile(metadataPath, jsonData, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write metadata file: %w", err)
	}
	return metadataPath, targetDir, nil
}
