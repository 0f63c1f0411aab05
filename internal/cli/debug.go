package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zamm-dev/navedit/internal/config"
)

// Interactive sessions, used to name debug dumps
const (
	sessionMenus = "menus"
	sessionPost  = "post"
)

// debugLogDir returns where --debug dumps go: next to the configured log
// file, else ~/.navedit/logs
func (a *App) debugLogDir() (string, error) {
	if a.config != nil && a.config.Logging.File != "" {
		return filepath.Dir(a.config.Logging.File), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, config.DirName, "logs"), nil
}

// debugLogName names a dump, e.g. navedit-menus-debug-2025-01-02-15-04-05.log
func debugLogName(session string, now time.Time) string {
	return fmt.Sprintf("navedit-%s-debug-%s.log", session, now.Format("2006-01-02-15-04-05"))
}

// createDebugLogFile creates a message dump for session inside dir and
// writes a header line identifying the session
func createDebugLogFile(dir, session string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory %s: %w", dir, err)
	}

	now := time.Now()
	logPath := filepath.Join(dir, debugLogName(session, now))
	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log file %s: %w", logPath, err)
	}

	if _, err := fmt.Fprintf(file, "# navedit %s %s session started %s\n", Version, session, now.Format(time.RFC3339)); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to write debug log header %s: %w", logPath, err)
	}
	return file, nil
}
