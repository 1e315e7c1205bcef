// Package settings persists the user-configurable matching policy and the
// highlighting preferences around it.
package settings

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "phrase-highlighter"

// Paths holds the per-user locations used by phrase-highlighter.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/phrase-highlighter)
	ConfigDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}

		return &Paths{ConfigDir: filepath.Join(appData, appName)}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	return &Paths{ConfigDir: filepath.Join(configHome, appName)}
}

// SettingsFile returns the path to the settings file.
func (p *Paths) SettingsFile() string {
	return filepath.Join(p.ConfigDir, "settings.json")
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}

	return "."
}
