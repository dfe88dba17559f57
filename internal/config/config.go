package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/dlapp/crmdeck/internal/errors"
)

// DefaultTheme is the theme used when none has been chosen yet.
const DefaultTheme = "light"

// Config holds the persisted shell preferences: theme, sidebar collapse mode,
// and the last accordion group the user had open. It satisfies nav.Store.
type Config struct {
	Theme           string `json:"theme,omitempty"`           // UI theme name (e.g., "light", "dark")
	SidebarMini     bool   `json:"sidebar_mini,omitempty"`    // collapsed icon-rail mode
	LastOpenGroupID string `json:"last_open_group,omitempty"` // accordion group restored on startup
	StartPath       string `json:"start_path,omitempty"`      // route opened on launch; empty means the dashboard

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".crmdeck"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.ConfigLoadFailed(path, err)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return apperrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Reset clears all persisted preferences and removes the settings file.
func (c *Config) Reset() error {
	c.mu.Lock()
	c.Theme = ""
	c.SidebarMini = false
	c.LastOpenGroupID = ""
	c.StartPath = ""
	path := c.filePath
	c.mu.Unlock()

	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// GetTheme returns the current theme name, defaulting to light when unset.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// ShellCollapsed reports whether the sidebar was left in the icon-rail mode.
func (c *Config) ShellCollapsed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.SidebarMini
}

// SetShellCollapsed records the sidebar collapse mode.
func (c *Config) SetShellCollapsed(collapsed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SidebarMini = collapsed
}

// LastOpenGroup returns the accordion group that was open when the shell last
// ran, or empty string if none.
func (c *Config) LastOpenGroup() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastOpenGroupID
}

// SetLastOpenGroup records the open accordion group. Pass empty string to clear.
func (c *Config) SetLastOpenGroup(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastOpenGroupID = id
}

// GetStartPath returns the route to open on launch, or empty string for the
// default.
func (c *Config) GetStartPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.StartPath
}

// SetStartPath sets the route to open on launch.
func (c *Config) SetStartPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StartPath = path
}
