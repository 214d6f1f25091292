// Package config holds the application configuration. The controller reads
// it once at window creation time; the settings modal writes it back.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TabBarPosition is where the tab bar is placed within window chrome.
type TabBarPosition string

const (
	TabBarTop    TabBarPosition = "top"
	TabBarBottom TabBarPosition = "bottom"
	TabBarLeft   TabBarPosition = "left"
	TabBarRight  TabBarPosition = "right"
)

// TabBarWidth is the tab sizing policy for the tab bar.
type TabBarWidth string

const (
	// TabBarWide gives every tab an equal share of the full bar width.
	TabBarWide TabBarWidth = "wide"
	// TabBarCompact sizes each tab to its title.
	TabBarCompact TabBarWidth = "compact"
)

// Config holds the application configuration
type Config struct {
	Shell                string         `json:"shell,omitempty"`         // Command run in new surfaces; $SHELL when empty
	Titlebar             bool           `json:"titlebar"`                // Whether windows have a title-bar chrome region
	Decorations          bool           `json:"decorations"`             // Whether windows start decorated
	Fullscreen           bool           `json:"fullscreen,omitempty"`    // Whether windows start fullscreen
	ConfirmClose         bool           `json:"confirm_close"`           // Whether closing live surfaces asks first
	TabBarPosition       TabBarPosition `json:"tab_bar_position"`        // top/bottom/left/right
	TabBarWidth          TabBarWidth    `json:"tab_bar_width"`           // wide/compact
	Theme                string         `json:"theme,omitempty"`         // UI theme name
	NotificationsEnabled bool           `json:"notifications_enabled"`   // Desktop notifications for background tabs
	WindowTitle          string         `json:"window_title,omitempty"`  // Default title for new windows

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".termdeck"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// defaults returns a Config populated with default values.
func defaults(path string) *Config {
	return &Config{
		Titlebar:             true,
		Decorations:          true,
		ConfirmClose:         true,
		TabBarPosition:       TabBarTop,
		TabBarWidth:          TabBarWide,
		NotificationsEnabled: true,
		WindowTitle:          "termdeck",
		filePath:             path,
	}
}

// Load reads the config from disk, or creates a new one if it doesn't exist.
// Absent fields keep their default values since Unmarshal leaves them untouched.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := defaults(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.TabBarPosition {
	case TabBarTop, TabBarBottom, TabBarLeft, TabBarRight:
	default:
		return fmt.Errorf("invalid tab_bar_position %q", c.TabBarPosition)
	}

	switch c.TabBarWidth {
	case TabBarWide, TabBarCompact:
	default:
		return fmt.Errorf("invalid tab_bar_width %q", c.TabBarWidth)
	}

	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetShell returns the command to run in new surfaces, falling back to $SHELL
// and then /bin/sh.
func (c *Config) GetShell() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Shell != "" {
		return c.Shell
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}

// GetTitlebar returns whether windows have a title-bar chrome region.
func (c *Config) GetTitlebar() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Titlebar
}

// GetDecorations returns whether windows start decorated.
func (c *Config) GetDecorations() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Decorations
}

// GetFullscreen returns whether windows start fullscreen.
func (c *Config) GetFullscreen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Fullscreen
}

// GetConfirmClose returns whether closing live surfaces asks first.
func (c *Config) GetConfirmClose() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ConfirmClose
}

// SetConfirmClose updates the confirm-close setting.
func (c *Config) SetConfirmClose(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ConfirmClose = v
}

// GetTabBarPosition returns the configured tab bar placement.
func (c *Config) GetTabBarPosition() TabBarPosition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TabBarPosition
}

// SetTabBarPosition updates the tab bar placement.
func (c *Config) SetTabBarPosition(p TabBarPosition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TabBarPosition = p
}

// GetTabBarWidth returns the tab sizing policy.
func (c *Config) GetTabBarWidth() TabBarWidth {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TabBarWidth
}

// SetTabBarWidth updates the tab sizing policy.
func (c *Config) SetTabBarWidth(w TabBarWidth) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.TabBarWidth = w
}

// GetTheme returns the saved theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme saves the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled updates the desktop notification setting.
func (c *Config) SetNotificationsEnabled(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = v
}

// GetWindowTitle returns the default title for new windows.
func (c *Config) GetWindowTitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.WindowTitle != "" {
		return c.WindowTitle
	}
	return "termdeck"
}

// EffectiveTabBarPosition resolves the configured placement against the
// window's chrome capability. Side placements need the enhanced chrome
// variant; without it they fold into the top placement.
func (c *Config) EffectiveTabBarPosition(enhancedChrome bool) TabBarPosition {
	pos := c.GetTabBarPosition()
	if !enhancedChrome && (pos == TabBarLeft || pos == TabBarRight) {
		return TabBarTop
	}
	return pos
}
