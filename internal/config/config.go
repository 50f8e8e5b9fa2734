package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It defines how filenames are split into prefixes, how moves behave, and how
// results are presented.
type Config struct {
	Organize struct {
		Separator    string   `yaml:"separator"`     // Character splitting prefix from the rest of the name
		RemovePrefix bool     `yaml:"remove_prefix"` // Strip "prefix+separator" from moved files
		OnConflict   string   `yaml:"on_conflict"`   // Collision strategy: skip or rename
		Ignore       []string `yaml:"ignore"`        // Glob patterns excluded from planning
	} `yaml:"organize"`
	Settings struct {
		DryRun      bool   `yaml:"dry_run"`      // If true, simulate operations
		Verbose     bool   `yaml:"verbose"`      // Per-item output and debug logging
		AutoConfirm bool   `yaml:"auto_confirm"` // Skip the confirmation step
		Language    string `yaml:"language"`     // UI language code; empty means system
	} `yaml:"settings"`
	Directories struct {
		Default string `yaml:"default"` // Directory used when none is given
	} `yaml:"directories"`
	Theme struct {
		Name     string `yaml:"name"`     // Theme name (default, dark, light, etc.)
		Primary  string `yaml:"primary"`  // Primary color for branding
		Success  string `yaml:"success"`  // Success message color
		Warning  string `yaml:"warning"`  // Warning message color
		Error    string `yaml:"error"`    // Error message color
		Info     string `yaml:"info"`     // Informational message color
		Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
		Border   string `yaml:"border"`   // Border color for frames
	} `yaml:"theme"`
}

// DefaultConfigPath returns the location of the user's config file
// (~/.config/shelf/config.yaml).
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shelf", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	// Try to read the config file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Organize.Separator != "" {
		cfg.Organize.Separator = tempCfg.Organize.Separator
	}
	if tempCfg.Organize.OnConflict != "" {
		cfg.Organize.OnConflict = tempCfg.Organize.OnConflict
	}
	if len(tempCfg.Organize.Ignore) > 0 {
		cfg.Organize.Ignore = tempCfg.Organize.Ignore
	}
	cfg.Organize.RemovePrefix = tempCfg.Organize.RemovePrefix

	cfg.Settings.DryRun = tempCfg.Settings.DryRun
	cfg.Settings.Verbose = tempCfg.Settings.Verbose
	cfg.Settings.AutoConfirm = tempCfg.Settings.AutoConfirm
	if tempCfg.Settings.Language != "" {
		cfg.Settings.Language = tempCfg.Settings.Language
	}

	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}

	// A named theme fills the whole palette; explicit colors win over it
	if tempCfg.Theme.Name != "" {
		cfg.ApplyTheme(tempCfg.Theme.Name)
	}
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Success != "" {
		cfg.Theme.Success = tempCfg.Theme.Success
	}
	if tempCfg.Theme.Warning != "" {
		cfg.Theme.Warning = tempCfg.Theme.Warning
	}
	if tempCfg.Theme.Error != "" {
		cfg.Theme.Error = tempCfg.Theme.Error
	}
	if tempCfg.Theme.Info != "" {
		cfg.Theme.Info = tempCfg.Theme.Info
	}
	if tempCfg.Theme.Emphasis != "" {
		cfg.Theme.Emphasis = tempCfg.Theme.Emphasis
	}
	if tempCfg.Theme.Border != "" {
		cfg.Theme.Border = tempCfg.Theme.Border
	}

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Organize.Separator = "-"
	cfg.Organize.RemovePrefix = false
	cfg.Organize.OnConflict = "skip"
	cfg.Organize.Ignore = []string{}

	cfg.Settings.DryRun = false
	cfg.Settings.Verbose = false
	cfg.Settings.AutoConfirm = false
	cfg.Settings.Language = "" // System language

	cfg.Directories.Default = ""

	cfg.ApplyTheme("default")

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal the config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write the data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	// The separator must be exactly one printable character, and a character
	// that can actually occur in a file name
	sep := c.Organize.Separator
	if sep == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if utf8.RuneCountInString(sep) != 1 {
		return fmt.Errorf("separator must be a single character: %q", sep)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	if !unicode.IsPrint(r) {
		return fmt.Errorf("separator must be printable: %q", sep)
	}
	if strings.ContainsAny(sep, `/\`) {
		return fmt.Errorf("separator must not be a path separator: %q", sep)
	}

	// Validate collision strategy. Anything that could overwrite an existing
	// file is refused here, not handled downstream.
	validConflicts := map[string]bool{"skip": true, "rename": true}
	if !validConflicts[c.Organize.OnConflict] {
		return fmt.Errorf("invalid on_conflict setting: %s", c.Organize.OnConflict)
	}

	// Validate ignore patterns
	for i, pattern := range c.Organize.Ignore {
		if pattern == "" {
			return fmt.Errorf("ignore pattern %d: pattern is required", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("ignore pattern %d: %w", i, err)
		}
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Organize.Separator = "-"
	cfg.Organize.OnConflict = "skip"
	cfg.Settings.AutoConfirm = true
	return cfg
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme palette by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105", // Dark blue
			"success":  "78",  // Dark green
			"warning":  "214", // Dark yellow
			"error":    "160", // Dark red
			"info":     "33",  // Dark blue
			"emphasis": "147", // Light blue
			"border":   "105", // Dark blue
		},
		"light": {
			"primary":  "135", // Light purple
			"success":  "150", // Light green
			"warning":  "222", // Light yellow
			"error":    "210", // Light red
			"info":     "117", // Light blue
			"emphasis": "219", // Very light pink
			"border":   "135", // Light purple
		},
		"monochrome": {
			"primary":  "245", // Light grey
			"success":  "252", // White
			"warning":  "241", // Medium grey
			"error":    "255", // Bright white
			"info":     "248", // Grey
			"emphasis": "255", // Bright white
			"border":   "245", // Light grey
		},
		"ocean": {
			"primary":  "31",  // Teal
			"success":  "36",  // Green-blue
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "45",  // Cyan-blue
			"emphasis": "51",  // Cyan
			"border":   "31",  // Teal
		},
		"sunset": {
			"primary":  "208", // Orange
			"success":  "154", // Green
			"warning":  "214", // Dark yellow
			"error":    "196", // Red
			"info":     "215", // Peach
			"emphasis": "203", // Pink-orange
			"border":   "208", // Orange
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme in the configuration.
// It updates the theme colors based on the theme name.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
