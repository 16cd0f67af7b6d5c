package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Data       DataSettings   `toml:"data"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
	Log        LogSettings    `toml:"log"`
}

// DataSettings describes where the static contributor data lives.
// Dir wins over BaseURL when both are set.
type DataSettings struct {
	BaseURL        string `toml:"base_url"`
	Dir            string `toml:"dir"`
	IndexPath      string `toml:"index_path"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	CacheSize      int    `toml:"cache_size"`
	Watch          bool   `toml:"watch"` // reload the index when Dir changes
}

// SearchSettings tunes the typeahead
type SearchSettings struct {
	MinCharacters int `toml:"min_characters"`
	DelayMillis   int `toml:"delay_ms"`
	MaxResults    int `toml:"max_results"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SiteURL      string `toml:"site_url"` // public site used in share links
	ShareMessage string `toml:"share_message"`
	AltScreen    bool   `toml:"alt_screen"`
	Mouse        bool   `toml:"mouse"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Delay returns the search debounce interval
func (s SearchSettings) Delay() time.Duration {
	return time.Duration(s.DelayMillis) * time.Millisecond
}

// Timeout returns the HTTP timeout
func (d DataSettings) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c.Data.BaseURL == "" && c.Data.Dir == "" {
		return errors.New("no data source configured: set data.base_url or data.dir")
	}
	if c.Search.MinCharacters < 1 {
		return fmt.Errorf("search.min_characters must be at least 1, got %d", c.Search.MinCharacters)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("search.max_results must be at least 1, got %d", c.Search.MaxResults)
	}
	if c.Search.DelayMillis < 1 {
		return fmt.Errorf("search.delay_ms must be at least 1, got %d", c.Search.DelayMillis)
	}
	if c.Data.TimeoutSeconds < 1 {
		return fmt.Errorf("data.timeout_seconds must be at least 1, got %d", c.Data.TimeoutSeconds)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "contribcard", "config.toml")
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Data: DataSettings{
			TimeoutSeconds: 10,
			CacheSize:      256,
		},
		Search: SearchSettings{
			MinCharacters: 3,
			DelayMillis:   300,
			MaxResults:    10,
		},
		UISettings: UISettings{
			ShareMessage: "Check out my #FirstContribution #ContribCard",
			AltScreen:    true,
			Mouse:        true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
