package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/everyday/cli/internal/api"
)

// Theme names accepted in the config file.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrLocked is returned by Save while another process is writing the config.
var ErrLocked = errors.New("config is being written by another process")

// Config holds CLI configuration stored at ~/.everyday/config.
type Config struct {
	APIToken   string `yaml:"api_token"`
	Language   string `yaml:"language,omitempty"`
	Kind       string `yaml:"kind,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	UserAgent  string `yaml:"user_agent,omitempty"`
	Hyperlinks *bool  `yaml:"hyperlinks,omitempty"`
}

// Dir returns the directory holding config and logs.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".everyday")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config")
}

// Load reads and parses the config file. Returns error if missing or insecure.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm != 0600 {
		return nil, fmt.Errorf("config permissions too open: %04o (want 0600)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("config missing api_token")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults returns a config with every optional field filled.
func Defaults() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = api.DefaultLanguage
	}
	if c.Kind == "" {
		c.Kind = string(api.DefaultKind)
	}
	if c.Theme == "" {
		c.Theme = ThemeAuto
	}
	if c.UserAgent == "" {
		c.UserAgent = api.DefaultUserAgent
	}
}

// Validate rejects unknown themes and feed kinds.
func (c *Config) Validate() error {
	switch c.Theme {
	case "", ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("config theme %q: want auto, light or dark", c.Theme)
	}
	if _, err := api.ParseKind(c.Kind); err != nil {
		return fmt.Errorf("config kind: %w", err)
	}
	return nil
}

// HyperlinksEnabled reports whether links are emitted as terminal hyperlinks.
func (c *Config) HyperlinksEnabled() bool {
	if c == nil || c.Hyperlinks == nil {
		return true
	}
	return *c.Hyperlinks
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	if !locked {
		return ErrLocked
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
