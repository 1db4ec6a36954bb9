package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/glint-dev/glint/internal/errors"
	"github.com/glint-dev/glint/pkg/view"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "glint.json"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"
)

// Config represents the complete glint.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Server contains server settings.
	Server ServerConfig `json:"server,omitempty"`

	// View contains view-layer rendering settings.
	View view.Settings `json:"view,omitempty"`

	// Snapshot is the path to a YAML index snapshot loaded at startup.
	Snapshot string `json:"snapshot,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	host := s.Host
	port := s.Port
	if port == 0 {
		port = DefaultPort
	}
	return host + ":" + strconv.Itoa(port)
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		View: *view.DefaultSettings(),
	}
}

// Load reads configuration from the specified directory. It looks for
// glint.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. Fields
// absent from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No glint.json found in " + filepath.Dir(path)).
				WithSuggestion("Create glint.json or run from the project root")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse glint.json: " + err.Error()).
			WithSuggestion("Check that glint.json is valid JSON")
	}

	cfg.configPath = path
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find searches dir and its ancestors for glint.json and loads the
// first one found.
func Find(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.New("E100").Wrap(err)
	}

	for {
		path := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	return nil, errors.New("E100").
		WithDetail("No glint.json found in " + dir + " or any parent directory").
		WithSuggestion("Create glint.json or run from inside the project")
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns where the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// validate rejects values the rest of the system cannot run with.
func (c *Config) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E102").
			WithDetail("server.port must be between 0 and 65535")
	}
	// Depth 0 is legal: every value renders as the truncation
	// placeholder.
	if c.View.MaxRecursiveRenderDepth < 0 {
		return errors.New("E102").
			WithDetail("view.maxRecursiveRenderDepth must not be negative")
	}
	return nil
}
