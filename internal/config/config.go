package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/hmans/usergraph/internal/user"
)

// ConfigFile is the default config file name, looked up in the working directory.
// Files ending in .yml or .yaml are read and written as YAML, anything else as TOML.
const ConfigFile = "usergraph.toml"

// DefaultPort is the port the server listens on when nothing else is configured.
const DefaultPort = 8080

// PortEnv names the environment variable that overrides the configured port.
const PortEnv = "PORT"

var ErrInvalidPort = errors.New("port must be between 1 and 65535")

// Config holds the usergraph configuration.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Seed   []user.User  `toml:"seed,omitempty" yaml:"seed,omitempty"`
}

// ServerConfig defines settings for the HTTP server.
type ServerConfig struct {
	Port int `toml:"port" yaml:"port"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		Seed:   append([]user.User(nil), user.DefaultSeed...),
	}
}

// Load reads configuration from the given path.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := unmarshal(path, data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Apply defaults for missing values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if len(cfg.Seed) == 0 {
		cfg.Seed = append([]user.User(nil), user.DefaultSeed...)
	}

	if err := validatePort(cfg.Server.Port); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the given path.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolvePort returns the port to listen on. A non-zero flag value wins,
// then the PORT environment variable, then the config file.
func (c *Config) ResolvePort(flagPort int) (int, error) {
	if flagPort != 0 {
		return flagPort, validatePort(flagPort)
	}

	if env := os.Getenv(PortEnv); env != "" {
		port, err := strconv.Atoi(env)
		if err != nil {
			return 0, fmt.Errorf("%s=%q: %w", PortEnv, env, ErrInvalidPort)
		}
		return port, validatePort(port)
	}

	return c.Server.Port, validatePort(c.Server.Port)
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, cfg)
	}
	return toml.Unmarshal(data, cfg)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%d: %w", port, ErrInvalidPort)
	}
	return nil
}
