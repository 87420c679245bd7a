package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the name of the project configuration file
const ConfigFileName = "todo.toml"

// ProjectConfig represents the directory-level configuration from todo.toml.
// Zero fields were not set in the file.
type ProjectConfig struct {
	Path    string
	BaseURL string
	Timeout time.Duration
}

// projectConfigFile represents the raw TOML structure
type projectConfigFile struct {
	Server serverConfig `toml:"server"`
}

// serverConfig represents the [server] section in TOML
type serverConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// parse validates the section. Empty values stay unset.
func (s serverConfig) parse() (string, time.Duration, error) {
	if s.BaseURL != "" {
		if err := validateBaseURL(s.BaseURL); err != nil {
			return "", 0, err
		}
	}

	var timeout time.Duration
	if s.Timeout != "" {
		d, err := time.ParseDuration(s.Timeout)
		if err != nil {
			return "", 0, fmt.Errorf("invalid timeout %q: %w", s.Timeout, err)
		}
		if d <= 0 {
			return "", 0, fmt.Errorf("invalid timeout %q: must be positive", s.Timeout)
		}
		timeout = d
	}

	return s.BaseURL, timeout, nil
}

// DiscoverProjectConfig finds and parses todo.toml by traversing up the
// directory tree from the current working directory.
func DiscoverProjectConfig() (*ProjectConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return discoverProjectConfigFrom(cwd)
}

// discoverProjectConfigFrom searches for todo.toml starting from the given directory.
// Returns an empty config if none is found before the filesystem root.
func discoverProjectConfigFrom(startDir string) (*ProjectConfig, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return ParseProjectConfig(configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return &ProjectConfig{}, nil
		}
		dir = parent
	}
}

// ParseProjectConfig parses the todo.toml file at the given path
func ParseProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig projectConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	baseURL, timeout, err := rawConfig.Server.parse()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &ProjectConfig{
		Path:    path,
		BaseURL: baseURL,
		Timeout: timeout,
	}, nil
}

// validateBaseURL checks that the URL is absolute http or https
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http or https URL", raw)
	}
	return nil
}
