package config

import (
	"log"
	"os"
	"time"

	"github.com/todokata/todoapi/pkg/todoapi"
)

// Overrides holds values given on the command line. Zero fields are ignored.
type Overrides struct {
	BaseURL string
	Timeout time.Duration
}

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Command-line overrides
// 2. Project config (todo.toml)
// 3. Global config (~/.todo/config.toml)
// 4. Built-in defaults (todoapi.DefaultBaseURL, 30s)
type ResolvedConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ResolveConfig discovers the project config, loads the global config,
// and merges them with the overrides according to precedence rules.
func ResolveConfig(overrides Overrides) (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return ResolveConfigFrom(homeDir, workDir, overrides)
}

// ResolveConfigFrom resolves config using explicit home and working directories.
func ResolveConfigFrom(homeDir, workDir string, overrides Overrides) (*ResolvedConfig, error) {
	projectCfg, err := discoverProjectConfigFrom(workDir)
	if err != nil {
		return nil, err
	}

	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		BaseURL: todoapi.DefaultBaseURL,
		Timeout: todoapi.DefaultTimeout,
	}

	if globalCfg.BaseURL != "" {
		resolved.BaseURL = globalCfg.BaseURL
	}
	if globalCfg.Timeout != 0 {
		resolved.Timeout = globalCfg.Timeout
	}

	if projectCfg.BaseURL != "" {
		resolved.BaseURL = projectCfg.BaseURL
	}
	if projectCfg.Timeout != 0 {
		resolved.Timeout = projectCfg.Timeout
	}

	if overrides.BaseURL != "" {
		if err := validateBaseURL(overrides.BaseURL); err != nil {
			return nil, err
		}
		resolved.BaseURL = overrides.BaseURL
	}
	if overrides.Timeout != 0 {
		resolved.Timeout = overrides.Timeout
	}

	return resolved, nil
}

// ClientOptions converts the resolved config into SDK options. logger may be nil.
func (c *ResolvedConfig) ClientOptions(logger *log.Logger) []todoapi.ClientOption {
	opts := []todoapi.ClientOption{
		todoapi.WithBaseURL(c.BaseURL),
		todoapi.WithTimeout(c.Timeout),
	}
	if logger != nil {
		opts = append(opts, todoapi.WithLogger(logger))
	}
	return opts
}
