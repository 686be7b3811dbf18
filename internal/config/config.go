// Package config provides configuration management for lazyopencode.
// It supports YAML and TOML configuration files, environment variables, and
// sensible defaults. Only lazyopencode's own behavior is configurable here;
// the opencode artifact layout it scans is fixed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/klauern/lazyopencode/internal/util"
)

// Config represents the complete lazyopencode configuration.
type Config struct {
	// Roots overrides the directories scanned for customizations.
	Roots RootsConfig `yaml:"roots" toml:"roots"`

	// Output configures display preferences.
	Output OutputConfig `yaml:"output" toml:"output"`
}

// RootsConfig holds the scan root overrides.
type RootsConfig struct {
	// Project is the project directory to scan. Defaults to the working
	// directory; ~ expands to the home directory.
	Project string `yaml:"project,omitempty" toml:"project,omitempty"`

	// Home overrides the home directory the global config root is derived
	// from. Mainly useful for testing against fixture trees.
	Home string `yaml:"home,omitempty" toml:"home,omitempty"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Format is the default output format (table, json).
	Format string `yaml:"format" toml:"format"`

	// Color controls color output (auto, always, never).
	Color string `yaml:"color" toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "table",
			Color:  "auto",
		},
	}
}

// configFileNames are the supported config file names, in lookup order.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// FilePath returns the path of the first config file that exists, or empty
// when none does.
func FilePath() string {
	for _, name := range configFileNames {
		path := filepath.Join(util.LazyopencodeConfigPath(), name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load loads the configuration from file, merging with defaults and
// applying environment overrides. A missing config file is not an error.
func Load() (*Config, error) {
	path := FilePath()
	if path == "" {
		cfg := Default()
		cfg.applyEnvironment()
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file. The decoder is
// chosen by extension: .toml uses TOML, everything else YAML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %q: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %q: %w", path, err)
		}
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// applyEnvironment applies LAZYOPENCODE_* environment overrides on top of
// whatever the file provided.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("LAZYOPENCODE_PROJECT"); v != "" {
		c.Roots.Project = v
	}
	if v := os.Getenv("LAZYOPENCODE_HOME"); v != "" {
		c.Roots.Home = v
	}
	if v := os.Getenv("LAZYOPENCODE_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("LAZYOPENCODE_COLOR"); v != "" {
		c.Output.Color = v
	}
}

// ProjectDir returns the configured project root, expanded and defaulted to
// the working directory.
func (c *Config) ProjectDir() string {
	if c.Roots.Project == "" {
		return util.WorkingDir()
	}
	return util.ExpandHome(c.Roots.Project)
}

// HomeDir returns the configured home directory, expanded and defaulted to
// the user's actual home.
func (c *Config) HomeDir() string {
	if c.Roots.Home == "" {
		return util.HomeDir()
	}
	return util.ExpandHome(c.Roots.Home)
}
