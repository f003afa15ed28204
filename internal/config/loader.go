package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".wfkit"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk shape of the .wfkit configuration file.
//
// Example:
//
//	github:
//	  token: ghp_exampletoken
//	fetch:
//	  topic: alfred-workflow
//	  output: workflows.json
type File struct {
	// GitHub holds API credentials.
	GitHub GitHubConfig `yaml:"github"`

	// Fetch holds fetch command overrides.
	Fetch FetchConfig `yaml:"fetch"`
}

// GitHubConfig holds GitHub API settings from the config file.
type GitHubConfig struct {
	// Token is sent as a bearer Authorization header when non-empty.
	Token string `yaml:"token"`
}

// FetchConfig holds fetch command overrides from the config file.
type FetchConfig struct {
	// Topic overrides the default search topic.
	Topic string `yaml:"topic"`

	// Output overrides the default catalog output path.
	Output string `yaml:"output"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .wfkit in the current directory
//  3. Look for .wfkit in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply merges file settings into the Config. File values fill fields the
// caller has not already set from flags; flags always win, so Apply must
// run before flag values are copied in.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.GitHub.Token != "" {
		cfg.Token = f.GitHub.Token
	}
	if f.Fetch.Topic != "" {
		cfg.Topics = []string{f.Fetch.Topic}
	}
	if f.Fetch.Output != "" {
		cfg.Output = f.Fetch.Output
	}
}
