package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the gclone configuration. It is constructed once at startup
// and passed explicitly to the components that need it.
type Config struct {
	// Container is the required parent directory name. gclone only runs
	// from a directory directly under it, e.g. github/<owner>/.
	Container string `toml:"container"`

	// Host is the base URL used to construct clone URLs.
	Host string `toml:"host"`

	// APIBase overrides the repository-metadata API endpoint.
	// Empty means the public GitHub API.
	APIBase string `toml:"api_base"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Container: "github",
		Host:      "https://github.com",
	}
}

// RemoteURL returns the clone URL for a repository under an owner.
func (c Config) RemoteURL(owner, repo string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.Host, "/"), owner, repo)
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gclone", "config.toml"), nil
}

// Load reads config from ~/.config/gclone/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path, applying defaults for
// fields the file leaves unset.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if strings.ContainsAny(cfg.Container, `/\`) || cfg.Container == "" {
		return Default(), fmt.Errorf("invalid container %q: must be a plain directory name", cfg.Container)
	}
	if !strings.HasPrefix(cfg.Host, "http://") && !strings.HasPrefix(cfg.Host, "https://") {
		return Default(), fmt.Errorf("invalid host %q: must be an http(s) URL", cfg.Host)
	}
	if cfg.APIBase != "" && !strings.HasPrefix(cfg.APIBase, "http://") && !strings.HasPrefix(cfg.APIBase, "https://") {
		return Default(), fmt.Errorf("invalid api_base %q: must be an http(s) URL", cfg.APIBase)
	}

	return cfg, nil
}

const defaultConfig = `# gclone configuration

# Required parent directory name. gclone refuses to run unless the current
# directory sits directly under it, e.g. ~/src/github/<owner>/.
# container = "github"

# Base URL used to construct clone URLs (<host>/<owner>/<repo>).
# host = "https://github.com"

# Repository-metadata API endpoint, for GitHub Enterprise installs.
# Leave unset for the public GitHub API.
# api_base = "https://github.mycompany.com/api/v3"
`

// Init creates a default config file at ~/.config/gclone/config.toml.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}
