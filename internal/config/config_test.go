package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Container != "github" {
		t.Errorf("Container = %q, want %q", cfg.Container, "github")
	}
	if cfg.Host != "https://github.com" {
		t.Errorf("Host = %q, want %q", cfg.Host, "https://github.com")
	}
	if cfg.APIBase != "" {
		t.Errorf("APIBase = %q, want empty", cfg.APIBase)
	}
}

func TestRemoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		host  string
		owner string
		repo  string
		want  string
	}{
		{"default host", "https://github.com", "jftuga", "gclone", "https://github.com/jftuga/gclone"},
		{"trailing slash trimmed", "https://github.com/", "jftuga", "gclone", "https://github.com/jftuga/gclone"},
		{"enterprise host", "https://git.example.com", "acme", "tool", "https://git.example.com/acme/tool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Config{Host: tt.host}
			if got := cfg.RemoteURL(tt.owner, tt.repo); got != tt.want {
				t.Errorf("RemoteURL(%q, %q) = %q, want %q", tt.owner, tt.repo, got, tt.want)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFrom = %v, want nil", err)
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("override container and host", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "container = \"gitlab\"\nhost = \"https://gitlab.example.com\"\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom = %v, want nil", err)
		}
		if cfg.Container != "gitlab" {
			t.Errorf("Container = %q, want %q", cfg.Container, "gitlab")
		}
		if cfg.Host != "https://gitlab.example.com" {
			t.Errorf("Host = %q, want %q", cfg.Host, "https://gitlab.example.com")
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "container = \"sourcehut\"\n")
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom = %v, want nil", err)
		}
		if cfg.Host != Default().Host {
			t.Errorf("Host = %q, want default %q", cfg.Host, Default().Host)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "container = [broken\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom = nil, want parse error")
		}
	})

	t.Run("container with path separator rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "container = \"git/hub\"\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom = nil, want validation error")
		}
	})

	t.Run("non-http host rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "host = \"git@github.com\"\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom = nil, want validation error")
		}
	})

	t.Run("non-http api_base rejected", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "api_base = \"ftp://example.com\"\n")
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom = nil, want validation error")
		}
	})
}
