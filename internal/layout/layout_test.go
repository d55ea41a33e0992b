package layout

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestDerive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wd        string
		container string
		wantOwner string
		wantErr   bool
	}{
		{"valid layout", filepath.Join("/home", "me", "github", "jftuga"), "github", "jftuga", false},
		{"wrong parent", filepath.Join("/home", "me", "projects", "jftuga"), "github", "", true},
		{"custom container", filepath.Join("/srv", "gitlab", "acme"), "gitlab", "acme", false},
		{"container itself is not enough", filepath.Join("/home", "me", "github"), "github", "", true},
		{"root directory", "/", "github", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			owner, err := Derive(tt.wd, tt.container)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Derive(%q, %q) = %q, want error", tt.wd, tt.container, owner)
				}
				return
			}
			if err != nil {
				t.Fatalf("Derive(%q, %q) = %v, want nil", tt.wd, tt.container, err)
			}
			if owner != tt.wantOwner {
				t.Errorf("Derive(%q, %q) = %q, want %q", tt.wd, tt.container, owner, tt.wantOwner)
			}
		})
	}
}

func TestDerive_ErrorDetails(t *testing.T) {
	t.Parallel()

	_, err := Derive("/home/me/projects/jftuga", "github")
	var notIn *ErrNotInContainer
	if !errors.As(err, &notIn) {
		t.Fatalf("Derive error = %T, want *ErrNotInContainer", err)
	}
	if notIn.Container != "github" {
		t.Errorf("Container = %q, want %q", notIn.Container, "github")
	}
	if notIn.Parent != "projects" {
		t.Errorf("Parent = %q, want %q", notIn.Parent, "projects")
	}
	if msg := notIn.Error(); !strings.Contains(msg, "projects") || !strings.Contains(msg, "github") {
		t.Errorf("Error() = %q, want both observed and expected names", msg)
	}
}
