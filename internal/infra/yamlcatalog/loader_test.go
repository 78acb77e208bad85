package yamlcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

func TestLoad_OverlaysWorkspaceFile(t *testing.T) {
	root := t.TempDir()
	content := "ingredients:\n  - name: butter\n    category: fat\n    density: 0.959\n  - name: Tahini\n    category: fat\n    density: 1.08\n"
	if err := os.WriteFile(filepath.Join(root, "ingredients.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := NewLoader(root).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if reg.Len() != 22 {
		t.Fatalf("expected 21 builtins + 1 new, got %d", reg.Len())
	}
	butter, err := reg.Lookup("Butter")
	if err != nil {
		t.Fatalf("lookup butter: %v", err)
	}
	if butter.Density() != 0.959 {
		t.Fatalf("expected override density 0.959, got %v", butter.Density())
	}
	if _, err := reg.Lookup("tahini"); err != nil {
		t.Fatalf("lookup tahini: %v", err)
	}
}

func TestLoad_FileMissingUsesBuiltins(t *testing.T) {
	reg, err := NewLoader(t.TempDir()).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reg.Len() != 21 {
		t.Fatalf("expected 21 builtins, got %d", reg.Len())
	}
}

func TestLoad_WithoutBuiltins(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "pantry.yml"), []byte("ingredients:\n  - name: Oat Flour\n    category: flour\n    density: 0.38\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := NewLoader(root, WithIngredientsFile("pantry.yml"), WithBuiltins(false)).Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected only the workspace ingredient, got %d", reg.Len())
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "ingredients.yaml"), []byte("ingredients:\n  - name: Ghost\n    density: -1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewLoader(root).Load()
	if !domain.IsKind(err, domain.KindInvalidDensity) {
		t.Fatalf("expected KindInvalidDensity, got %v", err)
	}
}
