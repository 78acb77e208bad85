package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/catalog"
	"github.com/aalvaropc/cookiecalc/internal/infra/config"
	"github.com/aalvaropc/cookiecalc/internal/infra/workspacefinder"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "cookiecalc.yaml"))
	assertFileExists(t, filepath.Join(tmp, "ingredients.yaml"))
	assertFileExists(t, filepath.Join(tmp, "recipes", "chocolate-chip.yaml"))
	assertFileExists(t, filepath.Join(tmp, ".cookiecalc", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_Init_TemplatesLoad(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	if _, err := workspacefinder.LoadConfig(tmp); err != nil {
		t.Fatalf("template config invalid: %v", err)
	}

	custom, err := config.LoadIngredients(filepath.Join(tmp, "ingredients.yaml"))
	if err != nil {
		t.Fatalf("template ingredients invalid: %v", err)
	}

	reg := catalog.NewRegistry(catalog.WithBuiltins(), catalog.WithIngredients(custom))
	r, err := config.LoadRecipe(filepath.Join(tmp, "recipes", "chocolate-chip.yaml"), reg)
	if err != nil {
		t.Fatalf("template recipe invalid: %v", err)
	}
	if r.Name != "Chocolate Chip Cookies" || len(r.Items) != 7 {
		t.Fatalf("unexpected recipe: %+v", r)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "cookiecalc.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing cookiecalc.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read cookiecalc.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected cookiecalc.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read cookiecalc.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "cookiecalc:") {
		t.Fatalf("expected cookiecalc.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
