package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/catalog"
	"github.com/aalvaropc/cookiecalc/internal/infra/display"
	"github.com/aalvaropc/cookiecalc/internal/infra/workspacefinder"
	"github.com/aalvaropc/cookiecalc/internal/infra/yamlcatalog"
	"github.com/aalvaropc/cookiecalc/internal/infra/yamlrecipe"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

type workspaceCtx struct {
	root string // empty when running on builtins only
	cfg  domain.Config

	catalog *catalog.Registry
	recipes ports.RecipeLoader
	format  *display.Formatter
}

// loadWorkspace requires a workspace.
func (a *app) loadWorkspace() (*workspaceCtx, error) {
	root, err := a.resolveRoot()
	if err != nil {
		return nil, fmt.Errorf("workspace not found (tip: run `cookiecalc init`): %w", err)
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	reg, err := yamlcatalog.NewLoader(root, yamlcatalog.WithIngredientsFile(cfg.Paths.IngredientsFile)).Load()
	if err != nil {
		return nil, err
	}

	return newWorkspaceCtx(root, cfg, reg)
}

// loadWorkspaceOrBuiltins falls back to the built-in ingredients and default
// config when no workspace is found and none was requested.
func (a *app) loadWorkspaceOrBuiltins() (*workspaceCtx, error) {
	if a.workspace != "" || a.env.Workspace != "" {
		return a.loadWorkspace()
	}
	if _, err := a.resolveRoot(); err == nil {
		return a.loadWorkspace()
	}

	cfg := domain.DefaultConfig()
	a.env.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, &domain.OpError{Op: "cli.config", Kind: domain.KindInvalidConfig, Err: err}
	}
	return newWorkspaceCtx("", cfg, catalog.NewRegistry(catalog.WithBuiltins()))
}

func newWorkspaceCtx(root string, cfg domain.Config, reg *catalog.Registry) (*workspaceCtx, error) {
	f, err := display.FromConfig(cfg.Display)
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		catalog: reg,
		recipes: yamlrecipe.NewLoader(reg, yamlrecipe.WithRecipesDir(cfg.Paths.RecipesDir)),
		format:  f,
	}, nil
}

func resolveRecipePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("recipe is required (use --recipe or -r)")
	}

	// Paths resolve relative to the workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	recipesDir := filepath.Join(ws.root, ws.cfg.Paths.RecipesDir)

	if hasYAMLExt(in) {
		p := filepath.Join(recipesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		if p := filepath.Join(recipesDir, in+ext); fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match the recipe "name" field.
	refs, err := ws.recipes.ListRecipes(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_recipe",
		Kind: domain.KindNotFound,
		Path: recipesDir,
		Err:  fmt.Errorf("recipe %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
