package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

// ConfigFileName marks the root of a workspace.
const ConfigFileName = "cookiecalc.yaml"

// Finder locates a cookiecalc workspace root by searching for cookiecalc.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "cookiecalc.yaml"

	// Override, when set, is used as the root without searching
	// (COOKIECALC_WORKSPACE). It must contain the config file.
	Override string
}

type Option func(*Finder)

func WithOverride(root string) Option {
	return func(f *Finder) { f.Override = root }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{ConfigFile: ConfigFileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if f.Override != "" {
		return f.checkOverride()
	}

	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path searches from its directory.
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; cur = filepath.Dir(cur) {
		if f.hasConfig(cur) {
			return cur, nil
		}
		if filepath.Dir(cur) == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
	}
}

func (f *Finder) checkOverride() (string, error) {
	abs, err := filepath.Abs(f.Override)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.override",
			Kind: domain.KindInvalidConfig,
			Path: f.Override,
			Err:  err,
		}
	}
	if !f.hasConfig(abs) {
		return "", &domain.OpError{
			Op:   "workspacefinder.override",
			Kind: domain.KindNotFound,
			Path: abs,
			Err:  fmt.Errorf("%s missing: %w", f.ConfigFile, domain.ErrNotFound),
		}
	}
	return abs, nil
}

func (f *Finder) hasConfig(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, f.ConfigFile))
	return err == nil
}
