package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cookiecalc/internal/infra/logger"
	"github.com/aalvaropc/cookiecalc/internal/infra/workspacefinder"
)

// app holds state shared by every subcommand of one invocation.
type app struct {
	workspace string
	debug     bool

	env     workspacefinder.EnvOverrides
	cleanup func() error
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

func Execute() {
	a := &app{}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	a.close()
	if err != nil {
		printError(os.Stderr, err, a.debug)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cookiecalc",
		Short:         "cookiecalc: baking unit conversions with ingredient densities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging to .cookiecalc/logs/cookiecalc.log")
	cmd.PersistentFlags().StringVarP(&a.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(a),
		unitsCmd(),
		ingredientsCmd(a),
		recipesCmd(a),
		recipeCmd(a),
		validateCmd(a),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setup reads COOKIECALC_* overrides and starts file logging when a
// workspace can be found. Outside a workspace logs are discarded.
func (a *app) setup() error {
	env, err := workspacefinder.ParseEnv()
	if err != nil {
		return err
	}
	a.env = env
	if env.Debug {
		a.debug = true
	}

	if root, err := a.resolveRoot(); err == nil {
		if cleanup, err := logger.Setup(logger.Config{Root: root, Debug: a.debug}); err == nil {
			a.cleanup = cleanup
		}
	}
	return nil
}

func (a *app) resolveRoot() (string, error) {
	if a.workspace != "" {
		abs, err := filepath.Abs(a.workspace)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return workspacefinder.NewFinder(workspacefinder.WithOverride(abs)).FindRoot(abs)
	}
	if a.env.Workspace != "" {
		return workspacefinder.NewFinder(workspacefinder.WithOverride(a.env.Workspace)).FindRoot(a.env.Workspace)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return workspacefinder.NewFinder().FindRoot(wd)
}
