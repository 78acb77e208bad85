package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cookiecalc/internal/infra/fsworkspace"
	"github.com/aalvaropc/cookiecalc/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a cookiecalc workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				path = "."
			}

			root, err := usecase.NewInitWorkspace(fsworkspace.NewInitializer()).Execute(path, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s workspace at %s\n", styles.OK.Render("Initialized"), root)
			fmt.Fprintf(out, "%s\n", styles.Muted.Render("next: cookiecalc recipe summarize -r chocolate-chip"))
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Directory to initialize (defaults to the current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing workspace files")
	return c
}
