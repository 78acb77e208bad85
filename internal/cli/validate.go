package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cookiecalc/internal/usecase"
)

func validateCmd(a *app) *cobra.Command {
	var recipe string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check that every recipe item resolves and converts to grams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := a.loadWorkspace()
			if err != nil {
				return err
			}

			path, err := resolveRecipePath(ws, recipe)
			if err != nil {
				return err
			}

			if err := usecase.NewValidateRecipe(ws.recipes).Execute(cmd.Context(), path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), styles.OK.Render("OK"))
			return nil
		},
	}

	c.Flags().StringVarP(&recipe, "recipe", "r", "", "Recipe name or path (required)")
	_ = c.MarkFlagRequired("recipe")
	return c
}
