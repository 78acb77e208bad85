package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cookiecalc/internal/infra/logger"
	"github.com/aalvaropc/cookiecalc/internal/usecase"
)

func recipesCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "recipes",
		Short: "Manage recipes in a workspace",
	}

	c.AddCommand(recipesListCmd(a))
	return c
}

func recipesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := a.loadWorkspace()
			if err != nil {
				return err
			}

			refs, err := ws.recipes.ListRecipes(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no recipes found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}

func recipeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "recipe",
		Short: "Work with a single recipe",
	}

	c.AddCommand(recipeSummarizeCmd(a))
	return c
}

func recipeSummarizeCmd(a *app) *cobra.Command {
	var recipe string
	var format string

	c := &cobra.Command{
		Use:   "summarize",
		Short: "Break a recipe's weight down by ingredient category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := a.loadWorkspace()
			if err != nil {
				return err
			}

			path, err := resolveRecipePath(ws, recipe)
			if err != nil {
				return err
			}

			summary, err := usecase.NewSummarizeRecipe(ws.recipes).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}
			logger.L().Info("recipe.summarized", "recipe", summary.Name, "total_grams", summary.TotalGrams)

			return printSummary(cmd.OutOrStdout(), summary, ws.format, format)
		},
	}

	c.Flags().StringVarP(&recipe, "recipe", "r", "", "Recipe name or path (required)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	_ = c.MarkFlagRequired("recipe")
	return c
}
