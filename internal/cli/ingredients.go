package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

func ingredientsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "ingredients",
		Short: "Inspect the ingredient catalog",
	}

	c.AddCommand(ingredientsListCmd(a))
	return c
}

func ingredientsListCmd(a *app) *cobra.Command {
	var category string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in and workspace ingredients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := a.loadWorkspaceOrBuiltins()
			if err != nil {
				return err
			}

			list := ws.catalog.List()
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				list = filterCategory(list, c)
			}

			out := cmd.OutOrStdout()
			if format != formatJSON {
				if ws.root != "" {
					fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
				} else {
					fmt.Fprintf(out, "%s\n\n", styles.Muted.Render("(no workspace: built-in ingredients)"))
				}
			}
			return printIngredients(out, list, format)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Only list one category (flour|sugar|fat|liquid|leavening|other)")
	cmd.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return cmd
}

func filterCategory(list []domain.Ingredient, c domain.Category) []domain.Ingredient {
	out := list[:0:0]
	for _, ing := range list {
		if ing.Category() == c {
			out = append(out, ing)
		}
	}
	return out
}
