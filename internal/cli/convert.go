package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/logger"
	"github.com/aalvaropc/cookiecalc/internal/usecase"
)

func convertCmd(a *app) *cobra.Command {
	var to string
	var ingredient string
	var format string

	c := &cobra.Command{
		Use:   "convert <amount> <unit>",
		Short: "Convert an amount to another unit or unit system",
		Example: `  cookiecalc convert 1 cup --to g --ingredient "all purpose flour"
  cookiecalc convert 1 kg --to lb
  cookiecalc convert 3 tbsp --to metric`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			if math.IsNaN(amount) || math.IsInf(amount, 0) {
				return fmt.Errorf("invalid amount %q: must be a finite number", args[0])
			}

			ws, err := a.loadWorkspaceOrBuiltins()
			if err != nil {
				return err
			}

			system, err := domain.ParseSystem(ws.cfg.Defaults.System)
			if err != nil {
				return err
			}

			uc := usecase.NewConvertMeasurement(ws.catalog,
				usecase.WithDefaultSystem(system),
				usecase.WithConvertLogger(logger.L()),
			)

			res, err := uc.Execute(cmd.Context(), usecase.ConvertRequest{
				Amount:     amount,
				From:       args[1],
				To:         to,
				Ingredient: ingredient,
			})
			if err != nil {
				return err
			}

			return printConversion(cmd.OutOrStdout(), res, ws.format, format)
		},
	}

	c.Flags().StringVarP(&to, "to", "t", "", "Target unit, or metric|imperial (defaults to the workspace default system)")
	c.Flags().StringVarP(&ingredient, "ingredient", "i", "", "Ingredient whose density bridges volume and weight")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
