package cli

import "github.com/spf13/cobra"

func unitsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "units",
		Short: "List supported units and their conversion factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printUnits(cmd.OutOrStdout(), format)
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
