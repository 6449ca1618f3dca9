package cmd

import (
	"github.com/misterclayt0n/overload/internal/ui"
	"github.com/spf13/cobra"
)

var previewMax string

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Preview the three-day rep scheme for a maximum without saving it",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ui.NewController(nil, cmd.OutOrStdout())
		return c.Preview(previewMax)
	},
}

func init() {
	schemeCmd.Flags().StringVarP(&previewMax, "max", "m", "", "Maximum to compute the scheme from")
	schemeCmd.MarkFlagRequired("max")

	rootCmd.AddCommand(schemeCmd)
}
