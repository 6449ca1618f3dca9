package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [id]",
	Short: "Display one exercise by id or id prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, closeStore, err := openController(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := c.Show(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to get exercise: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showExCmd)
}
