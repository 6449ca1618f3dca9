package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteExerciseCmd = &cobra.Command{
	Use:   "delete-exercise [id]",
	Short: "Delete an exercise and all of its days",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, closeStore, err := openController(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		g, ok, err := c.Delete(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("Failed to delete exercise: %w", err)
		}
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "No exercise matches '%s', nothing deleted\n", args[0])
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exercise '%s' deleted successfully\n", g.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteExerciseCmd)
}
