package cmd

import (
	"github.com/spf13/cobra"
)

var limitExercises int

// historyCmd shows every saved exercise, most recent first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display saved exercises, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, closeStore, err := openController(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		c.History(cmd.Context(), limitExercises)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&limitExercises, "limit", "l", 0, "Number of exercises to display (0 shows all)")
}
