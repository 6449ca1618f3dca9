package cmd

import (
	"fmt"

	"github.com/misterclayt0n/overload/internal/scheme"
	"github.com/misterclayt0n/overload/internal/ui"
	"github.com/spf13/cobra"
)

var (
	exerciseName string
	exerciseMax  string
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Create an exercise and its three-day rep scheme",
	Long: "Create an exercise from its name and maximum. The reps for Day 1, Day 2 and Day 3 are\n" +
		"computed and saved together. Missing values are asked for interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		form := ui.NewForm(cmd.InOrStdin(), cmd.OutOrStdout(), exerciseName, exerciseMax)
		if err := form.Fill(); err != nil {
			return err
		}

		c, closeStore, err := openController(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		g, err := c.Create(cmd.Context(), form.Name, form.Max)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Created exercise: %s (%d days)\n", g.Name, len(scheme.TrainingDays))
		ui.RenderGroup(cmd.OutOrStdout(), g)
		return nil
	},
}

func init() {
	addExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
	addExerciseCmd.Flags().StringVarP(&exerciseMax, "max", "m", "", "Maximum the scheme is computed from")

	rootCmd.AddCommand(addExerciseCmd)
}
