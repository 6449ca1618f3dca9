package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/misterclayt0n/overload/internal/config"
	"github.com/misterclayt0n/overload/internal/storage"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Config written to %s\n", path)
		}

		st, err := storage.Open(cmd.Context(), cfg.DB)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Database initialized successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
