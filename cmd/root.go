package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/overload/internal/config"
	"github.com/misterclayt0n/overload/internal/logging"
	"github.com/misterclayt0n/overload/internal/storage"
	"github.com/misterclayt0n/overload/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "overload",
	Short:         "Three-day progressive overload rep schemes from your max",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		logging.Setup(logging.LoggerSetupParams{
			LogFileName: cfg.Log.File,
			LogToStdout: cfg.Log.ToStdout,
			LogLevel:    cfg.Log.Level,
		})
		logrus.WithField("command", cmd.Name()).Debug("running command")
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// openController connects to the configured storage. The returned func closes it.
func openController(ctx context.Context, cmd *cobra.Command) (*ui.Controller, func(), error) {
	st, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	c := ui.NewController(
		storage.NewExerciseStore(st),
		cmd.OutOrStdout(),
		ui.WithTimestampFormat(loc, cfg.Display.TimestampLayout),
	)
	return c, func() { st.Close() }, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/overload/config.toml)")
}
