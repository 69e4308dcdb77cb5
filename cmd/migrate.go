package cmd

import (
	"os"

	"github.com/spf13/cobra"

	config "taskflow.com/taskflow/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the task store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := config.NewLogger(os.Stdout, cfg.LogLevel, cfg.LogFormat)

		db, err := config.New(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer config.Close(db)

		if err := config.Migrate(db); err != nil {
			return err
		}

		logger.Info("schema migrated", "dsn", cfg.DatabaseDSN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
