// Package main provides dashboardctl, the operator CLI for the admin
// dashboard: it serves the web app and inspects or seeds the data directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/klowq/admin-dashboard/internal/config"
	"github.com/klowq/admin-dashboard/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboardctl",
		Short: "Operate the Klowq admin dashboard",
		Long: `dashboardctl runs the admin dashboard server and manages the JSON files
it keeps in the data directory (blogs, preferences and the doctor roster).

Configuration comes from the environment (and an optional .env file);
flags override the matching variables.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("data-dir", "", "data directory (DATA_DIR)")
	root.PersistentFlags().String("log-level", "", "log level (LOG_LEVEL)")
	_ = viper.BindPFlag("DATA_DIR", root.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("LOG_LEVEL", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newServeCmd(), newBlogsCmd(), newPreferencesCmd(), newDoctorsCmd())
	return root
}

// loadConfig reads configuration and applies the logging settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Log.Level)
	logger.SetFormat(cfg.Log.Format)
	return cfg, nil
}
