package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmans/usergraph/internal/config"
	"github.com/hmans/usergraph/internal/user"
)

var store *user.Store
var cfg *config.Config
var configPath string

var rootCmd = &cobra.Command{
	Use:   "usergraph",
	Short: "A GraphQL API over an in-memory list of users",
	Long: `Usergraph serves a small GraphQL API backed by an in-memory list of users.
Users can be listed and appended; nothing is persisted, so every process
starts from the configured seed records.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		store = user.NewStore(cfg.Seed)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFile, "Path to the config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
