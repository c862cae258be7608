package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hmans/usergraph/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Creates a usergraph.toml config file in the current directory, holding the
default port and seed records. Use --config to write somewhere else; a path
ending in .yml or .yaml is written as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !initForce {
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
		}

		if err := config.Default().Save(configPath); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
