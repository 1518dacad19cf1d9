// Package cmd implements the rr-zonec command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/config"
)

var cfg *config.AppConfig

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rr-zonec",
	Short: "rr-zonec - DNS zone compiler",
	Long: `rr-zonec loads DNS zones from master files or structured
YAML/JSON/TOML documents, validates them through the typed record codecs,
and compiles them into a queryable store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		cfg = loaded
		if v, _ := cmd.Flags().GetString("zones"); v != "" {
			cfg.ZoneDir = v
		}
		if v, _ := cmd.Flags().GetString("store"); v != "" {
			cfg.StorePath = v
		}
		if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
			return fmt.Errorf("logging configuration error: %w", err)
		}
		return nil
	},
}

// Execute runs the root command; called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("zones", "z", "", "Zone directory (overrides ZONEC_ZONE_DIR)")
	rootCmd.PersistentFlags().StringP("store", "s", "", "Compiled store path (overrides ZONEC_STORE_PATH)")
}
