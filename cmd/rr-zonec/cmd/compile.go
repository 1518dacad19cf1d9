package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/config"
	"github.com/haukened/rr-wire/internal/dns/store"
	"github.com/haukened/rr-wire/internal/dns/zone"
)

// compileCmd loads every zone under the zone directory and writes the
// compiled store.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile zone files into a queryable store",
	Long: `Compile parses every zone file under the zone directory, encodes each
record into wire form, and writes the result to the compiled-zone store.

Example:
  rr-zonec --zones ./zones --store ./zones.db compile`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompile(cfg)
	},
}

func runCompile(cfg *config.AppConfig) error {
	zones, err := zone.LoadZoneDirectory(cfg.ZoneDir, cfg.DefaultTTL)
	if err != nil {
		return fmt.Errorf("loading zones: %w", err)
	}
	if len(zones) == 0 {
		return fmt.Errorf("no zone files found under %s", cfg.ZoneDir)
	}

	db, err := store.Open(cfg.StorePath, int(cfg.CacheSize))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	total := 0
	for root, records := range zones {
		if err := db.PutZone(root, records); err != nil {
			return fmt.Errorf("storing zone %s: %w", root, err)
		}
		log.Info(map[string]any{"zone": root, "records": len(records)}, "compiled zone")
		total += len(records)
	}
	log.Info(map[string]any{"zones": len(zones), "records": total, "store": cfg.StorePath}, "compile complete")
	return nil
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
