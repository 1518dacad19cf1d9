package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-wire/internal/dns/common/log"
	"github.com/haukened/rr-wire/internal/dns/common/utils"
	"github.com/haukened/rr-wire/internal/dns/config"
	"github.com/haukened/rr-wire/internal/dns/zone"
)

// checkCmd parses every zone without writing anything, reporting problems.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Parse and lint zone files without compiling",
	Long: `Check parses every zone file under the zone directory through the same
codecs compile uses, and additionally warns when a zone root is not a
registrable apex domain.

Example:
  rr-zonec --zones ./zones check`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cfg)
	},
}

func runCheck(cfg *config.AppConfig) error {
	zones, err := zone.LoadZoneDirectory(cfg.ZoneDir, cfg.DefaultTTL)
	if err != nil {
		return fmt.Errorf("loading zones: %w", err)
	}
	if len(zones) == 0 {
		return fmt.Errorf("no zone files found under %s", cfg.ZoneDir)
	}

	for root, records := range zones {
		bare := utils.NormalizeDNSName(root)
		if apex := utils.ApexDomain(bare); apex != bare {
			log.Warn(map[string]any{"zone": root, "apex": apex}, "zone root is not a registrable apex")
		}
		log.Info(map[string]any{"zone": root, "records": len(records)}, "zone ok")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
