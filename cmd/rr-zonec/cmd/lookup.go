package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-wire/internal/dns/config"
	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/store"
)

// lookupCmd queries a compiled store.
var lookupCmd = &cobra.Command{
	Use:   "lookup <name> <type>",
	Short: "Look up records in a compiled store",
	Long: `Lookup queries the compiled-zone store for an owner name and record type
and prints each record as a zone-file line.

Example:
  rr-zonec --store ./zones.db lookup mail.example.com MX`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLookup(cfg, cmd, args[0], args[1])
	},
}

func runLookup(cfg *config.AppConfig, cmd *cobra.Command, nameArg, typeArg string) error {
	if !strings.HasSuffix(nameArg, ".") {
		nameArg += "."
	}
	name, err := domain.ParseName(nameArg, nil)
	if err != nil {
		return fmt.Errorf("invalid name %q: %w", nameArg, err)
	}
	rrType := domain.RRTypeFromString(strings.ToUpper(typeArg))
	if rrType == 0 {
		return fmt.Errorf("unknown record type %q", typeArg)
	}

	db, err := store.Open(cfg.StorePath, int(cfg.CacheSize))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	records, err := db.Lookup(name, rrType)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no %s records for %s", rrType, name)
	}
	for _, rr := range records {
		fmt.Fprintln(cmd.OutOrStdout(), rr)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
