package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haukened/rr-wire/internal/dns/domain"
	"github.com/haukened/rr-wire/internal/dns/message"
	"github.com/haukened/rr-wire/internal/dns/wire"
	"github.com/haukened/rr-wire/internal/dns/zone"
)

// fmtCmd re-emits a master file through the codecs, either as normalized
// text or as DNSSEC canonical wire form.
var fmtCmd = &cobra.Command{
	Use:   "fmt <master-file>",
	Short: "Reformat a master zone file",
	Long: `Fmt parses a master zone file and prints each record back out as a
normalized zone-file line. With --canonical, records are printed as the
hex of their RFC 4034 canonical wire form (names lowercased, no
compression) instead.

Example:
  rr-zonec fmt --origin example.com. zones/example.com.zone`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		originArg, _ := cmd.Flags().GetString("origin")
		canonical, _ := cmd.Flags().GetBool("canonical")
		return runFmt(cmd, args[0], originArg, canonical)
	},
}

func runFmt(cmd *cobra.Command, path, originArg string, canonical bool) error {
	if originArg != "" && !strings.HasSuffix(originArg, ".") {
		originArg += "."
	}
	origin := domain.Root()
	if originArg != "" {
		parsed, err := domain.ParseName(originArg, nil)
		if err != nil {
			return fmt.Errorf("invalid origin %q: %w", originArg, err)
		}
		origin = parsed
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := zone.ParseMaster(f, origin, cfg.DefaultTTL)
	if err != nil {
		return err
	}
	for _, rr := range records {
		if canonical {
			e := wire.NewCanonicalEncoder()
			if err := message.EmitRecord(e, rr); err != nil {
				return fmt.Errorf("encoding %s: %w", rr.Key(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(e.Bytes()))
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), rr)
	}
	return nil
}

func init() {
	fmtCmd.Flags().String("origin", "", "Origin for relative names in the file")
	fmtCmd.Flags().Bool("canonical", false, "Print RFC 4034 canonical wire form as hex")
	rootCmd.AddCommand(fmtCmd)
}
