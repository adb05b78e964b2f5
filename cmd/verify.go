package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/medref/internal/snapshot"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <dir>",
	Short: "Compare a snapshot with the current content",
	Long: `Compare a snapshot written by 'medref export' with the content medref
loads now. Reports entries whose content changed (stale), entries missing
from the snapshot, and snapshot entries that no longer exist (extra).`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	reports, err := snapshot.Verify(args[0], cat.Domains())
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	out := cmd.OutOrStdout()
	drift := 0
	for _, r := range reports {
		if r.OK() {
			printOK(out, r.Domain, "up to date")
			continue
		}
		drift++
		if len(r.Stale) > 0 {
			printWarn(out, r.Domain, "stale: "+strings.Join(r.Stale, ", "))
		}
		if len(r.Missing) > 0 {
			printMiss(out, r.Domain, "missing: "+strings.Join(r.Missing, ", "))
		}
		if len(r.Extra) > 0 {
			printInfo(out, r.Domain, "extra: "+strings.Join(r.Extra, ", "))
		}
	}
	if drift > 0 {
		return fmt.Errorf("%d domain(s) differ from the snapshot; run 'medref export %s' to refresh", drift, args[0])
	}
	return nil
}
