package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/medref/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write a snapshot of every domain to a directory",
	Long: `Write <dir>/<domain>/manifest.json and entries.jsonl for every domain.

Each domain is written to a temporary directory and swapped into place, so a
previous snapshot is replaced whole. Use 'medref verify <dir>' later to see
what changed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	dir := args[0]
	manifests, err := snapshot.Export(dir, cat.Domains())
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, m := range manifests {
		appLog.Debug("snapshot written", zap.String("domain", m.Domain), zap.String("fingerprint", m.Fingerprint))
		printOK(out, m.Domain, fmt.Sprintf("%d entries (fingerprint %s)", m.Count, m.Fingerprint))
	}
	printInfo(out, "", fmt.Sprintf("snapshot written: %s", dir))
	return nil
}
