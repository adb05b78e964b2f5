package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List reference domains with their categories",
	Args:  cobra.NoArgs,
	RunE:  runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, _ []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	r := newRenderer(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tENTRIES\tTITLE")
	for _, d := range cat.Domains() {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", d.Name(), d.Len(), d.Title())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range cat.Domains() {
		fmt.Fprintf(out, "\n%s: %s\n", d.Name(), r.muted(strings.Join(d.Categories(), ", ")))
	}
	return nil
}
