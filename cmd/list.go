package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamusis/medref/internal/catalog"
	"github.com/kamusis/medref/internal/content"
)

var (
	flagListCategory string
	flagListGroup    bool
)

var listCmd = &cobra.Command{
	Use:   "list <domain>",
	Short: "List the entries of a domain",
	Long: `List entries of a domain in registration order.

Examples:
  medref list dental
  medref list dental --category cosmetic
  medref list transplant --group`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only list entries of this category")
	listCmd.Flags().BoolVar(&flagListGroup, "group", false, "Group entries by category, including empty ones")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	d, err := cat.Domain(args[0])
	if err != nil {
		return fmt.Errorf("%w\nKnown domains: %s", err, strings.Join(cat.Names(), ", "))
	}
	out := cmd.OutOrStdout()

	switch {
	case flagListCategory != "":
		docs, err := d.ByCategory(flagListCategory)
		if errors.Is(err, content.ErrInvalidCategory) {
			return fmt.Errorf("%w\nValid categories for %s: %s", err, d.Name(), strings.Join(d.Categories(), ", "))
		}
		if err != nil {
			return err
		}
		printSection(out, fmt.Sprintf("%s / %s", d.Title(), flagListCategory))
		if len(docs) == 0 {
			printMiss(out, "", "no entries in this category")
			return nil
		}
		return printDocTable(out, docs, false)

	case flagListGroup:
		return printGroups(out, d)

	default:
		printSection(out, d.Title())
		return printDocTable(out, d.Search(""), true)
	}
}

func printGroups(out io.Writer, d catalog.Domain) error {
	r := newRenderer(out)
	printSection(out, d.Title())
	for _, g := range d.Grouped() {
		fmt.Fprintf(out, "\n%s (%d):\n", r.heading(g.Category), len(g.Documents))
		if len(g.Documents) == 0 {
			printMiss(out, "", "none")
			continue
		}
		if err := printDocTable(out, g.Documents, false); err != nil {
			return err
		}
	}
	return nil
}

// printDocTable prints one row per document: id, optional category, name.
func printDocTable(out io.Writer, docs []content.Document, withCategory bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, doc := range docs {
		if withCategory {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", doc.ID, doc.Category, doc.Name)
		} else {
			fmt.Fprintf(tw, "  %s\t%s\n", doc.ID, doc.Name)
		}
	}
	return tw.Flush()
}
