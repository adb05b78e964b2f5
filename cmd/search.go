package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamusis/medref/internal/content"
)

var (
	flagSearchDomain string
	flagSearchK      int
	flagSearchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search entries by case-insensitive substring",
	Long: `Search names, local names, descriptions, list items and explanations.

A field matches when it contains the query. Results keep registration order
and are not ranked. With no query every entry is listed.

Examples:
  medref search gall
  medref search "root canal" --domain dental
  medref search tacrolimus --json`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&flagSearchDomain, "domain", "d", "", "Restrict the search to one domain")
	searchCmd.Flags().IntVarP(&flagSearchK, "k", "k", 0, "Maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flagSearchK < 0 {
		return fmt.Errorf("--k must not be negative")
	}
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")

	var results []content.Document
	if flagSearchDomain != "" {
		d, err := cat.Domain(flagSearchDomain)
		if err != nil {
			return err
		}
		results = d.Search(query)
	} else {
		results = cat.Search(query)
	}
	appLog.Debug("search", zap.String("query", query), zap.String("domain", flagSearchDomain), zap.Int("hits", len(results)))

	if flagSearchK > 0 && len(results) > flagSearchK {
		results = results[:flagSearchK]
	}

	out := cmd.OutOrStdout()
	if flagSearchJSON {
		if results == nil {
			results = []content.Document{}
		}
		return writeJSON(out, results)
	}
	return printSearchResults(out, query, results)
}

func printSearchResults(out io.Writer, query string, results []content.Document) error {
	r := newRenderer(out)
	fmt.Fprintf(out, "\nmedref search %q\n\n", query)
	fmt.Fprintf(out, "Results (%d found):\n", len(results))
	if len(results) == 0 {
		return nil
	}

	grouped := make(map[string][]content.Document)
	var order []string
	for _, doc := range results {
		if _, ok := grouped[doc.Domain]; !ok {
			order = append(order, doc.Domain)
		}
		grouped[doc.Domain] = append(grouped[doc.Domain], doc)
	}

	for _, domain := range order {
		items := grouped[domain]
		fmt.Fprintf(out, "\n%s (%d):\n", r.heading(domain), len(items))

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for i, doc := range items {
			fmt.Fprintf(tw, "  %d.\t%s\t%s\n", i+1, doc.ID, doc.Category)
			fmt.Fprintf(tw, "  - %s\n", strings.TrimSpace(doc.Name))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
