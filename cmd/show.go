package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/medref/internal/catalog"
	"github.com/kamusis/medref/internal/config"
	"github.com/kamusis/medref/internal/content"
)

var (
	flagShowDomain    string
	flagShowLevel     string
	flagShowAllLevels bool
	flagShowJSON      bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry with its explanation",
	Long: `Display an entry: its description, every list section and the explanation
at the chosen level.

The level defaults to default_level from medref.yaml (or MEDREF_DEFAULT_LEVEL).
Levels: basic, intermediate, advanced, clinical, specialist (or 1-5).

Examples:
  medref show root-canal
  medref show liver-transplant --level clinical
  medref show acute-cholecystitis --all-levels`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowDomain, "domain", "d", "", "Only look in this domain")
	showCmd.Flags().StringVarP(&flagShowLevel, "level", "l", "", "Explanation level to show")
	showCmd.Flags().BoolVar(&flagShowAllLevels, "all-levels", false, "Show the explanation at every level")
	showCmd.Flags().BoolVar(&flagShowJSON, "json", false, "Print the entry as JSON")
	rootCmd.AddCommand(showCmd)
}

// shownEntry is the JSON shape of show.
type shownEntry struct {
	content.Document
	Level       string `json:"level,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, cfg, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	var level content.Level
	if !flagShowAllLevels {
		if level, err = resolveLevel(cfg); err != nil {
			return err
		}
	}

	id := args[0]
	doc, candidates, err := lookup(cat, id)
	if err != nil {
		return err
	}
	if doc == nil {
		errOut := cmd.ErrOrStderr()
		printMiss(errOut, "", fmt.Sprintf("no entry with id %q", id))
		if sug := catalog.Suggest(id, candidates, 3); len(sug) > 0 {
			fmt.Fprintln(errOut, "\n  Did you mean:")
			for _, s := range sug {
				fmt.Fprintf(errOut, "    %s\n", s)
			}
		}
		return fmt.Errorf("entry %q not found", id)
	}

	out := cmd.OutOrStdout()
	if flagShowJSON {
		v := shownEntry{Document: *doc}
		if !flagShowAllLevels {
			v.Level = level.String()
			v.Explanation = doc.Explanations.At(level)
		}
		return writeJSON(out, v)
	}
	printDocument(out, *doc, level, flagShowAllLevels)
	return nil
}

// lookup finds id in the selected domain or the whole catalog. A nil
// document means not found; candidates are the ids that were searched.
func lookup(cat *catalog.Catalog, id string) (*content.Document, []string, error) {
	if flagShowDomain != "" {
		d, err := cat.Domain(flagShowDomain)
		if err != nil {
			return nil, nil, err
		}
		if doc, ok := d.Get(id); ok {
			return &doc, nil, nil
		}
		return nil, d.IDs(), nil
	}
	if doc, ok := cat.Find(id); ok {
		return &doc, nil, nil
	}
	return nil, cat.IDs(), nil
}

func resolveLevel(cfg *config.Config) (content.Level, error) {
	s := flagShowLevel
	if s == "" {
		s = cfg.DefaultLevel
	}
	if s == "" {
		return content.LevelIntermediate, nil
	}
	return content.ParseLevel(s)
}

func printDocument(out io.Writer, doc content.Document, level content.Level, all bool) {
	r := newRenderer(out)

	title := doc.Name
	if doc.LocalName != "" {
		title += " (" + doc.LocalName + ")"
	}
	fmt.Fprintf(out, "%s\n", r.heading(title))
	fmt.Fprintf(out, "ID:       %s\n", doc.ID)
	fmt.Fprintf(out, "Domain:   %s\n", doc.Domain)
	fmt.Fprintf(out, "Category: %s\n", doc.Category)
	if doc.Description != "" {
		fmt.Fprintf(out, "\n%s\n", r.wrap(doc.Description, 0))
	}

	for _, s := range doc.Sections {
		fmt.Fprintf(out, "\n%s:\n", r.heading(s.Title))
		for _, item := range s.Items {
			fmt.Fprintf(out, "  - %s\n", strings.TrimSpace(item))
		}
	}

	levels := []content.Level{level}
	if all {
		levels = content.Levels()
	}
	for _, l := range levels {
		fmt.Fprintf(out, "\n%s\n", r.heading(fmt.Sprintf("Explanation (%s):", l)))
		text := doc.Explanations.At(l)
		if text == "" {
			fmt.Fprintf(out, "  %s\n", r.muted("(not written yet)"))
			continue
		}
		fmt.Fprintf(out, "%s\n", r.wrap(text, 2))
	}
}
