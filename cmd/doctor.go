package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamusis/medref/internal/catalog"
	"github.com/kamusis/medref/internal/config"
	"github.com/kamusis/medref/internal/content"
	"github.com/kamusis/medref/internal/logger"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run configuration and content checks",
	Long: `Check that medref's configuration is valid and that the built-in corpus
and any extra content load cleanly. Run this after adding content files.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	allOK := true
	failD := func(format string, args ...any) {
		printErr(errOut, "", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection(out, "medref doctor")
	fmt.Fprintln(out)

	// ── Check 1: medref.yaml present ──────────────────────────────────────────
	fmt.Fprintln(out, "[ medref.yaml ]")
	cfgPath, _ := config.ConfigPath()
	if ok, err := config.Exists(); err != nil {
		failD("%v", err)
	} else if !ok {
		printWarn(out, "", fmt.Sprintf("%s not found, using defaults (run 'medref init')", cfgPath))
	} else {
		printOK(out, "", cfgPath)
	}

	cfg, loadErr := config.Resolve()
	if loadErr != nil {
		failD("cannot load config: %v", loadErr)
	} else {
		if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
			failD("log_level: %v", err)
		}
		if cfg.DefaultLevel != "" {
			if _, err := content.ParseLevel(cfg.DefaultLevel); err != nil {
				failD("default_level: %v", err)
			}
		}
	}
	fmt.Fprintln(out)

	// ── Check 2: content directory ────────────────────────────────────────────
	fmt.Fprintln(out, "[ Content directory ]")
	if loadErr == nil {
		checkContentDir(out, cfg.ContentDir)
	} else {
		printWarn(out, "", "skipped (medref.yaml not loaded)")
	}
	fmt.Fprintln(out)

	// ── Check 3: catalog loads ────────────────────────────────────────────────
	fmt.Fprintln(out, "[ Catalog ]")
	if loadErr == nil {
		cat, err := catalog.Open(catalog.Options{ContentDir: cfg.ContentDir, Excludes: cfg.Excludes, Logger: appLog})
		if err != nil {
			failD("%v", err)
		} else {
			for _, d := range cat.Domains() {
				printOK(out, d.Name(), fmt.Sprintf("%d entries in %d categories", d.Len(), len(d.Categories())))
				checkEmptyCategories(out, d)
			}
		}
	} else {
		printWarn(out, "", "skipped (medref.yaml not loaded)")
	}
	fmt.Fprintln(out)

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Fprintln(out, "===================")
	if allOK {
		fmt.Fprintln(out, "✓  All checks passed. medref is ready to use.")
		return nil
	}
	fmt.Fprintln(errOut, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}

// checkContentDir reports the content directory and any subdirectory that
// is not a known domain.
func checkContentDir(out io.Writer, dir string) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		printSkip(out, "", fmt.Sprintf("%s does not exist, built-in content only", dir))
		return
	}
	if err != nil {
		printWarn(out, "", fmt.Sprintf("cannot read %s: %v", dir, err))
		return
	}
	printOK(out, "", dir)

	known := map[string]bool{}
	for _, n := range catalog.DomainNames() {
		known[n] = true
	}
	for _, e := range entries {
		if e.IsDir() && !known[e.Name()] && !strings.HasPrefix(e.Name(), ".") {
			printWarn(out, e.Name(), "not a known domain, its files are ignored")
		}
	}
}

func checkEmptyCategories(out io.Writer, d catalog.Domain) {
	for _, g := range d.Grouped() {
		if len(g.Documents) == 0 {
			printInfo(out, d.Name(), fmt.Sprintf("category %s has no entries", g.Category))
		}
	}
}
