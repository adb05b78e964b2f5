package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamusis/medref/internal/catalog"
	"github.com/kamusis/medref/internal/config"
)

// contentReadme is written into the content directory on first init.
const contentReadme = `Extra medref content lives here, one directory per domain:

  dental/      transplant/      emergency/

Each .yaml, .yml or .toml file holds a top-level "entries" list using the
same fields as the built-in corpus. Ids must not collide with built-in ids.
Files matching the excludes in ~/.medref/medref.yaml are ignored.
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration and content directory",
	Long: `Initialize ~/.medref/:

  medref.yaml   configuration (content_dir, excludes, default_level, log_level)
  .env          environment overrides (MEDREF_*)
  content/      per-domain directories for extra entries

Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// ── 1. Resolve ~/.medref directory ────────────────────────────────────────
	dir, err := config.MedrefDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK(out, "", fmt.Sprintf("medref directory ready: %s", dir))

	// ── 2. Write medref.yaml if missing ───────────────────────────────────────
	exists, err := config.Exists()
	if err != nil {
		return err
	}
	if !exists {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK(out, "", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip(out, "", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 3. .env template ──────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	envPath, _ := config.DotEnvPath()
	printOK(out, "", fmt.Sprintf("Overrides file ready: %s", envPath))

	// ── 4. Content directories ────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	for _, name := range catalog.DomainNames() {
		p := filepath.Join(cfg.ContentDir, name)
		if err := os.MkdirAll(p, 0o755); err != nil {
			return fmt.Errorf("cannot create %s: %w", p, err)
		}
	}
	readme := filepath.Join(cfg.ContentDir, "README.txt")
	if _, err := os.Stat(readme); os.IsNotExist(err) {
		if err := os.WriteFile(readme, []byte(contentReadme), 0o644); err != nil {
			return fmt.Errorf("cannot write %s: %w", readme, err)
		}
	}
	printOK(out, "", fmt.Sprintf("Content directory ready: %s", cfg.ContentDir))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next: run 'medref doctor' to check the setup, or 'medref domains' to browse.")
	return nil
}
