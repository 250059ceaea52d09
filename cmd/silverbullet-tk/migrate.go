// Copyright Johnny Jacob, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/johnnyjacob/silverbullet-tk/internal/vault"
	"github.com/johnnyjacob/silverbullet-tk/pkg/types"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <source_dir> <target_dir>",
	Short: "Migrate a Logseq vault into a SilverBullet space",
	Long: `Migrate converts the journals/ and pages/ subtrees of a Logseq vault
into SilverBullet v2 layout and copies the assets/ subtree verbatim.

Journal files named YYYY_MM_DD.md land at the space root as YYYY-MM-DD.md.
Page filenames with ___ nesting become directories (foo___bar.md becomes
foo/bar.md). Content is rewritten on the way: task markers, date links,
natural-language date links, nested page links, and asset paths.

Per-file failures are reported and counted; the run continues. With
--dry-run the same traversal and report are produced without writing
anything.`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	manifest, _ := cmd.Flags().GetString("manifest")

	recursive := viper.GetBool("migrate.recursive")
	if cmd.Flags().Changed("recursive") {
		recursive, _ = cmd.Flags().GetBool("recursive")
	}

	cfg := types.MigrateConfig{
		SourceDir:    args[0],
		TargetDir:    args[1],
		Recursive:    recursive,
		DryRun:       dryRun,
		ManifestPath: manifest,
	}

	rep, err := vault.NewMigrator(cfg).Run(os.Stdout)
	if err != nil {
		return err
	}

	if cfg.ManifestPath != "" && !cfg.DryRun {
		if err := vault.WriteManifest(cfg.ManifestPath, cfg, rep); err != nil {
			return err
		}
		fmt.Printf("Wrote manifest: %s\n", cfg.ManifestPath)
	}
	return nil
}

func init() {
	migrateCmd.Flags().Bool("dry-run", false, "report intended actions without writing files")
	migrateCmd.Flags().Bool("recursive", false, "include subdirectories of pages/ (default: top level only)")
	migrateCmd.Flags().String("manifest", "", "write a YAML run manifest to this path after a live run")

	rootCmd.AddCommand(migrateCmd)
}
