// Copyright Johnny Jacob, 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/johnnyjacob/silverbullet-tk/internal/inventory"
)

var scanCmd = &cobra.Command{
	Use:   "scan <vault_dir>",
	Short: "Build a SQLite inventory of a vault's pages and links",
	Long: `Scan walks every markdown file in the vault, records the pages and the
wiki links and asset references they contain in a SQLite database, and
prints statistics: totals, broken wiki links (targets with no matching
page), and the most linked pages.

The notes themselves are never modified. Use --stats-only to query an
existing database without rescanning.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	vaultDir := args[0]

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("scan.db_path")
	}
	if dbPath == "" {
		dbPath = filepath.Join(vaultDir, ".silverbullet-tk", "inventory.db")
	}
	statsOnly, _ := cmd.Flags().GetBool("stats-only")

	store, err := inventory.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !statsOnly {
		if _, err := store.Scan(vaultDir, os.Stdout); err != nil {
			return err
		}
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	stats.Write(os.Stdout)
	return nil
}

func init() {
	scanCmd.Flags().String("db", "", "inventory database path (default: <vault>/.silverbullet-tk/inventory.db)")
	scanCmd.Flags().Bool("stats-only", false, "query the existing database without rescanning")

	rootCmd.AddCommand(scanCmd)
}
