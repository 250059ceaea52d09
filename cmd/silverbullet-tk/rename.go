// Copyright Johnny Jacob, 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/johnnyjacob/silverbullet-tk/internal/backlink"
	"github.com/johnnyjacob/silverbullet-tk/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename [vault_dir]",
	Short: "Move daily notes under Journals/ and rewrite backlinks",
	Long: `Rename finds every page named YYYY-MM-DD.md anywhere in the vault,
rewrites every [[YYYY-MM-DD]] and [[YYYY-MM-DD|alias]] link in the other
pages to the nested [[Journals/YYYY/MM/DD]] form, then moves the page to
Journals/YYYY/MM/DD.md next to its old location.

The default is a dry run that reports what would change. Pass --live to
apply the changes. The vault directory and the live switch can also come
from the config file (rename.vault_dir, rename.live).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg := types.RenameConfig{
		VaultDir: viper.GetString("rename.vault_dir"),
		Live:     viper.GetBool("rename.live"),
	}
	if len(args) > 0 {
		cfg.VaultDir = args[0]
	}
	if cmd.Flags().Changed("live") {
		cfg.Live, _ = cmd.Flags().GetBool("live")
	}
	if cfg.VaultDir == "" {
		return fmt.Errorf("vault directory required: pass it as an argument or set rename.vault_dir in the config")
	}

	_, err := backlink.NewRenamer(cfg).Run(os.Stdout)
	return err
}

func init() {
	renameCmd.Flags().Bool("live", false, "apply changes (default: dry run)")

	rootCmd.AddCommand(renameCmd)
}
