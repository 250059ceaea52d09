// Copyright Johnny Jacob, 2026. All rights reserved.

// Package main is the entry point for the silverbullet-tk CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the silverbullet-tk CLI.
var rootCmd = &cobra.Command{
	Use:   "silverbullet-tk",
	Short: "Move a Logseq vault to SilverBullet and keep it tidy",
	Long: `silverbullet-tk converts a Logseq markdown vault to SilverBullet v2
conventions and provides maintenance tools for the result.

migrate rewrites journal filenames, nested page names, task markers, date
links, page links, and asset paths, and copies binary assets into the new
space. rename moves daily-note pages into a nested Journals/YYYY/MM/DD
tree and rewrites every backlink. scan builds a SQLite inventory of pages
and links for a quick survey of a vault.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./silverbullet-tk.yaml or ~/.config/silverbullet-tk/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("silverbullet-tk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "silverbullet-tk"))
		}
	}

	viper.SetEnvPrefix("SILVERBULLET_TK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
