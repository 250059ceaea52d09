// Copyright Johnny Jacob, 2026. All rights reserved.

// Package types holds the configuration structures shared between the
// silverbullet-tk commands and the packages that do the work.
package types

// MigrateConfig holds settings for a vault migration run.
type MigrateConfig struct {
	// SourceDir is the Logseq vault root (contains journals/, pages/, assets/).
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// TargetDir is the SilverBullet space root, created if needed.
	TargetDir string `json:"target_dir" yaml:"target_dir"`

	// Recursive includes subdirectories of pages/ instead of only its
	// top-level files.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// DryRun reports intended actions without writing anything.
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// ManifestPath, when set, is where the YAML run manifest is written
	// after a live run.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
}

// RenameConfig holds settings for the daily-note rename tool.
type RenameConfig struct {
	// VaultDir is the SilverBullet space to operate on.
	VaultDir string `json:"vault_dir" yaml:"vault_dir"`

	// Live performs the renames and rewrites; false is a dry run.
	Live bool `json:"live" yaml:"live"`
}

// ScanConfig holds settings for the link inventory scanner.
type ScanConfig struct {
	// VaultDir is the vault to index.
	VaultDir string `json:"vault_dir" yaml:"vault_dir"`

	// DBPath is the SQLite database location
	// (default <vault>/.silverbullet-tk/inventory.db).
	DBPath string `json:"db_path" yaml:"db_path"`
}
