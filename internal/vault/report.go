// Copyright Johnny Jacob, 2026. All rights reserved.

package vault

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/johnnyjacob/silverbullet-tk/pkg/types"
)

// Report holds the outcome of a migration run.
type Report struct {
	Journals int `yaml:"journals"`
	Pages    int `yaml:"pages"`
	Assets   int `yaml:"assets"`
	Errors   int `yaml:"errors"`
}

// Total returns the number of files migrated successfully.
func (r Report) Total() int {
	return r.Journals + r.Pages + r.Assets
}

// HasErrors reports whether any file failed.
func (r Report) HasErrors() bool {
	return r.Errors > 0
}

// Manifest is the on-disk YAML record of a migration run. It can be saved
// after a live run and inspected later without rerunning the migration.
type Manifest struct {
	SourceDir string    `yaml:"source_dir"`
	TargetDir string    `yaml:"target_dir"`
	Recursive bool      `yaml:"recursive"`
	Report    Report    `yaml:"report"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteManifest saves the run record for cfg and rep to path as YAML.
func WriteManifest(path string, cfg types.MigrateConfig, rep Report) error {
	m := Manifest{
		SourceDir: cfg.SourceDir,
		TargetDir: cfg.TargetDir,
		Recursive: cfg.Recursive,
		Report:    rep,
		Timestamp: time.Now().UTC(),
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
