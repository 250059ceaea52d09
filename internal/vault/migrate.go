// Copyright Johnny Jacob, 2026. All rights reserved.

// Package vault walks a Logseq vault and writes the migrated tree into a
// SilverBullet space: journal files at the space root with hyphenated
// dates, pages nested per the filename delimiter, assets copied verbatim.
// Every file is read whole, rewritten, and written once.
package vault

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/johnnyjacob/silverbullet-tk/internal/pathmap"
	"github.com/johnnyjacob/silverbullet-tk/internal/transform"
	"github.com/johnnyjacob/silverbullet-tk/pkg/types"
)

const (
	journalsDir = "journals"
	pagesDir    = "pages"
	assetsDir   = "assets"

	mdTopLevel  = "*.md"
	mdRecursive = "**/*.md"
)

// Migrator performs a single migration run from a Logseq vault to a
// SilverBullet space. It holds no state between runs.
type Migrator struct {
	cfg types.MigrateConfig
}

// NewMigrator returns a Migrator for the given configuration.
func NewMigrator(cfg types.MigrateConfig) *Migrator {
	return &Migrator{cfg: cfg}
}

// Run migrates journals, pages, and assets in that order, printing a
// status line per file to w and a summary at the end. A missing source
// root is fatal; a missing subtree is a warning that skips its category;
// a per-file failure is logged, counted, and skipped. In dry-run mode the
// traversal and reporting are identical but nothing is written.
func (m *Migrator) Run(w io.Writer) (Report, error) {
	var rep Report

	if _, err := os.Stat(m.cfg.SourceDir); err != nil {
		return rep, fmt.Errorf("source directory: %w", err)
	}
	if !m.cfg.DryRun {
		if err := os.MkdirAll(m.cfg.TargetDir, 0o755); err != nil {
			return rep, fmt.Errorf("creating target directory: %w", err)
		}
	}

	m.migrateJournals(w, &rep)
	m.migratePages(w, &rep)
	m.migrateAssets(w, &rep)

	fmt.Fprintf(w, "\nMigration summary: %d journals, %d pages, %d assets, %d errors (total: %d)\n",
		rep.Journals, rep.Pages, rep.Assets, rep.Errors, rep.Total())
	if m.cfg.DryRun {
		fmt.Fprintln(w, "dry run: no files were written")
	}
	return rep, nil
}

// migrateJournals converts every top-level markdown file in journals/ and
// places it at the space root. A filename that does not match the journal
// date pattern is migrated with its name unchanged and reported as a
// warning.
func (m *Migrator) migrateJournals(w io.Writer, rep *Report) {
	srcDir := filepath.Join(m.cfg.SourceDir, journalsDir)
	names, ok := listMarkdown(w, srcDir, mdTopLevel)
	if !ok {
		return
	}
	fmt.Fprintf(w, "Found %d journal files\n", len(names))

	for _, name := range names {
		newName, ok := pathmap.JournalName(name)
		if !ok {
			fmt.Fprintf(w, "warning: %s does not match the journal date pattern, keeping name\n", name)
		}
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(m.cfg.TargetDir, newName)
		if m.migrateFile(w, src, dst, "journal", name, newName) {
			rep.Journals++
		} else {
			rep.Errors++
		}
	}
}

// migratePages converts the markdown files in pages/ into their nested
// locations. Only top-level files are taken unless Recursive is set, in
// which case any existing directory prefix is kept in front of the
// delimiter-derived path.
func (m *Migrator) migratePages(w io.Writer, rep *Report) {
	srcDir := filepath.Join(m.cfg.SourceDir, pagesDir)
	pattern := mdTopLevel
	if m.cfg.Recursive {
		pattern = mdRecursive
	}
	names, ok := listMarkdown(w, srcDir, pattern)
	if !ok {
		return
	}
	fmt.Fprintf(w, "Found %d page files\n", len(names))

	for _, rel := range names {
		dir, name := path.Split(rel)
		mapped, err := pathmap.PagePath(name)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", rel, err)
			rep.Errors++
			continue
		}
		relOut := path.Join(dir, mapped)
		src := filepath.Join(srcDir, filepath.FromSlash(rel))
		dst := filepath.Join(m.cfg.TargetDir, filepath.FromSlash(relOut))
		if m.migrateFile(w, src, dst, "page", rel, relOut) {
			rep.Pages++
		} else {
			rep.Errors++
		}
	}
}

// migrateFile reads src whole, rewrites the content, and writes it to dst,
// creating parent directories. Returns false on a read or write failure,
// which is logged to w.
func (m *Migrator) migrateFile(w io.Writer, src, dst, kind, oldName, newName string) bool {
	data, err := os.ReadFile(src)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", oldName, err)
		return false
	}
	converted := transform.Apply(string(data))

	if m.cfg.DryRun {
		fmt.Fprintf(w, "would migrate %s: %s -> %s\n", kind, oldName, newName)
		return true
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", oldName, err)
		return false
	}
	if err := os.WriteFile(dst, []byte(converted), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", oldName, err)
		return false
	}
	fmt.Fprintf(w, "migrated %s: %s -> %s\n", kind, oldName, newName)
	return true
}

// listMarkdown returns the markdown files under dir matching pattern,
// sorted, as slash paths relative to dir. A missing or unreadable dir is
// reported as a warning and the category is skipped (ok=false).
func listMarkdown(w io.Writer, dir, pattern string) ([]string, bool) {
	if _, err := os.Stat(dir); err != nil {
		fmt.Fprintf(w, "warning: directory not found: %s\n", dir)
		return nil, false
	}
	names, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		fmt.Fprintf(w, "warning: listing %s: %v\n", dir, err)
		return nil, false
	}
	sort.Strings(names)
	return names, true
}
