// Copyright Johnny Jacob, 2026. All rights reserved.

// Package backlink moves daily-note pages into a nested Journals tree and
// rewrites every wiki link that points at them. It operates in place on a
// single vault, one page at a time: scan for references by the literal old
// name, rewrite them, then rename the file.
package backlink

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/johnnyjacob/silverbullet-tk/pkg/types"
)

// datePageName matches daily-note filenames: YYYY-MM-DD plus the markdown
// extension.
var datePageName = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})\.md$`)

// DatePage describes one page whose name matches the daily-note pattern,
// with its computed destination.
type DatePage struct {
	// OldPath and NewPath are the on-disk locations.
	OldPath string
	NewPath string

	// OldName and NewName are the link-target forms
	// ("2025-11-06" and "Journals/2025/11/06").
	OldName string
	NewName string
}

// Report holds the outcome of a rename run. Dry-run and live runs report
// the same counts.
type Report struct {
	PagesRenamed     int
	BacklinksUpdated int
	Errors           int
}

// Renamer performs one rename run over a vault.
type Renamer struct {
	cfg types.RenameConfig
}

// NewRenamer returns a Renamer for the given configuration.
func NewRenamer(cfg types.RenameConfig) *Renamer {
	return &Renamer{cfg: cfg}
}

// FindDatePages returns every page under vaultDir, at any depth, whose
// filename matches the daily-note pattern, with its nested destination
// (<same parent>/Journals/YYYY/MM/DD.md).
func FindDatePages(vaultDir string) ([]DatePage, error) {
	matches, err := doublestar.Glob(os.DirFS(vaultDir), "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("scanning vault: %w", err)
	}

	var pages []DatePage
	for _, rel := range matches {
		name := path.Base(rel)
		m := datePageName.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		year, month, day := m[1], m[2], m[3]
		oldPath := filepath.Join(vaultDir, filepath.FromSlash(rel))
		pages = append(pages, DatePage{
			OldPath: oldPath,
			NewPath: filepath.Join(filepath.Dir(oldPath), "Journals", year, month, day+".md"),
			OldName: strings.TrimSuffix(name, ".md"),
			NewName: path.Join("Journals", year, month, day),
		})
	}
	return pages, nil
}

// Run renames every daily-note page and rewrites its backlinks first,
// printing progress to w. Pages are processed sequentially and
// independently; each backlink scan searches for the literal old name, so
// one page's rename never disturbs another's scan. In dry-run mode nothing
// is written or moved but the reporting is identical.
func (r *Renamer) Run(w io.Writer) (Report, error) {
	var rep Report

	if _, err := os.Stat(r.cfg.VaultDir); err != nil {
		return rep, fmt.Errorf("vault directory: %w", err)
	}

	mode := "DRY RUN"
	if r.cfg.Live {
		mode = "LIVE"
	}
	fmt.Fprintf(w, "Scanning vault: %s (%s)\n", r.cfg.VaultDir, mode)

	pages, err := FindDatePages(r.cfg.VaultDir)
	if err != nil {
		return rep, err
	}
	fmt.Fprintf(w, "Found %d date pages to rename\n", len(pages))

	for _, page := range pages {
		fmt.Fprintf(w, "\n%s -> %s\n", page.OldName, page.NewName)
		rep.BacklinksUpdated += r.updateBacklinks(w, &rep, page)

		if r.cfg.Live {
			if err := os.MkdirAll(filepath.Dir(page.NewPath), 0o755); err != nil {
				fmt.Fprintf(w, "  failed: rename (%v)\n", err)
				rep.Errors++
				continue
			}
			if err := os.Rename(page.OldPath, page.NewPath); err != nil {
				fmt.Fprintf(w, "  failed: rename (%v)\n", err)
				rep.Errors++
				continue
			}
		}
		fmt.Fprintln(w, "  renamed page")
		rep.PagesRenamed++
	}

	fmt.Fprintf(w, "\nRename summary: %d pages renamed, %d backlinks updated, %d errors\n",
		rep.PagesRenamed, rep.BacklinksUpdated, rep.Errors)
	if !r.cfg.Live {
		fmt.Fprintln(w, "dry run: no files were changed")
	}
	return rep, nil
}

// updateBacklinks rewrites links to page in every other markdown file in
// the vault and returns the number of files changed (or that would change,
// in dry-run). Read and write failures are logged and counted; the scan
// continues.
func (r *Renamer) updateBacklinks(w io.Writer, rep *Report, page DatePage) int {
	matches, err := doublestar.Glob(os.DirFS(r.cfg.VaultDir), "**/*.md")
	if err != nil {
		fmt.Fprintf(w, "  failed: scanning vault (%v)\n", err)
		rep.Errors++
		return 0
	}

	changed := 0
	for _, rel := range matches {
		full := filepath.Join(r.cfg.VaultDir, filepath.FromSlash(rel))
		if full == page.OldPath {
			continue
		}
		data, err := os.ReadFile(full)
		if err != nil {
			fmt.Fprintf(w, "  failed: %s (%v)\n", rel, err)
			rep.Errors++
			continue
		}
		updated := UpdateLinks(string(data), page.OldName, page.NewName)
		if updated == string(data) {
			continue
		}
		if r.cfg.Live {
			if err := os.WriteFile(full, []byte(updated), 0o644); err != nil {
				fmt.Fprintf(w, "  failed: %s (%v)\n", rel, err)
				rep.Errors++
				continue
			}
		}
		fmt.Fprintf(w, "  updated: %s\n", rel)
		changed++
	}
	return changed
}

// UpdateLinks rewrites [[oldName]] and [[oldName|alias]] occurrences in
// content to point at newName. The alias, when present, is preserved
// verbatim.
func UpdateLinks(content, oldName, newName string) string {
	quoted := regexp.QuoteMeta(oldName)
	bare := regexp.MustCompile(`\[\[` + quoted + `\]\]`)
	aliased := regexp.MustCompile(`\[\[` + quoted + `\|([^\]]+)\]\]`)

	content = bare.ReplaceAllString(content, "[["+newName+"]]")
	content = aliased.ReplaceAllString(content, "[["+newName+"|${1}]]")
	return content
}
