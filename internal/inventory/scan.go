// Copyright Johnny Jacob, 2026. All rights reserved.

package inventory

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// wikiLinkRef captures the target and optional alias of a wiki link.
	wikiLinkRef = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)

	// assetRef captures assets/ paths inside markdown link/image parens.
	assetRef = regexp.MustCompile(`\]\((assets/[^)\s]+)\)`)
)

// Link is one wiki link occurrence inside a page.
type Link struct {
	Target string
	Alias  string
}

// ScanSummary holds the outcome of a vault scan.
type ScanSummary struct {
	Pages  int
	Links  int
	Assets int
	Errors int
}

// Scan walks every markdown file under vaultDir, at any depth, and
// repopulates the database with the pages found and the references they
// contain. Unreadable files are logged to w, counted, and skipped.
func (s *Store) Scan(vaultDir string, w io.Writer) (ScanSummary, error) {
	var sum ScanSummary

	if _, err := os.Stat(vaultDir); err != nil {
		return sum, fmt.Errorf("vault directory: %w", err)
	}
	matches, err := doublestar.Glob(os.DirFS(vaultDir), "**/*.md")
	if err != nil {
		return sum, fmt.Errorf("listing vault: %w", err)
	}
	sort.Strings(matches)

	tx, err := s.db.Begin()
	if err != nil {
		return sum, fmt.Errorf("beginning scan: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pages`); err != nil {
		return sum, fmt.Errorf("clearing index: %w", err)
	}

	for _, rel := range matches {
		data, err := os.ReadFile(filepath.Join(vaultDir, filepath.FromSlash(rel)))
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", rel, err)
			sum.Errors++
			continue
		}

		name := strings.TrimSuffix(rel, ".md")
		res, err := tx.Exec(`INSERT INTO pages (path, name) VALUES (?, ?)`, rel, name)
		if err != nil {
			return sum, fmt.Errorf("indexing %s: %w", rel, err)
		}
		pageID, err := res.LastInsertId()
		if err != nil {
			return sum, fmt.Errorf("indexing %s: %w", rel, err)
		}

		links, assets := extractRefs(string(data))
		for _, l := range links {
			if _, err := tx.Exec(
				`INSERT INTO links (source_id, target, alias, kind) VALUES (?, ?, ?, 'wikilink')`,
				pageID, l.Target, l.Alias,
			); err != nil {
				return sum, fmt.Errorf("indexing %s: %w", rel, err)
			}
			sum.Links++
		}
		for _, a := range assets {
			if _, err := tx.Exec(
				`INSERT INTO links (source_id, target, kind) VALUES (?, ?, 'asset')`,
				pageID, a,
			); err != nil {
				return sum, fmt.Errorf("indexing %s: %w", rel, err)
			}
			sum.Assets++
		}
		sum.Pages++
	}

	if err := tx.Commit(); err != nil {
		return sum, fmt.Errorf("committing scan: %w", err)
	}

	fmt.Fprintf(w, "Indexed %d pages, %d links, %d asset references (%d errors)\n",
		sum.Pages, sum.Links, sum.Assets, sum.Errors)
	return sum, nil
}

// extractRefs pulls every wiki link and asset reference out of a document
// body.
func extractRefs(content string) (links []Link, assets []string) {
	for _, m := range wikiLinkRef.FindAllStringSubmatch(content, -1) {
		links = append(links, Link{Target: m[1], Alias: m[2]})
	}
	for _, m := range assetRef.FindAllStringSubmatch(content, -1) {
		assets = append(assets, m[1])
	}
	return links, assets
}
