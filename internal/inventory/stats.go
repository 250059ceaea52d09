// Copyright Johnny Jacob, 2026. All rights reserved.

package inventory

import (
	"fmt"
	"io"
)

// topTargetLimit caps the most-linked list in Stats.
const topTargetLimit = 10

// TargetCount is one link target with its reference count.
type TargetCount struct {
	Target string
	Count  int
}

// Stats summarizes the inventory: totals, wiki links whose target matches
// no page in the vault, and the most linked targets.
type Stats struct {
	Pages       int
	Links       int
	Assets      int
	BrokenLinks int
	TopTargets  []TargetCount
}

// Stats queries the current inventory. A wiki link is broken when its
// target equals no page name (the vault-relative path without .md).
func (s *Store) Stats() (Stats, error) {
	var st Stats

	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM pages`, &st.Pages},
		{`SELECT COUNT(*) FROM links WHERE kind = 'wikilink'`, &st.Links},
		{`SELECT COUNT(*) FROM links WHERE kind = 'asset'`, &st.Assets},
		{`SELECT COUNT(*) FROM links
		    WHERE kind = 'wikilink'
		      AND target NOT IN (SELECT name FROM pages)`, &st.BrokenLinks},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dst); err != nil {
			return st, fmt.Errorf("querying inventory: %w", err)
		}
	}

	rows, err := s.db.Query(`
		SELECT target, COUNT(*) AS n FROM links
		 WHERE kind = 'wikilink'
		 GROUP BY target
		 ORDER BY n DESC, target
		 LIMIT ?`, topTargetLimit)
	if err != nil {
		return st, fmt.Errorf("querying top targets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc TargetCount
		if err := rows.Scan(&tc.Target, &tc.Count); err != nil {
			return st, fmt.Errorf("querying top targets: %w", err)
		}
		st.TopTargets = append(st.TopTargets, tc)
	}
	if err := rows.Err(); err != nil {
		return st, fmt.Errorf("querying top targets: %w", err)
	}
	return st, nil
}

// Write prints the statistics in the console report format.
func (st Stats) Write(w io.Writer) {
	fmt.Fprintf(w, "\nVault inventory: %d pages, %d wiki links, %d asset references\n",
		st.Pages, st.Links, st.Assets)
	fmt.Fprintf(w, "Broken wiki links: %d\n", st.BrokenLinks)
	if len(st.TopTargets) > 0 {
		fmt.Fprintln(w, "Most linked pages:")
		for _, tc := range st.TopTargets {
			fmt.Fprintf(w, "  %4d  %s\n", tc.Count, tc.Target)
		}
	}
}
