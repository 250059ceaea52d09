// Copyright Johnny Jacob, 2026. All rights reserved.

package inventory

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupVault builds a small migrated space: two pages, wiki links with and
// without aliases, one broken link, and an asset reference.
func setupVault(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}

	write("2025-11-06.md", "see [[foo/bar]] and [[missing]]")
	write("foo/bar.md", "back to [[2025-11-06|the 6th]]\n![scan](assets/a.png)")
	return dir
}

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "inv", "inventory.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScan(t *testing.T) {
	vault := setupVault(t)
	store := openStore(t)

	var out bytes.Buffer
	sum, err := store.Scan(vault, &out)
	require.NoError(t, err)

	require.Equal(t, ScanSummary{Pages: 2, Links: 3, Assets: 1, Errors: 0}, sum)
	require.Contains(t, out.String(), "Indexed 2 pages, 3 links, 1 asset references (0 errors)")
}

func TestScanIsIdempotent(t *testing.T) {
	vault := setupVault(t)
	store := openStore(t)

	var out bytes.Buffer
	first, err := store.Scan(vault, &out)
	require.NoError(t, err)
	second, err := store.Scan(vault, &out)
	require.NoError(t, err)
	require.Equal(t, first, second)

	stats, err := store.Stats()
	require.NoError(t, err)
	require.Equal(t, 2, stats.Pages)
	require.Equal(t, 3, stats.Links)
}

func TestStats(t *testing.T) {
	vault := setupVault(t)
	store := openStore(t)

	var out bytes.Buffer
	_, err := store.Scan(vault, &out)
	require.NoError(t, err)

	stats, err := store.Stats()
	require.NoError(t, err)

	require.Equal(t, 2, stats.Pages)
	require.Equal(t, 3, stats.Links)
	require.Equal(t, 1, stats.Assets)
	// "missing" has no page named missing; "foo/bar" and "2025-11-06" do.
	require.Equal(t, 1, stats.BrokenLinks)

	targets := make(map[string]int, len(stats.TopTargets))
	for _, tc := range stats.TopTargets {
		targets[tc.Target] = tc.Count
	}
	require.Equal(t, map[string]int{"foo/bar": 1, "missing": 1, "2025-11-06": 1}, targets)
}

func TestScanMissingVault(t *testing.T) {
	store := openStore(t)

	var out bytes.Buffer
	_, err := store.Scan(filepath.Join(t.TempDir(), "nope"), &out)
	require.Error(t, err)
}

func TestExtractRefs(t *testing.T) {
	links, assets := extractRefs("a [[x]] b [[y|alias]] c ![i](assets/p.png) d [[2025_11_06]]")
	require.Equal(t, []Link{
		{Target: "x"},
		{Target: "y", Alias: "alias"},
		{Target: "2025_11_06"},
	}, links)
	require.Equal(t, []string{"assets/p.png"}, assets)
}
