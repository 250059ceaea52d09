// Copyright Johnny Jacob, 2026. All rights reserved.

package backlink

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnnyjacob/silverbullet-tk/pkg/types"
)

// setupSpace builds a SilverBullet space with two daily notes (one in a
// subdirectory) and pages that link to them, with and without aliases.
func setupSpace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("2025-11-06.md", "root daily note")
	write("notes/2025-12-01.md", "nested daily note")
	write("topics/project.md", "see [[2025-11-06]] and [[2025-11-06|that day]], then [[2025-12-01]]")
	write("index.md", "start at [[2025-11-06]]")
	write("topics/unrelated.md", "no links here")
	return dir
}

func TestFindDatePages(t *testing.T) {
	dir := setupSpace(t)

	pages, err := FindDatePages(dir)
	if err != nil {
		t.Fatalf("FindDatePages: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("found %d date pages, want 2", len(pages))
	}

	byName := make(map[string]DatePage, len(pages))
	for _, p := range pages {
		byName[p.OldName] = p
	}

	root, ok := byName["2025-11-06"]
	if !ok {
		t.Fatal("root daily note not found")
	}
	if root.NewName != "Journals/2025/11/06" {
		t.Errorf("NewName = %q", root.NewName)
	}
	if want := filepath.Join(dir, "Journals", "2025", "11", "06.md"); root.NewPath != want {
		t.Errorf("NewPath = %q, want %q", root.NewPath, want)
	}

	nested, ok := byName["2025-12-01"]
	if !ok {
		t.Fatal("nested daily note not found")
	}
	// The Journals tree is rooted at the page's own parent.
	if want := filepath.Join(dir, "notes", "Journals", "2025", "12", "01.md"); nested.NewPath != want {
		t.Errorf("NewPath = %q, want %q", nested.NewPath, want)
	}
}

func TestUpdateLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare link", in: "see [[2025-11-06]]", want: "see [[Journals/2025/11/06]]"},
		{name: "aliased link", in: "[[2025-11-06|that day]]", want: "[[Journals/2025/11/06|that day]]"},
		{name: "both forms", in: "[[2025-11-06]] [[2025-11-06|x]]", want: "[[Journals/2025/11/06]] [[Journals/2025/11/06|x]]"},
		{name: "other target untouched", in: "[[2025-11-07]]", want: "[[2025-11-07]]"},
		{name: "bare text untouched", in: "on 2025-11-06 we met", want: "on 2025-11-06 we met"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpdateLinks(tt.in, "2025-11-06", "Journals/2025/11/06")
			if got != tt.want {
				t.Errorf("UpdateLinks(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenamerDryRun(t *testing.T) {
	dir := setupSpace(t)

	var out bytes.Buffer
	rep, err := NewRenamer(types.RenameConfig{VaultDir: dir}).Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// project.md and index.md reference 2025-11-06; project.md also
	// references 2025-12-01. Three files would change in total.
	if rep.PagesRenamed != 2 || rep.BacklinksUpdated != 3 || rep.Errors != 0 {
		t.Fatalf("report = %+v, want {PagesRenamed:2 BacklinksUpdated:3 Errors:0}", rep)
	}

	// Nothing moved, nothing rewritten.
	if _, err := os.Stat(filepath.Join(dir, "2025-11-06.md")); err != nil {
		t.Errorf("daily note was moved in dry run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "topics", "project.md"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "Journals/") {
		t.Errorf("dry run rewrote links: %q", data)
	}
	if !strings.Contains(out.String(), "dry run: no files were changed") {
		t.Errorf("missing dry run notice:\n%s", out.String())
	}
}

func TestRenamerLive(t *testing.T) {
	dir := setupSpace(t)

	var out bytes.Buffer
	rep, err := NewRenamer(types.RenameConfig{VaultDir: dir, Live: true}).Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.PagesRenamed != 2 || rep.BacklinksUpdated != 3 || rep.Errors != 0 {
		t.Fatalf("report = %+v, want {PagesRenamed:2 BacklinksUpdated:3 Errors:0}", rep)
	}

	// Pages moved into their parent-relative Journals trees.
	if got := mustRead(t, filepath.Join(dir, "Journals", "2025", "11", "06.md")); got != "root daily note" {
		t.Errorf("moved root note = %q", got)
	}
	if got := mustRead(t, filepath.Join(dir, "notes", "Journals", "2025", "12", "01.md")); got != "nested daily note" {
		t.Errorf("moved nested note = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "2025-11-06.md")); !os.IsNotExist(err) {
		t.Errorf("old root note still present: %v", err)
	}

	// Backlinks rewritten, aliases preserved.
	project := mustRead(t, filepath.Join(dir, "topics", "project.md"))
	want := "see [[Journals/2025/11/06]] and [[Journals/2025/11/06|that day]], then [[Journals/2025/12/01]]"
	if project != want {
		t.Errorf("project.md = %q, want %q", project, want)
	}
	if got := mustRead(t, filepath.Join(dir, "index.md")); got != "start at [[Journals/2025/11/06]]" {
		t.Errorf("index.md = %q", got)
	}
	if got := mustRead(t, filepath.Join(dir, "topics", "unrelated.md")); got != "no links here" {
		t.Errorf("unrelated.md = %q", got)
	}
}

func TestRenamerMissingVault(t *testing.T) {
	var out bytes.Buffer
	cfg := types.RenameConfig{VaultDir: filepath.Join(t.TempDir(), "nope")}
	if _, err := NewRenamer(cfg).Run(&out); err == nil {
		t.Fatal("expected error for missing vault directory")
	}
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
