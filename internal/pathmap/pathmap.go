// Copyright Johnny Jacob, 2026. All rights reserved.

// Package pathmap maps Logseq filenames to SilverBullet-relative paths.
// Logseq keeps every note in a flat directory and encodes structure in the
// filename: journal entries are named by date with underscores, and nested
// pages use a triple-underscore delimiter. SilverBullet expects real
// directories and hyphenated dates.
package pathmap

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Delimiter is the separator Logseq uses to encode page nesting inside a
// flat filename (foo___bar.md is the page bar under foo).
const Delimiter = "___"

// journalName matches Logseq journal filenames: exactly 4+2+2 digits,
// underscore-separated, plus the markdown extension.
var journalName = regexp.MustCompile(`^(\d{4})_(\d{2})_(\d{2})\.md$`)

// IsJournal reports whether name is a Logseq journal filename.
func IsJournal(name string) bool {
	return journalName.MatchString(name)
}

// JournalName converts a Logseq journal filename (2025_11_06.md) to the
// SilverBullet daily-note form (2025-11-06.md). When name does not match
// the journal pattern it is returned unchanged with ok=false; the caller
// decides how to report that.
func JournalName(name string) (converted string, ok bool) {
	m := journalName.FindStringSubmatch(name)
	if m == nil {
		return name, false
	}
	return fmt.Sprintf("%s-%s-%s.md", m[1], m[2], m[3]), true
}

// PagePath converts a Logseq page filename to a slash-separated relative
// path. The stem is split on Delimiter: all but the last segment become
// directory components, and the last segment keeps the extension
// (foo___bar___baz.md becomes foo/bar/baz.md). A name without the
// delimiter is returned as-is.
//
// An empty segment (leading, trailing, or doubled delimiter) is rejected:
// there is no directory an empty segment could name, and writing to a
// mangled path would silently misplace the note.
func PagePath(name string) (string, error) {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if !strings.Contains(stem, Delimiter) {
		return name, nil
	}
	parts := strings.Split(stem, Delimiter)
	for _, p := range parts {
		if p == "" {
			return "", fmt.Errorf("page name %q has an empty path segment", name)
		}
	}
	return path.Join(parts...) + ext, nil
}
