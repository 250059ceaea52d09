// Copyright Johnny Jacob, 2026. All rights reserved.

// Package transform rewrites the body of a Logseq markdown document into
// SilverBullet form. The whole document is rewritten in one call; there is
// no streaming or partial editing.
package transform

import (
	"regexp"
	"strings"

	"github.com/johnnyjacob/silverbullet-tk/internal/pathmap"
)

// Rule is a single pure rewrite pass over a document body.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Rules is the ordered rewrite sequence. Order matters: the task passes
// run first so the CANCELED close marker can find its own open marker,
// structured dates run before natural-language dates so pass 3 never sees
// an already-converted bracketed date, and the nested-link pass runs after
// both date passes (converted dates contain hyphens, not the delimiter, so
// they cannot re-match).
var Rules = []Rule{
	{Name: "tasks", Apply: convertTasks},
	{Name: "date-links", Apply: convertDateLinks},
	{Name: "natural-date-links", Apply: convertNaturalDateLinks},
	{Name: "page-links", Apply: convertPageLinks},
	{Name: "asset-paths", Apply: convertAssetPaths},
}

// Apply runs every rule in order and returns the rewritten document.
func Apply(content string) string {
	for _, r := range Rules {
		content = r.Apply(content)
	}
	return content
}

var (
	openTask     = regexp.MustCompile(`(?m)^([ \t]*)[-*]\s+(?:TODO|LATER|NOW|WAITING)\s+`)
	doingTask    = regexp.MustCompile(`(?m)^([ \t]*)[-*]\s+DOING\s+`)
	doneTask     = regexp.MustCompile(`(?m)^([ \t]*)[-*]\s+DONE\s+`)
	canceledTask = regexp.MustCompile(`(?m)^([ \t]*)[-*]\s+CANCELED\s+`)
	canceledLine = regexp.MustCompile(`(?m)^([ \t]*- \[x\] ~~.*)$`)
)

// convertTasks maps Logseq task keywords to SilverBullet checkboxes:
// TODO/LATER/NOW/WAITING become unchecked boxes, DOING keeps a bold
// marker, DONE is checked, and CANCELED is checked with the rest of the
// line struck through. CANCELED takes two passes: the keyword is replaced
// by the open marker, then the close marker is appended at the end of the
// same line.
func convertTasks(content string) string {
	content = openTask.ReplaceAllString(content, "${1}- [ ] ")
	content = doingTask.ReplaceAllString(content, "${1}- [ ] **DOING:** ")
	content = doneTask.ReplaceAllString(content, "${1}- [x] ")
	content = canceledTask.ReplaceAllString(content, "${1}- [x] ~~")
	content = canceledLine.ReplaceAllString(content, "${1}~~")
	return content
}

var dateLink = regexp.MustCompile(`\[\[(\d{4})_(\d{2})_(\d{2})\]\]`)

// convertDateLinks rewrites structured date links: [[2025_11_06]] becomes
// [[2025-11-06]]. The match is digit-exact; nothing else is touched.
func convertDateLinks(content string) string {
	return dateLink.ReplaceAllString(content, "[[${1}-${2}-${3}]]")
}

var (
	monthFirstLink = regexp.MustCompile(`\[\[([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4})\]\]`)
	dayFirstLink   = regexp.MustCompile(`\[\[(\d{1,2}(?:st|nd|rd|th)?\s+[A-Za-z]+,?\s+\d{4})\]\]`)
)

// convertNaturalDateLinks rewrites links like [[Nov 6th, 2025]] or
// [[6 November 2025]] to the ISO form. A link that does not parse as a
// real calendar date is left exactly as written.
func convertNaturalDateLinks(content string) string {
	replace := func(link string) string {
		inner := link[2 : len(link)-2]
		if iso, ok := ParseNaturalDate(inner); ok {
			return "[[" + iso + "]]"
		}
		return link
	}
	content = monthFirstLink.ReplaceAllStringFunc(content, replace)
	content = dayFirstLink.ReplaceAllStringFunc(content, replace)
	return content
}

var wikiLink = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// convertPageLinks replaces the nesting delimiter with / inside wiki link
// targets: [[foo___bar]] becomes [[foo/bar]]. Only the target is rewritten;
// an alias after | passes through verbatim.
func convertPageLinks(content string) string {
	return wikiLink.ReplaceAllStringFunc(content, func(link string) string {
		inner := link[2 : len(link)-2]
		target, alias, hasAlias := strings.Cut(inner, "|")
		if !strings.Contains(target, pathmap.Delimiter) {
			return link
		}
		target = strings.ReplaceAll(target, pathmap.Delimiter, "/")
		if hasAlias {
			return "[[" + target + "|" + alias + "]]"
		}
		return "[[" + target + "]]"
	})
}

// convertAssetPaths rewrites Logseq's relative asset prefix to the
// SilverBullet space-root form, unconditionally, anywhere in the text.
func convertAssetPaths(content string) string {
	return strings.ReplaceAll(content, "../assets/", "assets/")
}
