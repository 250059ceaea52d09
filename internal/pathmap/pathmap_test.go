// Copyright Johnny Jacob, 2026. All rights reserved.

package pathmap

import (
	"fmt"
	"strings"
	"testing"
)

func TestJournalName(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "journal date", in: "2025_11_06.md", want: "2025-11-06.md", wantOK: true},
		{name: "single digit padded", in: "2024_01_02.md", want: "2024-01-02.md", wantOK: true},
		{name: "already hyphenated", in: "2025-11-06.md", want: "2025-11-06.md", wantOK: false},
		{name: "too few digits", in: "202_11_06.md", want: "202_11_06.md", wantOK: false},
		{name: "wrong extension", in: "2025_11_06.txt", want: "2025_11_06.txt", wantOK: false},
		{name: "ordinary page", in: "notes.md", want: "notes.md", wantOK: false},
		{name: "trailing junk", in: "2025_11_06_backup.md", want: "2025_11_06_backup.md", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := JournalName(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("JournalName(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
			if ok != IsJournal(tt.in) {
				t.Errorf("IsJournal(%q) = %v, want %v", tt.in, IsJournal(tt.in), ok)
			}
		})
	}
}

// TestJournalNameRoundTrip checks that converting and re-splitting on the
// hyphen yields the original date fields.
func TestJournalNameRoundTrip(t *testing.T) {
	dates := [][3]string{
		{"2025", "11", "06"},
		{"2024", "02", "29"},
		{"1999", "12", "31"},
	}
	for _, d := range dates {
		in := fmt.Sprintf("%s_%s_%s.md", d[0], d[1], d[2])
		got, ok := JournalName(in)
		if !ok {
			t.Fatalf("JournalName(%q) did not match", in)
		}
		parts := strings.Split(strings.TrimSuffix(got, ".md"), "-")
		if parts[0] != d[0] || parts[1] != d[1] || parts[2] != d[2] {
			t.Errorf("round trip of %q gave %v, want %v", in, parts, d)
		}
	}
}

func TestPagePath(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "two segments", in: "foo___bar.md", want: "foo/bar.md"},
		{name: "three segments", in: "foo___bar___baz.md", want: "foo/bar/baz.md"},
		{name: "no delimiter", in: "plain.md", want: "plain.md"},
		{name: "single underscores kept", in: "foo_bar.md", want: "foo_bar.md"},
		{name: "leading delimiter", in: "___foo.md", wantErr: true},
		{name: "trailing delimiter", in: "foo___.md", wantErr: true},
		{name: "doubled delimiter", in: "a______b.md", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PagePath(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PagePath(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("PagePath(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("PagePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
