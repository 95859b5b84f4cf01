// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Smith, Jane", "J. Smith"},
		{"Jane Q. Smith", "J. Q. Smith"},
		{"Jane Smith", "J. Smith"},
		{"Doe, John and Smith, Jane", "J. Doe, J. Smith"},
		{"John Doe and Jane Smith", "J. Doe, J. Smith"},
		{"Jane and Smith, Jo", "Jane, J. Smith"},
		{"Cher", "Cher"},
		{"Doe, John AND Smith, Jane", "J. Doe, J. Smith"},
		{"Dupont, Élodie", "É. Dupont"},
		{"Øyvind Åberg", "Ø. Åberg"},
	}
	for _, tt := range tests {
		got := FormatAuthors(tt.in)
		if got != tt.want {
			t.Errorf("FormatAuthors(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("FormatAuthors(%q) produced invalid UTF-8: %q", tt.in, got)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"March", "03"},
		{"mar", "03"},
		{"3", "03"},
		{"DECEMBER", "12"},
		{"10", "10"},
		{" jun ", "06"},
		{"Foo", "01"},
		{"", "01"},
		{"13", "01"},
	}
	for _, tt := range tests {
		if got := ParseMonth(tt.in); got != tt.want {
			t.Errorf("ParseMonth(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A Study of Things", "a-study-of-things"},
		{"  Spaces  &  Symbols!  ", "spaces-symbols"},
		{"already-a-slug", "already-a-slug"},
		{"Ünïcode Títle", "n-code-t-tle"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugShape(t *testing.T) {
	slugRe := regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	inputs := []string{
		"A Study of Things",
		strings.Repeat("very long title ", 20),
		"Trailing punctuation!!!",
		"CAPS and 123 numbers",
	}
	for _, in := range inputs {
		s := Slug(in)
		if !slugRe.MatchString(s) {
			t.Errorf("Slug(%q) = %q does not match the slug shape", in, s)
		}
		if len(s) > 96 {
			t.Errorf("Slug(%q) is %d characters, want at most 96", in, len(s))
		}
		if again := Slug(s); again != s {
			t.Errorf("Slug not idempotent: Slug(%q) = %q, re-slugged to %q", in, s, again)
		}
	}
}

func TestToDocument(t *testing.T) {
	pub := ParsedPublication{
		Title:   "A Study of Things",
		Authors: "J. Doe",
		Journal: "Nature",
		Year:    "2020",
		Month:   "mar",
	}

	doc := ToDocument(pub)
	if doc.ID == "" {
		t.Error("document ID is empty")
	}
	if doc.Type != "publication" {
		t.Errorf("Type = %q, want %q", doc.Type, "publication")
	}
	if doc.Slug.Current != "a-study-of-things" {
		t.Errorf("Slug = %q", doc.Slug.Current)
	}
	if doc.PublicationDate != "2020-03" {
		t.Errorf("PublicationDate = %q, want %q", doc.PublicationDate, "2020-03")
	}
}

func TestToDocumentJournalLinkPrecedence(t *testing.T) {
	tests := []struct {
		name string
		pub  ParsedPublication
		want string
	}{
		{
			name: "explicit URL wins",
			pub:  ParsedPublication{Title: "T", URL: "https://example.com/p", DOI: "10.1/x"},
			want: "https://example.com/p",
		},
		{
			name: "DOI resolver when no URL",
			pub:  ParsedPublication{Title: "T", DOI: "10.1/x"},
			want: "https://doi.org/10.1/x",
		},
		{
			name: "scholar search as last resort",
			pub:  ParsedPublication{Title: "A Study"},
			want: "https://scholar.google.com/scholar?q=A+Study",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if doc := ToDocument(tt.pub); doc.JournalLink != tt.want {
				t.Errorf("JournalLink = %q, want %q", doc.JournalLink, tt.want)
			}
		})
	}
}
