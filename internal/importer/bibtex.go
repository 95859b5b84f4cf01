// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package importer acquires bibliographic records from BibTeX text or the
// Semantic Scholar API, normalizes them, and commits new ones to the content
// store. The pipeline is linear: acquire, normalize, deduplicate, commit.
package importer

import (
	"regexp"
	"strings"
	"time"
)

// ParsedPublication is the transient, normalized form of one bibliographic
// record between acquisition and commit. Records are never mutated after
// parsing; duplicates are skipped outright, not merged.
type ParsedPublication struct {
	Title    string `json:"title" yaml:"title"`
	Authors  string `json:"authors" yaml:"authors"`
	Journal  string `json:"journal" yaml:"journal"`
	Year     string `json:"year" yaml:"year"`
	Month    string `json:"month,omitempty" yaml:"month,omitempty"`
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	DOI      string `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Entries are matched permissively: any @type{key, ...} block. Within an
// entry, fields tolerate brace-, quote-, or bare-delimited values, which
// covers the common exports (Google Scholar, Zotero, Mendeley). Braced values
// keep their commas and one level of nested braces, so "author = {Doe, John}"
// survives intact.
var (
	entryRe = regexp.MustCompile(`@(\w+)\s*\{\s*([^,]+),([^@]*)\}`)
	fieldRe = regexp.MustCompile(`(\w+)\s*=\s*(?:\{([^}]*(?:\{[^}]*\}[^}]*)*)\}|"([^"]*)"|([^,\s}]+))`)

	latexWrapRe  = regexp.MustCompile(`\\(?:textit|emph)\{([^}]*)\}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParseBibTeX extracts publications from raw BibTeX text. Entries without a
// title are silently discarded; a lower-than-expected parsed count is the only
// trace they leave. Missing fields fall back: venue prefers journal, then
// booktitle, publisher, howpublished; authors prefer author then authors;
// the year defaults to the current calendar year.
func ParseBibTeX(text string) []ParsedPublication {
	var pubs []ParsedPublication

	for _, entry := range entryRe.FindAllStringSubmatch(text, -1) {
		fields := make(map[string]string)
		for _, m := range fieldRe.FindAllStringSubmatch(entry[3], -1) {
			fields[strings.ToLower(m[1])] = cleanValue(firstNonEmpty(m[2], m[3], m[4]))
		}

		title := fields["title"]
		if title == "" {
			continue
		}

		authors := firstOf(fields, "author", "authors")
		if authors == "" {
			authors = "Unknown"
		}
		journal := firstOf(fields, "journal", "booktitle", "publisher", "howpublished")
		if journal == "" {
			journal = "Unknown"
		}
		year := fields["year"]
		if year == "" {
			year = time.Now().Format("2006")
		}

		doi := fields["doi"]
		pubURL := fields["url"]
		if pubURL == "" && doi != "" {
			pubURL = "https://doi.org/" + doi
		}

		pubs = append(pubs, ParsedPublication{
			Title:    title,
			Authors:  FormatAuthors(authors),
			Journal:  journal,
			Year:     year,
			Month:    fields["month"],
			Abstract: fields["abstract"],
			DOI:      doi,
			URL:      pubURL,
		})
	}

	return pubs
}

// cleanValue strips BibTeX and LaTeX noise from a field value: \textit{} and
// \emph{} wrappers reduce to their inner text, remaining braces are dropped,
// escaped ampersands are unescaped, and whitespace runs collapse to one space.
func cleanValue(v string) string {
	v = latexWrapRe.ReplaceAllString(v, "$1")
	v = strings.NewReplacer("{", "", "}", "", `\&`, "&").Replace(v)
	v = whitespaceRe.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstOf(fields map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := fields[k]; v != "" {
			return v
		}
	}
	return ""
}
