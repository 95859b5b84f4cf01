// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pdiddy/labsite/pkg/types"
)

var andSplitRe = regexp.MustCompile(`(?i)\s+and\s+`)

// FormatAuthors normalizes an "and"-joined BibTeX author list to a
// comma-joined display string of "Initial. Initial. Last" tokens. Both
// "Last, First" and "First Last" forms are handled; given names reduce to
// their capitalized first letter, surnames pass through verbatim, and
// single-token names are left unchanged.
func FormatAuthors(authors string) string {
	list := andSplitRe.Split(authors, -1)

	formatted := make([]string, 0, len(list))
	for _, author := range list {
		author = strings.TrimSpace(author)

		if last, first, ok := strings.Cut(author, ","); ok {
			formatted = append(formatted, initials(strings.TrimSpace(first))+" "+strings.TrimSpace(last))
			continue
		}

		parts := strings.Fields(author)
		if len(parts) >= 2 {
			last := parts[len(parts)-1]
			formatted = append(formatted, initials(strings.Join(parts[:len(parts)-1], " "))+" "+last)
			continue
		}

		formatted = append(formatted, author)
	}

	return strings.Join(formatted, ", ")
}

// initials reduces "Jane Quinn" to "J. Q.". The first letter is taken as a
// rune, so accented given names keep a whole initial.
func initials(given string) string {
	names := strings.Fields(given)
	out := make([]string, len(names))
	for i, name := range names {
		r, _ := utf8.DecodeRuneInString(name)
		out[i] = string(unicode.ToUpper(r)) + "."
	}
	return strings.Join(out, " ")
}

// monthCodes maps month names, abbreviations, and 1-12 numerics to two-digit
// codes. Lookup is case-insensitive; unrecognized input defaults to "01".
var monthCodes = map[string]string{
	"jan": "01", "january": "01", "1": "01",
	"feb": "02", "february": "02", "2": "02",
	"mar": "03", "march": "03", "3": "03",
	"apr": "04", "april": "04", "4": "04",
	"may": "05", "5": "05",
	"jun": "06", "june": "06", "6": "06",
	"jul": "07", "july": "07", "7": "07",
	"aug": "08", "august": "08", "8": "08",
	"sep": "09", "september": "09", "9": "09",
	"oct": "10", "october": "10", "10": "10",
	"nov": "11", "november": "11", "11": "11",
	"dec": "12", "december": "12", "12": "12",
}

// ParseMonth converts a month name or number to a two-digit code.
func ParseMonth(month string) string {
	if code, ok := monthCodes[strings.ToLower(strings.TrimSpace(month))]; ok {
		return code
	}
	return "01"
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugLen = 96

// Slug derives a URL-safe identifier from a title: lowercased, runs of
// non-alphanumerics collapsed to single hyphens, trimmed, capped at 96
// characters. Idempotent: re-slugging a slug yields the same slug.
func Slug(title string) string {
	s := nonAlnumRe.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// ToDocument derives the persisted record from a parsed publication: a
// generated document ID and slug, a "YYYY-MM" publication date, and a journal
// link chosen by precedence: explicit URL, then DOI resolver URL, then a
// scholar search built from the title.
func ToDocument(pub ParsedPublication) types.Publication {
	link := pub.URL
	if link == "" && pub.DOI != "" {
		link = "https://doi.org/" + pub.DOI
	}
	if link == "" {
		link = "https://scholar.google.com/scholar?q=" + url.QueryEscape(pub.Title)
	}

	return types.Publication{
		ID:              uuid.NewString(),
		Type:            "publication",
		Title:           pub.Title,
		Slug:            types.Slug{Current: Slug(pub.Title)},
		Authors:         pub.Authors,
		Journal:         pub.Journal,
		PublicationDate: pub.Year + "-" + ParseMonth(pub.Month),
		Abstract:        pub.Abstract,
		JournalLink:     link,
	}
}
