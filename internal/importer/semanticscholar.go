// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/labsite/pkg/types"
)

// semanticAPIBase is the Semantic Scholar graph API root. Declared as a var
// so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1"

const paperFields = "title,authors,venue,year,abstract,externalIds,url"

// FetchByAuthorName searches Semantic Scholar for an author and returns the
// first-ranked candidate's papers. Candidate authors are listed on w so the
// operator can verify the match. A failed search or an empty candidate list
// aborts the acquisition; there is no retry.
func FetchByAuthorName(ctx context.Context, client *http.Client, name string, cfg types.ImportConfig, w io.Writer) ([]ParsedPublication, error) {
	fmt.Fprintf(w, "Searching for author: %s\n", name)

	params := url.Values{
		"query": {name},
		"limit": {"5"},
	}
	reqURL := semanticAPIBase + "/author/search?" + params.Encode()

	var sr authorSearchResponse
	if err := getJSON(ctx, client, reqURL, cfg, &sr); err != nil {
		return nil, fmt.Errorf("author search: %w", err)
	}
	if len(sr.Data) == 0 {
		return nil, fmt.Errorf("no authors found matching %q", name)
	}

	fmt.Fprintln(w, "Found authors:")
	for i, a := range sr.Data {
		fmt.Fprintf(w, "  %d. %s (ID: %s) - %d papers\n", i+1, a.Name, a.AuthorID, a.PaperCount)
	}
	fmt.Fprintf(w, "Using: %s\n\n", sr.Data[0].Name)

	return FetchByAuthorID(ctx, client, sr.Data[0].AuthorID, cfg, w)
}

// FetchByAuthorID lists an author's papers and converts them to the
// pipeline's transient form.
func FetchByAuthorID(ctx context.Context, client *http.Client, authorID string, cfg types.ImportConfig, w io.Writer) ([]ParsedPublication, error) {
	fmt.Fprintln(w, "Fetching publications...")

	params := url.Values{
		"fields": {paperFields},
		"limit":  {"100"},
	}
	reqURL := fmt.Sprintf("%s/author/%s/papers?%s", semanticAPIBase, url.PathEscape(authorID), params.Encode())

	var pr paperListResponse
	if err := getJSON(ctx, client, reqURL, cfg, &pr); err != nil {
		return nil, fmt.Errorf("fetching papers: %w", err)
	}

	fmt.Fprintf(w, "Found %d publications\n\n", len(pr.Data))

	pubs := make([]ParsedPublication, 0, len(pr.Data))
	for _, paper := range pr.Data {
		names := make([]string, 0, len(paper.Authors))
		for _, a := range paper.Authors {
			names = append(names, a.Name)
		}

		journal := paper.Venue
		if journal == "" {
			journal = "Unknown"
		}
		year := fmt.Sprintf("%d", paper.Year)
		if paper.Year == 0 {
			year = time.Now().Format("2006")
		}

		pubURL := paper.URL
		if paper.ExternalIDs.DOI != "" {
			pubURL = "https://doi.org/" + paper.ExternalIDs.DOI
		}

		pubs = append(pubs, ParsedPublication{
			Title:    paper.Title,
			Authors:  strings.Join(names, ", "),
			Journal:  journal,
			Year:     year,
			Abstract: paper.Abstract,
			DOI:      paper.ExternalIDs.DOI,
			URL:      pubURL,
		})
	}
	return pubs, nil
}

// getJSON performs one GET and decodes the response. Any non-200 status is
// fatal to the acquisition attempt.
func getJSON(ctx context.Context, client *http.Client, reqURL string, cfg types.ImportConfig, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)
	if cfg.SemanticScholarAPIKey != "" {
		req.Header.Set("x-api-key", cfg.SemanticScholarAPIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return nil
}

// Semantic Scholar API JSON structures.
type authorSearchResponse struct {
	Data []scholarAuthor `json:"data"`
}

type scholarAuthor struct {
	AuthorID   string `json:"authorId"`
	Name       string `json:"name"`
	PaperCount int    `json:"paperCount"`
}

type paperListResponse struct {
	Data []scholarPaper `json:"data"`
}

type scholarPaper struct {
	PaperID     string               `json:"paperId"`
	Title       string               `json:"title"`
	Authors     []scholarPaperAuthor `json:"authors"`
	Venue       string               `json:"venue"`
	Year        int                  `json:"year"`
	Abstract    string               `json:"abstract"`
	ExternalIDs scholarExternalIDs   `json:"externalIds"`
	URL         string               `json:"url"`
}

type scholarPaperAuthor struct {
	Name string `json:"name"`
}

type scholarExternalIDs struct {
	DOI string `json:"DOI"`
}
