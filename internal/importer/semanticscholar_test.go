// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labsite/pkg/types"
)

// scholarServer fakes the Semantic Scholar graph API for author search and
// paper listing.
func scholarServer(t *testing.T, searchBody, papersBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/author/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchBody))
	})
	mux.HandleFunc("/author/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(papersBody))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	orig := semanticAPIBase
	semanticAPIBase = srv.URL
	t.Cleanup(func() { semanticAPIBase = orig })
	return srv
}

const twoAuthorSearch = `{"data": [
	{"authorId": "111", "name": "Jane Smith", "paperCount": 40},
	{"authorId": "222", "name": "Jane Smithson", "paperCount": 3}
]}`

const onePaperList = `{"data": [{
	"paperId": "p1",
	"title": "A Study",
	"authors": [{"name": "Jane Smith"}, {"name": "John Doe"}],
	"venue": "Nature",
	"year": 2020,
	"abstract": "Findings.",
	"externalIds": {"DOI": "10.1/x"},
	"url": "https://www.semanticscholar.org/paper/p1"
}]}`

func TestFetchByAuthorNameUsesFirstCandidate(t *testing.T) {
	srv := scholarServer(t, twoAuthorSearch, onePaperList)
	var out bytes.Buffer

	pubs, err := FetchByAuthorName(context.Background(), srv.Client(), "Jane Smith", types.ImportConfig{}, &out)
	require.NoError(t, err)
	require.Len(t, pubs, 1)

	p := pubs[0]
	assert.Equal(t, "A Study", p.Title)
	assert.Equal(t, "Jane Smith, John Doe", p.Authors)
	assert.Equal(t, "Nature", p.Journal)
	assert.Equal(t, "2020", p.Year)
	assert.Equal(t, "10.1/x", p.DOI)
	assert.Equal(t, "https://doi.org/10.1/x", p.URL, "DOI link wins over the paper page URL")

	assert.Contains(t, out.String(), "Using: Jane Smith")
	assert.Contains(t, out.String(), "Jane Smithson", "candidate list is printed for the operator")
}

func TestFetchByAuthorNameNoCandidates(t *testing.T) {
	srv := scholarServer(t, `{"data": []}`, onePaperList)
	var out bytes.Buffer

	_, err := FetchByAuthorName(context.Background(), srv.Client(), "Nobody", types.ImportConfig{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no authors found")
}

func TestFetchByAuthorIDVenueAndYearFallbacks(t *testing.T) {
	papers := `{"data": [{
		"paperId": "p2",
		"title": "Venueless",
		"authors": [{"name": "Jane Smith"}],
		"venue": "",
		"year": 0,
		"externalIds": {},
		"url": "https://www.semanticscholar.org/paper/p2"
	}]}`
	srv := scholarServer(t, twoAuthorSearch, papers)
	var out bytes.Buffer

	pubs, err := FetchByAuthorID(context.Background(), srv.Client(), "111", types.ImportConfig{}, &out)
	require.NoError(t, err)
	require.Len(t, pubs, 1)

	assert.Equal(t, "Unknown", pubs[0].Journal)
	assert.NotEqual(t, "0", pubs[0].Year, "missing year falls back to the current year")
	assert.Equal(t, "https://www.semanticscholar.org/paper/p2", pubs[0].URL)
	assert.Empty(t, pubs[0].DOI)
}

func TestFetchSendsAPIKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		w.Write([]byte(`{"data": []}`))
	}))
	t.Cleanup(srv.Close)

	orig := semanticAPIBase
	semanticAPIBase = srv.URL
	t.Cleanup(func() { semanticAPIBase = orig })

	var out bytes.Buffer
	cfg := types.ImportConfig{SemanticScholarAPIKey: "sekrit"}
	_, err := FetchByAuthorID(context.Background(), srv.Client(), "111", cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, "sekrit", gotKey)
}

func TestFetchSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	orig := semanticAPIBase
	semanticAPIBase = srv.URL
	t.Cleanup(func() { semanticAPIBase = orig })

	var out bytes.Buffer
	_, err := FetchByAuthorName(context.Background(), srv.Client(), "Jane Smith", types.ImportConfig{}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}
