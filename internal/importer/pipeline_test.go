// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/labsite/internal/content"
	"github.com/pdiddy/labsite/pkg/types"
)

// importStore fakes the content store for pipeline runs: existence checks
// answer from a set of known titles, mutations are recorded.
type importStore struct {
	mu       sync.Mutex
	existing map[string]bool
	mutates  int
	failOn   string // title whose write returns HTTP 500
	server   *httptest.Server
}

func newImportStore(t *testing.T, existing ...string) *importStore {
	t.Helper()

	s := &importStore{existing: make(map[string]bool)}
	for _, title := range existing {
		s.existing[title] = true
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		if r.Method == http.MethodGet {
			var title string
			require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("$title")), &title))
			result := "false"
			if s.existing[title] {
				result = "true"
			}
			w.Write([]byte(`{"result": ` + result + `}`))
			return
		}

		s.mutates++
		if s.failOn != "" {
			var payload struct {
				Mutations []struct {
					Create types.Publication `json:"create"`
				} `json:"mutations"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			if len(payload.Mutations) == 1 && payload.Mutations[0].Create.Title == s.failOn {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(s.server.Close)
	return s
}

func (s *importStore) client(t *testing.T) *content.Client {
	t.Helper()
	c, err := content.NewClient(types.StoreConfig{ProjectID: "testproj", WriteToken: "tok"}, s.server.Client())
	require.NoError(t, err)
	c.BaseURL = s.server.URL
	return c
}

func pub(title string) ParsedPublication {
	return ParsedPublication{Title: title, Authors: "J. Doe", Journal: "Nature", Year: "2020"}
}

func TestImportSkipsExistingTitles(t *testing.T) {
	store := newImportStore(t, "Old Paper")
	var out bytes.Buffer

	sum, outcomes := Import(context.Background(), store.client(t),
		[]ParsedPublication{pub("New Paper"), pub("Old Paper")}, Options{}, &out)

	assert.Equal(t, Summary{Imported: 1, Skipped: 1}, sum)
	require.Len(t, outcomes, 2)
	assert.Equal(t, OutcomeImported, outcomes[0].Outcome)
	assert.Equal(t, OutcomeSkipped, outcomes[1].Outcome)
	assert.Equal(t, 1, store.mutates)
}

func TestImportDedupIsCaseSensitive(t *testing.T) {
	store := newImportStore(t, "a study")
	var out bytes.Buffer

	sum, _ := Import(context.Background(), store.client(t),
		[]ParsedPublication{pub("A Study")}, Options{}, &out)

	assert.Equal(t, Summary{Imported: 1}, sum)
	assert.Equal(t, 1, store.mutates)
}

func TestImportDryRunWritesNothing(t *testing.T) {
	store := newImportStore(t, "Old Paper")
	var out bytes.Buffer

	sum, _ := Import(context.Background(), store.client(t),
		[]ParsedPublication{pub("One"), pub("Two"), pub("Three"), pub("Old Paper")},
		Options{DryRun: true}, &out)

	assert.Equal(t, Summary{Imported: 3, Skipped: 1}, sum)
	assert.Zero(t, store.mutates, "dry run must not reach the mutation endpoint")
	assert.Contains(t, out.String(), "[DRY RUN]")
}

func TestImportContinuesPastWriteErrors(t *testing.T) {
	store := newImportStore(t)
	store.failOn = "Broken"
	var out bytes.Buffer

	sum, outcomes := Import(context.Background(), store.client(t),
		[]ParsedPublication{pub("Broken"), pub("Fine")}, Options{}, &out)

	assert.Equal(t, Summary{Imported: 1, Errors: 1}, sum)
	require.Len(t, outcomes, 2)
	assert.Equal(t, OutcomeError, outcomes[0].Outcome)
	assert.NotEmpty(t, outcomes[0].Detail)
	assert.Equal(t, OutcomeImported, outcomes[1].Outcome)
}

func TestTruncateRespectsRuneBoundaries(t *testing.T) {
	long := strings.Repeat("é", 30)
	got := truncate(long, 20)
	assert.True(t, utf8.ValidString(got), "truncated output must stay valid UTF-8")
	assert.Equal(t, strings.Repeat("é", 17)+"...", got)

	short := "Études"
	assert.Equal(t, short, truncate(short, 60))
}

func TestImportSummaryLine(t *testing.T) {
	store := newImportStore(t, "Old Paper")
	var out bytes.Buffer

	Import(context.Background(), store.client(t),
		[]ParsedPublication{pub("New Paper"), pub("Old Paper")}, Options{}, &out)

	if !strings.Contains(out.String(), "1 imported, 1 skipped, 0 errors") {
		t.Errorf("summary line missing from output:\n%s", out.String())
	}
}
