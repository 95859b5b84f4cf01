// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/labsite/internal/content"
	"github.com/pdiddy/labsite/pkg/types"
)

// Summary tallies one import run.
type Summary struct {
	Imported int `json:"imported" yaml:"imported"`
	Skipped  int `json:"skipped" yaml:"skipped"`
	Errors   int `json:"errors" yaml:"errors"`
}

// Options controls a pipeline run.
type Options struct {
	// DryRun executes the full pipeline, existence checks included, but
	// withholds every write. Records that would have been written count as
	// imported.
	DryRun bool

	// Delay is the pause before each record write. Advisory backpressure,
	// not reactive backoff.
	Delay time.Duration
}

// Record outcome labels for the run report.
const (
	OutcomeImported = "imported"
	OutcomeSkipped  = "skipped"
	OutcomeError    = "error"
)

// RecordOutcome is one record's fate in a run.
type RecordOutcome struct {
	Title   string `json:"title" yaml:"title"`
	Slug    string `json:"slug" yaml:"slug"`
	Outcome string `json:"outcome" yaml:"outcome"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Import commits publications to the store one at a time. Before each commit
// the store is asked for an exact title match; a hit is skipped, not merged.
// A per-record write failure is counted and the loop continues; there is no
// batch transaction. The dedup check and the write are not atomic: two
// concurrent runs can both pass the check for the same title and both write.
// Accepted, because the importer is a single-operator administrative tool.
func Import(ctx context.Context, store *content.Client, pubs []ParsedPublication, opts Options, w io.Writer) (Summary, []RecordOutcome) {
	var sum Summary
	outcomes := make([]RecordOutcome, 0, len(pubs))

	prefix := ""
	if opts.DryRun {
		prefix = "[DRY RUN] "
	}
	fmt.Fprintf(w, "\n%sImporting %d publications...\n\n", prefix, len(pubs))

	for i, pub := range pubs {
		if i > 0 && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}

		outcome := RecordOutcome{Title: pub.Title, Slug: Slug(pub.Title)}

		exists, err := publicationExists(ctx, store, pub.Title)
		if err != nil {
			fmt.Fprintf(w, "error:    %s (%v)\n", truncate(pub.Title, 60), err)
			sum.Errors++
			outcome.Outcome = OutcomeError
			outcome.Detail = err.Error()
			outcomes = append(outcomes, outcome)
			continue
		}
		if exists {
			fmt.Fprintf(w, "skipped:  %s (exists)\n", truncate(pub.Title, 60))
			sum.Skipped++
			outcome.Outcome = OutcomeSkipped
			outcomes = append(outcomes, outcome)
			continue
		}

		if opts.DryRun {
			fmt.Fprintf(w, "would import: %s\n", truncate(pub.Title, 60))
			sum.Imported++
			outcome.Outcome = OutcomeImported
			outcomes = append(outcomes, outcome)
			continue
		}

		if err := store.Create(ctx, ToDocument(pub)); err != nil {
			fmt.Fprintf(w, "error:    %s (%v)\n", truncate(pub.Title, 60), err)
			sum.Errors++
			outcome.Outcome = OutcomeError
			outcome.Detail = err.Error()
			outcomes = append(outcomes, outcome)
			continue
		}

		fmt.Fprintf(w, "imported: %s\n", truncate(pub.Title, 60))
		sum.Imported++
		outcome.Outcome = OutcomeImported
		outcomes = append(outcomes, outcome)
	}

	fmt.Fprintf(w, "\nImport summary: %d imported, %d skipped, %d errors\n",
		sum.Imported, sum.Skipped, sum.Errors)
	return sum, outcomes
}

// publicationExists asks the store for an exact, case-sensitive title match.
// Near-duplicate titles (different punctuation, capitalization, trailing
// whitespace) are not caught. The check goes through a passthrough gateway:
// the importer is an operator tool, not a tenant-scoped request path.
func publicationExists(ctx context.Context, store *content.Client, title string) (bool, error) {
	g := content.NewGateway(store, types.TenantConfig{}, "", false)
	raw, err := g.Fetch(ctx,
		`count(*[_type == "publication" && title == $title]) > 0`,
		map[string]any{"title": title})
	if err != nil {
		return false, err
	}

	var exists bool
	if err := json.Unmarshal(raw, &exists); err != nil {
		return false, fmt.Errorf("parsing existence check result: %w", err)
	}
	return exists, nil
}

// truncate shortens s to max characters for console output. Counted in runes
// so multi-byte titles are never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
