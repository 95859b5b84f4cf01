package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labsite/internal/content"
	"github.com/pdiddy/labsite/internal/importer"
	"github.com/pdiddy/labsite/internal/secrets"
	"github.com/pdiddy/labsite/pkg/types"
)

const defaultWriteDelay = 100 * time.Millisecond

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import publications from BibTeX or Semantic Scholar",
	Long: `Import loads publications into the content store from a BibTeX file
(exported from Google Scholar, Zotero, Mendeley, or ORCID) or from the
Semantic Scholar API by author name or author ID.

Records whose title exactly matches an existing publication are skipped.
Use --dry-run to preview the full run, existence checks included, without
writing anything.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().String("bibtex", "", "path to a BibTeX file")
	importCmd.Flags().String("semantic-scholar", "", "search Semantic Scholar by author name (first match wins)")
	importCmd.Flags().String("semantic-scholar-id", "", "fetch from Semantic Scholar by author ID")
	importCmd.Flags().Bool("dry-run", false, "preview without writing to the content store")
	importCmd.Flags().Duration("delay", defaultWriteDelay, "delay between consecutive writes")
	importCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	importCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	bibtexPath, _ := cmd.Flags().GetString("bibtex")
	authorName, _ := cmd.Flags().GetString("semantic-scholar")
	authorID, _ := cmd.Flags().GetString("semantic-scholar-id")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	delay, _ := cmd.Flags().GetDuration("delay")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	reportPath, _ := cmd.Flags().GetString("report")

	if bibtexPath == "" && authorName == "" && authorID == "" {
		return fmt.Errorf("provide a source: --bibtex, --semantic-scholar, or --semantic-scholar-id")
	}

	scfg := storeConfig()
	if scfg.WriteToken == "" && !dryRun {
		return fmt.Errorf("a content store write token is required (set store.write_token or .secrets/sanity-write-token, or use --dry-run)")
	}

	icfg := types.ImportConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		WriteDelay:            delay,
		SemanticScholarAPIKey: secrets.Value(loadedSecrets, secrets.KeySemanticScholarAPIKey, ""),
	}
	client := &http.Client{Timeout: icfg.Timeout}

	// Configuration problems are fatal before any acquisition work starts.
	store, err := content.NewClient(scfg, client)
	if err != nil {
		return err
	}
	ctx := context.Background()

	// One source per invocation; when several are given, author ID beats
	// author name beats BibTeX file.
	var (
		pubs   []importer.ParsedPublication
		source string
	)
	switch {
	case authorID != "":
		source = "semantic-scholar-id:" + authorID
		pubs, err = importer.FetchByAuthorID(ctx, client, authorID, icfg, os.Stdout)
	case authorName != "":
		source = "semantic-scholar:" + authorName
		pubs, err = importer.FetchByAuthorName(ctx, client, authorName, icfg, os.Stdout)
	default:
		source = "bibtex:" + bibtexPath
		var data []byte
		data, err = os.ReadFile(bibtexPath)
		if err != nil {
			return fmt.Errorf("reading BibTeX file: %w", err)
		}
		fmt.Printf("Reading BibTeX file: %s\n", bibtexPath)
		pubs = importer.ParseBibTeX(string(data))
		fmt.Printf("Parsed %d publications\n", len(pubs))
	}
	if err != nil {
		return err
	}

	if len(pubs) == 0 {
		return fmt.Errorf("no publications found to import")
	}

	printPreview(pubs)

	summary, outcomes := importer.Import(ctx, store, pubs, importer.Options{
		DryRun: dryRun,
		Delay:  delay,
	}, os.Stdout)

	if reportPath != "" {
		report := importer.Report{
			Source:    source,
			DryRun:    dryRun,
			Timestamp: time.Now().UTC(),
			Summary:   summary,
			Records:   outcomes,
		}
		if err := importer.WriteReport(reportPath, report); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	return nil
}

// printPreview shows the first few parsed records before the import starts.
func printPreview(pubs []importer.ParsedPublication) {
	fmt.Println("\nPreview (first 5 publications):")
	for i, pub := range pubs {
		if i >= 5 {
			fmt.Printf("  ... and %d more\n", len(pubs)-5)
			break
		}
		fmt.Printf("  %d. %s\n     Authors: %s\n     Journal: %s (%s)\n", i+1, pub.Title, pub.Authors, pub.Journal, pub.Year)
	}
}
