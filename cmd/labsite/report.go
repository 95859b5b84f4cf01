package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/labsite/internal/importer"
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Show a saved import run report",
	Long: `Report prints the summary and per-record outcomes of a previous import
run saved with import --report.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	r, err := importer.ReadReport(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Source:    %s\n", r.Source)
	fmt.Printf("Timestamp: %s\n", r.Timestamp.Format("2006-01-02 15:04:05 MST"))
	if r.DryRun {
		fmt.Println("Mode:      dry run")
	}
	fmt.Printf("Summary:   %d imported, %d skipped, %d errors\n\n",
		r.Summary.Imported, r.Summary.Skipped, r.Summary.Errors)

	for _, rec := range r.Records {
		line := fmt.Sprintf("%-9s %s", rec.Outcome+":", rec.Title)
		if rec.Detail != "" {
			line += " (" + rec.Detail + ")"
		}
		fmt.Println(line)
	}
	return nil
}
