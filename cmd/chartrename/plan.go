package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/chartrename/internal/exitcode"
	"github.com/gyeh/chartrename/internal/parse"
	"github.com/gyeh/chartrename/internal/pdftext"
	"github.com/gyeh/chartrename/internal/rename"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Parse a chart PDF and show the proposed name (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to chart PDF (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	if err := pdftext.Validate(cfg.FilePath); err != nil {
		log.Error().Err(err).Msg("validation failed")
		os.Exit(exitcode.ValidationError)
	}

	text, err := pdftext.Extract(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("extraction failed")
		os.Exit(exitcode.ExtractError)
	}

	info := parse.Patient(text, filepath.Base(cfg.FilePath))

	fmt.Printf("File:       %s\n", filepath.Base(cfg.FilePath))
	fmt.Printf("First:      %s\n", orUnknown(info.FirstName))
	fmt.Printf("Last:       %s\n", orUnknown(info.LastName))
	if info.AppointmentDate != nil {
		fmt.Printf("Date:       %s\n", info.AppointmentDate.Format("January 2, 2006"))
	} else {
		fmt.Printf("Date:       (not found)\n")
	}
	if info.DateCode != "" {
		fmt.Printf("Date code:  %s\n", info.DateCode)
	}
	fmt.Printf("Confidence: %.0f%%\n", info.Confidence*100)

	if info.NeedsReview() {
		fmt.Println("Status:     needs manual review")
		return nil
	}

	format, known := cfg.FileFormat()
	if !known {
		log.Warn().Str("format", cfg.Format).Str("using", string(format)).Msg("unknown format, falling back")
	}
	proposed, err := rename.BuildFilename(info, format)
	if err != nil {
		log.Error().Err(err).Msg("cannot build filename")
		os.Exit(exitcode.ValidationError)
	}
	fmt.Printf("Proposed:   %s\n", proposed)
	return nil
}
