package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gyeh/chartrename/internal/exitcode"
	"github.com/gyeh/chartrename/internal/pipeline"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a single chart PDF",
	RunE:  runRename,
}

func init() {
	f := renameCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to chart PDF (required)")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "Report the target name without moving the file")
	f.StringVar(&cfg.FirstName, "first", "", "Reviewer override: first name")
	f.StringVar(&cfg.LastName, "last", "", "Reviewer override: last name")
	f.StringVar(&cfg.ApptDate, "date", "", "Reviewer override: appointment date as MMDDYY")
	f.StringVar(&cfg.DateCode, "date-code", "", "Reviewer override: DOI/DOB code, e.g. DOI010125")
	_ = renameCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	format, known := cfg.FileFormat()
	if !known {
		log.Warn().Str("format", cfg.Format).Str("using", string(format)).Msg("unknown format, falling back")
	}

	override, err := cfg.Override()
	if err != nil {
		log.Error().Err(err).Msg("invalid override flags")
		os.Exit(exitcode.UsageError)
	}

	opts := pipeline.Options{
		OutputDir: cfg.OutputDir,
		Format:    format,
		DryRun:    cfg.DryRun,
		Override:  override,
	}

	res, err := pipeline.Process(log, opts, cfg.FilePath)
	if err != nil {
		exitPipelineError(log, err)
	}

	if res.NeedsReview {
		printReview(res)
		os.Exit(exitcode.ReviewNeeded)
	}

	if cfg.DryRun {
		fmt.Printf("Would rename %s to: %s\n", filepath.Base(res.SourcePath), res.Proposed)
		return nil
	}
	fmt.Printf("Renamed to: %s\n", res.FinalPath)
	return nil
}

// printReview surfaces the extracted fields for manual correction. Stdout
// is the review surface; PHI stays out of the logs.
func printReview(res *pipeline.Result) {
	info := res.Info
	fmt.Printf("Needs review: %s\n", filepath.Base(res.SourcePath))
	fmt.Printf("  First:      %s\n", orUnknown(info.FirstName))
	fmt.Printf("  Last:       %s\n", orUnknown(info.LastName))
	if info.AppointmentDate != nil {
		fmt.Printf("  Date:       %s\n", info.AppointmentDate.Format("January 2, 2006"))
	} else {
		fmt.Printf("  Date:       (not found)\n")
	}
	if info.DateCode != "" {
		fmt.Printf("  Date code:  %s\n", info.DateCode)
	}
	fmt.Printf("  Confidence: %.0f%%\n", info.Confidence*100)
	fmt.Println("Re-run with --first/--last and --date or --date-code to rename manually.")
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}
