package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/chartrename/internal/exitcode"
	"github.com/gyeh/chartrename/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Rename every chart PDF in a folder",
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&cfg.Dir, "dir", "", "Folder of chart PDFs (required)")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "Report target names without moving files")
	_ = batchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	log, err := setup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.UsageError)
	}

	if err := cfg.ValidateDir(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	format, known := cfg.FileFormat()
	if !known {
		log.Warn().Str("format", cfg.Format).Str("using", string(format)).Msg("unknown format, falling back")
	}

	opts := pipeline.Options{
		OutputDir: cfg.OutputDir,
		Format:    format,
		DryRun:    cfg.DryRun,
	}

	summary, err := pipeline.ProcessDir(log, opts, cfg.Dir)
	if err != nil {
		exitPipelineError(log, err)
	}

	fmt.Printf("Batch complete: %d processed, %d renamed, %d need review, %d failed (%.1fs)\n",
		summary.Processed, summary.Renamed, summary.NeedsReview, summary.Failed,
		summary.Duration.Seconds())

	if summary.Failed > 0 || summary.NeedsReview > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
