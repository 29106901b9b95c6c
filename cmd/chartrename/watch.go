package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gyeh/chartrename/internal/exitcode"
	"github.com/gyeh/chartrename/internal/pipeline"
	"github.com/gyeh/chartrename/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a folder and rename new chart PDFs as they arrive",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&cfg.Dir, "dir", "", "Folder to watch (required)")
	_ = watchCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := watch.Watcher{
		Dir: cfg.Dir,
		Opts: pipeline.Options{
			OutputDir: cfg.OutputDir,
			Format:    format,
		},
	}
	if err := w.Run(ctx, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("watch failed")
		os.Exit(exitcode.RenameError)
	}
	return nil
}
