package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/chartrename/internal/model"
)

// ProcessDir runs the pipeline over every .pdf directly inside dir,
// continuing past per-file failures. All log lines and the returned
// summary carry a fresh batch ID.
func ProcessDir(log zerolog.Logger, opts Options, dir string) (*model.BatchSummary, error) {
	start := time.Now()
	batchID := uuid.New()
	log = log.With().Str("batch_id", batchID.String()).Logger()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &PipelineError{Phase: "scan", Err: err}
	}

	summary := &model.BatchSummary{BatchID: batchID.String(), Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		summary.Processed++

		res, err := Process(log, opts, filepath.Join(dir, entry.Name()))
		if err != nil {
			summary.Failed++
			log.Error().Err(err).Str("file", entry.Name()).Msg("processing failed")
			continue
		}
		if res.NeedsReview {
			summary.NeedsReview++
			continue
		}
		summary.Renamed++
	}
	summary.Duration = time.Since(start)

	log.Info().
		Int("processed", summary.Processed).
		Int("renamed", summary.Renamed).
		Int("needs_review", summary.NeedsReview).
		Int("failed", summary.Failed).
		Str("duration", summary.Duration.String()).
		Msg("batch complete")
	return summary, nil
}
