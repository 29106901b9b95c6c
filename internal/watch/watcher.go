// Package watch processes chart exports as they appear in a folder.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/gyeh/chartrename/internal/pipeline"
)

// settleDelay gives the exporting application time to finish writing a
// file before the pipeline opens it.
const settleDelay = 500 * time.Millisecond

// Watcher renames new PDFs dropped into Dir until its context is canceled.
// Files that need manual review are left in place for a human.
type Watcher struct {
	Dir  string
	Opts pipeline.Options

	seen map[string]bool
}

// Run blocks, processing create events in Dir, until ctx is canceled.
func (w *Watcher) Run(ctx context.Context, log zerolog.Logger) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.Dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.Dir, err)
	}
	w.seen = make(map[string]bool)

	log.Info().Str("dir", w.Dir).Msg("watching for new chart exports")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !Candidate(event.Name) || w.seen[event.Name] {
				continue
			}
			w.seen[event.Name] = true
			time.Sleep(settleDelay)
			w.process(log, event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) process(log zerolog.Logger, path string) {
	res, err := pipeline.Process(log, w.Opts, path)
	if err != nil {
		log.Error().Err(err).Str("file", filepath.Base(path)).Msg("processing failed")
		return
	}
	if res.Renamed {
		// When the output folder is the watched folder, the move
		// itself raises a create event; don't reprocess our output.
		w.seen[res.FinalPath] = true
	}
}

// Candidate reports whether a path looks like a chart export worth
// processing: a PDF that is not hidden.
func Candidate(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".pdf")
}
