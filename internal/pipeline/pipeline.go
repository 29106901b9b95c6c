// Package pipeline wires extraction, parsing, and renaming into the
// single-document and batch processing flows.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/chartrename/internal/model"
	"github.com/gyeh/chartrename/internal/normalize"
	"github.com/gyeh/chartrename/internal/parse"
	"github.com/gyeh/chartrename/internal/pdftext"
	"github.com/gyeh/chartrename/internal/rename"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// ExtractFunc returns the raw text layer of the document at path.
type ExtractFunc func(path string) (string, error)

// Options configures a processing run.
type Options struct {
	OutputDir string // empty: rename in place beside the source
	Format    model.FileFormat
	DryRun    bool

	// Extract overrides the PDF text reader; nil means pdftext.Extract.
	Extract ExtractFunc

	// Override, when set, skips extraction and parsing entirely and
	// renames with the reviewer-corrected fields.
	Override *model.PatientInfo
}

func (o Options) extract() ExtractFunc {
	if o.Extract != nil {
		return o.Extract
	}
	return pdftext.Extract
}

// Result reports the outcome for one document.
type Result struct {
	SourcePath  string
	FinalPath   string // set after a completed move
	Proposed    string // filename that was or would be used
	Info        *model.PatientInfo
	Renamed     bool
	NeedsReview bool
}

// Process runs validate → extract → parse → confidence gate → rename for a
// single document. Low confidence is a data state, not an error: the file
// is left at the source path and Result.NeedsReview is set. Log lines
// carry the file hash, never extracted text.
func Process(log zerolog.Logger, opts Options, path string) (*Result, error) {
	res := &Result{SourcePath: path}

	info := opts.Override
	if info == nil {
		if err := pdftext.Validate(path); err != nil {
			return nil, &PipelineError{Phase: "validate", Err: err}
		}
		text, err := opts.extract()(path)
		if err != nil {
			return nil, &PipelineError{Phase: "extract", Err: err}
		}
		info = parse.Patient(text, filepath.Base(path))
	}
	res.Info = info

	hash, err := normalize.ShortHash(path)
	if err != nil {
		return nil, &PipelineError{Phase: "validate", Err: err}
	}

	if info.NeedsReview() {
		res.NeedsReview = true
		log.Warn().
			Str("hash", hash).
			Float64("confidence", info.Confidence).
			Bool("complete", info.IsComplete()).
			Msg("needs manual review, skipping rename")
		return res, nil
	}

	filename, err := rename.BuildFilename(info, opts.Format)
	if err != nil {
		return nil, &PipelineError{Phase: "build", Err: err}
	}
	res.Proposed = filename

	if opts.DryRun {
		log.Info().Str("hash", hash).Str("proposed", filename).Msg("dry run, file not moved")
		return res, nil
	}

	renamer := rename.Renamer{OutputDir: opts.OutputDir}
	final, err := renamer.Rename(path, info, opts.Format)
	if err != nil {
		return nil, &PipelineError{Phase: "rename", Err: err}
	}
	res.FinalPath = final
	res.Renamed = true

	log.Info().
		Str("hash", hash).
		Str("target", filepath.Base(final)).
		Msg("rename complete")
	return res, nil
}
