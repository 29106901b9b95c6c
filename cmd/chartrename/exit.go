package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"

	"github.com/gyeh/chartrename/internal/exitcode"
	"github.com/gyeh/chartrename/internal/pipeline"
)

// exitPipelineError logs a pipeline failure and exits with the code for
// its phase; never returns.
func exitPipelineError(log zerolog.Logger, err error) {
	var pe *pipeline.PipelineError
	if errors.As(err, &pe) {
		log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("processing failed")
		switch pe.Phase {
		case "validate", "scan":
			os.Exit(exitcode.ValidationError)
		case "extract":
			os.Exit(exitcode.ExtractError)
		default:
			os.Exit(exitcode.RenameError)
		}
	}
	log.Error().Err(err).Msg("processing failed")
	os.Exit(exitcode.RenameError)
}
