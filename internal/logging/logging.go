package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup initializes a zerolog.Logger based on the requested format.
// format can be "text" (human-friendly console) or "json" (structured).
// When file is non-empty, log lines are also written to a size-rotated
// file at that path.
func Setup(format, file string) zerolog.Logger {
	var out io.Writer = os.Stderr
	if format == "text" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	if file != "" {
		sink := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
		}
		out = zerolog.MultiLevelWriter(out, sink)
	}
	return zerolog.New(out).With().Timestamp().Logger()
}
