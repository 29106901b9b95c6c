package model

import "time"

// BatchSummary captures counts from a multi-file processing run.
type BatchSummary struct {
	BatchID     string
	Dir         string
	Processed   int
	Renamed     int
	NeedsReview int
	Failed      int
	Duration    time.Duration
}
