package domain

import "time"

// Post is the uniform, ephemeral shape every adapter produces. It lives for
// one gathering run: parsed, filtered, tagged, then reconciled into a
// DigestRecord and discarded.
type Post struct {
	Timestamp  *time.Time
	Title      string
	URL        string
	Brief      *string
	Keywords   []string
	Filtered   bool
	SourceName string
}

// GatheringIteration is the audit row written once per source per run.
// Exactly one of the three outcomes holds: source disabled, source error,
// parser error - or none of them for a successful run.
type GatheringIteration struct {
	ID            int64
	Timestamp     time.Time
	SourceID      int64
	OverallCount  int
	GatheredCount int
	SavedCount    int
	SourceEnabled bool
	SourceError   *string
	ParserError   *string
}

// GatherStats aggregates counters across one run of one source.
type GatherStats struct {
	SourceName      string
	Fetched         int
	Gathered        int
	Saved           int
	AlreadyExisting int
	DatesBackfilled int
	Errors          int
	Duration        time.Duration
}
