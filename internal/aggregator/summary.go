package aggregator

import (
	"time"

	"github.com/aleister1102/ipfresh/internal/fetcher"
)

// SourceOutcome records how one source fared during a run
type SourceOutcome struct {
	URL            string
	Success        bool
	Reason         fetcher.FailureReason
	StatusCode     int
	AddressesFound int
}

// RunSummary holds aggregate counts for one completed run. It is derived,
// read-only reporting data and is not persisted.
type RunSummary struct {
	TotalSources   int
	Succeeded      int
	Failed         int
	AddressesFound int
	Elapsed        time.Duration
	Outcomes       []SourceOutcome
}
