package aggregator

import (
	"context"
	"sync"
	"time"

	"github.com/aleister1102/ipfresh/internal/extractor"
	"github.com/aleister1102/ipfresh/internal/fetcher"
	"github.com/rs/zerolog"
)

// AggregatorConfig holds configuration for a refresh run
type AggregatorConfig struct {
	MaxWorkers int // Max fetches concurrently in flight (default: 4)
}

// DefaultAggregatorConfig returns default configuration
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		MaxWorkers: 4,
	}
}

// Aggregator orchestrates concurrent fetches across all configured sources,
// runs extraction on each successful response and merges the candidates into
// a single deduplicated set. A failing source never aborts or delays the
// processing of its siblings.
type Aggregator struct {
	config      AggregatorConfig
	fetcher     *fetcher.SourceFetcher
	ipExtractor *extractor.IPExtractor
	logger      zerolog.Logger
}

// NewAggregator creates a new aggregator
func NewAggregator(
	config AggregatorConfig,
	sourceFetcher *fetcher.SourceFetcher,
	ipExtractor *extractor.IPExtractor,
	logger zerolog.Logger,
) *Aggregator {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultAggregatorConfig().MaxWorkers
	}
	return &Aggregator{
		config:      config,
		fetcher:     sourceFetcher,
		ipExtractor: ipExtractor,
		logger:      logger.With().Str("component", "Aggregator").Logger(),
	}
}

// Run dispatches one fetch task per source, bounded by MaxWorkers concurrent
// fetches. Excess sources wait for a slot. It returns the merged address set
// and a summary with per-source outcomes; an empty source list yields an
// empty set and zero counts without error.
func (ag *Aggregator) Run(ctx context.Context, sources []fetcher.SourceDescriptor) (*AddressSet, RunSummary) {
	start := time.Now()
	addressSet := NewAddressSet()
	outcomes := make([]SourceOutcome, len(sources))

	ag.logger.Info().
		Int("source_count", len(sources)).
		Int("max_workers", ag.config.MaxWorkers).
		Msg("Starting refresh run")

	semaphore := make(chan struct{}, ag.config.MaxWorkers)
	var wg sync.WaitGroup

	interrupted := false
	for i, src := range sources {
		// A select with a free semaphore slot picks a case at random, so the
		// cancellation check must come first to stop dispatching immediately.
		if ctx.Err() != nil {
			if !interrupted {
				interrupted = true
				ag.logger.Info().
					Int("dispatched", i).
					Int("total", len(sources)).
					Msg("Run interrupted by context cancellation")
			}
			outcomes[i] = SourceOutcome{URL: src.URL, Success: false, Reason: fetcher.FailureOther}
			continue
		}

		select {
		case <-ctx.Done():
			outcomes[i] = SourceOutcome{URL: src.URL, Success: false, Reason: fetcher.FailureOther}
			continue
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(index int, source fetcher.SourceDescriptor) {
			defer wg.Done()
			defer func() { <-semaphore }()

			outcomes[index] = ag.processSource(ctx, source, addressSet)
		}(i, src)
	}

	wg.Wait()

	summary := buildSummary(outcomes, addressSet.Len(), time.Since(start))

	ag.logger.Info().
		Int("total_sources", summary.TotalSources).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Int("addresses_found", summary.AddressesFound).
		Dur("elapsed", summary.Elapsed).
		Msg("Refresh run completed")

	return addressSet, summary
}

// processSource fetches one source and merges its candidates. Each outcome
// slot is written by exactly one goroutine, so no lock is needed for the
// outcomes slice; the address set guards itself.
func (ag *Aggregator) processSource(ctx context.Context, source fetcher.SourceDescriptor, addressSet *AddressSet) SourceOutcome {
	result := ag.fetcher.Fetch(ctx, source)
	if !result.Success {
		return SourceOutcome{
			URL:        source.URL,
			Success:    false,
			Reason:     result.Reason,
			StatusCode: result.StatusCode,
		}
	}

	candidates := ag.ipExtractor.Extract(result.Body)
	addressSet.AddAll(candidates)

	ag.logger.Info().
		Str("url", source.URL).
		Int("addresses_found", len(candidates)).
		Msg("Source processed")

	return SourceOutcome{
		URL:            source.URL,
		Success:        true,
		StatusCode:     result.StatusCode,
		AddressesFound: len(candidates),
	}
}

// buildSummary derives aggregate counts from per-source outcomes
func buildSummary(outcomes []SourceOutcome, addressCount int, elapsed time.Duration) RunSummary {
	summary := RunSummary{
		TotalSources:   len(outcomes),
		AddressesFound: addressCount,
		Elapsed:        elapsed,
		Outcomes:       outcomes,
	}
	for _, outcome := range outcomes {
		if outcome.Success {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return summary
}
