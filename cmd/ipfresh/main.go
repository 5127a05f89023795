package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aleister1102/ipfresh/internal/aggregator"
	"github.com/aleister1102/ipfresh/internal/config"
	"github.com/aleister1102/ipfresh/internal/datastore"
	"github.com/aleister1102/ipfresh/internal/extractor"
	"github.com/aleister1102/ipfresh/internal/fetcher"
	"github.com/aleister1102/ipfresh/internal/httpclient"
	"github.com/aleister1102/ipfresh/internal/logger"
	"github.com/rs/zerolog"
)

// Exit codes: 0 on success, 1 on unusable configuration or a failed write of
// the output artifact, 2 when the run completed but produced zero addresses
// (typically every source unreachable or page layouts changed).
const (
	exitOK          = 0
	exitFatal       = 1
	exitNoAddresses = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	bootstrapLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, bootstrapLogger)
	if err != nil {
		log.Printf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
		return exitFatal
	}

	// Flag overrides take precedence over config file values
	if flags.Mode != "" {
		gCfg.Mode = flags.Mode
	}
	if flags.OutputFile != "" {
		gCfg.StorageConfig.OutputFile = flags.OutputFile
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Printf("[FATAL] Could not initialize logger: %v", err)
		return exitFatal
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return exitFatal
	}
	zLogger.Info().Str("mode", gCfg.Mode).Msg("Configuration loaded and validated")

	app, err := buildApp(gCfg, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to initialize components")
		return exitFatal
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		zLogger.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
		cancel()
	}()

	if gCfg.Mode == "automated" {
		return app.runAutomated(ctx)
	}
	return app.runOnce(ctx)
}

// app wires the refresh pipeline: fetcher -> extractor -> aggregator -> writer
type app struct {
	cfg     *config.GlobalConfig
	sources []fetcher.SourceDescriptor
	agg     *aggregator.Aggregator
	writer  *datastore.OutputWriter
	logger  zerolog.Logger
}

func buildApp(gCfg *config.GlobalConfig, zLogger zerolog.Logger) (*app, error) {
	httpClient, err := httpclient.NewHTTPClientBuilder(zLogger).
		WithTimeout(time.Duration(gCfg.FetcherConfig.TimeoutSecs) * time.Second).
		WithUserAgent(gCfg.FetcherConfig.UserAgent).
		WithFollowRedirects(gCfg.FetcherConfig.FollowRedirects).
		WithMaxRedirects(gCfg.FetcherConfig.MaxRedirects).
		WithMaxContentSize(gCfg.FetcherConfig.MaxContentSize).
		Build()
	if err != nil {
		return nil, err
	}

	sources := make([]fetcher.SourceDescriptor, 0, len(gCfg.SourceURLs))
	for _, url := range gCfg.SourceURLs {
		sources = append(sources, fetcher.SourceDescriptor{URL: url})
	}

	sourceFetcher := fetcher.NewSourceFetcher(httpClient, zLogger)
	ipExtractor := extractor.NewIPExtractor(zLogger)
	agg := aggregator.NewAggregator(
		aggregator.AggregatorConfig{MaxWorkers: gCfg.AggregatorConfig.MaxWorkers},
		sourceFetcher,
		ipExtractor,
		zLogger,
	)
	writer := datastore.NewOutputWriter(zLogger)

	return &app{
		cfg:     gCfg,
		sources: sources,
		agg:     agg,
		writer:  writer,
		logger:  zLogger,
	}, nil
}

// runOnce executes a single refresh and maps its outcome to an exit code
func (a *app) runOnce(ctx context.Context) int {
	addressSet, summary := a.agg.Run(ctx, a.sources)
	addresses := addressSet.Finalize()

	if len(addresses) == 0 {
		a.logger.Error().
			Int("failed_sources", summary.Failed).
			Int("total_sources", summary.TotalSources).
			Msg("No valid addresses found across all sources")
		fmt.Fprintln(os.Stderr, "No addresses found; output file left untouched.")
		return exitNoAddresses
	}

	if err := a.writer.WriteAddresses(a.cfg.StorageConfig.OutputFile, addresses); err != nil {
		a.logger.Error().Err(err).Str("output_file", a.cfg.StorageConfig.OutputFile).Msg("Failed to persist address list")
		return exitFatal
	}

	fmt.Printf("Saved %d addresses to %s (%d/%d sources succeeded, %s elapsed)\n",
		len(addresses), a.cfg.StorageConfig.OutputFile, summary.Succeeded, summary.TotalSources, summary.Elapsed.Round(time.Millisecond))
	return exitOK
}

// runAutomated re-runs the refresh on the configured interval until the
// context is cancelled. Per-cycle failures are logged but never stop the loop.
func (a *app) runAutomated(ctx context.Context) int {
	interval := time.Duration(a.cfg.SchedulerConfig.RefreshIntervalMinutes) * time.Minute
	a.logger.Info().Dur("interval", interval).Msg("Automated mode started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.refreshCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			a.logger.Info().Msg("Automated mode stopped")
			return exitOK
		case <-ticker.C:
			a.refreshCycle(ctx)
		}
	}
}

func (a *app) refreshCycle(ctx context.Context) {
	addressSet, summary := a.agg.Run(ctx, a.sources)
	addresses := addressSet.Finalize()

	if len(addresses) == 0 {
		a.logger.Warn().
			Int("failed_sources", summary.Failed).
			Msg("Refresh cycle produced no addresses, keeping previous artifact")
		return
	}

	err := a.writer.WriteAddresses(a.cfg.StorageConfig.OutputFile, addresses)
	if err != nil && !errors.Is(err, datastore.ErrEmptyResult) {
		a.logger.Error().Err(err).Msg("Failed to persist address list in automated cycle")
	}
}
