package fetcher

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/aleister1102/ipfresh/internal/common"
	"github.com/aleister1102/ipfresh/internal/httpclient"
	"github.com/rs/zerolog"
)

// SourceFetcher retrieves the body of a single source page. All failure modes
// are represented in the returned FetchResult; Fetch never panics and never
// returns a partial body on error.
type SourceFetcher struct {
	client *httpclient.HTTPClient
	logger zerolog.Logger
}

// NewSourceFetcher creates a new SourceFetcher
func NewSourceFetcher(client *httpclient.HTTPClient, logger zerolog.Logger) *SourceFetcher {
	return &SourceFetcher{
		client: client,
		logger: logger.With().Str("component", "SourceFetcher").Logger(),
	}
}

// Fetch issues a single GET to the source URL. The request is bounded by the
// client's configured timeout; retries are deliberately not performed here.
func (sf *SourceFetcher) Fetch(ctx context.Context, src SourceDescriptor) FetchResult {
	sf.logger.Debug().Str("url", src.URL).Msg("Fetching source")

	resp, err := sf.client.Do(&httpclient.HTTPRequest{
		URL:     src.URL,
		Method:  http.MethodGet,
		Context: ctx,
	})
	if err != nil {
		reason := classifyFetchError(err)
		sf.logger.Warn().Err(err).Str("url", src.URL).Str("reason", reason.String()).Msg("Fetch failed")
		return FetchResult{
			Source:  src,
			Success: false,
			Reason:  reason,
			Err:     err,
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err := common.NewHTTPErrorWithURL(resp.StatusCode, http.StatusText(resp.StatusCode), src.URL)
		sf.logger.Warn().Int("status_code", resp.StatusCode).Str("url", src.URL).Msg("Received error HTTP status")
		return FetchResult{
			Source:     src,
			Success:    false,
			Reason:     FailureHTTPStatus,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	body := strings.ToValidUTF8(string(resp.Body), "�")

	sf.logger.Debug().
		Str("url", src.URL).
		Int("status_code", resp.StatusCode).
		Int("body_size", len(body)).
		Msg("Source fetched successfully")

	return FetchResult{
		Source:     src,
		Success:    true,
		Body:       body,
		StatusCode: resp.StatusCode,
	}
}

// classifyFetchError maps a transport-level error onto the failure taxonomy.
// Timeouts are checked before generic network failures because a deadline
// error is usually also an *url.Error wrapping a net.Error.
func classifyFetchError(err error) FailureReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	// Cancellation is an interrupted run, not a slow source.
	if errors.Is(err, context.Canceled) {
		return FailureOther
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConnection
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureConnection
	}

	return FailureOther
}
