package fetcher

// SourceDescriptor identifies one external page believed to publish address lists.
// Created from configuration at startup and read-only for the run's lifetime.
type SourceDescriptor struct {
	URL string
}

// FailureReason classifies why a fetch failed
type FailureReason int

const (
	FailureNone FailureReason = iota
	FailureTimeout
	FailureConnection
	FailureHTTPStatus
	FailureOther
)

// String returns string representation of FailureReason
func (r FailureReason) String() string {
	switch r {
	case FailureNone:
		return "none"
	case FailureTimeout:
		return "timeout"
	case FailureConnection:
		return "connection_error"
	case FailureHTTPStatus:
		return "http_status"
	case FailureOther:
		return "other"
	default:
		return "unknown"
	}
}

// FetchResult holds the outcome of fetching one source. Success carries the
// response body decoded as UTF-8 with invalid bytes replaced; failure carries
// the classified reason and, for HTTP-level failures, the status code.
type FetchResult struct {
	Source     SourceDescriptor
	Success    bool
	Body       string
	Reason     FailureReason
	StatusCode int
	Err        error
}
