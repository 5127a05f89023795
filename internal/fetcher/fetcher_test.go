package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aleister1102/ipfresh/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, timeout time.Duration) *SourceFetcher {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(timeout).
		WithUserAgent("ipfresh-test").
		Build()
	require.NoError(t, err)
	return NewSourceFetcher(client, zerolog.Nop())
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ipfresh-test", r.Header.Get("User-Agent"))
		w.Write([]byte("body with 1.1.1.1"))
	}))
	t.Cleanup(server.Close)

	result := newTestFetcher(t, 2*time.Second).Fetch(context.Background(), SourceDescriptor{URL: server.URL})

	assert.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "body with 1.1.1.1", result.Body)
	assert.NoError(t, result.Err)
}

func TestFetch_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	result := newTestFetcher(t, 2*time.Second).Fetch(context.Background(), SourceDescriptor{URL: server.URL})

	assert.False(t, result.Success)
	assert.Equal(t, FailureHTTPStatus, result.Reason)
	assert.Equal(t, http.StatusForbidden, result.StatusCode)
	assert.Error(t, result.Err)
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	t.Cleanup(server.Close)

	result := newTestFetcher(t, 100*time.Millisecond).Fetch(context.Background(), SourceDescriptor{URL: server.URL})

	assert.False(t, result.Success)
	assert.Equal(t, FailureTimeout, result.Reason)
}

func TestFetch_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newTestFetcher(t, 2*time.Second).Fetch(ctx, SourceDescriptor{URL: server.URL})

	assert.False(t, result.Success)
	assert.Equal(t, FailureOther, result.Reason)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	result := newTestFetcher(t, time.Second).Fetch(context.Background(), SourceDescriptor{URL: url})

	assert.False(t, result.Success)
	assert.Equal(t, FailureConnection, result.Reason)
}

func TestFetch_InvalidUTF8Replaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{'i', 'p', ' ', 0xff, 0xfe, ' ', '1', '.', '1', '.', '1', '.', '1'})
	}))
	t.Cleanup(server.Close)

	result := newTestFetcher(t, time.Second).Fetch(context.Background(), SourceDescriptor{URL: server.URL})

	assert.True(t, result.Success)
	assert.True(t, strings.Contains(result.Body, "1.1.1.1"))
	assert.True(t, strings.Contains(result.Body, "�"))
}

func TestFailureReason_String(t *testing.T) {
	assert.Equal(t, "timeout", FailureTimeout.String())
	assert.Equal(t, "connection_error", FailureConnection.String())
	assert.Equal(t, "http_status", FailureHTTPStatus.String())
	assert.Equal(t, "other", FailureOther.String())
}
