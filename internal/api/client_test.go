package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "wm_testtoken")
	return srv, client
}

func TestClientSendsAuthAndUserAgent(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer wm_testtoken", r.Header.Get("Authorization"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("Api-User-Agent"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{}`))
	})

	_, err := client.get(context.Background(), "/ping")
	require.NoError(t, err)
}

func TestClientOmitsAuthWithoutToken(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})
	client.SetToken("")

	_, err := client.get(context.Background(), "/ping")
	require.NoError(t, err)
}

func TestClientKeepsTokenScheme(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer already-prefixed", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	})
	client.SetToken("Bearer already-prefixed")

	_, err := client.get(context.Background(), "/ping")
	require.NoError(t, err)
}

func TestClientCustomUserAgent(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom/2.0", r.Header.Get("Api-User-Agent"))
		w.Write([]byte(`{}`))
	})
	client.SetUserAgent("  ")
	client.SetUserAgent("custom/2.0")

	_, err := client.WithTimeout(time.Second).get(context.Background(), "/ping")
	require.NoError(t, err)
}

func TestClientProblemJSONError(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"https://mediawiki.org/wiki/HyperSwitch/errors/unauthorized","title":"Unauthorized","detail":"Invalid access token"}`))
	})

	_, err := client.get(context.Background(), "/ping")
	require.Error(t, err)
	assert.Equal(t, "Unauthorized: Invalid access token", err.Error())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}

func TestClientGatewayReasonError(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"httpCode":429,"httpReason":"Too Many Requests"}`))
	})

	_, err := client.get(context.Background(), "/ping")
	require.Error(t, err)
	assert.Equal(t, "Too Many Requests", err.Error())
}

func TestClientPlainTextErrorFallsBackToStatus(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down\n"))
	})

	_, err := client.get(context.Background(), "/ping")
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: upstream down", err.Error())
}

func TestClientHonorsContextCancel(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.get(ctx, "/ping")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientConcurrentRequests(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"selected":[]}`))
	})

	const workers = 20
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			_, err := client.OnThisDay(context.Background(), FeedQuery{Month: 1, Day: day})
			errCh <- err
		}(i + 1)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}
}

func TestFormatAPIError(t *testing.T) {
	msg, ok := formatAPIError("Not found.", "Not found.")
	assert.True(t, ok)
	assert.Equal(t, "Not found.", msg)

	_, ok = formatAPIError(" ", "")
	assert.False(t, ok)

	msg, ok = parseErrorValue(map[string]any{"message": "nested"})
	assert.True(t, ok)
	assert.Equal(t, "nested", msg)
}
