package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cyphera/circle-w3s/circleerr"
)

type payload struct {
	X int `json:"x"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc, options ...ClientOption) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	options = append([]ClientOption{WithLogger(zap.NewNop())}, options...)
	client, err := NewHTTPClient(server.URL+"/v1/w3s", options...)
	require.NoError(t, err)
	return client
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestExecuteUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, respond(http.StatusOK, `{"data":{"x":1}}`))

	got, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)
	require.NoError(t, err)
	assert.Equal(t, payload{X: 1}, got)
}

func TestExecuteMapsErrors(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    *int
	}{
		{
			name:        "structured error",
			status:      http.StatusBadRequest,
			body:        `{"code":4001,"message":"bad request"}`,
			wantMessage: "bad request",
			wantCode:    intPtr(4001),
		},
		{
			name:        "structured error with null code",
			status:      http.StatusNotFound,
			body:        `{"code":null,"message":"not found"}`,
			wantMessage: "not found",
		},
		{
			name:        "non-JSON body becomes the message",
			status:      http.StatusBadGateway,
			body:        "<html>upstream down</html>",
			wantMessage: "<html>upstream down</html>",
		},
		{
			name:        "empty body falls back to status text",
			status:      http.StatusServiceUnavailable,
			body:        "",
			wantMessage: "Service Unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, respond(tc.status, tc.body))

			_, err := Execute[payload](context.Background(), client, http.MethodPost, "thing", map[string]string{"a": "b"})

			var apiErr *circleerr.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Equal(t, tc.wantCode, apiErr.Code)
		})
	}
}

func TestExecuteEmptyBody(t *testing.T) {
	t.Run("unit payload accepts empty body", func(t *testing.T) {
		client := newTestClient(t, respond(http.StatusOK, ""))
		_, err := Execute[Empty](context.Background(), client, http.MethodPost, "drips", nil)
		assert.NoError(t, err)
	})

	t.Run("no content status", func(t *testing.T) {
		client := newTestClient(t, respond(http.StatusNoContent, ""))
		_, err := Execute[Empty](context.Background(), client, http.MethodDelete, "subscriptions/1", nil)
		assert.NoError(t, err)
	})

	t.Run("typed payload rejects empty body", func(t *testing.T) {
		client := newTestClient(t, respond(http.StatusOK, ""))
		_, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)

		var decodeErr *circleerr.DecodeResponseError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
	})

	t.Run("unit payload still rejects malformed body", func(t *testing.T) {
		client := newTestClient(t, respond(http.StatusOK, "{not json"))
		_, err := Execute[Empty](context.Background(), client, http.MethodPost, "drips", nil)

		var decodeErr *circleerr.DecodeResponseError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, "{not json", decodeErr.Body)
	})

	t.Run("unit payload accepts an envelope", func(t *testing.T) {
		client := newTestClient(t, respond(http.StatusOK, `{"data":{}}`))
		_, err := Execute[Empty](context.Background(), client, http.MethodPost, "drips", nil)
		assert.NoError(t, err)
	})
}

func TestExecuteShapeMismatch(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "wrong field type", body: `{"data":{"x":"one"}}`},
		{name: "unwrapped object", body: `{"x":1}`},
		{name: "empty object", body: `{}`},
		{name: "array body", body: `[{"x":1}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, respond(http.StatusOK, tc.body))
			got, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)

			var decodeErr *circleerr.DecodeResponseError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tc.body, decodeErr.Body)
			assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
			assert.Zero(t, got)
		})
	}
}

func TestExecuteWithQueryMergesExistingQuery(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `{"data":{"x":1}}`)
	})

	_, err := ExecuteWithQuery[payload](context.Background(), client, "wallets?blockchain=ETH", map[string]string{"pageSize": "5"})
	require.NoError(t, err)
	assert.Equal(t, "blockchain=ETH&pageSize=5", rawQuery)

	_, err = ExecuteWithQuery[payload](context.Background(), client, "wallets", map[string]string{"pageSize": "5"})
	require.NoError(t, err)
	assert.Equal(t, "pageSize=5", rawQuery)
}

func TestExecutePlain(t *testing.T) {
	client := newTestClient(t, respond(http.StatusOK, `{"message":"pong"}`))

	got, err := ExecutePlain[map[string]string](context.Background(), client, http.MethodGet, "ping", nil)
	require.NoError(t, err)
	assert.Equal(t, "pong", got["message"])

	failing := newTestClient(t, respond(http.StatusInternalServerError, `{"code":1,"message":"boom"}`))
	_, err = ExecutePlain[map[string]string](context.Background(), failing, http.MethodGet, "ping", nil)
	assert.Equal(t, 500, circleerr.StatusCode(err))
}

func TestRequestHeaders(t *testing.T) {
	var seen http.Header
	var seenBody string
	handler := func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		b, _ := io.ReadAll(r.Body)
		seenBody = string(b)
		_, _ = io.WriteString(w, `{"data":{"x":2}}`)
	}

	t.Run("with api key", func(t *testing.T) {
		client := newTestClient(t, handler, WithAPIKey("TEST_API_KEY:abc:def"), WithUserAgent("circle-w3s-test"))
		_, err := Execute[payload](context.Background(), client, http.MethodPost, "thing", map[string]int{"n": 1})
		require.NoError(t, err)

		assert.Equal(t, "Bearer TEST_API_KEY:abc:def", seen.Get("Authorization"))
		assert.Equal(t, "application/json", seen.Get("Content-Type"))
		assert.Equal(t, "circle-w3s-test", seen.Get("User-Agent"))
		assert.JSONEq(t, `{"n":1}`, seenBody)
	})

	t.Run("without api key", func(t *testing.T) {
		client := newTestClient(t, handler)
		_, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)
		require.NoError(t, err)

		assert.Empty(t, seen.Get("Authorization"))
		assert.Empty(t, seenBody)
	})

	t.Run("request option header", func(t *testing.T) {
		client := newTestClient(t, handler)
		_, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil, WithHeader("X-Request-Id", "abc"), WithQueryParam("a", "1"))
		require.NoError(t, err)
		assert.Equal(t, "abc", seen.Get("X-Request-Id"))
	})
}

func TestResolveURL(t *testing.T) {
	client, err := NewHTTPClient("https://api.circle.com/v1/w3s/", WithLogger(zap.NewNop()))
	require.NoError(t, err)

	testCases := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "relative", path: "wallets", want: "https://api.circle.com/v1/w3s/wallets"},
		{name: "leading slash", path: "/wallets/abc/balances", want: "https://api.circle.com/v1/w3s/wallets/abc/balances"},
		{name: "query kept", path: "wallets?blockchain=ETH-SEPOLIA", want: "https://api.circle.com/v1/w3s/wallets?blockchain=ETH-SEPOLIA"},
		{name: "inner dot segments", path: "a/../wallets", want: "https://api.circle.com/v1/w3s/wallets"},
		{name: "empty path", path: "", want: "https://api.circle.com/v1/w3s"},
		{name: "absolute url", path: "https://evil.example/steal", wantErr: true},
		{name: "scheme relative", path: "//evil.example/steal", wantErr: true},
		{name: "climbs above base", path: "../../config", wantErr: true},
		{name: "climbs after descending", path: "wallets/../../x", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := client.ResolveURL(tc.path)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrPathEscapesBase)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestNewHTTPClientRejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"", "api.circle.com", "ftp://api.circle.com", "https://", "https://api.circle.com?x=1"} {
		_, err := NewHTTPClient(raw)
		var cfgErr *circleerr.ConfigError
		assert.ErrorAs(t, err, &cfgErr, raw)
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(respond(http.StatusOK, `{"data":{}}`))
	baseURL := server.URL
	server.Close()

	client, err := NewHTTPClient(baseURL, WithLogger(zap.NewNop()))
	require.NoError(t, err)

	_, err = Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)
	var transportErr *circleerr.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.True(t, circleerr.IsRetryable(err))
}

func TestCancelledContext(t *testing.T) {
	client := newTestClient(t, respond(http.StatusOK, `{"data":{"x":1}}`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute[payload](ctx, client, http.MethodGet, "thing", nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestConcurrentExecute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `{"data":{"x":%s}}`, r.URL.Query().Get("n"))
	})

	const n = 32
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := ExecuteWithQuery[payload](context.Background(), client, "thing", map[string]string{"n": fmt.Sprint(i)})
			if err != nil {
				errs <- err
				return
			}
			if got.X != i {
				errs <- fmt.Errorf("request %d got %d", i, got.X)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestPrometheusMetricsCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewPrometheusMetricsCollector(reg, "circle")
	require.NoError(t, err)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/w3s/missing" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"code":404,"message":"nope"}`)
			return
		}
		_, _ = io.WriteString(w, `{"data":{"x":1}}`)
	}, WithMetricsCollector(collector))

	_, err = Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)
	require.NoError(t, err)
	_, err = Execute[payload](context.Background(), client, http.MethodGet, "missing", nil)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requests.WithLabelValues("GET", "/v1/w3s/thing", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requests.WithLabelValues("GET", "/v1/w3s/missing", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.errors.WithLabelValues("GET", "/v1/w3s/missing")))

	_, err = NewPrometheusMetricsCollector(reg, "circle")
	assert.Error(t, err, "registering twice must fail")
}

func TestLoggingMiddlewareRedactsAuthorization(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	client := newTestClient(t, respond(http.StatusOK, `{"data":{"x":1}}`),
		WithAPIKey("super-secret"),
		WithLogger(log),
		WithMiddleware(LoggingMiddleware(log)),
	)

	_, err := Execute[payload](context.Background(), client, http.MethodGet, "thing", nil)
	require.NoError(t, err)

	started := logs.FilterMessage("HTTP request started").All()
	require.Len(t, started, 1)
	headers, ok := started[0].ContextMap()["headers"].(http.Header)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers.Get("Authorization"))

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			assert.NotContains(t, fmt.Sprint(v), "super-secret")
		}
	}
	assert.Equal(t, 1, logs.FilterMessage("HTTP request successful").Len())
}

func intPtr(v int) *int { return &v }

func TestWithHTTPClientLeavesCallerClientUntouched(t *testing.T) {
	shared := &http.Client{}
	passthrough := func(next http.RoundTripper) http.RoundTripper { return next }

	client, err := NewHTTPClient("https://api.circle.com",
		WithTimeout(time.Second),
		WithHTTPClient(shared),
		WithMiddleware(passthrough),
	)
	require.NoError(t, err)

	assert.Zero(t, shared.Timeout)
	assert.Nil(t, shared.Transport)
	assert.NotSame(t, shared, client.httpClient)
	assert.Equal(t, time.Second, client.httpClient.Timeout)
	assert.NotNil(t, client.httpClient.Transport)
}
