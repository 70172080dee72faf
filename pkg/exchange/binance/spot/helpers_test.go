package spot

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mbx/pkg/core"
	"mbx/pkg/exchange/binance"
)

type request struct {
	Method string
	Path   string
	Query  url.Values
	Raw    string
	APIKey string
}

type fakeExchange struct {
	server   *httptest.Server
	calls    atomic.Int32
	mu       sync.Mutex
	requests []request
	status   int
	body     string
}

func newFakeExchange(t *testing.T, status int, body string) *fakeExchange {
	t.Helper()
	f := &fakeExchange{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mu.Lock()
		f.requests = append(f.requests, request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Raw:    r.URL.RawQuery,
			APIKey: r.Header.Get(binance.HeaderAPIKey),
		})
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeExchange) last(t *testing.T) request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request received")
	return f.requests[len(f.requests)-1]
}

func (f *fakeExchange) client(t *testing.T) *binance.Client {
	t.Helper()
	config := core.DefaultConfig().
		WithBaseURL(f.server.URL).
		WithCredentials(&core.Credentials{APIKey: "api-key", SecretKey: "secret-key"})
	c, err := binance.New(config, binance.WithClock(func() time.Time { return time.UnixMilli(1700000000000) }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func ptr[T any](v T) *T { return &v }
