// =================================
// File: internal/market/client_test.go
// =================================
package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/niveshak-app/niveshak/internal/config"
	"github.com/niveshak-app/niveshak/internal/series"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		APIBaseURL:       srv.URL,
		Currency:         "INR",
		RequestTimeoutMS: 2000,
		Retries:          2,
	}
	return NewClient(cfg, zap.NewNop()), srv
}

func TestLoginStoresToken(t *testing.T) {
	var sawAuth atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/otp/verify", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(loginResponse{
			Token:   "session-token",
			Account: Account{ID: "acct-1", Name: "Test User"},
		})
	})
	mux.HandleFunc("/portfolio/summary", func(w http.ResponseWriter, r *http.Request) {
		sawAuth.Store(r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(Summary{Invested: 1000, Current: 1100, Returns: 100})
	})

	client, _ := newTestClient(t, mux)

	account, err := client.Login(context.Background(), "9999999999", "123456")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", account.ID)

	_, err = client.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", sawAuth.Load())
}

func TestFetchOverview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio/summary", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Summary{Invested: 50000, Current: 61000, Returns: 11000, Currency: "INR"})
	})
	mux.HandleFunc("/portfolio/holdings", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(holdingsResponse{Holdings: []Holding{
			{SchemeID: "sch-1", SchemeName: "Bluechip Fund", Units: 120.5, NAV: 82.1, Value: 9893.05},
		}})
	})

	client, _ := newTestClient(t, mux)

	ov, err := client.FetchOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 61000.0, ov.Summary.Current)
	require.Len(t, ov.Holdings, 1)
	assert.Equal(t, "Bluechip Fund", ov.Holdings[0].SchemeName)
}

func TestNavHistoryReturnsRawPoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/schemes/sch-1/nav", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(navHistoryResponse{Data: []series.RawPoint{
			{Time: "15-03-2024", Value: "100"},
			{Time: "15-01-2024", Value: "90"},
		}})
	})

	client, _ := newTestClient(t, mux)

	points, err := client.NavHistory(context.Background(), "sch-1")
	require.NoError(t, err)

	// The client hands the series over untouched; windowing is the series
	// package's job.
	assert.Equal(t, []series.RawPoint{
		{Time: "15-03-2024", Value: "100"},
		{Time: "15-01-2024", Value: "90"},
	}, points)
}

func TestClientErrorIsPermanent(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio/summary", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Summary(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/portfolio/summary", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(Summary{Invested: 1, Current: 2, Returns: 1})
	})

	client, _ := newTestClient(t, mux)

	sum, err := client.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2.0, sum.Current)
	assert.Equal(t, int32(3), calls.Load())
}
