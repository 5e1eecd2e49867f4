package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/budget-server/internal/logging"
)

// newTestRouter mounts the gateway under the same route shape production
// uses, so chi URL params resolve.
func newTestRouter(services map[string]string) http.Handler {
	logger := logging.SetupLogging()
	gw := NewGateway(services, logger)

	router := chi.NewRouter()
	router.Handle("/api/{service}/*", logging.LoggingWrapper("Gateway", logger, gw.Handler))
	return router
}

func TestGateway_ForwardsRequestAndPropagatesResponse(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Downstream", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer downstream.Close()

	router := newTestRouter(map[string]string{"transaction": downstream.URL})

	req := httptest.NewRequest(http.MethodPost, "/api/transaction/transactions?month=6", strings.NewReader(`{"amount":5}`))
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal", "should-not-forward")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Downstream saw the method, stripped path, query and allowed headers.
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/transactions", got.URL.Path)
	assert.Equal(t, "month=6", got.URL.RawQuery)
	assert.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Empty(t, got.Header.Get("X-Internal"))
	assert.Equal(t, `{"amount":5}`, string(gotBody))

	// Caller saw the downstream status, headers and body unchanged.
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "yes", w.Header().Get("X-Downstream"))
	assert.Equal(t, `{"id":"abc"}`, w.Body.String())
}

func TestGateway_BodyOnlyForPostAndPut(t *testing.T) {
	var gotBody []byte
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer downstream.Close()

	router := newTestRouter(map[string]string{"transaction": downstream.URL})

	req := httptest.NewRequest(http.MethodDelete, "/api/transaction/transactions/abc", strings.NewReader("ignored"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, gotBody)
}

func TestGateway_UnknownService(t *testing.T) {
	requests := 0
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer downstream.Close()

	router := newTestRouter(map[string]string{"transaction": downstream.URL})

	req := httptest.NewRequest(http.MethodGet, "/api/billing/invoices", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Unknown service", body["error"])

	// Fails fast with no downstream call.
	assert.Equal(t, 0, requests)
}

func TestGateway_DownstreamUnavailable(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downstream.Close()

	router := newTestRouter(map[string]string{"user": downstream.URL})

	req := httptest.NewRequest(http.MethodGet, "/api/user/users/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGateway_PropagatesErrorStatus(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"title":"Unauthorized"}`))
	}))
	defer downstream.Close()

	router := newTestRouter(map[string]string{"user": downstream.URL})

	req := httptest.NewRequest(http.MethodGet, "/api/user/users/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}
