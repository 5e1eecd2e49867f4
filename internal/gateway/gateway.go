// Package gateway implements the request-forwarding front door. It routes
// by the first path segment to a configured downstream service and relays
// the response without interpreting it.
package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-server/internal/logging"
)

// forwardedHeaders are the request headers relayed to the downstream
// service. Everything else, hop-by-hop headers included, is dropped.
var forwardedHeaders = []string{"Authorization", "Content-Type"}

// Gateway forwards requests at /api/{service}/* to the matching downstream
// base URL. The service map is static; unknown names fail fast without a
// network call.
type Gateway struct {
	services map[string]string
	client   *http.Client
	logger   *logrus.Logger
}

// NewGateway creates a new Gateway over the given service name to base URL
// map.
func NewGateway(services map[string]string, logger *logrus.Logger) *Gateway {
	return &Gateway{
		services: services,
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
	}
}

// Handler forwards one request. It preserves the method and query string,
// relays the body for POST and PUT, and copies the downstream status code
// and response headers back to the caller.
func (g *Gateway) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	service := chi.URLParam(req, "service")
	rest := chi.URLParam(req, "*")
	logData.AddData("service", service)

	base, ok := g.services[service]
	if !ok {
		writeJSONError(w, http.StatusNotFound, "Unknown service")
		return fmt.Errorf("gateway: unknown service %q", service)
	}

	target := strings.TrimRight(base, "/") + "/" + rest
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}

	var body io.Reader
	if req.Method == http.MethodPost || req.Method == http.MethodPut {
		body = req.Body
	}

	outbound, err := http.NewRequestWithContext(req.Context(), req.Method, target, body)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to build downstream request")
		return fmt.Errorf("gateway: build request: %w", err)
	}
	for _, header := range forwardedHeaders {
		if value := req.Header.Get(header); value != "" {
			outbound.Header.Set(header, value)
		}
	}

	endTimer := logData.AddTiming("downstreamMs")
	resp, err := g.client.Do(outbound)
	endTimer()
	if err != nil {
		writeJSONError(w, http.StatusBadGateway, "downstream service unavailable")
		return fmt.Errorf("gateway: forward to %v: %w", service, err)
	}
	defer resp.Body.Close()

	logData.AddData("downstreamStatus", resp.StatusCode)

	for header, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(header, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("gateway: relay response: %w", err)
	}
	return nil
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
