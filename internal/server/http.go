// Package server is the HTTP front end: it normalizes inbound requests for
// the router and serializes dispatch results back onto the wire.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"accounts-service/internal/router"
)

// maxBodyBytes caps how much of a request body is read before JSON parsing.
const maxBodyBytes = 1 << 20

// HTTPHandler adapts net/http requests to the router's normalized request
// record. One handler serves every route; the router does the path lookup.
type HTTPHandler struct {
	router *router.Router
}

// NewHTTPHandler returns an HTTP handler dispatching through r.
func NewHTTPHandler(r *router.Router) *HTTPHandler {
	return &HTTPHandler{router: r}
}

func (h *HTTPHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := router.WithRequestID(r.Context(), uuid.NewString())

	status, body := h.router.Dispatch(ctx, normalize(r))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// normalize builds the router's request record: lowercase method, first value
// per query parameter and header with lowercase header names, and the body
// parsed as a JSON object. A missing or malformed body yields an empty
// payload rather than an error; handlers report the missing fields instead.
func normalize(r *http.Request) *router.Request {
	query := make(map[string]string)
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			query[k] = vs[0]
		}
	}

	headers := make(map[string]string)
	for k, vs := range r.Header {
		if len(vs) > 0 {
			headers[strings.ToLower(k)] = vs[0]
		}
	}

	payload := make(map[string]any)
	if b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes)); err == nil && len(b) > 0 {
		var parsed map[string]any
		if err := json.Unmarshal(b, &parsed); err == nil && parsed != nil {
			payload = parsed
		}
	}

	return &router.Request{
		Path:    r.URL.Path,
		Method:  strings.ToLower(r.Method),
		Query:   query,
		Headers: headers,
		Payload: payload,
	}
}
