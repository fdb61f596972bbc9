// Package router dispatches normalized requests to resource handlers by
// trimmed path and serializes their responses. It is transport-agnostic: the
// HTTP front end in internal/server builds the Request and writes the result.
package router

import (
	"context"
	"encoding/json"
	"strings"

	"accounts-service/internal/logging"
)

// Request is the normalized request record handed to handlers.
type Request struct {
	// Path is the raw request path; leading and trailing slashes are
	// stripped before route lookup.
	Path string
	// Method is the lowercase HTTP method (get, post, put, delete, ...).
	Method string
	// Query holds query parameters, first value per key.
	Query map[string]string
	// Headers holds request headers, lowercase names, first value per key.
	Headers map[string]string
	// Payload is the parsed JSON body, or an empty map when the body was
	// absent or malformed.
	Payload map[string]any
}

// Response is a handler's result. A zero Status defaults to 200 and a nil
// Payload defaults to an empty object at dispatch time.
type Response struct {
	Status  int
	Payload any
}

// Handler processes a normalized request and returns a response.
type Handler func(ctx context.Context, req *Request) Response

// ErrorBody builds the `{"Error": msg}` payload carried by failure responses.
func ErrorBody(msg string) map[string]any {
	return map[string]any{"Error": msg}
}

// Ping is the health-check handler: 200 with an empty body.
func Ping(ctx context.Context, req *Request) Response {
	return Response{Status: 200}
}

// NotFound handles unmatched paths: 404 with an empty body.
func NotFound(ctx context.Context, req *Request) Response {
	return Response{Status: 404}
}

// Router maps trimmed paths to handlers. Lookup is exact and case-sensitive;
// unmatched paths fall through to NotFound.
type Router struct {
	routes map[string]Handler
	log    logging.Logger
}

// New returns an empty Router that logs completed requests to log.
func New(log logging.Logger) *Router {
	return &Router{
		routes: make(map[string]Handler),
		log:    log,
	}
}

// Handle registers h under the given trimmed path name.
func (r *Router) Handle(name string, h Handler) {
	r.routes[name] = h
}

// Dispatch selects a handler for req, applies response defaults, and returns
// the status code with the JSON-serialized body. Every completed request is
// logged regardless of outcome.
func (r *Router) Dispatch(ctx context.Context, req *Request) (int, []byte) {
	trimmed := strings.Trim(req.Path, "/")

	h, ok := r.routes[trimmed]
	if !ok {
		h = NotFound
	}

	resp := h(ctx, req)
	if resp.Status == 0 {
		resp.Status = 200
	}
	if resp.Payload == nil {
		resp.Payload = map[string]any{}
	}

	body, err := json.Marshal(resp.Payload)
	if err != nil {
		// Handler payloads are maps and domain structs; this only fires on
		// a programming error.
		resp.Status = 500
		body = []byte(`{}`)
	}

	id, _ := GetRequestID(ctx)
	r.log.Info(ctx, "request completed",
		"request_id", id,
		"path", trimmed,
		"method", req.Method,
		"status", resp.Status,
	)

	return resp.Status, body
}
