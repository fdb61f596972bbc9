// Package handler exposes the tokens resource over the normalized request
// router: issuing on a correct phone+password pair, reading, extending, and
// deleting tokens.
package handler

import (
	"context"
	"errors"
	"strings"

	"accounts-service/internal/router"
	"accounts-service/internal/token/domain"
	"accounts-service/internal/token/repository"
	"accounts-service/internal/token/service"
)

// TokenService covers the service operations this handler delegates to.
type TokenService interface {
	Issue(ctx context.Context, phone, password string) (*domain.Token, error)
	Renew(ctx context.Context, id string) error
}

// Handler serves the tokens resource.
type Handler struct {
	svc  TokenService
	repo repository.Repository
}

// New returns a tokens handler over the given service and repository.
func New(svc TokenService, repo repository.Repository) *Handler {
	return &Handler{svc: svc, repo: repo}
}

// Handle dispatches by method; anything outside post|get|put|delete is a 405.
func (h *Handler) Handle(ctx context.Context, req *router.Request) router.Response {
	switch req.Method {
	case "post":
		return h.issue(ctx, req)
	case "get":
		return h.get(ctx, req)
	case "put":
		return h.extend(ctx, req)
	case "delete":
		return h.delete(ctx, req)
	default:
		return router.Response{Status: 405}
	}
}

func (h *Handler) issue(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseIssue(req.Payload)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required fields: " + strings.Join(violations, "; "))}
	}

	t, err := h.svc.Issue(ctx, in.phone, in.password)
	switch {
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrInvalidCredentials):
		// One generic message for both, to not reveal which part failed.
		return router.Response{Status: 400, Payload: router.ErrorBody("could not authenticate with the supplied phone and password")}
	case err != nil:
		return router.Response{Status: 500, Payload: router.ErrorBody("could not create the new token")}
	}
	return router.Response{Status: 200, Payload: t}
}

func (h *Handler) get(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseGet(req.Query)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required field: " + strings.Join(violations, "; "))}
	}

	t, err := h.repo.GetByID(ctx, in.id)
	if err != nil || t == nil {
		return router.Response{Status: 404}
	}
	return router.Response{Status: 200, Payload: t}
}

func (h *Handler) extend(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseExtend(req.Payload)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required fields: " + strings.Join(violations, "; "))}
	}

	err := h.svc.Renew(ctx, in.id)
	switch {
	case errors.Is(err, service.ErrTokenNotFound):
		return router.Response{Status: 400, Payload: router.ErrorBody("the specified token does not exist")}
	case errors.Is(err, service.ErrTokenExpired):
		return router.Response{Status: 400, Payload: router.ErrorBody("the token has already expired and cannot be extended")}
	case err != nil:
		// Store failures on extension report 400, unlike the 500 the other
		// write paths use. Longstanding wire behavior, kept as is.
		return router.Response{Status: 400, Payload: router.ErrorBody("could not update the token's expiration")}
	}
	return router.Response{Status: 200}
}

func (h *Handler) delete(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseDelete(req.Payload)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required field: " + strings.Join(violations, "; "))}
	}

	t, err := h.repo.GetByID(ctx, in.id)
	if err != nil || t == nil {
		return router.Response{Status: 400, Payload: router.ErrorBody("could not find the specified token")}
	}

	if err := h.repo.Delete(ctx, in.id); err != nil {
		return router.Response{Status: 500, Payload: router.ErrorBody("could not delete the specified token")}
	}
	return router.Response{Status: 200}
}
