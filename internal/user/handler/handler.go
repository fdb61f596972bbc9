// Package handler exposes the users resource over the normalized request
// router. It validates input, gates protected operations on token
// verification, and maps repository outcomes to status codes.
package handler

import (
	"context"
	"strings"

	"accounts-service/internal/router"
	"accounts-service/internal/security"
	"accounts-service/internal/user/repository"
)

// TokenVerifier reports whether a token id is currently valid for a phone.
type TokenVerifier interface {
	Verify(ctx context.Context, id, phone string) bool
}

// Handler serves the users resource.
type Handler struct {
	repo   repository.Repository
	tokens TokenVerifier
	hasher *security.Hasher
}

// New returns a users handler over the given repository, token verifier, and
// password hasher.
func New(repo repository.Repository, tokens TokenVerifier, hasher *security.Hasher) *Handler {
	return &Handler{repo: repo, tokens: tokens, hasher: hasher}
}

// Handle dispatches by method; anything outside post|get|put|delete is a 405.
func (h *Handler) Handle(ctx context.Context, req *router.Request) router.Response {
	switch req.Method {
	case "post":
		return h.create(ctx, req)
	case "get":
		return h.get(ctx, req)
	case "put":
		return h.update(ctx, req)
	case "delete":
		return h.delete(ctx, req)
	default:
		return router.Response{Status: 405}
	}
}

func (h *Handler) create(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseCreate(req.Payload)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required fields: " + strings.Join(violations, "; "))}
	}

	// An unreadable record is treated as absent here; a real store fault
	// surfaces on the create below. Two concurrent creates for the same
	// phone can both pass this check; the store's create resolves the race.
	existing, _ := h.repo.GetByPhone(ctx, in.phone)
	if existing != nil {
		return router.Response{Status: 400, Payload: router.ErrorBody("a user with that phone number already exists")}
	}

	digest, err := h.hasher.Hash(in.password)
	if err != nil {
		return router.Response{Status: 500, Payload: router.ErrorBody("could not hash the user's password")}
	}

	u := in.user(digest)
	if err := h.repo.Create(ctx, u); err != nil {
		return router.Response{Status: 500, Payload: router.ErrorBody("could not create the new user")}
	}
	return router.Response{Status: 200}
}

func (h *Handler) get(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseGet(req.Query)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required field: " + strings.Join(violations, "; "))}
	}

	if !h.tokens.Verify(ctx, req.Headers["token"], in.phone) {
		return router.Response{Status: 403, Payload: router.ErrorBody("missing required token in header, or token is invalid")}
	}

	u, err := h.repo.GetByPhone(ctx, in.phone)
	if err != nil || u == nil {
		return router.Response{Status: 404}
	}
	return router.Response{Status: 200, Payload: u.Redacted()}
}

func (h *Handler) update(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseUpdate(req.Payload)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required fields: " + strings.Join(violations, "; "))}
	}

	if !h.tokens.Verify(ctx, req.Headers["token"], in.phone) {
		return router.Response{Status: 403, Payload: router.ErrorBody("missing required token in header, or token is invalid")}
	}

	u, err := h.repo.GetByPhone(ctx, in.phone)
	if err != nil || u == nil {
		return router.Response{Status: 400, Payload: router.ErrorBody("the specified user does not exist")}
	}

	if in.firstName != "" {
		u.FirstName = in.firstName
	}
	if in.lastName != "" {
		u.LastName = in.lastName
	}
	if in.password != "" {
		digest, err := h.hasher.Hash(in.password)
		if err != nil {
			return router.Response{Status: 500, Payload: router.ErrorBody("could not hash the user's password")}
		}
		u.HashedPassword = digest
	}

	if err := h.repo.Update(ctx, u); err != nil {
		return router.Response{Status: 500, Payload: router.ErrorBody("could not update the user")}
	}
	return router.Response{Status: 200}
}

// TODO: delete the user's outstanding tokens along with the record.
func (h *Handler) delete(ctx context.Context, req *router.Request) router.Response {
	in, violations := parseDelete(req.Payload)
	if len(violations) > 0 {
		return router.Response{Status: 400, Payload: router.ErrorBody("missing required field: " + strings.Join(violations, "; "))}
	}

	if !h.tokens.Verify(ctx, req.Headers["token"], in.phone) {
		return router.Response{Status: 403, Payload: router.ErrorBody("missing required token in header, or token is invalid")}
	}

	u, err := h.repo.GetByPhone(ctx, in.phone)
	if err != nil || u == nil {
		return router.Response{Status: 400, Payload: router.ErrorBody("could not find the specified user")}
	}

	if err := h.repo.Delete(ctx, in.phone); err != nil {
		return router.Response{Status: 500, Payload: router.ErrorBody("could not delete the specified user")}
	}
	return router.Response{Status: 200}
}
