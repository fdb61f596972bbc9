package server

import (
	"accounts-service/internal/logging"
	"accounts-service/internal/router"
	tokenhandler "accounts-service/internal/token/handler"
	userhandler "accounts-service/internal/user/handler"
)

// Deps holds the wired resource handlers.
type Deps struct {
	Users  *userhandler.Handler
	Tokens *tokenhandler.Handler
}

// NewRouter builds the fixed route table.
//
// Path → handler mapping:
//   - ping   → health check (200, empty body)
//   - users  → internal/user/handler
//   - tokens → internal/token/handler
//
// Anything else falls through to the router's NotFound.
func NewRouter(log logging.Logger, deps Deps) *router.Router {
	r := router.New(log)
	r.Handle("ping", router.Ping)
	r.Handle("users", deps.Users.Handle)
	r.Handle("tokens", deps.Tokens.Handle)
	return r
}
