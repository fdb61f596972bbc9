package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accounts-service/internal/security"
	tokendomain "accounts-service/internal/token/domain"
	userdomain "accounts-service/internal/user/domain"
)

// Sentinel errors for the token service; handlers map them to status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenExpired       = errors.New("token already expired")
)

// UserRepo is the minimal user repository needed by the token service.
type UserRepo interface {
	GetByPhone(ctx context.Context, phone string) (*userdomain.User, error)
}

// TokenRepo is the minimal token repository needed by the token service.
type TokenRepo interface {
	GetByID(ctx context.Context, id string) (*tokendomain.Token, error)
	Create(ctx context.Context, t *tokendomain.Token) error
	Update(ctx context.Context, t *tokendomain.Token) error
}

// Service issues, verifies, and renews tokens. Tokens are opaque random ids
// with an absolute expiry; expiry is evaluated lazily against the wall clock,
// never by a background sweeper.
type Service struct {
	users  UserRepo
	tokens TokenRepo
	hasher *security.Hasher
	ttl    time.Duration
	nowF   func() time.Time
}

// NewService returns a Service with the given dependencies. ttl is both the
// initial token lifetime and the renewal window.
func NewService(users UserRepo, tokens TokenRepo, hasher *security.Hasher, ttl time.Duration) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		ttl:    ttl,
		nowF:   time.Now,
	}
}

// Issue authenticates phone+password and persists a fresh token expiring one
// TTL from now. Returns ErrUserNotFound when no user record is readable for
// phone, ErrInvalidCredentials on a digest mismatch.
func (s *Service) Issue(ctx context.Context, phone, password string) (*tokendomain.Token, error) {
	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil || u == nil {
		// An unreadable record is indistinguishable from a missing one
		// at this boundary; both refuse authentication.
		return nil, ErrUserNotFound
	}
	if !s.hasher.Compare(u.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}

	id, err := security.RandomString(security.TokenIDLength)
	if err != nil {
		return nil, fmt.Errorf("generate token id: %w", err)
	}
	t := &tokendomain.Token{
		ID:      id,
		Phone:   phone,
		Expires: s.nowF().Add(s.ttl).UnixMilli(),
	}
	if err := s.tokens.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return t, nil
}

// Verify reports whether token id is currently valid for phone: the token
// exists, is bound to phone, and has not expired. It never fails, only
// returns a trust boolean; callers must branch on it explicitly. This is the
// sole authorization gate for protected operations.
func (s *Service) Verify(ctx context.Context, id, phone string) bool {
	t, err := s.tokens.GetByID(ctx, id)
	if err != nil || t == nil {
		return false
	}
	if t.Phone != phone {
		return false
	}
	return !t.Expired(s.nowF())
}

// Renew extends an unexpired token by one TTL from now. Returns
// ErrTokenNotFound if absent and ErrTokenExpired if the token has already
// lapsed; an expired token can only be deleted, never renewed.
func (s *Service) Renew(ctx context.Context, id string) error {
	t, err := s.tokens.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if t == nil {
		return ErrTokenNotFound
	}
	if t.Expired(s.nowF()) {
		return ErrTokenExpired
	}
	t.Expires = s.nowF().Add(s.ttl).UnixMilli()
	if err := s.tokens.Update(ctx, t); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}
