package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"accounts-service/internal/security"
	tokendomain "accounts-service/internal/token/domain"
	userdomain "accounts-service/internal/user/domain"
)

type memUserRepo struct {
	mu      sync.Mutex
	byPhone map[string]*userdomain.User
}

func (r *memUserRepo) GetByPhone(ctx context.Context, phone string) (*userdomain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byPhone[phone], nil
}

type memTokenRepo struct {
	mu        sync.Mutex
	byID      map[string]*tokendomain.Token
	failWrite bool
}

func (r *memTokenRepo) GetByID(ctx context.Context, id string) (*tokendomain.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id], nil
}

func (r *memTokenRepo) Create(ctx context.Context, t *tokendomain.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite {
		return errors.New("write failed")
	}
	t2 := *t
	r.byID[t.ID] = &t2
	return nil
}

func (r *memTokenRepo) Update(ctx context.Context, t *tokendomain.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite {
		return errors.New("write failed")
	}
	t2 := *t
	r.byID[t.ID] = &t2
	return nil
}

func newTestService(t *testing.T) (*Service, *memUserRepo, *memTokenRepo) {
	t.Helper()
	users := &memUserRepo{byPhone: make(map[string]*userdomain.User)}
	tokens := &memTokenRepo{byID: make(map[string]*tokendomain.Token)}
	hasher := security.NewHasher("test-secret")
	svc := NewService(users, tokens, hasher, time.Hour)

	digest, err := hasher.Hash("pw123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	users.byPhone["5551234567"] = &userdomain.User{
		FirstName:      "Ann",
		LastName:       "Lee",
		Phone:          "5551234567",
		HashedPassword: digest,
		TosAgreement:   true,
	}
	return svc, users, tokens
}

func TestService_Issue(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	before := time.Now().UnixMilli()
	tok, err := svc.Issue(ctx, "5551234567", "pw123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(tok.ID) != security.TokenIDLength {
		t.Errorf("token id length = %d, want %d", len(tok.ID), security.TokenIDLength)
	}
	for _, ch := range tok.ID {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", ch) {
			t.Errorf("token id contains %q outside [a-z0-9]", ch)
		}
	}
	if tok.Phone != "5551234567" {
		t.Errorf("token phone = %q", tok.Phone)
	}
	wantMin := before + time.Hour.Milliseconds()
	wantMax := time.Now().UnixMilli() + time.Hour.Milliseconds()
	if tok.Expires < wantMin || tok.Expires > wantMax {
		t.Errorf("expires = %d, want within [%d, %d]", tok.Expires, wantMin, wantMax)
	}
	if tokens.byID[tok.ID] == nil {
		t.Error("issued token should be persisted")
	}
}

func TestService_IssueUnknownUser(t *testing.T) {
	svc, _, tokens := newTestService(t)

	_, err := svc.Issue(context.Background(), "0000000000", "pw123")
	if err != ErrUserNotFound {
		t.Errorf("unknown phone: want ErrUserNotFound, got %v", err)
	}
	if len(tokens.byID) != 0 {
		t.Error("no token should be persisted for an unknown user")
	}
}

func TestService_IssueWrongPassword(t *testing.T) {
	svc, _, tokens := newTestService(t)

	_, err := svc.Issue(context.Background(), "5551234567", "wrong")
	if err != ErrInvalidCredentials {
		t.Errorf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if len(tokens.byID) != 0 {
		t.Error("no token should be persisted on a password mismatch")
	}
}

func TestService_IssueStoreFailure(t *testing.T) {
	svc, _, tokens := newTestService(t)
	tokens.failWrite = true

	_, err := svc.Issue(context.Background(), "5551234567", "pw123")
	if err == nil {
		t.Fatal("Issue should surface the store failure")
	}
	if err == ErrUserNotFound || err == ErrInvalidCredentials {
		t.Errorf("store failure should not map to a credential error, got %v", err)
	}
}

func TestService_Verify(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	tok, err := svc.Issue(ctx, "5551234567", "pw123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if !svc.Verify(ctx, tok.ID, "5551234567") {
		t.Error("fresh token should verify for its phone")
	}
	if svc.Verify(ctx, tok.ID, "5559999999") {
		t.Error("token should not verify for another phone")
	}
	if svc.Verify(ctx, "aaaaaaaaaaaaaaaaaaaa", "5551234567") {
		t.Error("absent token should not verify")
	}

	// Valid iff expires > now: a token one ms in the past must fail.
	tokens.mu.Lock()
	tokens.byID[tok.ID].Expires = time.Now().UnixMilli() - 1
	tokens.mu.Unlock()
	if svc.Verify(ctx, tok.ID, "5551234567") {
		t.Error("expired token should not verify")
	}
}

func TestService_Renew(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	tok, err := svc.Issue(ctx, "5551234567", "pw123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Pin the clock so the extension is exact.
	now := time.Now()
	svc.nowF = func() time.Time { return now }

	if err := svc.Renew(ctx, tok.ID); err != nil {
		t.Fatalf("Renew: %v", err)
	}
	got := tokens.byID[tok.ID]
	if got.Expires != now.Add(time.Hour).UnixMilli() {
		t.Errorf("expires after renew = %d, want %d", got.Expires, now.Add(time.Hour).UnixMilli())
	}
	if got.ID != tok.ID || got.Phone != tok.Phone {
		t.Error("renew must not change id or phone")
	}
}

func TestService_RenewExpired(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	tok, _ := svc.Issue(ctx, "5551234567", "pw123")
	stale := time.Now().UnixMilli() - 1
	tokens.mu.Lock()
	tokens.byID[tok.ID].Expires = stale
	tokens.mu.Unlock()

	if err := svc.Renew(ctx, tok.ID); err != ErrTokenExpired {
		t.Errorf("renew expired: want ErrTokenExpired, got %v", err)
	}
	if tokens.byID[tok.ID].Expires != stale {
		t.Error("failed renew must not mutate expires")
	}
}

func TestService_RenewMissing(t *testing.T) {
	svc, _, _ := newTestService(t)

	if err := svc.Renew(context.Background(), "aaaaaaaaaaaaaaaaaaaa"); err != ErrTokenNotFound {
		t.Errorf("renew missing: want ErrTokenNotFound, got %v", err)
	}
}
