package repository

import (
	"context"
	"testing"

	"accounts-service/internal/store"
	"accounts-service/internal/user/domain"
)

func TestStoreRepository_RoundTrip(t *testing.T) {
	repo := NewStoreRepository(store.NewMemoryStore())
	ctx := context.Background()

	u := &domain.User{
		FirstName:      "Ann",
		LastName:       "Lee",
		Phone:          "5551234567",
		HashedPassword: "digest",
		TosAgreement:   true,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByPhone(ctx, "5551234567")
	if err != nil {
		t.Fatalf("GetByPhone: %v", err)
	}
	if got == nil {
		t.Fatal("GetByPhone returned nil for existing user")
	}
	if *got != *u {
		t.Errorf("GetByPhone = %+v, want %+v", got, u)
	}

	got.LastName = "Cho"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got2, _ := repo.GetByPhone(ctx, "5551234567")
	if got2.LastName != "Cho" {
		t.Errorf("LastName after update = %q, want %q", got2.LastName, "Cho")
	}

	if err := repo.Delete(ctx, "5551234567"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got3, err := repo.GetByPhone(ctx, "5551234567")
	if err != nil {
		t.Fatalf("GetByPhone after delete: %v", err)
	}
	if got3 != nil {
		t.Error("GetByPhone after delete should return nil")
	}
}

func TestStoreRepository_MissingIsNotAnError(t *testing.T) {
	repo := NewStoreRepository(store.NewMemoryStore())

	u, err := repo.GetByPhone(context.Background(), "0000000000")
	if err != nil {
		t.Fatalf("GetByPhone on missing record: %v", err)
	}
	if u != nil {
		t.Error("GetByPhone on missing record should return nil user")
	}
}
