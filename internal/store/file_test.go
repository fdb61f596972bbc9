package store

import (
	"context"
	"errors"
	"testing"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStore_CRUD(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	rec := testRecord{Name: "ann", Count: 1}
	if err := s.Create(ctx, CollectionUsers, "5551234567", rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var got testRecord
	if err := s.Read(ctx, CollectionUsers, "5551234567", &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != rec {
		t.Errorf("Read = %+v, want %+v", got, rec)
	}

	rec.Count = 2
	if err := s.Update(ctx, CollectionUsers, "5551234567", rec); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.Read(ctx, CollectionUsers, "5551234567", &got); err != nil {
		t.Fatalf("Read after update: %v", err)
	}
	if got.Count != 2 {
		t.Errorf("Count after update = %d, want 2", got.Count)
	}

	if err := s.Delete(ctx, CollectionUsers, "5551234567"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Read(ctx, CollectionUsers, "5551234567", &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read after delete: want ErrNotFound, got %v", err)
	}
}

func TestFileStore_CreateDuplicate(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Create(ctx, CollectionUsers, "k", testRecord{}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(ctx, CollectionUsers, "k", testRecord{}); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate Create: want ErrAlreadyExists, got %v", err)
	}
}

func TestFileStore_MissingRecord(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Update(ctx, CollectionTokens, "absent", testRecord{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update missing: want ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, CollectionTokens, "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete missing: want ErrNotFound, got %v", err)
	}
}

func TestFileStore_CollectionsAreIsolated(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := s.Create(ctx, CollectionUsers, "shared-key", testRecord{Name: "user"}); err != nil {
		t.Fatalf("Create users: %v", err)
	}
	if err := s.Create(ctx, CollectionTokens, "shared-key", testRecord{Name: "token"}); err != nil {
		t.Fatalf("Create tokens: %v", err)
	}

	var got testRecord
	if err := s.Read(ctx, CollectionTokens, "shared-key", &got); err != nil {
		t.Fatalf("Read tokens: %v", err)
	}
	if got.Name != "token" {
		t.Errorf("tokens record = %q, want %q", got.Name, "token")
	}
}
