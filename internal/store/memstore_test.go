package store

import (
	"context"
	"testing"
)

func TestMemStoreDefensiveCopies(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	rec := Record{"id": "a", "name": "Bolt"}
	if _, err := s.Append(ctx, CollectionItems, rec); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Mutating the caller's record must not leak into the store
	rec["name"] = "changed"

	recs, err := s.List(ctx, CollectionItems)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if recs[0]["name"] != "Bolt" {
		t.Fatalf("stored record was mutated through caller reference: %v", recs[0]["name"])
	}

	// Mutating a listed record must not leak either
	recs[0]["name"] = "changed again"
	again, _ := s.List(ctx, CollectionItems)
	if again[0]["name"] != "Bolt" {
		t.Fatalf("stored record was mutated through listed copy: %v", again[0]["name"])
	}
}

func TestMemStoreListIsRepeatable(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if _, err := s.Append(ctx, CollectionSupplies, Record{"id": id}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	first, _ := s.List(ctx, CollectionSupplies)
	second, _ := s.List(ctx, CollectionSupplies)
	if len(first) != len(second) {
		t.Fatalf("list lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID() != second[i].ID() {
			t.Fatalf("list order differs at %d: %s vs %s", i, first[i].ID(), second[i].ID())
		}
	}
}

func TestMemStoreUpdateNotFound(t *testing.T) {
	s := NewMemStore()

	_, err := s.UpdateByID(context.Background(), CollectionInventory, Record{"id": "nope"})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
