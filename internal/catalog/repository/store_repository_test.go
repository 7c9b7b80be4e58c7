package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/supply-chain/internal/catalog/domain"
	"github.com/tair/supply-chain/internal/store"
)

func TestStoreItemRepositoryRoundTrip(t *testing.T) {
	repo := NewStoreItemRepository(store.NewMemStore())
	ctx := context.Background()

	item := &domain.Item{ID: "item-1", Name: "Bolt", Color: "Silver", Price: 2}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one item, got %d", len(items))
	}
	if items[0] != *item {
		t.Fatalf("round trip lost fields: %+v", items[0])
	}
}

func TestStoreItemRepositoryPartialUpdate(t *testing.T) {
	repo := NewStoreItemRepository(store.NewMemStore())
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Item{ID: "item-1", Name: "Bolt", Color: "Silver", Price: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}

	color := "Black"
	updated, err := repo.Update(ctx, domain.ItemPatch{ID: "item-1", Color: &color})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Color != "Black" {
		t.Fatalf("expected patched color, got %q", updated.Color)
	}
	if updated.Name != "Bolt" || updated.Price != 2 {
		t.Fatalf("untouched fields must survive the merge: %+v", updated)
	}
}

func TestStoreItemRepositoryUpdateNotFound(t *testing.T) {
	repo := NewStoreItemRepository(store.NewMemStore())

	_, err := repo.Update(context.Background(), domain.ItemPatch{ID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreItemRepositoryFindByID(t *testing.T) {
	repo := NewStoreItemRepository(store.NewMemStore())
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Item{ID: "item-1", Name: "Bolt", Color: "Silver"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.FindByID(ctx, "item-1")
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.Name != "Bolt" {
		t.Fatalf("unexpected item: %+v", found)
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
