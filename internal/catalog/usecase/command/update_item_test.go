package command

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/supply-chain/internal/catalog/domain"
)

func TestUpdateItemRequiresID(t *testing.T) {
	h := NewUpdateItemHandler(&fakeItemRepo{})

	name := "Bolt"
	_, err := h.Handle(context.Background(), UpdateItemCommand{Name: &name})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	h := NewUpdateItemHandler(&fakeItemRepo{err: domain.ErrNotFound})

	_, err := h.Handle(context.Background(), UpdateItemCommand{ID: "missing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateItemPassesPatchThrough(t *testing.T) {
	color := "Black"
	repo := &fakeItemRepo{item: &domain.Item{ID: "a", Name: "Bolt", Color: color, Price: 2}}
	h := NewUpdateItemHandler(repo)

	item, err := h.Handle(context.Background(), UpdateItemCommand{ID: "a", Color: &color})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if item.Color != "Black" {
		t.Fatalf("expected merged color, got %q", item.Color)
	}
	if len(repo.updated) != 1 || repo.updated[0].ID != "a" {
		t.Fatalf("expected one patch keyed by id, got %+v", repo.updated)
	}
	if repo.updated[0].Name != nil {
		t.Fatal("absent fields must stay absent in the patch")
	}
}
