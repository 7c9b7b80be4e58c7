package command

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/supply-chain/internal/catalog/domain"
)

type fakeItemRepo struct {
	created []domain.Item
	updated []domain.ItemPatch
	item    *domain.Item
	err     error
}

func (f *fakeItemRepo) Create(ctx context.Context, item *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *item)
	return nil
}

func (f *fakeItemRepo) Update(ctx context.Context, patch domain.ItemPatch) (*domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = append(f.updated, patch)
	return f.item, nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	if f.item != nil && f.item.ID == id {
		return f.item, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]domain.Item, error) {
	return f.created, f.err
}

func TestCreateItemAssignsIdentity(t *testing.T) {
	repo := &fakeItemRepo{}
	h := NewCreateItemHandler(repo)

	item, err := h.Handle(context.Background(), CreateItemCommand{Name: "Bolt", Color: "Silver", Price: 2})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	if item.ID == "" {
		t.Fatal("expected a freshly assigned id")
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted item, got %d", len(repo.created))
	}
	if repo.created[0].Name != "Bolt" || repo.created[0].Color != "Silver" || repo.created[0].Price != 2 {
		t.Fatalf("persisted item lost fields: %+v", repo.created[0])
	}
}

func TestCreateItemValidation(t *testing.T) {
	h := NewCreateItemHandler(&fakeItemRepo{})

	cases := []struct {
		name string
		cmd  CreateItemCommand
	}{
		{"missing name", CreateItemCommand{Color: "Silver", Price: 1}},
		{"missing color", CreateItemCommand{Name: "Bolt", Price: 1}},
		{"negative price", CreateItemCommand{Name: "Bolt", Color: "Silver", Price: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Handle(context.Background(), tc.cmd)
			if !errors.Is(err, domain.ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestCreateItemZeroPriceAllowed(t *testing.T) {
	h := NewCreateItemHandler(&fakeItemRepo{})

	if _, err := h.Handle(context.Background(), CreateItemCommand{Name: "Washer", Color: "Gray", Price: 0}); err != nil {
		t.Fatalf("expected zero price to be valid, got %v", err)
	}
}
