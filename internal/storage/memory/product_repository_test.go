package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
	"github.com/vladislavdragonenkov/ecom/internal/storage/memory"
)

func newProduct(name string, price float64, sizes ...string) domain.Product {
	p := domain.Product{Name: name, Price: price}
	for _, label := range sizes {
		p.Sizes = append(p.Sizes, domain.Size{Label: label, Quantity: 5})
	}
	return p
}

func mustFilter(t *testing.T, name, size string) domain.ProductFilter {
	t.Helper()
	filter, err := domain.NewProductFilter(name, size)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	return filter
}

func TestProductRepository_CreateGet(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, newProduct("Shirt", 20, "M"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	stored, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Name != "Shirt" || stored.Price != 20 {
		t.Fatalf("unexpected product: %+v", stored)
	}
}

func TestProductRepository_GetMissing(t *testing.T) {
	repo := memory.NewProductRepository()

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductRepository_FindByIDs_SkipsMissing(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, newProduct("Shirt", 20))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByIDs(ctx, []string{id, "missing"})
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 product, got %d", len(found))
	}
	if _, ok := found[id]; !ok {
		t.Fatalf("expected product %s in result", id)
	}
}

func TestProductRepository_List_Filters(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	products := []domain.Product{
		newProduct("Blue Shirt", 20, "M", "L"),
		newProduct("Red shirt", 25, "S"),
		newProduct("Trousers", 40, "M"),
	}
	for _, p := range products {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	byName, err := repo.List(ctx, mustFilter(t, "shirt", ""), 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("expected 2 shirts, got %d", len(byName))
	}

	bySize, err := repo.List(ctx, mustFilter(t, "", "M"), 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(bySize) != 2 {
		t.Fatalf("expected 2 products with size M, got %d", len(bySize))
	}

	both, err := repo.List(ctx, mustFilter(t, "shirt", "M"), 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(both) != 1 || both[0].Name != "Blue Shirt" {
		t.Fatalf("expected only Blue Shirt, got %+v", both)
	}
}

func TestProductRepository_List_StablePagination(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	var ids []string
	for i := 0; i < 7; i++ {
		id, err := repo.Create(ctx, newProduct(fmt.Sprintf("Item %d", i), float64(i)))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, id)
	}

	filter := mustFilter(t, "", "")
	var collected []string
	for offset := 0; offset < 7; offset += 3 {
		page, err := repo.List(ctx, filter, 3, offset)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, p := range page {
			collected = append(collected, p.ID)
		}
	}

	if len(collected) != 7 {
		t.Fatalf("expected all 7 products across pages, got %d", len(collected))
	}
	for i, id := range collected {
		if id != ids[i] {
			t.Fatalf("pagination not stable at %d: expected %s, got %s", i, ids[i], id)
		}
	}
}

func TestProductRepository_Delete(t *testing.T) {
	repo := memory.NewProductRepository()
	ctx := context.Background()

	id, err := repo.Create(ctx, newProduct("Shirt", 20))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	repo.Delete(id)

	if _, err := repo.Get(ctx, id); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected empty repository, got %d", repo.Len())
	}
}
