package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
	"github.com/vladislavdragonenkov/ecom/internal/pagination"
	"github.com/vladislavdragonenkov/ecom/internal/service/catalog"
	"github.com/vladislavdragonenkov/ecom/internal/storage/memory"
)

func newService(t *testing.T) (*catalog.Service, *memory.ProductRepository) {
	t.Helper()
	repo := memory.NewProductRepository()
	return catalog.NewService(repo, nil), repo
}

func TestCreateProduct_Valid(t *testing.T) {
	svc, repo := newService(t)

	id, err := svc.CreateProduct(context.Background(), catalog.ProductInput{
		Name:  "Shirt",
		Price: 20,
		Sizes: []domain.Size{{Label: "M", Quantity: 5}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, 1, repo.Len())
}

func TestCreateProduct_RejectedBeforeStorage(t *testing.T) {
	svc, repo := newService(t)

	cases := []struct {
		name  string
		input catalog.ProductInput
		want  error
	}{
		{"empty name", catalog.ProductInput{Name: "", Price: 10}, domain.ErrProductNameRequired},
		{"negative price", catalog.ProductInput{Name: "Shirt", Price: -1}, domain.ErrProductPriceNegative},
		{
			"duplicate sizes",
			catalog.ProductInput{
				Name:  "Shirt",
				Price: 10,
				Sizes: []domain.Size{{Label: "M", Quantity: 1}, {Label: "M", Quantity: 2}},
			},
			domain.ErrSizeLabelDuplicate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.input)
			require.ErrorIs(t, err, tc.want)
			require.True(t, domain.IsValidation(err))
		})
	}

	// Ни одна невалидная попытка не дошла до хранилища.
	require.Equal(t, 0, repo.Len())
}

func TestListProducts_FiltersAndProjection(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, catalog.ProductInput{
		Name:  "Blue Shirt",
		Price: 20,
		Sizes: []domain.Size{{Label: "M", Quantity: 5}},
	})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, catalog.ProductInput{
		Name:  "Trousers",
		Price: 40,
		Sizes: []domain.Size{{Label: "L", Quantity: 2}},
	})
	require.NoError(t, err)

	result, err := svc.ListProducts(ctx, catalog.ListQuery{
		Name: "shirt",
		Size: "M",
		Page: pagination.Default(),
	})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	require.Equal(t, "Blue Shirt", result.Data[0].Name)
	require.Equal(t, 20.0, result.Data[0].Price)
	require.NotEmpty(t, result.Data[0].ID)
}

func TestListProducts_PageDescriptor(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateProduct(ctx, catalog.ProductInput{Name: "Shirt", Price: 10})
		require.NoError(t, err)
	}

	full, err := svc.ListProducts(ctx, catalog.ListQuery{Page: pagination.Params{Limit: 3, Offset: 0}})
	require.NoError(t, err)
	require.True(t, full.Page.HasNext())
	require.Equal(t, 3, *full.Page.Next)
	require.Equal(t, -3, full.Page.Previous)

	short, err := svc.ListProducts(ctx, catalog.ListQuery{Page: pagination.Params{Limit: 10, Offset: 0}})
	require.NoError(t, err)
	require.False(t, short.Page.HasNext())
	require.Equal(t, 10, short.Page.Limit)
}

func TestListProducts_InvalidWindow(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ListProducts(context.Background(), catalog.ListQuery{Page: pagination.Params{Limit: 0}})
	require.ErrorIs(t, err, domain.ErrLimitInvalid)

	_, err = svc.ListProducts(context.Background(), catalog.ListQuery{Page: pagination.Params{Limit: 10, Offset: -5}})
	require.ErrorIs(t, err, domain.ErrOffsetInvalid)
}

func TestListProducts_MalformedNamePattern(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.ListProducts(context.Background(), catalog.ListQuery{
		Name: "shirt(",
		Page: pagination.Default(),
	})
	require.ErrorIs(t, err, domain.ErrNamePatternInvalid)
	require.True(t, domain.IsValidation(err))
}

func TestListProducts_EmptyDataIsNotNil(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.ListProducts(context.Background(), catalog.ListQuery{Page: pagination.Default()})
	require.NoError(t, err)
	require.NotNil(t, result.Data)
	require.Empty(t, result.Data)
}
