package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
)

// ProductRepository — простая in-memory реализация domain.ProductRepository
// для локальной разработки и тестов. Порядок вставки сохраняется, поэтому
// листинг стабилен между страницами при фиксированном фильтре.
type ProductRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Product
	order []string
}

// NewProductRepository возвращает пустой in-memory репозиторий товаров.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет товар, назначая идентификатор, если он не задан.
func (r *ProductRepository) Create(_ context.Context, product domain.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	// Сохраняем копию среза размеров, чтобы избежать мутаций извне.
	product.Sizes = append([]domain.Size(nil), product.Sizes...)
	r.items[product.ID] = product
	r.order = append(r.order, product.ID)
	return product.ID, nil
}

// Get возвращает товар или ErrProductNotFound, если его нет.
func (r *ProductRepository) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// FindByIDs возвращает найденные товары; отсутствующие идентификаторы опускаются.
func (r *ProductRepository) FindByIDs(_ context.Context, ids []string) (map[string]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[string]domain.Product, len(ids))
	for _, id := range ids {
		if product, ok := r.items[id]; ok {
			found[id] = product
		}
	}
	return found, nil
}

// List возвращает товары по фильтру в порядке вставки со смещением и лимитом.
func (r *ProductRepository) List(_ context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, limit)
	skipped := 0
	for _, id := range r.order {
		product, ok := r.items[id]
		if !ok || !filter.Matches(product) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, product)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// Delete удаляет товар. Сервис не предоставляет такой операции; метод нужен
// тестам и сценариям, воспроизводящим удаление товара вне системы.
func (r *ProductRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len возвращает количество сохранённых товаров.
func (r *ProductRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

var _ domain.ProductRepository = (*ProductRepository)(nil)
