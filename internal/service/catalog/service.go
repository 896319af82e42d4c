// Package catalog реализует операции каталога товаров: создание и листинг
// с фильтрами и пагинацией.
package catalog

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
	"github.com/vladislavdragonenkov/ecom/internal/pagination"
)

// Service инкапсулирует бизнес-логику каталога поверх репозитория товаров.
type Service struct {
	products domain.ProductRepository
	logger   *log.Entry
}

// NewService конструирует сервис каталога с зависимостями.
func NewService(products domain.ProductRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "catalog-service")
	}
	return &Service{
		products: products,
		logger:   logger,
	}
}

// ProductInput — данные запроса на создание товара.
type ProductInput struct {
	Name  string
	Price float64
	Sizes []domain.Size
}

// CreateProduct валидирует и сохраняет товар, возвращая его идентификатор.
// Невалидный ввод отклоняется до обращения к хранилищу.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (string, error) {
	product := domain.Product{
		Name:  in.Name,
		Price: in.Price,
		Sizes: in.Sizes,
	}
	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return "", errors.Join(errs...)
	}

	id, err := s.products.Create(ctx, product)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"product_id": id,
		"name":       in.Name,
	}).Info("product created")
	return id, nil
}

// ListQuery — параметры спискового запроса каталога.
type ListQuery struct {
	Name string
	Size string
	Page pagination.Params
}

// ProductSummary — проекция товара для спискового ответа.
// Детализация размеров в списке намеренно опущена.
type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ListResult — страница каталога с дескриптором пагинации.
type ListResult struct {
	Data []ProductSummary `json:"data"`
	Page pagination.Page  `json:"page"`
}

// ListProducts возвращает страницу каталога по необязательным фильтрам
// имени (подстрока без учёта регистра) и метки размера (точное совпадение).
func (s *Service) ListProducts(ctx context.Context, q ListQuery) (ListResult, error) {
	if err := q.Page.Validate(); err != nil {
		return ListResult{}, err
	}
	filter, err := domain.NewProductFilter(q.Name, q.Size)
	if err != nil {
		return ListResult{}, err
	}

	products, err := s.products.List(ctx, filter, q.Page.Limit, q.Page.Offset)
	if err != nil {
		return ListResult{}, fmt.Errorf("list products: %w", err)
	}

	data := make([]ProductSummary, 0, len(products))
	for _, product := range products {
		data = append(data, ProductSummary{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
		})
	}

	return ListResult{
		Data: data,
		Page: pagination.BuildPage(q.Page, len(products)),
	}, nil
}
