// Package orders реализует создание заказов с фиксацией цен и сборку
// обогащённой истории заказов пользователя.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
	"github.com/vladislavdragonenkov/ecom/internal/pagination"
)

// unknownProductName подставляется в строку заказа, если товар был удалён
// после создания заказа.
const unknownProductName = "Unknown Product"

// Publisher получает уведомления о созданных заказах. Публикация не влияет
// на результат операции: заказ к этому моменту уже сохранён.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, order domain.Order) error
}

// Service инкапсулирует бизнес-логику заказов поверх репозиториев заказов
// и товаров.
type Service struct {
	orders    domain.OrderRepository
	products  domain.ProductRepository
	publisher Publisher
	logger    *log.Entry
}

// NewService конструирует сервис заказов. publisher может быть nil, тогда
// события не публикуются.
func NewService(orders domain.OrderRepository, products domain.ProductRepository, publisher Publisher, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "orders-service")
	}
	return &Service{
		orders:    orders,
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// OrderItemInput — позиция запроса на создание заказа.
type OrderItemInput struct {
	ProductID string
	Qty       int32
}

// OrderInput — данные запроса на создание заказа.
type OrderInput struct {
	UserID string
	Items  []OrderItemInput
}

// CreateOrder создаёт заказ. Все товары читаются до единственной записи:
// если хоть одна ссылка не разрешилась, операция целиком отклоняется и
// ничего не сохраняется. Сумма фиксируется по ценам на момент создания.
func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (string, error) {
	order := domain.Order{
		UserID: in.UserID,
		Items:  make([]domain.OrderItem, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		order.Items = append(order.Items, domain.OrderItem{ProductID: item.ProductID, Qty: item.Qty})
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return "", errors.Join(errs...)
	}

	products, err := s.products.FindByIDs(ctx, order.ProductIDs())
	if err != nil {
		return "", fmt.Errorf("resolve order products: %w", err)
	}

	var total float64
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
		}
		total += float64(item.Qty) * product.Price
	}

	order.Total = total
	order.CreatedAt = time.Now().UTC()

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	order.ID = id

	s.logger.WithFields(log.Fields{
		"order_id": id,
		"user_id":  in.UserID,
		"total":    total,
	}).Info("order created")

	if s.publisher != nil {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			// Публикация — best effort, заказ уже сохранён.
			s.logger.WithError(err).WithField("order_id", id).Warn("failed to publish order created event")
		}
	}

	return id, nil
}

// ProductDetails — данные товара, присоединяемые к строке заказа при чтении.
type ProductDetails struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Price float64       `json:"price"`
	Sizes []domain.Size `json:"sizes"`
}

// LineView — строка обогащённого представления заказа. ProductDetails
// отсутствует, если товар был удалён; qty при этом сохраняется.
type LineView struct {
	ProductDetails *ProductDetails `json:"productDetails,omitempty"`
	Name           string          `json:"name"`
	Qty            int32           `json:"qty"`
}

// OrderView — обогащённое представление заказа. Вычисляется при чтении и
// никогда не сохраняется.
type OrderView struct {
	ID    string     `json:"id"`
	Items []LineView `json:"items"`
	Total float64    `json:"total"`
}

// ListResult — страница истории заказов с дескриптором пагинации.
type ListResult struct {
	Data []OrderView     `json:"data"`
	Page pagination.Page `json:"page"`
}

// ListUserOrders возвращает заказы пользователя, новые первыми, присоединяя
// данные товаров одним пакетным чтением на страницу. Удалённый товар не
// роняет запрос: строка сохраняет qty, а детали остаются пустыми.
func (s *Service) ListUserOrders(ctx context.Context, userID string, page pagination.Params) (ListResult, error) {
	if userID == "" {
		return ListResult{}, domain.ErrUserRequired
	}
	if err := page.Validate(); err != nil {
		return ListResult{}, err
	}

	orders, err := s.orders.ListByUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return ListResult{}, fmt.Errorf("list orders: %w", err)
	}

	// Один пакетный запрос на все товары страницы вместо чтения по позиции.
	var ids []string
	seen := make(map[string]struct{})
	for _, order := range orders {
		for _, id := range order.ProductIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	products := map[string]domain.Product{}
	if len(ids) > 0 {
		products, err = s.products.FindByIDs(ctx, ids)
		if err != nil {
			return ListResult{}, fmt.Errorf("resolve order products: %w", err)
		}
	}

	data := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		view := OrderView{
			ID:    order.ID,
			Items: make([]LineView, 0, len(order.Items)),
			Total: order.Total,
		}
		for _, item := range order.Items {
			line := LineView{Name: unknownProductName, Qty: item.Qty}
			if product, ok := products[item.ProductID]; ok {
				line.Name = product.Name
				line.ProductDetails = &ProductDetails{
					ID:    product.ID,
					Name:  product.Name,
					Price: product.Price,
					Sizes: product.Sizes,
				}
			}
			view.Items = append(view.Items, line)
		}
		data = append(data, view)
	}

	return ListResult{
		Data: data,
		Page: pagination.BuildPage(page, len(orders)),
	}, nil
}
