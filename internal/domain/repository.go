package domain

import "context"

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	// Create сохраняет новый товар и возвращает идентификатор, назначенный хранилищем.
	Create(ctx context.Context, product Product) (string, error)
	// Get возвращает товар по идентификатору или ErrProductNotFound, если его нет.
	Get(ctx context.Context, id string) (Product, error)
	// FindByIDs возвращает найденные товары, ключ — идентификатор.
	// Отсутствующие идентификаторы молча опускаются: решение о том, считать ли
	// это ошибкой, принимает вызывающая сторона.
	FindByIDs(ctx context.Context, ids []string) (map[string]Product, error)
	// List возвращает товары по фильтру со смещением и ограничением выборки.
	// Порядок стабилен между страницами при фиксированном фильтре.
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ и возвращает идентификатор, назначенный хранилищем.
	Create(ctx context.Context, order Order) (string, error)
	// ListByUser возвращает заказы пользователя, новые первыми (createdAt по убыванию).
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
}
