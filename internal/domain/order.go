package domain

import "time"

// OrderItem представляет одну позицию заказа: ссылку на товар и количество.
type OrderItem struct {
	// ProductID — внешняя ссылка на документ товара.
	ProductID string
	// Qty — количество единиц товара, строго положительное.
	Qty int32
}

// Order агрегирует заказ пользователя. Total фиксируется в момент создания
// по текущим ценам товаров и позже не пересчитывается.
type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	Total     float64
	CreatedAt time.Time
}

// ValidateInvariants проверяет инварианты заказа до обращения к хранилищу.
// Соответствие Total ценам товаров здесь не проверяется: сумма вычисляется
// сервисом из тех же чтений, из которых собирается заказ.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}
	if o.Total < 0 {
		errs = append(errs, ErrTotalNegative)
	}

	for _, item := range o.Items {
		if item.ProductID == "" {
			errs = append(errs, ErrItemProductRequired)
		}
		if item.Qty <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
	}

	return errs
}

// ProductIDs возвращает идентификаторы товаров заказа без дубликатов,
// сохраняя порядок первого вхождения.
func (o *Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}
