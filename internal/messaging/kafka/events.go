package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
)

// EventType определяет тип события.
type EventType string

const (
	// EventTypeOrderCreated публикуется после успешного сохранения заказа.
	EventTypeOrderCreated EventType = "order.created"
)

// TopicOrderEvents — topic для событий заказов.
const TopicOrderEvents = "ecom.order.events"

// OrderItemEvent — позиция заказа в событии.
type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Qty       int32  `json:"qty"`
}

// OrderCreatedEvent представляет событие создания заказа.
type OrderCreatedEvent struct {
	EventType EventType        `json:"event_type"`
	OrderID   string           `json:"order_id"`
	UserID    string           `json:"user_id"`
	Items     []OrderItemEvent `json:"items"`
	Total     float64          `json:"total"`
	CreatedAt time.Time        `json:"created_at"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewOrderCreatedEvent собирает событие из сохранённого заказа.
func NewOrderCreatedEvent(order domain.Order) OrderCreatedEvent {
	event := OrderCreatedEvent{
		EventType: EventTypeOrderCreated,
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		Timestamp: time.Now().UTC(),
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, OrderItemEvent{ProductID: item.ProductID, Qty: item.Qty})
	}
	return event
}
