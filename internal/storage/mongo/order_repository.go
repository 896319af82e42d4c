package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
)

// orderItemDoc — позиция заказа в документе.
type orderItemDoc struct {
	ProductID string `bson:"productId"`
	Qty       int32  `bson:"qty"`
}

// orderDoc — документ коллекции orders.
type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Items     []orderItemDoc     `bson:"items"`
	Total     float64            `bson:"total"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d orderDoc) toDomain() domain.Order {
	order := domain.Order{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Total:     d.Total,
		CreatedAt: d.CreatedAt,
	}
	for _, item := range d.Items {
		order.Items = append(order.Items, domain.OrderItem{ProductID: item.ProductID, Qty: item.Qty})
	}
	return order
}

func toOrderDoc(order domain.Order) orderDoc {
	doc := orderDoc{
		UserID:    order.UserID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
		Items:     make([]orderItemDoc, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, orderItemDoc{ProductID: item.ProductID, Qty: item.Qty})
	}
	return doc
}

type orderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository создаёт Mongo-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{col: store.Collection(ordersCollection)}
}

func (r *orderRepository) Create(ctx context.Context, order domain.Order) (string, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.col.InsertOne(opCtx, toOrderDoc(order))
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert order: unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Order, error) {
	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		// Новые заказы первыми; _id разрешает равенство createdAt.
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.col.Find(opCtx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(opCtx)

	result := make([]domain.Order, 0, limit)
	for cursor.Next(opCtx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		result = append(result, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return result, nil
}

var _ domain.OrderRepository = (*orderRepository)(nil)
