package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/ecom/internal/domain"
)

const opTimeout = 5 * time.Second

// sizeDoc — представление размера в документе товара.
type sizeDoc struct {
	Size     string `bson:"size"`
	Quantity int32  `bson:"quantity"`
}

// productDoc — документ коллекции products.
type productDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
	Sizes []sizeDoc          `bson:"sizes"`
}

func (d productDoc) toDomain() domain.Product {
	product := domain.Product{
		ID:    d.ID.Hex(),
		Name:  d.Name,
		Price: d.Price,
	}
	for _, size := range d.Sizes {
		product.Sizes = append(product.Sizes, domain.Size{Label: size.Size, Quantity: size.Quantity})
	}
	return product
}

func toProductDoc(product domain.Product) productDoc {
	doc := productDoc{
		Name:  product.Name,
		Price: product.Price,
		Sizes: make([]sizeDoc, 0, len(product.Sizes)),
	}
	for _, size := range product.Sizes {
		doc.Sizes = append(doc.Sizes, sizeDoc{Size: size.Label, Quantity: size.Quantity})
	}
	return doc
}

type productRepository struct {
	col *mongo.Collection
}

// NewProductRepository создаёт Mongo-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{col: store.Collection(productsCollection)}
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) (string, error) {
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.col.InsertOne(opCtx, toProductDoc(product))
	if err != nil {
		return "", fmt.Errorf("insert product: %w", err)
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert product: unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *productRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Некорректный идентификатор не может указывать на документ.
		return domain.Product{}, domain.ErrProductNotFound
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc productDoc
	if err := r.col.FindOne(opCtx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			// Некорректные идентификаторы эквивалентны отсутствующим документам.
			continue
		}
		oids = append(oids, oid)
	}

	found := make(map[string]domain.Product, len(oids))
	if len(oids) == 0 {
		return found, nil
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.col.Find(opCtx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find products by ids: %w", err)
	}
	defer cursor.Close(opCtx)

	for cursor.Next(opCtx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		found[doc.ID.Hex()] = doc.toDomain()
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return found, nil
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	query := bson.M{}
	if pattern, ok := filter.NamePattern(); ok {
		query["name"] = bson.M{"$regex": pattern, "$options": "i"}
	}
	if label, ok := filter.SizeLabel(); ok {
		query["sizes.size"] = label
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		// Сортировка по _id даёт стабильный порядок между страницами.
		SetSort(bson.D{{Key: "_id", Value: 1}})

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.col.Find(opCtx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(opCtx)

	result := make([]domain.Product, 0, limit)
	for cursor.Next(opCtx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		result = append(result, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return result, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
