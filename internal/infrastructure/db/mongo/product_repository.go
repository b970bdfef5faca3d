package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsphere/user-system/internal/core/domain"
)

const productsCollection = "products"

// ProductRepository persists catalog entries in MongoDB.
type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert product: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return decodeProducts(ctx, cursor)
}

// SearchByName matches products whose name contains the given fragment,
// case-insensitively.
func (r *ProductRepository) SearchByName(ctx context.Context, name string) ([]*domain.Product, error) {
	filter := bson.M{"name": bson.M{
		"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"},
	}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search products: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return decodeProducts(ctx, cursor)
}

func (r *ProductRepository) Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"price":       p.Price,
		"quantity":    p.Quantity,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("update product: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProductNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w: %w", domain.ErrStoreUnavailable, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Product, error) {
	defer cursor.Close(ctx)
	products := make([]*domain.Product, 0)
	for cursor.Next(ctx) {
		var p domain.Product
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return products, nil
}
