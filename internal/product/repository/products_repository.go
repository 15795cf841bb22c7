package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"retail/internal/domain"
	apperrors "retail/internal/errors"
	"retail/internal/infrastructure/mongodb"
)

const CollectionName = "product"

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description *string            `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Currency    string             `bson:"currency"`
	Category    string             `bson:"category"`
	ImageURL    *string            `bson:"image_url,omitempty"`
	InStock     *bool              `bson:"in_stock,omitempty"`
	CreatedAt   *time.Time         `bson:"created_at,omitempty"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty"`
}

// toDomain treats a document without in_stock as in stock, mirroring the
// listing filter.
func (d productDocument) toDomain() domain.Product {
	inStock := d.InStock == nil || *d.InStock
	return domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Currency:    d.Currency,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		InStock:     inStock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type MongoRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection(CollectionName),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating product indexes: %w", err)
	}
	return nil
}

// Insert stores p with fresh created_at/updated_at timestamps and returns
// the generated id.
func (r *MongoRepository) Insert(ctx context.Context, p domain.Product) (string, error) {
	now := r.now()
	inStock := p.InStock
	doc := productDocument{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		InStock:     &inStock,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("inserting product: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := mongodb.ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc productDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("Product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	p := doc.toDomain()
	return &p, nil
}

func (r *MongoRepository) Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, buildListFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding product documents: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.toDomain())
	}
	return products, nil
}

// Update sets the supplied patch fields and refreshes updated_at.
func (r *MongoRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	oid, err := mongodb.ParseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": buildSetDocument(patch, r.now())})
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError("Product not found")
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := mongodb.ParseObjectID(id)
	if err != nil {
		return err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if res.DeletedCount == 0 {
		return apperrors.NewNotFoundError("Product not found")
	}
	return nil
}

func buildListFilter(f domain.ProductFilter) bson.M {
	filter := bson.M{"in_stock": bson.M{"$ne": false}}

	if f.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"category": pattern},
		}
	}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	return filter
}

func buildSetDocument(p domain.ProductPatch, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Currency != nil {
		set["currency"] = *p.Currency
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.ImageURL != nil {
		set["image_url"] = *p.ImageURL
	}
	if p.InStock != nil {
		set["in_stock"] = *p.InStock
	}
	return set
}
