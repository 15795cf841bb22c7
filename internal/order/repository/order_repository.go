package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"retail/internal/domain"
	apperrors "retail/internal/errors"
	"retail/internal/infrastructure/mongodb"
)

const CollectionName = "order"

type orderItemDocument struct {
	ProductID string  `bson:"product_id"`
	Title     string  `bson:"title"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

type customerDocument struct {
	Name    string  `bson:"name"`
	Phone   string  `bson:"phone"`
	City    string  `bson:"city"`
	Address string  `bson:"address"`
	Notes   *string `bson:"notes,omitempty"`
}

type orderDocument struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	Items         []orderItemDocument `bson:"items"`
	Customer      customerDocument    `bson:"customer"`
	PaymentMethod string              `bson:"payment_method"`
	Status        string              `bson:"status"`
	TrackingNote  *string             `bson:"tracking_note,omitempty"`
	Total         float64             `bson:"total"`
	Currency      string              `bson:"currency"`
	PlacedAt      *time.Time          `bson:"placed_at,omitempty"`
	UpdatedAt     *time.Time          `bson:"updated_at,omitempty"`
}

func newOrderDocument(o domain.Order) orderDocument {
	items := make([]orderItemDocument, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDocument{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return orderDocument{
		Items: items,
		Customer: customerDocument{
			Name:    o.Customer.Name,
			Phone:   o.Customer.Phone,
			City:    o.Customer.City,
			Address: o.Customer.Address,
			Notes:   o.Customer.Notes,
		},
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		TrackingNote:  o.TrackingNote,
		Total:         o.Total,
		Currency:      o.Currency,
		PlacedAt:      o.PlacedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (d orderDocument) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return domain.Order{
		ID:    d.ID.Hex(),
		Items: items,
		Customer: domain.Customer{
			Name:    d.Customer.Name,
			Phone:   d.Customer.Phone,
			City:    d.Customer.City,
			Address: d.Customer.Address,
			Notes:   d.Customer.Notes,
		},
		PaymentMethod: d.PaymentMethod,
		Status:        d.Status,
		TrackingNote:  d.TrackingNote,
		Total:         d.Total,
		Currency:      d.Currency,
		PlacedAt:      d.PlacedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type MongoOrderRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection(CollectionName),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (r *MongoOrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "placed_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "placed_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating order indexes: %w", err)
	}
	return nil
}

func (r *MongoOrderRepository) Insert(ctx context.Context, o domain.Order) (string, error) {
	res, err := r.collection.InsertOne(ctx, newOrderDocument(o))
	if err != nil {
		return "", fmt.Errorf("inserting order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("inserting order: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := mongodb.ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc orderDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("Order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	o := doc.toDomain()
	return &o, nil
}

// Find returns the matching orders, most recently placed first. Orders
// placed at the same instant fall back to descending _id.
func (r *MongoOrderRepository) Find(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "placed_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding order documents: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toDomain())
	}
	return orders, nil
}

// UpdateStatus sets the supplied patch fields and updated_at.
func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id string, patch domain.OrderStatusPatch) error {
	oid, err := mongodb.ParseObjectID(id)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": r.now()}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.TrackingNote != nil {
		set["tracking_note"] = *patch.TrackingNote
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	if res.MatchedCount == 0 {
		return apperrors.NewNotFoundError("Order not found")
	}
	return nil
}
