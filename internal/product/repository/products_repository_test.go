package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"retail/internal/domain"
	apperrors "retail/internal/errors"
	"retail/internal/testutil"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// Unit Tests

func TestBuildListFilter_Default(t *testing.T) {
	filter := buildListFilter(domain.ProductFilter{})

	assert.Equal(t, bson.M{"in_stock": bson.M{"$ne": false}}, filter)
}

func TestBuildListFilter_QueryAndCategory(t *testing.T) {
	filter := buildListFilter(domain.ProductFilter{Query: "oil (1L)", Category: "pantry"})

	assert.Equal(t, "pantry", filter["category"])

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)

	first := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `oil \(1L\)`, first.Pattern)
	assert.Equal(t, "i", first.Options)
}

func TestBuildSetDocument_OnlySuppliedFields(t *testing.T) {
	inStock := false
	set := buildSetDocument(domain.ProductPatch{InStock: &inStock}, testNow)

	assert.Equal(t, bson.M{"in_stock": false, "updated_at": testNow}, set)
}

// Integration Tests

func TestRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Product{
		Title:       "Olive oil",
		Description: strPtr("Cold pressed"),
		Price:       12000,
		Currency:    "SYP",
		Category:    "pantry",
		InStock:     true,
	})
	require.NoError(t, err)

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "Olive oil", p.Title)
	assert.Equal(t, 12000.0, p.Price)
	assert.True(t, p.InStock)
	assert.NotNil(t, p.CreatedAt)
	assert.NotNil(t, p.UpdatedAt)
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)

	p, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
	assert.Nil(t, p)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_FindByID_Malformed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)

	_, err := repo.FindByID(context.Background(), "nope")
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestRepository_Find_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)
	ctx := context.Background()

	seed := []domain.Product{
		{Title: "Olive oil", Price: 1, Category: "pantry", InStock: true},
		{Title: "Soap", Description: strPtr("Aleppo laurel soap"), Price: 2, Category: "home", InStock: true},
		{Title: "Sold out tea", Price: 3, Category: "pantry", InStock: false},
	}
	for _, p := range seed {
		_, err := repo.Insert(ctx, p)
		require.NoError(t, err)
	}

	// a legacy document without in_stock still lists
	_, err := db.Collection(CollectionName).InsertOne(ctx, bson.M{"title": "Legacy", "category": "pantry", "price": 4})
	require.NoError(t, err)

	all, err := repo.Find(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pantry, err := repo.Find(ctx, domain.ProductFilter{Category: "pantry"})
	require.NoError(t, err)
	assert.Len(t, pantry, 2)

	laurel, err := repo.Find(ctx, domain.ProductFilter{Query: "LAUREL"})
	require.NoError(t, err)
	require.Len(t, laurel, 1)
	assert.Equal(t, "Soap", laurel[0].Title)
}

func TestRepository_Update_PartialFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Product{Title: "Dates", Price: 5000, Currency: "SYP", Category: "food", InStock: true})
	require.NoError(t, err)

	inStock := false
	require.NoError(t, repo.Update(ctx, id, domain.ProductPatch{InStock: &inStock}))

	p, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, p.InStock)
	assert.Equal(t, "Dates", p.Title)
	assert.Equal(t, 5000.0, p.Price)
	assert.Equal(t, "food", p.Category)
}

func TestRepository_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)
	title := "x"

	err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), domain.ProductPatch{Title: &title})
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMongoRepository(db)
	ctx := context.Background()

	id, err := repo.Insert(ctx, domain.Product{Title: "Temp", Price: 1, Category: "misc", InStock: true})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	err = repo.Delete(ctx, id)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRepository_EnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	assert.NoError(t, NewMongoRepository(db).EnsureIndexes(context.Background()))
}
