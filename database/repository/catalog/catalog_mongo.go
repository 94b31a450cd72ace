package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"eventify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo stores catalog categories, one document per category.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo uses the "categories" collection of db.
func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: db.Collection("categories")}
}

// LoadCategories returns every stored category ordered by id.
func (r *MongoCatalogRepo) LoadCategories(ctx context.Context) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// ReplaceAll swaps the stored catalog for categories.
func (r *MongoCatalogRepo) ReplaceAll(ctx context.Context, categories []models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	if len(categories) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(categories))
	for _, cat := range categories {
		docs = append(docs, cat)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert categories: %w", err)
	}
	return nil
}
