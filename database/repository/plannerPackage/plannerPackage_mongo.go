package plannerPackageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPlannerPackageRepo implements PlannerPackageRepository using MongoDB.
type MongoPlannerPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPlannerPackageRepo uses the "planner_packages" collection of db.
func NewMongoPlannerPackageRepo(db *mongo.Database) (*MongoPlannerPackageRepo, error) {
	r := &MongoPlannerPackageRepo{coll: db.Collection("planner_packages")}
	if err := r.ensureIndexes(); err != nil {
		return nil, err
	}
	return r, nil
}

// ensureIndexes creates the unique id index and the listing index.
func (r *MongoPlannerPackageRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create planner package indexes: %w", err)
	}
	return nil
}

func (r *MongoPlannerPackageRepo) Create(ctx context.Context, pkg *models.PlannerPackage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, pkg); err != nil {
		return fmt.Errorf("failed to create planner package: %w", err)
	}
	return nil
}

func (r *MongoPlannerPackageRepo) GetByID(ctx context.Context, id string) (*models.PlannerPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pkg models.PlannerPackage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch planner package with id %s: %w", id, err)
	}
	return &pkg, nil
}

func (r *MongoPlannerPackageRepo) GetAll(ctx context.Context) ([]models.PlannerPackage, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve planner packages: %w", err)
	}
	defer cursor.Close(ctx)

	packages := []models.PlannerPackage{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, fmt.Errorf("failed to decode planner packages: %w", err)
	}
	return packages, nil
}

func (r *MongoPlannerPackageRepo) UpdateDetails(ctx context.Context, id, title, description string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{
		"title":       title,
		"description": description,
		"updatedAt":   time.Now(),
	}})
}

func (r *MongoPlannerPackageRepo) AppendService(ctx context.Context, id string, svc models.Service) error {
	return r.update(ctx, id, bson.M{
		"$push": bson.M{"services": svc},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
}

func (r *MongoPlannerPackageRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete planner package with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPlannerPackageRepo) update(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update planner package with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
