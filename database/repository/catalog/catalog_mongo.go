// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"labtrack/database"
	"labtrack/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	coll := database.Database().Collection("tests")
	repo := &MongoCatalogRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create catalog indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "name", Value: 1}},
		},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// Create inserts a new catalog entry.
func (r *MongoCatalogRepo) Create(test *models.LabTest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	test.CreatedAt = now
	test.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, test)
	if err != nil {
		return fmt.Errorf("failed to create test: %w", err)
	}
	return nil
}

// Update modifies an existing catalog entry.
func (r *MongoCatalogRepo) Update(test *models.LabTest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	test.UpdatedAt = time.Now()
	filter := bson.M{"id": test.ID}
	update := bson.M{"$set": test}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update test with id %s: %w", test.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("test with id %s not found", test.ID)
	}
	return nil
}

// Delete removes a catalog entry by its ID.
func (r *MongoCatalogRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete test with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("test with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a catalog entry by its unique ID.
func (r *MongoCatalogRepo) GetByID(id string) (*models.LabTest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var test models.LabTest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&test); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch test with id %s: %w", id, err)
	}
	return &test, nil
}

// GetAll retrieves every catalog entry, newest first.
func (r *MongoCatalogRepo) GetAll() ([]models.LabTest, error) {
	return r.find(bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

// GetActive retrieves active entries sorted by name.
func (r *MongoCatalogRepo) GetActive() ([]models.LabTest, error) {
	return r.find(bson.M{"is_active": true}, bson.D{{Key: "name", Value: 1}})
}

// GetActiveByIDs retrieves the active entries among the given IDs.
func (r *MongoCatalogRepo) GetActiveByIDs(ids []string) ([]models.LabTest, error) {
	filter := bson.M{"id": bson.M{"$in": ids}, "is_active": true}
	return r.find(filter, bson.D{{Key: "name", Value: 1}})
}

func (r *MongoCatalogRepo) find(filter bson.M, sort bson.D) ([]models.LabTest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tests: %w", err)
	}
	defer cursor.Close(ctx)

	var tests []models.LabTest
	for cursor.Next(ctx) {
		var t models.LabTest
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode test: %w", err)
		}
		tests = append(tests, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("test cursor error: %w", err)
	}
	return tests, nil
}
