package transaction

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "transactions"

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository builds a MongoDB-backed transaction repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collectionName)}
}

// Create inserts a transaction document.
func (r *MongoRepository) Create(ctx context.Context, tx Transaction) error {
	_, err := r.col.InsertOne(ctx, tx)
	return err
}

// ListByUser returns the user's transactions, newest first.
func (r *MongoRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]Transaction, error) {
	return r.list(ctx, bson.M{"user_id": userID}, limit)
}

// ListAll returns transactions across all users, newest first.
func (r *MongoRepository) ListAll(ctx context.Context, limit int64) ([]Transaction, error) {
	return r.list(ctx, bson.M{}, limit)
}

// CountAll counts every transaction in the store.
func (r *MongoRepository) CountAll(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

// CountByStatus counts transactions in the given state.
func (r *MongoRepository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"status": status})
}

// CountByTypeAndStatus counts transactions of a kind in a given state.
func (r *MongoRepository) CountByTypeAndStatus(ctx context.Context, typ Type, status Status) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"type": typ, "status": status})
}

func (r *MongoRepository) list(ctx context.Context, filter bson.M, limit int64) ([]Transaction, error) {
	// created_at holds fixed-width RFC 3339 strings whose lexicographic
	// order is chronological, so a plain descending sort yields newest first.
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	txs := []Transaction{}
	if err := cur.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}
