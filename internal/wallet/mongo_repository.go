package wallet

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName = "wallets"

	// userWalletsCap bounds the per-user listing; four wallets exist per user
	// in practice.
	userWalletsCap = 100
)

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository builds a MongoDB-backed wallet repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collectionName)}
}

// Create inserts a wallet document.
func (r *MongoRepository) Create(ctx context.Context, wallet Wallet) error {
	_, err := r.col.InsertOne(ctx, wallet)
	return err
}

// ListByUser returns the wallets owned by the given user.
func (r *MongoRepository) ListByUser(ctx context.Context, userID string) ([]Wallet, error) {
	return r.list(ctx, bson.M{"user_id": userID}, userWalletsCap)
}

// ListAll returns up to limit wallets across all users.
func (r *MongoRepository) ListAll(ctx context.Context, limit int64) ([]Wallet, error) {
	return r.list(ctx, bson.M{}, limit)
}

// SumBalanceByCurrency aggregates the balance of every wallet holding the
// given currency. An absent currency yields zero, not an error.
func (r *MongoRepository) SumBalanceByCurrency(ctx context.Context, currency Currency) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "currency", Value: currency}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$balance"}}},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (r *MongoRepository) list(ctx context.Context, filter bson.M, limit int64) ([]Wallet, error) {
	cur, err := r.col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	wallets := []Wallet{}
	if err := cur.All(ctx, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}
