package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

// MongoRepository implements Repository on a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository builds a MongoDB-backed user repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collectionName)}
}

// Create inserts a new user document. The email uniqueness check and the
// insert are two round trips, matching the store's lack of multi-write
// transactions.
func (r *MongoRepository) Create(ctx context.Context, user User) error {
	count, err := r.col.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	_, err = r.col.InsertOne(ctx, user)
	return err
}

// FindByID fetches a user by its opaque identifier.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// FindByEmail fetches a user by email.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// HasAdmin reports whether any admin account exists.
func (r *MongoRepository) HasAdmin(ctx context.Context) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"role": RoleAdmin})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByRole counts users holding the given role.
func (r *MongoRepository) CountByRole(ctx context.Context, role Role) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"role": role})
}

// ListByRole returns up to limit users holding the given role.
func (r *MongoRepository) ListByRole(ctx context.Context, role Role, limit int64) ([]User, error) {
	cur, err := r.col.Find(ctx, bson.M{"role": role}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	users := []User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (User, error) {
	var u User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
