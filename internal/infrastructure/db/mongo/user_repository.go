package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsphere/user-system/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists identities in MongoDB. Username uniqueness is
// enforced by a unique index, so a concurrent check-then-insert race
// resolves here: the losing insert gets a duplicate-key error.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique username index. Run once at startup,
// before the first registration is accepted.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

type userDoc struct {
	ID               string `bson:"_id"`
	Username         string `bson:"username"`
	PasswordVerifier string `bson:"password_verifier"`
	FullName         string `bson:"full_name"`
	Role             string `bson:"role"`
	CreatedAt        int64  `bson:"created_at"`
}

func toDoc(i *domain.Identity) userDoc {
	return userDoc{
		ID:               i.ID,
		Username:         i.Username,
		PasswordVerifier: i.PasswordVerifier,
		FullName:         i.FullName,
		Role:             i.Role,
		CreatedAt:        i.CreatedAt.Unix(),
	}
}

func (d userDoc) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:               d.ID,
		Username:         d.Username,
		PasswordVerifier: d.PasswordVerifier,
		FullName:         d.FullName,
		Role:             d.Role,
		CreatedAt:        time.Unix(d.CreatedAt, 0).UTC(),
	}
}

func (r *UserRepository) Insert(ctx context.Context, identity *domain.Identity) error {
	_, err := r.coll.InsertOne(ctx, toDoc(identity))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.Identity, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.Identity, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return n > 0, nil
}
