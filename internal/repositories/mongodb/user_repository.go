package mongodb

import (
	"context"
	"fmt"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewUserRepository(db *mongo.Database, cache services.CacheService) interfaces.UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
		cache:      cache,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %s: %w", user.ExternalID, services.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.cacheUser(ctx, user)

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	// Try cache first
	if user := r.getUserFromCache(ctx, externalID); user != nil {
		return user, nil
	}

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", externalID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by external ID: %w", err)
	}

	r.cacheUser(ctx, &user)

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, externalID string, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"external_id": externalID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", externalID, services.ErrNotFound)
	}

	r.invalidateUserCache(ctx, externalID)

	return nil
}

// Cache operations
func (r *userRepository) cacheUser(ctx context.Context, user *models.User) {
	if r.cache != nil {
		key := fmt.Sprintf("user:%s", user.ExternalID)
		r.cache.Set(ctx, key, user, services.UserCacheTTL)
	}
}

func (r *userRepository) getUserFromCache(ctx context.Context, externalID string) *models.User {
	if r.cache == nil {
		return nil
	}

	key := fmt.Sprintf("user:%s", externalID)
	var user models.User
	if err := r.cache.Get(ctx, key, &user); err != nil {
		return nil
	}

	return &user
}

func (r *userRepository) invalidateUserCache(ctx context.Context, externalID string) {
	if r.cache != nil {
		r.cache.Delete(ctx, fmt.Sprintf("user:%s", externalID))
	}
}
