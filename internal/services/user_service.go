package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService is the directory mapping identity-provider accounts to
// application user profiles.
type UserService interface {
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)

	// GetOrCreate materializes the user on first reference. Calling it again
	// with the same externalID returns the existing id without modification.
	GetOrCreate(ctx context.Context, externalID, name, email string, userType models.UserType) (primitive.ObjectID, error)

	// Update applies only the fields set on the patch; absent fields are left
	// untouched. Fails with ErrNotFound when no user matches externalID.
	Update(ctx context.Context, externalID string, patch *models.UserUpdate) (primitive.ObjectID, error)
}

type userService struct {
	userRepo interfaces.UserRepository
	logger   *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, log *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   log,
	}
}

func (s *userService) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	return s.userRepo.GetByExternalID(ctx, externalID)
}

func (s *userService) GetOrCreate(ctx context.Context, externalID, name, email string, userType models.UserType) (primitive.ObjectID, error) {
	existing, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return primitive.NilObjectID, fmt.Errorf("failed to look up user: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ExternalID:   externalID,
		Name:         name,
		Email:        email,
		UserType:     userType,
		TotalRentals: 0,
		MemberSince:  &now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a creation race; the winner's record is the answer.
		if errors.Is(err, ErrAlreadyExists) {
			winner, lookupErr := s.userRepo.GetByExternalID(ctx, externalID)
			if lookupErr != nil {
				return primitive.NilObjectID, lookupErr
			}
			return winner.ID, nil
		}
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(externalID).Info("User created")

	return user.ID, nil
}

func (s *userService) Update(ctx context.Context, externalID string, patch *models.UserUpdate) (primitive.ObjectID, error) {
	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	updates := make(map[string]interface{})
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.ProfileImage != nil {
		updates["profile_image"] = *patch.ProfileImage
	}
	if patch.UserType != nil {
		updates["user_type"] = *patch.UserType
	}

	if len(updates) == 0 {
		return user.ID, nil
	}

	if err := s.userRepo.Update(ctx, externalID, updates); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(externalID).Info("User profile updated")

	return user.ID, nil
}
