package services

import (
	"context"
	"errors"
	"fmt"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FavoriteService interface {
	// List joins each favorite to its vehicle (with track). Favorites whose
	// vehicle no longer exists are silently dropped, never an error.
	List(ctx context.Context, userExternalID string) ([]*models.FavoriteWithVehicle, error)

	// Add fails with ErrAlreadyExists when the pair is already bookmarked and
	// ErrNotFound when the vehicle does not exist.
	Add(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (primitive.ObjectID, error)

	// Remove fails with ErrNotFound when no matching favorite exists.
	Remove(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (primitive.ObjectID, error)

	IsFavorited(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (bool, error)
}

type favoriteService struct {
	favoriteRepo interfaces.FavoriteRepository
	vehicleRepo  interfaces.VehicleRepository
	trackRepo    interfaces.TrackRepository
	logger       *logger.Logger
}

func NewFavoriteService(
	favoriteRepo interfaces.FavoriteRepository,
	vehicleRepo interfaces.VehicleRepository,
	trackRepo interfaces.TrackRepository,
	log *logger.Logger,
) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		vehicleRepo:  vehicleRepo,
		trackRepo:    trackRepo,
		logger:       log,
	}
}

func (s *favoriteService) List(ctx context.Context, userExternalID string) ([]*models.FavoriteWithVehicle, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, userExternalID)
	if err != nil {
		return nil, err
	}

	result := make([]*models.FavoriteWithVehicle, 0, len(favorites))
	for _, f := range favorites {
		vehicle, err := s.vehicleRepo.GetByID(ctx, f.VehicleID)
		if err != nil {
			// A hard-deleted vehicle leaves the bookmark dangling; skip it.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}

		fv := &models.FavoriteVehicle{Vehicle: *vehicle}
		if track, err := s.trackRepo.GetByID(ctx, vehicle.TrackID); err == nil {
			fv.Track = track
		}

		result = append(result, &models.FavoriteWithVehicle{
			Favorite: *f,
			Vehicle:  fv,
		})
	}

	return result, nil
}

func (s *favoriteService) Add(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (primitive.ObjectID, error) {
	_, err := s.favoriteRepo.Find(ctx, userExternalID, vehicleID)
	if err == nil {
		return primitive.NilObjectID, fmt.Errorf("favorite: %w", ErrAlreadyExists)
	}
	if !errors.Is(err, ErrNotFound) {
		return primitive.NilObjectID, err
	}

	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return primitive.NilObjectID, err
	}

	favorite := &models.Favorite{
		UserID:    userExternalID,
		VehicleID: vehicleID,
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(userExternalID).WithVehicleID(vehicleID).Info("Vehicle favorited")

	return favorite.ID, nil
}

func (s *favoriteService) Remove(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (primitive.ObjectID, error) {
	favorite, err := s.favoriteRepo.Find(ctx, userExternalID, vehicleID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if err := s.favoriteRepo.Delete(ctx, favorite.ID); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(userExternalID).WithVehicleID(vehicleID).Info("Favorite removed")

	return favorite.ID, nil
}

func (s *favoriteService) IsFavorited(ctx context.Context, userExternalID string, vehicleID primitive.ObjectID) (bool, error) {
	_, err := s.favoriteRepo.Find(ctx, userExternalID, vehicleID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}
