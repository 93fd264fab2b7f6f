package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultFeaturedLimit = 3

// CatalogService covers the rentable-vehicle catalog and the tracks vehicles
// are located at.
type CatalogService interface {
	// Vehicles
	ListVehicles(ctx context.Context, filter *models.VehicleFilter) ([]*models.Vehicle, error)
	GetVehicleByID(ctx context.Context, id primitive.ObjectID) (*models.EnrichedVehicle, error)
	GetFeatured(ctx context.Context, limit int) ([]*models.EnrichedVehicle, error)
	CreateVehicle(ctx context.Context, ownerExternalID string, vehicle *models.Vehicle) (primitive.ObjectID, error)

	// Tracks
	ListTracks(ctx context.Context) ([]*models.Track, error)
	GetTrack(ctx context.Context, id primitive.ObjectID) (*models.Track, error)
	CreateTrack(ctx context.Context, track *models.Track) (primitive.ObjectID, error)
	UpdateTrack(ctx context.Context, id primitive.ObjectID, track *models.Track) error
	DeactivateTrack(ctx context.Context, id primitive.ObjectID) error
}

type catalogService struct {
	vehicleRepo interfaces.VehicleRepository
	trackRepo   interfaces.TrackRepository
	userRepo    interfaces.UserRepository
	logger      *logger.Logger
}

func NewCatalogService(
	vehicleRepo interfaces.VehicleRepository,
	trackRepo interfaces.TrackRepository,
	userRepo interfaces.UserRepository,
	log *logger.Logger,
) CatalogService {
	return &catalogService{
		vehicleRepo: vehicleRepo,
		trackRepo:   trackRepo,
		userRepo:    userRepo,
		logger:      log,
	}
}

// ListVehicles scans active vehicles and applies the filter conjunction in
// memory, preserving store-native insertion order. The track_id filter field
// is accepted for API compatibility with the explore page but not applied.
func (s *catalogService) ListVehicles(ctx context.Context, filter *models.VehicleFilter) ([]*models.Vehicle, error) {
	all, err := s.vehicleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &models.VehicleFilter{}
	}

	vehicles := make([]*models.Vehicle, 0, len(all))
	for _, v := range all {
		if !v.IsActive {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(v.Make), needle) &&
				!strings.Contains(strings.ToLower(v.Model), needle) {
				continue
			}
		}
		if filter.Make != "" && v.Make != filter.Make {
			continue
		}
		if filter.MinPrice != nil && v.DailyRate < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && v.DailyRate > *filter.MaxPrice {
			continue
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

func (s *catalogService) GetVehicleByID(ctx context.Context, id primitive.ObjectID) (*models.EnrichedVehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.enrichVehicle(ctx, vehicle), nil
}

func (s *catalogService) GetFeatured(ctx context.Context, limit int) ([]*models.EnrichedVehicle, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}

	all, err := s.vehicleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*models.Vehicle, 0, len(all))
	for _, v := range all {
		if v.IsActive {
			active = append(active, v)
		}
	}

	// Newest first
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	if len(active) > limit {
		active = active[:limit]
	}

	featured := make([]*models.EnrichedVehicle, 0, len(active))
	for _, v := range active {
		featured = append(featured, s.enrichVehicle(ctx, v))
	}

	return featured, nil
}

func (s *catalogService) CreateVehicle(ctx context.Context, ownerExternalID string, vehicle *models.Vehicle) (primitive.ObjectID, error) {
	if _, err := s.userRepo.GetByExternalID(ctx, ownerExternalID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("vehicle owner: %w", err)
	}

	vehicle.OwnerID = ownerExternalID
	vehicle.IsActive = true

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(ownerExternalID).WithVehicleID(vehicle.ID).Info("Vehicle listed")

	return vehicle.ID, nil
}

// enrichVehicle joins owner and track; either may be missing and comes back
// nil rather than failing the lookup.
func (s *catalogService) enrichVehicle(ctx context.Context, vehicle *models.Vehicle) *models.EnrichedVehicle {
	enriched := &models.EnrichedVehicle{Vehicle: *vehicle}

	if owner, err := s.userRepo.GetByExternalID(ctx, vehicle.OwnerID); err == nil {
		enriched.Owner = owner
	} else if !errors.Is(err, ErrNotFound) {
		s.logger.WithError(err).WithVehicleID(vehicle.ID).Warn("Failed to resolve vehicle owner")
	}

	if track, err := s.trackRepo.GetByID(ctx, vehicle.TrackID); err == nil {
		enriched.Track = track
	} else if !errors.Is(err, ErrNotFound) {
		s.logger.WithError(err).WithVehicleID(vehicle.ID).Warn("Failed to resolve vehicle track")
	}

	return enriched
}

// Tracks

func (s *catalogService) ListTracks(ctx context.Context) ([]*models.Track, error) {
	return s.trackRepo.ListActive(ctx)
}

func (s *catalogService) GetTrack(ctx context.Context, id primitive.ObjectID) (*models.Track, error) {
	return s.trackRepo.GetByID(ctx, id)
}

func (s *catalogService) CreateTrack(ctx context.Context, track *models.Track) (primitive.ObjectID, error) {
	track.IsActive = true

	if err := s.trackRepo.Create(ctx, track); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithField("track_id", track.ID.Hex()).Info("Track created")

	return track.ID, nil
}

func (s *catalogService) UpdateTrack(ctx context.Context, id primitive.ObjectID, track *models.Track) error {
	updates := map[string]interface{}{
		"name":        track.Name,
		"location":    track.Location,
		"description": track.Description,
		"image_url":   track.ImageURL,
	}

	return s.trackRepo.Update(ctx, id, updates)
}

// DeactivateTrack is a soft patch; tracks are never hard-deleted.
func (s *catalogService) DeactivateTrack(ctx context.Context, id primitive.ObjectID) error {
	return s.trackRepo.Update(ctx, id, map[string]interface{}{"is_active": false})
}
