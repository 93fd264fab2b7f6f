package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamService covers team matching: team listings, driver profiles and the
// applications connecting the two.
type TeamService interface {
	// Teams
	ListTeams(ctx context.Context, filter *models.TeamFilter) ([]*models.Team, error)
	CreateTeam(ctx context.Context, ownerExternalID string, team *models.Team) (primitive.ObjectID, error)

	// Driver profiles
	UpsertDriverProfile(ctx context.Context, userExternalID string, profile *models.DriverProfile) (primitive.ObjectID, error)
	GetDriverProfile(ctx context.Context, userExternalID string) (*models.DriverProfile, error)

	// Applications
	ApplyToTeam(ctx context.Context, teamID primitive.ObjectID, driverExternalID string, application *models.TeamApplication) (primitive.ObjectID, error)
	ListTeamApplications(ctx context.Context, teamID primitive.ObjectID) ([]*models.TeamApplication, error)
}

type teamService struct {
	teamRepo interfaces.TeamRepository
	userRepo interfaces.UserRepository
	logger   *logger.Logger
}

func NewTeamService(teamRepo interfaces.TeamRepository, userRepo interfaces.UserRepository, log *logger.Logger) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		logger:   log,
	}
}

// ListTeams filters active teams in memory: case-insensitive substring on
// location, exact match on experience.
func (s *teamService) ListTeams(ctx context.Context, filter *models.TeamFilter) ([]*models.Team, error) {
	all, err := s.teamRepo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &models.TeamFilter{}
	}

	teams := make([]*models.Team, 0, len(all))
	for _, t := range all {
		if !t.IsActive {
			continue
		}
		if filter.Location != "" &&
			!strings.Contains(strings.ToLower(t.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.Experience != "" && t.Experience != filter.Experience {
			continue
		}
		teams = append(teams, t)
	}

	return teams, nil
}

func (s *teamService) CreateTeam(ctx context.Context, ownerExternalID string, team *models.Team) (primitive.ObjectID, error) {
	if _, err := s.userRepo.GetByExternalID(ctx, ownerExternalID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("team owner: %w", err)
	}

	team.OwnerID = ownerExternalID
	team.IsActive = true

	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(ownerExternalID).WithField("team_id", team.ID.Hex()).Info("Team created")

	return team.ID, nil
}

func (s *teamService) UpsertDriverProfile(ctx context.Context, userExternalID string, profile *models.DriverProfile) (primitive.ObjectID, error) {
	if _, err := s.userRepo.GetByExternalID(ctx, userExternalID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("driver: %w", err)
	}

	profile.UserID = userExternalID
	profile.IsActive = true

	existing, err := s.teamRepo.GetDriverProfileByUser(ctx, userExternalID)
	if err == nil {
		updates := map[string]interface{}{
			"bio":                  profile.Bio,
			"experience":           profile.Experience,
			"licenses":             profile.Licenses,
			"preferred_categories": profile.PreferredCategories,
			"availability":         profile.Availability,
			"location":             profile.Location,
			"contact_info":         profile.ContactInfo,
			"is_active":            true,
		}
		if err := s.teamRepo.UpdateDriverProfile(ctx, existing.ID, updates); err != nil {
			return primitive.NilObjectID, err
		}
		return existing.ID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return primitive.NilObjectID, err
	}

	if err := s.teamRepo.CreateDriverProfile(ctx, profile); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(userExternalID).Info("Driver profile created")

	return profile.ID, nil
}

func (s *teamService) GetDriverProfile(ctx context.Context, userExternalID string) (*models.DriverProfile, error) {
	return s.teamRepo.GetDriverProfileByUser(ctx, userExternalID)
}

func (s *teamService) ApplyToTeam(ctx context.Context, teamID primitive.ObjectID, driverExternalID string, application *models.TeamApplication) (primitive.ObjectID, error) {
	if _, err := s.userRepo.GetByExternalID(ctx, driverExternalID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("applicant: %w", err)
	}
	if _, err := s.teamRepo.GetTeamByID(ctx, teamID); err != nil {
		return primitive.NilObjectID, err
	}

	if existing, err := s.teamRepo.FindApplication(ctx, teamID, driverExternalID); err == nil {
		if existing.Status == models.ApplicationStatusPending {
			return primitive.NilObjectID, fmt.Errorf("team application: %w", ErrAlreadyExists)
		}
	} else if !errors.Is(err, ErrNotFound) {
		return primitive.NilObjectID, err
	}

	application.TeamID = teamID
	application.DriverID = driverExternalID
	application.Status = models.ApplicationStatusPending

	if err := s.teamRepo.CreateApplication(ctx, application); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(driverExternalID).WithField("team_id", teamID.Hex()).Info("Team application submitted")

	return application.ID, nil
}

func (s *teamService) ListTeamApplications(ctx context.Context, teamID primitive.ObjectID) ([]*models.TeamApplication, error) {
	return s.teamRepo.ListApplicationsByTeam(ctx, teamID)
}
