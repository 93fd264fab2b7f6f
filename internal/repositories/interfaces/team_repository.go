package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamRepository interface {
	// Teams
	CreateTeam(ctx context.Context, team *models.Team) error
	GetTeamByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error)

	// ListTeams returns every team; attribute filters are applied in memory
	// by the team service.
	ListTeams(ctx context.Context) ([]*models.Team, error)

	// Driver profiles (one per user)
	CreateDriverProfile(ctx context.Context, profile *models.DriverProfile) error
	GetDriverProfileByUser(ctx context.Context, userExternalID string) (*models.DriverProfile, error)
	UpdateDriverProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Team applications
	CreateApplication(ctx context.Context, application *models.TeamApplication) error
	FindApplication(ctx context.Context, teamID primitive.ObjectID, driverExternalID string) (*models.TeamApplication, error)
	ListApplicationsByTeam(ctx context.Context, teamID primitive.ObjectID) ([]*models.TeamApplication, error)
}
