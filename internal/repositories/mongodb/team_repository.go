package mongodb

import (
	"context"
	"fmt"
	"time"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type teamRepository struct {
	teamsCollection        *mongo.Collection
	profilesCollection     *mongo.Collection
	applicationsCollection *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) interfaces.TeamRepository {
	return &teamRepository{
		teamsCollection:        db.Collection("teams"),
		profilesCollection:     db.Collection("driver_profiles"),
		applicationsCollection: db.Collection("team_applications"),
	}
}

// Teams
func (r *teamRepository) CreateTeam(ctx context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()

	_, err := r.teamsCollection.InsertOne(ctx, team)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	return nil
}

func (r *teamRepository) GetTeamByID(ctx context.Context, id primitive.ObjectID) (*models.Team, error) {
	var team models.Team
	err := r.teamsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("team %s: %w", id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &team, nil
}

func (r *teamRepository) ListTeams(ctx context.Context) ([]*models.Team, error) {
	cursor, err := r.teamsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	defer cursor.Close(ctx)

	var teams []*models.Team
	for cursor.Next(ctx) {
		var team models.Team
		if err := cursor.Decode(&team); err != nil {
			return nil, fmt.Errorf("failed to decode team: %w", err)
		}
		teams = append(teams, &team)
	}

	return teams, cursor.Err()
}

// Driver profiles
func (r *teamRepository) CreateDriverProfile(ctx context.Context, profile *models.DriverProfile) error {
	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now()

	_, err := r.profilesCollection.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("driver profile for %s: %w", profile.UserID, services.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create driver profile: %w", err)
	}

	return nil
}

func (r *teamRepository) GetDriverProfileByUser(ctx context.Context, userExternalID string) (*models.DriverProfile, error) {
	var profile models.DriverProfile
	err := r.profilesCollection.FindOne(ctx, bson.M{"user_id": userExternalID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("driver profile for %s: %w", userExternalID, services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get driver profile: %w", err)
	}

	return &profile, nil
}

func (r *teamRepository) UpdateDriverProfile(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.profilesCollection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update driver profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("driver profile %s: %w", id.Hex(), services.ErrNotFound)
	}

	return nil
}

// Team applications
func (r *teamRepository) CreateApplication(ctx context.Context, application *models.TeamApplication) error {
	application.ID = primitive.NewObjectID()
	application.CreatedAt = time.Now()

	_, err := r.applicationsCollection.InsertOne(ctx, application)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("team application: %w", services.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create team application: %w", err)
	}

	return nil
}

func (r *teamRepository) FindApplication(ctx context.Context, teamID primitive.ObjectID, driverExternalID string) (*models.TeamApplication, error) {
	// Latest application decides whether a re-apply is allowed.
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var application models.TeamApplication
	err := r.applicationsCollection.FindOne(ctx, bson.M{
		"team_id":   teamID,
		"driver_id": driverExternalID,
	}, opts).Decode(&application)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("team application: %w", services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find team application: %w", err)
	}

	return &application, nil
}

func (r *teamRepository) ListApplicationsByTeam(ctx context.Context, teamID primitive.ObjectID) ([]*models.TeamApplication, error) {
	cursor, err := r.applicationsCollection.Find(ctx, bson.M{"team_id": teamID})
	if err != nil {
		return nil, fmt.Errorf("failed to find team applications: %w", err)
	}
	defer cursor.Close(ctx)

	var applications []*models.TeamApplication
	for cursor.Next(ctx) {
		var application models.TeamApplication
		if err := cursor.Decode(&application); err != nil {
			return nil, fmt.Errorf("failed to decode team application: %w", err)
		}
		applications = append(applications, &application)
	}

	return applications, cursor.Err()
}
