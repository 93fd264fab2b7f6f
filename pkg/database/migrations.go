package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Migration struct {
	Version     int
	Description string
	Up          func(*mongo.Database) error
	Down        func(*mongo.Database) error
}

type Migrator struct {
	db         *mongo.Database
	migrations []Migration
}

func NewMigrator(db *mongo.Database) *Migrator {
	return &Migrator{
		db:         db,
		migrations: getMigrations(),
	}
}

func (m *Migrator) Up() error {
	err := m.createMigrationsCollection()
	if err != nil {
		return err
	}

	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for _, migration := range m.migrations {
		if migration.Version > currentVersion {
			log.Printf("Running migration %d: %s", migration.Version, migration.Description)

			err := migration.Up(m.db)
			if err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			err = m.updateVersion(migration.Version)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d completed successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) Down(targetVersion int) error {
	currentVersion, err := m.getCurrentVersion()
	if err != nil {
		return err
	}

	for i := len(m.migrations) - 1; i >= 0; i-- {
		migration := m.migrations[i]
		if migration.Version <= currentVersion && migration.Version > targetVersion {
			log.Printf("Reverting migration %d: %s", migration.Version, migration.Description)

			err := migration.Down(m.db)
			if err != nil {
				return fmt.Errorf("migration %d rollback failed: %w", migration.Version, err)
			}

			previousVersion := targetVersion
			if i > 0 {
				previousVersion = m.migrations[i-1].Version
			}

			err = m.updateVersion(previousVersion)
			if err != nil {
				return fmt.Errorf("failed to update migration version: %w", err)
			}

			log.Printf("Migration %d reverted successfully", migration.Version)
		}
	}

	return nil
}

func (m *Migrator) createMigrationsCollection() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collections, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}

	for _, name := range collections {
		if name == "migrations" {
			return nil
		}
	}

	return m.db.CreateCollection(ctx, "migrations")
}

func (m *Migrator) getCurrentVersion() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var result struct {
		Version int `bson:"version"`
	}

	err := m.db.Collection("migrations").FindOne(ctx, bson.D{}).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, err
	}

	return result.Version, nil
}

func (m *Migrator) updateVersion(version int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := m.db.Collection("migrations").ReplaceOne(
		ctx,
		bson.D{},
		bson.D{{Key: "version", Value: version}, {Key: "updated_at", Value: time.Now()}},
		options.Replace().SetUpsert(true),
	)

	return err
}

func getMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Create users collection with indexes",
			Up: func(db *mongo.Database) error {
				return createUsersIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("users").Drop(context.Background())
			},
		},
		{
			Version:     2,
			Description: "Create vehicles collection with indexes",
			Up: func(db *mongo.Database) error {
				return createVehiclesIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("vehicles").Drop(context.Background())
			},
		},
		{
			Version:     3,
			Description: "Create reservations collection with indexes",
			Up: func(db *mongo.Database) error {
				return createReservationsIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("reservations").Drop(context.Background())
			},
		},
		{
			Version:     4,
			Description: "Create favorites collection with unique pair index",
			Up: func(db *mongo.Database) error {
				return createFavoritesIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				return db.Collection("favorites").Drop(context.Background())
			},
		},
		{
			Version:     5,
			Description: "Create messaging collections with indexes",
			Up: func(db *mongo.Database) error {
				return createMessagingIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				if err := db.Collection("conversations").Drop(context.Background()); err != nil {
					return err
				}
				return db.Collection("messages").Drop(context.Background())
			},
		},
		{
			Version:     6,
			Description: "Create team matching collections with indexes",
			Up: func(db *mongo.Database) error {
				return createTeamIndexes(db)
			},
			Down: func(db *mongo.Database) error {
				for _, name := range []string{"teams", "driver_profiles", "team_applications"} {
					if err := db.Collection(name).Drop(context.Background()); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}

func createUsersIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("users")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_type", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createVehiclesIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("vehicles")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "track_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createReservationsIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("reservations")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "renter_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "vehicle_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createFavoritesIndexes(db *mongo.Database) error {
	ctx := context.Background()
	collection := db.Collection("favorites")

	// The unique pair index is what makes the service-level existence check
	// safe under concurrent adds.
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "vehicle_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func createMessagingIndexes(db *mongo.Database) error {
	ctx := context.Background()

	conversationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "renter_id", Value: 1},
				{Key: "owner_id", Value: 1},
				{Key: "vehicle_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "last_message_at", Value: -1}},
		},
	}
	if _, err := db.Collection("conversations").Indexes().CreateMany(ctx, conversationIndexes); err != nil {
		return err
	}

	messageIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "conversation_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
	}
	_, err := db.Collection("messages").Indexes().CreateMany(ctx, messageIndexes)
	return err
}

func createTeamIndexes(db *mongo.Database) error {
	ctx := context.Background()

	teamIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_active", Value: 1}},
		},
	}
	if _, err := db.Collection("teams").Indexes().CreateMany(ctx, teamIndexes); err != nil {
		return err
	}

	profileIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("driver_profiles").Indexes().CreateMany(ctx, profileIndexes); err != nil {
		return err
	}

	applicationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "team_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "driver_id", Value: 1}},
		},
	}
	_, err := db.Collection("team_applications").Indexes().CreateMany(ctx, applicationIndexes)
	return err
}
