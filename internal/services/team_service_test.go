package services

import (
	"context"
	"testing"

	"renegaderace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTeamFixture() (TeamService, *fakeTeamRepo, *fakeUserRepo) {
	teamRepo := &fakeTeamRepo{}
	userRepo := newFakeUserRepo()
	svc := NewTeamService(teamRepo, userRepo, newTestLogger())
	return svc, teamRepo, userRepo
}

func seedTeam(svc TeamService, userRepo *fakeUserRepo, owner, name, location, experience string) primitive.ObjectID {
	if _, err := userRepo.GetByExternalID(context.Background(), owner); err != nil {
		seedUser(userRepo, owner, owner, models.UserTypeHost)
	}
	id, err := svc.CreateTeam(context.Background(), owner, &models.Team{
		Name:        name,
		Description: "desc",
		Location:    location,
		Experience:  experience,
		ContactInfo: "team@example.com",
	})
	if err != nil {
		panic(err)
	}
	return id
}

func TestListTeamsFilters(t *testing.T) {
	svc, _, userRepo := newTeamFixture()
	ctx := context.Background()

	seedTeam(svc, userRepo, "owner_1", "Apex Racing", "Austin, TX", "professional")
	seedTeam(svc, userRepo, "owner_1", "Grid Works", "Portland, OR", "amateur")
	seedTeam(svc, userRepo, "owner_2", "Lone Star GT", "Austin, TX", "amateur")

	all, err := svc.ListTeams(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	austin, err := svc.ListTeams(ctx, &models.TeamFilter{Location: "austin"})
	require.NoError(t, err)
	assert.Len(t, austin, 2, "location match is a case-insensitive substring")

	both, err := svc.ListTeams(ctx, &models.TeamFilter{Location: "austin", Experience: "amateur"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Lone Star GT", both[0].Name)
}

func TestCreateTeamStampsOwner(t *testing.T) {
	svc, teamRepo, userRepo := newTeamFixture()
	seedUser(userRepo, "owner_1", "Owner", models.UserTypeHost)

	id, err := svc.CreateTeam(context.Background(), "owner_1", &models.Team{
		Name: "Apex", Description: "d", Location: "TX", Experience: "pro", ContactInfo: "c",
		OwnerID: "spoofed",
	})
	require.NoError(t, err)

	team, err := teamRepo.GetTeamByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "owner_1", team.OwnerID)
	assert.True(t, team.IsActive)
}

func TestUpsertDriverProfileCreatesThenUpdates(t *testing.T) {
	svc, _, userRepo := newTeamFixture()
	ctx := context.Background()

	seedUser(userRepo, "driver_1", "Driver", models.UserTypeGuest)

	first, err := svc.UpsertDriverProfile(ctx, "driver_1", &models.DriverProfile{
		Bio: "Ten seasons of club racing", Experience: "advanced", Location: "Austin, TX", ContactInfo: "d@example.com",
	})
	require.NoError(t, err)

	second, err := svc.UpsertDriverProfile(ctx, "driver_1", &models.DriverProfile{
		Bio: "Updated bio", Experience: "professional", Location: "Austin, TX", ContactInfo: "d@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, first, second, "upsert keeps one profile per user")

	profile, err := svc.GetDriverProfile(ctx, "driver_1")
	require.NoError(t, err)
	assert.Equal(t, "Updated bio", profile.Bio)
	assert.Equal(t, "professional", profile.Experience)
}

func TestApplyToTeam(t *testing.T) {
	svc, _, userRepo := newTeamFixture()
	ctx := context.Background()

	teamID := seedTeam(svc, userRepo, "owner_1", "Apex", "TX", "pro")
	seedUser(userRepo, "driver_1", "Driver", models.UserTypeGuest)

	id, err := svc.ApplyToTeam(ctx, teamID, "driver_1", &models.TeamApplication{Message: "Let me drive"})
	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, id)

	applications, err := svc.ListTeamApplications(ctx, teamID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	assert.Equal(t, models.ApplicationStatusPending, applications[0].Status)
	assert.Equal(t, "driver_1", applications[0].DriverID)
}

func TestApplyToTeamDuplicatePendingRejected(t *testing.T) {
	svc, teamRepo, userRepo := newTeamFixture()
	ctx := context.Background()

	teamID := seedTeam(svc, userRepo, "owner_1", "Apex", "TX", "pro")
	seedUser(userRepo, "driver_1", "Driver", models.UserTypeGuest)

	first, err := svc.ApplyToTeam(ctx, teamID, "driver_1", &models.TeamApplication{Message: "first"})
	require.NoError(t, err)

	_, err = svc.ApplyToTeam(ctx, teamID, "driver_1", &models.TeamApplication{Message: "again"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// After a rejection the driver may apply again.
	for _, a := range teamRepo.applications {
		if a.ID == first {
			a.Status = models.ApplicationStatusRejected
		}
	}

	_, err = svc.ApplyToTeam(ctx, teamID, "driver_1", &models.TeamApplication{Message: "second chance"})
	assert.NoError(t, err)
}

func TestApplyToTeamUnknownTeamOrDriver(t *testing.T) {
	svc, _, userRepo := newTeamFixture()
	ctx := context.Background()

	_, err := svc.ApplyToTeam(ctx, primitive.NewObjectID(), "ghost", &models.TeamApplication{Message: "m"})
	assert.ErrorIs(t, err, ErrNotFound)

	seedUser(userRepo, "driver_1", "Driver", models.UserTypeGuest)
	_, err = svc.ApplyToTeam(ctx, primitive.NewObjectID(), "driver_1", &models.TeamApplication{Message: "m"})
	assert.ErrorIs(t, err, ErrNotFound)
}
