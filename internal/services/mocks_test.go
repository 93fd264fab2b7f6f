package services

import (
	"context"
	"time"

	"renegaderace/internal/models"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.ErrorLevel,
		Format: "text",
		Output: "stderr",
	})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeUserRepo is an in-memory UserRepository keyed on external id.
type fakeUserRepo struct {
	users       map[string]*models.User
	updateCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ExternalID]; ok {
		return ErrAlreadyExists
	}
	user.ID = primitive.NewObjectID()
	clone := *user
	r.users[user.ExternalID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeUserRepo) GetByExternalID(_ context.Context, externalID string) (*models.User, error) {
	u, ok := r.users[externalID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) Update(_ context.Context, externalID string, updates map[string]interface{}) error {
	u, ok := r.users[externalID]
	if !ok {
		return ErrNotFound
	}
	r.updateCalls++
	for key, value := range updates {
		switch key {
		case "name":
			u.Name = value.(string)
		case "phone":
			u.Phone = value.(string)
		case "profile_image":
			u.ProfileImage = value.(string)
		case "user_type":
			u.UserType = value.(models.UserType)
		}
	}
	return nil
}

// fakeVehicleRepo preserves insertion order like the real collection scan.
type fakeVehicleRepo struct {
	vehicles []*models.Vehicle
}

func (r *fakeVehicleRepo) Create(_ context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	if vehicle.CreatedAt.IsZero() {
		vehicle.CreatedAt = time.Now()
	}
	clone := *vehicle
	r.vehicles = append(r.vehicles, &clone)
	return nil
}

func (r *fakeVehicleRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.ID == id {
			clone := *v
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeVehicleRepo) ListAll(_ context.Context) ([]*models.Vehicle, error) {
	out := make([]*models.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeVehicleRepo) ListByOwner(_ context.Context, ownerExternalID string) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if v.OwnerID == ownerExternalID {
			clone := *v
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	for _, v := range r.vehicles {
		if v.ID == id {
			if rate, ok := updates["daily_rate"]; ok {
				v.DailyRate = rate.(float64)
			}
			if active, ok := updates["is_active"]; ok {
				v.IsActive = active.(bool)
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeVehicleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, v := range r.vehicles {
		if v.ID == id {
			r.vehicles = append(r.vehicles[:i], r.vehicles[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeTrackRepo struct {
	tracks []*models.Track
}

func (r *fakeTrackRepo) Create(_ context.Context, track *models.Track) error {
	track.ID = primitive.NewObjectID()
	clone := *track
	r.tracks = append(r.tracks, &clone)
	return nil
}

func (r *fakeTrackRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Track, error) {
	for _, t := range r.tracks {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeTrackRepo) ListActive(_ context.Context) ([]*models.Track, error) {
	var out []*models.Track
	for _, t := range r.tracks {
		if t.IsActive {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTrackRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	for _, t := range r.tracks {
		if t.ID == id {
			for key, value := range updates {
				switch key {
				case "name":
					t.Name = value.(string)
				case "location":
					t.Location = value.(string)
				case "description":
					t.Description = value.(string)
				case "image_url":
					t.ImageURL = value.(string)
				case "is_active":
					t.IsActive = value.(bool)
				}
			}
			return nil
		}
	}
	return ErrNotFound
}

type fakeReservationRepo struct {
	reservations []*models.Reservation
}

func (r *fakeReservationRepo) Create(_ context.Context, reservation *models.Reservation) error {
	reservation.ID = primitive.NewObjectID()
	reservation.CreatedAt = time.Now()
	clone := *reservation
	r.reservations = append(r.reservations, &clone)
	return nil
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Reservation, error) {
	for _, res := range r.reservations {
		if res.ID == id {
			clone := *res
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeReservationRepo) ListByRenter(_ context.Context, renterExternalID string) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, res := range r.reservations {
		if res.RenterID == renterExternalID {
			clone := *res
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) ListByOwner(_ context.Context, ownerExternalID string) ([]*models.Reservation, error) {
	var out []*models.Reservation
	for _, res := range r.reservations {
		if res.OwnerID == ownerExternalID {
			clone := *res
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) Update(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	for _, res := range r.reservations {
		if res.ID == id {
			if status, ok := updates["status"]; ok {
				res.Status = status.(models.ReservationStatus)
			}
			if msg, ok := updates["owner_message"]; ok {
				res.OwnerMessage = msg.(string)
			}
			res.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

type fakeFavoriteRepo struct {
	favorites []*models.Favorite
}

func (r *fakeFavoriteRepo) Create(_ context.Context, favorite *models.Favorite) error {
	for _, f := range r.favorites {
		if f.UserID == favorite.UserID && f.VehicleID == favorite.VehicleID {
			return ErrAlreadyExists
		}
	}
	favorite.ID = primitive.NewObjectID()
	favorite.CreatedAt = time.Now()
	clone := *favorite
	r.favorites = append(r.favorites, &clone)
	return nil
}

func (r *fakeFavoriteRepo) Find(_ context.Context, userExternalID string, vehicleID primitive.ObjectID) (*models.Favorite, error) {
	for _, f := range r.favorites {
		if f.UserID == userExternalID && f.VehicleID == vehicleID {
			clone := *f
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userExternalID string) ([]*models.Favorite, error) {
	var out []*models.Favorite
	for _, f := range r.favorites {
		if f.UserID == userExternalID {
			clone := *f
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeFavoriteRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, f := range r.favorites {
		if f.ID == id {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeMessagingRepo mirrors the transactional message append: insert plus
// conversation patch as one step.
type fakeMessagingRepo struct {
	conversations []*models.Conversation
	messages      []*models.Message
	clock         time.Time
}

func (r *fakeMessagingRepo) now() time.Time {
	// Strictly increasing timestamps so ordering assertions are stable.
	if r.clock.IsZero() {
		r.clock = time.Now()
	}
	r.clock = r.clock.Add(time.Millisecond)
	return r.clock
}

func sameVehicleKey(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r *fakeMessagingRepo) CreateConversation(_ context.Context, conversation *models.Conversation) error {
	for _, c := range r.conversations {
		if c.RenterID == conversation.RenterID && c.OwnerID == conversation.OwnerID &&
			sameVehicleKey(c.VehicleID, conversation.VehicleID) {
			return ErrAlreadyExists
		}
	}
	conversation.ID = primitive.NewObjectID()
	conversation.CreatedAt = r.now()
	conversation.UpdatedAt = conversation.CreatedAt
	clone := *conversation
	r.conversations = append(r.conversations, &clone)
	return nil
}

func (r *fakeMessagingRepo) GetConversationByID(_ context.Context, id primitive.ObjectID) (*models.Conversation, error) {
	for _, c := range r.conversations {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeMessagingRepo) FindConversation(_ context.Context, renterID, ownerID string, vehicleID *primitive.ObjectID) (*models.Conversation, error) {
	for _, c := range r.conversations {
		if c.RenterID == renterID && c.OwnerID == ownerID && sameVehicleKey(c.VehicleID, vehicleID) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeMessagingRepo) ListConversationsByParticipant(_ context.Context, externalID string) ([]*models.Conversation, error) {
	var out []*models.Conversation
	for _, c := range r.conversations {
		if c.RenterID == externalID || c.OwnerID == externalID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeMessagingRepo) UpdateConversation(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	for _, c := range r.conversations {
		if c.ID == id {
			if v, ok := updates["unread_count_renter"]; ok {
				c.UnreadCountRenter = v.(int)
			}
			if v, ok := updates["unread_count_owner"]; ok {
				c.UnreadCountOwner = v.(int)
			}
			c.UpdatedAt = r.now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeMessagingRepo) CreateMessage(_ context.Context, message *models.Message, senderIsRenter bool) error {
	var conversation *models.Conversation
	for _, c := range r.conversations {
		if c.ID == message.ConversationID {
			conversation = c
			break
		}
	}
	if conversation == nil {
		return ErrNotFound
	}

	message.ID = primitive.NewObjectID()
	message.CreatedAt = r.now()
	clone := *message
	r.messages = append(r.messages, &clone)

	conversation.LastMessageAt = message.CreatedAt
	conversation.LastMessageText = message.Content
	conversation.LastMessageSenderID = message.SenderID
	conversation.UpdatedAt = message.CreatedAt
	if senderIsRenter {
		conversation.UnreadCountOwner++
	} else {
		conversation.UnreadCountRenter++
	}
	return nil
}

func (r *fakeMessagingRepo) ListMessages(_ context.Context, conversationID primitive.ObjectID) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeTeamRepo struct {
	teams        []*models.Team
	profiles     []*models.DriverProfile
	applications []*models.TeamApplication
}

func (r *fakeTeamRepo) CreateTeam(_ context.Context, team *models.Team) error {
	team.ID = primitive.NewObjectID()
	team.CreatedAt = time.Now()
	clone := *team
	r.teams = append(r.teams, &clone)
	return nil
}

func (r *fakeTeamRepo) GetTeamByID(_ context.Context, id primitive.ObjectID) (*models.Team, error) {
	for _, t := range r.teams {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeTeamRepo) ListTeams(_ context.Context) ([]*models.Team, error) {
	out := make([]*models.Team, 0, len(r.teams))
	for _, t := range r.teams {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeTeamRepo) CreateDriverProfile(_ context.Context, profile *models.DriverProfile) error {
	for _, p := range r.profiles {
		if p.UserID == profile.UserID {
			return ErrAlreadyExists
		}
	}
	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now()
	clone := *profile
	r.profiles = append(r.profiles, &clone)
	return nil
}

func (r *fakeTeamRepo) GetDriverProfileByUser(_ context.Context, userExternalID string) (*models.DriverProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userExternalID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeTeamRepo) UpdateDriverProfile(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	for _, p := range r.profiles {
		if p.ID == id {
			if v, ok := updates["bio"]; ok {
				p.Bio = v.(string)
			}
			if v, ok := updates["experience"]; ok {
				p.Experience = v.(string)
			}
			if v, ok := updates["availability"]; ok {
				p.Availability = v.(string)
			}
			if v, ok := updates["location"]; ok {
				p.Location = v.(string)
			}
			if v, ok := updates["contact_info"]; ok {
				p.ContactInfo = v.(string)
			}
			return nil
		}
	}
	return ErrNotFound
}

func (r *fakeTeamRepo) CreateApplication(_ context.Context, application *models.TeamApplication) error {
	application.ID = primitive.NewObjectID()
	application.CreatedAt = time.Now()
	clone := *application
	r.applications = append(r.applications, &clone)
	return nil
}

func (r *fakeTeamRepo) FindApplication(_ context.Context, teamID primitive.ObjectID, driverExternalID string) (*models.TeamApplication, error) {
	// Latest application wins, matching the store's descending scan.
	for i := len(r.applications) - 1; i >= 0; i-- {
		a := r.applications[i]
		if a.TeamID == teamID && a.DriverID == driverExternalID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeTeamRepo) ListApplicationsByTeam(_ context.Context, teamID primitive.ObjectID) ([]*models.TeamApplication, error) {
	var out []*models.TeamApplication
	for _, a := range r.applications {
		if a.TeamID == teamID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

// seedUser inserts a user directly into the fake directory.
func seedUser(repo *fakeUserRepo, externalID, name string, userType models.UserType) *models.User {
	user := &models.User{
		ID:         primitive.NewObjectID(),
		ExternalID: externalID,
		Name:       name,
		Email:      externalID + "@example.com",
		UserType:   userType,
	}
	repo.users[externalID] = user
	return user
}
