package roster

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/mysquad-go/internal/dependencies/clock"
	"github.com/mcoot/mysquad-go/internal/model"
	"github.com/mcoot/mysquad-go/internal/storage"
)

// Service manages the player roster
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// List returns every player in the roster
func (s *Service) List(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// Get returns a player by ID
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// Create adds a player to the roster. The owner is always the caller,
// regardless of what the input carries.
func (s *Service) Create(ctx context.Context, owner model.UserID, player *model.Player) (*model.Player, error) {
	player.ID = model.PlayerID(uuid.NewString())
	player.CreatedBy = owner
	player.CreatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// PlayerUpdate holds the fields of a partial player update. Nil fields
// are left unchanged; a supplied Physical or Stats replaces the stored
// object wholesale.
type PlayerUpdate struct {
	Name     *string
	Age      *int
	Position *model.Position
	Team     *string
	Physical *model.Physical
	Stats    *model.Stats
}

// Update applies a partial update to a player. Only the player's
// creator may update it.
func (s *Service) Update(ctx context.Context, caller model.UserID, id model.PlayerID, update PlayerUpdate) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	if player.CreatedBy != caller {
		return nil, model.ErrNotPlayerOwner
	}

	if update.Name != nil {
		player.Name = *update.Name
	}
	if update.Age != nil {
		player.Age = *update.Age
	}
	if update.Position != nil {
		player.Position = *update.Position
	}
	if update.Team != nil {
		player.Team = *update.Team
	}
	if update.Physical != nil {
		player.Physical = *update.Physical
	}
	if update.Stats != nil {
		player.Stats = *update.Stats
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// Delete removes a player. Only the player's creator may delete it.
func (s *Service) Delete(ctx context.Context, caller model.UserID, id model.PlayerID) error {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	if player.CreatedBy != caller {
		return model.ErrNotPlayerOwner
	}

	return s.storage.DeletePlayer(ctx, id)
}
