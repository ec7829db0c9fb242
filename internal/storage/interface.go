package storage

import (
	"context"

	"github.com/mcoot/mysquad-go/internal/model"
)

// Storage defines the interface for data persistence over the two
// document collections: users and players. Save operations create or
// replace the whole document; partial-update merging happens in the
// services, which read, merge and save back.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	ListPlayersByOwner(ctx context.Context, owner model.UserID) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
}
