package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/mysquad-go/internal/dependencies/clock"
	"github.com/mcoot/mysquad-go/internal/model"
	"github.com/mcoot/mysquad-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmailExists        = errors.New("email already registered")
)

// Identity is the authenticated caller extracted from a verified token
type Identity struct {
	UserID model.UserID
	Email  string
}

// Service handles accounts and token-based authentication
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config
}

// Config holds configuration for the auth service
type Config struct {
	TokenSecret string
	TokenTTL    time.Duration
	BcryptCost  int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenTTL:   24 * time.Hour,
		BcryptCost: bcrypt.DefaultCost,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger, cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
		cfg:     cfg,
	}
}

// Register creates a new account and returns it with a signed token
func (s *Service) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = model.NormalizeEmail(email)

	// Check if the email is already taken
	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, "", ErrEmailExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	if name == "" {
		name = model.DefaultName(email)
	}

	now := s.clock.Now()
	user := &model.User{
		ID:           model.UserID(uuid.NewString()),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
// An unknown email and a wrong password both map to ErrInvalidCredentials
// so callers cannot probe which addresses are registered.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.storage.GetUserByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetUser returns an account by ID
func (s *Service) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// UserUpdate holds the fields of an account update. Nil fields are
// left unchanged.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
}

// UpdateUser applies a partial update to an account
func (s *Service) UpdateUser(ctx context.Context, id model.UserID, update UserUpdate) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		email := model.NormalizeEmail(*update.Email)
		if email != user.Email {
			// The new address must not belong to another account
			existing, err := s.storage.GetUserByEmail(ctx, email)
			if err == nil && existing.ID != id {
				return nil, ErrEmailExists
			}
			if err != nil && !errors.Is(err, model.ErrUserNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes an account and every player it created. Player
// deletion is best-effort: a failed player delete is logged and the
// account removal still proceeds.
func (s *Service) DeleteUser(ctx context.Context, id model.UserID) error {
	if _, err := s.storage.GetUser(ctx, id); err != nil {
		return err
	}

	players, err := s.storage.ListPlayersByOwner(ctx, id)
	if err != nil {
		s.logger.Error("failed to list players for account deletion",
			"user_id", id, "error", err)
	} else {
		for _, p := range players {
			if err := s.storage.DeletePlayer(ctx, p.ID); err != nil {
				s.logger.Error("failed to delete player during account deletion",
					"user_id", id, "player_id", p.ID, "error", err)
			}
		}
	}

	return s.storage.DeleteUser(ctx, id)
}
