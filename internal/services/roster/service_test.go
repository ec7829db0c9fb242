package roster

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mysquad-go/internal/dependencies/mocks"
	"github.com/mcoot/mysquad-go/internal/model"
	"github.com/mcoot/mysquad-go/internal/storage/memory"
	"github.com/mcoot/mysquad-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) newPlayer() *model.Player {
	return &model.Player{
		Name:     "Leo",
		Age:      14,
		Position: model.PositionStriker,
		Team:     "Juniors FC",
		Physical: model.Physical{
			Height:        160,
			Weight:        50,
			PreferredFoot: model.FootLeft,
		},
		Stats: model.Stats{
			MatchesPlayed: 10,
			GoalsScored:   4,
			Assists:       2,
			SkillRatings:  map[string]float64{"passing": 7},
		},
	}
}

// Create tests

func (s *ServiceSuite) TestCreateAssignsIDAndOwner() {
	created, err := s.service.Create(s.ctx, "user-1", s.newPlayer())
	s.Require().NoError(err)

	s.NotEmpty(created.ID)
	s.Equal(model.UserID("user-1"), created.CreatedBy)
	s.Equal(s.clock.CurrentTime, created.CreatedAt)
}

func (s *ServiceSuite) TestCreateOverridesClaimedOwner() {
	player := s.newPlayer()
	player.CreatedBy = "someone-else"

	created, err := s.service.Create(s.ctx, "user-1", player)
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), created.CreatedBy)
}

func (s *ServiceSuite) TestCreatePersists() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	stored, err := s.storage.GetPlayer(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Leo", stored.Name)
}

// Get and List tests

func (s *ServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestListReturnsAllOwners() {
	_, _ = s.service.Create(s.ctx, "user-1", s.newPlayer())
	_, _ = s.service.Create(s.ctx, "user-2", s.newPlayer())

	players, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

// Update tests

func (s *ServiceSuite) TestUpdateScalarFields() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	name := "Leo Jr"
	age := 15
	updated, err := s.service.Update(s.ctx, "user-1", created.ID, PlayerUpdate{
		Name: &name,
		Age:  &age,
	})
	s.Require().NoError(err)
	s.Equal("Leo Jr", updated.Name)
	s.Equal(15, updated.Age)

	// Untouched fields survive
	s.Equal(model.PositionStriker, updated.Position)
	s.Equal("Juniors FC", updated.Team)
}

func (s *ServiceSuite) TestUpdateReplacesPhysicalWholesale() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	updated, err := s.service.Update(s.ctx, "user-1", created.ID, PlayerUpdate{
		Physical: &model.Physical{Height: 170},
	})
	s.Require().NoError(err)
	s.Equal(170, updated.Physical.Height)

	// The whole object is replaced, not merged
	s.Equal(0, updated.Physical.Weight)
	s.Equal(model.Foot(""), updated.Physical.PreferredFoot)
}

func (s *ServiceSuite) TestUpdateReplacesStatsWholesale() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	updated, err := s.service.Update(s.ctx, "user-1", created.ID, PlayerUpdate{
		Stats: &model.Stats{GoalsScored: 9},
	})
	s.Require().NoError(err)
	s.Equal(9, updated.Stats.GoalsScored)
	s.Equal(0, updated.Stats.MatchesPlayed)
	s.Nil(updated.Stats.SkillRatings)
}

func (s *ServiceSuite) TestUpdateByNonOwnerFails() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	name := "Hijacked"
	_, err := s.service.Update(s.ctx, "user-2", created.ID, PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrNotPlayerOwner)

	stored, _ := s.storage.GetPlayer(s.ctx, created.ID)
	s.Equal("Leo", stored.Name)
}

func (s *ServiceSuite) TestUpdateNotFound() {
	name := "Nobody"
	_, err := s.service.Update(s.ctx, "user-1", "nonexistent", PlayerUpdate{Name: &name})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdatePreservesOwnerAndCreatedAt() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())
	createdAt := created.CreatedAt

	s.clock.Advance(time.Hour)

	name := "Leo Jr"
	updated, err := s.service.Update(s.ctx, "user-1", created.ID, PlayerUpdate{Name: &name})
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), updated.CreatedBy)
	s.Equal(createdAt, updated.CreatedAt)
}

// Delete tests

func (s *ServiceSuite) TestDelete() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	err := s.service.Delete(s.ctx, "user-1", created.ID)
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, created.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeleteByNonOwnerFails() {
	created, _ := s.service.Create(s.ctx, "user-1", s.newPlayer())

	err := s.service.Delete(s.ctx, "user-2", created.ID)
	s.ErrorIs(err, model.ErrNotPlayerOwner)

	_, err = s.storage.GetPlayer(s.ctx, created.ID)
	s.NoError(err)
}

func (s *ServiceSuite) TestDeleteNotFound() {
	err := s.service.Delete(s.ctx, "user-1", "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
