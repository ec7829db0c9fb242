package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mysquad-go/internal/api/request"
)

type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) fieldMsg(errs []FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Msg
		}
	}
	return ""
}

func str(v string) *string { return &v }

func num(v float64) *request.Number {
	n := request.Number(v)
	return &n
}

func ratings(v float64) map[string]request.Number {
	return map[string]request.Number{"technical": request.Number(v)}
}

func validPlayer() request.PlayerPayload {
	return request.PlayerPayload{
		Name:     str("Leo"),
		Age:      num(14),
		Position: str("Striker"),
		Team:     str("Juniors FC"),
		Physical: &request.PhysicalPayload{
			Height:        num(160),
			Weight:        num(50),
			PreferredFoot: str("Left"),
		},
		Stats: &request.StatsPayload{
			MatchesPlayed: num(10),
			GoalsScored:   num(4),
			Assists:       num(2),
		},
	}
}

// Credentials tests

func (s *ValidateSuite) TestCredentialsValid() {
	errs := Credentials("alice@example.com", "password123")
	s.Empty(errs)
}

func (s *ValidateSuite) TestCredentialsBadEmail() {
	errs := Credentials("not-an-email", "password123")
	s.Equal("Please enter a valid email", s.fieldMsg(errs, "email"))
}

func (s *ValidateSuite) TestCredentialsShortPassword() {
	errs := Credentials("alice@example.com", "12345")
	s.Equal("Password should have a minimum of 6 chars", s.fieldMsg(errs, "password"))
}

func (s *ValidateSuite) TestCredentialsOverlongPassword() {
	errs := Credentials("alice@example.com", strings.Repeat("a", 73))
	s.Equal("Password should have a maximum of 72 chars", s.fieldMsg(errs, "password"))
}

func (s *ValidateSuite) TestCredentialsPasswordAtByteLimit() {
	errs := Credentials("alice@example.com", strings.Repeat("a", 72))
	s.Empty(errs)
}

func (s *ValidateSuite) TestCredentialsBothInvalid() {
	errs := Credentials("", "")
	s.Len(errs, 2)
}

// UserUpdate tests

func (s *ValidateSuite) TestUserUpdateEmptyIsValid() {
	errs := UserUpdate(request.UpdateUserRequest{})
	s.Empty(errs)
}

func (s *ValidateSuite) TestUserUpdateBadEmail() {
	errs := UserUpdate(request.UpdateUserRequest{Email: str("nope")})
	s.Equal("Please enter a valid email", s.fieldMsg(errs, "email"))
}

func (s *ValidateSuite) TestUserUpdateShortPassword() {
	errs := UserUpdate(request.UpdateUserRequest{Password: str("123")})
	s.Equal("Password should have a minimum of 6 chars", s.fieldMsg(errs, "password"))
}

func (s *ValidateSuite) TestUserUpdateOverlongPassword() {
	errs := UserUpdate(request.UpdateUserRequest{Password: str(strings.Repeat("a", 73))})
	s.Equal("Password should have a maximum of 72 chars", s.fieldMsg(errs, "password"))
}

// NewPlayer tests

func (s *ValidateSuite) TestNewPlayerValid() {
	errs := NewPlayer(validPlayer())
	s.Empty(errs)
}

func (s *ValidateSuite) TestNewPlayerEmptyPayload() {
	errs := NewPlayer(request.PlayerPayload{})

	s.Equal("Name is required", s.fieldMsg(errs, "name"))
	s.Equal("Age is required", s.fieldMsg(errs, "age"))
	s.Equal("Position is required", s.fieldMsg(errs, "position"))
	s.Equal(`Team is required (use "No team" if player has no team)`, s.fieldMsg(errs, "team"))
	s.Equal("Height must be between 100 and 220 cm", s.fieldMsg(errs, "physical.height"))
	s.Equal("Weight must be between 30 and 150 kg", s.fieldMsg(errs, "physical.weight"))
	s.Equal("Matches played must be a positive number", s.fieldMsg(errs, "stats.matchesPlayed"))
}

func (s *ValidateSuite) TestNewPlayerMultibyteNameCountsRunes() {
	p := validPlayer()
	p.Name = str(strings.Repeat("田", 40))

	s.Empty(NewPlayer(p))

	p.Name = str(strings.Repeat("田", 101))
	s.Equal("Name must be between 1 and 100 characters", s.fieldMsg(NewPlayer(p), "name"))
}

func (s *ValidateSuite) TestNewPlayerMultibyteTeamCountsRunes() {
	p := validPlayer()
	p.Team = str("東京")

	s.Empty(NewPlayer(p))

	p.Team = str("東")
	s.Equal("Team name must be at least 2 characters", s.fieldMsg(NewPlayer(p), "team"))
}

func (s *ValidateSuite) TestNewPlayerAgeOutOfRange() {
	p := validPlayer()
	p.Age = num(25)
	errs := NewPlayer(p)
	s.Equal("Age must be a valid number (8-20 years)", s.fieldMsg(errs, "age"))
}

func (s *ValidateSuite) TestNewPlayerAgeNotInteger() {
	p := validPlayer()
	p.Age = num(14.5)
	errs := NewPlayer(p)
	s.Equal("Age must be a valid number (8-20 years)", s.fieldMsg(errs, "age"))
}

func (s *ValidateSuite) TestNewPlayerUnknownPosition() {
	p := validPlayer()
	p.Position = str("Sweeper")
	errs := NewPlayer(p)
	s.Contains(s.fieldMsg(errs, "position"), "Position must be one of: Goalkeeper")
}

func (s *ValidateSuite) TestNewPlayerShortTeam() {
	p := validPlayer()
	p.Team = str("X")
	errs := NewPlayer(p)
	s.Equal("Team name must be at least 2 characters", s.fieldMsg(errs, "team"))
}

func (s *ValidateSuite) TestNewPlayerBadFoot() {
	p := validPlayer()
	p.Physical.PreferredFoot = str("North")
	errs := NewPlayer(p)
	s.Equal("Preferred foot must be one of: Right, Left, Both", s.fieldMsg(errs, "physical.preferredFoot"))
}

func (s *ValidateSuite) TestNewPlayerNegativeStats() {
	p := validPlayer()
	p.Stats.GoalsScored = num(-1)
	errs := NewPlayer(p)
	s.Equal("Goals scored must be a positive number", s.fieldMsg(errs, "stats.goalsScored"))
}

func (s *ValidateSuite) TestNewPlayerSkillRatingOutOfRange() {
	p := validPlayer()
	p.Stats.SkillRatings = ratings(11)
	errs := NewPlayer(p)
	s.Equal("Technical rating must be between 1 and 10", s.fieldMsg(errs, "stats.skillRatings.technical"))
}

func (s *ValidateSuite) TestNewPlayerSkillRatingInRange() {
	p := validPlayer()
	p.Stats.SkillRatings = ratings(7.5)
	errs := NewPlayer(p)
	s.Empty(errs)
}

func (s *ValidateSuite) TestNewPlayerUnknownSkillRatingIgnored() {
	p := validPlayer()
	p.Stats.SkillRatings = map[string]request.Number{"dribbling": 99}
	errs := NewPlayer(p)
	s.Empty(errs)
}

// PlayerUpdate tests

func (s *ValidateSuite) TestPlayerUpdateEmptyIsValid() {
	errs := PlayerUpdate(request.PlayerPayload{})
	s.Empty(errs)
}

func (s *ValidateSuite) TestPlayerUpdateChecksOnlySuppliedFields() {
	errs := PlayerUpdate(request.PlayerPayload{Age: num(25)})
	s.Len(errs, 1)
	s.Equal("Age must be a valid number (8-20 years)", s.fieldMsg(errs, "age"))
}

func (s *ValidateSuite) TestPlayerUpdatePartialPhysicalFails() {
	// A supplied physical object replaces the stored one, so every
	// sub-field has to be present
	errs := PlayerUpdate(request.PlayerPayload{
		Physical: &request.PhysicalPayload{Height: num(170)},
	})
	s.Equal("Weight must be between 30 and 150 kg", s.fieldMsg(errs, "physical.weight"))
	s.Equal("Preferred foot must be one of: Right, Left, Both", s.fieldMsg(errs, "physical.preferredFoot"))
}

func (s *ValidateSuite) TestPlayerUpdateCompletePhysicalSucceeds() {
	errs := PlayerUpdate(request.PlayerPayload{
		Physical: &request.PhysicalPayload{
			Height:        num(170),
			Weight:        num(60),
			PreferredFoot: str("Both"),
		},
	})
	s.Empty(errs)
}
