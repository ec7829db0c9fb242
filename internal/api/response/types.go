package response

import (
	"time"

	"github.com/mcoot/mysquad-go/internal/model"
)

// AuthUser is the account summary returned by register and login
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is the response for register and login
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

// NewAuthResponse creates an AuthResponse for a user and token
func NewAuthResponse(message string, user *model.User, token string) AuthResponse {
	return AuthResponse{
		Message: message,
		Token:   token,
		User: AuthUser{
			ID:    string(user.ID),
			Email: user.Email,
		},
	}
}

// User represents an account in API responses. The password hash is
// never serialized.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Physical is the nested physical data of a player response
type Physical struct {
	Height        int    `json:"height"`
	Weight        int    `json:"weight"`
	PreferredFoot string `json:"preferredFoot"`
}

// Stats is the nested stats data of a player response
type Stats struct {
	MatchesPlayed int                `json:"matchesPlayed"`
	GoalsScored   int                `json:"goalsScored"`
	Assists       int                `json:"assists"`
	SkillRatings  map[string]float64 `json:"skillRatings"`
}

// Player represents a roster player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Position  string    `json:"position"`
	Team      string    `json:"team"`
	Physical  Physical  `json:"physical"`
	Stats     Stats     `json:"stats"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	ratings := p.Stats.SkillRatings
	if ratings == nil {
		ratings = map[string]float64{}
	}
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Age:      p.Age,
		Position: string(p.Position),
		Team:     p.Team,
		Physical: Physical{
			Height:        p.Physical.Height,
			Weight:        p.Physical.Weight,
			PreferredFoot: string(p.Physical.PreferredFoot),
		},
		Stats: Stats{
			MatchesPlayed: p.Stats.MatchesPlayed,
			GoalsScored:   p.Stats.GoalsScored,
			Assists:       p.Stats.Assists,
			SkillRatings:  ratings,
		},
		CreatedBy: string(p.CreatedBy),
		CreatedAt: p.CreatedAt,
	}
}

// PlayersFromModel converts a list of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerFromModel(p))
	}
	return out
}

// Created is the response for a successful creation
type Created struct {
	ID string `json:"id"`
}

// Message is a plain confirmation response
type Message struct {
	Message string `json:"message"`
}
