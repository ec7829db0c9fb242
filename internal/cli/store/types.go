package store

import "time"

// Doer performs API requests. Satisfied by the CLI HTTP client.
type Doer interface {
	Do(method, path string, body, result any) error
}

// Identity is the cached authenticated user
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResult is the API response for register and login
type AuthResult struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    Identity `json:"user"`
}

// Physical is a player's physical data
type Physical struct {
	Height        int    `json:"height"`
	Weight        int    `json:"weight"`
	PreferredFoot string `json:"preferredFoot"`
}

// Stats is a player's statistics
type Stats struct {
	MatchesPlayed int                `json:"matchesPlayed"`
	GoalsScored   int                `json:"goalsScored"`
	Assists       int                `json:"assists"`
	SkillRatings  map[string]float64 `json:"skillRatings"`
}

// Player is a roster entry as returned by the API
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
