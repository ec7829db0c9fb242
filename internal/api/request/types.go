package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the request body for updating an account.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// PhysicalPayload is the nested physical data of a player payload
type PhysicalPayload struct {
	Height        *Number `json:"height"`
	Weight        *Number `json:"weight"`
	PreferredFoot *string `json:"preferredFoot"`
}

// StatsPayload is the nested stats data of a player payload
type StatsPayload struct {
	MatchesPlayed *Number           `json:"matchesPlayed"`
	GoalsScored   *Number           `json:"goalsScored"`
	Assists       *Number           `json:"assists"`
	SkillRatings  map[string]Number `json:"skillRatings"`
}

// PlayerPayload is the request body for creating or updating a player.
// Creation requires every top-level field; updates may supply any
// subset, but a supplied physical or stats object replaces the stored
// one wholesale.
type PlayerPayload struct {
	Name     *string          `json:"name"`
	Age      *Number          `json:"age"`
	Position *string          `json:"position"`
	Team     *string          `json:"team"`
	Physical *PhysicalPayload `json:"physical"`
	Stats    *StatsPayload    `json:"stats"`
}
