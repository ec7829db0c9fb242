package model

import "time"

// PlayerID uniquely identifies a roster player
type PlayerID string

// Position is a playing position on the pitch
type Position string

// The seven valid positions
const (
	PositionGoalkeeper          Position = "Goalkeeper"
	PositionCenterBack          Position = "Center Back"
	PositionFullBack            Position = "Full Back"
	PositionDefensiveMidfielder Position = "Defensive Midfielder"
	PositionCentralMidfielder   Position = "Central Midfielder"
	PositionWinger              Position = "Winger"
	PositionStriker             Position = "Striker"
)

// Positions lists every valid position, in display order
var Positions = []Position{
	PositionGoalkeeper,
	PositionCenterBack,
	PositionFullBack,
	PositionDefensiveMidfielder,
	PositionCentralMidfielder,
	PositionWinger,
	PositionStriker,
}

// ValidPosition reports whether p is one of the seven positions
func ValidPosition(p Position) bool {
	for _, v := range Positions {
		if p == v {
			return true
		}
	}
	return false
}

// Foot is a player's preferred foot
type Foot string

// Valid preferred feet
const (
	FootRight Foot = "Right"
	FootLeft  Foot = "Left"
	FootBoth  Foot = "Both"
)

// Feet lists every valid preferred foot
var Feet = []Foot{FootRight, FootLeft, FootBoth}

// ValidFoot reports whether f is a valid preferred foot
func ValidFoot(f Foot) bool {
	return f == FootRight || f == FootLeft || f == FootBoth
}

// Physical holds a player's physical data
type Physical struct {
	Height        int // cm, 100-220
	Weight        int // kg, 30-150
	PreferredFoot Foot
}

// Stats holds a player's playing statistics
type Stats struct {
	MatchesPlayed int
	GoalsScored   int
	Assists       int

	// SkillRatings maps a named skill (technical, physical, tactical,
	// mental, ...) to a rating between 1 and 10
	SkillRatings map[string]float64
}

// Player represents a roster entry. CreatedBy is set once at creation to
// the authenticated user that created the record and never changes.
type Player struct {
	ID       PlayerID
	Name     string
	Age      int // 8-20
	Position Position
	Team     string
	Physical Physical
	Stats    Stats

	CreatedBy UserID
	CreatedAt time.Time
}
