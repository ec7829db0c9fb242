package store

import (
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Players caches the roster list with derived filtered and sorted
// views. Fetches are not cancelled when a newer one starts; whichever
// response lands last wins.
type Players struct {
	client Doer

	mu      sync.RWMutex
	players []Player
	loading bool
}

// NewPlayers creates a player store
func NewPlayers(client Doer) *Players {
	return &Players{client: client}
}

// Fetch reloads the roster from the API. Overlapping fetches are not
// guarded against each other: every response overwrites the cache as
// it lands.
func (p *Players) Fetch() error {
	p.mu.Lock()
	p.loading = true
	p.mu.Unlock()

	var players []Player
	err := p.client.Do(http.MethodGet, "/api/v1/players", nil, &players)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = false
	if err != nil {
		return err
	}

	p.players = players
	return nil
}

// Get fetches a single player. Reads bypass the cache so stale
// entries never mask a deletion.
func (p *Players) Get(id string) (Player, error) {
	var player Player
	err := p.client.Do(http.MethodGet, "/api/v1/players/"+id, nil, &player)
	return player, err
}

// Create adds a player and refreshes the cached roster
func (p *Players) Create(body any) (Player, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := p.client.Do(http.MethodPost, "/api/v1/players", body, &created); err != nil {
		return Player{}, err
	}
	if err := p.Fetch(); err != nil {
		return Player{}, err
	}
	return p.Get(created.ID)
}

// Update modifies a player and refreshes the cached roster
func (p *Players) Update(id string, body any) (Player, error) {
	var player Player
	if err := p.client.Do(http.MethodPut, "/api/v1/players/"+id, body, &player); err != nil {
		return Player{}, err
	}
	if err := p.Fetch(); err != nil {
		return Player{}, err
	}
	return player, nil
}

// Delete removes a player and refreshes the cached roster
func (p *Players) Delete(id string) (string, error) {
	var result struct {
		Message string `json:"message"`
	}
	if err := p.client.Do(http.MethodDelete, "/api/v1/players/"+id, nil, &result); err != nil {
		return "", err
	}
	if err := p.Fetch(); err != nil {
		return "", err
	}
	return result.Message, nil
}

// IsLoading reports whether a fetch is in flight
func (p *Players) IsLoading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// All returns the cached roster
func (p *Players) All() []Player {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Player, len(p.players))
	copy(out, p.players)
	return out
}

// Filter selects players from the cached roster. Empty fields match
// everything; team and query are case-insensitive substring matches,
// query against the player name.
type Filter struct {
	Position string
	Team     string
	Query    string
}

// Filtered returns the cached players matching a filter
func (p *Players) Filtered(f Filter) []Player {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []Player
	for _, player := range p.players {
		if f.Position != "" && player.Position != f.Position {
			continue
		}
		if f.Team != "" && !strings.Contains(strings.ToLower(player.Team), strings.ToLower(f.Team)) {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(player.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, player)
	}
	return out
}

// Sort fields
const (
	SortByName    = "name"
	SortByAge     = "age"
	SortByTeam    = "team"
	SortByMatches = "matches"
	SortByGoals   = "goals"
)

// Sorted returns players ordered by the given field. Unknown fields
// fall back to name order. Ties keep the input order.
func Sorted(players []Player, field string, descending bool) []Player {
	out := make([]Player, len(players))
	copy(out, players)

	less := func(a, b Player) bool {
		switch field {
		case SortByAge:
			return a.Age < b.Age
		case SortByTeam:
			return a.Team < b.Team
		case SortByMatches:
			return a.Stats.MatchesPlayed < b.Stats.MatchesPlayed
		case SortByGoals:
			return a.Stats.GoalsScored < b.Stats.GoalsScored
		default:
			return a.Name < b.Name
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}
