package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mcoot/mysquad-go/internal/cli/store"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case store.AuthResult:
		o.printAuthResult(v)
	case User:
		o.printUser(v)
	case store.Player:
		o.printPlayer(v)
	case []store.Player:
		o.printPlayerList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreatedResult is the API response for a creation
type CreatedResult struct {
	ID string `json:"id"`
}

// MessageResult is a plain confirmation from the API
type MessageResult struct {
	Message string `json:"message"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a store.AuthResult) {
	if a.Message != "" {
		fmt.Println(a.Message)
	}
	fmt.Printf("User: %s (%s)\n", a.User.Email, a.User.ID)
	fmt.Printf("Token: %s\n", a.Token)
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Name, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	if u.CreatedAt != "" {
		fmt.Printf("Created: %s\n", u.CreatedAt)
	}
}

func (o *Output) printPlayer(p store.Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Age: %d\n", p.Age)
	fmt.Printf("Position: %s\n", p.Position)
	fmt.Printf("Team: %s\n", p.Team)
	fmt.Printf("Physical: %dcm, %dkg, %s-footed\n",
		p.Physical.Height, p.Physical.Weight, strings.ToLower(p.Physical.PreferredFoot))
	fmt.Printf("Stats: %d matches, %d goals, %d assists\n",
		p.Stats.MatchesPlayed, p.Stats.GoalsScored, p.Stats.Assists)

	if len(p.Stats.SkillRatings) > 0 {
		keys := make([]string, 0, len(p.Stats.SkillRatings))
		for k := range p.Stats.SkillRatings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s %.1f", k, p.Stats.SkillRatings[k])
		}
		fmt.Printf("Ratings: %s\n", strings.Join(parts, ", "))
	}

	fmt.Printf("Owner: %s\n", p.CreatedBy)
}

func (o *Output) printPlayerList(players []store.Player) {
	if len(players) == 0 {
		fmt.Println("No players found")
		return
	}

	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  %-36s %-20s age %-3d %-22s %s\n",
			p.ID, p.Name, p.Age, p.Position, p.Team)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
