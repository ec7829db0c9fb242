package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/mysquad-go/internal/api/request"
	"github.com/mcoot/mysquad-go/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Credentials validates an email/password pair for register and login
func Credentials(email, password string) []FieldError {
	return Apply([]Rule{
		{Field: "email", Check: func() string {
			if !emailPattern.MatchString(strings.TrimSpace(email)) {
				return "Please enter a valid email"
			}
			return ""
		}},
		{Field: "password", Check: func() string {
			return passwordMessage(password)
		}},
	})
}

// bcrypt rejects inputs over 72 bytes, so anything longer has to fail
// validation rather than surface as a hashing error
const maxPasswordBytes = 72

func passwordMessage(password string) string {
	if len(strings.TrimSpace(password)) < 6 {
		return "Password should have a minimum of 6 chars"
	}
	if len(password) > maxPasswordBytes {
		return "Password should have a maximum of 72 chars"
	}
	return ""
}

// UserUpdate validates an account update, checking only supplied fields
func UserUpdate(req request.UpdateUserRequest) []FieldError {
	var rules []Rule
	if req.Email != nil {
		rules = append(rules, Rule{Field: "email", Check: func() string {
			if !emailPattern.MatchString(strings.TrimSpace(*req.Email)) {
				return "Please enter a valid email"
			}
			return ""
		}})
	}
	if req.Password != nil {
		rules = append(rules, Rule{Field: "password", Check: func() string {
			return passwordMessage(*req.Password)
		}})
	}
	return Apply(rules)
}

// NewPlayer validates a player creation payload. Every top-level field
// and every nested physical/stats field is required.
func NewPlayer(p request.PlayerPayload) []FieldError {
	var errs []FieldError

	errs = append(errs, nameRules(p.Name, true)...)
	errs = append(errs, ageRules(p.Age, true)...)
	errs = append(errs, positionRules(p.Position, true)...)
	errs = append(errs, teamRules(p.Team, true)...)
	errs = append(errs, physicalRules(p.Physical, true)...)
	errs = append(errs, statsRules(p.Stats, true)...)

	return errs
}

// PlayerUpdate validates a partial player update. Only supplied fields
// are checked, but a supplied physical or stats object replaces the
// stored one wholesale, so all of its sub-fields become required.
func PlayerUpdate(p request.PlayerPayload) []FieldError {
	var errs []FieldError

	if p.Name != nil {
		errs = append(errs, nameRules(p.Name, false)...)
	}
	if p.Age != nil {
		errs = append(errs, ageRules(p.Age, false)...)
	}
	if p.Position != nil {
		errs = append(errs, positionRules(p.Position, false)...)
	}
	if p.Team != nil {
		errs = append(errs, teamRules(p.Team, false)...)
	}
	if p.Physical != nil {
		errs = append(errs, physicalRules(p.Physical, false)...)
	}
	if p.Stats != nil {
		errs = append(errs, statsRules(p.Stats, false)...)
	}

	return errs
}

func nameRules(name *string, required bool) []FieldError {
	return Apply([]Rule{{Field: "name", Check: func() string {
		if name == nil || strings.TrimSpace(*name) == "" {
			if required {
				return "Name is required"
			}
			return "Name must be between 1 and 100 characters"
		}
		if utf8.RuneCountInString(strings.TrimSpace(*name)) > 100 {
			return "Name must be between 1 and 100 characters"
		}
		return ""
	}}})
}

func ageRules(age *request.Number, required bool) []FieldError {
	return Apply([]Rule{{Field: "age", Check: func() string {
		if age == nil {
			if required {
				return "Age is required"
			}
			return ""
		}
		if !age.IsInt() || age.Int() < 8 || age.Int() > 20 {
			return "Age must be a valid number (8-20 years)"
		}
		return ""
	}}})
}

func positionRules(position *string, required bool) []FieldError {
	return Apply([]Rule{{Field: "position", Check: func() string {
		if position == nil || *position == "" {
			if required {
				return "Position is required"
			}
			return positionMessage()
		}
		if !model.ValidPosition(model.Position(*position)) {
			return positionMessage()
		}
		return ""
	}}})
}

func positionMessage() string {
	names := make([]string, len(model.Positions))
	for i, p := range model.Positions {
		names[i] = string(p)
	}
	return fmt.Sprintf("Position must be one of: %s", strings.Join(names, ", "))
}

func teamRules(team *string, required bool) []FieldError {
	return Apply([]Rule{{Field: "team", Check: func() string {
		if team == nil || strings.TrimSpace(*team) == "" {
			if required {
				return `Team is required (use "No team" if player has no team)`
			}
			return "Team name must be at least 2 characters"
		}
		if utf8.RuneCountInString(strings.TrimSpace(*team)) < 2 {
			return "Team name must be at least 2 characters"
		}
		return ""
	}}})
}

func physicalRules(physical *request.PhysicalPayload, required bool) []FieldError {
	if physical == nil {
		if !required {
			return nil
		}
		physical = &request.PhysicalPayload{}
	}

	return Apply([]Rule{
		{Field: "physical.height", Check: func() string {
			h := physical.Height
			if h == nil || !h.IsInt() || h.Int() < 100 || h.Int() > 220 {
				return "Height must be between 100 and 220 cm"
			}
			return ""
		}},
		{Field: "physical.weight", Check: func() string {
			w := physical.Weight
			if w == nil || !w.IsInt() || w.Int() < 30 || w.Int() > 150 {
				return "Weight must be between 30 and 150 kg"
			}
			return ""
		}},
		{Field: "physical.preferredFoot", Check: func() string {
			f := physical.PreferredFoot
			if f == nil || !model.ValidFoot(model.Foot(*f)) {
				names := make([]string, len(model.Feet))
				for i, foot := range model.Feet {
					names[i] = string(foot)
				}
				return fmt.Sprintf("Preferred foot must be one of: %s", strings.Join(names, ", "))
			}
			return ""
		}},
	})
}

// skillRatingNames are the recognized rating keys; anything else is
// passed through unvalidated
var skillRatingNames = []struct {
	key   string
	label string
}{
	{"technical", "Technical"},
	{"physical", "Physical"},
	{"tactical", "Tactical"},
	{"mental", "Mental"},
}

func statsRules(stats *request.StatsPayload, required bool) []FieldError {
	if stats == nil {
		if !required {
			return nil
		}
		stats = &request.StatsPayload{}
	}

	counter := func(field, label string, value *request.Number) Rule {
		return Rule{Field: field, Check: func() string {
			if value == nil || !value.IsInt() || value.Int() < 0 {
				return fmt.Sprintf("%s must be a positive number", label)
			}
			return ""
		}}
	}

	rules := []Rule{
		counter("stats.matchesPlayed", "Matches played", stats.MatchesPlayed),
		counter("stats.goalsScored", "Goals scored", stats.GoalsScored),
		counter("stats.assists", "Assists", stats.Assists),
	}

	for _, name := range skillRatingNames {
		rating, ok := stats.SkillRatings[name.key]
		if !ok {
			continue
		}
		label := name.label
		rules = append(rules, Rule{
			Field: "stats.skillRatings." + name.key,
			Check: func() string {
				if rating.Float() < 1 || rating.Float() > 10 {
					return fmt.Sprintf("%s rating must be between 1 and 10", label)
				}
				return ""
			},
		})
	}

	return Apply(rules)
}
