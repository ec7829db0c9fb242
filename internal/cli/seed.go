package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/mcoot/mysquad-go/internal/dependencies/random"
)

var (
	seedFirstNames = []string{
		"Liam", "Noah", "Oliver", "Elijah", "James", "Mateo", "Lucas",
		"Levi", "Ezra", "Luca", "Kai", "Hugo", "Marco", "Diego", "Yusuf",
	}
	seedLastNames = []string{
		"Smith", "Garcia", "Muller", "Silva", "Rossi", "Kim", "Tanaka",
		"Nguyen", "Kowalski", "Jensen", "Okafor", "Mensah", "Costa", "Novak",
	}
	seedCities = []string{
		"Riverside", "Lakeside", "Northgate", "Southport", "Westfield",
		"Eastwood", "Hillcrest", "Brookdale",
	}
	seedPositions = []string{
		"Goalkeeper", "Center Back", "Full Back", "Defensive Midfielder",
		"Central Midfielder", "Winger", "Striker",
	}
	seedFeet = []string{"Right", "Left", "Both"}
)

func newPlayersSeedCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create randomly generated junior players",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireLogin(); err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1")
			}

			rng := random.New()
			out := NewOutput(cfg.Output)

			for i := 0; i < count; i++ {
				body := randomPlayerBody(rng)

				var created CreatedResult
				if err := client.Post("/api/v1/players", body, &created); err != nil {
					return fmt.Errorf("seeding player %d of %d: %w", i+1, count, err)
				}
				out.PrintMessage(fmt.Sprintf("Created %s (%s)", body["name"], created.ID))
			}

			out.PrintMessage(fmt.Sprintf("Seeded %d players", count))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of players to create")

	return cmd
}

func randomPlayerBody(rng random.Random) map[string]any {
	pick := func(options []string) string {
		return options[rng.Intn(len(options))]
	}
	// [min, max] inclusive
	between := func(min, max int) int {
		return min + rng.Intn(max-min+1)
	}
	// 1.0-10.0, one decimal place
	rating := func() float64 {
		return float64(between(10, 100)) / 10
	}

	matches := between(0, 40)

	return map[string]any{
		"name":     pick(seedFirstNames) + " " + pick(seedLastNames),
		"age":      between(8, 20),
		"position": pick(seedPositions),
		"team":     pick(seedCities) + " Academy",
		"physical": map[string]any{
			"height":        between(150, 200),
			"weight":        between(50, 90),
			"preferredFoot": pick(seedFeet),
		},
		"stats": map[string]any{
			"matchesPlayed": matches,
			"goalsScored":   between(0, int(math.Ceil(float64(matches)/2))),
			"assists":       between(0, 20),
			"skillRatings": map[string]any{
				"technical": rating(),
				"physical":  rating(),
				"tactical":  rating(),
				"mental":    rating(),
			},
		},
	}
}
