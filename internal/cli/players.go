package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/mysquad-go/internal/cli/store"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())
	cmd.AddCommand(newPlayersCreateCmd())
	cmd.AddCommand(newPlayersUpdateCmd())
	cmd.AddCommand(newPlayersDeleteCmd())
	cmd.AddCommand(newPlayersSeedCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	var position, team, search, sortBy string
	var desc bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players with optional filtering and sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			players := store.NewPlayers(client)
			if err := players.Fetch(); err != nil {
				return err
			}

			filtered := players.Filtered(store.Filter{
				Position: position,
				Team:     team,
				Query:    search,
			})
			sorted := store.Sorted(filtered, sortBy, desc)

			NewOutput(cfg.Output).Print(sorted)
			return nil
		},
	}

	cmd.Flags().StringVar(&position, "position", "", "Filter by exact position")
	cmd.Flags().StringVar(&team, "team", "", "Filter by team (substring match)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name (substring match)")
	cmd.Flags().StringVar(&sortBy, "sort", store.SortByName, "Sort by: name, age, team, matches, goals")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")

	return cmd
}

func newPlayersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := store.NewPlayers(client).Get(args[0])
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(player)
			return nil
		},
	}
}

// playerFlags holds the flag values shared by create and update
type playerFlags struct {
	name     string
	age      int
	position string
	team     string
	height   int
	weight   int
	foot     string
	matches  int
	goals    int
	assists  int
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Player name")
	cmd.Flags().IntVar(&f.age, "age", 0, "Age (8-20)")
	cmd.Flags().StringVar(&f.position, "position", "", "Position")
	cmd.Flags().StringVar(&f.team, "team", "", "Team name")
	cmd.Flags().IntVar(&f.height, "height", 0, "Height in cm")
	cmd.Flags().IntVar(&f.weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&f.foot, "foot", "", "Preferred foot: Right, Left, Both")
	cmd.Flags().IntVar(&f.matches, "matches", 0, "Matches played")
	cmd.Flags().IntVar(&f.goals, "goals", 0, "Goals scored")
	cmd.Flags().IntVar(&f.assists, "assists", 0, "Assists")
}

func (f *playerFlags) body() map[string]any {
	return map[string]any{
		"name":     f.name,
		"age":      f.age,
		"position": f.position,
		"team":     f.team,
		"physical": map[string]any{
			"height":        f.height,
			"weight":        f.weight,
			"preferredFoot": f.foot,
		},
		"stats": map[string]any{
			"matchesPlayed": f.matches,
			"goalsScored":   f.goals,
			"assists":       f.assists,
		},
	}
}

// partialBody includes only the flags that were set. Physical and
// stats are sent whole whenever any of their fields changed, since the
// server replaces those objects wholesale.
func (f *playerFlags) partialBody(cmd *cobra.Command) map[string]any {
	body := map[string]any{}
	changed := cmd.Flags().Changed

	if changed("name") {
		body["name"] = f.name
	}
	if changed("age") {
		body["age"] = f.age
	}
	if changed("position") {
		body["position"] = f.position
	}
	if changed("team") {
		body["team"] = f.team
	}
	if changed("height") || changed("weight") || changed("foot") {
		body["physical"] = map[string]any{
			"height":        f.height,
			"weight":        f.weight,
			"preferredFoot": f.foot,
		}
	}
	if changed("matches") || changed("goals") || changed("assists") {
		body["stats"] = map[string]any{
			"matchesPlayed": f.matches,
			"goalsScored":   f.goals,
			"assists":       f.assists,
		}
	}
	return body
}

func newPlayersCreateCmd() *cobra.Command {
	flags := &playerFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := store.NewPlayers(client).Create(flags.body())
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(player)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("position")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("foot")

	return cmd
}

func newPlayersUpdateCmd() *cobra.Command {
	flags := &playerFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := flags.partialBody(cmd)
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			player, err := store.NewPlayers(client).Update(args[0], body)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(player)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newPlayersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player you created",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := store.NewPlayers(client).Delete(args[0])
			if err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(msg)
			return nil
		},
	}
}
