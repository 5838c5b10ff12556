// Package fixture is a YAML-based instance loader: it reads a referee and
// game roster into the domain model, in the teacher's internal/config
// style (a thin struct tree with yaml tags, loaded in one pass) rather
// than the original dashboard's ad-hoc CSV/Excel roundtrip. It is a
// convenience adapter, not part of the core's documented external
// interfaces (§6) — the core itself stays format-agnostic.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/derekprior/refsched/internal/domain"
)

// RefereeEntry is one referee row in the fixture file.
type RefereeEntry struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	Phone           string `yaml:"phone"`
	Experience      *int   `yaml:"experience"`
	Effort          *int   `yaml:"effort"`
	MaxHoursPerWeek *int   `yaml:"max_hours_per_week"`
	AssignedGames   []int  `yaml:"assigned_games"`

	// Availability is a flattened 0/1 vector indexed the same way
	// slotindex.AvailabilityIndex computes it: day-major, then time.
	Availability []int `yaml:"availability"`
}

// GameEntry is one game row in the fixture file.
type GameEntry struct {
	Number     int    `yaml:"number"`
	Day        string `yaml:"day"`
	Time       string `yaml:"time"`
	Location   string `yaml:"location"`
	Difficulty string `yaml:"difficulty"`
	MinRefs    int    `yaml:"min_refs"`
	MaxRefs    int    `yaml:"max_refs"`
}

// File is the on-disk fixture shape.
type File struct {
	Referees []RefereeEntry `yaml:"referees"`
	Games    []GameEntry    `yaml:"games"`
}

// Load reads a YAML fixture file and builds the domain.Referee and
// domain.Game collections the core operates on.
func Load(path string) ([]*domain.Referee, []*domain.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading fixture file: %w", err)
	}
	return Parse(data)
}

// Parse builds the domain collections from raw YAML bytes.
func Parse(data []byte) ([]*domain.Referee, []*domain.Game, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing fixture file: %w", err)
	}

	refs := make([]*domain.Referee, 0, len(file.Referees))
	for _, entry := range file.Referees {
		r := domain.NewReferee(entry.Name, entry.Email, entry.Phone, entry.Availability)
		if entry.Experience != nil {
			r.SetExperience(*entry.Experience)
		}
		if entry.Effort != nil {
			r.SetEffort(*entry.Effort)
		}
		if entry.MaxHoursPerWeek != nil {
			r.SetMaxHoursPerWeek(*entry.MaxHoursPerWeek)
		}
		for _, gameNumber := range entry.AssignedGames {
			r.AddAssignedGame(gameNumber)
		}
		refs = append(refs, r)
	}

	games := make([]*domain.Game, 0, len(file.Games))
	for _, entry := range file.Games {
		games = append(games, domain.NewGame(
			entry.Number, entry.Day, entry.Time, entry.Location, entry.Difficulty,
			entry.MinRefs, entry.MaxRefs,
		))
	}

	return refs, games, nil
}
