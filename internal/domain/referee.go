// Package domain holds the entity model the scheduling engine operates on:
// referees, games, and the derived notion of a time slot. Entities are
// created by external collaborators (parsers, UI) before the core runs;
// the core treats them as immutable except for the assignment fields
// (Game.Refs, Referee.OptimizedGames), which it owns for the duration of
// a single optimize() call.
package domain

// Referee is a person who can be assigned to officiate games.
type Referee struct {
	name         string
	email        string
	phone        string
	availability []int // 0/1, indexed by availability slot ordinal

	experience int // 1..5
	effort     int // 1..5

	maxHoursPerWeek int
	assignedGames   map[int]struct{} // manual pre-assignments, by game number

	optimizedGames []*Game // populated only by the solution writer
}

// NewReferee constructs a Referee with sane defaults for experience (3),
// effort (3), and max hours per week (20), mirroring the defaults the
// original scheduler used.
func NewReferee(name, email, phone string, availability []int) *Referee {
	avail := make([]int, len(availability))
	copy(avail, availability)
	return &Referee{
		name:            name,
		email:           email,
		phone:           phone,
		availability:    avail,
		experience:      3,
		effort:          3,
		maxHoursPerWeek: 20,
		assignedGames:   make(map[int]struct{}),
	}
}

func (r *Referee) Name() string  { return r.name }
func (r *Referee) Email() string { return r.email }
func (r *Referee) Phone() string { return r.phone }

// Availability returns the referee's 0/1 availability vector. The slice is
// returned by reference for read access; callers must not mutate it.
func (r *Referee) Availability() []int { return r.availability }

// AvailableAt reports whether the referee is available at the given
// availability-vector index. An out-of-range index is treated as
// unavailable (0) rather than an error, per §4.B's defensive tolerance
// for mismatched fixtures.
func (r *Referee) AvailableAt(index int) bool {
	if index < 0 || index >= len(r.availability) {
		return false
	}
	return r.availability[index] != 0
}

func (r *Referee) Experience() int { return r.experience }

// SetExperience clamps to [1, 5].
func (r *Referee) SetExperience(v int) {
	r.experience = clamp(v, 1, 5)
}

// ExperienceNormalized maps the 1..5 scale onto [0, 1].
func (r *Referee) ExperienceNormalized() float64 {
	return float64(r.experience-1) / 4.0
}

func (r *Referee) Effort() int { return r.effort }

// SetEffort clamps to [1, 5].
func (r *Referee) SetEffort(v int) {
	r.effort = clamp(v, 1, 5)
}

// EffortNormalized maps the 1..5 scale onto [0, 1].
func (r *Referee) EffortNormalized() float64 {
	return float64(r.effort-1) / 4.0
}

func (r *Referee) MaxHoursPerWeek() int { return r.maxHoursPerWeek }

// SetMaxHoursPerWeek clamps to a nonnegative integer.
func (r *Referee) SetMaxHoursPerWeek(v int) {
	if v < 0 {
		v = 0
	}
	r.maxHoursPerWeek = v
}

// AssignedGames returns the manually pre-assigned game numbers.
func (r *Referee) AssignedGames() []int {
	out := make([]int, 0, len(r.assignedGames))
	for n := range r.assignedGames {
		out = append(out, n)
	}
	return out
}

// AddAssignedGame adds a manual pre-assignment, idempotently.
func (r *Referee) AddAssignedGame(gameNumber int) {
	r.assignedGames[gameNumber] = struct{}{}
}

// RemoveAssignedGame undoes a manual pre-assignment.
func (r *Referee) RemoveAssignedGame(gameNumber int) {
	delete(r.assignedGames, gameNumber)
}

// OptimizedGames returns the games the solver assigned this referee to.
func (r *Referee) OptimizedGames() []*Game {
	out := make([]*Game, len(r.optimizedGames))
	copy(out, r.optimizedGames)
	return out
}

// AddOptimizedGame records a solver assignment. Idempotent: adding the
// same game twice has no additional effect.
func (r *Referee) AddOptimizedGame(g *Game) {
	for _, existing := range r.optimizedGames {
		if existing == g {
			return
		}
	}
	r.optimizedGames = append(r.optimizedGames, g)
}

// ClearOptimizedGames discards all solver assignments. Called by the
// solution writer once the solver has returned a usable solution, just
// before the new assignments are written.
func (r *Referee) ClearOptimizedGames() {
	r.optimizedGames = nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
