package domain

// Game is a single officiated event at a fixed day/time/location.
type Game struct {
	number     int
	day        string
	time       string
	location   string
	difficulty string
	minRefs    int
	maxRefs    int

	refs []*Referee // populated only by the solution writer
}

// NewGame constructs a Game. minRefs is clamped to be nonnegative, maxRefs
// to be at least 1, matching the original model's setters.
func NewGame(number int, day, time, location, difficulty string, minRefs, maxRefs int) *Game {
	if minRefs < 0 {
		minRefs = 0
	}
	if maxRefs < 1 {
		maxRefs = 1
	}
	return &Game{
		number:     number,
		day:        day,
		time:       time,
		location:   location,
		difficulty: difficulty,
		minRefs:    minRefs,
		maxRefs:    maxRefs,
	}
}

func (g *Game) Number() int        { return g.number }
func (g *Game) Day() string        { return g.day }
func (g *Game) Time() string       { return g.time }
func (g *Game) Location() string   { return g.location }
func (g *Game) Difficulty() string { return g.difficulty }
func (g *Game) MinRefs() int       { return g.minRefs }
func (g *Game) MaxRefs() int       { return g.maxRefs }

// Refs returns the referees currently assigned to this game.
func (g *Game) Refs() []*Referee {
	out := make([]*Referee, len(g.refs))
	copy(out, g.refs)
	return out
}

// SetRefs replaces the assigned-referee set wholesale.
func (g *Game) SetRefs(refs []*Referee) {
	g.refs = append([]*Referee(nil), refs...)
}

// AddRef adds a referee to the assigned set, idempotently — a referee
// cannot appear twice in a single game's assigned set.
func (g *Game) AddRef(r *Referee) {
	for _, existing := range g.refs {
		if existing == r {
			return
		}
	}
	g.refs = append(g.refs, r)
}

// RefCount is the number of referees currently assigned.
func (g *Game) RefCount() int { return len(g.refs) }

// IsFullyStaffed reports whether the game has at least MinRefs assigned.
func (g *Game) IsFullyStaffed() bool { return len(g.refs) >= g.minRefs }

// IsOverstaffed reports whether the game has more than MaxRefs assigned.
func (g *Game) IsOverstaffed() bool { return len(g.refs) > g.maxRefs }
