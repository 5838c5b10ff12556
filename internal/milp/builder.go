// Package milp translates a scheduling instance into the mixed-integer
// program described in spec §4.C: decision variables, hard constraints,
// auxiliary variables, and the five-term weighted objective. It is
// component C of the scheduling engine, built on github.com/nextmv-io/sdk's
// mip package (the same MILP modeling API the nextmv-io/community-apps
// shift-scheduling template uses against the HiGHS backend).
package milp

import (
	"fmt"

	"github.com/nextmv-io/sdk/mip"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/normalize"
	"github.com/derekprior/refsched/internal/schedparams"
	"github.com/derekprior/refsched/internal/slotindex"
)

// Dims are the decision-tensor dimensions R, D, H, G from spec §4.C.
type Dims struct {
	R, D, H, G int
}

// Model bundles the constructed mip.Model with the variable tensors the
// solver driver and solution writer need to read back.
type Model struct {
	MIP  mip.Model
	Dims Dims

	// X[r][d][h][g] is the primary assignment variable.
	X [][][][]mip.Bool

	// Start[r][d][h] is the shift-start indicator.
	Start [][][]mip.Bool
}

// Build constructs the MILP for one scheduling instance. It returns an
// error for the "invalid input" case in spec §7: any dimension that
// would leave the decision tensor empty.
func Build(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	norm normalize.Normalizers,
	capSet []int,
) (*Model, []string, error) {
	R := len(refs)
	D := len(idx.Days)
	H := len(idx.Times)
	G := idx.GMax()

	if R == 0 || D == 0 || H == 0 || G == 0 {
		return nil, nil, fmt.Errorf("empty decision tensor: R=%d D=%d H=%d G=%d", R, D, H, G)
	}

	m := mip.NewModel()
	m.Objective().SetMaximize()

	inCapSet := make([]bool, R)
	for _, i := range capSet {
		inCapSet[i] = true
	}

	x := make([][][][]mip.Bool, R)
	exists := make([][][]bool, D)
	for d := 0; d < D; d++ {
		exists[d] = make([][]bool, H)
		for h := 0; h < H; h++ {
			exists[d][h] = make([]bool, G)
			for g := 0; g < G; g++ {
				exists[d][h][g] = idx.GameAt(d, h, g) != nil
			}
		}
	}

	for r := 0; r < R; r++ {
		x[r] = make([][][]mip.Bool, D)
		for d := 0; d < D; d++ {
			x[r][d] = make([][]mip.Bool, H)
			for h := 0; h < H; h++ {
				x[r][d][h] = make([]mip.Bool, G)
				for g := 0; g < G; g++ {
					x[r][d][h][g] = m.NewBool()

					// Constraint 6: no assignment to a non-existent game.
					if !exists[d][h][g] {
						c := m.NewConstraint(mip.LessThanOrEqual, 0)
						c.NewTerm(1.0, x[r][d][h][g])
					}

					// Constraint 4: availability.
					if !idx.AvailableAt(refs[r], d, h) {
						c := m.NewConstraint(mip.LessThanOrEqual, 0)
						c.NewTerm(1.0, x[r][d][h][g])
					}
				}
			}
		}
	}

	// Constraint 1: at most one game per referee per hour.
	for r := 0; r < R; r++ {
		for d := 0; d < D; d++ {
			for h := 0; h < H; h++ {
				c := m.NewConstraint(mip.LessThanOrEqual, 1.0)
				for g := 0; g < G; g++ {
					c.NewTerm(1.0, x[r][d][h][g])
				}
			}
		}
	}

	// Constraint 2: daily cap.
	for r := 0; r < R; r++ {
		for d := 0; d < D; d++ {
			c := m.NewConstraint(mip.LessThanOrEqual, float64(params.MaxHoursPerDay))
			for h := 0; h < H; h++ {
				for g := 0; g < G; g++ {
					c.NewTerm(1.0, x[r][d][h][g])
				}
			}
		}
	}

	// Constraint 3: weekly cap, bounded by min(max_hours_per_week, ref cap).
	for r := 0; r < R; r++ {
		weekCap := float64(params.MaxHoursPerWeek)
		if rc := float64(refs[r].MaxHoursPerWeek()); rc < weekCap {
			weekCap = rc
		}
		c := m.NewConstraint(mip.LessThanOrEqual, weekCap)
		for d := 0; d < D; d++ {
			for h := 0; h < H; h++ {
				for g := 0; g < G; g++ {
					c.NewTerm(1.0, x[r][d][h][g])
				}
			}
		}
	}

	// Constraint 5: staffing band for every existing game.
	for d := 0; d < D; d++ {
		for h := 0; h < H; h++ {
			for g := 0; g < G; g++ {
				game := idx.GameAt(d, h, g)
				if game == nil {
					continue
				}
				lower := m.NewConstraint(mip.GreaterThanOrEqual, float64(game.MinRefs()))
				upper := m.NewConstraint(mip.LessThanOrEqual, float64(game.MaxRefs()))
				for r := 0; r < R; r++ {
					lower.NewTerm(1.0, x[r][d][h][g])
					upper.NewTerm(1.0, x[r][d][h][g])
				}
			}
		}
	}

	// Constraint 7: manual pre-assignments.
	var warnings []string
	for r := 0; r < R; r++ {
		for _, gameNumber := range refs[r].AssignedGames() {
			game := findGame(games, gameNumber)
			if game == nil {
				warnings = append(warnings, fmt.Sprintf(
					"referee %q: manual assignment to game %d skipped (no such game)",
					refs[r].Name(), gameNumber))
				continue
			}
			d, h, g, ok := idx.IndexOf(game)
			if !ok {
				warnings = append(warnings, fmt.Sprintf(
					"referee %q: manual assignment to game %d skipped (could not resolve slot)",
					refs[r].Name(), gameNumber))
				continue
			}
			c := m.NewConstraint(mip.Equal, 1.0)
			c.NewTerm(1.0, x[r][d][h][g])
		}
	}

	hourBalance := buildHourBalance(m, x, D, H, G, R, capSet)
	start := buildShiftStarts(m, x, R, D, H, G)
	pairing := buildCoAssignment(m, x, refs, idx, D, H, G)
	skillDeficit := buildSkillDeficit(m, x, refs, idx, norm, D, H, G, R)

	buildObjective(m, x, refs, params, norm, hourBalance, start, pairing, skillDeficit, inCapSet, D, H, G, R)

	return &Model{
		MIP:   m,
		Dims:  Dims{R: R, D: D, H: H, G: G},
		X:     x,
		Start: start,
	}, warnings, nil
}

func findGame(games []*domain.Game, number int) *domain.Game {
	for _, g := range games {
		if g.Number() == number {
			return g
		}
	}
	return nil
}
