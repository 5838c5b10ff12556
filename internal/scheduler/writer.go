package scheduler

import (
	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/milp"
	"github.com/derekprior/refsched/internal/slotindex"
	"github.com/derekprior/refsched/internal/solve"
)

// assignmentThreshold is the cutoff above which a solver's binary variable
// value is treated as 1, guarding against solver floating-point slack
// (the same 0.9 threshold the nextmv shift-scheduling template uses).
const assignmentThreshold = 0.9

// writeSolution clears every referee's and game's prior optimizer
// assignments, then writes the new ones from the solver's variable values
// in deterministic r, d, h, g order per §5's ordering guarantee. It must
// only be called once the solver has returned a usable (Optimal or
// Feasible) solution — the clear-then-write pair is the atomic unit the
// error-handling design in §7 requires.
func writeSolution(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	model *milp.Model,
	result *solve.Result,
) []Assignment {
	for _, r := range refs {
		r.ClearOptimizedGames()
	}
	for _, g := range games {
		g.SetRefs(nil)
	}

	var assignments []Assignment
	for r := 0; r < model.Dims.R; r++ {
		for d := 0; d < model.Dims.D; d++ {
			for h := 0; h < model.Dims.H; h++ {
				for g := 0; g < model.Dims.G; g++ {
					game := idx.GameAt(d, h, g)
					if game == nil {
						continue
					}
					if result.Solution.Value(model.X[r][d][h][g]) < assignmentThreshold {
						continue
					}

					ref := refs[r]
					ref.AddOptimizedGame(game)
					game.AddRef(ref)

					assignments = append(assignments, Assignment{
						RefName:    ref.Name(),
						GameNumber: game.Number(),
						Day:        game.Day(),
						Time:       game.Time(),
						Location:   game.Location(),
						Difficulty: game.Difficulty(),
					})
				}
			}
		}
	}

	return assignments
}
