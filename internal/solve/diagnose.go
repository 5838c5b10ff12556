package solve

import (
	"time"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/milp"
	"github.com/derekprior/refsched/internal/normalize"
	"github.com/derekprior/refsched/internal/schedparams"
	"github.com/derekprior/refsched/internal/slotindex"
)

// diagnose approximates an IIS by probing a handful of relaxations, one
// constraint family at a time, and reporting the families whose relaxation
// alone restores feasibility. It is deliberately cheap: each probe reuses
// the same time limit capped to a short budget, since a probe only needs
// to distinguish feasible from infeasible, not find an optimal solution.
func diagnose(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	capSet []int,
	norm normalize.Normalizers,
	timeLimit time.Duration,
	gapTolerance float64,
) *Diagnosis {
	probeLimit := timeLimit / 4
	if probeLimit > 30*time.Second {
		probeLimit = 30 * time.Second
	}

	d := &Diagnosis{}

	if feasibleWithoutManualAssignments(refs, games, idx, params, norm, capSet, probeLimit, gapTolerance) {
		d.ViolatingConstraints = append(d.ViolatingConstraints, "manual pre-assignments (spec constraint 7)")
	}

	if feasibleWithRelaxedHourCaps(refs, games, idx, params, norm, capSet, probeLimit, gapTolerance) {
		d.ViolatingBounds = append(d.ViolatingBounds,
			"max_hours_per_week / max_hours_per_day (spec constraints 2-3)")
	}

	if feasibleWithFullAvailability(refs, games, idx, params, norm, capSet, probeLimit, gapTolerance) {
		d.ViolatingConstraints = append(d.ViolatingConstraints, "referee availability (spec constraint 4)")
	}

	if feasibleWithoutStaffingFloor(refs, games, idx, params, norm, capSet, probeLimit, gapTolerance) {
		d.ViolatingBounds = append(d.ViolatingBounds, "game min_refs staffing floor (spec constraint 5)")
	}

	if len(d.ViolatingConstraints) == 0 && len(d.ViolatingBounds) == 0 {
		d.Message = "infeasible; no single relaxed constraint family restored feasibility in the probe set"
	}
	return d
}

func feasibleWith(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	norm normalize.Normalizers,
	capSet []int,
	probeLimit time.Duration,
	gapTolerance float64,
) bool {
	model, _, err := milp.Build(refs, games, idx, params, norm, capSet)
	if err != nil {
		return false
	}
	_, status, err := solveModel(model.MIP, probeLimit, gapTolerance)
	if err != nil {
		return false
	}
	return status == Optimal || status == Feasible
}

func feasibleWithoutManualAssignments(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	norm normalize.Normalizers,
	capSet []int,
	probeLimit time.Duration,
	gapTolerance float64,
) bool {
	clones := make([]*domain.Referee, len(refs))
	for i, r := range refs {
		clones[i] = cloneReferee(r, r.Availability())
		for _, gameNumber := range r.AssignedGames() {
			clones[i].RemoveAssignedGame(gameNumber)
		}
	}
	return feasibleWith(clones, games, idx, params, norm, capSet, probeLimit, gapTolerance)
}

func feasibleWithFullAvailability(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	norm normalize.Normalizers,
	capSet []int,
	probeLimit time.Duration,
	gapTolerance float64,
) bool {
	width := len(idx.Days) * len(idx.Times)
	allAvailable := make([]int, width)
	for i := range allAvailable {
		allAvailable[i] = 1
	}

	clones := make([]*domain.Referee, len(refs))
	for i, r := range refs {
		clones[i] = cloneReferee(r, allAvailable)
	}
	return feasibleWith(clones, games, idx, params, norm, capSet, probeLimit, gapTolerance)
}

func feasibleWithoutStaffingFloor(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	norm normalize.Normalizers,
	capSet []int,
	probeLimit time.Duration,
	gapTolerance float64,
) bool {
	relaxedGames := make([]*domain.Game, len(games))
	for i, g := range games {
		relaxedGames[i] = domain.NewGame(g.Number(), g.Day(), g.Time(), g.Location(), g.Difficulty(), 0, g.MaxRefs())
	}
	relaxedIdx := slotindex.Build(relaxedGames)
	return feasibleWith(refs, relaxedGames, relaxedIdx, params, norm, capSet, probeLimit, gapTolerance)
}

// feasibleWithRelaxedHourCaps widens both the run-wide caps and each
// referee's own weekly cap by 10x. The weekly constraint binds on
// min(params.MaxHoursPerWeek, ref.MaxHoursPerWeek()) (builder.go), so
// widening params alone leaves a tight per-referee cap free to mask an
// hour-cap-driven infeasibility in this probe.
func feasibleWithRelaxedHourCaps(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	norm normalize.Normalizers,
	capSet []int,
	probeLimit time.Duration,
	gapTolerance float64,
) bool {
	relaxed := relaxedHourCaps(params)

	clones := make([]*domain.Referee, len(refs))
	for i, r := range refs {
		clones[i] = cloneReferee(r, r.Availability())
		clones[i].SetMaxHoursPerWeek(r.MaxHoursPerWeek() * 10)
	}
	return feasibleWith(clones, games, idx, relaxed, norm, capSet, probeLimit, gapTolerance)
}

func relaxedHourCaps(params schedparams.Params) schedparams.Params {
	relaxed := params
	relaxed.MaxHoursPerDay *= 10
	relaxed.MaxHoursPerWeek *= 10
	return relaxed
}

// cloneReferee copies a referee's scalar fields and manual assignments
// onto a fresh Referee with the given availability vector. It exists only
// to support the relaxation probes above, which need to vary availability
// or manual assignments in isolation without mutating the caller's domain
// objects.
func cloneReferee(r *domain.Referee, availability []int) *domain.Referee {
	clone := domain.NewReferee(r.Name(), r.Email(), r.Phone(), availability)
	clone.SetExperience(r.Experience())
	clone.SetEffort(r.Effort())
	clone.SetMaxHoursPerWeek(r.MaxHoursPerWeek())
	for _, gameNumber := range r.AssignedGames() {
		clone.AddAssignedGame(gameNumber)
	}
	return clone
}
