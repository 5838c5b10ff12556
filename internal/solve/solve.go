// Package solve is the solver driver (component E): it hands a built MILP
// to github.com/nextmv-io/sdk/mip's HiGHS-backed solver under a time/gap
// budget and classifies the outcome per spec §4.E.
package solve

import (
	"fmt"
	"time"

	"github.com/nextmv-io/sdk/mip"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/milp"
	"github.com/derekprior/refsched/internal/normalize"
	"github.com/derekprior/refsched/internal/schedparams"
	"github.com/derekprior/refsched/internal/slotindex"
)

// Status is the outcome classification from spec §4.E's contract.
type Status int

const (
	Optimal Status = iota
	Feasible
	Infeasible
	Error
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	default:
		return "error"
	}
}

// DefaultTimeLimit and DefaultGapTolerance are the nominal solve budget
// from spec §4.E.
const (
	DefaultTimeLimit   = 240 * time.Second
	DefaultGapTolerance = 0.05
)

// Diagnosis is an approximation of an irreducible infeasible subset: the
// constraint families and bound families whose relaxation was observed to
// restore feasibility on a probe re-solve. The nextmv HiGHS binding this
// package is built on does not expose a native IIS extraction call, so
// this is a deletion-filter approximation rather than a minimal certificate.
type Diagnosis struct {
	ViolatingConstraints []string
	ViolatingBounds      []string
	Message              string
}

// Result is the solver driver's outcome.
type Result struct {
	Status   Status
	Solution mip.Solution
	Model    *milp.Model
	Warnings []string

	Diagnosis *Diagnosis // only set when Status == Infeasible
	Err       error      // only set when Status == Error
}

// Run builds and solves one scheduling instance. The solver handle is
// opened here and every code path returns (rather than retaining it), so
// there is nothing left for a caller to release.
func Run(
	refs []*domain.Referee,
	games []*domain.Game,
	idx *slotindex.Index,
	params schedparams.Params,
	timeLimit time.Duration,
	gapTolerance float64,
) (*Result, error) {
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}
	if gapTolerance < 0 {
		gapTolerance = DefaultGapTolerance
	}

	capSet := normalize.CapSet(refs)
	norm := normalize.Compute(refs, games, idx, capSet)

	model, warnings, err := milp.Build(refs, games, idx, params, norm, capSet)
	if err != nil {
		return &Result{Status: Error, Warnings: warnings, Err: err}, nil
	}

	solution, status, solveErr := solveModel(model.MIP, timeLimit, gapTolerance)
	if solveErr != nil {
		return &Result{Status: Error, Model: model, Warnings: warnings, Err: solveErr}, nil
	}

	result := &Result{Status: status, Solution: solution, Model: model, Warnings: warnings}
	if status == Infeasible {
		result.Diagnosis = diagnose(refs, games, idx, params, capSet, norm, timeLimit, gapTolerance)
	}
	return result, nil
}

func solveModel(m mip.Model, timeLimit time.Duration, gapTolerance float64) (mip.Solution, Status, error) {
	solver, err := mip.NewSolver(mip.Highs, m)
	if err != nil {
		return nil, Error, fmt.Errorf("solve: creating solver: %w", err)
	}

	options := mip.NewSolveOptions()
	if err := options.SetMaximumDuration(timeLimit); err != nil {
		return nil, Error, fmt.Errorf("solve: setting time limit: %w", err)
	}
	if err := options.SetMIPGapRelative(gapTolerance); err != nil {
		return nil, Error, fmt.Errorf("solve: setting gap tolerance: %w", err)
	}

	solution, err := solver.Solve(options)
	if err != nil {
		return nil, Error, fmt.Errorf("solve: %w", err)
	}

	switch {
	case solution.IsOptimal():
		return solution, Optimal, nil
	case solution.IsSubOptimal():
		// Covers both the time-limited and within-gap success cases from
		// spec §4.E: either counts as Feasible, not Optimal.
		return solution, Feasible, nil
	default:
		return solution, Infeasible, nil
	}
}
