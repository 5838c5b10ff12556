package scheduler

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/schedparams"
	"github.com/derekprior/refsched/internal/slotindex"
	"github.com/derekprior/refsched/internal/solve"
)

// Scheduler is the core API surface from §6: construct it once per
// scheduling instance, optionally override parameters, then optimize.
type Scheduler struct {
	refs  []*domain.Referee
	games []*domain.Game
	idx   *slotindex.Index

	params schedparams.Params
	logger hclog.Logger

	timeLimit    time.Duration
	gapTolerance float64
}

// New builds a Scheduler over the given referee and game collections,
// per §6's `Scheduler.new(refs, games)`.
func New(refs []*domain.Referee, games []*domain.Game) *Scheduler {
	return &Scheduler{
		refs:   refs,
		games:  games,
		idx:    slotindex.Build(games),
		params: schedparams.Defaults(),
		logger: hclog.New(&hclog.LoggerOptions{
			Name:  "refsched",
			Level: hclog.Info,
		}),
		timeLimit:    solve.DefaultTimeLimit,
		gapTolerance: solve.DefaultGapTolerance,
	}
}

// SetParameters overlays the given option map onto the defaults, per
// §6's `Scheduler.set_parameters`. Unrecognized keys are logged as
// warnings and otherwise ignored, per §4.G.
func (s *Scheduler) SetParameters(options map[string]float64) {
	params, warnings := schedparams.Apply(options)
	s.params = params
	for _, w := range warnings {
		s.logger.Warn(w)
	}
}

// SetSolveLimits overrides the solver's time limit and gap tolerance from
// §4.E's defaults. Not part of §6's minimal surface, but exposed for
// callers that need to tune the solve budget; the CLI does not call it.
func (s *Scheduler) SetSolveLimits(timeLimit time.Duration, gapTolerance float64) {
	if timeLimit > 0 {
		s.timeLimit = timeLimit
	}
	if gapTolerance >= 0 {
		s.gapTolerance = gapTolerance
	}
}

// Optimize runs one full build-solve-write cycle, per §6's
// `Scheduler.optimize() → Result`. The solver handle solve.Run opens is
// released on every exit path inside that call; Optimize never retains
// it past this method returning.
func (s *Scheduler) Optimize() Result {
	runID := uuid.NewString()
	log := s.logger.With("run_id", runID)
	log.Info("optimize starting", "referees", len(s.refs), "games", len(s.games))

	solveResult, err := solve.Run(s.refs, s.games, s.idx, s.params, s.timeLimit, s.gapTolerance)
	if err != nil {
		log.Error("solve driver failed unexpectedly", "error", err)
		return Result{Status: ResultError, Message: err.Error()}
	}
	for _, w := range solveResult.Warnings {
		log.Warn(w)
	}

	switch solveResult.Status {
	case solve.Error:
		log.Error("solve returned an error", "error", solveResult.Err)
		return Result{Status: ResultError, Message: solveResult.Err.Error(), Warnings: solveResult.Warnings}

	case solve.Infeasible:
		log.Warn("solve is infeasible", "run_id", runID)
		result := Result{Status: ResultInfeasible, Warnings: solveResult.Warnings}
		if solveResult.Diagnosis != nil {
			d := solveResult.Diagnosis
			result.ViolatingConstraints = d.ViolatingConstraints
			result.ViolatingBounds = d.ViolatingBounds
			result.Message = d.Message
		}
		return result

	default: // solve.Optimal or solve.Feasible
		if solveResult.Status == solve.Feasible {
			log.Info("accepted a feasible, sub-optimal incumbent", "run_id", runID)
		}
		assignments := writeSolution(s.refs, s.games, s.idx, solveResult.Model, solveResult)
		hourStats, refHours := computeHourStats(s.refs)
		log.Info("optimize complete", "assignments", len(assignments))
		return Result{
			Status:      ResultOk,
			Assignments: assignments,
			HourStats:   hourStats,
			RefHours:    refHours,
			Warnings:    solveResult.Warnings,
		}
	}
}
