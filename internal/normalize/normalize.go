// Package normalize computes the per-term scaling constants (component D)
// that let the five weighted objective terms in spec §4.C/§4.D compose on
// a common scale.
package normalize

import (
	"github.com/derekprior/refsched/internal/difficulty"
	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/slotindex"
)

// Baseline is the target magnitude each objective term should be near
// when all weights equal 1.0.
const Baseline = 2.5

// NotAtCapThreshold is the constant subtracted from the mean per-referee
// hour cap to decide cap-set membership (the "3" in spec §4.C/§9). It is
// preserved as a named constant per the open question in §9 rather than
// inlined, since its origin is a heuristic choice in the original
// scheduler rather than a derived value.
const NotAtCapThreshold = 3

// Normalizers holds N_E, N_B, N_S, N_T, N_P plus the intermediate
// means (effort, skill, difficulty) the MILP builder also needs. The cap
// set itself is computed separately by CapSet.
type Normalizers struct {
	Effort     float64 // N_E
	Balance    float64 // N_B
	Skill      float64 // N_S
	TimeBlock  float64 // N_T
	Pairing    float64 // N_P

	MeanEffort     float64
	MeanSkill      float64
	MeanDifficulty float64
}

// CapSet computes C, the set of referees "not at cap", per spec §4.C:
// those whose max-hours-per-week exceeds mean(caps) - NotAtCapThreshold.
// Referees are identified by index into refs for use as MILP index sets.
func CapSet(refs []*domain.Referee) []int {
	if len(refs) == 0 {
		return nil
	}
	total := 0
	for _, r := range refs {
		total += r.MaxHoursPerWeek()
	}
	mean := float64(total) / float64(len(refs))
	threshold := mean - NotAtCapThreshold

	var notAtCap []int
	for i, r := range refs {
		if float64(r.MaxHoursPerWeek()) > threshold {
			notAtCap = append(notAtCap, i)
		}
	}
	return notAtCap
}

// Compute derives the five normalizers and supporting means from the
// problem instance, per spec §4.D.
func Compute(refs []*domain.Referee, games []*domain.Game, idx *slotindex.Index, capSet []int) Normalizers {
	R := len(refs)
	L := len(games)

	meanEffort := 1.0
	if len(capSet) > 0 {
		total := 0.0
		for _, i := range capSet {
			total += float64(refs[i].Effort())
		}
		meanEffort = total / float64(len(capSet))
	}

	meanSkill := 3.0
	if R > 0 {
		total := 0.0
		for _, r := range refs {
			total += float64(r.Experience())
		}
		meanSkill = total / float64(R)
	}

	meanDifficulty := 3.0
	difficultyCount := 0
	difficultyTotal := 0.0
	for d := range idx.Days {
		for h := range idx.Times {
			for g := 0; g < idx.GMax(); g++ {
				game := idx.GameAt(d, h, g)
				if game == nil {
					continue
				}
				difficultyTotal += difficulty.Value(game.Difficulty())
				difficultyCount++
			}
		}
	}
	if difficultyCount > 0 {
		meanDifficulty = difficultyTotal / float64(difficultyCount)
	}

	meanHoursExpected := 0.0
	if len(capSet) > 0 {
		meanHoursExpected = (2 * float64(L)) / float64(len(capSet))
	}

	uniqueDays := len(idx.Days)
	maxPossibleStarts := float64(R * uniqueDays)

	pairCount := float64(R*(R-1)) / 2
	pairMagnitude := 4 * pairCount * 0.6

	n := Normalizers{
		MeanEffort:     meanEffort,
		MeanSkill:      meanSkill,
		MeanDifficulty: meanDifficulty,
	}

	n.Effort = safeDiv(meanEffort*meanHoursExpected, Baseline)
	n.Balance = safeDiv(1, Baseline)
	n.Skill = safeDiv(meanSkill, Baseline)
	n.TimeBlock = safeDiv(maxPossibleStarts*0.3, Baseline)
	n.Pairing = safeDiv(pairMagnitude, Baseline)

	// Guard against a degenerate normalizer of exactly zero (e.g. R<=1
	// leaves no pairs, or an empty cap set leaves no expected workload):
	// a zero normalizer would make the corresponding term divide by zero
	// when applied, so floor it at a small positive value instead of
	// letting that term blow up or vanish the objective.
	n.Effort = floorPositive(n.Effort)
	n.Balance = floorPositive(n.Balance)
	n.Skill = floorPositive(n.Skill)
	n.TimeBlock = floorPositive(n.TimeBlock)
	n.Pairing = floorPositive(n.Pairing)

	return n
}

func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func floorPositive(v float64) float64 {
	const epsilon = 1e-9
	if v < epsilon {
		return epsilon
	}
	return v
}
