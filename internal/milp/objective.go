package milp

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/normalize"
	"github.com/derekprior/refsched/internal/schedparams"
)

// buildObjective assembles the five-term weighted objective from spec
// §4.C:
//
//	maximize  w_E*e(x) - w_B*b(x) - w_S*s(x) - w_T*t(x) + w_P*p(x)
func buildObjective(
	m mip.Model,
	x [][][][]mip.Bool,
	refs []*domain.Referee,
	params schedparams.Params,
	norm normalize.Normalizers,
	hourBalance map[int]hourBalanceTerm,
	start [][][]mip.Bool,
	pairing []pairingTerm,
	skillDeficit []skillDeficitTerm,
	inCapSet []bool,
	D, H, G, R int,
) {
	obj := m.Objective()

	// Effort bonus: e(x) = (1/(|C|*N_E)) * Σ_{r∈C} effort(r) * h_r, with
	// h_r expanded as Σ_{d,h,g} x[r,d,h,g] directly against the objective
	// rather than through an intermediate variable.
	if params.WeightEffortBonus != 0 {
		capSize := countTrue(inCapSet)
		if capSize > 0 {
			scale := params.WeightEffortBonus / (float64(capSize) * norm.Effort)
			for r := 0; r < R; r++ {
				if !inCapSet[r] {
					continue
				}
				coef := scale * float64(refs[r].Effort())
				for d := 0; d < D; d++ {
					for h := 0; h < H; h++ {
						for g := 0; g < G; g++ {
							obj.NewTerm(coef, x[r][d][h][g])
						}
					}
				}
			}
		}
	}

	// Hour balance penalty: b(x) = (1/(|C|*N_B)) * Σ_{r∈C} d_r.
	if params.WeightHourBalancing != 0 && len(hourBalance) > 0 {
		scale := -params.WeightHourBalancing / (float64(len(hourBalance)) * norm.Balance)
		for _, term := range hourBalance {
			obj.NewTerm(scale, term.d)
		}
	}

	// Skill deficit penalty: s(x) = (1/(L*N_S)) * Σ_{d,h,g} u[d,h,g].
	if params.WeightLowSkillPenalty != 0 && len(skillDeficit) > 0 {
		scale := -params.WeightLowSkillPenalty / (float64(len(skillDeficit)) * norm.Skill)
		for _, term := range skillDeficit {
			obj.NewTerm(scale, term.u)
		}
	}

	// Shift-block (time-block) penalty: t(x) = (1/N_T) * Σ_{r,d,h} start[r,d,h].
	if params.WeightShiftBlockPenalty != 0 {
		scale := -params.WeightShiftBlockPenalty / norm.TimeBlock
		for r := 0; r < R; r++ {
			for d := 0; d < D; d++ {
				for h := 0; h < H; h++ {
					obj.NewTerm(scale, start[r][d][h])
				}
			}
		}
	}

	// Pairing bonus: p(x) = (1/N_P) * Σ |experience(i)-experience(j)| * y[i,j,d,h,g].
	if params.WeightSkillCombo != 0 && len(pairing) > 0 {
		scale := params.WeightSkillCombo / norm.Pairing
		for _, term := range pairing {
			if term.weight == 0 {
				continue
			}
			obj.NewTerm(scale*term.weight, term.y)
		}
	}
}

func countTrue(bs []bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
