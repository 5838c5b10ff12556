package milp

import (
	"math"

	"github.com/nextmv-io/sdk/mip"

	"github.com/derekprior/refsched/internal/difficulty"
	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/normalize"
	"github.com/derekprior/refsched/internal/slotindex"
)

// skillDeficitTerm is u[d,h,g] from spec §4.C.
type skillDeficitTerm struct {
	u mip.Float
}

// buildSkillDeficit introduces u[d,h,g] >= 0 with
//
//	u >= (difficulty/μ_D)*Σ_r x[r,d,h,g] - Σ_r (experience(r)/μ_E)*x[r,d,h,g]
//
// for every existing game, per spec §4.C.
func buildSkillDeficit(
	m mip.Model,
	x [][][][]mip.Bool,
	refs []*domain.Referee,
	idx *slotindex.Index,
	norm normalize.Normalizers,
	D, H, G, R int,
) []skillDeficitTerm {
	var terms []skillDeficitTerm

	muD := norm.MeanDifficulty
	if muD == 0 {
		muD = 3
	}
	muE := norm.MeanSkill
	if muE == 0 {
		muE = 3
	}

	for d := 0; d < D; d++ {
		for h := 0; h < H; h++ {
			for g := 0; g < G; g++ {
				game := idx.GameAt(d, h, g)
				if game == nil {
					continue
				}
				difficultyRatio := difficulty.Value(game.Difficulty()) / muD

				u := m.NewFloat(0, math.MaxFloat64)
				terms = append(terms, skillDeficitTerm{u: u})

				c := m.NewConstraint(mip.GreaterThanOrEqual, 0)
				c.NewTerm(1.0, u)
				for r := 0; r < R; r++ {
					coef := refs[r].Experience()
					c.NewTerm(float64(coef)/muE-difficultyRatio, x[r][d][h][g])
				}
			}
		}
	}

	return terms
}
