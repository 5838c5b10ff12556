package milp

import (
	"github.com/nextmv-io/sdk/mip"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/slotindex"
)

// pairingTerm is one y[i,j,d,h,g] indicator plus the |experience(i) -
// experience(j)| coefficient it contributes to the pairing bonus p(x).
type pairingTerm struct {
	y      mip.Bool
	weight float64
}

// buildCoAssignment introduces y[i,j,d,h,g] for every ordered referee
// pair i<j and every existing game, per spec §4.C.
func buildCoAssignment(m mip.Model, x [][][][]mip.Bool, refs []*domain.Referee, idx *slotindex.Index, D, H, G int) []pairingTerm {
	R := len(refs)
	var terms []pairingTerm

	for d := 0; d < D; d++ {
		for h := 0; h < H; h++ {
			for g := 0; g < G; g++ {
				if idx.GameAt(d, h, g) == nil {
					continue
				}
				for i := 0; i < R; i++ {
					for j := i + 1; j < R; j++ {
						y := m.NewBool()

						upperI := m.NewConstraint(mip.LessThanOrEqual, 0) // y <= x[i]
						upperJ := m.NewConstraint(mip.LessThanOrEqual, 0) // y <= x[j]
						lower := m.NewConstraint(mip.LessThanOrEqual, 1.0) // y >= x[i]+x[j]-1 -> -y+x[i]+x[j] <= 1... see below

						upperI.NewTerm(1.0, y)
						upperI.NewTerm(-1.0, x[i][d][h][g])

						upperJ.NewTerm(1.0, y)
						upperJ.NewTerm(-1.0, x[j][d][h][g])

						// y >= x[i] + x[j] - 1  <=>  x[i] + x[j] - y <= 1
						lower.NewTerm(1.0, x[i][d][h][g])
						lower.NewTerm(1.0, x[j][d][h][g])
						lower.NewTerm(-1.0, y)

						weight := experienceGap(refs[i], refs[j])
						terms = append(terms, pairingTerm{y: y, weight: weight})
					}
				}
			}
		}
	}

	return terms
}

func experienceGap(a, b *domain.Referee) float64 {
	ea, eb := float64(a.Experience()), float64(b.Experience())
	if ea > eb {
		return ea - eb
	}
	return eb - ea
}
