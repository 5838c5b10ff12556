package milp

import "github.com/nextmv-io/sdk/mip"

// buildShiftStarts introduces start[r,d,h] per spec §4.C: 1 iff referee r
// works at (d,h) and did not work at (d,h-1). The h=0 case trivially
// treats the previous hour's workload as 0.
func buildShiftStarts(m mip.Model, x [][][][]mip.Bool, R, D, H, G int) [][][]mip.Bool {
	start := make([][][]mip.Bool, R)
	for r := 0; r < R; r++ {
		start[r] = make([][]mip.Bool, D)
		for d := 0; d < D; d++ {
			start[r][d] = make([]mip.Bool, H)
			for h := 0; h < H; h++ {
				s := m.NewBool()
				start[r][d][h] = s

				lowerBound := m.NewConstraint(mip.GreaterThanOrEqual, 0) // start >= worked(h) - worked(h-1)
				upperWorked := m.NewConstraint(mip.LessThanOrEqual, 0)   // start <= worked(h)
				upperPrev := m.NewConstraint(mip.LessThanOrEqual, 1.0)   // start <= 1 - worked(h-1)

				lowerBound.NewTerm(1.0, s)
				upperWorked.NewTerm(1.0, s)
				upperPrev.NewTerm(1.0, s)

				for g := 0; g < G; g++ {
					lowerBound.NewTerm(-1.0, x[r][d][h][g])
					upperWorked.NewTerm(-1.0, x[r][d][h][g])
				}
				if h > 0 {
					for g := 0; g < G; g++ {
						lowerBound.NewTerm(1.0, x[r][d][h-1][g])
						upperPrev.NewTerm(1.0, x[r][d][h-1][g])
					}
				}
			}
		}
	}
	return start
}
