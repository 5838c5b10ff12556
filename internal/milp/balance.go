package milp

import (
	"math"

	"github.com/nextmv-io/sdk/mip"
)

// hourBalanceTerm is d_r from spec §4.C: the deviation of referee r's
// assigned hours from the mean, for referees in the cap set.
type hourBalanceTerm struct {
	d mip.Float
}

// buildHourBalance introduces h_r (as a linear expression, not a
// variable — it's just the row sum of x) and d_r >= |h_r - h̄| for r in
// the cap set, where h̄ = (1/R) Σ_r h_r is the grand mean over every
// referee in the instance (spec §4.C), not just those in the cap set.
// Per the open question in §9, d_r itself is simply not created for
// referees outside the cap set rather than left unconstrained: those
// referees contribute 0 to the balance penalty, matching "terms that
// divide by |C| evaluate to 0 when |C|=0" and avoiding a free variable
// with no constraining role in the objective — but the mean they feed
// into still sums over all R.
func buildHourBalance(m mip.Model, x [][][][]mip.Bool, D, H, G, R int, capSet []int) map[int]hourBalanceTerm {
	terms := make(map[int]hourBalanceTerm, len(capSet))
	if len(capSet) == 0 {
		return terms
	}

	// h̄ is an unknown linear combination of all x variables (the mean of
	// sums over every referee), so d_r >= h_r - h̄ and d_r >= h̄ - h_r expand
	// to linear constraints over every x[rr,*,*,*] for rr in 0..R, not just
	// over h_r. Expand them directly rather than introducing an
	// intermediate variable for h̄:
	//   d_r - h_r + (1/R) Σ_rr h_rr >= 0
	//   d_r + h_r - (1/R) Σ_rr h_rr >= 0
	n := float64(R)

	for _, r := range capSet {
		d := m.NewFloat(0, math.MaxFloat64)
		terms[r] = hourBalanceTerm{d: d}

		upper := m.NewConstraint(mip.GreaterThanOrEqual, 0)
		lower := m.NewConstraint(mip.GreaterThanOrEqual, 0)

		upper.NewTerm(1.0, d)
		lower.NewTerm(1.0, d)

		for d2 := 0; d2 < D; d2++ {
			for h2 := 0; h2 < H; h2++ {
				for g2 := 0; g2 < G; g2++ {
					upper.NewTerm(-1.0, x[r][d2][h2][g2])
					lower.NewTerm(1.0, x[r][d2][h2][g2])
				}
			}
		}
		for rr := 0; rr < R; rr++ {
			for d2 := 0; d2 < D; d2++ {
				for h2 := 0; h2 < H; h2++ {
					for g2 := 0; g2 < G; g2++ {
						upper.NewTerm(1.0/n, x[rr][d2][h2][g2])
						lower.NewTerm(-1.0/n, x[rr][d2][h2][g2])
					}
				}
			}
		}
	}

	return terms
}
