// Package difficulty maps the checkbox-template difficulty labels from
// spec §4.C to the numeric scale the optimizer and normalizer use
// internally. It is split out from internal/milp so that both the MILP
// builder and the normalizer (component D) can depend on it without
// depending on each other.
package difficulty

import "strconv"

var known = map[string]float64{
	"Co-Rec – Just Fun": 1,
	"Womens":            3,
	"TBD":               3,
	"Open – Just Fun":   4,
	"Co-Rec – Top Gun":  4,
	"Open – Top Gun":    5,
}

// Value maps a difficulty label to its numeric weight. An
// integer-parsable label uses its own value; any other unrecognized
// label defaults to 3 (the same default as "TBD").
func Value(label string) float64 {
	if v, ok := known[label]; ok {
		return v
	}
	if n, err := strconv.Atoi(label); err == nil {
		return float64(n)
	}
	return 3
}
