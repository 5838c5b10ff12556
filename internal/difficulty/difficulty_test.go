package difficulty

import "testing"

func TestValue(t *testing.T) {
	cases := map[string]float64{
		"Co-Rec – Just Fun": 1,
		"Womens":            3,
		"TBD":               3,
		"Open – Just Fun":   4,
		"Co-Rec – Top Gun":  4,
		"Open – Top Gun":    5,
		"7":                 7,
		"Unranked Friendly": 3,
	}
	for label, want := range cases {
		if got := Value(label); got != want {
			t.Errorf("Value(%q) = %v, want %v", label, got, want)
		}
	}
}
