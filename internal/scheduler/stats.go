package scheduler

import "github.com/derekprior/refsched/internal/domain"

// computeHourStats builds the min/mean/max assigned-hours summary plus a
// per-referee hour count, the supplemental statistics the original
// dashboard's Schedule Management page displayed (§4.F item 3 already
// requires the core to have this data once optimize() succeeds).
func computeHourStats(refs []*domain.Referee) (HourStats, map[string]int) {
	hours := make(map[string]int, len(refs))
	if len(refs) == 0 {
		return HourStats{}, hours
	}

	total := 0
	min, max := -1, 0
	for _, r := range refs {
		h := len(r.OptimizedGames())
		hours[r.Name()] = h
		total += h
		if min == -1 || h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}

	return HourStats{
		Min:  min,
		Max:  max,
		Mean: float64(total) / float64(len(refs)),
	}, hours
}
