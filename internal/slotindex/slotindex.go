// Package slotindex builds the canonical (day, time, within-slot ordinal)
// index over a set of games, and maps (day, time) coordinates in that
// space to referee availability-vector indices. It corresponds to component B
// of the scheduling engine.
package slotindex

import (
	"sort"
	"strconv"
	"strings"

	"github.com/derekprior/refsched/internal/domain"
)

// weekOrder fixes the canonical day ordering Monday…Sunday. Any day label
// not present here sorts after all known days, alphabetically among
// themselves.
var weekOrder = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// Index is the slot/game mapping described in spec §4.B.
type Index struct {
	Days  []string
	Times []string

	// gMax is the maximum number of games at any single (day, time).
	gMax int

	byCoord map[coord]*domain.Game
	byGame  map[*domain.Game]coord
}

type coord struct {
	d, h, g int
}

// Build constructs an Index from a game list. Games sharing a (day, time)
// are ordered by ascending game number; the lower number gets the lower
// ordinal, per the tie-break rule in §4.B.
func Build(games []*domain.Game) *Index {
	idx := &Index{
		byCoord: make(map[coord]*domain.Game),
		byGame:  make(map[*domain.Game]coord),
	}

	dayIndex := indexDays(games)
	timeIndex := indexTimes(games)
	idx.Days = sortedKeys(dayIndex, dayLess)
	idx.Times = sortedKeys(timeIndex, timeLess)

	dPos := positionMap(idx.Days)
	hPos := positionMap(idx.Times)

	// Group games by (d, h), then assign ordinals by ascending game number.
	type slotGames struct {
		d, h  int
		games []*domain.Game
	}
	grouped := make(map[[2]int]*slotGames)
	var order [][2]int
	for _, g := range games {
		d, ok := dPos[g.Day()]
		if !ok {
			continue
		}
		h, ok := hPos[g.Time()]
		if !ok {
			continue
		}
		key := [2]int{d, h}
		sg, exists := grouped[key]
		if !exists {
			sg = &slotGames{d: d, h: h}
			grouped[key] = sg
			order = append(order, key)
		}
		sg.games = append(sg.games, g)
	}

	for _, key := range order {
		sg := grouped[key]
		sort.Slice(sg.games, func(i, j int) bool {
			return sg.games[i].Number() < sg.games[j].Number()
		})
		if len(sg.games) > idx.gMax {
			idx.gMax = len(sg.games)
		}
		for g, game := range sg.games {
			c := coord{d: sg.d, h: sg.h, g: g}
			idx.byCoord[c] = game
			idx.byGame[game] = c
		}
	}

	return idx
}

// GMax is G in spec §4.C: the number of within-slot ordinals to model.
func (idx *Index) GMax() int { return idx.gMax }

// GameAt returns the g-th game at (days[d], times[h]), or nil if no such
// game exists.
func (idx *Index) GameAt(d, h, g int) *domain.Game {
	return idx.byCoord[coord{d, h, g}]
}

// IndexOf is the inverse lookup: the (d, h, g) coordinate for a game, and
// whether it was found.
func (idx *Index) IndexOf(g *domain.Game) (d, h, g2 int, ok bool) {
	c, found := idx.byGame[g]
	if !found {
		return 0, 0, 0, false
	}
	return c.d, c.h, c.g, true
}

// AvailabilityIndex computes i = d*|times| + h, per §4.B.
func (idx *Index) AvailabilityIndex(d, h int) int {
	return d*len(idx.Times) + h
}

// AvailableAt reports whether the referee is available at (d, h),
// tolerating availability vectors shorter than the full index space by
// treating missing entries as unavailable (§4.B's defensive check).
func (idx *Index) AvailableAt(r *domain.Referee, d, h int) bool {
	return r.AvailableAt(idx.AvailabilityIndex(d, h))
}

func indexDays(games []*domain.Game) map[string]struct{} {
	m := make(map[string]struct{})
	for _, g := range games {
		m[g.Day()] = struct{}{}
	}
	return m
}

func indexTimes(games []*domain.Game) map[string]struct{} {
	m := make(map[string]struct{})
	for _, g := range games {
		m[g.Time()] = struct{}{}
	}
	return m
}

func sortedKeys(m map[string]struct{}, less func(a, b string) bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func dayLess(a, b string) bool {
	ai, aok := weekOrder[a]
	bi, bok := weekOrder[b]
	switch {
	case aok && bok:
		return ai < bi
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	default:
		return a < b
	}
}

func timeLess(a, b string) bool {
	return parseTimeMinutes(a) < parseTimeMinutes(b)
}

func positionMap(labels []string) map[string]int {
	m := make(map[string]int, len(labels))
	for i, l := range labels {
		m[l] = i
	}
	return m
}

// parseTimeMinutes parses "HH:MM", "H:MM", or "H:MM AM/PM" into minutes
// since midnight. When the meridiem is absent, the heuristic documented
// in spec §4.B applies: 12:xx and 11:00 are PM, 11:01..11:59 are AM, and
// every other unmarked hour is AM. This heuristic is idiosyncratic (an
// artifact of the original scheduler). Build always sorts times with
// DefaultMeridiemHeuristic and takes no other heuristic; a different rule
// can only be applied by calling ParseTimeMinutesWithMeridiemHeuristic
// directly.
func parseTimeMinutes(s string) int {
	return ParseTimeMinutesWithMeridiemHeuristic(s, DefaultMeridiemHeuristic)
}

// MeridiemHeuristic decides AM/PM for an unmarked hour in the 11..12
// range, where the convention is ambiguous without more context.
type MeridiemHeuristic func(hour, minute int) bool // true = PM

// DefaultMeridiemHeuristic reproduces the original scheduler's rule:
// 12:xx and 11:00 are treated as PM; 11:01..11:59 as AM.
func DefaultMeridiemHeuristic(hour, minute int) bool {
	if hour == 12 {
		return true
	}
	if hour == 11 {
		return minute == 0
	}
	return false
}

// ParseTimeMinutesWithMeridiemHeuristic parses a time label into minutes
// since midnight using the given heuristic for meridiem-less 11/12
// o'clock labels. Unparseable labels sort last (1<<30) rather than
// panicking, so a malformed fixture degrades gracefully instead of
// crashing the indexer.
func ParseTimeMinutesWithMeridiemHeuristic(s string, heuristic MeridiemHeuristic) int {
	raw := strings.TrimSpace(s)
	upper := strings.ToUpper(raw)

	isPM := strings.Contains(upper, "PM")
	isAM := strings.Contains(upper, "AM")
	hm := upper
	hm = strings.TrimSuffix(hm, "PM")
	hm = strings.TrimSuffix(hm, "AM")
	hm = strings.TrimSpace(hm)

	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 1 << 30
	}
	hour, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minute, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 1 << 30
	}

	switch {
	case isPM:
		if hour != 12 {
			hour += 12
		}
	case isAM:
		if hour == 12 {
			hour = 0
		}
	default:
		if heuristic(hour, minute) {
			if hour != 12 {
				hour += 12
			}
		} else if hour == 12 {
			hour = 0
		}
	}

	return hour*60 + minute
}
