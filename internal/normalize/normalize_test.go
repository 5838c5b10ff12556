package normalize

import (
	"testing"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/slotindex"
)

func refWithCap(name string, cap int) *domain.Referee {
	r := domain.NewReferee(name, "", "", nil)
	r.SetMaxHoursPerWeek(cap)
	return r
}

func TestCapSetThreshold(t *testing.T) {
	// caps: 20, 20, 20, 5 -> mean = 16.25, threshold = 13.25
	refs := []*domain.Referee{
		refWithCap("A", 20),
		refWithCap("B", 20),
		refWithCap("C", 20),
		refWithCap("D", 5),
	}
	capSet := CapSet(refs)
	if len(capSet) != 3 {
		t.Fatalf("expected 3 refs in cap set, got %d: %v", len(capSet), capSet)
	}
	for _, i := range capSet {
		if i == 3 {
			t.Fatalf("referee D (cap=5) should be excluded from the cap set")
		}
	}
}

func TestCapSetEmptyForNoReferees(t *testing.T) {
	if got := CapSet(nil); got != nil {
		t.Fatalf("expected nil cap set for no referees, got %v", got)
	}
}

func TestComputeBaselineScaleSanity(t *testing.T) {
	refs := []*domain.Referee{
		refWithCap("A", 20),
		refWithCap("B", 20),
	}
	games := []*domain.Game{
		domain.NewGame(1, "Monday", "17:45", "Field 1", "Open – Top Gun", 1, 2),
		domain.NewGame(2, "Tuesday", "17:45", "Field 1", "TBD", 1, 2),
	}
	idx := slotindex.Build(games)
	capSet := CapSet(refs)

	n := Compute(refs, games, idx, capSet)

	if n.Effort <= 0 || n.Balance <= 0 || n.Skill <= 0 || n.TimeBlock <= 0 || n.Pairing <= 0 {
		t.Fatalf("expected all normalizers to be strictly positive, got %+v", n)
	}
	if n.MeanSkill != 3 {
		t.Fatalf("expected default experience 3 to give mean skill 3, got %v", n.MeanSkill)
	}
}

func TestComputeHandlesEmptyCapSetWithoutDividingByZero(t *testing.T) {
	refs := []*domain.Referee{refWithCap("A", 0)} // mean=0, threshold=-3; still in cap set since 0 > -3
	games := []*domain.Game{domain.NewGame(1, "Monday", "17:45", "Field 1", "TBD", 1, 1)}
	idx := slotindex.Build(games)

	// Force an empty cap set scenario directly.
	n := Compute(refs, games, idx, nil)
	if n.Effort <= 0 || n.Balance <= 0 {
		t.Fatalf("expected positive fallback normalizers with empty cap set, got %+v", n)
	}
}
