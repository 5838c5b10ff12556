package solve

import (
	"testing"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/schedparams"
)

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		Optimal:    "optimal",
		Feasible:   "feasible",
		Infeasible: "infeasible",
		Error:      "error",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestRelaxedHourCapsScalesUp(t *testing.T) {
	base := schedparams.Defaults()
	relaxed := relaxedHourCaps(base)
	if relaxed.MaxHoursPerDay <= base.MaxHoursPerDay {
		t.Errorf("MaxHoursPerDay not relaxed: base=%d relaxed=%d", base.MaxHoursPerDay, relaxed.MaxHoursPerDay)
	}
	if relaxed.MaxHoursPerWeek <= base.MaxHoursPerWeek {
		t.Errorf("MaxHoursPerWeek not relaxed: base=%d relaxed=%d", base.MaxHoursPerWeek, relaxed.MaxHoursPerWeek)
	}
	if relaxed.WeightEffortBonus != base.WeightEffortBonus {
		t.Errorf("relaxedHourCaps should not touch weights, got %v want %v",
			relaxed.WeightEffortBonus, base.WeightEffortBonus)
	}
}

func TestCloneRefereeCopiesScalarFields(t *testing.T) {
	r := domain.NewReferee("Alice", "alice@example.com", "555-0100", []int{1, 0, 1})
	r.SetExperience(5)
	r.SetEffort(2)
	r.SetMaxHoursPerWeek(12)
	r.AddAssignedGame(7)

	clone := cloneReferee(r, []int{1, 1, 1})

	if clone.Experience() != 5 {
		t.Errorf("Experience = %d, want 5", clone.Experience())
	}
	if clone.Effort() != 2 {
		t.Errorf("Effort = %d, want 2", clone.Effort())
	}
	if clone.MaxHoursPerWeek() != 12 {
		t.Errorf("MaxHoursPerWeek = %d, want 12", clone.MaxHoursPerWeek())
	}
	assigned := clone.AssignedGames()
	if len(assigned) != 1 || assigned[0] != 7 {
		t.Errorf("AssignedGames = %v, want [7]", assigned)
	}
	if len(clone.Availability()) != 3 || clone.Availability()[0] != 1 {
		t.Errorf("Availability = %v, want the overridden vector", clone.Availability())
	}
	// The original referee must be untouched by constructing a clone.
	if len(r.Availability()) != 3 || r.Availability()[1] != 0 {
		t.Errorf("original referee availability mutated: %v", r.Availability())
	}
}
