package domain

import "testing"

func TestNewRefereeDefaults(t *testing.T) {
	r := NewReferee("Pat Lee", "pat@example.com", "555-0100", []int{1, 0, 1, 1})
	if r.Experience() != 3 || r.Effort() != 3 {
		t.Fatalf("expected default experience/effort 3/3, got %d/%d", r.Experience(), r.Effort())
	}
	if r.MaxHoursPerWeek() != 20 {
		t.Fatalf("expected default max hours 20, got %d", r.MaxHoursPerWeek())
	}
	if !r.AvailableAt(0) || r.AvailableAt(1) || !r.AvailableAt(2) {
		t.Fatalf("availability vector not copied correctly")
	}
	if r.AvailableAt(99) {
		t.Fatalf("out-of-range availability index should report unavailable, not panic")
	}
}

func TestExperienceEffortClamp(t *testing.T) {
	r := NewReferee("Pat Lee", "", "", nil)

	r.SetExperience(9)
	if r.Experience() != 5 {
		t.Fatalf("expected experience clamped to 5, got %d", r.Experience())
	}
	r.SetExperience(-3)
	if r.Experience() != 1 {
		t.Fatalf("expected experience clamped to 1, got %d", r.Experience())
	}
	if got := r.ExperienceNormalized(); got != 0 {
		t.Fatalf("expected normalized experience 0 at raw 1, got %v", got)
	}

	r.SetExperience(5)
	if got := r.ExperienceNormalized(); got != 1 {
		t.Fatalf("expected normalized experience 1 at raw 5, got %v", got)
	}

	r.SetEffort(0)
	if r.Effort() != 1 {
		t.Fatalf("expected effort clamped to 1, got %d", r.Effort())
	}
}

func TestMaxHoursPerWeekClamp(t *testing.T) {
	r := NewReferee("Pat Lee", "", "", nil)
	r.SetMaxHoursPerWeek(-5)
	if r.MaxHoursPerWeek() != 0 {
		t.Fatalf("expected max hours clamped to 0, got %d", r.MaxHoursPerWeek())
	}
}

func TestAssignedGamesIdempotent(t *testing.T) {
	r := NewReferee("Pat Lee", "", "", nil)
	r.AddAssignedGame(4)
	r.AddAssignedGame(4)
	if got := r.AssignedGames(); len(got) != 1 {
		t.Fatalf("expected one assigned game after duplicate add, got %v", got)
	}
	r.RemoveAssignedGame(4)
	if got := r.AssignedGames(); len(got) != 0 {
		t.Fatalf("expected no assigned games after removal, got %v", got)
	}
}

func TestOptimizedGamesIdempotentAndClearable(t *testing.T) {
	r := NewReferee("Pat Lee", "", "", nil)
	g := NewGame(1, "Monday", "17:45", "Field 1", "Open – Top Gun", 1, 2)

	r.AddOptimizedGame(g)
	r.AddOptimizedGame(g)
	if got := r.OptimizedGames(); len(got) != 1 {
		t.Fatalf("expected optimized games deduplicated, got %d", len(got))
	}

	r.ClearOptimizedGames()
	if got := r.OptimizedGames(); len(got) != 0 {
		t.Fatalf("expected optimized games cleared, got %d", len(got))
	}
}
