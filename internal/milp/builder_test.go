package milp

import (
	"testing"

	"github.com/derekprior/refsched/internal/domain"
	"github.com/derekprior/refsched/internal/normalize"
	"github.com/derekprior/refsched/internal/schedparams"
	"github.com/derekprior/refsched/internal/slotindex"
)

func oneSlotInstance() ([]*domain.Referee, []*domain.Game, *slotindex.Index) {
	refs := []*domain.Referee{
		domain.NewReferee("Alice", "alice@example.com", "", []int{1, 1}),
		domain.NewReferee("Bob", "bob@example.com", "", []int{1, 1}),
	}
	games := []*domain.Game{
		domain.NewGame(1, "Monday", "6:00 PM", "Field 1", "TBD", 1, 2),
		domain.NewGame(2, "Monday", "7:00 PM", "Field 1", "TBD", 1, 2),
	}
	idx := slotindex.Build(games)
	return refs, games, idx
}

func TestBuildProducesExpectedDimensions(t *testing.T) {
	refs, games, idx := oneSlotInstance()
	capSet := normalize.CapSet(refs)
	norm := normalize.Compute(refs, games, idx, capSet)
	params := schedparams.Defaults()

	model, warnings, err := Build(refs, games, idx, params, norm, capSet)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if model.Dims.R != 2 {
		t.Errorf("R = %d, want 2", model.Dims.R)
	}
	if model.Dims.D != 1 {
		t.Errorf("D = %d, want 1", model.Dims.D)
	}
	if model.Dims.H != 2 {
		t.Errorf("H = %d, want 2", model.Dims.H)
	}
	if model.Dims.G != 1 {
		t.Errorf("G = %d, want 1", model.Dims.G)
	}

	if len(model.X) != model.Dims.R {
		t.Fatalf("len(X) = %d, want %d", len(model.X), model.Dims.R)
	}
	for r := range model.X {
		if len(model.X[r]) != model.Dims.D {
			t.Fatalf("len(X[%d]) = %d, want %d", r, len(model.X[r]), model.Dims.D)
		}
		for d := range model.X[r] {
			if len(model.X[r][d]) != model.Dims.H {
				t.Fatalf("len(X[%d][%d]) = %d, want %d", r, d, len(model.X[r][d]), model.Dims.H)
			}
			for h := range model.X[r][d] {
				if len(model.X[r][d][h]) != model.Dims.G {
					t.Fatalf("len(X[%d][%d][%d]) = %d, want %d", r, d, h, len(model.X[r][d][h]), model.Dims.G)
				}
			}
		}
	}
}

func TestBuildRejectsEmptyInstance(t *testing.T) {
	norm := normalize.Normalizers{Effort: 1, Balance: 1, Skill: 1, TimeBlock: 1, Pairing: 1}
	_, _, err := Build(nil, nil, slotindex.Build(nil), schedparams.Defaults(), norm, nil)
	if err == nil {
		t.Fatal("expected an error for an empty instance, got nil")
	}
}

func TestBuildWarnsOnUnresolvableManualAssignment(t *testing.T) {
	refs, games, idx := oneSlotInstance()
	refs[0].AddAssignedGame(999) // no such game
	capSet := normalize.CapSet(refs)
	norm := normalize.Compute(refs, games, idx, capSet)

	_, warnings, err := Build(refs, games, idx, schedparams.Defaults(), norm, capSet)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
}
