package fixture

import "testing"

const sample = `
referees:
  - name: Alice
    email: alice@example.com
    experience: 4
    effort: 2
    max_hours_per_week: 15
    assigned_games: [1]
    availability: [1, 1, 0, 1]
  - name: Bob
    availability: [0, 1, 1, 1]
games:
  - number: 1
    day: Monday
    time: "6:00 PM"
    location: Field 1
    difficulty: TBD
    min_refs: 1
    max_refs: 2
  - number: 2
    day: Monday
    time: "7:00 PM"
    location: Field 1
    difficulty: Open – Top Gun
    min_refs: 1
    max_refs: 2
`

func TestParse(t *testing.T) {
	refs, games, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(refs) != 2 {
		t.Fatalf("len(refs) = %d, want 2", len(refs))
	}
	if refs[0].Name() != "Alice" || refs[0].Experience() != 4 || refs[0].Effort() != 2 {
		t.Errorf("Alice not parsed correctly: name=%q experience=%d effort=%d",
			refs[0].Name(), refs[0].Experience(), refs[0].Effort())
	}
	if refs[0].MaxHoursPerWeek() != 15 {
		t.Errorf("MaxHoursPerWeek = %d, want 15", refs[0].MaxHoursPerWeek())
	}
	assigned := refs[0].AssignedGames()
	if len(assigned) != 1 || assigned[0] != 1 {
		t.Errorf("AssignedGames = %v, want [1]", assigned)
	}
	if refs[1].Experience() != 3 {
		t.Errorf("Bob default experience = %d, want 3", refs[1].Experience())
	}

	if len(games) != 2 {
		t.Fatalf("len(games) = %d, want 2", len(games))
	}
	if games[0].Number() != 1 || games[0].Day() != "Monday" {
		t.Errorf("game 0 not parsed correctly: %+v", games[0])
	}
}
