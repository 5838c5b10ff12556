package xlsx

import "testing"

func TestIsAvailableCell(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"FALSE": false,
		"false": false,
		"1":     true,
		"TRUE":  true,
		"x":     true,
	}
	for in, want := range cases {
		if got := isAvailableCell(in); got != want {
			t.Errorf("isAvailableCell(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGenerateAvailabilityTemplateRoundTrip(t *testing.T) {
	days := []string{"Monday", "Tuesday"}
	times := []string{"6:00 PM", "7:00 PM"}
	names := []string{"Alice", "Bob"}

	f, err := GenerateAvailabilityTemplate(days, times, names)
	if err != nil {
		t.Fatalf("GenerateAvailabilityTemplate: %v", err)
	}

	if err := f.SetCellValue(availabilitySheet, "F3", "1"); err != nil {
		t.Fatalf("setting availability cell: %v", err)
	}

	avail, err := ParseAvailabilityTemplate(f, days, times)
	if err != nil {
		t.Fatalf("ParseAvailabilityTemplate: %v", err)
	}

	alice, ok := avail["Alice"]
	if !ok {
		t.Fatalf("expected Alice in parsed availability, got %v", avail)
	}
	if len(alice) != len(days)*len(times) {
		t.Fatalf("len(alice) = %d, want %d", len(alice), len(days)*len(times))
	}
	if alice[0] != 1 {
		t.Errorf("alice[0] = %d, want 1 (Monday 6:00 PM marked available)", alice[0])
	}
	if alice[1] != 0 {
		t.Errorf("alice[1] = %d, want 0 (untouched slot)", alice[1])
	}

	if _, ok := avail["Bob"]; !ok {
		t.Errorf("expected Bob in parsed availability, got %v", avail)
	}
}
