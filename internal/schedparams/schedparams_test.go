package schedparams

import "testing"

func TestApplyDefaults(t *testing.T) {
	p, warnings := Apply(nil)
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings for nil options, got %v", warnings)
	}
	if p != Defaults() {
		t.Fatalf("expected Apply(nil) to equal Defaults(), got %+v", p)
	}
}

func TestApplyOverridesRecognizedKeys(t *testing.T) {
	p, warnings := Apply(map[string]float64{
		"max_hours_per_week":    30,
		"weight_effort_bonus":   0,
		"weight_skill_combo":    4.5,
		"not_a_real_option_key": 1,
	})
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning for the unknown key, got %v", warnings)
	}
	if p.MaxHoursPerWeek != 30 {
		t.Fatalf("expected max_hours_per_week=30, got %d", p.MaxHoursPerWeek)
	}
	if p.WeightEffortBonus != 0 {
		t.Fatalf("expected weight_effort_bonus=0 (disabled), got %v", p.WeightEffortBonus)
	}
	if p.WeightSkillCombo != 4.5 {
		t.Fatalf("expected weight_skill_combo=4.5, got %v", p.WeightSkillCombo)
	}
}

func TestClampRejectsNegatives(t *testing.T) {
	p, _ := Apply(map[string]float64{
		"max_hours_per_week":    -10,
		"weight_hour_balancing": -2.5,
	})
	if p.MaxHoursPerWeek != 0 {
		t.Fatalf("expected negative hour cap clamped to 0, got %d", p.MaxHoursPerWeek)
	}
	if p.WeightHourBalancing != 0 {
		t.Fatalf("expected negative weight clamped to 0, got %v", p.WeightHourBalancing)
	}
}

func TestLoadFromBytes(t *testing.T) {
	yamlDoc := []byte("weight_effort_bonus: 2.5\nmax_hours_per_day: 6\n")
	p, warnings, err := LoadFromBytes(yamlDoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}
	if p.WeightEffortBonus != 2.5 || p.MaxHoursPerDay != 6 {
		t.Fatalf("expected overridden fields applied, got %+v", p)
	}
	if p.MaxHoursPerWeek != 20 {
		t.Fatalf("expected unspecified field to keep default, got %d", p.MaxHoursPerWeek)
	}
}
