package schedparams

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML shape for a run's parameters, in the
// same style as the teacher's internal/config: a thin struct with yaml
// tags, loaded and validated in one step.
type FileConfig struct {
	MaxHoursPerWeek         *int     `yaml:"max_hours_per_week"`
	MaxHoursPerDay          *int     `yaml:"max_hours_per_day"`
	WeightHourBalancing     *float64 `yaml:"weight_hour_balancing"`
	WeightSkillCombo        *float64 `yaml:"weight_skill_combo"`
	WeightLowSkillPenalty   *float64 `yaml:"weight_low_skill_penalty"`
	WeightShiftBlockPenalty *float64 `yaml:"weight_shift_block_penalty"`
	WeightEffortBonus       *float64 `yaml:"weight_effort_bonus"`
}

// LoadFromFile reads a YAML parameter file and applies it over Defaults().
// A missing or unreadable file is returned as an error.
func LoadFromFile(path string) (Params, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, nil, fmt.Errorf("reading parameter file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML bytes into Params, via the same map-based
// Apply used for programmatic options, so file-sourced and code-sourced
// parameters go through one validation path.
func LoadFromBytes(data []byte) (Params, []string, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Params{}, nil, fmt.Errorf("parsing parameter file: %w", err)
	}

	options := make(map[string]float64)
	if fc.MaxHoursPerWeek != nil {
		options["max_hours_per_week"] = float64(*fc.MaxHoursPerWeek)
	}
	if fc.MaxHoursPerDay != nil {
		options["max_hours_per_day"] = float64(*fc.MaxHoursPerDay)
	}
	if fc.WeightHourBalancing != nil {
		options["weight_hour_balancing"] = *fc.WeightHourBalancing
	}
	if fc.WeightSkillCombo != nil {
		options["weight_skill_combo"] = *fc.WeightSkillCombo
	}
	if fc.WeightLowSkillPenalty != nil {
		options["weight_low_skill_penalty"] = *fc.WeightLowSkillPenalty
	}
	if fc.WeightShiftBlockPenalty != nil {
		options["weight_shift_block_penalty"] = *fc.WeightShiftBlockPenalty
	}
	if fc.WeightEffortBonus != nil {
		options["weight_effort_bonus"] = *fc.WeightEffortBonus
	}

	params, warnings := Apply(options)
	return params, warnings, nil
}
