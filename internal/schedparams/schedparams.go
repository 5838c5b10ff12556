// Package schedparams is the parameter facade (component G): it turns a
// map of named run options into a validated, defaulted Params struct. It
// follows the teacher's config.go convention of a typed struct with
// clamping setters rather than reflective/duck-typed option handling.
package schedparams

// Params holds every option the MILP builder and normalizer consult.
// Unknown keys passed to Apply are ignored (recorded as warnings, not
// errors), per spec §4.G and the "closed enumeration" design note in §9.
type Params struct {
	MaxHoursPerWeek int
	MaxHoursPerDay  int

	WeightHourBalancing     float64
	WeightSkillCombo        float64
	WeightLowSkillPenalty   float64
	WeightShiftBlockPenalty float64
	WeightEffortBonus       float64
}

// Defaults returns the nominal parameter set from spec §4.G.
func Defaults() Params {
	return Params{
		MaxHoursPerWeek:         20,
		MaxHoursPerDay:          8,
		WeightHourBalancing:     1.0,
		WeightSkillCombo:        1.0,
		WeightLowSkillPenalty:   1.0,
		WeightShiftBlockPenalty: 1.0,
		WeightEffortBonus:       1.0,
	}
}

// recognizedOptions is the closed enumeration of keys Apply understands.
var recognizedOptions = map[string]func(*Params, float64){
	"max_hours_per_week":         func(p *Params, v float64) { p.MaxHoursPerWeek = int(v) },
	"max_hours_per_day":          func(p *Params, v float64) { p.MaxHoursPerDay = int(v) },
	"weight_hour_balancing":      func(p *Params, v float64) { p.WeightHourBalancing = v },
	"weight_skill_combo":         func(p *Params, v float64) { p.WeightSkillCombo = v },
	"weight_low_skill_penalty":   func(p *Params, v float64) { p.WeightLowSkillPenalty = v },
	"weight_shift_block_penalty": func(p *Params, v float64) { p.WeightShiftBlockPenalty = v },
	"weight_effort_bonus":        func(p *Params, v float64) { p.WeightEffortBonus = v },
}

// Apply starts from Defaults() and overlays recognized options from the
// input map, returning the warnings produced for any unrecognized key.
func Apply(options map[string]float64) (Params, []string) {
	p := Defaults()
	var warnings []string
	for key, value := range options {
		setter, ok := recognizedOptions[key]
		if !ok {
			warnings = append(warnings, "unrecognized parameter option: "+key)
			continue
		}
		setter(&p, value)
	}
	p.clamp()
	return p, warnings
}

// clamp enforces §7: weights in [0, ∞), hour caps as nonnegative integers.
func (p *Params) clamp() {
	if p.MaxHoursPerWeek < 0 {
		p.MaxHoursPerWeek = 0
	}
	if p.MaxHoursPerDay < 0 {
		p.MaxHoursPerDay = 0
	}
	p.WeightHourBalancing = clampNonNegative(p.WeightHourBalancing)
	p.WeightSkillCombo = clampNonNegative(p.WeightSkillCombo)
	p.WeightLowSkillPenalty = clampNonNegative(p.WeightLowSkillPenalty)
	p.WeightShiftBlockPenalty = clampNonNegative(p.WeightShiftBlockPenalty)
	p.WeightEffortBonus = clampNonNegative(p.WeightEffortBonus)
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
