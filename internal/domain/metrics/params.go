package metrics

import (
	"fmt"
	"maps"
	"math"

	"github.com/phrazzld/fitcore/internal/domain"
)

// MacroSplit is the share of daily energy assigned to each macronutrient.
// The three shares of a split sum to 1.
type MacroSplit struct {
	Protein       float64
	Fat           float64
	Carbohydrates float64
}

// Sum returns the total share of the split.
func (s MacroSplit) Sum() float64 {
	return s.Protein + s.Fat + s.Carbohydrates
}

// Params defines the lookup tables and constants used by the calculators.
type Params struct {
	// TDEE multipliers per activity level
	ActivityMultipliers map[domain.ActivityLevel]float64

	// Hydration multipliers per activity level, applied to WaterMLPerKg
	HydrationMultipliers map[domain.ActivityLevel]float64
	WaterMLPerKg         float64

	// Macro splits per goal. Valid goals without an entry use the split of
	// FallbackGoal.
	MacroSplits  map[domain.FitnessGoal]MacroSplit
	FallbackGoal domain.FitnessGoal

	FiberGramsPer1000Kcal float64
	SodiumMilligrams      float64
	SugarCalorieShare     float64

	// Above this many reps the Epley estimate is not applied
	OneRepMaxRepLimit int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values and absent map keys keep the defaults.
type ParamsConfig struct {
	ActivityMultipliers  map[domain.ActivityLevel]float64
	HydrationMultipliers map[domain.ActivityLevel]float64
	MacroSplits          map[domain.FitnessGoal]MacroSplit

	WaterMLPerKg          float64
	FiberGramsPer1000Kcal float64
	SodiumMilligrams      float64
	SugarCalorieShare     float64
	OneRepMaxRepLimit     int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		ActivityMultipliers: map[domain.ActivityLevel]float64{
			domain.ActivityLevelSedentary:        1.2,
			domain.ActivityLevelLightlyActive:    1.375,
			domain.ActivityLevelModeratelyActive: 1.55,
			domain.ActivityLevelVeryActive:       1.725,
			domain.ActivityLevelExtremelyActive:  1.9,
		},

		HydrationMultipliers: map[domain.ActivityLevel]float64{
			domain.ActivityLevelSedentary:        1.0,
			domain.ActivityLevelLightlyActive:    1.1,
			domain.ActivityLevelModeratelyActive: 1.2,
			domain.ActivityLevelVeryActive:       1.4,
			domain.ActivityLevelExtremelyActive:  1.6,
		},
		WaterMLPerKg: 35,

		// Cutting keeps protein high, bulking favours carbs
		MacroSplits: map[domain.FitnessGoal]MacroSplit{
			domain.FitnessGoalLoseWeight:      {Protein: 0.35, Fat: 0.25, Carbohydrates: 0.40},
			domain.FitnessGoalBuildMuscle:     {Protein: 0.30, Fat: 0.25, Carbohydrates: 0.45},
			domain.FitnessGoalMaintainFitness: {Protein: 0.25, Fat: 0.30, Carbohydrates: 0.45},
		},
		FallbackGoal: domain.FitnessGoalMaintainFitness,

		FiberGramsPer1000Kcal: 14,
		SodiumMilligrams:      2300,
		SugarCalorieShare:     0.10,

		OneRepMaxRepLimit: 12,
	}
}

// NewParams creates a new Params instance with custom configuration.
// It returns an error when an override would leave a table inconsistent.
func NewParams(config ParamsConfig) (*Params, error) {
	params := NewDefaultParams()

	for level, m := range config.ActivityMultipliers {
		if !level.IsValid() {
			return nil, fmt.Errorf("activity multiplier for %q: %w", level, domain.ErrUnknownActivityLevel)
		}
		params.ActivityMultipliers[level] = m
	}
	for level, m := range config.HydrationMultipliers {
		if !level.IsValid() {
			return nil, fmt.Errorf("hydration multiplier for %q: %w", level, domain.ErrUnknownActivityLevel)
		}
		params.HydrationMultipliers[level] = m
	}
	for goal, split := range config.MacroSplits {
		if !goal.IsValid() {
			return nil, fmt.Errorf("macro split for %q: %w", goal, domain.ErrUnknownFitnessGoal)
		}
		if math.Abs(split.Sum()-1) > 1e-9 {
			return nil, fmt.Errorf("macro split for %q sums to %g, want 1", goal, split.Sum())
		}
		params.MacroSplits[goal] = split
	}

	if config.WaterMLPerKg > 0 {
		params.WaterMLPerKg = config.WaterMLPerKg
	}
	if config.FiberGramsPer1000Kcal > 0 {
		params.FiberGramsPer1000Kcal = config.FiberGramsPer1000Kcal
	}
	if config.SodiumMilligrams > 0 {
		params.SodiumMilligrams = config.SodiumMilligrams
	}
	if config.SugarCalorieShare > 0 {
		params.SugarCalorieShare = config.SugarCalorieShare
	}
	if config.OneRepMaxRepLimit > 0 {
		params.OneRepMaxRepLimit = config.OneRepMaxRepLimit
	}

	return params, nil
}

// clone returns a deep copy of p.
func (p *Params) clone() *Params {
	c := *p
	c.ActivityMultipliers = maps.Clone(p.ActivityMultipliers)
	c.HydrationMultipliers = maps.Clone(p.HydrationMultipliers)
	c.MacroSplits = maps.Clone(p.MacroSplits)
	return &c
}

// splitFor resolves the macro split of a goal.
func (p *Params) splitFor(goal domain.FitnessGoal) (MacroSplit, error) {
	if !goal.IsValid() {
		return MacroSplit{}, fmt.Errorf("%q: %w", goal, domain.ErrUnknownFitnessGoal)
	}
	if split, ok := p.MacroSplits[goal]; ok {
		return split, nil
	}
	split, ok := p.MacroSplits[p.FallbackGoal]
	if !ok {
		return MacroSplit{}, fmt.Errorf("no split for %q or fallback %q: %w", goal, p.FallbackGoal, domain.ErrUnknownFitnessGoal)
	}
	return split, nil
}

// activityMultiplier looks up a level in table, failing on unknown levels.
func activityMultiplier(table map[domain.ActivityLevel]float64, level domain.ActivityLevel) (float64, error) {
	m, ok := table[level]
	if !ok {
		return 0, fmt.Errorf("%q: %w", level, domain.ErrUnknownActivityLevel)
	}
	return m, nil
}
