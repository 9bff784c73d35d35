package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/fitcore/internal/config"
	"github.com/phrazzld/fitcore/internal/domain"
	"github.com/phrazzld/fitcore/internal/domain/metrics"
	"github.com/phrazzld/fitcore/internal/platform/logger"
	"github.com/phrazzld/fitcore/internal/validation"
)

// application wires the validator and the calculator configured for one run.
type application struct {
	validator  *validation.Validator
	calculator metrics.Calculator
}

// result is the JSON document written to stdout.
type result struct {
	Kind       validation.Kind       `json:"kind"`
	Record     any                   `json:"record,omitempty"`
	Metrics    any                   `json:"metrics,omitempty"`
	Violations validation.Violations `json:"violations,omitempty"`
}

// setMetrics are derived from a single workout set.
type setMetrics struct {
	OneRepMax *float64 `json:"oneRepMax,omitempty"`
	Volume    float64  `json:"volume"`
}

// nutritionMetrics are derived from a nutrient record with positive calories.
type nutritionMetrics struct {
	Density    float64                  `json:"density"`
	MacroRatio metrics.MacroPercentages `json:"macroRatio"`
}

func newApplication(cfg *config.Config) (*application, error) {
	loc, err := cfg.Metrics.Location()
	if err != nil {
		return nil, err
	}
	clock, err := cfg.Metrics.Clock(loc)
	if err != nil {
		return nil, err
	}

	params, err := metrics.NewParams(metrics.ParamsConfig{
		WaterMLPerKg:      cfg.Metrics.WaterMLPerKg,
		OneRepMaxRepLimit: cfg.Metrics.OneRepMaxRepLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("building metric params: %w", err)
	}

	calculator, err := metrics.NewCalculator(params, metrics.WithClock(clock), metrics.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("creating calculator: %w", err)
	}

	return &application{
		validator:  validation.New(),
		calculator: calculator,
	}, nil
}

// process validates raw as kind and derives the metrics the record supports.
// A record that fails validation is not an error: its violations are
// returned in the result.
func (a *application) process(ctx context.Context, kind validation.Kind, raw []byte) (*result, error) {
	log := logger.FromContext(ctx).With("kind", kind)

	record, err := a.validator.Record(kind, raw)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			log.Info("record rejected", "violations", len(verr.Violations), "fields", verr.Violations.Fields())
			return &result{Kind: kind, Violations: verr.Violations}, nil
		}
		return nil, err
	}
	log.Debug("record validated")

	derived, err := a.derive(record)
	if err != nil {
		return nil, fmt.Errorf("deriving metrics for %s: %w", kind, err)
	}
	if derived == nil {
		log.Debug("no metrics for record kind")
	}

	return &result{Kind: kind, Record: record, Metrics: derived}, nil
}

// derive returns the metrics for record, or nil when its kind has none.
func (a *application) derive(record any) (any, error) {
	switch r := record.(type) {
	case domain.UserProfile:
		return a.calculator.ProfileMetrics(r)

	case domain.Set:
		m := setMetrics{Volume: metrics.TrainingVolume([]domain.Set{r})}
		if r.Weight != nil && r.Reps != nil {
			orm := a.calculator.OneRepMax(*r.Weight, *r.Reps)
			m.OneRepMax = &orm
		}
		return m, nil

	case domain.NutritionInfo:
		// Density and ratio are not finite without calories
		if r.Calories <= 0 {
			return nil, nil
		}
		return nutritionMetrics{
			Density:    metrics.NutritionDensity(r),
			MacroRatio: metrics.MacroRatio(r),
		}, nil

	default:
		return nil, nil
	}
}
