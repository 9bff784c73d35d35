package metrics

import (
	"fmt"

	"github.com/phrazzld/fitcore/internal/domain"
)

const (
	poundsPerKilogram  = 2.20462
	centimetresPerFoot = 30.48
)

// ConvertWeight converts a weight between kg and lbs.
func ConvertWeight(value float64, from, to domain.WeightUnit) (float64, error) {
	if !from.IsValid() || !to.IsValid() {
		return 0, fmt.Errorf("weight %q to %q: %w", from, to, domain.ErrUnknownUnit)
	}
	switch {
	case from == to:
		return value, nil
	case from == domain.Kilograms:
		return value * poundsPerKilogram, nil
	default:
		return value / poundsPerKilogram, nil
	}
}

// ConvertHeight converts a height between cm and ft.
func ConvertHeight(value float64, from, to domain.HeightUnit) (float64, error) {
	if !from.IsValid() || !to.IsValid() {
		return 0, fmt.Errorf("height %q to %q: %w", from, to, domain.ErrUnknownUnit)
	}
	switch {
	case from == to:
		return value, nil
	case from == domain.Centimetres:
		return value / centimetresPerFoot, nil
	default:
		return value * centimetresPerFoot, nil
	}
}
