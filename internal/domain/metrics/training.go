package metrics

import "github.com/phrazzld/fitcore/internal/domain"

// OneRepMax estimates the heaviest single repetition with the Epley formula
// weight × (1 + reps/30). A single rep is already a max, and above 12 reps
// the formula is unreliable, so both cases return weight unchanged.
func OneRepMax(weight float64, reps int) float64 {
	return oneRepMax(weight, reps, defaultParams)
}

func oneRepMax(weight float64, reps int, params *Params) float64 {
	if reps == 1 || reps > params.OneRepMaxRepLimit {
		return weight
	}
	return weight * (1 + float64(reps)/30)
}

// TrainingVolume sums weight × reps over the sets that record both.
func TrainingVolume(sets []domain.Set) float64 {
	var total float64
	for _, s := range sets {
		if s.Weight == nil || s.Reps == nil {
			continue
		}
		total += *s.Weight * float64(*s.Reps)
	}
	return total
}
