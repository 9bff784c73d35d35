package metrics

import (
	"math"

	"github.com/phrazzld/fitcore/internal/domain"
)

// Mifflin-St Jeor sex offsets. Genders other than male and female use the
// arithmetic midpoint of the two.
const (
	maleBMROffset    = 5.0
	femaleBMROffset  = -161.0
	neutralBMROffset = -78.0
)

// defaultParams backs the package-level functions. It is never mutated.
var defaultParams = NewDefaultParams()

// BMR returns the basal metabolic rate in kcal/day using the Mifflin-St Jeor
// equation. Weight is in kg, height in cm and age in whole years.
func BMR(weight, height float64, age int, gender domain.Gender) float64 {
	base := 10*weight + 6.25*height - 5*float64(age)

	switch gender {
	case domain.GenderMale:
		return base + maleBMROffset
	case domain.GenderFemale:
		return base + femaleBMROffset
	default:
		return base + neutralBMROffset
	}
}

// TDEE scales a basal metabolic rate by the activity multiplier of level.
// An unknown level returns domain.ErrUnknownActivityLevel.
func TDEE(bmr float64, level domain.ActivityLevel) (float64, error) {
	return tdee(bmr, level, defaultParams)
}

func tdee(bmr float64, level domain.ActivityLevel, params *Params) (float64, error) {
	m, err := activityMultiplier(params.ActivityMultipliers, level)
	if err != nil {
		return 0, err
	}
	return bmr * m, nil
}

// WaterIntake returns the recommended daily water intake in ml:
// 35 ml per kg of body weight scaled by the hydration multiplier of level,
// rounded to the nearest millilitre.
func WaterIntake(weight float64, level domain.ActivityLevel) (int, error) {
	return waterIntake(weight, level, defaultParams)
}

func waterIntake(weight float64, level domain.ActivityLevel, params *Params) (int, error) {
	m, err := activityMultiplier(params.HydrationMultipliers, level)
	if err != nil {
		return 0, err
	}
	return int(math.Round(weight * params.WaterMLPerKg * m)), nil
}

// CaloriesBurned estimates the energy spent on an activity from its MET value:
// MET × weight (kg) × duration (hours), rounded to whole kcal. Duration is in minutes.
func CaloriesBurned(weight, durationMinutes, met float64) int {
	hours := durationMinutes / 60
	return int(math.Round(met * weight * hours))
}
