package metrics

import (
	"math"
	"time"

	"github.com/phrazzld/fitcore/internal/domain"
)

// Age returns the age in whole years on the calendar date of now for someone
// born on dateOfBirth (YYYY-MM-DD or RFC 3339).
func Age(dateOfBirth string, now time.Time) (int, error) {
	birth, err := parseDate(dateOfBirth)
	if err != nil {
		return 0, err
	}
	return AgeOn(birth, now), nil
}

// AgeOn returns the age in whole years on the calendar date of now. The year
// difference is reduced by one while now precedes the birthday in its year.
// A birth date after now yields 0.
func AgeOn(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// BMI returns the body-mass index for a weight in kg and a height in cm.
func BMI(weight, height float64) float64 {
	meters := height / 100
	return weight / (meters * meters)
}

// BMICategoryFor classifies a body-mass index. Boundaries belong to the
// higher category.
func BMICategoryFor(bmi float64) domain.BMICategory {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight
	case bmi < 25:
		return domain.BMINormal
	case bmi < 30:
		return domain.BMIOverweight
	default:
		return domain.BMIObese
	}
}

// BodyFat estimates body-fat percentage with the U.S. Navy circumference
// method. All measurements are in cm and waist must exceed neck.
//
// Men use the waist-neck formula. Everyone else uses the waist+hips-neck
// formula; when hips is nil or not positive it is approximated as waist × 1.1,
// which is an estimate and not measured data.
func BodyFat(gender domain.Gender, waist, neck, height float64, hips *float64) float64 {
	if gender == domain.GenderMale {
		return 495/(1.0324-0.19077*math.Log10(waist-neck)+0.15456*math.Log10(height)) - 450
	}

	h := waist * 1.1
	if hips != nil && *hips > 0 {
		h = *hips
	}
	return 495/(1.29579-0.35004*math.Log10(waist+h-neck)+0.22100*math.Log10(height)) - 450
}
