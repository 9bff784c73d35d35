package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/phrazzld/fitcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge_BirthdayBoundary(t *testing.T) {
	t.Parallel()

	dayBefore := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	birthday := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	age, err := Age("2000-06-15", dayBefore)
	require.NoError(t, err)
	assert.Equal(t, 23, age)

	age, err = Age("2000-06-15", birthday)
	require.NoError(t, err)
	assert.Equal(t, 24, age)
}

func TestAge_Formats(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	age, err := Age("1990-03-01T00:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, 34, age)

	age, err = Age("1990-12-31", now)
	require.NoError(t, err)
	assert.Equal(t, 33, age)

	_, err = Age("03/01/1990", now)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestAgeOn_FutureBirthClampsToZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, AgeOn(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestBMI(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 22.857, BMI(70, 175), 0.001)
	assert.InDelta(t, 25.0, BMI(100, 200), 1e-9)
}

func TestBMICategoryFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		bmi      float64
		expected domain.BMICategory
	}{
		{16, domain.BMIUnderweight},
		{18.49, domain.BMIUnderweight},
		{18.5, domain.BMINormal},
		{24.99, domain.BMINormal},
		{25, domain.BMIOverweight},
		{29.99, domain.BMIOverweight},
		{30, domain.BMIObese},
		{42, domain.BMIObese},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, BMICategoryFor(tc.bmi), "bmi %v", tc.bmi)
	}
}

func TestBodyFat(t *testing.T) {
	t.Parallel()

	male := BodyFat(domain.GenderMale, 85, 38, 178, nil)
	wantMale := 495/(1.0324-0.19077*math.Log10(47)+0.15456*math.Log10(178)) - 450
	assert.InDelta(t, wantMale, male, 1e-9)
	assert.InDelta(t, 16.6, male, 0.5)

	hips := 97.0
	female := BodyFat(domain.GenderFemale, 72, 33, 165, &hips)
	wantFemale := 495/(1.29579-0.35004*math.Log10(72+97-33)+0.22100*math.Log10(165)) - 450
	assert.InDelta(t, wantFemale, female, 1e-9)
}

func TestBodyFat_EstimatesMissingHips(t *testing.T) {
	t.Parallel()

	estimated := 80 * 1.1
	withEstimate := BodyFat(domain.GenderFemale, 80, 34, 168, &estimated)
	assert.InDelta(t, withEstimate, BodyFat(domain.GenderFemale, 80, 34, 168, nil), 1e-9)

	zero := 0.0
	assert.InDelta(t, withEstimate, BodyFat(domain.GenderFemale, 80, 34, 168, &zero), 1e-9, "zero hips is not a measurement")

	// Everyone who is not male uses the hips formula
	assert.InDelta(t, withEstimate, BodyFat(domain.GenderOther, 80, 34, 168, nil), 1e-9)
}
