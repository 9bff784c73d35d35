package validation

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/fitcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `{
	"id": "user-1",
	"email": "ada@example.com",
	"firstName": "Ada",
	"lastName": "Lovelace",
	"dateOfBirth": "1990-06-15T00:00:00Z",
	"gender": "female",
	"height": 165,
	"weight": 60,
	"fitnessGoal": "lose_weight",
	"activityLevel": "moderately_active",
	"fitnessLevel": "intermediate",
	"createdAt": "2024-01-01T10:00:00Z",
	"updatedAt": "2024-01-02T10:00:00.123Z"
}`

// violationsOf extracts the violation list from a validation error.
func violationsOf(t *testing.T, err error) Violations {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %T", err)
	return verr.Violations
}

// withField returns the profile payload with key set to value, or removed
// when value is nil.
func withField(t *testing.T, base, key string, value any) []byte {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(base), &m))
	if value == nil {
		delete(m, key)
	} else {
		m[key] = value
	}
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return data
}

func TestUserProfile_AppliesDefaults(t *testing.T) {
	t.Parallel()

	profile, err := New().UserProfile([]byte(validProfile))
	require.NoError(t, err)

	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, domain.GenderFemale, profile.Gender)
	assert.Equal(t, time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), profile.DateOfBirth)
	assert.Equal(t, []string{}, profile.Allergies)
	assert.Equal(t, []string{}, profile.MedicalConditions)
	assert.Equal(t, "UTC", profile.Timezone)
	assert.Equal(t, domain.UnitSystemMetric, profile.PreferredUnits)
	assert.False(t, profile.IsOnboarded)
	assert.Equal(t, domain.SubscriptionTierFree, profile.SubscriptionTier)
	assert.Nil(t, profile.TargetWeight)
}

func TestUserProfile_KeepsProvidedOptionals(t *testing.T) {
	t.Parallel()

	raw := withField(t, validProfile, "timezone", "Europe/London")
	raw = withField(t, string(raw), "targetCalories", 1800)
	raw = withField(t, string(raw), "subscriptionTier", "pro")

	profile, err := New().UserProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, "Europe/London", profile.Timezone)
	require.NotNil(t, profile.TargetCalories)
	assert.Equal(t, 1800.0, *profile.TargetCalories)
	assert.Equal(t, domain.SubscriptionTierPro, profile.SubscriptionTier)
}

func TestUserProfile_MissingRequiredField(t *testing.T) {
	t.Parallel()

	required := []string{
		"id", "email", "firstName", "lastName", "dateOfBirth", "gender", "height",
		"weight", "fitnessGoal", "activityLevel", "fitnessLevel", "createdAt", "updatedAt",
	}

	v := New()
	for _, field := range required {
		field := field
		t.Run(field, func(t *testing.T) {
			t.Parallel()

			_, err := v.UserProfile(withField(t, validProfile, field, nil))
			violations := violationsOf(t, err)
			require.Len(t, violations, 1)
			assert.Equal(t, field, violations[0].Field)
			assert.Equal(t, ConstraintRequired, violations[0].Constraint)
		})
	}
}

func TestUserProfile_ReportsEveryViolation(t *testing.T) {
	t.Parallel()

	raw := withField(t, validProfile, "email", "not-an-email")
	raw = withField(t, string(raw), "height", 0)
	raw = withField(t, string(raw), "gender", "robot")
	raw = withField(t, string(raw), "firstName", "")
	raw = withField(t, string(raw), "profilePicture", "not a url")
	raw = withField(t, string(raw), "createdAt", "2024-01-01")
	raw = withField(t, string(raw), "weight", nil)

	_, err := New().UserProfile(raw)
	violations := violationsOf(t, err)

	got := make(map[string]string, len(violations))
	for _, v := range violations {
		got[v.Field] = v.Constraint
	}
	assert.Equal(t, map[string]string{
		"email":          "email",
		"height":         "gt",
		"gender":         "enum",
		"firstName":      "min",
		"profilePicture": "url",
		"createdAt":      "isodatetime",
		"weight":         "required",
	}, got)
}

func TestUserProfile_TypeViolations(t *testing.T) {
	t.Parallel()

	raw := withField(t, validProfile, "height", "tall")
	raw = withField(t, string(raw), "allergies", []any{"nuts", 7})
	raw = withField(t, string(raw), "isOnboarded", "yes")

	_, err := New().UserProfile(raw)
	violations := violationsOf(t, err)

	// a field that fails to decode is not reported again as missing
	assert.ElementsMatch(t, []string{"height", "allergies[1]", "isOnboarded"}, violations.Fields())
	for _, v := range violations {
		assert.Equal(t, ConstraintType, v.Constraint, v.Field)
	}
}

func TestUserProfile_NullIsAbsent(t *testing.T) {
	t.Parallel()

	v := New()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(validProfile), &m))
	m["timezone"] = nil
	m["targetWeight"] = nil
	raw, err := json.Marshal(m)
	require.NoError(t, err)

	profile, err := v.UserProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, "UTC", profile.Timezone)
	assert.Nil(t, profile.TargetWeight)

	m["email"] = nil
	raw, err = json.Marshal(m)
	require.NoError(t, err)

	_, err = v.UserProfile(raw)
	violations := violationsOf(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "email", violations[0].Field)
	assert.Equal(t, ConstraintRequired, violations[0].Constraint)
}

func TestUserProfile_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := New().UserProfile(withField(t, validProfile, "favouriteColour", "green"))
	assert.NoError(t, err)
}

func TestUserProfile_DateTimeFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value string
		valid bool
	}{
		{"utc", "2000-06-15T00:00:00Z", true},
		{"fractional seconds", "2000-06-15T00:00:00.123456Z", true},
		{"positive offset", "2000-06-15T00:00:00+05:00", false},
		{"zero offset", "2000-06-15T00:00:00+00:00", false},
		{"lowercase separators", "2000-06-15t00:00:00z", false},
		{"date only", "2000-06-15", false},
		{"impossible date", "2000-02-30T00:00:00Z", false},
	}

	v := New()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profile, err := v.UserProfile(withField(t, validProfile, "dateOfBirth", tc.value))
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, 2000, profile.DateOfBirth.Year())
				assert.Equal(t, time.June, profile.DateOfBirth.Month())
				assert.Equal(t, 15, profile.DateOfBirth.Day())
				return
			}
			violations := violationsOf(t, err)
			require.Len(t, violations, 1)
			assert.Equal(t, "dateOfBirth", violations[0].Field)
			assert.Equal(t, "isodatetime", violations[0].Constraint)
		})
	}
}

func TestValidator_RejectsNonObjects(t *testing.T) {
	t.Parallel()

	v := New()
	for _, raw := range []string{`[]`, `"profile"`, `42`, `null`, `{`} {
		_, err := v.UserProfile([]byte(raw))
		violations := violationsOf(t, err)
		require.Len(t, violations, 1, raw)
		assert.Equal(t, "", violations[0].Field)
		assert.Equal(t, ConstraintObject, violations[0].Constraint)
	}
}

func TestUserPreferences(t *testing.T) {
	t.Parallel()

	v := New()

	t.Run("defaults inside each group", func(t *testing.T) {
		prefs, err := v.UserPreferences([]byte(`{"notifications": {}, "workout": {}, "nutrition": {}}`))
		require.NoError(t, err)

		assert.Equal(t, domain.NotificationPreferences{
			WorkoutReminders: true,
			MealReminders:    true,
			ProgressUpdates:  true,
			Challenges:       true,
			SocialUpdates:    false,
		}, prefs.Notifications)
		assert.Equal(t, domain.WorkoutPreferences{
			PreferredWorkoutDuration: 60,
			RestDayPreference:        []float64{0, 6},
			EquipmentAvailable:       []string{},
			WorkoutEnvironment:       domain.WorkoutEnvironmentAny,
		}, prefs.Workout)
		assert.Equal(t, domain.NutritionPreferences{
			DietaryRestrictions: []string{},
			MealsPerDay:         3,
			CookingTime:         domain.CookingTimeModerate,
			BudgetRange:         domain.BudgetRangeMedium,
		}, prefs.Nutrition)
	})

	t.Run("groups are required", func(t *testing.T) {
		_, err := v.UserPreferences([]byte(`{"workout": {}}`))
		violations := violationsOf(t, err)
		assert.ElementsMatch(t, []string{"notifications", "nutrition"}, violations.Fields())
	})

	t.Run("nested paths", func(t *testing.T) {
		_, err := v.UserPreferences([]byte(`{
			"notifications": {"challenges": "often"},
			"workout": {"preferredWorkoutDuration": 10, "restDayPreference": [0, 7]},
			"nutrition": {"mealsPerDay": 9, "budgetRange": "lavish"}
		}`))
		violations := violationsOf(t, err)

		got := make(map[string]string, len(violations))
		for _, v := range violations {
			got[v.Field] = v.Constraint
		}
		assert.Equal(t, map[string]string{
			"notifications.challenges":         "type",
			"workout.preferredWorkoutDuration": "min",
			"workout.restDayPreference[1]":     "max",
			"nutrition.mealsPerDay":            "max",
			"nutrition.budgetRange":            "enum",
		}, got)
	})

	t.Run("fractional values within bounds", func(t *testing.T) {
		prefs, err := v.UserPreferences([]byte(`{
			"notifications": {},
			"workout": {"preferredWorkoutDuration": 45.5, "restDayPreference": [0.5]},
			"nutrition": {"mealsPerDay": 2.5}
		}`))
		require.NoError(t, err)

		assert.Equal(t, 45.5, prefs.Workout.PreferredWorkoutDuration)
		assert.Equal(t, []float64{0.5}, prefs.Workout.RestDayPreference)
		assert.Equal(t, 2.5, prefs.Nutrition.MealsPerDay)
	})

	t.Run("group that is not an object", func(t *testing.T) {
		_, err := v.UserPreferences([]byte(`{"notifications": true, "workout": {}, "nutrition": {}}`))
		violations := violationsOf(t, err)
		require.Len(t, violations, 1)
		assert.Equal(t, Violation{
			Field:      "notifications",
			Constraint: ConstraintObject,
			Message:    "must be a JSON object",
		}, violations[0])
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	err := &Error{
		Kind: KindWaterEntry,
		Violations: Violations{
			{Field: "amount", Constraint: "gt", Param: "0", Message: "must be greater than 0"},
			{Field: "", Constraint: ConstraintObject, Message: "must be a JSON object"},
		},
	}

	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t,
		"validation failed: invalid water_entry: amount must be greater than 0; (record) must be a JSON object",
		err.Error())
}
