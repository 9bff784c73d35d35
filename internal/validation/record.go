package validation

import (
	"fmt"
	"slices"

	"github.com/phrazzld/fitcore/internal/domain"
)

// Kind names a record schema.
type Kind string

const (
	KindUserProfile      Kind = "user_profile"
	KindUserPreferences  Kind = "user_preferences"
	KindFood             Kind = "food"
	KindNutritionInfo    Kind = "nutrition_info"
	KindNutritionTargets Kind = "nutrition_targets"
	KindMealEntry        Kind = "meal_entry"
	KindWaterEntry       Kind = "water_entry"
	KindSet              Kind = "set"
	KindWorkoutSession   Kind = "workout_session"
)

var kinds = []Kind{
	KindUserProfile,
	KindUserPreferences,
	KindFood,
	KindNutritionInfo,
	KindNutritionTargets,
	KindMealEntry,
	KindWaterEntry,
	KindSet,
	KindWorkoutSession,
}

// Kinds returns every record kind with a schema.
func Kinds() []Kind { return slices.Clone(kinds) }

// IsValid reports whether k has a schema.
func (k Kind) IsValid() bool { return slices.Contains(kinds, k) }

// Record validates raw against the schema of kind and returns the normalized
// domain entity, e.g. domain.MealEntry for KindMealEntry.
func (v *Validator) Record(kind Kind, raw []byte) (any, error) {
	switch kind {
	case KindUserProfile:
		return v.UserProfile(raw)
	case KindUserPreferences:
		return v.UserPreferences(raw)
	case KindFood:
		return v.Food(raw)
	case KindNutritionInfo:
		return v.NutritionInfo(raw)
	case KindNutritionTargets:
		return v.NutritionTargets(raw)
	case KindMealEntry:
		return v.MealEntry(raw)
	case KindWaterEntry:
		return v.WaterEntry(raw)
	case KindSet:
		return v.Set(raw)
	case KindWorkoutSession:
		return v.WorkoutSession(raw)
	default:
		return nil, fmt.Errorf("%q: %w", kind, domain.ErrUnknownRecordKind)
	}
}
