package domain

import (
	"slices"
	"time"
)

// Gender is the gender recorded on a user profile.
type Gender string

// Possible gender values
const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"
)

var genders = []Gender{GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay}

// Genders returns every valid Gender.
func Genders() []Gender { return slices.Clone(genders) }

// IsValid reports whether g is a member of the closed Gender set.
func (g Gender) IsValid() bool { return slices.Contains(genders, g) }

// FitnessGoal is the primary goal a user trains and eats for.
type FitnessGoal string

// Possible fitness goal values
const (
	FitnessGoalLoseWeight          FitnessGoal = "lose_weight"
	FitnessGoalBuildMuscle         FitnessGoal = "build_muscle"
	FitnessGoalMaintainFitness     FitnessGoal = "maintain_fitness"
	FitnessGoalImproveEndurance    FitnessGoal = "improve_endurance"
	FitnessGoalGeneralHealth       FitnessGoal = "general_health"
	FitnessGoalAthleticPerformance FitnessGoal = "athletic_performance"
)

var fitnessGoals = []FitnessGoal{
	FitnessGoalLoseWeight,
	FitnessGoalBuildMuscle,
	FitnessGoalMaintainFitness,
	FitnessGoalImproveEndurance,
	FitnessGoalGeneralHealth,
	FitnessGoalAthleticPerformance,
}

// FitnessGoals returns every valid FitnessGoal.
func FitnessGoals() []FitnessGoal { return slices.Clone(fitnessGoals) }

// IsValid reports whether g is a member of the closed FitnessGoal set.
func (g FitnessGoal) IsValid() bool { return slices.Contains(fitnessGoals, g) }

// ActivityLevel describes how active a user is outside of logged workouts.
// Levels are ordered from least to most active.
type ActivityLevel string

// Possible activity level values, in ascending order
const (
	ActivityLevelSedentary        ActivityLevel = "sedentary"
	ActivityLevelLightlyActive    ActivityLevel = "lightly_active"
	ActivityLevelModeratelyActive ActivityLevel = "moderately_active"
	ActivityLevelVeryActive       ActivityLevel = "very_active"
	ActivityLevelExtremelyActive  ActivityLevel = "extremely_active"
)

var activityLevels = []ActivityLevel{
	ActivityLevelSedentary,
	ActivityLevelLightlyActive,
	ActivityLevelModeratelyActive,
	ActivityLevelVeryActive,
	ActivityLevelExtremelyActive,
}

// ActivityLevels returns every valid ActivityLevel in ascending order.
func ActivityLevels() []ActivityLevel { return slices.Clone(activityLevels) }

// IsValid reports whether l is a member of the closed ActivityLevel set.
func (l ActivityLevel) IsValid() bool { return slices.Contains(activityLevels, l) }

// Rank returns the position of l in the ascending order, or -1 when l is invalid.
func (l ActivityLevel) Rank() int { return slices.Index(activityLevels, l) }

// FitnessLevel is the user's self-assessed training experience.
type FitnessLevel string

// Possible fitness level values
const (
	FitnessLevelBeginner     FitnessLevel = "beginner"
	FitnessLevelIntermediate FitnessLevel = "intermediate"
	FitnessLevelAdvanced     FitnessLevel = "advanced"
	FitnessLevelExpert       FitnessLevel = "expert"
)

var fitnessLevels = []FitnessLevel{
	FitnessLevelBeginner,
	FitnessLevelIntermediate,
	FitnessLevelAdvanced,
	FitnessLevelExpert,
}

// IsValid reports whether l is a member of the closed FitnessLevel set.
func (l FitnessLevel) IsValid() bool { return slices.Contains(fitnessLevels, l) }

// UnitSystem is the measurement system a user prefers for display.
type UnitSystem string

const (
	UnitSystemMetric   UnitSystem = "metric"
	UnitSystemImperial UnitSystem = "imperial"
)

// IsValid reports whether u is metric or imperial.
func (u UnitSystem) IsValid() bool { return u == UnitSystemMetric || u == UnitSystemImperial }

// SubscriptionTier is the plan a user is subscribed to.
type SubscriptionTier string

const (
	SubscriptionTierFree    SubscriptionTier = "free"
	SubscriptionTierPremium SubscriptionTier = "premium"
	SubscriptionTierPro     SubscriptionTier = "pro"
)

// IsValid reports whether t is a member of the closed SubscriptionTier set.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionTierFree, SubscriptionTierPremium, SubscriptionTierPro:
		return true
	default:
		return false
	}
}

// WorkoutEnvironment is where a user prefers to train.
type WorkoutEnvironment string

const (
	WorkoutEnvironmentGym     WorkoutEnvironment = "gym"
	WorkoutEnvironmentHome    WorkoutEnvironment = "home"
	WorkoutEnvironmentOutdoor WorkoutEnvironment = "outdoor"
	WorkoutEnvironmentAny     WorkoutEnvironment = "any"
)

// IsValid reports whether e is a member of the closed WorkoutEnvironment set.
func (e WorkoutEnvironment) IsValid() bool {
	switch e {
	case WorkoutEnvironmentGym, WorkoutEnvironmentHome, WorkoutEnvironmentOutdoor, WorkoutEnvironmentAny:
		return true
	default:
		return false
	}
}

// CookingTime is how much time a user is willing to spend cooking.
type CookingTime string

const (
	CookingTimeQuick     CookingTime = "quick"
	CookingTimeModerate  CookingTime = "moderate"
	CookingTimeExtensive CookingTime = "extensive"
)

// IsValid reports whether c is a member of the closed CookingTime set.
func (c CookingTime) IsValid() bool {
	switch c {
	case CookingTimeQuick, CookingTimeModerate, CookingTimeExtensive:
		return true
	default:
		return false
	}
}

// BudgetRange is a coarse grocery budget.
type BudgetRange string

const (
	BudgetRangeLow    BudgetRange = "low"
	BudgetRangeMedium BudgetRange = "medium"
	BudgetRangeHigh   BudgetRange = "high"
)

// IsValid reports whether b is a member of the closed BudgetRange set.
func (b BudgetRange) IsValid() bool {
	switch b {
	case BudgetRangeLow, BudgetRangeMedium, BudgetRangeHigh:
		return true
	default:
		return false
	}
}

// UserProfile holds the body measurements and goals of a registered user.
// Height is in centimetres and weights are in kilograms.
type UserProfile struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	FirstName         string           `json:"firstName"`
	LastName          string           `json:"lastName"`
	DateOfBirth       time.Time        `json:"dateOfBirth"`
	Gender            Gender           `json:"gender"`
	Height            float64          `json:"height"`
	Weight            float64          `json:"weight"`
	FitnessGoal       FitnessGoal      `json:"fitnessGoal"`
	ActivityLevel     ActivityLevel    `json:"activityLevel"`
	FitnessLevel      FitnessLevel     `json:"fitnessLevel"`
	TargetWeight      *float64         `json:"targetWeight,omitempty"`
	TargetCalories    *float64         `json:"targetCalories,omitempty"`
	Allergies         []string         `json:"allergies"`
	MedicalConditions []string         `json:"medicalConditions"`
	ProfilePicture    *string          `json:"profilePicture,omitempty"`
	Timezone          string           `json:"timezone"`
	PreferredUnits    UnitSystem       `json:"preferredUnits"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
	IsOnboarded       bool             `json:"isOnboarded"`
	SubscriptionTier  SubscriptionTier `json:"subscriptionTier"`
}

// UserPreferences groups notification, workout and nutrition preferences.
type UserPreferences struct {
	Notifications NotificationPreferences `json:"notifications"`
	Workout       WorkoutPreferences      `json:"workout"`
	Nutrition     NutritionPreferences    `json:"nutrition"`
}

// NotificationPreferences toggles the reminder categories a user receives.
type NotificationPreferences struct {
	WorkoutReminders bool `json:"workoutReminders"`
	MealReminders    bool `json:"mealReminders"`
	ProgressUpdates  bool `json:"progressUpdates"`
	Challenges       bool `json:"challenges"`
	SocialUpdates    bool `json:"socialUpdates"`
}

// WorkoutPreferences describes how a user likes to train.
// RestDayPreference holds weekdays, Sunday=0 through Saturday=6.
type WorkoutPreferences struct {
	PreferredWorkoutDuration float64            `json:"preferredWorkoutDuration"` // minutes
	RestDayPreference        []float64          `json:"restDayPreference"`
	EquipmentAvailable       []string           `json:"equipmentAvailable"`
	WorkoutEnvironment       WorkoutEnvironment `json:"workoutEnvironment"`
}

// NutritionPreferences describes how a user likes to eat.
type NutritionPreferences struct {
	DietaryRestrictions []string    `json:"dietaryRestrictions"`
	MealsPerDay         float64     `json:"mealsPerDay"`
	CookingTime         CookingTime `json:"cookingTime"`
	BudgetRange         BudgetRange `json:"budgetRange"`
}
