package validation

import "github.com/phrazzld/fitcore/internal/domain"

type userProfileInput struct {
	ID                *string                  `json:"id" validate:"required"`
	Email             *string                  `json:"email" validate:"required,email"`
	FirstName         *string                  `json:"firstName" validate:"required,min=1"`
	LastName          *string                  `json:"lastName" validate:"required,min=1"`
	DateOfBirth       *string                  `json:"dateOfBirth" validate:"required,isodatetime"`
	Gender            *domain.Gender           `json:"gender" validate:"required,enum"`
	Height            *float64                 `json:"height" validate:"required,gt=0"`
	Weight            *float64                 `json:"weight" validate:"required,gt=0"`
	FitnessGoal       *domain.FitnessGoal      `json:"fitnessGoal" validate:"required,enum"`
	ActivityLevel     *domain.ActivityLevel    `json:"activityLevel" validate:"required,enum"`
	FitnessLevel      *domain.FitnessLevel     `json:"fitnessLevel" validate:"required,enum"`
	TargetWeight      *float64                 `json:"targetWeight" validate:"omitempty,gt=0"`
	TargetCalories    *float64                 `json:"targetCalories" validate:"omitempty,gt=0"`
	Allergies         []string                 `json:"allergies"`
	MedicalConditions []string                 `json:"medicalConditions"`
	ProfilePicture    *string                  `json:"profilePicture" validate:"omitempty,url"`
	Timezone          *string                  `json:"timezone" validate:"required"`
	PreferredUnits    *domain.UnitSystem       `json:"preferredUnits" validate:"required,enum"`
	CreatedAt         *string                  `json:"createdAt" validate:"required,isodatetime"`
	UpdatedAt         *string                  `json:"updatedAt" validate:"required,isodatetime"`
	IsOnboarded       *bool                    `json:"isOnboarded" validate:"required"`
	SubscriptionTier  *domain.SubscriptionTier `json:"subscriptionTier" validate:"required,enum"`
}

func (in *userProfileInput) applyDefaults() {
	in.Allergies = emptyIfNil(in.Allergies)
	in.MedicalConditions = emptyIfNil(in.MedicalConditions)
	setDefault(&in.Timezone, "UTC")
	setDefault(&in.PreferredUnits, domain.UnitSystemMetric)
	setDefault(&in.IsOnboarded, false)
	setDefault(&in.SubscriptionTier, domain.SubscriptionTierFree)
}

func (in *userProfileInput) record() domain.UserProfile {
	return domain.UserProfile{
		ID:                deref(in.ID),
		Email:             deref(in.Email),
		FirstName:         deref(in.FirstName),
		LastName:          deref(in.LastName),
		DateOfBirth:       timestamp(in.DateOfBirth),
		Gender:            deref(in.Gender),
		Height:            deref(in.Height),
		Weight:            deref(in.Weight),
		FitnessGoal:       deref(in.FitnessGoal),
		ActivityLevel:     deref(in.ActivityLevel),
		FitnessLevel:      deref(in.FitnessLevel),
		TargetWeight:      in.TargetWeight,
		TargetCalories:    in.TargetCalories,
		Allergies:         in.Allergies,
		MedicalConditions: in.MedicalConditions,
		ProfilePicture:    in.ProfilePicture,
		Timezone:          deref(in.Timezone),
		PreferredUnits:    deref(in.PreferredUnits),
		CreatedAt:         timestamp(in.CreatedAt),
		UpdatedAt:         timestamp(in.UpdatedAt),
		IsOnboarded:       deref(in.IsOnboarded),
		SubscriptionTier:  deref(in.SubscriptionTier),
	}
}

// UserProfile validates a user profile payload.
func (v *Validator) UserProfile(raw []byte) (domain.UserProfile, error) {
	var in userProfileInput
	if err := v.check(KindUserProfile, raw, &in); err != nil {
		return domain.UserProfile{}, err
	}
	return in.record(), nil
}

type userPreferencesInput struct {
	Notifications *notificationPreferencesInput `json:"notifications" validate:"required"`
	Workout       *workoutPreferencesInput      `json:"workout" validate:"required"`
	Nutrition     *nutritionPreferencesInput    `json:"nutrition" validate:"required"`
}

type notificationPreferencesInput struct {
	WorkoutReminders *bool `json:"workoutReminders" validate:"required"`
	MealReminders    *bool `json:"mealReminders" validate:"required"`
	ProgressUpdates  *bool `json:"progressUpdates" validate:"required"`
	Challenges       *bool `json:"challenges" validate:"required"`
	SocialUpdates    *bool `json:"socialUpdates" validate:"required"`
}

type workoutPreferencesInput struct {
	PreferredWorkoutDuration *float64                   `json:"preferredWorkoutDuration" validate:"required,min=15,max=180"`
	RestDayPreference        []float64                  `json:"restDayPreference" validate:"dive,min=0,max=6"`
	EquipmentAvailable       []string                   `json:"equipmentAvailable"`
	WorkoutEnvironment       *domain.WorkoutEnvironment `json:"workoutEnvironment" validate:"required,enum"`
}

type nutritionPreferencesInput struct {
	DietaryRestrictions []string            `json:"dietaryRestrictions"`
	MealsPerDay         *float64            `json:"mealsPerDay" validate:"required,min=1,max=8"`
	CookingTime         *domain.CookingTime `json:"cookingTime" validate:"required,enum"`
	BudgetRange         *domain.BudgetRange `json:"budgetRange" validate:"required,enum"`
}

// The three groups are required; defaults apply inside each group only.
func (in *userPreferencesInput) applyDefaults() {
	if n := in.Notifications; n != nil {
		setDefault(&n.WorkoutReminders, true)
		setDefault(&n.MealReminders, true)
		setDefault(&n.ProgressUpdates, true)
		setDefault(&n.Challenges, true)
		setDefault(&n.SocialUpdates, false)
	}
	if w := in.Workout; w != nil {
		setDefault(&w.PreferredWorkoutDuration, 60)
		if w.RestDayPreference == nil {
			w.RestDayPreference = []float64{0, 6}
		}
		w.EquipmentAvailable = emptyIfNil(w.EquipmentAvailable)
		setDefault(&w.WorkoutEnvironment, domain.WorkoutEnvironmentAny)
	}
	if n := in.Nutrition; n != nil {
		n.DietaryRestrictions = emptyIfNil(n.DietaryRestrictions)
		setDefault(&n.MealsPerDay, 3)
		setDefault(&n.CookingTime, domain.CookingTimeModerate)
		setDefault(&n.BudgetRange, domain.BudgetRangeMedium)
	}
}

func (in *userPreferencesInput) record() domain.UserPreferences {
	n, w, nu := in.Notifications, in.Workout, in.Nutrition
	return domain.UserPreferences{
		Notifications: domain.NotificationPreferences{
			WorkoutReminders: deref(n.WorkoutReminders),
			MealReminders:    deref(n.MealReminders),
			ProgressUpdates:  deref(n.ProgressUpdates),
			Challenges:       deref(n.Challenges),
			SocialUpdates:    deref(n.SocialUpdates),
		},
		Workout: domain.WorkoutPreferences{
			PreferredWorkoutDuration: deref(w.PreferredWorkoutDuration),
			RestDayPreference:        w.RestDayPreference,
			EquipmentAvailable:       w.EquipmentAvailable,
			WorkoutEnvironment:       deref(w.WorkoutEnvironment),
		},
		Nutrition: domain.NutritionPreferences{
			DietaryRestrictions: nu.DietaryRestrictions,
			MealsPerDay:         deref(nu.MealsPerDay),
			CookingTime:         deref(nu.CookingTime),
			BudgetRange:         deref(nu.BudgetRange),
		},
	}
}

// UserPreferences validates a user preferences payload.
func (v *Validator) UserPreferences(raw []byte) (domain.UserPreferences, error) {
	var in userPreferencesInput
	if err := v.check(KindUserPreferences, raw, &in); err != nil {
		return domain.UserPreferences{}, err
	}
	return in.record(), nil
}
