package domain

import (
	"slices"
	"time"
)

// ExerciseType classifies an exercise or workout plan.
type ExerciseType string

// Possible exercise type values
const (
	ExerciseTypeStrength       ExerciseType = "strength"
	ExerciseTypeCardio         ExerciseType = "cardio"
	ExerciseTypeFlexibility    ExerciseType = "flexibility"
	ExerciseTypeHIIT           ExerciseType = "hiit"
	ExerciseTypeYoga           ExerciseType = "yoga"
	ExerciseTypePilates        ExerciseType = "pilates"
	ExerciseTypeCrossfit       ExerciseType = "crossfit"
	ExerciseTypeSports         ExerciseType = "sports"
	ExerciseTypeRehabilitation ExerciseType = "rehabilitation"
)

var exerciseTypes = []ExerciseType{
	ExerciseTypeStrength,
	ExerciseTypeCardio,
	ExerciseTypeFlexibility,
	ExerciseTypeHIIT,
	ExerciseTypeYoga,
	ExerciseTypePilates,
	ExerciseTypeCrossfit,
	ExerciseTypeSports,
	ExerciseTypeRehabilitation,
}

// IsValid reports whether e is a member of the closed ExerciseType set.
func (e ExerciseType) IsValid() bool { return slices.Contains(exerciseTypes, e) }

// MuscleGroup is a body region targeted by an exercise.
type MuscleGroup string

// Possible muscle group values
const (
	MuscleGroupChest      MuscleGroup = "chest"
	MuscleGroupBack       MuscleGroup = "back"
	MuscleGroupShoulders  MuscleGroup = "shoulders"
	MuscleGroupBiceps     MuscleGroup = "biceps"
	MuscleGroupTriceps    MuscleGroup = "triceps"
	MuscleGroupForearms   MuscleGroup = "forearms"
	MuscleGroupAbs        MuscleGroup = "abs"
	MuscleGroupObliques   MuscleGroup = "obliques"
	MuscleGroupLowerBack  MuscleGroup = "lower_back"
	MuscleGroupQuadriceps MuscleGroup = "quadriceps"
	MuscleGroupHamstrings MuscleGroup = "hamstrings"
	MuscleGroupCalves     MuscleGroup = "calves"
	MuscleGroupGlutes     MuscleGroup = "glutes"
	MuscleGroupFullBody   MuscleGroup = "full_body"
)

var muscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupShoulders,
	MuscleGroupBiceps,
	MuscleGroupTriceps,
	MuscleGroupForearms,
	MuscleGroupAbs,
	MuscleGroupObliques,
	MuscleGroupLowerBack,
	MuscleGroupQuadriceps,
	MuscleGroupHamstrings,
	MuscleGroupCalves,
	MuscleGroupGlutes,
	MuscleGroupFullBody,
}

// IsValid reports whether m is a member of the closed MuscleGroup set.
func (m MuscleGroup) IsValid() bool { return slices.Contains(muscleGroups, m) }

// Equipment is a piece of training equipment.
type Equipment string

// Possible equipment values
const (
	EquipmentNone            Equipment = "none"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentBarbell         Equipment = "barbell"
	EquipmentKettlebell      Equipment = "kettlebell"
	EquipmentResistanceBands Equipment = "resistance_bands"
	EquipmentPullUpBar       Equipment = "pull_up_bar"
	EquipmentBench           Equipment = "bench"
	EquipmentCableMachine    Equipment = "cable_machine"
	EquipmentTreadmill       Equipment = "treadmill"
	EquipmentStationaryBike  Equipment = "stationary_bike"
	EquipmentRowingMachine   Equipment = "rowing_machine"
	EquipmentYogaMat         Equipment = "yoga_mat"
	EquipmentMedicineBall    Equipment = "medicine_ball"
	EquipmentFoamRoller      Equipment = "foam_roller"
)

var equipment = []Equipment{
	EquipmentNone,
	EquipmentDumbbells,
	EquipmentBarbell,
	EquipmentKettlebell,
	EquipmentResistanceBands,
	EquipmentPullUpBar,
	EquipmentBench,
	EquipmentCableMachine,
	EquipmentTreadmill,
	EquipmentStationaryBike,
	EquipmentRowingMachine,
	EquipmentYogaMat,
	EquipmentMedicineBall,
	EquipmentFoamRoller,
}

// IsValid reports whether e is a member of the closed Equipment set.
func (e Equipment) IsValid() bool { return slices.Contains(equipment, e) }

// Difficulty grades an exercise or program.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// IsValid reports whether d is a member of the closed Difficulty set.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	default:
		return false
	}
}

// Mood is how a user felt after a workout session.
type Mood string

const (
	MoodTerrible  Mood = "terrible"
	MoodBad       Mood = "bad"
	MoodOkay      Mood = "okay"
	MoodGood      Mood = "good"
	MoodExcellent Mood = "excellent"
)

// IsValid reports whether m is a member of the closed Mood set.
func (m Mood) IsValid() bool {
	switch m {
	case MoodTerrible, MoodBad, MoodOkay, MoodGood, MoodExcellent:
		return true
	default:
		return false
	}
}

// Set is one logged set of an exercise. Weight is in kg, Duration and
// RestTime in seconds, Distance in metres.
type Set struct {
	ID          string     `json:"id"`
	Reps        *int       `json:"reps,omitempty"`
	Weight      *float64   `json:"weight,omitempty"`
	Duration    *float64   `json:"duration,omitempty"`
	Distance    *float64   `json:"distance,omitempty"`
	RestTime    *float64   `json:"restTime,omitempty"`
	RPE         *float64   `json:"rpe,omitempty"` // 1-10
	Notes       *string    `json:"notes,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// WorkoutSession is a single performed workout. Duration is in minutes.
type WorkoutSession struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	WorkoutPlanID       string     `json:"workoutPlanId"`
	StartedAt           time.Time  `json:"startedAt"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	Duration            *float64   `json:"duration,omitempty"`
	TotalCaloriesBurned *float64   `json:"totalCaloriesBurned,omitempty"`
	AverageHeartRate    *float64   `json:"averageHeartRate,omitempty"`
	MaxHeartRate        *float64   `json:"maxHeartRate,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
	Rating              *float64   `json:"rating,omitempty"` // 1-5
	Mood                *Mood      `json:"mood,omitempty"`
	PerceivedExertion   *float64   `json:"perceivedExertion,omitempty"` // 1-10
	IsCompleted         bool       `json:"isCompleted"`
}
