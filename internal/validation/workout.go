package validation

import "github.com/phrazzld/fitcore/internal/domain"

type setInput struct {
	ID          *string  `json:"id" validate:"required"`
	Reps        *int     `json:"reps" validate:"omitempty,gt=0"`
	Weight      *float64 `json:"weight" validate:"omitempty,gt=0"`
	Duration    *float64 `json:"duration" validate:"omitempty,gt=0"`
	Distance    *float64 `json:"distance" validate:"omitempty,gt=0"`
	RestTime    *float64 `json:"restTime" validate:"omitempty,gt=0"`
	RPE         *float64 `json:"rpe" validate:"omitempty,min=1,max=10"`
	Notes       *string  `json:"notes"`
	Completed   *bool    `json:"completed" validate:"required"`
	CompletedAt *string  `json:"completedAt" validate:"omitempty,isodatetime"`
}

func (in *setInput) applyDefaults() {}

// Set validates a single performed set.
func (v *Validator) Set(raw []byte) (domain.Set, error) {
	var in setInput
	if err := v.check(KindSet, raw, &in); err != nil {
		return domain.Set{}, err
	}
	return domain.Set{
		ID:          deref(in.ID),
		Reps:        in.Reps,
		Weight:      in.Weight,
		Duration:    in.Duration,
		Distance:    in.Distance,
		RestTime:    in.RestTime,
		RPE:         in.RPE,
		Notes:       in.Notes,
		Completed:   deref(in.Completed),
		CompletedAt: optionalTimestamp(in.CompletedAt),
	}, nil
}

type workoutSessionInput struct {
	ID                  *string      `json:"id" validate:"required"`
	UserID              *string      `json:"userId" validate:"required"`
	WorkoutPlanID       *string      `json:"workoutPlanId" validate:"required"`
	StartedAt           *string      `json:"startedAt" validate:"required,isodatetime"`
	CompletedAt         *string      `json:"completedAt" validate:"omitempty,isodatetime"`
	Duration            *float64     `json:"duration" validate:"omitempty,gt=0"`
	TotalCaloriesBurned *float64     `json:"totalCaloriesBurned" validate:"omitempty,gt=0"`
	AverageHeartRate    *float64     `json:"averageHeartRate" validate:"omitempty,gt=0"`
	MaxHeartRate        *float64     `json:"maxHeartRate" validate:"omitempty,gt=0"`
	Notes               *string      `json:"notes"`
	Rating              *float64     `json:"rating" validate:"omitempty,min=1,max=5"`
	Mood                *domain.Mood `json:"mood" validate:"omitempty,enum"`
	PerceivedExertion   *float64     `json:"perceivedExertion" validate:"omitempty,min=1,max=10"`
	IsCompleted         *bool        `json:"isCompleted" validate:"required"`
}

func (in *workoutSessionInput) applyDefaults() {}

// WorkoutSession validates a performed workout.
func (v *Validator) WorkoutSession(raw []byte) (domain.WorkoutSession, error) {
	var in workoutSessionInput
	if err := v.check(KindWorkoutSession, raw, &in); err != nil {
		return domain.WorkoutSession{}, err
	}
	return domain.WorkoutSession{
		ID:                  deref(in.ID),
		UserID:              deref(in.UserID),
		WorkoutPlanID:       deref(in.WorkoutPlanID),
		StartedAt:           timestamp(in.StartedAt),
		CompletedAt:         optionalTimestamp(in.CompletedAt),
		Duration:            in.Duration,
		TotalCaloriesBurned: in.TotalCaloriesBurned,
		AverageHeartRate:    in.AverageHeartRate,
		MaxHeartRate:        in.MaxHeartRate,
		Notes:               in.Notes,
		Rating:              in.Rating,
		Mood:                in.Mood,
		PerceivedExertion:   in.PerceivedExertion,
		IsCompleted:         deref(in.IsCompleted),
	}, nil
}
