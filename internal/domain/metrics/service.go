package metrics

import (
	"errors"
	"math"
	"time"

	"github.com/phrazzld/fitcore/internal/domain"
)

// ErrNilParams is returned by NewCalculator when no parameters are given.
var ErrNilParams = errors.New("calculator params cannot be nil")

// ProfileMetrics bundles the metrics derived from a single user profile.
type ProfileMetrics struct {
	Age              int                     `json:"age"`
	BMR              float64                 `json:"bmr"`
	TDEE             float64                 `json:"tdee"`
	BMI              float64                 `json:"bmi"`
	BMICategory      domain.BMICategory      `json:"bmiCategory"`
	WaterTarget      int                     `json:"waterTarget"` // ml/day
	NutritionTargets domain.NutritionTargets `json:"nutritionTargets"`
}

// DailyWaterGoal is a user's hydration progress for one calendar day.
type DailyWaterGoal struct {
	Date            time.Time `json:"date"`
	TargetAmount    int       `json:"targetAmount"`  // ml
	CurrentAmount   float64   `json:"currentAmount"` // ml
	ProgressPercent int       `json:"progressPercent"`
	GoalAchieved    bool      `json:"goalAchieved"`
	Entries         int       `json:"entries"`
}

// Calculator defines the parameterised and time-aware metric operations.
type Calculator interface {
	// Age computes whole years from a date of birth as of the calculator's today
	Age(dateOfBirth string) (int, error)

	// StreakDays counts consecutive logged days ending today
	StreakDays(dates []string) (int, error)

	TDEE(bmr float64, level domain.ActivityLevel) (float64, error)
	WaterIntake(weight float64, level domain.ActivityLevel) (int, error)
	MacroTargets(calories float64, goal domain.FitnessGoal) (domain.NutritionTargets, error)
	OneRepMax(weight float64, reps int) float64

	// ProfileMetrics derives age, energy, body and intake targets for a profile
	ProfileMetrics(profile domain.UserProfile) (*ProfileMetrics, error)

	// DailyWater totals the entries logged on the calendar day of date
	DailyWater(date time.Time, target int, entries []domain.WaterEntry) DailyWaterGoal
}

// Option customises a Calculator.
type Option func(*defaultCalculator)

// WithClock replaces the wall clock used to determine "today".
func WithClock(now func() time.Time) Option {
	return func(c *defaultCalculator) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithLocation sets the time zone whose calendar defines "today".
func WithLocation(loc *time.Location) Option {
	return func(c *defaultCalculator) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// defaultCalculator is the standard implementation of the Calculator interface
type defaultCalculator struct {
	params *Params
	clock  func() time.Time
	loc    *time.Location
}

// NewDefaultCalculator creates a calculator with default parameters, the
// system clock and UTC calendar days unless overridden by opts.
func NewDefaultCalculator(opts ...Option) Calculator {
	c, _ := NewCalculator(NewDefaultParams(), opts...)
	return c
}

// NewCalculator creates a calculator with custom parameters. The parameters
// are copied, so later changes to params do not affect the calculator.
func NewCalculator(params *Params, opts ...Option) (Calculator, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	c := &defaultCalculator{
		params: params.clone(),
		clock:  time.Now,
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *defaultCalculator) today() time.Time {
	return c.clock().In(c.loc)
}

func (c *defaultCalculator) Age(dateOfBirth string) (int, error) {
	return Age(dateOfBirth, c.today())
}

func (c *defaultCalculator) StreakDays(dates []string) (int, error) {
	return StreakDays(dates, c.today())
}

func (c *defaultCalculator) TDEE(bmr float64, level domain.ActivityLevel) (float64, error) {
	return tdee(bmr, level, c.params)
}

func (c *defaultCalculator) WaterIntake(weight float64, level domain.ActivityLevel) (int, error) {
	return waterIntake(weight, level, c.params)
}

func (c *defaultCalculator) MacroTargets(calories float64, goal domain.FitnessGoal) (domain.NutritionTargets, error) {
	return macroTargets(calories, goal, c.params)
}

func (c *defaultCalculator) OneRepMax(weight float64, reps int) float64 {
	return oneRepMax(weight, reps, c.params)
}

// ProfileMetrics implements the Calculator interface. Macro targets are based
// on the profile's target calories when set, otherwise on the rounded TDEE.
func (c *defaultCalculator) ProfileMetrics(profile domain.UserProfile) (*ProfileMetrics, error) {
	age := AgeOn(profile.DateOfBirth, c.today())
	bmr := BMR(profile.Weight, profile.Height, age, profile.Gender)

	expenditure, err := tdee(bmr, profile.ActivityLevel, c.params)
	if err != nil {
		return nil, err
	}

	water, err := waterIntake(profile.Weight, profile.ActivityLevel, c.params)
	if err != nil {
		return nil, err
	}

	calories := math.Round(expenditure)
	if profile.TargetCalories != nil {
		calories = *profile.TargetCalories
	}
	targets, err := macroTargets(calories, profile.FitnessGoal, c.params)
	if err != nil {
		return nil, err
	}

	bmi := BMI(profile.Weight, profile.Height)
	return &ProfileMetrics{
		Age:              age,
		BMR:              bmr,
		TDEE:             expenditure,
		BMI:              bmi,
		BMICategory:      BMICategoryFor(bmi),
		WaterTarget:      water,
		NutritionTargets: targets,
	}, nil
}

// DailyWater implements the Calculator interface. The day of date and of each
// entry is read in the calculator's location.
func (c *defaultCalculator) DailyWater(date time.Time, target int, entries []domain.WaterEntry) DailyWaterGoal {
	day := calendarDay(date.In(c.loc))

	goal := DailyWaterGoal{Date: day, TargetAmount: target}
	for _, e := range entries {
		if !calendarDay(e.Date.In(c.loc)).Equal(day) {
			continue
		}
		goal.CurrentAmount += e.Amount
		goal.Entries++
	}
	goal.ProgressPercent = ProgressPercentage(goal.CurrentAmount, float64(target))
	goal.GoalAchieved = target > 0 && goal.CurrentAmount >= float64(target)

	return goal
}
