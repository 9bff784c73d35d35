package metrics

import (
	"math"

	"github.com/phrazzld/fitcore/internal/domain"
)

// Energy density of the macronutrients in kcal per gram.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
)

// MacroPercentages is the share of a food's energy that comes from each
// macronutrient, in percent. Each value is rounded on its own, so the three
// need not add up to exactly 100.
type MacroPercentages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// MacroTargets derives daily nutrition targets from a calorie budget and goal.
//
// Gram targets are calories × share ÷ kcal-per-gram, each rounded to the
// nearest gram independently; their energy may therefore differ from calories
// by a few kcal. Fiber is 14 g per 1000 kcal, sodium is fixed at 2300 mg and
// sugar is capped at 10% of calories.
func MacroTargets(calories float64, goal domain.FitnessGoal) (domain.NutritionTargets, error) {
	return macroTargets(calories, goal, defaultParams)
}

func macroTargets(calories float64, goal domain.FitnessGoal, params *Params) (domain.NutritionTargets, error) {
	split, err := params.splitFor(goal)
	if err != nil {
		return domain.NutritionTargets{}, err
	}

	fiber := math.Round(calories / 1000 * params.FiberGramsPer1000Kcal)
	sodium := params.SodiumMilligrams
	sugar := math.Round(calories * params.SugarCalorieShare / kcalPerGramCarbs)

	return domain.NutritionTargets{
		Calories:      calories,
		Protein:       math.Round(calories * split.Protein / kcalPerGramProtein),
		Carbohydrates: math.Round(calories * split.Carbohydrates / kcalPerGramCarbs),
		Fat:           math.Round(calories * split.Fat / kcalPerGramFat),
		Fiber:         &fiber,
		Sodium:        &sodium,
		Sugar:         &sugar,
	}, nil
}

// NutritionDensity scores a food from 0 to 100 on protein per calorie, fiber
// per calorie and a flat 5 points for each of vitamin A, vitamin C, calcium
// and iron that is tracked. Calories must be positive.
func NutritionDensity(n domain.NutritionInfo) float64 {
	proteinScore := n.Protein / n.Calories * 100 * 4

	var fiber float64
	if n.Fiber != nil {
		fiber = *n.Fiber
	}
	fiberScore := fiber / n.Calories * 100 * 10

	var tracked int
	for _, v := range []*float64{n.VitaminA, n.VitaminC, n.Calcium, n.Iron} {
		if v != nil {
			tracked++
		}
	}
	micronutrientScore := float64(tracked) * 5

	return math.Min(100, proteinScore+fiberScore+micronutrientScore)
}

// MacroRatio returns the share of energy from protein, carbohydrates and fat.
// Calories must be positive; zero calories yields NaN or Inf.
func MacroRatio(n domain.NutritionInfo) MacroPercentages {
	total := n.Calories
	return MacroPercentages{
		Protein: math.Round(n.Protein * kcalPerGramProtein / total * 100),
		Carbs:   math.Round(n.Carbohydrates * kcalPerGramCarbs / total * 100),
		Fat:     math.Round(n.Fat * kcalPerGramFat / total * 100),
	}
}
