package validation

import "github.com/phrazzld/fitcore/internal/domain"

type foodInput struct {
	ID          *string              `json:"id" validate:"required"`
	Name        *string              `json:"name" validate:"required,min=1"`
	Brand       *string              `json:"brand"`
	Barcode     *string              `json:"barcode"`
	Category    *domain.FoodCategory `json:"category" validate:"required,enum"`
	ServingSize *float64             `json:"servingSize" validate:"required,gt=0"`
	ServingUnit *string              `json:"servingUnit" validate:"required"`
	Allergens   []string             `json:"allergens"`
	Verified    *bool                `json:"verified" validate:"required"`
	CreatedBy   *domain.FoodCreator  `json:"createdBy" validate:"required,enum"`
}

func (in *foodInput) applyDefaults() {
	in.Allergens = emptyIfNil(in.Allergens)
	setDefault(&in.Verified, false)
	setDefault(&in.CreatedBy, domain.FoodCreatorUser)
}

// Food validates a food database entry.
func (v *Validator) Food(raw []byte) (domain.Food, error) {
	var in foodInput
	if err := v.check(KindFood, raw, &in); err != nil {
		return domain.Food{}, err
	}
	return domain.Food{
		ID:          deref(in.ID),
		Name:        deref(in.Name),
		Brand:       in.Brand,
		Barcode:     in.Barcode,
		Category:    deref(in.Category),
		ServingSize: deref(in.ServingSize),
		ServingUnit: deref(in.ServingUnit),
		Allergens:   in.Allergens,
		Verified:    deref(in.Verified),
		CreatedBy:   deref(in.CreatedBy),
	}, nil
}

type nutritionInfoInput struct {
	Calories           *float64 `json:"calories" validate:"required,min=0"`
	Protein            *float64 `json:"protein" validate:"required,min=0"`
	Carbohydrates      *float64 `json:"carbohydrates" validate:"required,min=0"`
	Fat                *float64 `json:"fat" validate:"required,min=0"`
	Fiber              *float64 `json:"fiber" validate:"omitempty,min=0"`
	Sugar              *float64 `json:"sugar" validate:"omitempty,min=0"`
	Sodium             *float64 `json:"sodium" validate:"omitempty,min=0"`
	Cholesterol        *float64 `json:"cholesterol" validate:"omitempty,min=0"`
	VitaminA           *float64 `json:"vitaminA" validate:"omitempty,min=0"`
	VitaminC           *float64 `json:"vitaminC" validate:"omitempty,min=0"`
	Calcium            *float64 `json:"calcium" validate:"omitempty,min=0"`
	Iron               *float64 `json:"iron" validate:"omitempty,min=0"`
	Potassium          *float64 `json:"potassium" validate:"omitempty,min=0"`
	SaturatedFat       *float64 `json:"saturatedFat" validate:"omitempty,min=0"`
	TransFat           *float64 `json:"transFat" validate:"omitempty,min=0"`
	MonounsaturatedFat *float64 `json:"monounsaturatedFat" validate:"omitempty,min=0"`
	PolyunsaturatedFat *float64 `json:"polyunsaturatedFat" validate:"omitempty,min=0"`
}

func (in *nutritionInfoInput) applyDefaults() {}

// NutritionInfo validates a nutrient record. Absent micronutrients stay
// untracked.
func (v *Validator) NutritionInfo(raw []byte) (domain.NutritionInfo, error) {
	var in nutritionInfoInput
	if err := v.check(KindNutritionInfo, raw, &in); err != nil {
		return domain.NutritionInfo{}, err
	}
	return domain.NutritionInfo{
		Calories:           deref(in.Calories),
		Protein:            deref(in.Protein),
		Carbohydrates:      deref(in.Carbohydrates),
		Fat:                deref(in.Fat),
		Fiber:              in.Fiber,
		Sugar:              in.Sugar,
		Sodium:             in.Sodium,
		Cholesterol:        in.Cholesterol,
		VitaminA:           in.VitaminA,
		VitaminC:           in.VitaminC,
		Calcium:            in.Calcium,
		Iron:               in.Iron,
		Potassium:          in.Potassium,
		SaturatedFat:       in.SaturatedFat,
		TransFat:           in.TransFat,
		MonounsaturatedFat: in.MonounsaturatedFat,
		PolyunsaturatedFat: in.PolyunsaturatedFat,
	}, nil
}

type nutritionTargetsInput struct {
	Calories      *float64 `json:"calories" validate:"required,min=0"`
	Protein       *float64 `json:"protein" validate:"required,min=0"`
	Carbohydrates *float64 `json:"carbohydrates" validate:"required,min=0"`
	Fat           *float64 `json:"fat" validate:"required,min=0"`
	Fiber         *float64 `json:"fiber" validate:"omitempty,min=0"`
	Sodium        *float64 `json:"sodium" validate:"omitempty,min=0"`
	Sugar         *float64 `json:"sugar" validate:"omitempty,min=0"`
}

func (in *nutritionTargetsInput) applyDefaults() {}

// NutritionTargets validates a set of daily intake goals.
func (v *Validator) NutritionTargets(raw []byte) (domain.NutritionTargets, error) {
	var in nutritionTargetsInput
	if err := v.check(KindNutritionTargets, raw, &in); err != nil {
		return domain.NutritionTargets{}, err
	}
	return domain.NutritionTargets{
		Calories:      deref(in.Calories),
		Protein:       deref(in.Protein),
		Carbohydrates: deref(in.Carbohydrates),
		Fat:           deref(in.Fat),
		Fiber:         in.Fiber,
		Sodium:        in.Sodium,
		Sugar:         in.Sugar,
	}, nil
}

type mealEntryInput struct {
	ID       *string          `json:"id" validate:"required"`
	UserID   *string          `json:"userId" validate:"required"`
	Date     *string          `json:"date" validate:"required,isodatetime"`
	MealType *domain.MealType `json:"mealType" validate:"required,enum"`
	Notes    *string          `json:"notes"`
	Rating   *float64         `json:"rating" validate:"omitempty,min=1,max=5"`
	LoggedAt *string          `json:"loggedAt" validate:"required,isodatetime"`
}

func (in *mealEntryInput) applyDefaults() {}

// MealEntry validates a logged meal.
func (v *Validator) MealEntry(raw []byte) (domain.MealEntry, error) {
	var in mealEntryInput
	if err := v.check(KindMealEntry, raw, &in); err != nil {
		return domain.MealEntry{}, err
	}
	return domain.MealEntry{
		ID:       deref(in.ID),
		UserID:   deref(in.UserID),
		Date:     timestamp(in.Date),
		MealType: deref(in.MealType),
		Notes:    in.Notes,
		Rating:   in.Rating,
		LoggedAt: timestamp(in.LoggedAt),
	}, nil
}

type waterEntryInput struct {
	ID       *string             `json:"id" validate:"required"`
	UserID   *string             `json:"userId" validate:"required"`
	Date     *string             `json:"date" validate:"required,isodatetime"`
	Amount   *float64            `json:"amount" validate:"required,gt=0"`
	LoggedAt *string             `json:"loggedAt" validate:"required,isodatetime"`
	Source   *domain.WaterSource `json:"source" validate:"omitempty,enum"`
}

func (in *waterEntryInput) applyDefaults() {}

// WaterEntry validates a logged drink.
func (v *Validator) WaterEntry(raw []byte) (domain.WaterEntry, error) {
	var in waterEntryInput
	if err := v.check(KindWaterEntry, raw, &in); err != nil {
		return domain.WaterEntry{}, err
	}
	return domain.WaterEntry{
		ID:       deref(in.ID),
		UserID:   deref(in.UserID),
		Date:     timestamp(in.Date),
		Amount:   deref(in.Amount),
		LoggedAt: timestamp(in.LoggedAt),
		Source:   in.Source,
	}, nil
}
