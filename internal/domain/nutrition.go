package domain

import (
	"slices"
	"time"
)

// MealType is the slot of the day a meal was eaten in.
type MealType string

// Possible meal type values
const (
	MealTypeBreakfast   MealType = "breakfast"
	MealTypeLunch       MealType = "lunch"
	MealTypeDinner      MealType = "dinner"
	MealTypeSnack       MealType = "snack"
	MealTypePreWorkout  MealType = "pre_workout"
	MealTypePostWorkout MealType = "post_workout"
)

var mealTypes = []MealType{
	MealTypeBreakfast,
	MealTypeLunch,
	MealTypeDinner,
	MealTypeSnack,
	MealTypePreWorkout,
	MealTypePostWorkout,
}

// IsValid reports whether m is a member of the closed MealType set.
func (m MealType) IsValid() bool { return slices.Contains(mealTypes, m) }

// DietaryRestriction is a diet a user follows or an ingredient class they avoid.
type DietaryRestriction string

// Possible dietary restriction values
const (
	DietaryRestrictionVegetarian          DietaryRestriction = "vegetarian"
	DietaryRestrictionVegan               DietaryRestriction = "vegan"
	DietaryRestrictionPescatarian         DietaryRestriction = "pescatarian"
	DietaryRestrictionGlutenFree          DietaryRestriction = "gluten_free"
	DietaryRestrictionDairyFree           DietaryRestriction = "dairy_free"
	DietaryRestrictionNutFree             DietaryRestriction = "nut_free"
	DietaryRestrictionSoyFree             DietaryRestriction = "soy_free"
	DietaryRestrictionEggFree             DietaryRestriction = "egg_free"
	DietaryRestrictionKeto                DietaryRestriction = "keto"
	DietaryRestrictionPaleo               DietaryRestriction = "paleo"
	DietaryRestrictionLowCarb             DietaryRestriction = "low_carb"
	DietaryRestrictionLowFat              DietaryRestriction = "low_fat"
	DietaryRestrictionMediterranean       DietaryRestriction = "mediterranean"
	DietaryRestrictionIntermittentFasting DietaryRestriction = "intermittent_fasting"
)

var dietaryRestrictions = []DietaryRestriction{
	DietaryRestrictionVegetarian,
	DietaryRestrictionVegan,
	DietaryRestrictionPescatarian,
	DietaryRestrictionGlutenFree,
	DietaryRestrictionDairyFree,
	DietaryRestrictionNutFree,
	DietaryRestrictionSoyFree,
	DietaryRestrictionEggFree,
	DietaryRestrictionKeto,
	DietaryRestrictionPaleo,
	DietaryRestrictionLowCarb,
	DietaryRestrictionLowFat,
	DietaryRestrictionMediterranean,
	DietaryRestrictionIntermittentFasting,
}

// IsValid reports whether d is a member of the closed DietaryRestriction set.
func (d DietaryRestriction) IsValid() bool { return slices.Contains(dietaryRestrictions, d) }

// CuisineType is a regional cooking style.
type CuisineType string

// Possible cuisine values
const (
	CuisineAmerican      CuisineType = "american"
	CuisineItalian       CuisineType = "italian"
	CuisineMexican       CuisineType = "mexican"
	CuisineAsian         CuisineType = "asian"
	CuisineIndian        CuisineType = "indian"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineFrench        CuisineType = "french"
	CuisineJapanese      CuisineType = "japanese"
	CuisineThai          CuisineType = "thai"
	CuisineChinese       CuisineType = "chinese"
	CuisineMiddleEastern CuisineType = "middle_eastern"
	CuisineAfrican       CuisineType = "african"
	CuisineLatinAmerican CuisineType = "latin_american"
)

var cuisineTypes = []CuisineType{
	CuisineAmerican,
	CuisineItalian,
	CuisineMexican,
	CuisineAsian,
	CuisineIndian,
	CuisineMediterranean,
	CuisineFrench,
	CuisineJapanese,
	CuisineThai,
	CuisineChinese,
	CuisineMiddleEastern,
	CuisineAfrican,
	CuisineLatinAmerican,
}

// IsValid reports whether c is a member of the closed CuisineType set.
func (c CuisineType) IsValid() bool { return slices.Contains(cuisineTypes, c) }

// CookingDifficulty grades how demanding a recipe is.
type CookingDifficulty string

const (
	CookingDifficultyBeginner     CookingDifficulty = "beginner"
	CookingDifficultyIntermediate CookingDifficulty = "intermediate"
	CookingDifficultyAdvanced     CookingDifficulty = "advanced"
)

// IsValid reports whether c is a member of the closed CookingDifficulty set.
func (c CookingDifficulty) IsValid() bool {
	switch c {
	case CookingDifficultyBeginner, CookingDifficultyIntermediate, CookingDifficultyAdvanced:
		return true
	default:
		return false
	}
}

// FoodCategory groups foods in the food database.
type FoodCategory string

// Possible food category values
const (
	FoodCategoryFruits      FoodCategory = "fruits"
	FoodCategoryVegetables  FoodCategory = "vegetables"
	FoodCategoryGrains      FoodCategory = "grains"
	FoodCategoryProteins    FoodCategory = "proteins"
	FoodCategoryDairy       FoodCategory = "dairy"
	FoodCategoryNutsSeeds   FoodCategory = "nuts_seeds"
	FoodCategoryOilsFats    FoodCategory = "oils_fats"
	FoodCategoryBeverages   FoodCategory = "beverages"
	FoodCategorySnacks      FoodCategory = "snacks"
	FoodCategorySweets      FoodCategory = "sweets"
	FoodCategoryCondiments  FoodCategory = "condiments"
	FoodCategoryHerbsSpices FoodCategory = "herbs_spices"
)

var foodCategories = []FoodCategory{
	FoodCategoryFruits,
	FoodCategoryVegetables,
	FoodCategoryGrains,
	FoodCategoryProteins,
	FoodCategoryDairy,
	FoodCategoryNutsSeeds,
	FoodCategoryOilsFats,
	FoodCategoryBeverages,
	FoodCategorySnacks,
	FoodCategorySweets,
	FoodCategoryCondiments,
	FoodCategoryHerbsSpices,
}

// IsValid reports whether c is a member of the closed FoodCategory set.
func (c FoodCategory) IsValid() bool { return slices.Contains(foodCategories, c) }

// FoodCreator records who added a food to the database.
type FoodCreator string

const (
	FoodCreatorSystem FoodCreator = "system"
	FoodCreatorUser   FoodCreator = "user"
	FoodCreatorAdmin  FoodCreator = "admin"
)

// IsValid reports whether c is system, user or admin.
func (c FoodCreator) IsValid() bool {
	switch c {
	case FoodCreatorSystem, FoodCreatorUser, FoodCreatorAdmin:
		return true
	default:
		return false
	}
}

// WaterSource is the drink a water entry was logged from.
type WaterSource string

const (
	WaterSourceWater       WaterSource = "water"
	WaterSourceTea         WaterSource = "tea"
	WaterSourceCoffee      WaterSource = "coffee"
	WaterSourceJuice       WaterSource = "juice"
	WaterSourceSportsDrink WaterSource = "sports_drink"
	WaterSourceOther       WaterSource = "other"
)

var waterSources = []WaterSource{
	WaterSourceWater,
	WaterSourceTea,
	WaterSourceCoffee,
	WaterSourceJuice,
	WaterSourceSportsDrink,
	WaterSourceOther,
}

// IsValid reports whether s is a member of the closed WaterSource set.
func (s WaterSource) IsValid() bool { return slices.Contains(waterSources, s) }

// SupplementType classifies a dietary supplement.
type SupplementType string

// Possible supplement type values
const (
	SupplementProtein      SupplementType = "protein"
	SupplementCreatine     SupplementType = "creatine"
	SupplementMultivitamin SupplementType = "multivitamin"
	SupplementVitaminD     SupplementType = "vitamin_d"
	SupplementOmega3       SupplementType = "omega_3"
	SupplementProbiotics   SupplementType = "probiotics"
	SupplementPreWorkout   SupplementType = "pre_workout"
	SupplementPostWorkout  SupplementType = "post_workout"
	SupplementBCAA         SupplementType = "bcaa"
	SupplementCaffeine     SupplementType = "caffeine"
	SupplementMelatonin    SupplementType = "melatonin"
	SupplementOther        SupplementType = "other"
)

var supplementTypes = []SupplementType{
	SupplementProtein,
	SupplementCreatine,
	SupplementMultivitamin,
	SupplementVitaminD,
	SupplementOmega3,
	SupplementProbiotics,
	SupplementPreWorkout,
	SupplementPostWorkout,
	SupplementBCAA,
	SupplementCaffeine,
	SupplementMelatonin,
	SupplementOther,
}

// IsValid reports whether s is a member of the closed SupplementType set.
func (s SupplementType) IsValid() bool { return slices.Contains(supplementTypes, s) }

// NutritionInfo is the nutrient record of a food, recipe or meal.
// Macros are in grams, calories in kcal. A nil micronutrient means the value
// is not tracked, which is different from a tracked zero.
type NutritionInfo struct {
	Calories           float64  `json:"calories"`
	Protein            float64  `json:"protein"`
	Carbohydrates      float64  `json:"carbohydrates"`
	Fat                float64  `json:"fat"`
	Fiber              *float64 `json:"fiber,omitempty"`              // g
	Sugar              *float64 `json:"sugar,omitempty"`              // g
	Sodium             *float64 `json:"sodium,omitempty"`             // mg
	Cholesterol        *float64 `json:"cholesterol,omitempty"`        // mg
	VitaminA           *float64 `json:"vitaminA,omitempty"`           // IU
	VitaminC           *float64 `json:"vitaminC,omitempty"`           // mg
	Calcium            *float64 `json:"calcium,omitempty"`            // mg
	Iron               *float64 `json:"iron,omitempty"`               // mg
	Potassium          *float64 `json:"potassium,omitempty"`          // mg
	SaturatedFat       *float64 `json:"saturatedFat,omitempty"`       // g
	TransFat           *float64 `json:"transFat,omitempty"`           // g
	MonounsaturatedFat *float64 `json:"monounsaturatedFat,omitempty"` // g
	PolyunsaturatedFat *float64 `json:"polyunsaturatedFat,omitempty"` // g
}

// NutritionTargets are the daily intake goals for a user.
// Calories and the three macros relate through the 4/4/9 kcal-per-gram factors
// only approximately, because each gram value is rounded on its own.
type NutritionTargets struct {
	Calories      float64  `json:"calories"`
	Protein       float64  `json:"protein"`
	Carbohydrates float64  `json:"carbohydrates"`
	Fat           float64  `json:"fat"`
	Fiber         *float64 `json:"fiber,omitempty"`  // g
	Sodium        *float64 `json:"sodium,omitempty"` // mg
	Sugar         *float64 `json:"sugar,omitempty"`  // g
}

// Food is an entry in the food database. ServingSize is in ServingUnit.
type Food struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Brand       *string      `json:"brand,omitempty"`
	Barcode     *string      `json:"barcode,omitempty"`
	Category    FoodCategory `json:"category"`
	ServingSize float64      `json:"servingSize"`
	ServingUnit string       `json:"servingUnit"`
	Allergens   []string     `json:"allergens"`
	Verified    bool         `json:"verified"`
	CreatedBy   FoodCreator  `json:"createdBy"`
}

// MealEntry is a logged meal.
type MealEntry struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	MealType MealType  `json:"mealType"`
	Notes    *string   `json:"notes,omitempty"`
	Rating   *float64  `json:"rating,omitempty"` // 1-5
	LoggedAt time.Time `json:"loggedAt"`
}

// WaterEntry is a logged drink. Amount is in millilitres.
type WaterEntry struct {
	ID       string       `json:"id"`
	UserID   string       `json:"userId"`
	Date     time.Time    `json:"date"`
	Amount   float64      `json:"amount"`
	LoggedAt time.Time    `json:"loggedAt"`
	Source   *WaterSource `json:"source,omitempty"`
}
