package domain

// WeightUnit is a unit of body or load weight.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"
)

// IsValid reports whether u is kg or lbs.
func (u WeightUnit) IsValid() bool { return u == Kilograms || u == Pounds }

// HeightUnit is a unit of body height.
type HeightUnit string

const (
	Centimetres HeightUnit = "cm"
	Feet        HeightUnit = "ft"
)

// IsValid reports whether u is cm or ft.
func (u HeightUnit) IsValid() bool { return u == Centimetres || u == Feet }

// BMICategory is the WHO weight class of a body-mass index.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)
