package tracker

import (
	"math"

	"github.com/2beens/fittrack/internal/apperr"
)

type (
	WeightUnit string
	WaistUnit  string
)

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"

	Centimeters WaistUnit = "cm"
	Inches      WaistUnit = "in"
)

const (
	kgToLbs  = 2.20462
	inchToCm = 2.54
)

func (u WeightUnit) IsValid() bool { return u == Kilograms || u == Pounds }
func (u WaistUnit) IsValid() bool  { return u == Centimeters || u == Inches }

// ToKg converts a weight entered in unit to kilograms. The store always
// holds kilograms.
func ToKg(value float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return value / kgToLbs
	}
	return value
}

// FromKg converts kilograms for display, rounding pounds to one decimal.
func FromKg(kg float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return math.Round(kg*kgToLbs*10) / 10
	}
	return kg
}

// SnapWeight rounds to the smallest plate increment: 2.5 lbs or 1.25 kg.
func SnapWeight(value float64, unit WeightUnit) float64 {
	snap := 1.25
	if unit == Pounds {
		snap = 2.5
	}
	return math.Round(value/snap) * snap
}

func ToCm(value float64, unit WaistUnit) float64 {
	if unit == Inches {
		return value * inchToCm
	}
	return value
}

func FromCm(cm float64, unit WaistUnit) float64 {
	if unit == Inches {
		return math.Round(cm/inchToCm*10) / 10
	}
	return cm
}

func parseWeightUnit(s string) (WeightUnit, error) {
	if s == "" {
		return Kilograms, nil
	}
	u := WeightUnit(s)
	if !u.IsValid() {
		return "", apperr.Validation(`weight unit must be "kg" or "lbs"`)
	}
	return u, nil
}

func parseWaistUnit(s string) (WaistUnit, error) {
	if s == "" {
		return Centimeters, nil
	}
	u := WaistUnit(s)
	if !u.IsValid() {
		return "", apperr.Validation(`waist unit must be "cm" or "in"`)
	}
	return u, nil
}
