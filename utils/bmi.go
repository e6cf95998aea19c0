package utils

import (
	"errors"
	"strings"

	"github.com/1716001473/ZhiJieHealth/models"
)

// CalculateBMI expects height in centimeters and weight in kilograms.
// Unlike CalcBMIValue it rejects implausible input.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

// BMIStatus is the BMI band; the zero value means "unknown".
type BMIStatus string

const (
	BMIUnknown     BMIStatus = ""
	BMIUnderweight BMIStatus = "underweight"
	BMINormal      BMIStatus = "normal"
	BMIOverweight  BMIStatus = "overweight"
	BMIObese       BMIStatus = "obese"
)

type Advice struct {
	Diet     string `json:"diet"`
	Exercise string `json:"exercise"`
}

var adviceByStatus = map[BMIStatus]Advice{
	BMIUnknown: {
		Diet:     "Complete your health profile to get diet advice.",
		Exercise: "Complete your health profile to get exercise advice.",
	},
	BMIUnderweight: {
		Diet:     "Raise the energy density of your meals a little: staple food and quality protein at all three meals, plus one healthy snack.",
		Exercise: "Focus on light to moderate strength training and avoid so much cardio that you run an energy deficit.",
	},
	BMINormal: {
		Diet:     "Keep a balanced diet: mix whole and refined grains and prefer quality protein and fresh vegetables.",
		Exercise: "Keep up regular exercise, at least 3-5 moderate-intensity sessions a week.",
	},
	BMIOverweight: {
		Diet:     "Cut back on refined carbs and fried food; use vegetables and quality protein to stay full.",
		Exercise: "Add moderate exercise such as brisk walking or cycling to raise daily expenditure.",
	},
	BMIObese: {
		Diet:     "Control total calorie intake, skip late-night snacks and sugary drinks, and keep meals light.",
		Exercise: "Start with gradual aerobic exercise and add strength training to lift your basal metabolism.",
	},
}

var focusByStatus = map[BMIStatus]string{
	BMIUnknown:     "Complete your health profile to get personalized advice",
	BMIUnderweight: "BMI is low, remember to refuel with enough energy",
	BMINormal:      "BMI is normal, keep up the good habits",
	BMIOverweight:  "BMI is a bit high, eat lighter today?",
	BMIObese:       "BMI is a bit high, eat lighter today?",
}

// CalcBMIValue is weight(kg)/height(m)² rounded to one decimal, or 0 when
// either measurement is missing or not positive.
func CalcBMIValue(profile models.HealthProfile) float64 {
	w := valueOf(profile.Weight)
	h := valueOf(profile.Height)
	if w <= 0 || h <= 0 {
		return 0
	}
	meters := h / 100
	bmi := w / (meters * meters)
	if !isFinite(bmi) {
		return 0
	}
	return round1(bmi)
}

func BMIStatusOf(bmi float64) BMIStatus {
	switch {
	case !(bmi > 0) || !isFinite(bmi):
		return BMIUnknown
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 24:
		return BMINormal
	case bmi < 28:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func LocalAdvice(profile models.HealthProfile) Advice {
	return adviceByStatus[BMIStatusOf(CalcBMIValue(profile))]
}

func DietAdvice(profile models.HealthProfile) string {
	return LocalAdvice(profile).Diet
}

func HealthFocusMessage(profile models.HealthProfile) string {
	return focusByStatus[BMIStatusOf(CalcBMIValue(profile))]
}

const profileFieldCount = 5

// ProfileCompletion is the percentage of filled-in profile fields
// (weight, height, age, gender, activity). Values are not checked.
func ProfileCompletion(profile models.HealthProfile) int {
	filled := 0
	if profile.Weight != nil {
		filled++
	}
	if profile.Height != nil {
		filled++
	}
	if profile.Age != nil {
		filled++
	}
	if profile.Gender != "" {
		filled++
	}
	if profile.Activity != "" {
		filled++
	}
	return int(roundHalfUp(float64(filled) / profileFieldCount * 100))
}

// ParseHealthProfile reads a loosely typed profile. Missing, null and ""
// values stay unset.
func ParseHealthProfile(raw any) models.HealthProfile {
	obj := asObject(raw)

	var age *int
	if n := optionalNumber(obj["age"]); n != nil {
		v := int(roundHalfUp(*n))
		age = &v
	}

	return models.HealthProfile{
		Weight:   optionalNumber(obj["weight"]),
		Height:   optionalNumber(obj["height"]),
		Age:      age,
		Gender:   strings.TrimSpace(toString(obj["gender"])),
		Activity: strings.TrimSpace(toString(obj["activity"])),
	}
}
