package utils

import "github.com/1716001473/ZhiJieHealth/models"

// Energy split of a recommended day and kcal per gram of each macro.
const (
	proteinEnergyShare = 0.15
	fatEnergyShare     = 0.30
	carbEnergyShare    = 0.55

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

const (
	RingColorOver   = "#F44336"
	RingColorNear   = "#FF9800"
	RingColorNormal = "#4CAF50"
)

// CalculateRecommendedMacros splits a daily calorie target into protein,
// fat and carbohydrate grams (15/30/55 % of energy), one decimal each.
func CalculateRecommendedMacros(targetCalories any) models.NutritionSummary {
	calories := nonNegative(ToNumber(targetCalories))

	return models.NutritionSummary{
		Calories: roundHalfUp(calories),
		Protein:  round1(calories * proteinEnergyShare / kcalPerGramProtein),
		Fat:      round1(calories * fatEnergyShare / kcalPerGramFat),
		Carb:     round1(calories * carbEnergyShare / kcalPerGramCarb),
	}
}

// RingColor picks the progress ring color for a percentage (may exceed 100).
func RingColor(percent any) string {
	value := ToNumber(percent)
	switch {
	case value >= 100:
		return RingColorOver
	case value >= 60:
		return RingColorNear
	default:
		return RingColorNormal
	}
}

// ScaleNutrition converts per-100 g values to a portion of grams.
func ScaleNutrition(per100g models.NutritionSummary, grams float64) models.NutritionSummary {
	ratio := nonNegative(ToNumber(grams)) / 100
	return models.NutritionSummary{
		Calories: per100g.Calories * ratio,
		Protein:  per100g.Protein * ratio,
		Fat:      per100g.Fat * ratio,
		Carb:     per100g.Carb * ratio,
	}
}
