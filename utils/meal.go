package utils

import (
	"strings"

	"github.com/1716001473/ZhiJieHealth/models"
)

// MealItems returns the records of one meal type (case-insensitive) in
// logging order.
func MealItems(records []models.MealRecord, mealType string) []models.MealRecord {
	items := []models.MealRecord{}
	for _, r := range records {
		if strings.EqualFold(r.MealType, mealType) {
			items = append(items, r)
		}
	}
	return items
}

// MealCalories is the rounded calorie sum of one meal type.
func MealCalories(records []models.MealRecord, mealType string) int {
	var sum float64
	for _, r := range MealItems(records, mealType) {
		sum += r.Calories
	}
	return int(roundHalfUp(sum))
}

// EffectiveTarget is the calorie target progress is measured against: the
// user's override when set, else the report's recommendation, else 2000.
func EffectiveTarget(report models.DailyNutritionReport, target float64) float64 {
	if target > 0 {
		return target
	}
	if report.Recommended.Calories > 0 {
		return report.Recommended.Calories
	}
	return defaultRecommended.Calories
}

func CaloriePercent(report models.DailyNutritionReport, target float64) int {
	return SafePercent(report.Total.Calories, EffectiveTarget(report, target))
}

func RemainingCalories(report models.DailyNutritionReport, target float64) int {
	r := EffectiveTarget(report, target) - report.Total.Calories
	if r <= 0 {
		return 0
	}
	return int(roundHalfUp(r))
}

// CurrentRecommended returns the report's recommendation with the calorie
// field replaced by the user's override, if any.
func CurrentRecommended(report models.DailyNutritionReport, target float64) models.NutritionSummary {
	rec := WithRecommendedDefaults(report.Recommended)
	if target > 0 {
		rec.Calories = target
	}
	return rec
}

// BuildDailyReport aggregates one day of records. The *_pct fields are the
// energy share of each macro in the day's calories.
func BuildDailyReport(date string, records []models.MealRecord) models.DailyNutritionReport {
	var total models.NutritionSummary
	for _, r := range records {
		total.Calories += r.Calories
		total.Protein += r.Protein
		total.Fat += r.Fat
		total.Carb += r.Carb
	}

	report := models.DailyNutritionReport{
		Date: date,
		Total: models.NutritionSummary{
			Calories: round1(total.Calories),
			Protein:  round1(total.Protein),
			Fat:      round1(total.Fat),
			Carb:     round1(total.Carb),
		},
		Recommended: defaultRecommended,
		Records:     make([]models.MealRecord, 0, len(records)),
	}
	report.Records = append(report.Records, records...)

	if total.Calories > 0 {
		report.ProteinPct = round1(total.Protein * kcalPerGramProtein / total.Calories * 100)
		report.FatPct = round1(total.Fat * kcalPerGramFat / total.Calories * 100)
		report.CarbPct = round1(total.Carb * kcalPerGramCarb / total.Calories * 100)
	}
	return report
}
