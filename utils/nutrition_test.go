package utils

import (
	"math"
	"testing"

	"github.com/1716001473/ZhiJieHealth/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculateRecommendedMacros(t *testing.T) {
	assert.Equal(t, models.NutritionSummary{Calories: 2000, Protein: 75, Fat: 66.7, Carb: 275}, CalculateRecommendedMacros(2000))
	assert.Equal(t, models.NutritionSummary{Calories: 1800, Protein: 67.5, Fat: 60, Carb: 247.5}, CalculateRecommendedMacros("1800"))
	assert.Equal(t, models.NutritionSummary{}, CalculateRecommendedMacros("abc"))
	assert.Equal(t, models.NutritionSummary{}, CalculateRecommendedMacros(-500))
	assert.Equal(t, models.NutritionSummary{}, CalculateRecommendedMacros(nil))
}

func TestRecommendedMacrosEnergyAddsUp(t *testing.T) {
	for cal := 1200.0; cal <= 4000; cal += 50 {
		m := CalculateRecommendedMacros(cal)
		energy := m.Protein*4 + m.Fat*9 + m.Carb*4
		assert.LessOrEqual(t, math.Abs(energy-m.Calories), m.Calories*0.01, "calories %v", cal)
	}
}

func TestRingColor(t *testing.T) {
	assert.Equal(t, RingColorOver, RingColor(100))
	assert.Equal(t, RingColorOver, RingColor(150))
	assert.Equal(t, RingColorNear, RingColor(60))
	assert.Equal(t, RingColorNear, RingColor("99"))
	assert.Equal(t, RingColorNormal, RingColor(59.9))
	assert.Equal(t, RingColorNormal, RingColor("abc"))
}

func TestScaleNutrition(t *testing.T) {
	per100g := models.NutritionSummary{Calories: 100, Protein: 10, Fat: 5, Carb: 20}
	assert.Equal(t, models.NutritionSummary{Calories: 150, Protein: 15, Fat: 7.5, Carb: 30}, ScaleNutrition(per100g, 150))
	assert.Equal(t, models.NutritionSummary{}, ScaleNutrition(per100g, -20))
}
