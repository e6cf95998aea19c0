package utils

import (
	"testing"
	"time"

	"github.com/1716001473/ZhiJieHealth/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)

func TestSafePercent(t *testing.T) {
	cases := []struct {
		value, max any
		want       int
	}{
		{50, 200, 25},
		{300, 200, 100},
		{-5, 100, 0},
		{1, 0, 0},
		{"abc", 100, 0},
		{100, "abc", 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 200, 1}, // 0.5 rounds up
		{"50", "200", 25},
		{1, 1e-320, 0},
		{nil, nil, 0},
	}
	for _, tc := range cases {
		got := SafePercent(tc.value, tc.max)
		assert.Equal(t, tc.want, got, "SafePercent(%v, %v)", tc.value, tc.max)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestNormalizeReportEmpty(t *testing.T) {
	for _, raw := range []any{nil, "not an object", 42, []any{1, 2}, map[string]any{}} {
		r := NormalizeReportAt(raw, fixedNow)
		assert.Equal(t, "2024-03-05", r.Date)
		assert.Equal(t, models.NutritionSummary{}, r.Total)
		assert.Equal(t, DefaultRecommended(), r.Recommended)
		assert.Zero(t, r.ProteinPct)
		require.NotNil(t, r.Records)
		assert.Empty(t, r.Records)
	}
}

func TestNormalizeReportPerFieldRecommendedDefaults(t *testing.T) {
	r := NormalizeReportAt(map[string]any{
		"recommended": map[string]any{"calories": 1800, "protein": 0, "fat": "abc"},
	}, fixedNow)

	assert.Equal(t, models.NutritionSummary{Calories: 1800, Protein: 75, Fat: 66, Carb: 275}, r.Recommended)
}

func TestNormalizeReportCoercesFields(t *testing.T) {
	r := NormalizeReportAt(map[string]any{
		"date":        "2024-01-02",
		"total":       map[string]any{"calories": "1234.5", "protein": 60, "fat": -3, "carb": nil},
		"protein_pct": "20.5",
		"fat_pct":     30,
		"carb_pct":    "x",
		"records": []any{
			map[string]any{"id": 3, "food_name": "rice", "meal_type": "lunch", "calories": "120", "unit_weight": "100"},
			5,
			nil,
			"x",
			map[string]any{"food_name": "apple", "calories": -10},
		},
	}, fixedNow)

	assert.Equal(t, "2024-01-02", r.Date)
	assert.Equal(t, models.NutritionSummary{Calories: 1234.5, Protein: 60}, r.Total)
	assert.Equal(t, 20.5, r.ProteinPct)
	assert.Equal(t, 30.0, r.FatPct)
	assert.Zero(t, r.CarbPct)

	require.Len(t, r.Records, 2)
	assert.Equal(t, uint(3), r.Records[0].ID)
	assert.Equal(t, "rice", r.Records[0].FoodName)
	assert.Equal(t, 120.0, r.Records[0].Calories)
	assert.Equal(t, 100.0, r.Records[0].UnitWeight)
	assert.Nil(t, r.Records[0].Note)
	assert.Equal(t, "apple", r.Records[1].FoodName)
	assert.Zero(t, r.Records[1].Calories)
}

func TestNormalizeReportNonStringDateUsesToday(t *testing.T) {
	r := NormalizeReportAt(map[string]any{"date": 20240102}, fixedNow)
	assert.Equal(t, "2024-03-05", r.Date)

	r = NormalizeReportAt(map[string]any{"date": ""}, fixedNow)
	assert.Equal(t, "2024-03-05", r.Date)
}

func TestNormalizeReportRecordsNotArray(t *testing.T) {
	r := NormalizeReportAt(map[string]any{"records": "oops"}, fixedNow)
	require.NotNil(t, r.Records)
	assert.Empty(t, r.Records)
}

func TestNormalizeReportIdempotent(t *testing.T) {
	note := "less salt"
	foodID := uint(9)
	inputs := []any{
		nil,
		map[string]any{"total": map[string]any{"calories": "800"}},
		models.DailyNutritionReport{
			Date:        "2024-02-01",
			Total:       models.NutritionSummary{Calories: 900, Protein: 40, Fat: 30, Carb: 100},
			Recommended: models.NutritionSummary{Calories: 1800},
			ProteinPct:  17.8,
			Records: []models.MealRecord{
				{ID: 1, UserID: 2, FoodID: &foodID, FoodName: "noodles", MealType: "dinner", Note: &note, Calories: 450},
			},
		},
	}
	for _, in := range inputs {
		once := NormalizeReportAt(in, fixedNow)
		twice := NormalizeReportAt(once, fixedNow)
		assert.Equal(t, once, twice)
	}
}

func TestParseReport(t *testing.T) {
	r := ParseReport([]byte(`{"date":"2024-05-06","total":{"calories":1500},"records":[{"food_name":"egg","calories":"78"}]}`))
	assert.Equal(t, "2024-05-06", r.Date)
	assert.Equal(t, 1500.0, r.Total.Calories)
	require.Len(t, r.Records, 1)
	assert.Equal(t, 78.0, r.Records[0].Calories)

	bad := ParseReport([]byte(`{not json`))
	assert.Equal(t, DefaultRecommended(), bad.Recommended)
	assert.NotNil(t, bad.Records)
}
