package services

import (
	"context"
	"testing"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/storage"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerTargetCalories(t *testing.T) {
	ctx := context.Background()
	tracker := NewTrackerService(storage.NewMemoryStore())

	got, err := tracker.TargetCalories(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, TargetCalories{}, got)

	require.NoError(t, tracker.SetTargetCalories(ctx, 1, 1800, "2024-03-05"))
	got, err = tracker.TargetCalories(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, TargetCalories{Calories: 1800, Date: "2024-03-05"}, got)

	require.NoError(t, tracker.SetTargetCalories(ctx, 1, 0, "2024-03-06"))
	got, err = tracker.TargetCalories(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, TargetCalories{}, got)
}

func dayReport() models.DailyNutritionReport {
	return utils.BuildDailyReport("2024-03-05", []models.MealRecord{
		{ID: 1, MealType: "lunch", Calories: 500, Protein: 25, Fat: 15, Carb: 60},
		{ID: 2, MealType: "dinner", Calories: 400, Protein: 20, Fat: 12, Carb: 50},
	})
}

func TestProgressFor(t *testing.T) {
	p := ProgressFor(dayReport(), 1800)

	assert.Equal(t, 1800.0, p.TargetCalories)
	assert.Equal(t, 50, p.CaloriePercent)
	assert.Equal(t, 900, p.RemainingCalories)
	assert.Equal(t, utils.RingColorNormal, p.RingColor)
	assert.Equal(t, models.NutritionSummary{Calories: 1800, Protein: 75, Fat: 66, Carb: 275}, p.Recommended)
	assert.Equal(t, map[string]int{"breakfast": 0, "lunch": 500, "dinner": 400, "snack": 0}, p.MealCalories)

	noTarget := ProgressFor(dayReport(), 0)
	assert.Equal(t, 2000.0, noTarget.TargetCalories)
	assert.Equal(t, 45, noTarget.CaloriePercent)
}

func TestTrackerProgressUsesStoredTarget(t *testing.T) {
	ctx := context.Background()
	tracker := NewTrackerService(storage.NewMemoryStore())
	require.NoError(t, tracker.SetTargetCalories(ctx, 3, 900, "2024-03-05"))

	p, err := tracker.Progress(ctx, 3, dayReport())
	require.NoError(t, err)
	assert.Equal(t, 100, p.CaloriePercent)
	assert.Equal(t, 0, p.RemainingCalories)
	assert.Equal(t, utils.RingColorOver, p.RingColor)
}
