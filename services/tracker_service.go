package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/storage"
	"github.com/1716001473/ZhiJieHealth/utils"
)

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// TrackerService owns the user's target-calorie override and the daily
// progress derived from it.
type TrackerService struct {
	store storage.KVStore
}

func NewTrackerService(store storage.KVStore) *TrackerService {
	return &TrackerService{store: store}
}

type TargetCalories struct {
	Calories float64 `json:"calories"`
	Date     string  `json:"date,omitempty"` // day the override was set
}

type Progress struct {
	TargetCalories    float64                 `json:"target_calories"`
	CaloriePercent    int                     `json:"calorie_percent"`
	RemainingCalories int                     `json:"remaining_calories"`
	RingColor         string                  `json:"ring_color"`
	Recommended       models.NutritionSummary `json:"recommended"`
	MealCalories      map[string]int          `json:"meal_calories"`
}

// TargetCalories returns the override, Calories 0 when none is set.
func (s *TrackerService) TargetCalories(ctx context.Context, userID uint) (TargetCalories, error) {
	raw, ok, err := s.store.Get(ctx, userID, storage.KeyTargetCalories)
	if err != nil {
		return TargetCalories{}, fmt.Errorf("read target calories: %w", err)
	}
	if !ok {
		return TargetCalories{}, nil
	}
	date, _, err := s.store.Get(ctx, userID, storage.KeyTargetCaloriesDate)
	if err != nil {
		return TargetCalories{}, fmt.Errorf("read target calories date: %w", err)
	}
	calories := utils.ToNumber(raw)
	if calories < 0 {
		calories = 0
	}
	return TargetCalories{Calories: calories, Date: date}, nil
}

// SetTargetCalories stores the override; a value <= 0 clears it.
func (s *TrackerService) SetTargetCalories(ctx context.Context, userID uint, calories float64, date string) error {
	if !(calories > 0) {
		return s.store.Delete(ctx, userID, storage.KeyTargetCalories, storage.KeyTargetCaloriesDate)
	}
	if err := s.store.Set(ctx, userID, storage.KeyTargetCalories, strconv.FormatFloat(calories, 'f', -1, 64)); err != nil {
		return fmt.Errorf("store target calories: %w", err)
	}
	if err := s.store.Set(ctx, userID, storage.KeyTargetCaloriesDate, date); err != nil {
		return fmt.Errorf("store target calories date: %w", err)
	}
	return nil
}

func (s *TrackerService) Progress(ctx context.Context, userID uint, report models.DailyNutritionReport) (Progress, error) {
	target, err := s.TargetCalories(ctx, userID)
	if err != nil {
		return Progress{}, err
	}
	return ProgressFor(report, target.Calories), nil
}

// ProgressFor derives the progress view of a report for a target override
// (0 meaning none).
func ProgressFor(report models.DailyNutritionReport, target float64) Progress {
	pct := utils.CaloriePercent(report, target)
	meals := make(map[string]int, len(MealTypes))
	for _, t := range MealTypes {
		meals[t] = utils.MealCalories(report.Records, t)
	}
	return Progress{
		TargetCalories:    utils.EffectiveTarget(report, target),
		CaloriePercent:    pct,
		RemainingCalories: utils.RemainingCalories(report, target),
		RingColor:         utils.RingColor(pct),
		Recommended:       utils.CurrentRecommended(report, target),
		MealCalories:      meals,
	}
}
