package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var validate = validator.New()

// ImageUploader stores a data-URL image and returns where it can be fetched.
type ImageUploader interface {
	Upload(ctx context.Context, dataURL, prefix string) (string, error)
}

type MealRecordInput struct {
	FoodID     *uint                   `json:"food_id"`
	FoodName   string                  `json:"food_name" validate:"required,max=100"`
	MealDate   string                  `json:"meal_date" validate:"required,datetime=2006-01-02"`
	MealType   string                  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	UnitWeight float64                 `json:"unit_weight" validate:"gt=0"`
	Note       *string                 `json:"note" validate:"omitempty,max=200"`
	Per100g    models.NutritionSummary `json:"per_100g"`
	Image      string                  `json:"image,omitempty"` // data:image/...;base64,...
}

type MealRecordUpdate struct {
	UnitWeight *float64 `json:"unit_weight" validate:"omitempty,gt=0"`
	MealDate   *string  `json:"meal_date" validate:"omitempty,datetime=2006-01-02"`
	MealType   *string  `json:"meal_type" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Note       *string  `json:"note" validate:"omitempty,max=200"`
}

func ValidateMealRecordInput(in *MealRecordInput) error {
	in.MealType = strings.ToLower(strings.TrimSpace(in.MealType))
	in.FoodName = strings.TrimSpace(in.FoodName)
	return validate.Struct(in)
}

func ValidateMealRecordUpdate(in *MealRecordUpdate) error {
	if in.MealType != nil {
		t := strings.ToLower(strings.TrimSpace(*in.MealType))
		in.MealType = &t
	}
	return validate.Struct(in)
}

type MealService struct {
	db       *gorm.DB
	foods    *FoodService
	tracker  *TrackerService
	alerts   *AlertBus
	pub      Publisher
	uploader ImageUploader
	log      *zap.SugaredLogger
}

func NewMealService(db *gorm.DB, foods *FoodService, tracker *TrackerService, alerts *AlertBus, pub Publisher, uploader ImageUploader, log *zap.SugaredLogger) *MealService {
	return &MealService{db: db, foods: foods, tracker: tracker, alerts: alerts, pub: pub, uploader: uploader, log: log}
}

func (s *MealService) CreateRecord(ctx context.Context, userID uint, in MealRecordInput) (*models.MealRecord, error) {
	if err := ValidateMealRecordInput(&in); err != nil {
		return nil, err
	}

	per100g, err := s.resolvePer100g(ctx, in)
	if err != nil {
		return nil, err
	}
	actual := utils.ScaleNutrition(per100g, in.UnitWeight)

	record := &models.MealRecord{
		UserID:     userID,
		FoodID:     in.FoodID,
		FoodName:   in.FoodName,
		MealDate:   in.MealDate,
		MealType:   in.MealType,
		UnitWeight: in.UnitWeight,
		Note:       in.Note,
		Calories:   actual.Calories,
		Protein:    actual.Protein,
		Fat:        actual.Fat,
		Carb:       actual.Carb,
	}

	if in.Image != "" {
		if s.uploader == nil {
			s.log.Infow("image upload disabled, dropping image", "user_id", userID)
		} else {
			url, err := s.uploader.Upload(ctx, in.Image, fmt.Sprintf("user-%d", userID))
			if err != nil {
				return nil, fmt.Errorf("failed to upload image: %w", err)
			}
			record.ImageURL = &url
		}
	}

	before := s.caloriePercent(ctx, userID, record.MealDate)
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	s.publishDay(ctx, userID, record.MealDate, before)
	return record, nil
}

// UpdateRecord applies a partial update; a new unit weight rescales the
// stored nutrition proportionally.
func (s *MealService) UpdateRecord(ctx context.Context, userID, recordID uint, in MealRecordUpdate) (*models.MealRecord, error) {
	if err := ValidateMealRecordUpdate(&in); err != nil {
		return nil, err
	}

	record, err := s.getRecord(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}
	oldDate := record.MealDate

	if in.UnitWeight != nil {
		rescaleRecord(record, *in.UnitWeight)
	}
	if in.MealDate != nil {
		record.MealDate = *in.MealDate
	}
	if in.MealType != nil {
		record.MealType = *in.MealType
	}
	if in.Note != nil {
		record.Note = in.Note
	}

	before := s.caloriePercent(ctx, userID, record.MealDate)
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}

	s.publishDay(ctx, userID, record.MealDate, before)
	if oldDate != record.MealDate {
		s.publishDay(ctx, userID, oldDate, 100)
	}
	return record, nil
}

func (s *MealService) DeleteRecord(ctx context.Context, userID, recordID uint) error {
	record, err := s.getRecord(ctx, userID, recordID)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(record).Error; err != nil {
		return err
	}
	s.publishDay(ctx, userID, record.MealDate, 100)
	return nil
}

// ListRecords returns the day's records in insertion order, optionally
// narrowed to one meal type.
func (s *MealService) ListRecords(ctx context.Context, userID uint, date, mealType string) ([]models.MealRecord, error) {
	var records []models.MealRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND meal_date = ?", userID, date).
		Order("id asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	if mealType != "" {
		return utils.MealItems(records, mealType), nil
	}
	return records, nil
}

func (s *MealService) DailyReport(ctx context.Context, userID uint, date string) (models.DailyNutritionReport, error) {
	records, err := s.ListRecords(ctx, userID, date, "")
	if err != nil {
		return models.DailyNutritionReport{}, err
	}
	return utils.BuildDailyReport(date, records), nil
}

// resolvePer100g prefers the catalog entry of FoodID and falls back to the
// values sent with the request.
func (s *MealService) resolvePer100g(ctx context.Context, in MealRecordInput) (models.NutritionSummary, error) {
	custom := models.NutritionSummary{
		Calories: nonNegative(in.Per100g.Calories),
		Protein:  nonNegative(in.Per100g.Protein),
		Fat:      nonNegative(in.Per100g.Fat),
		Carb:     nonNegative(in.Per100g.Carb),
	}
	if in.FoodID == nil || s.foods == nil {
		return custom, nil
	}

	food, err := s.foods.Get(ctx, *in.FoodID)
	switch {
	case err == nil:
		return food.Per100g(), nil
	case errors.Is(err, ErrFoodNotFound) && custom.Calories > 0:
		return custom, nil
	default:
		return models.NutritionSummary{}, err
	}
}

func (s *MealService) getRecord(ctx context.Context, userID, recordID uint) (*models.MealRecord, error) {
	var record models.MealRecord
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recordID, userID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// publishDay pushes the refreshed report and raises a calorie alert when the
// day's percent moved from below 100 to 100. Failures are logged; the
// mutation already happened.
func (s *MealService) publishDay(ctx context.Context, userID uint, date string, before int) {
	report, err := s.DailyReport(ctx, userID, date)
	if err != nil {
		s.log.Warnw("failed to rebuild daily report", "user_id", userID, "date", date, "error", err)
		return
	}
	progress := ProgressFor(report, s.targetCalories(ctx, userID))

	if s.pub != nil {
		s.pub.Broadcast(userID, map[string]any{
			"kind":     "report.updated",
			"report":   report,
			"progress": progress,
		})
	}

	if s.alerts != nil && CrossedTarget(before, progress.CaloriePercent) {
		s.alerts.Emit(ctx, userID, AlertCalorieTarget, fmt.Sprintf(
			"You have reached %d%% of your calorie target for %s (%d kcal).",
			progress.CaloriePercent, date, int(progress.TargetCalories)))
	}
}

// caloriePercent is the day's current percent, or 100 when it cannot be
// computed so that no alert fires.
func (s *MealService) caloriePercent(ctx context.Context, userID uint, date string) int {
	report, err := s.DailyReport(ctx, userID, date)
	if err != nil {
		return 100
	}
	return utils.CaloriePercent(report, s.targetCalories(ctx, userID))
}

func (s *MealService) targetCalories(ctx context.Context, userID uint) float64 {
	if s.tracker == nil {
		return 0
	}
	t, err := s.tracker.TargetCalories(ctx, userID)
	if err != nil {
		s.log.Warnw("failed to read target calories", "user_id", userID, "error", err)
		return 0
	}
	return t.Calories
}

func CrossedTarget(before, after int) bool {
	return before < 100 && after >= 100
}

func rescaleRecord(record *models.MealRecord, weight float64) {
	if record.UnitWeight > 0 {
		ratio := weight / record.UnitWeight
		record.Calories *= ratio
		record.Protein *= ratio
		record.Fat *= ratio
		record.Carb *= ratio
	}
	record.UnitWeight = weight
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
