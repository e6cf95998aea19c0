package services

import (
	"context"
	"fmt"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StaleMarker is told when a profile change invalidates the saved plan.
type StaleMarker interface {
	MarkNeedsUpdate(ctx context.Context, userID uint) error
}

type UserService struct {
	db    *gorm.DB
	plans StaleMarker
	log   *zap.SugaredLogger
}

func NewUserService(db *gorm.DB, plans StaleMarker, log *zap.SugaredLogger) *UserService {
	return &UserService{db: db, plans: plans, log: log}
}

type HealthSummary struct {
	Profile      models.HealthProfile `json:"profile"`
	BMI          float64              `json:"bmi"`
	BMIStatus    utils.BMIStatus      `json:"bmi_status"`
	Completion   int                  `json:"completion"`
	Advice       utils.Advice         `json:"advice"`
	FocusMessage string               `json:"focus_message"`
	HealthGoal   string               `json:"health_goal"`
	GoalLabel    string               `json:"goal_label"`
	Preferences  string               `json:"dietary_preferences"`
	PrefsLabel   string               `json:"preferences_label"`
}

func SummarizeHealth(user models.User) HealthSummary {
	profile := user.HealthProfile()
	bmi := utils.CalcBMIValue(profile)
	_, goalLabel := utils.NormalizeGoal(user.HealthGoal)

	return HealthSummary{
		Profile:      profile,
		BMI:          bmi,
		BMIStatus:    utils.BMIStatusOf(bmi),
		Completion:   utils.ProfileCompletion(profile),
		Advice:       utils.LocalAdvice(profile),
		FocusMessage: utils.HealthFocusMessage(profile),
		HealthGoal:   user.HealthGoal,
		GoalLabel:    goalLabel,
		Preferences:  user.DietaryPreferences,
		PrefsLabel:   utils.PreferencesLabel(user.DietaryPreferences),
	}
}

func (s *UserService) HealthSummary(ctx context.Context, userID uint) (*HealthSummary, error) {
	user, err := loadUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	summary := SummarizeHealth(*user)
	return &summary, nil
}

type HealthUpdate struct {
	Profile            models.HealthProfile
	HealthGoal         *string
	DietaryPreferences *string
	Nickname           *string
}

// UpdateHealthProfile replaces the profile columns. When weight and height
// are both given they must describe a plausible body.
func (s *UserService) UpdateHealthProfile(ctx context.Context, userID uint, in HealthUpdate) (*HealthSummary, error) {
	p := in.Profile
	if p.Weight != nil && p.Height != nil {
		if _, err := utils.CalculateBMI(*p.Height, *p.Weight); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrImplausibleProfile, err)
		}
	}
	if p.Age != nil && (*p.Age <= 0 || *p.Age > 150) {
		return nil, fmt.Errorf("%w: age %d out of range", ErrImplausibleProfile, *p.Age)
	}

	user, err := loadUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	prev := *user

	user.ApplyHealthProfile(p)
	if in.HealthGoal != nil {
		user.HealthGoal = *in.HealthGoal
	}
	if in.DietaryPreferences != nil {
		user.DietaryPreferences = *in.DietaryPreferences
	}
	if in.Nickname != nil {
		user.Nickname = *in.Nickname
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("save health profile: %w", err)
	}

	if s.plans != nil && utils.HasPlanProfileChanged(prev.HealthProfile(), prev, user.HealthProfile(), *user) {
		if err := s.plans.MarkNeedsUpdate(ctx, userID); err != nil {
			s.log.Warnw("failed to flag plan for update", "user_id", userID, "error", err)
		}
	}

	summary := SummarizeHealth(*user)
	return &summary, nil
}
