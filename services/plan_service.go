package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/storage"
	"github.com/1716001473/ZhiJieHealth/utils"

	"gorm.io/gorm"
)

type PlanService struct {
	db    *gorm.DB
	store storage.KVStore
}

func NewPlanService(db *gorm.DB, store storage.KVStore) *PlanService {
	return &PlanService{db: db, store: store}
}

type PlanStatus struct {
	SavedSignature   string                    `json:"saved_signature"`
	CurrentSignature string                    `json:"current_signature"`
	NeedsUpdate      bool                      `json:"needs_update"`
	ShowUpdatePrompt bool                      `json:"show_update_prompt"`
	Payload          models.PlanProfilePayload `json:"payload"`
	ProfileText      string                    `json:"profile_text"`
	Plan             *models.DietPlan          `json:"plan"`
}

// BuildPlanStatus compares the latest saved plan against the user's
// current profile.
func BuildPlanStatus(user models.User, latest *models.DietPlan, needsUpdate bool) PlanStatus {
	profile := user.HealthProfile()
	current := utils.BuildPlanSignature(profile, user)

	saved := ""
	if latest != nil {
		saved = latest.Signature
	}

	return PlanStatus{
		SavedSignature:   saved,
		CurrentSignature: current,
		NeedsUpdate:      needsUpdate,
		ShowUpdatePrompt: utils.ShouldShowPlanUpdatePrompt(saved, current, needsUpdate),
		Payload:          utils.BuildPlanProfilePayload(profile, user),
		ProfileText:      utils.PlanProfileText(user.Nickname, profile, user),
		Plan:             latest,
	}
}

func (s *PlanService) Status(ctx context.Context, userID uint) (*PlanStatus, error) {
	user, err := loadUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.LatestPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	_, needsUpdate, err := s.store.Get(ctx, userID, storage.KeyPlanNeedsUpdate)
	if err != nil {
		return nil, fmt.Errorf("read plan flag: %w", err)
	}

	status := BuildPlanStatus(*user, latest, needsUpdate)
	return &status, nil
}

// LatestPlan returns nil, nil when the user has no plan yet.
func (s *PlanService) LatestPlan(ctx context.Context, userID uint) (*models.DietPlan, error) {
	var plans []models.DietPlan
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return utils.SelectRecommendedPlan(plans), nil
}

// SavePlan stores a generated plan stamped with the current profile
// signature and clears the needs-update flag.
func (s *PlanService) SavePlan(ctx context.Context, userID uint, title, content string) (*models.DietPlan, error) {
	user, err := loadUser(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}

	plan := &models.DietPlan{
		UserID:    userID,
		Title:     title,
		Content:   content,
		Signature: utils.BuildPlanSignature(user.HealthProfile(), *user),
		CreatedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, userID, storage.KeyPlanNeedsUpdate); err != nil {
		return nil, fmt.Errorf("clear plan flag: %w", err)
	}
	return plan, nil
}

func (s *PlanService) MarkNeedsUpdate(ctx context.Context, userID uint) error {
	return s.store.Set(ctx, userID, storage.KeyPlanNeedsUpdate, "1")
}

func loadUser(ctx context.Context, db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
