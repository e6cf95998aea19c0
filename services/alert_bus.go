package services

import (
	"context"
	"time"

	"github.com/1716001473/ZhiJieHealth/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	AlertCalorieTarget = "calorie_target"
	AlertInfo          = "info"
)

// AlertBus persists user alerts and pushes them to live connections.
type AlertBus struct {
	db  *gorm.DB
	pub Publisher
	log *zap.SugaredLogger
}

func NewAlertBus(db *gorm.DB, pub Publisher, log *zap.SugaredLogger) *AlertBus {
	return &AlertBus{db: db, pub: pub, log: log}
}

// Emit is safe to call anywhere; persistence failures are logged, not returned.
func (b *AlertBus) Emit(ctx context.Context, userID uint, typ, message string) *models.Alert {
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}

	if b.db != nil {
		if err := b.db.WithContext(ctx).Create(a).Error; err != nil {
			b.log.Warnw("failed to store alert", "user_id", userID, "type", typ, "error", err)
		}
	}
	if b.pub != nil {
		b.pub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	return a
}

func (b *AlertBus) List(ctx context.Context, userID uint, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
