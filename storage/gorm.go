package storage

import (
	"context"
	"errors"

	"github.com/1716001473/ZhiJieHealth/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists values in the user_settings table.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, userID uint, key string) (string, bool, error) {
	var setting models.UserSetting
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, userID uint, key, value string) error {
	setting := models.UserSetting{UserID: userID, Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

func (s *GormStore) Delete(ctx context.Context, userID uint, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND key IN ?", userID, keys).
		Delete(&models.UserSetting{}).Error
}
