package services

import (
	"context"
	"errors"
	"strings"

	"github.com/1716001473/ZhiJieHealth/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrFoodNotFound = errors.New("food not found")

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// Search matches name or alias, exact names first.
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]models.Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Food{}, nil
	}
	pattern := "%" + query + "%"

	foods := []models.Food{}
	err := s.db.WithContext(ctx).
		Where("name ILIKE ? OR alias ILIKE ?", pattern, pattern).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN name = ? THEN 0 ELSE 1 END, length(name), id",
			Vars:               []any{query},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(ctx context.Context, id uint) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}
