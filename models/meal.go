package models

import "time"

// NutritionSummary is the calorie/macro tuple shared by totals and targets.
// Grams for protein, fat and carb; kcal for calories.
type NutritionSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carb     float64 `json:"carb"`
}

// MealRecord is one logged food entry (breakfast/lunch/…)
type MealRecord struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"index;not null" json:"user_id"`
	FoodID     *uint   `json:"food_id"`
	FoodName   string  `gorm:"size:100;not null" json:"food_name"`
	ImageURL   *string `gorm:"size:500" json:"image_url"`
	MealDate   string  `gorm:"size:10;index;not null" json:"meal_date"` // YYYY-MM-DD
	MealType   string  `gorm:"size:20;not null" json:"meal_type"`
	UnitWeight float64 `json:"unit_weight"` // grams
	Note       *string `gorm:"type:text" json:"note"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Fat        float64 `json:"fat"`
	Carb       float64 `json:"carb"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// DailyNutritionReport is the per-day view the clients render.
type DailyNutritionReport struct {
	Date        string           `json:"date"`
	Total       NutritionSummary `json:"total"`
	Recommended NutritionSummary `json:"recommended"`
	ProteinPct  float64          `json:"protein_pct"`
	FatPct      float64          `json:"fat_pct"`
	CarbPct     float64          `json:"carb_pct"`
	Records     []MealRecord     `json:"records"`
}
