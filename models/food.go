package models

// Food is a catalog entry. Nutrition columns are per 100 g.
type Food struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Alias         string  `gorm:"size:200" json:"alias"` // comma separated
	Category      string  `gorm:"size:50" json:"category"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbohydrate  float64 `json:"carbohydrate"`
	ServingDesc   string  `gorm:"size:100" json:"serving_desc"`
	ServingWeight int     `gorm:"default:100" json:"serving_weight"` // grams
}

func (f Food) Per100g() NutritionSummary {
	return NutritionSummary{
		Calories: f.Calories,
		Protein:  f.Protein,
		Fat:      f.Fat,
		Carb:     f.Carbohydrate,
	}
}
