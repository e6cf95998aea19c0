package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email              string `gorm:"uniqueIndex;not null"`
	Password           string `gorm:"not null"`
	Nickname           string
	HealthGoal         string // lose_weight | keep_fit | gain_muscle | …
	DietaryPreferences string // comma separated, e.g. "vegetarian,low_sugar"

	Weight   *float64 // kg
	Height   *float64 // cm
	Age      *int
	Gender   string // male | female
	Activity string // low | medium | high
}

// HealthProfile returns the body-profile columns of the user.
func (u User) HealthProfile() HealthProfile {
	return HealthProfile{
		Weight:   u.Weight,
		Height:   u.Height,
		Age:      u.Age,
		Gender:   u.Gender,
		Activity: u.Activity,
	}
}

// ApplyHealthProfile copies p onto the profile columns.
func (u *User) ApplyHealthProfile(p HealthProfile) {
	u.Weight = p.Weight
	u.Height = p.Height
	u.Age = p.Age
	u.Gender = p.Gender
	u.Activity = p.Activity
}

// HealthProfile numerics are pointers so that "not filled in" stays
// distinguishable from zero.
type HealthProfile struct {
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
	Activity string   `json:"activity"`
}

// PlanProfilePayload is the request body sent to the plan generator.
type PlanProfilePayload struct {
	HealthProfile      HealthProfile `json:"health_profile"`
	HealthGoal         string        `json:"health_goal"`
	DietaryPreferences string        `json:"dietary_preferences"`
}

// DietPlan is a generated recipe plan together with the profile signature
// it was generated for.
type DietPlan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Title     string    `gorm:"size:200" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Signature string    `gorm:"size:500" json:"signature"`
	CreatedAt time.Time `json:"created_at"`
}
