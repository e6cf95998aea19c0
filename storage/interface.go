package storage

import "context"

// KVStore keeps small per-user values such as the target-calorie override
// or the plan needs-update flag.
type KVStore interface {
	Get(ctx context.Context, userID uint, key string) (string, bool, error)
	Set(ctx context.Context, userID uint, key, value string) error
	Delete(ctx context.Context, userID uint, keys ...string) error
}

// Keys used across services.
const (
	KeyTargetCalories     = "target_calories"
	KeyTargetCaloriesDate = "target_calories_date"
	KeyPlanNeedsUpdate    = "plan_needs_update"
)
