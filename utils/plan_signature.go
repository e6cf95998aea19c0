package utils

import (
	"strconv"
	"strings"

	"github.com/1716001473/ZhiJieHealth/models"
)

// BuildPlanSignature fingerprints the inputs of a plan recommendation.
// Equal inputs give byte-identical signatures; it is not a hash.
func BuildPlanSignature(profile models.HealthProfile, user models.User) string {
	return strings.Join([]string{
		"weight=" + formatOptionalFloat(profile.Weight),
		"height=" + formatOptionalFloat(profile.Height),
		"age=" + formatOptionalInt(profile.Age),
		"gender=" + profile.Gender,
		"activity=" + profile.Activity,
		"goal=" + user.HealthGoal,
		"prefs=" + user.DietaryPreferences,
	}, "|")
}

func HasPlanProfileChanged(prevProfile models.HealthProfile, prevUser models.User, nextProfile models.HealthProfile, nextUser models.User) bool {
	return BuildPlanSignature(prevProfile, prevUser) != BuildPlanSignature(nextProfile, nextUser)
}

func BuildPlanProfilePayload(profile models.HealthProfile, user models.User) models.PlanProfilePayload {
	return models.PlanProfilePayload{
		HealthProfile:      profile,
		HealthGoal:         user.HealthGoal,
		DietaryPreferences: user.DietaryPreferences,
	}
}

// ShouldShowPlanUpdatePrompt reports whether the client should offer to
// regenerate the plan. An empty saved signature means no plan was ever saved.
func ShouldShowPlanUpdatePrompt(savedSignature, currentSignature string, needsUpdate bool) bool {
	if needsUpdate {
		return true
	}
	if savedSignature == "" {
		return false
	}
	return savedSignature != currentSignature
}

// SelectRecommendedPlan returns the most recently created plan, skipping
// plans without a creation time. Ties keep the earlier element.
func SelectRecommendedPlan(plans []models.DietPlan) *models.DietPlan {
	var latest *models.DietPlan
	for i := range plans {
		if plans[i].CreatedAt.IsZero() {
			continue
		}
		if latest == nil || plans[i].CreatedAt.After(latest.CreatedAt) {
			latest = &plans[i]
		}
	}
	if latest == nil {
		return nil
	}
	plan := *latest
	return &plan
}

const (
	defaultGoal        = "keep_fit"
	defaultNickname    = "Default user"
	noPreferencesLabel = "no special preferences"
)

var goalLabels = map[string]string{
	"lose_weight": "fat loss",
	"loss_weight": "fat loss",
	"keep_fit":    "stay healthy",
	"maintain":    "stay healthy",
	"gain_muscle": "muscle gain",
}

var preferenceLabels = map[string]string{
	"vegetarian":   "vegetarian",
	"no_spicy":     "no spicy food",
	"low_sugar":    "low sugar",
	"high_protein": "high protein",
	"lactose_free": "lactose intolerant",
}

var genderLabels = map[string]string{
	"male":   "male",
	"female": "female",
}

var activityLabels = map[string]string{
	"low":    "light",
	"medium": "moderate",
	"high":   "intense",
}

// PlanProfileText renders the profile as the one-line description handed
// to the recipe generator. Unknown goal/preference keys are shown as is.
func PlanProfileText(nickname string, profile models.HealthProfile, user models.User) string {
	name := strings.TrimSpace(nickname)
	if name == "" {
		name = defaultNickname
	}
	parts := []string{name}

	if g, ok := genderLabels[profile.Gender]; ok {
		parts = append(parts, "gender: "+g)
	}
	if profile.Age != nil {
		parts = append(parts, "age: "+strconv.Itoa(*profile.Age))
	}
	if profile.Height != nil {
		parts = append(parts, "height: "+formatMeasure(*profile.Height)+"cm")
	}
	if profile.Weight != nil {
		parts = append(parts, "weight: "+formatMeasure(*profile.Weight)+"kg")
	}
	if a, ok := activityLabels[profile.Activity]; ok {
		parts = append(parts, "activity: "+a)
	}

	_, goal := NormalizeGoal(user.HealthGoal)
	parts = append(parts, "goal: "+goal, "preferences: "+PreferencesLabel(user.DietaryPreferences))

	return strings.Join(parts, "; ")
}

// NormalizeGoal returns the goal key and its label; empty means keep_fit.
func NormalizeGoal(goal string) (string, string) {
	key := strings.TrimSpace(goal)
	if key == "" {
		key = defaultGoal
	}
	if label, ok := goalLabels[key]; ok {
		return key, label
	}
	return key, key
}

// PreferencesLabel labels a comma separated preference list.
func PreferencesLabel(preferences string) string {
	var labels []string
	for _, item := range strings.Split(preferences, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if label, ok := preferenceLabels[item]; ok {
			item = label
		}
		labels = append(labels, item)
	}
	if len(labels) == 0 {
		return noPreferencesLabel
	}
	return strings.Join(labels, ", ")
}

func formatOptionalFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatOptionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// formatMeasure drops the decimals of whole numbers and keeps one otherwise.
func formatMeasure(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}
