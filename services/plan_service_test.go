package services

import (
	"testing"
	"time"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/stretchr/testify/assert"
)

func planUser() models.User {
	w, h, age := 60.0, 165.0, 31
	return models.User{
		Nickname:           "Mia",
		HealthGoal:         "gain_muscle",
		DietaryPreferences: "high_protein",
		Weight:             &w,
		Height:             &h,
		Age:                &age,
		Gender:             "female",
		Activity:           "medium",
	}
}

func TestBuildPlanStatusWithoutPlan(t *testing.T) {
	st := BuildPlanStatus(planUser(), nil, false)

	assert.Empty(t, st.SavedSignature)
	assert.Equal(t, "weight=60|height=165|age=31|gender=female|activity=medium|goal=gain_muscle|prefs=high_protein", st.CurrentSignature)
	assert.False(t, st.ShowUpdatePrompt)
	assert.Nil(t, st.Plan)
	assert.Equal(t, "gain_muscle", st.Payload.HealthGoal)
	assert.Contains(t, st.ProfileText, "Mia; gender: female; age: 31")
	assert.Contains(t, st.ProfileText, "goal: muscle gain; preferences: high protein")
}

func TestBuildPlanStatusDetectsStalePlan(t *testing.T) {
	user := planUser()
	plan := &models.DietPlan{
		ID:        1,
		Signature: utils.BuildPlanSignature(user.HealthProfile(), user),
		CreatedAt: time.Now(),
	}

	assert.False(t, BuildPlanStatus(user, plan, false).ShowUpdatePrompt)
	assert.True(t, BuildPlanStatus(user, plan, true).ShowUpdatePrompt)

	heavier := 62.0
	user.Weight = &heavier
	st := BuildPlanStatus(user, plan, false)
	assert.True(t, st.ShowUpdatePrompt)
	assert.NotEqual(t, st.SavedSignature, st.CurrentSignature)
}
