package services

import (
	"context"
	"testing"

	"github.com/1716001473/ZhiJieHealth/models"
	"github.com/1716001473/ZhiJieHealth/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSummarizeHealth(t *testing.T) {
	s := SummarizeHealth(planUser())

	assert.Equal(t, 22.0, s.BMI)
	assert.Equal(t, utils.BMINormal, s.BMIStatus)
	assert.Equal(t, 100, s.Completion)
	assert.Equal(t, "BMI is normal, keep up the good habits", s.FocusMessage)
	assert.Equal(t, "muscle gain", s.GoalLabel)
	assert.Equal(t, "high protein", s.PrefsLabel)
	assert.NotEmpty(t, s.Advice.Diet)
}

func TestSummarizeHealthEmptyProfile(t *testing.T) {
	s := SummarizeHealth(models.User{})

	assert.Zero(t, s.BMI)
	assert.Equal(t, utils.BMIUnknown, s.BMIStatus)
	assert.Zero(t, s.Completion)
	assert.Equal(t, "stay healthy", s.GoalLabel)
	assert.Equal(t, "no special preferences", s.PrefsLabel)
	assert.Contains(t, s.FocusMessage, "Complete")
}

func TestUpdateHealthProfileRejectsImplausibleInput(t *testing.T) {
	svc := NewUserService(nil, nil, zap.NewNop().Sugar())

	height, weight := 30.0, 70.0
	_, err := svc.UpdateHealthProfile(context.Background(), 1, HealthUpdate{
		Profile: models.HealthProfile{Height: &height, Weight: &weight},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImplausibleProfile)

	age := 0
	_, err = svc.UpdateHealthProfile(context.Background(), 1, HealthUpdate{
		Profile: models.HealthProfile{Age: &age},
	})
	assert.ErrorIs(t, err, ErrImplausibleProfile)
}
