package utils

import (
	"testing"

	"github.com/1716001473/ZhiJieHealth/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCalcBMIValue(t *testing.T) {
	assert.Equal(t, 22.9, CalcBMIValue(models.HealthProfile{Weight: ptr(70.0), Height: ptr(175.0)}))
	assert.Zero(t, CalcBMIValue(models.HealthProfile{}))
	assert.Zero(t, CalcBMIValue(models.HealthProfile{Weight: ptr(0.0), Height: ptr(175.0)}))
	assert.Zero(t, CalcBMIValue(models.HealthProfile{Weight: ptr(70.0), Height: ptr(-1.0)}))
	assert.Zero(t, CalcBMIValue(models.HealthProfile{Weight: ptr(70.0)}))
}

func TestBMIStatusOf(t *testing.T) {
	cases := map[float64]BMIStatus{
		0:    BMIUnknown,
		-3:   BMIUnknown,
		18.4: BMIUnderweight,
		18.5: BMINormal,
		23.9: BMINormal,
		24:   BMIOverweight,
		27.9: BMIOverweight,
		28:   BMIObese,
		41:   BMIObese,
	}
	for bmi, want := range cases {
		assert.Equal(t, want, BMIStatusOf(bmi), "bmi %v", bmi)
	}
}

func TestAdviceCoversEveryStatus(t *testing.T) {
	for _, s := range []BMIStatus{BMIUnknown, BMIUnderweight, BMINormal, BMIOverweight, BMIObese} {
		a, ok := adviceByStatus[s]
		require.True(t, ok, "status %q", s)
		assert.NotEmpty(t, a.Diet)
		assert.NotEmpty(t, a.Exercise)
		assert.NotEmpty(t, focusByStatus[s])
	}
}

func TestLocalAdvice(t *testing.T) {
	unknown := LocalAdvice(models.HealthProfile{})
	assert.Contains(t, unknown.Diet, "Complete")

	normal := models.HealthProfile{Weight: ptr(70.0), Height: ptr(175.0)}
	assert.Contains(t, DietAdvice(normal), "balanced")
	assert.Equal(t, "BMI is normal, keep up the good habits", HealthFocusMessage(normal))

	under := models.HealthProfile{Weight: ptr(45.0), Height: ptr(175.0)}
	assert.Contains(t, HealthFocusMessage(under), "energy")

	obese := models.HealthProfile{Weight: ptr(100.0), Height: ptr(175.0)}
	assert.Contains(t, DietAdvice(obese), "calorie")
	assert.Equal(t, HealthFocusMessage(obese), HealthFocusMessage(models.HealthProfile{Weight: ptr(80.0), Height: ptr(175.0)}))
}

func TestProfileCompletion(t *testing.T) {
	assert.Equal(t, 0, ProfileCompletion(models.HealthProfile{}))
	assert.Equal(t, 40, ProfileCompletion(models.HealthProfile{Weight: ptr(0.0), Gender: "male"}))
	assert.Equal(t, 100, ProfileCompletion(models.HealthProfile{
		Weight: ptr(70.0), Height: ptr(175.0), Age: ptr(30), Gender: "female", Activity: "low",
	}))
}

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 81)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, bmi, 1e-9)

	_, err = CalculateBMI(0, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(30, 70)
	assert.Error(t, err)
	_, err = CalculateBMI(175, 500)
	assert.Error(t, err)
}

func TestParseHealthProfile(t *testing.T) {
	p := ParseHealthProfile(map[string]any{
		"weight":   "70.5",
		"height":   175,
		"age":      "29.6",
		"gender":   " male ",
		"activity": nil,
	})
	require.NotNil(t, p.Weight)
	assert.Equal(t, 70.5, *p.Weight)
	require.NotNil(t, p.Height)
	assert.Equal(t, 175.0, *p.Height)
	require.NotNil(t, p.Age)
	assert.Equal(t, 30, *p.Age)
	assert.Equal(t, "male", p.Gender)
	assert.Empty(t, p.Activity)

	empty := ParseHealthProfile(map[string]any{"weight": "", "height": nil})
	assert.Nil(t, empty.Weight)
	assert.Nil(t, empty.Height)
	assert.Nil(t, empty.Age)

	assert.Equal(t, models.HealthProfile{}, ParseHealthProfile("garbage"))
}
