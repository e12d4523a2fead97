package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(175, 80)
	require.NoError(t, err)
	assert.InDelta(t, 26.12, bmi, 0.01)

	_, err = CalculateBMI(0, 80)
	assert.Error(t, err)
	_, err = CalculateBMI(175, 500)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17))
	assert.Equal(t, "Normal weight", BMICategory(22))
	assert.Equal(t, "Overweight", BMICategory(27))
	assert.Equal(t, "Obesity class I", BMICategory(32))
}

func TestCalculateBMRByGender(t *testing.T) {
	male := CalculateBMR(30, 80, 175, "Male")
	assert.InDelta(t, 88.362+13.397*80+4.799*175-5.677*30, male, 0.001)

	female := CalculateBMR(30, 60, 165, "Female")
	assert.InDelta(t, 447.593+9.247*60+3.098*165-4.330*30, female, 0.001)

	assert.Greater(t, male, female)
}

func TestDailyCalorieNeedsScalesWithActivity(t *testing.T) {
	low := DailyCalorieNeeds(30, 80, 175, "Male", "Low")
	moderate := DailyCalorieNeeds(30, 80, 175, "Male", "Moderate")
	high := DailyCalorieNeeds(30, 80, 175, "Male", "High")
	assert.Less(t, low, moderate)
	assert.Less(t, moderate, high)
	assert.InDelta(t, CalculateBMR(30, 80, 175, "Male")*1.2, low, 0.001)
}
