package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR uses the revised Harris-Benedict equation.
// Height in centimeters, weight in kilograms.
func CalculateBMR(age int, weightKg, heightCm float64, gender string) float64 {
	if gender == "Male" || gender == "male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// ActivityMultiplier maps a coarse activity level to a BMR multiplier.
func ActivityMultiplier(level string) float64 {
	switch level {
	case "Low":
		return 1.2
	case "High":
		return 1.725
	default: // Moderate
		return 1.55
	}
}

// ActivityLevelScore encodes the activity level as a numeric feature (1-3).
func ActivityLevelScore(level string) float64 {
	switch level {
	case "Low":
		return 1
	case "High":
		return 3
	default:
		return 2
	}
}

// DailyCalorieNeeds estimates maintenance calories for a profile.
func DailyCalorieNeeds(age int, weightKg, heightCm float64, gender, activityLevel string) float64 {
	return CalculateBMR(age, weightKg, heightCm, gender) * ActivityMultiplier(activityLevel)
}
