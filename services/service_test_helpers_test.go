package services

import (
	"path/filepath"
	"testing"
	"time"

	"backend/config"
	"backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway sqlite database and points the package
// globals at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	config.DB = db
	return db
}

func seedCatalogs(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.FoodItem{
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Fat: 3.6, Category: "Protein"},
		{Name: "Oats", Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9, Fiber: 10.6, Category: "Grain"},
		{Name: "Lentils", Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4, Fiber: 7.9, Category: "Legume"},
		{Name: "Almonds", Calories: 579, Protein: 21.2, Carbs: 22, Fat: 49.9, Fiber: 12.5, Category: "Nuts"},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}

	types := []models.ExerciseType{
		{Name: "Walking", METValue: 3.5, Category: "Cardio", Intensity: "Low", Equipment: "None"},
		{Name: "Running", METValue: 8.0, Category: "Cardio", Intensity: "High", Equipment: "None"},
		{Name: "Weight Training", METValue: 6.0, Category: "Strength", Intensity: "High", Equipment: "Weights"},
		{Name: "Yoga", METValue: 2.5, Category: "Flexibility", Intensity: "Low", Equipment: "Mat"},
	}
	for i := range types {
		require.NoError(t, db.Create(&types[i]).Error)
	}
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := CreateUser(RegisterInput{
		Username:           username,
		Age:                30,
		Gender:             "Male",
		Height:             175,
		Weight:             80,
		ActivityLevel:      "Moderate",
		HealthGoals:        []string{"weight_loss"},
		DietaryPreferences: []string{"vegetarian"},
	})
	require.NoError(t, err)
	return user
}

func day(offset int) time.Time {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}
