package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProgressReturnsAllRowsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	user := createTestUser(t, "iris")

	const n = 7
	for i := 0; i < n; i++ {
		_, err := AddProgressEntry(user.ID, ProgressInput{
			Date:        day(i),
			Weight:      80 - float64(i)*0.2,
			EnergyLevel: 6,
			SleepHours:  7,
		})
		require.NoError(t, err)
	}

	entries, err := GetUserProgress(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, n)
	for i := 1; i < len(entries); i++ {
		assert.True(t, !entries[i].Date.After(entries[i-1].Date),
			"entries must be in descending date order")
	}
	assert.InDelta(t, 80-float64(n-1)*0.2, entries[0].Weight, 0.001)
}

func TestRecommendationRoundTripsPlanStructures(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	user := createTestUser(t, "jade")

	rec := &models.Recommendation{
		UserID: user.ID,
		Date:   day(0),
		NutritionPlan: models.NutritionPlan{
			DailyCalories:   2100,
			Recommendations: []string{"Increase your protein intake"},
			MealPlan: map[string]models.MealDay{
				"Day_1": {
					Breakfast: []string{"Oats"},
					Lunch:     []string{"Lentils"},
					Dinner:    []string{"Lentils"},
					Snacks:    []string{"Almonds"},
				},
			},
			Lifestyle:    []string{"Aim for 7-9 hours of sleep per night"},
			ShoppingList: map[string][]string{"Pantry": {"Oats", "Lentils"}},
		},
		ExercisePlan: models.ExercisePlan{
			Recommendations: []string{"Add two strength sessions per week"},
			WeeklyPlan: map[string]models.WorkoutDay{
				"Day_1": {
					Type: "Cardio",
					Exercises: []models.PlannedExercise{
						{Exercise: "Running", Duration: 30, Intensity: "High"},
					},
				},
			},
		},
		Goals: models.StringList{"weight_loss"},
	}
	require.NoError(t, SaveRecommendation(rec))

	recs, err := GetUserRecommendations(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	got := recs[0]
	assert.Equal(t, rec.NutritionPlan, got.NutritionPlan)
	assert.Equal(t, rec.ExercisePlan, got.ExercisePlan)
	assert.Equal(t, rec.Goals, got.Goals)
}

func TestGetUserRecommendationsNewestFirstAndLimited(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	user := createTestUser(t, "kyle")

	for i := 0; i < 12; i++ {
		rec := &models.Recommendation{UserID: user.ID, Date: day(i)}
		require.NoError(t, SaveRecommendation(rec))
		// created_at must strictly increase for a stable order
		require.NoError(t, db.Model(rec).
			Update("created_at", time.Now().Add(time.Duration(i)*time.Second)).Error)
	}

	recs, err := GetUserRecommendations(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, recs, 10)
	assert.Equal(t, day(11).Format("2006-01-02"), recs[0].Date.Format("2006-01-02"))
}
