package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExerciseLogEstimatesCalories(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	user := createTestUser(t, "frank") // 80 kg

	log, err := AddExerciseLog(user.ID, ExerciseLogInput{
		Date:         day(0),
		ExerciseType: "Running",
		Duration:     30,
	})
	require.NoError(t, err)
	// 8.0 MET * 80 kg * 0.5 h
	assert.InDelta(t, 320, log.CaloriesBurned, 0.01)
	assert.Equal(t, "High", log.Intensity)
}

func TestAddExerciseLogUnknownTypeUsesDefaultMET(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	user := createTestUser(t, "gina")

	log, err := AddExerciseLog(user.ID, ExerciseLogInput{
		Date:         day(0),
		ExerciseType: "Underwater Hockey",
		Duration:     60,
	})
	require.NoError(t, err)
	// default 5.0 MET * 80 kg * 1 h
	assert.InDelta(t, 400, log.CaloriesBurned, 0.01)
}

func TestGetUserExerciseLogsNewestFirstAndLimited(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	user := createTestUser(t, "hank")

	for i := 0; i < 6; i++ {
		_, err := AddExerciseLog(user.ID, ExerciseLogInput{
			Date:         day(i),
			ExerciseType: "Walking",
			Duration:     30,
		})
		require.NoError(t, err)
	}

	logs, err := GetUserExerciseLogs(user.ID, 4)
	require.NoError(t, err)
	require.Len(t, logs, 4)
	assert.Equal(t, day(5).Format("2006-01-02"), logs[0].Date.Format("2006-01-02"))
}
