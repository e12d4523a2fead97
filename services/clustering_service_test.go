package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClusterUsers(t *testing.T, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		user := createTestUser(t, fmt.Sprintf("cluster_user_%d", i))
		// two distinct habit groups so the partition has signal
		if i%2 == 0 {
			for d := 0; d < 5; d++ {
				_, err := AddExerciseLog(user.ID, ExerciseLogInput{
					Date: day(d), ExerciseType: "Running", Duration: 60,
				})
				require.NoError(t, err)
			}
		} else {
			_, err := AddFoodLog(user.ID, FoodLogInput{
				Date: day(0), MealType: "Dinner", FoodItem: "Almonds", Quantity: 300,
			})
			require.NoError(t, err)
		}
		ids = append(ids, user.ID)
	}
	return ids
}

func TestRebuildAssignsEveryUser(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := NewClusteringService(db)
	ids := seedClusterUsers(t, 6)

	n, err := svc.Rebuild(2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range ids {
		c := svc.UserCluster(id)
		assert.GreaterOrEqual(t, c, 0, "user %d must be assigned", id)
		assert.Less(t, c, 2)
	}

	profiles := svc.Profiles()
	require.Len(t, profiles, 2)
	total := 0
	for _, p := range profiles {
		total += p.Size
		assert.Contains(t, p.AvgFeatures, "bmi")
		assert.NotEmpty(t, p.Characteristics)
	}
	assert.Equal(t, len(ids), total)
}

func TestRebuildTooFewUsersClearsAssignments(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := NewClusteringService(db)
	user := createTestUser(t, "loner")

	n, err := svc.Rebuild(0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, -1, svc.UserCluster(user.ID))
	assert.Empty(t, svc.Profiles())
}

func TestSimilarUsersShareAClusterAndExcludeSelf(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := NewClusteringService(db)
	ids := seedClusterUsers(t, 6)

	_, err := svc.Rebuild(2)
	require.NoError(t, err)

	target := ids[0]
	peers := svc.SimilarUsers(target, 3)
	assert.LessOrEqual(t, len(peers), 3)
	for _, p := range peers {
		assert.NotEqual(t, target, p)
		assert.Equal(t, svc.UserCluster(target), svc.UserCluster(p))
	}
}

func TestSimilarUsersUnassignedReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	seedCatalogs(t, db)
	svc := NewClusteringService(db)

	assert.Nil(t, svc.SimilarUsers(42, 5))
}

func TestStandardizeHandlesConstantColumns(t *testing.T) {
	matrix := [][]float64{
		{1, 5, 10},
		{1, 7, 20},
		{1, 9, 30},
	}
	scaled := standardize(matrix)
	require.Len(t, scaled, 3)
	// constant column stays finite at zero deviation
	for _, row := range scaled {
		assert.Equal(t, 0.0, row[0])
	}
	assert.Less(t, scaled[0][1], scaled[2][1])
}

func TestInterpretCharacteristicsBuckets(t *testing.T) {
	got := interpretCharacteristics(map[string]float64{
		"bmi":                27,
		"activity_level":     1.0,
		"avg_calories":       2600,
		"exercises_per_week": 1,
		"age":                45,
	})
	assert.Contains(t, got, "Overweight")
	assert.Contains(t, got, "Low activity")
	assert.Contains(t, got, "High caloric intake")
	assert.Contains(t, got, "Infrequent exerciser")
	assert.Contains(t, got, "Middle-aged")
}
