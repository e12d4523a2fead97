package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)

	first := createTestUser(t, "alice")
	require.NotZero(t, first.ID)

	_, err := CreateUser(RegisterInput{
		Username:      "alice",
		Age:           25,
		Gender:        "Female",
		Height:        160,
		Weight:        55,
		ActivityLevel: "Low",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "alice").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetUserByUsernameDeserializesLists(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "bob")

	user, err := GetUserByUsername("bob")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.StringList{"weight_loss"}, user.HealthGoals)
	assert.Equal(t, models.StringList{"vegetarian"}, user.DietaryPreferences)
}

func TestGetUserByUsernameMissing(t *testing.T) {
	setupTestDB(t)

	user, err := GetUserByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestValidateRegisterInput(t *testing.T) {
	err := ValidateRegisterInput(&RegisterInput{
		Username:      "x",
		Age:           5,
		Gender:        "unknown",
		ActivityLevel: "extreme",
	})
	assert.Error(t, err)
}
