package services

import (
	"time"

	"backend/config"
	"backend/models"
)

// defaultMET is used when an exercise is missing from the catalog.
const defaultMET = 5.0

type ExerciseLogInput struct {
	Date           time.Time `json:"date" validate:"required"`
	ExerciseType   string    `json:"exercise_type" validate:"required"`
	Duration       int       `json:"duration" validate:"required,gt=0"`
	Intensity      string    `json:"intensity" validate:"omitempty,oneof=Low Moderate High"`
	CaloriesBurned float64   `json:"calories_burned" validate:"gte=0"`
}

func ValidateExerciseLogInput(in *ExerciseLogInput) error {
	return validate.Struct(in)
}

// AddExerciseLog appends one workout entry. A zero calories_burned is
// estimated from the catalog MET value and the user's weight.
func AddExerciseLog(userID uint, in ExerciseLogInput) (*models.ExerciseLog, error) {
	log := models.ExerciseLog{
		UserID:         userID,
		Date:           in.Date,
		ExerciseType:   in.ExerciseType,
		Duration:       in.Duration,
		Intensity:      in.Intensity,
		CaloriesBurned: in.CaloriesBurned,
	}

	if log.CaloriesBurned == 0 {
		weight := 70.0
		var user models.User
		if err := config.DB.First(&user, userID).Error; err == nil && user.Weight > 0 {
			weight = user.Weight
		}
		log.CaloriesBurned = EstimateCaloriesBurned(in.ExerciseType, in.Duration, weight)
	}
	if log.Intensity == "" {
		var et models.ExerciseType
		if err := config.DB.Where("name = ?", in.ExerciseType).First(&et).Error; err == nil {
			log.Intensity = et.Intensity
		}
	}

	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// EstimateCaloriesBurned applies met * weightKg * hours with the catalog's
// MET value for the exercise.
func EstimateCaloriesBurned(exerciseType string, durationMin int, weightKg float64) float64 {
	met := defaultMET
	var et models.ExerciseType
	if err := config.DB.Where("name = ?", exerciseType).First(&et).Error; err == nil && et.METValue > 0 {
		met = et.METValue
	}
	return met * weightKg * float64(durationMin) / 60.0
}

// GetUserExerciseLogs returns the most recent entries, newest first,
// capped at one row per day requested.
func GetUserExerciseLogs(userID uint, days int) ([]models.ExerciseLog, error) {
	if days <= 0 {
		days = 30
	}
	var logs []models.ExerciseLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(days).
		Find(&logs).Error
	return logs, err
}
