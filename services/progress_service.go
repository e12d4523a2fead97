package services

import (
	"time"

	"backend/config"
	"backend/models"
)

type ProgressInput struct {
	Date              time.Time `json:"date" validate:"required"`
	Weight            float64   `json:"weight" validate:"required,gt=0"`
	BodyFatPercentage float64   `json:"body_fat_percentage" validate:"gte=0,lte=75"`
	MuscleMass        float64   `json:"muscle_mass" validate:"gte=0"`
	EnergyLevel       int       `json:"energy_level" validate:"gte=1,lte=10"`
	SleepHours        float64   `json:"sleep_hours" validate:"gte=0,lte=24"`
}

func ValidateProgressInput(in *ProgressInput) error {
	return validate.Struct(in)
}

// AddProgressEntry appends one measurement row.
func AddProgressEntry(userID uint, in ProgressInput) (*models.ProgressEntry, error) {
	entry := models.ProgressEntry{
		UserID:            userID,
		Date:              in.Date,
		Weight:            in.Weight,
		BodyFatPercentage: in.BodyFatPercentage,
		MuscleMass:        in.MuscleMass,
		EnergyLevel:       in.EnergyLevel,
		SleepHours:        in.SleepHours,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetUserProgress returns the full measurement history, newest first.
func GetUserProgress(userID uint) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&entries).Error
	return entries, err
}

// SaveRecommendation persists a generated plan snapshot.
func SaveRecommendation(rec *models.Recommendation) error {
	return config.DB.Create(rec).Error
}

// GetUserRecommendations returns the latest snapshots, newest first.
func GetUserRecommendations(userID uint, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = 10
	}
	var recs []models.Recommendation
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
