package models

import (
	"time"

	"gorm.io/gorm"
)

// ExerciseLog is one logged workout session; append-only.
type ExerciseLog struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Date           time.Time `gorm:"index;not null" json:"date"`
	ExerciseType   string    `json:"exercise_type"`
	Duration       int       `json:"duration"` // minutes
	Intensity      string    `json:"intensity"`
	CaloriesBurned float64   `json:"calories_burned"`
}
