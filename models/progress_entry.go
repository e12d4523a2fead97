package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressEntry is a periodic body measurement; append-only.
type ProgressEntry struct {
	gorm.Model
	UserID            uint      `gorm:"index;not null" json:"user_id"`
	Date              time.Time `gorm:"index;not null" json:"date"`
	Weight            float64   `json:"weight"` // kg
	BodyFatPercentage float64   `json:"body_fat_percentage"`
	MuscleMass        float64   `json:"muscle_mass"` // kg
	EnergyLevel       int       `json:"energy_level"` // 1-10
	SleepHours        float64   `json:"sleep_hours"`
}
