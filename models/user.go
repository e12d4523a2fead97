package models

import (
	"gorm.io/gorm"
)

// StringList is stored as a JSON array in a TEXT column.
type StringList []string

type User struct {
	gorm.Model
	Username           string  `gorm:"uniqueIndex;not null" json:"username"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	Height             float64 `json:"height"` // cm
	Weight             float64 `json:"weight"` // kg
	ActivityLevel      string  `json:"activity_level"` // "Low"|"Moderate"|"High"
	HealthGoals        StringList `gorm:"serializer:json" json:"health_goals"`
	DietaryPreferences StringList `gorm:"serializer:json" json:"dietary_preferences"`
	CulturalBackground string  `json:"cultural_background"`
}
