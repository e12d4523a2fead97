package models

import "gorm.io/gorm"

// ExerciseType is a row of the exercise reference catalog, seeded from CSV.
// METValue feeds the calories-burned estimate (met * kg * hours).
type ExerciseType struct {
	gorm.Model `csv:"-"`
	Name       string  `gorm:"uniqueIndex;not null" csv:"exercise_type" json:"exercise_type"`
	METValue   float64 `csv:"met_value" json:"met_value"`
	Category   string  `csv:"category" json:"category"` // "Cardio"|"Strength"|"Flexibility"|...
	Intensity  string  `csv:"intensity" json:"intensity"`
	Equipment  string  `csv:"equipment_needed" json:"equipment_needed"`
}
