package models

import "gorm.io/gorm"

// FoodItem is a row of the nutrition reference catalog, seeded from CSV.
type FoodItem struct {
	gorm.Model `csv:"-"`
	Name       string  `gorm:"uniqueIndex;not null" csv:"food_item" json:"food_item"`
	Calories   float64 `csv:"calories_per_100g" json:"calories_per_100g"`
	Protein    float64 `csv:"protein_g" json:"protein_g"`
	Carbs      float64 `csv:"carbs_g" json:"carbs_g"`
	Fat        float64 `csv:"fat_g" json:"fat_g"`
	Fiber      float64 `csv:"fiber_g" json:"fiber_g"`
	Category   string  `csv:"category" json:"category"`
}
