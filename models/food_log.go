package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLog is one logged food item; rows are never updated or deleted.
type FoodLog struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	MealType string    `json:"meal_type"` // "Breakfast"|"Lunch"|"Dinner"|"Snacks"
	FoodItem string    `json:"food_item"`
	Quantity float64   `json:"quantity"` // grams
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Fiber    float64   `json:"fiber"`
}
