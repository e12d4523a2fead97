package models

import (
	"time"

	"gorm.io/gorm"
)

// MealDay is one day of suggested meals.
type MealDay struct {
	Breakfast []string `json:"breakfast"`
	Lunch     []string `json:"lunch"`
	Dinner    []string `json:"dinner"`
	Snacks    []string `json:"snacks"`
}

// NutritionPlan is the nutrition half of a recommendation snapshot.
type NutritionPlan struct {
	DailyCalories   float64             `json:"daily_calories"`
	Recommendations []string            `json:"recommendations"`
	MealPlan        map[string]MealDay  `json:"meal_plan"` // "Day_1".."Day_7"
	Lifestyle       []string            `json:"lifestyle"`
	ShoppingList    map[string][]string `json:"shopping_list"`
}

// PlannedExercise is one scheduled session inside a workout day.
type PlannedExercise struct {
	Exercise  string `json:"exercise"`
	Duration  int    `json:"duration"` // minutes
	Intensity string `json:"intensity"`
}

// WorkoutDay is one day of the weekly exercise plan.
type WorkoutDay struct {
	Type      string            `json:"type"` // "Cardio"|"Strength"|"Flexibility"|"Full Body"
	Exercises []PlannedExercise `json:"exercises"`
}

// ExercisePlan is the exercise half of a recommendation snapshot.
type ExercisePlan struct {
	Recommendations []string              `json:"recommendations"`
	WeeklyPlan      map[string]WorkoutDay `json:"weekly_plan"` // "Day_1".."Day_N"
}

// Recommendation is a persisted plan snapshot; append-only, newest first.
type Recommendation struct {
	gorm.Model
	UserID        uint          `gorm:"index;not null" json:"user_id"`
	Date          time.Time     `gorm:"index;not null" json:"date"`
	NutritionPlan NutritionPlan `gorm:"serializer:json" json:"nutrition_plan"`
	ExercisePlan  ExercisePlan  `gorm:"serializer:json" json:"exercise_plan"`
	Goals         StringList    `gorm:"serializer:json" json:"goals"`
}
