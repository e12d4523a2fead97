package services

import (
	"time"

	"backend/config"
	"backend/models"
)

type FoodLogInput struct {
	Date     time.Time `json:"date" validate:"required"`
	MealType string    `json:"meal_type" validate:"required,oneof=Breakfast Lunch Dinner Snacks"`
	FoodItem string    `json:"food_item" validate:"required"`
	Quantity float64   `json:"quantity" validate:"required,gt=0"`
	Calories float64   `json:"calories" validate:"gte=0"`
	Protein  float64   `json:"protein" validate:"gte=0"`
	Carbs    float64   `json:"carbs" validate:"gte=0"`
	Fat      float64   `json:"fat" validate:"gte=0"`
	Fiber    float64   `json:"fiber" validate:"gte=0"`
}

func ValidateFoodLogInput(in *FoodLogInput) error {
	return validate.Struct(in)
}

// AddFoodLog appends one food entry. When the macro fields are all zero they
// are filled from the nutrition catalog, scaled by quantity.
func AddFoodLog(userID uint, in FoodLogInput) (*models.FoodLog, error) {
	log := models.FoodLog{
		UserID:   userID,
		Date:     in.Date,
		MealType: in.MealType,
		FoodItem: in.FoodItem,
		Quantity: in.Quantity,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Fiber:    in.Fiber,
	}

	if log.Calories == 0 && log.Protein == 0 && log.Carbs == 0 && log.Fat == 0 {
		var item models.FoodItem
		if err := config.DB.Where("name = ?", in.FoodItem).First(&item).Error; err == nil {
			scale := in.Quantity / 100.0
			log.Calories = item.Calories * scale
			log.Protein = item.Protein * scale
			log.Carbs = item.Carbs * scale
			log.Fat = item.Fat * scale
			log.Fiber = item.Fiber * scale
		}
	}

	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// GetUserFoodLogs returns the most recent entries, newest first. The cap is
// days*4 rows, assuming up to four meals per day.
func GetUserFoodLogs(userID uint, days int) ([]models.FoodLog, error) {
	if days <= 0 {
		days = 30
	}
	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(days * 4).
		Find(&logs).Error
	return logs, err
}
