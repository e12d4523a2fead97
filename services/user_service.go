package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// ErrUsernameTaken signals a duplicate registration; callers treat it as a
// non-fatal "no user created" result.
var ErrUsernameTaken = errors.New("username already taken")

type RegisterInput struct {
	Username           string   `json:"username" validate:"required,min=2,max=64"`
	Age                int      `json:"age" validate:"required,gte=13,lte=120"`
	Gender             string   `json:"gender" validate:"required,oneof=Male Female Other"`
	Height             float64  `json:"height" validate:"required,gt=0"`
	Weight             float64  `json:"weight" validate:"required,gt=0"`
	ActivityLevel      string   `json:"activity_level" validate:"required,oneof=Low Moderate High"`
	HealthGoals        []string `json:"health_goals" validate:"dive,required"`
	DietaryPreferences []string `json:"dietary_preferences" validate:"dive,required"`
	CulturalBackground string   `json:"cultural_background"`
}

func ValidateRegisterInput(in *RegisterInput) error {
	return validate.Struct(in)
}

// CreateUser registers a profile. A duplicate username yields ErrUsernameTaken
// and leaves no second row behind.
func CreateUser(in RegisterInput) (*models.User, error) {
	user := models.User{
		Username:           in.Username,
		Age:                in.Age,
		Gender:             in.Gender,
		Height:             in.Height,
		Weight:             in.Weight,
		ActivityLevel:      in.ActivityLevel,
		HealthGoals:        in.HealthGoals,
		DietaryPreferences: in.DietaryPreferences,
		CulturalBackground: in.CulturalBackground,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the profile with its list fields deserialized,
// or nil when no such user exists.
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := config.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID fetches a profile by primary key.
func GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every registered profile (clustering input).
func ListUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Order("id asc").Find(&users).Error
	return users, err
}
