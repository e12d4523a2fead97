package config

import (
	"os"

	"backend/models"
	"backend/utils"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens (or creates) the sqlite database file and migrates the schema.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		utils.Log.Infof("no .env file found, using environment defaults")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "nutrition_exercise.db"
	}

	db, err := Open(path)
	if err != nil {
		utils.Log.Fatalf("failed to open database %s: %v", path, err)
	}
	DB = db
}

// Open connects to the sqlite file at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true, // surface duplicates as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the five domain tables plus the two reference catalogs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodLog{},
		&models.ExerciseLog{},
		&models.Recommendation{},
		&models.ProgressEntry{},
		&models.FoodItem{},
		&models.ExerciseType{},
	)
}
