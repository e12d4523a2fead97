package services

import (
	"fmt"
	"os"
	"path/filepath"

	"backend/models"
	"backend/utils"

	"github.com/gocarina/gocsv"
	"gorm.io/gorm"
)

// SeedService loads the nutrition and exercise reference catalogs from the
// CSV seed files. Missing or malformed seed data is a setup-time failure.
type SeedService struct{ db *gorm.DB }

func NewSeedService(db *gorm.DB) *SeedService { return &SeedService{db: db} }

// SeedAll loads both catalogs from dir. Re-running is idempotent: rows are
// matched by natural key and refreshed in place.
func (s *SeedService) SeedAll(dir string) error {
	if err := s.SeedFoodItems(filepath.Join(dir, "food_nutrition.csv")); err != nil {
		return fmt.Errorf("seed food catalog: %w", err)
	}
	if err := s.SeedExerciseTypes(filepath.Join(dir, "exercise_data.csv")); err != nil {
		return fmt.Errorf("seed exercise catalog: %w", err)
	}
	return nil
}

func (s *SeedService) SeedFoodItems(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var rows []*models.FoodItem
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s contains no rows", path)
	}

	for _, row := range rows {
		if row.Name == "" {
			return fmt.Errorf("%s: row with empty food_item", path)
		}
		var existing models.FoodItem
		err := s.db.Where("name = ?", row.Name).
			Assign(models.FoodItem{
				Name:     row.Name,
				Calories: row.Calories,
				Protein:  row.Protein,
				Carbs:    row.Carbs,
				Fat:      row.Fat,
				Fiber:    row.Fiber,
				Category: row.Category,
			}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}

	utils.Log.Infow("seeded food catalog", "rows", len(rows), "file", path)
	return nil
}

func (s *SeedService) SeedExerciseTypes(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var rows []*models.ExerciseType
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%s contains no rows", path)
	}

	for _, row := range rows {
		if row.Name == "" {
			return fmt.Errorf("%s: row with empty exercise_type", path)
		}
		var existing models.ExerciseType
		err := s.db.Where("name = ?", row.Name).
			Assign(models.ExerciseType{
				Name:      row.Name,
				METValue:  row.METValue,
				Category:  row.Category,
				Intensity: row.Intensity,
				Equipment: row.Equipment,
			}).
			FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}

	utils.Log.Infow("seeded exercise catalog", "rows", len(rows), "file", path)
	return nil
}
