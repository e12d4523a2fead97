package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"backend/models"

	"gonum.org/v1/gonum/stat"
	"gorm.io/gorm"
)

// conservative fallback trend when history is too thin to fit
const defaultWeeklyWeightChange = 0.2 // kg

type WeeklyPrediction struct {
	Weight       float64 `json:"weight"`
	BMI          float64 `json:"bmi"`
	EnergyLevel  float64 `json:"energy_level"`
	WeightChange float64 `json:"weight_change"`
	Date         string  `json:"date"`
}

// PredictorService extrapolates progress metrics with an OLS trend fit over
// the user's measurement history.
type PredictorService struct{ db *gorm.DB }

func NewPredictorService(db *gorm.DB) *PredictorService { return &PredictorService{db: db} }

type metricTrend struct {
	alpha, beta float64 // value = alpha + beta*day
	ok          bool
}

func fitTrend(xs, ys []float64) metricTrend {
	if len(xs) < 2 {
		return metricTrend{}
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return metricTrend{}
	}
	return metricTrend{alpha: alpha, beta: beta, ok: true}
}

func (t metricTrend) at(day float64) float64 { return t.alpha + t.beta*day }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// PredictProgress projects the next weeksAhead weeks of weight, BMI and
// energy level. With fewer than two history rows a conservative default
// trend is used instead of a fit.
func (s *PredictorService) PredictProgress(userID uint, weeksAhead int) (map[string]WeeklyPrediction, error) {
	if weeksAhead <= 0 {
		weeksAhead = 4
	}

	user, err := GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	var history []models.ProgressEntry
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&history).Error; err != nil {
		return nil, err
	}

	height := user.Height
	if height <= 0 {
		height = 170
	}

	if len(history) < 2 {
		return defaultPredictions(user, height, weeksAhead), nil
	}

	first := history[0].Date
	xs := make([]float64, len(history))
	weights := make([]float64, len(history))
	energies := make([]float64, len(history))
	for i, entry := range history {
		xs[i] = entry.Date.Sub(first).Hours() / 24.0
		weights[i] = entry.Weight
		energies[i] = float64(entry.EnergyLevel)
	}

	weightTrend := fitTrend(xs, weights)
	energyTrend := fitTrend(xs, energies)

	last := history[len(history)-1]
	lastDay := xs[len(xs)-1]
	currentWeight := last.Weight

	predictions := make(map[string]WeeklyPrediction, weeksAhead)
	for week := 1; week <= weeksAhead; week++ {
		day := lastDay + float64(week)*7

		weight := currentWeight
		if weightTrend.ok {
			weight = weightTrend.at(day)
		}
		weight = clamp(weight, 30, 200)

		energy := float64(last.EnergyLevel)
		if energyTrend.ok {
			energy = energyTrend.at(day)
		}
		energy = clamp(energy, 1, 10)

		h := height / 100.0
		bmi := clamp(weight/(h*h), 15, 50)

		predictions[fmt.Sprintf("Week_%d", week)] = WeeklyPrediction{
			Weight:       round1(weight),
			BMI:          round1(bmi),
			EnergyLevel:  round1(energy),
			WeightChange: round1(weight - currentWeight),
			Date:         time.Now().AddDate(0, 0, week*7).Format("2006-01-02"),
		}
	}
	return predictions, nil
}

func defaultPredictions(user *models.User, height float64, weeksAhead int) map[string]WeeklyPrediction {
	current := user.Weight
	if current <= 0 {
		current = 70
	}

	change := defaultWeeklyWeightChange
	for _, goal := range user.HealthGoals {
		if normalizeGoal(goal) == "weight_loss" {
			change = -defaultWeeklyWeightChange
			break
		}
	}

	predictions := make(map[string]WeeklyPrediction, weeksAhead)
	for week := 1; week <= weeksAhead; week++ {
		weight := current + change*float64(week)
		h := height / 100.0
		predictions[fmt.Sprintf("Week_%d", week)] = WeeklyPrediction{
			Weight:       round1(weight),
			BMI:          round1(weight / (h * h)),
			EnergyLevel:  6.0,
			WeightChange: round1(change * float64(week)),
			Date:         time.Now().AddDate(0, 0, week*7).Format("2006-01-02"),
		}
	}
	return predictions
}

// AnalyzeGoalAchievement grades the projection against the stated goals.
func (s *PredictorService) AnalyzeGoalAchievement(predictions map[string]WeeklyPrediction, goals []string) map[string]string {
	analysis := map[string]string{}
	final, ok := finalWeek(predictions)
	if !ok {
		return analysis
	}

	for _, goal := range goals {
		switch normalizeGoal(goal) {
		case "weight_loss":
			switch {
			case final.WeightChange < -1:
				analysis[goal] = "On track - predicted weight loss"
			case final.WeightChange < 0:
				analysis[goal] = "Slow progress - minor weight loss predicted"
			default:
				analysis[goal] = "Not on track - no weight loss predicted"
			}
		case "muscle_gain":
			analysis[goal] = "Moderate progress expected with consistent training"
		case "fitness_improvement":
			switch {
			case final.EnergyLevel > 7:
				analysis[goal] = "Good progress - high energy levels predicted"
			case final.EnergyLevel > 5:
				analysis[goal] = "Moderate progress - stable energy levels"
			default:
				analysis[goal] = "Consider adjusting plan - low energy predicted"
			}
		}
	}
	return analysis
}

func finalWeek(predictions map[string]WeeklyPrediction) (WeeklyPrediction, bool) {
	if len(predictions) == 0 {
		return WeeklyPrediction{}, false
	}
	keys := make([]string, 0, len(predictions))
	for k := range predictions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		var a, b int
		fmt.Sscanf(keys[i], "Week_%d", &a)
		fmt.Sscanf(keys[j], "Week_%d", &b)
		return a < b
	})
	return predictions[keys[len(keys)-1]], true
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// TrendSummary reports the fitted daily slope per tracked metric, for the
// analytics endpoints.
func (s *PredictorService) TrendSummary(userID uint) (map[string]float64, error) {
	var history []models.ProgressEntry
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date asc").
		Find(&history).Error; err != nil {
		return nil, err
	}
	if len(history) < 2 {
		return map[string]float64{}, nil
	}

	first := history[0].Date
	xs := make([]float64, len(history))
	cols := map[string][]float64{
		"weight": make([]float64, len(history)), "body_fat_percentage": make([]float64, len(history)),
		"muscle_mass": make([]float64, len(history)), "energy_level": make([]float64, len(history)),
		"sleep_hours": make([]float64, len(history)),
	}
	for i, entry := range history {
		xs[i] = entry.Date.Sub(first).Hours() / 24.0
		cols["weight"][i] = entry.Weight
		cols["body_fat_percentage"][i] = entry.BodyFatPercentage
		cols["muscle_mass"][i] = entry.MuscleMass
		cols["energy_level"][i] = float64(entry.EnergyLevel)
		cols["sleep_hours"][i] = entry.SleepHours
	}

	slopes := map[string]float64{}
	for metric, ys := range cols {
		if t := fitTrend(xs, ys); t.ok {
			slopes[metric] = t.beta
		}
	}
	return slopes, nil
}
