package services

import (
	"fmt"
	"sort"

	"backend/models"

	"gorm.io/gorm"
)

type ActivityPatterns struct {
	ExercisesPerWeek      float64            `json:"exercises_per_week"`
	CommonExercises       map[string]int     `json:"common_exercises"`
	AvgDurationMinutes    float64            `json:"avg_duration_minutes"`
	TotalWeeklyDuration   int                `json:"total_weekly_duration"`
	IntensityDistribution map[string]float64 `json:"intensity_distribution"`
	CategoryDistribution  map[string]float64 `json:"category_distribution"`
}

type FitnessGap struct {
	Current     float64 `json:"current"`
	Recommended float64 `json:"recommended"`
	Deficit     float64 `json:"deficit"`
}

type ActivityAnalysis struct {
	Patterns            ActivityPatterns      `json:"activity_patterns"`
	FitnessGaps         map[string]FitnessGap `json:"fitness_gaps"`
	Recommendations     []string              `json:"recommendations"`
	TotalCaloriesBurned float64               `json:"total_calories_burned"`
}

type ActivityService struct{ db *gorm.DB }

func NewActivityService(db *gorm.DB) *ActivityService { return &ActivityService{db: db} }

// Analyze derives activity patterns and fitness gaps from exercise logs.
// userWeight backfills calories burned on rows that were logged without it.
func (s *ActivityService) Analyze(logs []models.ExerciseLog, userWeight float64) *ActivityAnalysis {
	if len(logs) == 0 {
		return defaultActivityAnalysis()
	}
	if userWeight <= 0 {
		userWeight = 70
	}

	categories := s.categoryIndex()
	mets := s.metIndex()

	var totalDuration, totalCalories float64
	exercises := map[string]int{}
	intensity := map[string]int{}
	category := map[string]int{}
	for _, l := range logs {
		totalDuration += float64(l.Duration)
		burned := l.CaloriesBurned
		if burned == 0 {
			met, ok := mets[l.ExerciseType]
			if !ok {
				met = defaultMET
			}
			burned = met * userWeight * float64(l.Duration) / 60.0
		}
		totalCalories += burned
		exercises[l.ExerciseType]++
		if l.Intensity != "" {
			intensity[l.Intensity]++
		}
		if cat, ok := categories[l.ExerciseType]; ok {
			category[cat]++
		}
	}

	patterns := ActivityPatterns{
		// logs cover roughly a month of history
		ExercisesPerWeek:      float64(len(logs)) / 30.0 * 7.0,
		CommonExercises:       topFoods(exercises, 5),
		AvgDurationMinutes:    totalDuration / float64(len(logs)),
		TotalWeeklyDuration:   int(totalDuration),
		IntensityDistribution: normalizeCounts(intensity, len(logs)),
		CategoryDistribution:  normalizeCounts(category, len(logs)),
	}

	gaps := s.identifyFitnessGaps(logs, categories)

	return &ActivityAnalysis{
		Patterns:            patterns,
		FitnessGaps:         gaps,
		Recommendations:     activityRecommendations(patterns, gaps),
		TotalCaloriesBurned: totalCalories,
	}
}

func (s *ActivityService) categoryIndex() map[string]string {
	var types []models.ExerciseType
	s.db.Find(&types)
	idx := make(map[string]string, len(types))
	for _, t := range types {
		idx[t.Name] = t.Category
	}
	return idx
}

func (s *ActivityService) metIndex() map[string]float64 {
	var types []models.ExerciseType
	s.db.Find(&types)
	idx := make(map[string]float64, len(types))
	for _, t := range types {
		idx[t.Name] = t.METValue
	}
	return idx
}

func normalizeCounts(counts map[string]int, total int) map[string]float64 {
	out := make(map[string]float64, len(counts))
	for k, v := range counts {
		out[k] = float64(v) / float64(total)
	}
	return out
}

func (s *ActivityService) identifyFitnessGaps(logs []models.ExerciseLog, categories map[string]string) map[string]FitnessGap {
	gaps := map[string]FitnessGap{}

	var totalDuration float64
	unique := map[string]struct{}{}
	strength, flexibility := 0, 0
	for _, l := range logs {
		totalDuration += float64(l.Duration)
		unique[l.ExerciseType] = struct{}{}
		switch categories[l.ExerciseType] {
		case "Strength":
			strength++
		case "Flexibility":
			flexibility++
		}
	}

	// WHO guideline: 150 minutes of moderate activity per week
	if totalDuration < 150 {
		gaps["cardio_duration"] = FitnessGap{Current: totalDuration, Recommended: 150, Deficit: 150 - totalDuration}
	}
	if len(unique) < 3 {
		gaps["exercise_variety"] = FitnessGap{Current: float64(len(unique)), Recommended: 3, Deficit: float64(3 - len(unique))}
	}
	if strength < 2 {
		gaps["strength_training"] = FitnessGap{Current: float64(strength), Recommended: 2, Deficit: float64(2 - strength)}
	}
	if flexibility < 1 {
		gaps["flexibility"] = FitnessGap{Current: float64(flexibility), Recommended: 2, Deficit: float64(2 - flexibility)}
	}
	return gaps
}

func activityRecommendations(patterns ActivityPatterns, gaps map[string]FitnessGap) []string {
	var recs []string

	keys := make([]string, 0, len(gaps))
	for k := range gaps {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		gap := gaps[key]
		switch key {
		case "cardio_duration":
			recs = append(recs, fmt.Sprintf("Increase cardio by %.0f minutes per week. Try walking, cycling, or swimming.", gap.Deficit))
		case "strength_training":
			recs = append(recs, fmt.Sprintf("Add %.0f strength training sessions per week. Focus on major muscle groups.", gap.Deficit))
		case "exercise_variety":
			recs = append(recs, "Try new activities to increase exercise variety and prevent boredom.")
		case "flexibility":
			recs = append(recs, "Include yoga or stretching sessions for flexibility and recovery.")
		}
	}

	if patterns.ExercisesPerWeek < 3 {
		recs = append(recs, "Aim for at least 3-4 exercise sessions per week for optimal health benefits.")
	}
	if patterns.AvgDurationMinutes < 30 {
		recs = append(recs, "Try to exercise for at least 30 minutes per session for better results.")
	}
	return recs
}

func defaultActivityAnalysis() *ActivityAnalysis {
	return &ActivityAnalysis{
		Patterns: ActivityPatterns{
			CommonExercises:       map[string]int{},
			IntensityDistribution: map[string]float64{},
			CategoryDistribution:  map[string]float64{},
		},
		FitnessGaps: map[string]FitnessGap{
			"cardio_duration":   {Recommended: 150, Deficit: 150},
			"strength_training": {Recommended: 2, Deficit: 2},
			"flexibility":       {Recommended: 2, Deficit: 2},
		},
		Recommendations: []string{
			"Start with 150 minutes of moderate cardio per week",
			"Include 2 strength training sessions weekly",
			"Add flexibility exercises like yoga or stretching",
			"Begin with activities you enjoy to build consistency",
		},
	}
}

var goalExercises = map[string][]string{
	"weight_loss":   {"Running", "Cycling", "Swimming", "Jumping Rope"},
	"muscle_gain":   {"Weight Training", "Rowing", "Rock Climbing", "Boxing"},
	"endurance":     {"Running", "Cycling", "Swimming", "Rowing"},
	"flexibility":   {"Yoga", "Pilates", "Stretching"},
	"stress_relief": {"Yoga", "Walking", "Swimming", "Hiking"},
	"strength":      {"Weight Training", "Rock Climbing", "Martial Arts", "Boxing"},
}

// SuggestExercisesForGoals maps stated goals to catalog exercises.
func (s *ActivityService) SuggestExercisesForGoals(goals []string) map[string][]models.ExerciseType {
	suggestions := map[string][]models.ExerciseType{}
	for _, goal := range goals {
		names, ok := goalExercises[normalizeGoal(goal)]
		if !ok {
			continue
		}
		var details []models.ExerciseType
		for _, name := range names {
			var et models.ExerciseType
			if err := s.db.Where("name = ?", name).First(&et).Error; err == nil {
				details = append(details, et)
			}
		}
		suggestions[goal] = details
	}
	return suggestions
}

// CreateWeeklyPlan builds a deterministic weekly schedule from the catalog:
// cardio/strength alternation with a flexibility day when five or more days
// are available, durations scaled by fitness level.
func (s *ActivityService) CreateWeeklyPlan(goals []string, fitnessLevel string, availableDays int) map[string]models.WorkoutDay {
	if availableDays <= 0 {
		availableDays = 3
	}

	multiplier := map[string]float64{"Low": 0.7, "Moderate": 1.0, "High": 1.3}[fitnessLevel]
	if multiplier == 0 {
		multiplier = 1.0
	}

	var structure []string
	switch {
	case availableDays >= 5:
		structure = []string{"Cardio", "Strength", "Cardio", "Strength", "Flexibility"}
	case availableDays >= 3:
		structure = []string{"Cardio", "Strength", "Cardio"}
	default:
		structure = []string{"Full Body"}
	}
	if len(structure) > availableDays {
		structure = structure[:availableDays]
	}

	plan := map[string]models.WorkoutDay{}
	for i, dayType := range structure {
		key := fmt.Sprintf("Day_%d", i+1)
		switch dayType {
		case "Cardio":
			plan[key] = models.WorkoutDay{Type: "Cardio", Exercises: s.pickExercises("Cardio", 2, i, int(30*multiplier))}
		case "Strength":
			plan[key] = models.WorkoutDay{Type: "Strength", Exercises: s.pickExercises("Strength", 1, i, int(45*multiplier))}
		case "Flexibility":
			plan[key] = models.WorkoutDay{Type: "Flexibility", Exercises: s.pickExercises("Flexibility", 1, i, int(30*multiplier))}
		default:
			plan[key] = models.WorkoutDay{Type: "Full Body", Exercises: s.pickExercises("", 3, i, int(20*multiplier))}
		}
	}
	return plan
}

// pickExercises selects catalog rows of a category, rotating the starting
// offset by day index so plans vary across the week but never randomly.
func (s *ActivityService) pickExercises(category string, count, dayIndex, duration int) []models.PlannedExercise {
	var types []models.ExerciseType
	q := s.db.Order("name asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	q.Find(&types)
	if len(types) == 0 {
		return nil
	}

	picks := make([]models.PlannedExercise, 0, count)
	for i := 0; i < count; i++ {
		t := types[(dayIndex+i)%len(types)]
		picks = append(picks, models.PlannedExercise{
			Exercise:  t.Name,
			Duration:  duration,
			Intensity: t.Intensity,
		})
	}
	return picks
}

func normalizeGoal(goal string) string {
	out := make([]rune, 0, len(goal))
	for _, r := range goal {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == ' ':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
