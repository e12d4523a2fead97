package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type culturalPreference struct {
	PreferredFoods []string
	CookingMethods []string
	MealPatterns   []string
}

var culturalPreferences = map[string]culturalPreference{
	"Indian": {
		PreferredFoods: []string{"Rice", "Lentils", "Vegetables", "Yogurt", "Spices"},
		CookingMethods: []string{"Steaming", "Boiling", "Sauteing"},
		MealPatterns:   []string{"3 main meals", "Evening snack"},
	},
	"Mediterranean": {
		PreferredFoods: []string{"Olive Oil", "Fish", "Vegetables", "Whole Grains"},
		CookingMethods: []string{"Grilling", "Roasting", "Raw"},
		MealPatterns:   []string{"3 main meals", "Light dinner"},
	},
	"Asian": {
		PreferredFoods: []string{"Rice", "Fish", "Vegetables", "Tofu", "Green Tea"},
		CookingMethods: []string{"Stir-frying", "Steaming", "Boiling"},
		MealPatterns:   []string{"3 main meals", "Frequent small meals"},
	},
	"Western": {
		PreferredFoods: []string{"Meat", "Dairy", "Bread", "Vegetables"},
		CookingMethods: []string{"Grilling", "Baking", "Roasting"},
		MealPatterns:   []string{"3 main meals", "Snacks"},
	},
}

type dietaryRestriction struct {
	Avoid     []string
	Emphasize []string
}

var dietaryRestrictions = map[string]dietaryRestriction{
	"vegetarian": {
		Avoid:     []string{"Chicken", "Beef", "Pork", "Fish", "Turkey"},
		Emphasize: []string{"Legumes", "Nuts", "Seeds", "Dairy", "Eggs"},
	},
	"vegan": {
		Avoid:     []string{"Chicken", "Beef", "Pork", "Fish", "Dairy", "Eggs"},
		Emphasize: []string{"Legumes", "Nuts", "Seeds", "Plant-based proteins"},
	},
	"diabetic": {
		Avoid:     []string{"High sugar foods", "Refined carbs", "Sugary drinks"},
		Emphasize: []string{"Complex carbs", "Fiber-rich foods", "Lean proteins"},
	},
	"hypertension": {
		Avoid:     []string{"High sodium foods", "Processed foods"},
		Emphasize: []string{"Potassium-rich foods", "Whole grains", "Lean proteins"},
	},
	"gluten_free": {
		Avoid:     []string{"Wheat", "Barley", "Rye", "Bread", "Pasta"},
		Emphasize: []string{"Rice", "Quinoa", "Corn", "Naturally gluten-free foods"},
	},
}

var goalNutrition = map[string][]string{
	"weight_loss": {
		"Create a moderate caloric deficit through portion control",
		"Increase protein intake to preserve muscle mass",
		"Focus on high-fiber foods for satiety",
	},
	"muscle_gain": {
		"Increase protein intake to 1.6-2.2g per kg body weight",
		"Ensure adequate caloric intake to support muscle growth",
		"Include post-workout protein within 30 minutes",
	},
	"heart_health": {
		"Reduce sodium intake and increase potassium-rich foods",
		"Include omega-3 fatty acids from fish or plant sources",
		"Limit saturated fats and trans fats",
	},
	"diabetes_management": {
		"Focus on complex carbohydrates and fiber",
		"Monitor portion sizes and meal timing",
		"Include chromium and magnesium-rich foods",
	},
	"energy_boost": {
		"Ensure adequate iron and B-vitamin intake",
		"Include complex carbohydrates for sustained energy",
		"Stay well-hydrated throughout the day",
	},
}

var goalExercise = map[string][]string{
	"weight_loss": {
		"Include both cardio and strength training",
		"Try high-intensity interval training (HIIT)",
		"Aim for 150+ minutes of moderate cardio weekly",
	},
	"muscle_gain": {
		"Focus on progressive resistance training",
		"Include compound movements like squats and deadlifts",
		"Allow adequate rest between strength sessions",
	},
	"heart_health": {
		"Prioritize cardiovascular exercises",
		"Include activities like swimming, cycling, or walking",
		"Monitor heart rate during exercise",
	},
	"flexibility": {
		"Include daily stretching or yoga",
		"Focus on major muscle groups",
		"Hold stretches for 15-30 seconds",
	},
	"stress_relief": {
		"Try mind-body exercises like yoga or tai chi",
		"Include outdoor activities when possible",
		"Focus on rhythmic, meditative movements",
	},
}

var mealSuggestions = map[string]map[string][]string{
	"breakfast": {
		"Indian":        {"Oats with nuts and fruits", "Vegetable upma", "Whole wheat paratha with yogurt"},
		"Mediterranean": {"Greek yogurt with berries", "Whole grain toast with avocado", "Oatmeal with nuts"},
		"Asian":         {"Congee with vegetables", "Steamed vegetables with rice", "Miso soup with tofu"},
		"Western":       {"Oatmeal with fruits", "Scrambled eggs with vegetables", "Whole grain cereal"},
	},
	"lunch": {
		"Indian":        {"Dal with rice and vegetables", "Quinoa pulao", "Mixed vegetable curry with roti"},
		"Mediterranean": {"Grilled fish with vegetables", "Quinoa salad", "Lentil soup with bread"},
		"Asian":         {"Stir-fried vegetables with brown rice", "Miso soup with salmon", "Tofu with steamed vegetables"},
		"Western":       {"Grilled chicken salad", "Quinoa bowl with vegetables", "Lean meat with sweet potato"},
	},
	"dinner": {
		"Indian":        {"Khichdi with vegetables", "Grilled paneer with salad", "Vegetable soup with roti"},
		"Mediterranean": {"Grilled fish with quinoa", "Vegetable stew", "Lentil salad"},
		"Asian":         {"Steamed fish with vegetables", "Vegetable stir-fry", "Miso soup with tofu"},
		"Western":       {"Grilled salmon with broccoli", "Chicken breast with quinoa", "Vegetable soup"},
	},
	"snacks": {
		"Indian":        {"Mixed nuts", "Fruit salad", "Roasted chickpeas"},
		"Mediterranean": {"Hummus with vegetables", "Greek yogurt", "Mixed olives and nuts"},
		"Asian":         {"Green tea with almonds", "Edamame", "Fresh fruit"},
		"Western":       {"Apple with nut butter", "Greek yogurt", "Mixed berries"},
	},
}

var genericMeals = map[string][]string{
	"breakfast": {"Oatmeal with fruits", "Smoothie with vegetables"},
	"lunch":     {"Quinoa salad", "Vegetable soup"},
	"dinner":    {"Grilled vegetables", "Lentil curry"},
	"snacks":    {"Fresh fruit", "Mixed nuts"},
}

// RecService generates and persists recommendation snapshots by combining
// the analyzers, the user's cohort, and the stated goals.
type RecService struct {
	db         *gorm.DB
	nutrition  *NutritionService
	activity   *ActivityService
	clustering *ClusteringService
}

func NewRecService(db *gorm.DB, clustering *ClusteringService) *RecService {
	return &RecService{
		db:         db,
		nutrition:  NewNutritionService(db),
		activity:   NewActivityService(db),
		clustering: clustering,
	}
}

// Generate builds a full plan snapshot for the user and stores it.
// Deterministic for identical stored inputs.
func (r *RecService) Generate(userID uint) (*models.Recommendation, error) {
	user, err := GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	foodLogs, err := GetUserFoodLogs(userID, 30)
	if err != nil {
		return nil, err
	}
	exerciseLogs, err := GetUserExerciseLogs(userID, 30)
	if err != nil {
		return nil, err
	}

	nutritionAnalysis := r.nutrition.Analyze(foodLogs)
	activityAnalysis := r.activity.Analyze(exerciseLogs, user.Weight)
	cluster := r.clustering.UserCluster(userID)

	mealPlan := r.buildMealPlan(user, nutritionAnalysis)
	weeklyPlan := r.activity.CreateWeeklyPlan(user.HealthGoals, user.ActivityLevel, 5)

	rec := &models.Recommendation{
		UserID: userID,
		Date:   time.Now().Truncate(24 * time.Hour),
		NutritionPlan: models.NutritionPlan{
			DailyCalories:   utils.DailyCalorieNeeds(user.Age, user.Weight, user.Height, user.Gender, user.ActivityLevel),
			Recommendations: r.nutritionRecommendations(user, nutritionAnalysis, cluster),
			MealPlan:        mealPlan,
			Lifestyle:       r.lifestyleRecommendations(user, nutritionAnalysis, activityAnalysis),
			ShoppingList:    buildShoppingList(mealPlan),
		},
		ExercisePlan: models.ExercisePlan{
			Recommendations: r.exerciseRecommendations(user, activityAnalysis),
			WeeklyPlan:      weeklyPlan,
		},
		Goals: user.HealthGoals,
	}

	if err := SaveRecommendation(rec); err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}
	return rec, nil
}

func (r *RecService) nutritionRecommendations(user *models.User, analysis *NutritionAnalysis, cluster int) []string {
	recs := append([]string{}, analysis.Recommendations...)

	background := user.CulturalBackground
	if background == "" {
		background = "Western"
	}
	if pref, ok := culturalPreferences[background]; ok {
		recs = append(recs, "Include culturally familiar foods: "+strings.Join(pref.PreferredFoods[:3], ", "))
	}

	for _, preference := range user.DietaryPreferences {
		if restriction, ok := dietaryRestrictions[normalizeGoal(preference)]; ok {
			recs = append(recs, fmt.Sprintf("For %s diet: emphasize %s", preference, strings.Join(restriction.Emphasize[:2], ", ")))
		}
	}

	if cluster != -1 {
		clusterRecs := r.clustering.ClusterRecommendations(cluster)
		if len(clusterRecs) > 2 {
			clusterRecs = clusterRecs[:2]
		}
		recs = append(recs, clusterRecs...)
	}

	for _, goal := range user.HealthGoals {
		recs = append(recs, goalNutrition[normalizeGoal(goal)]...)
	}

	return dedupe(recs)
}

func (r *RecService) exerciseRecommendations(user *models.User, analysis *ActivityAnalysis) []string {
	recs := append([]string{}, analysis.Recommendations...)

	for _, goal := range user.HealthGoals {
		recs = append(recs, goalExercise[normalizeGoal(goal)]...)
	}

	switch user.ActivityLevel {
	case "Low":
		recs = append(recs, "Start with low-impact exercises and gradually increase intensity")
	case "High":
		recs = append(recs, "Challenge yourself with advanced training techniques")
	}

	if user.Age > 50 {
		recs = append(recs, "Include balance and flexibility exercises for healthy aging")
	} else if user.Age < 25 {
		recs = append(recs, "Take advantage of high recovery capacity with varied training")
	}

	return dedupe(recs)
}

// buildMealPlan assembles seven days of meals, rotated by day index so the
// plan varies without randomness.
func (r *RecService) buildMealPlan(user *models.User, analysis *NutritionAnalysis) map[string]models.MealDay {
	background := user.CulturalBackground
	if _, ok := culturalPreferences[background]; !ok {
		background = "Western"
	}

	plan := map[string]models.MealDay{}
	for day := 1; day <= 7; day++ {
		plan[fmt.Sprintf("Day_%d", day)] = models.MealDay{
			Breakfast: suggestMeal("breakfast", day, background, user.DietaryPreferences, analysis.Gaps),
			Lunch:     suggestMeal("lunch", day, background, user.DietaryPreferences, analysis.Gaps),
			Dinner:    suggestMeal("dinner", day, background, user.DietaryPreferences, analysis.Gaps),
			Snacks:    suggestMeal("snacks", day, background, user.DietaryPreferences, analysis.Gaps),
		}
	}
	return plan
}

func suggestMeal(mealType string, day int, background string, preferences []string, gaps map[string]NutrientGap) []string {
	base := mealSuggestions[mealType][background]

	var suitable []string
	for _, suggestion := range base {
		if mealAllowed(suggestion, preferences) {
			suitable = append(suitable, suggestion)
		}
	}
	if len(suitable) == 0 {
		suitable = append(suitable, genericMeals[mealType]...)
	}

	// rotate by day so a week isn't seven identical menus
	rotated := make([]string, 0, len(suitable))
	for i := 0; i < len(suitable); i++ {
		rotated = append(rotated, suitable[(day-1+i)%len(suitable)])
	}
	if len(rotated) > 3 {
		rotated = rotated[:3]
	}

	if _, ok := gaps["protein"]; ok && (mealType == "lunch" || mealType == "dinner") {
		for i := range rotated {
			rotated[i] += " (add extra protein)"
		}
	}
	return rotated
}

func mealAllowed(suggestion string, preferences []string) bool {
	lower := strings.ToLower(suggestion)
	for _, preference := range preferences {
		restriction, ok := dietaryRestrictions[normalizeGoal(preference)]
		if !ok {
			continue
		}
		for _, avoid := range restriction.Avoid {
			if strings.Contains(lower, strings.ToLower(avoid)) {
				return false
			}
		}
	}
	return true
}

func (r *RecService) lifestyleRecommendations(user *models.User, nutrition *NutritionAnalysis, activity *ActivityAnalysis) []string {
	recs := []string{"Aim for 7-9 hours of quality sleep per night"}

	weight := user.Weight
	if weight <= 0 {
		weight = 70
	}
	// 35 ml per kg body weight
	recs = append(recs, fmt.Sprintf("Drink at least %.1f liters of water daily", weight*0.035))

	recs = append(recs, "Practice stress management techniques like meditation or deep breathing")

	if nutrition.Patterns.AvgMealsPerDay < 3 {
		recs = append(recs, "Establish regular meal times with at least 3 meals per day")
	}
	if activity.Patterns.ExercisesPerWeek > 5 {
		recs = append(recs, "Include rest days for proper recovery and muscle repair")
	}

	recs = append(recs, "Monitor your progress weekly and adjust plans as needed")
	return recs
}

// buildShoppingList extracts ingredient categories from the meal plan text.
func buildShoppingList(plan map[string]models.MealDay) map[string][]string {
	buckets := map[string]map[string]struct{}{
		"Proteins": {}, "Vegetables": {}, "Fruits": {}, "Grains": {}, "Dairy": {}, "Others": {},
	}
	add := func(category, item string) { buckets[category][item] = struct{}{} }

	scan := func(suggestion string) {
		lower := strings.ToLower(suggestion)
		if strings.Contains(lower, "chicken") {
			add("Proteins", "Chicken breast")
		}
		if strings.Contains(lower, "fish") || strings.Contains(lower, "salmon") {
			add("Proteins", "Fish/Salmon")
		}
		if strings.Contains(lower, "eggs") {
			add("Proteins", "Eggs")
		}
		if strings.Contains(lower, "yogurt") {
			add("Dairy", "Greek yogurt")
		}
		if strings.Contains(lower, "quinoa") {
			add("Grains", "Quinoa")
		}
		if strings.Contains(lower, "rice") {
			add("Grains", "Brown rice")
		}
		if strings.Contains(lower, "oat") {
			add("Grains", "Oats")
		}
		if strings.Contains(lower, "vegetable") {
			add("Vegetables", "Mixed vegetables")
		}
		if strings.Contains(lower, "fruit") || strings.Contains(lower, "berries") {
			add("Fruits", "Fresh fruits/berries")
		}
		if strings.Contains(lower, "nuts") {
			add("Others", "Mixed nuts")
		}
	}

	for _, day := range plan {
		for _, meal := range [][]string{day.Breakfast, day.Lunch, day.Dinner, day.Snacks} {
			for _, suggestion := range meal {
				scan(suggestion)
			}
		}
	}

	out := map[string][]string{}
	for category, items := range buckets {
		list := make([]string, 0, len(items))
		for item := range items {
			list = append(list, item)
		}
		sort.Strings(list)
		out[category] = list
	}
	return out
}

// dedupe removes duplicates while keeping first-seen order.
func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
