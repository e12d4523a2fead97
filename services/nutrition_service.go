package services

import (
	"fmt"
	"sort"

	"backend/models"

	"gorm.io/gorm"
)

// Reference daily values for an average adult. A nutrient counts as a gap
// when average intake falls below 80% of these.
var recommendedDaily = map[string]float64{
	"calories": 2000,
	"protein":  50,
	"carbs":    225,
	"fat":      65,
	"fiber":    25,
}

type DailyIntake struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

type NutrientGap struct {
	Current     float64 `json:"current"`
	Recommended float64 `json:"recommended"`
	Deficit     float64 `json:"deficit"`
}

type EatingPatterns struct {
	AvgMealsPerDay   float64            `json:"avg_meals_per_day"`
	CommonFoods      map[string]int     `json:"common_foods"`
	MealDistribution map[string]float64 `json:"meal_distribution"`
}

type NutritionAnalysis struct {
	DailyIntake     DailyIntake            `json:"daily_intake"`
	Gaps            map[string]NutrientGap `json:"nutritional_gaps"`
	Patterns        EatingPatterns         `json:"eating_patterns"`
	Recommendations []string               `json:"recommendations"`
}

type NutritionService struct{ db *gorm.DB }

func NewNutritionService(db *gorm.DB) *NutritionService { return &NutritionService{db: db} }

// Analyze computes average daily intake, nutritional gaps and eating
// patterns from a user's food logs.
func (s *NutritionService) Analyze(logs []models.FoodLog) *NutritionAnalysis {
	if len(logs) == 0 {
		return defaultNutritionAnalysis()
	}

	intake := s.averageDailyIntake(logs)
	gaps := identifyGaps(intake)
	patterns := analyzeEatingPatterns(logs)

	return &NutritionAnalysis{
		DailyIntake:     intake,
		Gaps:            gaps,
		Patterns:        patterns,
		Recommendations: nutritionRecommendations(gaps, patterns),
	}
}

func (s *NutritionService) averageDailyIntake(logs []models.FoodLog) DailyIntake {
	type totals struct{ cal, prot, carbs, fat, fiber float64 }
	byDay := map[string]*totals{}
	for _, l := range logs {
		key := l.Date.Format("2006-01-02")
		t := byDay[key]
		if t == nil {
			t = &totals{}
			byDay[key] = t
		}
		t.cal += l.Calories
		t.prot += l.Protein
		t.carbs += l.Carbs
		t.fat += l.Fat
		t.fiber += l.Fiber
	}

	var intake DailyIntake
	n := float64(len(byDay))
	for _, t := range byDay {
		intake.Calories += t.cal / n
		intake.Protein += t.prot / n
		intake.Carbs += t.carbs / n
		intake.Fat += t.fat / n
		intake.Fiber += t.fiber / n
	}
	return intake
}

func identifyGaps(intake DailyIntake) map[string]NutrientGap {
	current := map[string]float64{
		"calories": intake.Calories,
		"protein":  intake.Protein,
		"carbs":    intake.Carbs,
		"fat":      intake.Fat,
		"fiber":    intake.Fiber,
	}
	gaps := map[string]NutrientGap{}
	for nutrient, value := range current {
		rec := recommendedDaily[nutrient]
		if value < rec*0.8 {
			gaps[nutrient] = NutrientGap{Current: value, Recommended: rec, Deficit: rec - value}
		}
	}
	return gaps
}

func analyzeEatingPatterns(logs []models.FoodLog) EatingPatterns {
	days := map[string]int{}
	foods := map[string]int{}
	meals := map[string]int{}
	for _, l := range logs {
		days[l.Date.Format("2006-01-02")]++
		foods[l.FoodItem]++
		meals[l.MealType]++
	}

	patterns := EatingPatterns{
		CommonFoods:      topFoods(foods, 10),
		MealDistribution: map[string]float64{},
	}
	if len(days) > 0 {
		patterns.AvgMealsPerDay = float64(len(logs)) / float64(len(days))
	}
	for mealType, count := range meals {
		patterns.MealDistribution[mealType] = float64(count) / float64(len(logs))
	}
	return patterns
}

func topFoods(counts map[string]int, n int) map[string]int {
	type kv struct {
		k string
		v int
	}
	all := make([]kv, 0, len(counts))
	for k, v := range counts {
		all = append(all, kv{k, v})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].v != all[j].v {
			return all[i].v > all[j].v
		}
		return all[i].k < all[j].k
	})
	if len(all) > n {
		all = all[:n]
	}
	top := make(map[string]int, len(all))
	for _, e := range all {
		top[e.k] = e.v
	}
	return top
}

func nutritionRecommendations(gaps map[string]NutrientGap, patterns EatingPatterns) []string {
	var recs []string

	// stable iteration so snapshots are reproducible
	nutrients := make([]string, 0, len(gaps))
	for n := range gaps {
		nutrients = append(nutrients, n)
	}
	sort.Strings(nutrients)

	for _, nutrient := range nutrients {
		gap := gaps[nutrient]
		switch nutrient {
		case "protein":
			recs = append(recs, fmt.Sprintf("Increase protein intake by %.1fg daily. Consider adding lean meats, eggs, or legumes.", gap.Deficit))
		case "fiber":
			recs = append(recs, fmt.Sprintf("Add %.1fg more fiber daily. Include more fruits, vegetables, and whole grains.", gap.Deficit))
		case "calories":
			if gap.Deficit > 200 {
				recs = append(recs, "Consider increasing caloric intake with nutrient-dense foods.")
			} else {
				recs = append(recs, "Maintain current caloric intake but focus on nutrient quality.")
			}
		}
	}

	if patterns.AvgMealsPerDay < 3 {
		recs = append(recs, "Aim for at least 3 balanced meals per day for better nutrient distribution.")
	}
	if len(patterns.CommonFoods) < 5 {
		recs = append(recs, "Increase food variety to ensure diverse nutrient intake.")
	}
	return recs
}

func defaultNutritionAnalysis() *NutritionAnalysis {
	return &NutritionAnalysis{
		Gaps: map[string]NutrientGap{
			"calories": {Recommended: 2000, Deficit: 2000},
			"protein":  {Recommended: 50, Deficit: 50},
			"fiber":    {Recommended: 25, Deficit: 25},
		},
		Patterns: EatingPatterns{
			CommonFoods:      map[string]int{},
			MealDistribution: map[string]float64{},
		},
		Recommendations: []string{
			"Start logging your food intake to get personalized recommendations",
			"Aim for balanced meals with protein, carbs, and healthy fats",
			"Include plenty of fruits and vegetables for fiber and micronutrients",
		},
	}
}

// SuggestFoodsFor returns catalog foods that best cover the given nutrients.
func (s *NutritionService) SuggestFoodsFor(nutrients []string) (map[string][]models.FoodItem, error) {
	suggestions := map[string][]models.FoodItem{}
	for _, nutrient := range nutrients {
		var items []models.FoodItem
		q := s.db.Model(&models.FoodItem{}).Limit(5)
		switch nutrient {
		case "protein":
			q = q.Where("protein > ?", 15.0).Order("protein desc")
		case "fiber":
			q = q.Where("fiber > ?", 5.0).Order("fiber desc")
		case "calories":
			q = q.Where("calories > ?", 200.0).Order("calories desc")
		default:
			continue
		}
		if err := q.Find(&items).Error; err != nil {
			return nil, err
		}
		suggestions[nutrient] = items
	}
	return suggestions, nil
}
