package services

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"backend/models"
	"backend/utils"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"
	"gorm.io/gorm"
)

var featureNames = []string{
	"age", "gender", "height", "weight", "bmi", "activity_level",
	"avg_calories", "avg_protein", "avg_carbs", "avg_fat", "avg_fiber", "meals_per_day",
	"avg_exercise_duration", "exercises_per_week", "avg_calories_burned",
}

type ClusterProfile struct {
	Size            int                `json:"size"`
	AvgFeatures     map[string]float64 `json:"avg_features"`
	Characteristics []string           `json:"characteristics"`
}

// ClusteringService buckets users into cohorts by profile and habit
// similarity. Assignments live in memory and are rebuilt on demand.
type ClusteringService struct {
	db *gorm.DB

	mu          sync.RWMutex
	assignments map[uint]int
	profiles    map[int]ClusterProfile
}

func NewClusteringService(db *gorm.DB) *ClusteringService {
	return &ClusteringService{
		db:          db,
		assignments: map[uint]int{},
		profiles:    map[int]ClusterProfile{},
	}
}

// userObservation ties a feature point back to its user id through the
// k-means partition.
type userObservation struct {
	userID uint
	coords clusters.Coordinates
}

func (o userObservation) Coordinates() clusters.Coordinates { return o.coords }

func (o userObservation) Distance(point clusters.Coordinates) float64 {
	return o.coords.Distance(point)
}

// Rebuild recomputes cohorts over all users. k <= 0 tunes the cluster count
// by silhouette score over 2..8. Returns the number of clusters produced.
func (s *ClusteringService) Rebuild(k int) (int, error) {
	users, err := s.loadUsers()
	if err != nil {
		return 0, err
	}
	if len(users) < 2 {
		s.mu.Lock()
		s.assignments = map[uint]int{}
		s.profiles = map[int]ClusterProfile{}
		s.mu.Unlock()
		return 0, nil
	}

	ids, raw, err := s.buildFeatureMatrix(users)
	if err != nil {
		return 0, err
	}
	scaled := standardize(raw)

	obs := make(clusters.Observations, len(ids))
	for i, id := range ids {
		obs[i] = userObservation{userID: id, coords: scaled[i]}
	}

	if k <= 0 {
		k = optimalClusterCount(obs, 8)
	}
	if k > len(obs) {
		k = len(obs)
	}

	km := kmeans.New()
	partition, err := km.Partition(obs, k)
	if err != nil {
		return 0, fmt.Errorf("kmeans partition: %w", err)
	}

	assignments := map[uint]int{}
	profiles := map[int]ClusterProfile{}
	rawByID := map[uint][]float64{}
	for i, id := range ids {
		rawByID[id] = raw[i]
	}

	for ci, cluster := range partition {
		var members []uint
		for _, o := range cluster.Observations {
			uo := o.(userObservation)
			assignments[uo.userID] = ci
			members = append(members, uo.userID)
		}
		profiles[ci] = buildClusterProfile(members, rawByID)
	}

	s.mu.Lock()
	s.assignments = assignments
	s.profiles = profiles
	s.mu.Unlock()

	utils.Log.Infow("rebuilt user cohorts", "users", len(ids), "clusters", len(partition))
	return len(partition), nil
}

func (s *ClusteringService) loadUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("id asc").Find(&users).Error
	return users, err
}

// buildFeatureMatrix derives the 15-dim profile/habit vector per user.
func (s *ClusteringService) buildFeatureMatrix(users []models.User) ([]uint, [][]float64, error) {
	ids := make([]uint, 0, len(users))
	matrix := make([][]float64, 0, len(users))

	for _, u := range users {
		bmi := 0.0
		if v, err := utils.CalculateBMI(u.Height, u.Weight); err == nil {
			bmi = v
		}
		gender := 0.0
		if u.Gender == "Male" {
			gender = 1.0
		}

		var foodLogs []models.FoodLog
		if err := s.db.Where("user_id = ?", u.ID).Find(&foodLogs).Error; err != nil {
			return nil, nil, err
		}
		var exLogs []models.ExerciseLog
		if err := s.db.Where("user_id = ?", u.ID).Find(&exLogs).Error; err != nil {
			return nil, nil, err
		}

		var cal, prot, carbs, fat, fiber, mealsPerDay float64
		if len(foodLogs) > 0 {
			days := map[string]struct{}{}
			for _, l := range foodLogs {
				cal += l.Calories
				prot += l.Protein
				carbs += l.Carbs
				fat += l.Fat
				fiber += l.Fiber
				days[l.Date.Format("2006-01-02")] = struct{}{}
			}
			n := float64(len(foodLogs))
			cal, prot, carbs, fat, fiber = cal/n, prot/n, carbs/n, fat/n, fiber/n
			if len(days) > 0 {
				mealsPerDay = n / float64(len(days))
			}
		}

		var avgDuration, perWeek, avgBurned float64
		if len(exLogs) > 0 {
			for _, l := range exLogs {
				avgDuration += float64(l.Duration)
				avgBurned += l.CaloriesBurned
			}
			n := float64(len(exLogs))
			avgDuration /= n
			avgBurned /= n
			perWeek = n / 4.0 // logs cover about four weeks
		}

		ids = append(ids, u.ID)
		matrix = append(matrix, []float64{
			float64(u.Age), gender, u.Height, u.Weight, bmi, utils.ActivityLevelScore(u.ActivityLevel),
			cal, prot, carbs, fat, fiber, mealsPerDay,
			avgDuration, perWeek, avgBurned,
		})
	}
	return ids, matrix, nil
}

// standardize z-scores each feature column.
func standardize(matrix [][]float64) []clusters.Coordinates {
	if len(matrix) == 0 {
		return nil
	}
	cols := len(matrix[0])
	out := make([]clusters.Coordinates, len(matrix))
	for i := range out {
		out[i] = make(clusters.Coordinates, cols)
	}

	col := make([]float64, len(matrix))
	for j := 0; j < cols; j++ {
		for i := range matrix {
			col[i] = matrix[i][j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		if std == 0 || math.IsNaN(std) {
			std = 1
		}
		for i := range matrix {
			out[i][j] = (matrix[i][j] - mean) / std
		}
	}
	return out
}

// optimalClusterCount picks k in 2..maxK by the best mean silhouette score.
func optimalClusterCount(obs clusters.Observations, maxK int) int {
	bestK, bestScore := 3, math.Inf(-1)
	limit := maxK
	if len(obs) < limit {
		limit = len(obs)
	}
	km := kmeans.New()
	for k := 2; k <= limit; k++ {
		partition, err := km.Partition(obs, k)
		if err != nil || len(partition) < 2 {
			continue
		}
		score := meanSilhouette(partition)
		if score > bestScore {
			bestScore = score
			bestK = k
		}
	}
	return bestK
}

// meanSilhouette averages (b-a)/max(a,b) over every observation, with a the
// mean in-cluster distance and b the nearest other-cluster mean distance.
func meanSilhouette(partition clusters.Clusters) float64 {
	var total float64
	var count int
	for ci, cluster := range partition {
		for _, o := range cluster.Observations {
			a := meanDistance(o, cluster.Observations, true)
			b := math.Inf(1)
			for cj, other := range partition {
				if cj == ci || len(other.Observations) == 0 {
					continue
				}
				if d := meanDistance(o, other.Observations, false); d < b {
					b = d
				}
			}
			if math.IsInf(b, 1) {
				continue
			}
			denom := math.Max(a, b)
			if denom > 0 {
				total += (b - a) / denom
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func meanDistance(o clusters.Observation, members clusters.Observations, excludeSelf bool) float64 {
	var sum float64
	var n int
	for _, m := range members {
		d := math.Sqrt(o.Distance(m.Coordinates()))
		if excludeSelf && d == 0 {
			continue
		}
		sum += d
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func buildClusterProfile(members []uint, rawByID map[uint][]float64) ClusterProfile {
	avg := make([]float64, len(featureNames))
	for _, id := range members {
		for j, v := range rawByID[id] {
			avg[j] += v
		}
	}
	features := map[string]float64{}
	for j, name := range featureNames {
		if len(members) > 0 {
			features[name] = avg[j] / float64(len(members))
		}
	}
	return ClusterProfile{
		Size:            len(members),
		AvgFeatures:     features,
		Characteristics: interpretCharacteristics(features),
	}
}

func interpretCharacteristics(f map[string]float64) []string {
	var out []string

	switch bmi := f["bmi"]; {
	case bmi < 18.5:
		out = append(out, "Underweight")
	case bmi < 25:
		out = append(out, "Normal weight")
	case bmi < 30:
		out = append(out, "Overweight")
	default:
		out = append(out, "Obese")
	}

	switch level := f["activity_level"]; {
	case level < 1.5:
		out = append(out, "Low activity")
	case level < 2.5:
		out = append(out, "Moderate activity")
	default:
		out = append(out, "High activity")
	}

	switch cal := f["avg_calories"]; {
	case cal < 1500:
		out = append(out, "Low caloric intake")
	case cal < 2500:
		out = append(out, "Moderate caloric intake")
	default:
		out = append(out, "High caloric intake")
	}

	switch perWeek := f["exercises_per_week"]; {
	case perWeek < 2:
		out = append(out, "Infrequent exerciser")
	case perWeek < 4:
		out = append(out, "Regular exerciser")
	default:
		out = append(out, "Frequent exerciser")
	}

	switch age := f["age"]; {
	case age < 25:
		out = append(out, "Young adult")
	case age < 40:
		out = append(out, "Adult")
	case age < 60:
		out = append(out, "Middle-aged")
	default:
		out = append(out, "Senior")
	}

	return out
}

// UserCluster returns the cohort of a user, or -1 when unassigned.
func (s *ClusteringService) UserCluster(userID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.assignments[userID]; ok {
		return c
	}
	return -1
}

// SimilarUsers lists other members of the user's cohort, capped at topN.
func (s *ClusteringService) SimilarUsers(userID uint, topN int) []uint {
	cluster := s.UserCluster(userID)
	if cluster == -1 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var peers []uint
	for id, c := range s.assignments {
		if c == cluster && id != userID {
			peers = append(peers, id)
		}
	}
	sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })
	if topN > 0 && len(peers) > topN {
		peers = peers[:topN]
	}
	return peers
}

// Profiles returns a copy of the current cluster profiles.
func (s *ClusteringService) Profiles() map[int]ClusterProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]ClusterProfile, len(s.profiles))
	for k, v := range s.profiles {
		out[k] = v
	}
	return out
}

// ClusterRecommendations derives advice strings from a cluster's profile.
func (s *ClusteringService) ClusterRecommendations(clusterID int) []string {
	s.mu.RLock()
	profile, ok := s.profiles[clusterID]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	has := func(c string) bool {
		for _, v := range profile.Characteristics {
			if v == c {
				return true
			}
		}
		return false
	}

	var recs []string
	if has("Low activity") {
		recs = append(recs,
			"Start with light exercises like walking or swimming",
			"Gradually increase activity level over time")
	}
	if has("High caloric intake") {
		recs = append(recs,
			"Focus on portion control and nutrient-dense foods",
			"Consider consulting a nutritionist for meal planning")
	}
	if has("Low caloric intake") {
		recs = append(recs,
			"Ensure adequate nutrition with balanced meals",
			"Consider healthy weight gain strategies if needed")
	}
	if has("Infrequent exerciser") {
		recs = append(recs,
			"Set realistic fitness goals and track progress",
			"Find enjoyable activities to build consistency")
	}
	if has("Overweight") || has("Obese") {
		recs = append(recs,
			"Focus on sustainable weight loss through diet and exercise",
			"Consider high-intensity interval training (HIIT)")
	}
	if has("Underweight") {
		recs = append(recs,
			"Focus on muscle-building exercises and protein intake",
			"Ensure adequate caloric intake for healthy weight gain")
	}
	return recs
}
