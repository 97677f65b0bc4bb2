package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/2beens/fited/internal/catalog"
	"github.com/2beens/fited/internal/session"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour            = 60 * 60
	summaryCacheExpire = oneHour * 1 // default expire in hours
)

// DayStats is a single bar of the weekly progress chart.
type DayStats struct {
	Day       string `json:"day"`
	Calories  int    `json:"calories"`
	Exercises int    `json:"exercises"`
	Duration  int    `json:"duration"`
}

// weeklyTemplate returns the static weekly chart data. Per-day activity
// history is not tracked yet, so the chart is the same for everyone.
// TODO: derive it from real completion timestamps once those are recorded
func weeklyTemplate() []DayStats {
	return []DayStats{
		{Day: "Mon", Calories: 120, Exercises: 2, Duration: 15},
		{Day: "Tue", Calories: 180, Exercises: 3, Duration: 22},
		{Day: "Wed", Calories: 90, Exercises: 1, Duration: 12},
		{Day: "Thu", Calories: 200, Exercises: 4, Duration: 28},
		{Day: "Fri", Calories: 150, Exercises: 2, Duration: 18},
		{Day: "Sat", Calories: 220, Exercises: 3, Duration: 25},
		{Day: "Sun", Calories: 100, Exercises: 1, Duration: 10},
	}
}

type Summary struct {
	TotalExercises             int            `json:"totalExercises"`
	CompletionRate             int            `json:"completionRate"`
	AverageCaloriesPerDay      int            `json:"averageCaloriesPerDay"`
	AverageCaloriesPerExercise int            `json:"averageCaloriesPerExercise"`
	CategoryBreakdown          map[string]int `json:"categoryBreakdown"`
	DifficultyBreakdown        map[string]int `json:"difficultyBreakdown"`
	WeeklyData                 []DayStats     `json:"weeklyData"`
}

type ExportUser struct {
	Name                string `json:"name"`
	TotalCaloriesBurned int    `json:"totalCaloriesBurned"`
	CompletedExercises  int    `json:"completedExercises"`
	StreakDays          int    `json:"streakDays"`
}

type Export struct {
	User              ExportUser     `json:"user"`
	WeeklyData        []DayStats     `json:"weeklyData"`
	CategoryBreakdown map[string]int `json:"categoryBreakdown"`
	ExportDate        time.Time      `json:"exportDate"`
}

// Analyzer computes per-user progress statistics against the exercise
// catalog. Summaries are cached until the user completes another exercise.
type Analyzer struct {
	catalog *catalog.Catalog
	cache   *freecache.Cache
	now     func() time.Time
}

func NewAnalyzer(exerciseCatalog *catalog.Catalog) *Analyzer {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Analyzer{
		catalog: exerciseCatalog,
		cache:   freecache.NewCache(cacheSize),
		now:     time.Now,
	}
}

func (a *Analyzer) Summary(user session.User) *Summary {
	// progress counters only move when a new exercise gets completed, so
	// the completed count is enough to version the cache entry
	cacheKey := fmt.Sprintf("summary::%s::%d", user.ID, len(user.CompletedExercises))
	if summaryBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		var summary Summary
		if err = json.Unmarshal(summaryBytes, &summary); err == nil {
			log.Tracef("found summary for user %s in cache", user.ID)
			return &summary
		}
		log.Errorf("failed to unmarshal summary from cache for user %s: %s", user.ID, err)
	}

	summary := a.computeSummary(user)

	if summaryBytes, err := json.Marshal(summary); err != nil {
		log.Errorf("failed to marshal summary for cache, user %s: %s", user.ID, err)
	} else if err := a.cache.Set([]byte(cacheKey), summaryBytes, summaryCacheExpire); err != nil {
		log.Errorf("failed to write summary cache for user %s: %s", user.ID, err)
	}

	return summary
}

func (a *Analyzer) computeSummary(user session.User) *Summary {
	totalExercises := len(user.CompletedExercises)

	avgCaloriesPerExercise := 0
	if totalExercises > 0 {
		avgCaloriesPerExercise = int(math.Round(
			float64(user.TotalCaloriesBurned) / float64(totalExercises),
		))
	}

	return &Summary{
		TotalExercises: totalExercises,
		CompletionRate: int(math.Round(
			float64(totalExercises) / float64(a.catalog.Size()) * 100,
		)),
		AverageCaloriesPerDay: int(math.Round(
			float64(user.TotalCaloriesBurned) / float64(max(user.StreakDays, 1)),
		)),
		AverageCaloriesPerExercise: avgCaloriesPerExercise,
		CategoryBreakdown:          a.categoryBreakdown(user),
		DifficultyBreakdown:        a.difficultyBreakdown(user),
		WeeklyData:                 weeklyTemplate(),
	}
}

func (a *Analyzer) Export(user session.User) *Export {
	return &Export{
		User: ExportUser{
			Name:                user.Name,
			TotalCaloriesBurned: user.TotalCaloriesBurned,
			CompletedExercises:  len(user.CompletedExercises),
			StreakDays:          user.StreakDays,
		},
		WeeklyData:        weeklyTemplate(),
		CategoryBreakdown: a.categoryBreakdown(user),
		ExportDate:        a.now(),
	}
}

// categoryBreakdown counts completed exercises per catalog category.
// Completed ids no longer present in the catalog are skipped.
func (a *Analyzer) categoryBreakdown(user session.User) map[string]int {
	breakdown := map[string]int{}
	for _, exerciseID := range user.CompletedExercises {
		exercise, ok := a.catalog.Get(exerciseID)
		if !ok {
			continue
		}
		breakdown[exercise.Category]++
	}
	return breakdown
}

func (a *Analyzer) difficultyBreakdown(user session.User) map[string]int {
	breakdown := map[string]int{}
	for _, exerciseID := range user.CompletedExercises {
		exercise, ok := a.catalog.Get(exerciseID)
		if !ok {
			continue
		}
		breakdown[string(exercise.Difficulty)]++
	}
	return breakdown
}
