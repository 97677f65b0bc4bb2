package catalog

import "math"

type Difficulty string

const (
	DifficultySimple   Difficulty = "simple"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Exercise is immutable reference data, the JSON layout matches the
// persisted user progress records (completed exercise ids point here).
type Exercise struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	Difficulty        Difficulty `json:"difficulty"`
	Description       string     `json:"description"`
	Instructions      []string   `json:"instructions"`
	TargetMuscles     []string   `json:"targetMuscles"`
	Duration          int        `json:"duration"` // minutes
	CaloriesPerMinute float64    `json:"caloriesPerMinute"`
	ImageURL          string     `json:"imageUrl"`
	Reps              int        `json:"reps,omitempty"`
	Sets              int        `json:"sets,omitempty"`
}

// Calories credited for one full completion of the exercise.
func (e Exercise) Calories() int {
	return int(math.Round(e.CaloriesPerMinute * float64(e.Duration)))
}
