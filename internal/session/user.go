package session

import (
	"slices"
	"time"
)

type FitnessLevel string

const (
	FitnessLevelBeginner     FitnessLevel = "beginner"
	FitnessLevelIntermediate FitnessLevel = "intermediate"
	FitnessLevelAdvanced     FitnessLevel = "advanced"
)

// User is the persisted user record. Passwords are stored and compared in
// plaintext - a known weakness, kept as-is for compatibility with the stored
// seed dataset (see DESIGN.md).
type User struct {
	ID                  string       `json:"id"`
	Email               string       `json:"email"`
	Password            string       `json:"password"`
	Name                string       `json:"name"`
	Age                 int          `json:"age"`
	Weight              float64      `json:"weight"` // kg
	Height              float64      `json:"height"` // cm
	FitnessLevel        FitnessLevel `json:"fitnessLevel"`
	CompletedExercises  []string     `json:"completedExercises"`
	StreakDays          int          `json:"streakDays"`
	TotalCaloriesBurned int          `json:"totalCaloriesBurned"`
	CreatedAt           time.Time    `json:"createdAt"`
}

func (u *User) HasCompleted(exerciseID string) bool {
	return slices.Contains(u.CompletedExercises, exerciseID)
}

// clone returns a deep copy, so callers cannot mutate store-owned state.
func (u User) clone() User {
	u.CompletedExercises = slices.Clone(u.CompletedExercises)
	return u
}

// SignupParams carries the caller-provided profile fields. Id, progress
// counters and the creation timestamp are assigned by the store.
type SignupParams struct {
	Email        string       `json:"email"`
	Password     string       `json:"password"`
	Name         string       `json:"name"`
	Age          int          `json:"age"`
	Weight       float64      `json:"weight"`
	Height       float64      `json:"height"`
	FitnessLevel FitnessLevel `json:"fitnessLevel"`
}
