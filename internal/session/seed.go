package session

import "time"

// seedUsers returns the built-in sample users, used when no persisted
// collection exists yet. Ids and field values must stay stable, existing
// deployments have them stored.
func seedUsers() []User {
	return []User{
		{
			ID:                  "1",
			Email:               "john.doe@student.edu",
			Password:            "password123",
			Name:                "John Doe",
			Age:                 20,
			Weight:              70,
			Height:              175,
			FitnessLevel:        FitnessLevelBeginner,
			CompletedExercises:  []string{"1", "3", "5"},
			StreakDays:          5,
			TotalCaloriesBurned: 450,
			CreatedAt:           time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "2",
			Email:               "sarah.wilson@student.edu",
			Password:            "password123",
			Name:                "Sarah Wilson",
			Age:                 19,
			Weight:              58,
			Height:              165,
			FitnessLevel:        FitnessLevelIntermediate,
			CompletedExercises:  []string{"2", "4", "6", "8", "10"},
			StreakDays:          12,
			TotalCaloriesBurned: 780,
			CreatedAt:           time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:                  "3",
			Email:               "mike.chen@student.edu",
			Password:            "password123",
			Name:                "Mike Chen",
			Age:                 22,
			Weight:              80,
			Height:              180,
			FitnessLevel:        FitnessLevelAdvanced,
			CompletedExercises:  []string{"7", "9", "11", "12", "13", "14", "15"},
			StreakDays:          8,
			TotalCaloriesBurned: 1250,
			CreatedAt:           time.Date(2024, 1, 8, 7, 15, 0, 0, time.UTC),
		},
	}
}
