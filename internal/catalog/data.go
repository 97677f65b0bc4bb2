package catalog

// builtinExercises is the full exercise reference set. The ids are stable,
// user progress records reference them and must keep resolving across restarts.
var builtinExercises = []Exercise{
	{
		ID:          "1",
		Name:        "Push-ups",
		Category:    "Upper Body",
		Difficulty:  DifficultySimple,
		Description: "Classic bodyweight exercise targeting chest, shoulders, and triceps",
		Instructions: []string{
			"Start in plank position with hands slightly wider than shoulders",
			"Lower your body until chest nearly touches the ground",
			"Push back up to starting position",
			"Keep your core tight throughout the movement",
		},
		TargetMuscles:     []string{"Chest", "Shoulders", "Triceps", "Core"},
		Duration:          5,
		CaloriesPerMinute: 8,
		ImageURL:          "https://images.pexels.com/photos/416809/pexels-photo-416809.jpeg",
		Reps:              10,
		Sets:              3,
	},
	{
		ID:          "2",
		Name:        "Bodyweight Squats",
		Category:    "Lower Body",
		Difficulty:  DifficultySimple,
		Description: "Fundamental lower body exercise for building leg strength",
		Instructions: []string{
			"Stand with feet shoulder-width apart",
			"Lower your body by bending knees and pushing hips back",
			"Keep your chest up and weight on your heels",
			"Return to starting position by pushing through heels",
		},
		TargetMuscles:     []string{"Quadriceps", "Glutes", "Hamstrings", "Calves"},
		Duration:          5,
		CaloriesPerMinute: 6,
		ImageURL:          "https://images.pexels.com/photos/4162478/pexels-photo-4162478.jpeg",
		Reps:              15,
		Sets:              3,
	},
	{
		ID:          "3",
		Name:        "Plank",
		Category:    "Core",
		Difficulty:  DifficultySimple,
		Description: "Isometric core exercise for building stability and strength",
		Instructions: []string{
			"Start in push-up position",
			"Lower onto forearms, keeping elbows under shoulders",
			"Keep body in straight line from head to heels",
			"Hold position while breathing normally",
		},
		TargetMuscles:     []string{"Core", "Shoulders", "Back"},
		Duration:          3,
		CaloriesPerMinute: 5,
		ImageURL:          "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg",
		Reps:              1,
		Sets:              3,
	},
	{
		ID:          "4",
		Name:        "Mountain Climbers",
		Category:    "Cardio",
		Difficulty:  DifficultyModerate,
		Description: "High-intensity cardio exercise that works the whole body",
		Instructions: []string{
			"Start in plank position",
			"Bring right knee toward chest",
			"Quickly switch legs, bringing left knee to chest",
			"Continue alternating legs at a rapid pace",
		},
		TargetMuscles:     []string{"Core", "Shoulders", "Legs", "Cardiovascular"},
		Duration:          4,
		CaloriesPerMinute: 12,
		ImageURL:          "https://images.pexels.com/photos/4162449/pexels-photo-4162449.jpeg",
		Reps:              20,
		Sets:              3,
	},
	{
		ID:          "5",
		Name:        "Jumping Jacks",
		Category:    "Cardio",
		Difficulty:  DifficultySimple,
		Description: "Full-body cardio exercise to get your heart pumping",
		Instructions: []string{
			"Stand with feet together and arms at sides",
			"Jump while spreading legs shoulder-width apart",
			"Simultaneously raise arms overhead",
			"Jump back to starting position",
		},
		TargetMuscles:     []string{"Full Body", "Cardiovascular"},
		Duration:          3,
		CaloriesPerMinute: 10,
		ImageURL:          "https://images.pexels.com/photos/4162515/pexels-photo-4162515.jpeg",
		Reps:              20,
		Sets:              3,
	},
	{
		ID:          "6",
		Name:        "Burpees",
		Category:    "Full Body",
		Difficulty:  DifficultyModerate,
		Description: "Intense full-body exercise combining strength and cardio",
		Instructions: []string{
			"Start standing, then squat down and place hands on floor",
			"Jump feet back into plank position",
			"Do a push-up (optional)",
			"Jump feet back to squat position",
			"Jump up with arms overhead",
		},
		TargetMuscles:     []string{"Full Body", "Cardiovascular"},
		Duration:          5,
		CaloriesPerMinute: 15,
		ImageURL:          "https://images.pexels.com/photos/4164771/pexels-photo-4164771.jpeg",
		Reps:              8,
		Sets:              3,
	},
	{
		ID:          "7",
		Name:        "Pull-ups",
		Category:    "Upper Body",
		Difficulty:  DifficultyHard,
		Description: "Advanced upper body exercise requiring significant strength",
		Instructions: []string{
			"Hang from pull-up bar with palms facing away",
			"Pull your body up until chin clears the bar",
			"Lower yourself back down with control",
			"Keep core engaged throughout movement",
		},
		TargetMuscles:     []string{"Back", "Biceps", "Shoulders", "Core"},
		Duration:          4,
		CaloriesPerMinute: 10,
		ImageURL:          "https://images.pexels.com/photos/4164566/pexels-photo-4164566.jpeg",
		Reps:              5,
		Sets:              3,
	},
	{
		ID:          "8",
		Name:        "Lunges",
		Category:    "Lower Body",
		Difficulty:  DifficultyModerate,
		Description: "Unilateral leg exercise for building strength and balance",
		Instructions: []string{
			"Stand with feet hip-width apart",
			"Step forward with one leg, lowering hips",
			"Lower until both knees are at 90-degree angles",
			"Push back to starting position and repeat on other leg",
		},
		TargetMuscles:     []string{"Quadriceps", "Glutes", "Hamstrings", "Calves"},
		Duration:          4,
		CaloriesPerMinute: 7,
		ImageURL:          "https://images.pexels.com/photos/4162451/pexels-photo-4162451.jpeg",
		Reps:              12,
		Sets:              3,
	},
	{
		ID:          "9",
		Name:        "Handstand Push-ups",
		Category:    "Upper Body",
		Difficulty:  DifficultyHard,
		Description: "Advanced bodyweight exercise requiring significant upper body strength",
		Instructions: []string{
			"Start in handstand position against wall",
			"Lower head toward ground with control",
			"Push back up to starting position",
			"Maintain straight body line throughout",
		},
		TargetMuscles:     []string{"Shoulders", "Triceps", "Upper Back", "Core"},
		Duration:          3,
		CaloriesPerMinute: 12,
		ImageURL:          "https://images.pexels.com/photos/4164772/pexels-photo-4164772.jpeg",
		Reps:              3,
		Sets:              3,
	},
	{
		ID:          "10",
		Name:        "Pike Push-ups",
		Category:    "Upper Body",
		Difficulty:  DifficultyModerate,
		Description: "Shoulder-focused variation of push-ups",
		Instructions: []string{
			"Start in downward dog position",
			"Lower head toward ground between hands",
			"Push back up to starting position",
			"Keep hips high throughout movement",
		},
		TargetMuscles:     []string{"Shoulders", "Triceps", "Upper Back"},
		Duration:          4,
		CaloriesPerMinute: 9,
		ImageURL:          "https://images.pexels.com/photos/4162632/pexels-photo-4162632.jpeg",
		Reps:              8,
		Sets:              3,
	},
	{
		ID:          "11",
		Name:        "Single-Leg Squats (Pistol Squats)",
		Category:    "Lower Body",
		Difficulty:  DifficultyHard,
		Description: "Advanced unilateral leg exercise requiring strength and balance",
		Instructions: []string{
			"Stand on one leg with other leg extended forward",
			"Lower body by bending standing leg",
			"Keep extended leg straight and off ground",
			"Push back up to starting position",
		},
		TargetMuscles:     []string{"Quadriceps", "Glutes", "Hamstrings", "Core"},
		Duration:          5,
		CaloriesPerMinute: 11,
		ImageURL:          "https://images.pexels.com/photos/4162640/pexels-photo-4162640.jpeg",
		Reps:              5,
		Sets:              3,
	},
	{
		ID:          "12",
		Name:        "Diamond Push-ups",
		Category:    "Upper Body",
		Difficulty:  DifficultyHard,
		Description: "Advanced push-up variation targeting triceps",
		Instructions: []string{
			"Start in push-up position with hands in diamond shape",
			"Keep thumbs and index fingers touching",
			"Lower body until chest touches hands",
			"Push back up to starting position",
		},
		TargetMuscles:     []string{"Triceps", "Chest", "Shoulders", "Core"},
		Duration:          4,
		CaloriesPerMinute: 10,
		ImageURL:          "https://images.pexels.com/photos/4164595/pexels-photo-4164595.jpeg",
		Reps:              6,
		Sets:              3,
	},
	{
		ID:          "13",
		Name:        "L-Sit",
		Category:    "Core",
		Difficulty:  DifficultyHard,
		Description: "Advanced isometric core exercise",
		Instructions: []string{
			"Sit with legs extended and hands on ground beside hips",
			"Press hands down and lift entire body off ground",
			"Keep legs straight and parallel to ground",
			"Hold position while breathing",
		},
		TargetMuscles:     []string{"Core", "Hip Flexors", "Shoulders", "Triceps"},
		Duration:          2,
		CaloriesPerMinute: 8,
		ImageURL:          "https://images.pexels.com/photos/4164651/pexels-photo-4164651.jpeg",
		Reps:              1,
		Sets:              5,
	},
	{
		ID:          "14",
		Name:        "Hindu Push-ups",
		Category:    "Full Body",
		Difficulty:  DifficultyHard,
		Description: "Dynamic full-body movement combining strength and flexibility",
		Instructions: []string{
			"Start in downward dog position",
			"Dive forward, lowering chest toward ground",
			"Scoop up into upward dog position",
			"Return to downward dog by reversing the movement",
		},
		TargetMuscles:     []string{"Full Body", "Flexibility"},
		Duration:          5,
		CaloriesPerMinute: 13,
		ImageURL:          "https://images.pexels.com/photos/4162487/pexels-photo-4162487.jpeg",
		Reps:              8,
		Sets:              3,
	},
	{
		ID:          "15",
		Name:        "Archer Push-ups",
		Category:    "Upper Body",
		Difficulty:  DifficultyHard,
		Description: "Unilateral push-up variation for advanced practitioners",
		Instructions: []string{
			"Start in wide push-up position",
			"Lower body while shifting weight to one arm",
			"Keep other arm straight and extended",
			"Push back up and repeat on other side",
		},
		TargetMuscles:     []string{"Chest", "Shoulders", "Triceps", "Core"},
		Duration:          4,
		CaloriesPerMinute: 11,
		ImageURL:          "https://images.pexels.com/photos/4164770/pexels-photo-4164770.jpeg",
		Reps:              4,
		Sets:              3,
	},
}
