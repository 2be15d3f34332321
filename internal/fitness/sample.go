package fitness

import "time"

// SampleData returns the demo journal shown on first launch. Dates are laid
// out relative to today so the dashboard always has something for the
// current day.
func SampleData(today time.Time, profile Profile) Data {
	day := func(offset int) string {
		return FormatDate(today.AddDate(0, 0, offset))
	}
	at := func(h, m, s int) time.Time {
		y, mo, d := today.Date()
		return time.Date(y, mo, d, h, m, s, 0, today.Location())
	}

	exercises := []Exercise{
		{
			ID: "ex1", Name: "Push-ups", Sets: 3, Reps: 10, RestTime: 60,
			Description: "Place your hands on the ground, slightly wider than shoulder-width apart. Lower your body until your chest nearly touches the floor, then push back up.",
		},
		{
			ID: "ex2", Name: "Squats", Sets: 3, Reps: 15, RestTime: 60,
			Description: "Stand with feet shoulder-width apart, then bend your knees and lower your hips as if sitting in a chair. Return to standing position.",
		},
		{
			ID: "ex3", Name: "Plank", Sets: 3, Duration: 30, RestTime: 45,
			Description: "Start in a push-up position, then bend your elbows and rest your weight on your forearms. Keep your body in a straight line.",
		},
		{
			ID: "ex4", Name: "Jumping Jacks", Sets: 3, Duration: 60, RestTime: 30,
			Description: "Stand with feet together, arms at sides, then jump while spreading legs and raising arms overhead. Return to starting position.",
		},
		{
			ID: "ex5", Name: "Lunges", Sets: 3, Reps: 10, RestTime: 60,
			Description: "Step forward with one leg, lowering your hips until both knees are bent at about a 90-degree angle. Return to starting position.",
		},
	}

	pick := func(idx ...int) []Exercise {
		out := make([]Exercise, 0, len(idx))
		for _, i := range idx {
			out = append(out, exercises[i])
		}
		return out
	}

	workouts := []Workout{
		{
			ID: "w1", Name: "Ninja Training", Exercises: pick(0, 1, 2),
			Difficulty: Beginner, Duration: 30, Category: Strength,
			Description: "A quick full-body workout to build ninja-like reflexes and strength.",
		},
		{
			ID: "w2", Name: "Super Saiyan Cardio", Exercises: pick(3, 4),
			Difficulty: Intermediate, Duration: 45, Category: Cardio,
			Description: "Intense cardio workout to boost your power level over 9000!",
		},
		{
			ID: "w3", Name: "Samurai Strength", Exercises: pick(0, 1, 4),
			Difficulty: Advanced, Duration: 60, Category: Strength,
			Description: "Build the disciplined strength of a samurai warrior.",
		},
	}

	logs := []WorkoutLog{
		{
			ID: "wl1", WorkoutID: "w1", WorkoutName: "Ninja Training", Date: day(0), Duration: 32,
			Exercises: []CompletedExercise{
				{ID: "ce1", ExerciseID: "ex1", Name: "Push-ups", Sets: 3, Reps: 10, Completed: true},
				{ID: "ce2", ExerciseID: "ex2", Name: "Squats", Sets: 3, Reps: 15, Completed: true},
				{ID: "ce3", ExerciseID: "ex3", Name: "Plank", Sets: 3, Duration: 30, Completed: true},
			},
			Notes:  "Felt great today. Increased push-ups by 2 reps on the last set.",
			Rating: 5,
		},
		{
			ID: "wl2", WorkoutID: "w2", WorkoutName: "Super Saiyan Cardio", Date: day(-2), Duration: 40,
			Exercises: []CompletedExercise{
				{ID: "ce4", ExerciseID: "ex4", Name: "Jumping Jacks", Sets: 3, Duration: 60, Completed: true},
				{ID: "ce5", ExerciseID: "ex5", Name: "Lunges", Sets: 3, Reps: 10, Completed: true},
			},
			Notes:  "Felt tired but pushed through.",
			Rating: 4,
		},
	}

	achievements := []Achievement{
		{ID: "a1", Name: "First Step", Description: "Complete your first workout", Icon: "\U0001F94B", Unlocked: true, Progress: 1, MaxProgress: 1, Reward: "New profile badge"},
		{ID: "a2", Name: "Consistent Hero", Description: "Complete workouts 3 days in a row", Icon: "\U0001F525", Progress: 2, MaxProgress: 3, Reward: "+100 XP"},
		{ID: "a3", Name: "Weight Watcher", Description: "Track your weight for 7 days", Icon: "\u2696\uFE0F", Progress: 5, MaxProgress: 7, Reward: "Unlock weight prediction feature"},
		{ID: "a4", Name: "Calorie Master", Description: "Stay under your calorie goal for 5 days", Icon: "\U0001F371", Progress: 3, MaxProgress: 5, Reward: "Special meal plan"},
		{ID: "a5", Name: "Power Level Rising", Description: "Increase workout difficulty", Icon: "\U0001F4AA", Progress: 0, MaxProgress: 1, Reward: "New workout unlocked"},
	}

	calories := []CalorieEntry{
		{ID: "c1", Date: day(0), FoodName: "Miso Ramen", Calories: 450, MealType: Lunch, Protein: 15, Carbs: 60, Fat: 12},
		{ID: "c2", Date: day(0), FoodName: "Grilled Chicken", Calories: 250, MealType: Dinner, Protein: 30, Carbs: 0, Fat: 10},
		{ID: "c3", Date: day(-1), FoodName: "Protein Shake", Calories: 180, MealType: Breakfast, Protein: 25, Carbs: 10, Fat: 3},
	}

	weights := []WeightEntry{
		{ID: "w1", Date: day(0), Weight: 75.5, Notes: "Morning weight after workout"},
		{ID: "w2", Date: day(-3), Weight: 76.2, Notes: "Before bed"},
		{ID: "w3", Date: day(-6), Weight: 76.8},
	}

	chat := []ChatMessage{
		{ID: "m1", Sender: SenderBot, Text: "Konnichiwa! I'm Kenji, your virtual fitness sensei! How can I help you level up today?", Timestamp: at(9, 15, 0)},
		{ID: "m2", Sender: SenderUser, Text: "I'm feeling tired today but still want to workout", Timestamp: at(9, 16, 0)},
		{ID: "m3", Sender: SenderBot, Text: "Even the greatest heroes have days when their energy is low! How about trying a lighter 15-minute recovery workout? It will help your body restore while still making progress!", Timestamp: at(9, 16, 30)},
	}

	return Data{
		Profile:      profile,
		Exercises:    exercises,
		Workouts:     workouts,
		WorkoutLogs:  logs,
		Achievements: achievements,
		Calories:     calories,
		Weights:      weights,
		Chat:         chat,
	}
}

// Clone returns a deep copy of d.
func (d Data) Clone() Data {
	out := d
	out.Exercises = append([]Exercise(nil), d.Exercises...)
	out.Achievements = append([]Achievement(nil), d.Achievements...)
	out.Calories = append([]CalorieEntry(nil), d.Calories...)
	out.Weights = append([]WeightEntry(nil), d.Weights...)
	out.Chat = append([]ChatMessage(nil), d.Chat...)

	out.Workouts = make([]Workout, len(d.Workouts))
	for i, w := range d.Workouts {
		w.Exercises = append([]Exercise(nil), w.Exercises...)
		out.Workouts[i] = w
	}

	out.WorkoutLogs = make([]WorkoutLog, len(d.WorkoutLogs))
	for i, l := range d.WorkoutLogs {
		l.Exercises = append([]CompletedExercise(nil), l.Exercises...)
		out.WorkoutLogs[i] = l
	}
	return out
}
