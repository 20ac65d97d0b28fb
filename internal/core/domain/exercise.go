package domain

import "time"

// Exercise is a guided wellness exercise the user can complete.
type Exercise struct {
	// ID is the unique identifier for the exercise.
	ID string

	// Title is the display name.
	Title string

	// Description explains the purpose of the exercise.
	Description string

	// Category groups exercises ("breathing", "gratitude", "reflection").
	Category string

	// Steps are the guided instructions, in order.
	Steps []string

	// DurationMinutes is the suggested duration.
	DurationMinutes int
}

// ExerciseSession records one completed run of an exercise.
type ExerciseSession struct {
	// ID is the unique identifier for the session.
	ID string

	// ExerciseID links to the completed Exercise.
	ExerciseID string

	// CompletedAt is when the session finished.
	CompletedAt time.Time

	// Notes are optional user notes recorded after completion.
	Notes string
}

// BuiltinExercises returns the guided exercises shipped with the app.
func BuiltinExercises() []Exercise {
	return []Exercise{
		{
			ID:          "box-breathing",
			Title:       "Box Breathing",
			Description: "A slow breathing pattern that settles the nervous system.",
			Category:    "breathing",
			Steps: []string{
				"Sit comfortably and exhale fully.",
				"Inhale through the nose for a count of four.",
				"Hold for a count of four.",
				"Exhale through the mouth for a count of four.",
				"Hold for a count of four, then repeat for ten rounds.",
			},
			DurationMinutes: 5,
		},
		{
			ID:          "gratitude-three",
			Title:       "Three Good Things",
			Description: "Recall three things that went well today and why.",
			Category:    "gratitude",
			Steps: []string{
				"Think of three things that went well today.",
				"For each one, write a sentence about why it happened.",
				"Notice how your body feels as you write.",
			},
			DurationMinutes: 10,
		},
		{
			ID:          "body-scan",
			Title:       "Body Scan",
			Description: "A short scan of physical sensation from head to toe.",
			Category:    "breathing",
			Steps: []string{
				"Close your eyes and take three slow breaths.",
				"Bring attention to the top of your head.",
				"Move attention slowly down through face, shoulders, arms.",
				"Continue through chest, belly, legs, and feet.",
				"Rest for a moment before opening your eyes.",
			},
			DurationMinutes: 8,
		},
		{
			ID:          "evening-reflection",
			Title:       "Evening Reflection",
			Description: "Review the day without judgement and set one intention.",
			Category:    "reflection",
			Steps: []string{
				"Replay the day from morning to now, briefly.",
				"Name one moment you are glad happened.",
				"Name one thing you would do differently.",
				"Set a single intention for tomorrow.",
			},
			DurationMinutes: 10,
		},
	}
}
