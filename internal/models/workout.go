package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Workout is one generation request together with its full revision
// history. SuggestedWorkouts always has at least one entry (the last one
// is the current workout); SuggestedChanges has one entry per revision
// turn applied, so len(SuggestedWorkouts) == len(SuggestedChanges)+1.
type Workout struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created"`

	// Parameters sent to the model.
	Difficulty                 Difficulty `json:"difficulty"`
	WorkoutType                string     `json:"workout_type"`
	EquipmentAccess            string     `json:"equipment_access"`
	TargetArea                 *string    `json:"target_area"`
	Length                     *int       `json:"length"`
	IncludedExercises          *string    `json:"included_exercises"`
	ExcludedExercises          *string    `json:"excluded_exercises"`
	OtherWorkoutConsiderations *string    `json:"other_workout_considerations"`

	// Model generated history.
	SuggestedChanges  []string `json:"llm_suggested_changes"`
	SuggestedWorkouts []string `json:"llm_suggested_workout"`

	// User supplied feedback, unrelated to generation.
	WorkoutRating   *int    `json:"workout_rating"`
	WorkoutComments *string `json:"workout_comments"`
	ActualLength    *int    `json:"actual_length"`
}

// CurrentWorkout returns the latest generated text.
func (w *Workout) CurrentWorkout() string {
	if len(w.SuggestedWorkouts) == 0 {
		return ""
	}
	return w.SuggestedWorkouts[len(w.SuggestedWorkouts)-1]
}
