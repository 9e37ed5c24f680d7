package models

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "Beginner"
	ExperienceIntermediate ExperienceLevel = "Intermediate"
	ExperienceExpert       ExperienceLevel = "Expert"
)

func (e ExperienceLevel) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceExpert:
		return true
	}
	return false
}

type FavouriteWorkoutType string

const (
	WorkoutTypeResistance FavouriteWorkoutType = "Resistance Training"
	WorkoutTypeCardio     FavouriteWorkoutType = "Cardio"
	WorkoutTypeCircuits   FavouriteWorkoutType = "Circuits"
	WorkoutTypeCrossfit   FavouriteWorkoutType = "Crossfit"
	WorkoutTypeYoga       FavouriteWorkoutType = "Yoga"
)

func (w FavouriteWorkoutType) Valid() bool {
	switch w {
	case WorkoutTypeResistance, WorkoutTypeCardio, WorkoutTypeCircuits,
		WorkoutTypeCrossfit, WorkoutTypeYoga:
		return true
	}
	return false
}

// HealthProfile is one-to-one with a user. It is created empty at
// registration and only ever updated in place, so every field is nullable.
type HealthProfile struct {
	ID                   int64                 `json:"-"`
	UserID               int64                 `json:"-"`
	DOB                  *time.Time            `json:"dob"`
	Gender               *Gender               `json:"gender"`
	HeightM              *float64              `json:"height"`
	WeightKG             *float64              `json:"weight"`
	FavouriteWorkoutType *FavouriteWorkoutType `json:"favourite_workout_type"`
	WorkoutExperience    *ExperienceLevel      `json:"workout_experience"`
	FitnessGoal          *string               `json:"fitness_goal"`
	Injuries             *string               `json:"injuries"`
	OtherConsiderations  *string               `json:"other_considerations"`
	CreatedAt            time.Time             `json:"-"`
	UpdatedAt            time.Time             `json:"-"`
}
