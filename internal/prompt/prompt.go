// Package prompt builds the text prompts sent to the generation backend.
// Everything here is deterministic string construction with no side
// effects; missing parameters render as empty values so prompt building
// never fails.
package prompt

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/llm"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
)

// The fixed text blocks are named constants so they can be versioned
// independently of the orchestration logic.
const (
	CreationPreamble = "Create a workout using the following parameters:\n"

	// WorkoutFormatInstruction is appended to every creation prompt and is
	// also the closing instruction of each revision turn.
	WorkoutFormatInstruction = "Return your response in the following json format where each exercise is a separate json object in the workout list. " +
		"Each exercise has a \"name\", the \"type\" of workout, and \"info\" about the amount of reps/sets/duration to do it in.\n" +
		"Format: {\"workout\": [{\"name\": \"\", \"type\": \"\", \"info\": \"\"}]}\n"

	RecommendationPreamble = "Based on the workouts (in json format) that follow, generate a different workout that the user should do today.\n"

	RecommendationFormatInstruction = "Return your response in the following json format where \"recommendation\" is a sassy one sentence outline of what workout a user should do today " +
		"and the \"parameters\" are a list of parameters relevant to that workout.\n" +
		"Format: {\"recommendation\": \"\", \"parameters\": {\"length\": \"\", \"workout_type\": \"\", \"target_area\": \"\"}}. " +
		"Length is an integer representing the length of the workout in minutes.\n"
)

// BuildCreationPrompt renders the request parameters and the requester's
// health attributes as ordered "key: value" lines between the fixed
// preamble and format instruction. The key order is part of the contract.
func BuildCreationPrompt(workout models.Workout, health models.HealthProfile) string {
	var b strings.Builder
	b.WriteString(CreationPreamble)

	writeField(&b, "length", intString(workout.Length))
	writeField(&b, "difficulty", string(workout.Difficulty))
	writeField(&b, "workout_type", workout.WorkoutType)
	writeField(&b, "target_area", stringValue(workout.TargetArea))
	writeField(&b, "equipment_access", workout.EquipmentAccess)
	writeField(&b, "included_exercises", stringValue(workout.IncludedExercises))
	writeField(&b, "excluded_exercises", stringValue(workout.ExcludedExercises))
	writeField(&b, "other_workout_considerations", stringValue(workout.OtherWorkoutConsiderations))

	writeField(&b, "gender", genderString(health.Gender))
	writeField(&b, "height", floatString(health.HeightM))
	writeField(&b, "weight", floatString(health.WeightKG))
	writeField(&b, "favourite_workout_type", favouriteString(health.FavouriteWorkoutType))
	writeField(&b, "workout_experience", experienceString(health.WorkoutExperience))
	writeField(&b, "fitness_goal", stringValue(health.FitnessGoal))
	writeField(&b, "injuries", stringValue(health.Injuries))

	b.WriteString(WorkoutFormatInstruction)
	return b.String()
}

// BuildRevisionConversation turns a workout's stored history into a
// conversation seed plus the pending prompt for the next turn. Turns
// alternate model/user starting with the first generated workout, so each
// generated text precedes the change request that revised it. The new
// change is not part of the history; it is the final prompt, closed with
// the creation format instruction.
func BuildRevisionConversation(workoutHistory, changeHistory []string, newChange string) ([]llm.Turn, string) {
	turns := make([]llm.Turn, 0, len(workoutHistory)+len(changeHistory))
	for i, generated := range workoutHistory {
		turns = append(turns, llm.Turn{Role: llm.RoleModel, Text: generated})
		if i < len(changeHistory) {
			turns = append(turns, llm.Turn{Role: llm.RoleUser, Text: changeHistory[i]})
		}
	}

	final := newChange + "\n" + WorkoutFormatInstruction
	return turns, final
}

// BuildRecommendationPrompt asks the model for a workout different from
// the supplied recent ones.
func BuildRecommendationPrompt(recentWorkouts []string) string {
	// Marshaling a []string cannot fail.
	serialized, _ := json.Marshal(recentWorkouts)

	var b strings.Builder
	b.WriteString(RecommendationPreamble)
	b.Write(serialized)
	b.WriteString("\n")
	b.WriteString(RecommendationFormatInstruction)
	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatString(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func genderString(g *models.Gender) string {
	if g == nil {
		return ""
	}
	return string(*g)
}

func favouriteString(w *models.FavouriteWorkoutType) string {
	if w == nil {
		return ""
	}
	return string(*w)
}

func experienceString(e *models.ExperienceLevel) string {
	if e == nil {
		return ""
	}
	return string(*e)
}
