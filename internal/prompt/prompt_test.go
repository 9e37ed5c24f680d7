package prompt

import (
	"strings"
	"testing"

	"github.com/PlanetPuffer/Large-Lifting-Model/internal/llm"
	"github.com/PlanetPuffer/Large-Lifting-Model/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }

func sampleWorkout() models.Workout {
	return models.Workout{
		Difficulty:                 models.DifficultyEasy,
		WorkoutType:                "Resistance Training",
		EquipmentAccess:            "Full Gym",
		TargetArea:                 strPtr("Chest"),
		Length:                     intPtr(60),
		IncludedExercises:          strPtr("Bench Press"),
		ExcludedExercises:          strPtr("Burpees"),
		OtherWorkoutConsiderations: strPtr("Short rest times"),
	}
}

func sampleHealthProfile() models.HealthProfile {
	gender := models.GenderFemale
	favourite := models.WorkoutTypeCardio
	experience := models.ExperienceIntermediate
	return models.HealthProfile{
		Gender:               &gender,
		HeightM:              floatPtr(1.7),
		WeightKG:             floatPtr(65.5),
		FavouriteWorkoutType: &favourite,
		WorkoutExperience:    &experience,
		FitnessGoal:          strPtr("Build muscle"),
		Injuries:             strPtr("Sore knee"),
	}
}

func TestBuildCreationPromptContainsParameterLines(t *testing.T) {
	got := BuildCreationPrompt(sampleWorkout(), sampleHealthProfile())

	expectedLines := []string{
		"length: 60",
		"difficulty: Easy",
		"workout_type: Resistance Training",
		"target_area: Chest",
		"equipment_access: Full Gym",
		"included_exercises: Bench Press",
		"excluded_exercises: Burpees",
		"other_workout_considerations: Short rest times",
		"gender: Female",
		"height: 1.7",
		"weight: 65.5",
		"favourite_workout_type: Cardio",
		"workout_experience: Intermediate",
		"fitness_goal: Build muscle",
		"injuries: Sore knee",
	}
	for _, line := range expectedLines {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("prompt missing line %q:\n%s", line, got)
		}
	}
}

func TestBuildCreationPromptKeyOrder(t *testing.T) {
	got := BuildCreationPrompt(sampleWorkout(), sampleHealthProfile())

	orderedKeys := []string{
		"length:",
		"difficulty:",
		"workout_type:",
		"target_area:",
		"equipment_access:",
		"included_exercises:",
		"excluded_exercises:",
		"other_workout_considerations:",
		"gender:",
		"height:",
		"weight:",
		"favourite_workout_type:",
		"workout_experience:",
		"fitness_goal:",
		"injuries:",
	}
	previous := -1
	for _, key := range orderedKeys {
		index := strings.Index(got, "\n"+key)
		if index < 0 {
			t.Fatalf("prompt missing key %q", key)
		}
		if index <= previous {
			t.Errorf("key %q out of order", key)
		}
		previous = index
	}

	if !strings.HasPrefix(got, CreationPreamble) {
		t.Errorf("prompt does not start with the creation preamble")
	}
	if !strings.HasSuffix(got, WorkoutFormatInstruction) {
		t.Errorf("prompt does not end with the format instruction")
	}
}

func TestBuildCreationPromptMissingValuesRenderEmpty(t *testing.T) {
	workout := models.Workout{
		Difficulty:      models.DifficultyHard,
		WorkoutType:     "Cardio",
		EquipmentAccess: "None",
	}

	got := BuildCreationPrompt(workout, models.HealthProfile{})

	for _, line := range []string{"target_area: \n", "length: \n", "gender: \n", "height: \n", "injuries: \n"} {
		if !strings.Contains(got, line) {
			t.Errorf("expected empty rendering %q in prompt:\n%s", line, got)
		}
	}
}

func TestBuildCreationPromptIsPure(t *testing.T) {
	first := BuildCreationPrompt(sampleWorkout(), sampleHealthProfile())
	second := BuildCreationPrompt(sampleWorkout(), sampleHealthProfile())
	if first != second {
		t.Errorf("identical inputs produced different prompts")
	}
}

func TestBuildRevisionConversationAlternatesModelFirst(t *testing.T) {
	workouts := []string{"workout one", "workout two"}
	changes := []string{"more cardio"}

	turns, final := BuildRevisionConversation(workouts, changes, "less legs")

	expected := []llm.Turn{
		{Role: llm.RoleModel, Text: "workout one"},
		{Role: llm.RoleUser, Text: "more cardio"},
		{Role: llm.RoleModel, Text: "workout two"},
	}
	if len(turns) != len(expected) {
		t.Fatalf("expected %d turns, got %d", len(expected), len(turns))
	}
	for i := range expected {
		if turns[i] != expected[i] {
			t.Errorf("turn %d: expected %+v, got %+v", i, expected[i], turns[i])
		}
	}

	if !strings.HasPrefix(final, "less legs\n") {
		t.Errorf("final prompt does not lead with the new change: %q", final)
	}
	if !strings.HasSuffix(final, WorkoutFormatInstruction) {
		t.Errorf("final prompt does not end with the format instruction")
	}
}

func TestBuildRevisionConversationFirstRevisionHasSingleModelTurn(t *testing.T) {
	turns, _ := BuildRevisionConversation([]string{"initial workout"}, nil, "add stretching")

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Role != llm.RoleModel || turns[0].Text != "initial workout" {
		t.Errorf("unexpected seed turn: %+v", turns[0])
	}
}

func TestBuildRecommendationPromptSerializesWorkouts(t *testing.T) {
	got := BuildRecommendationPrompt([]string{"workout a", "workout b"})

	if !strings.HasPrefix(got, RecommendationPreamble) {
		t.Errorf("prompt does not start with the recommendation preamble")
	}
	if !strings.Contains(got, `["workout a","workout b"]`) {
		t.Errorf("prompt does not contain serialized workouts:\n%s", got)
	}
	if !strings.HasSuffix(got, RecommendationFormatInstruction) {
		t.Errorf("prompt does not end with the recommendation format instruction")
	}
}

func TestBuildRecommendationPromptIsPure(t *testing.T) {
	input := []string{"workout a", "workout b"}
	if BuildRecommendationPrompt(input) != BuildRecommendationPrompt(input) {
		t.Errorf("identical inputs produced different prompts")
	}
}
