package service

import (
	"context"

	"github.com/calorix/calorix/internal/models"
)

// NutriAIInterface is the boundary to the external inference service. Every
// method is a fallible network call; a nil analysis result means "could not
// identify" and is never fatal.
type NutriAIInterface interface {
	Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error)
	AnalyzeFoodPhoto(ctx context.Context, image []byte) (*FoodAnalysis, error)
	AnalyzeWorkoutPhoto(ctx context.Context, image []byte) (*WorkoutAnalysis, error)
	GenerateHomeWorkout(ctx context.Context, level string, durationMinutes int, equipment string) (*WorkoutAnalysis, error)
}

// IntegrationSource produces one step/calorie sample per sync. Production
// uses the pseudo-random source; tests substitute a fixed one.
type IntegrationSource interface {
	Sample() (steps int, calories int)
}
