// Package notifier watches today's aggregation against the active goal and
// fires each completion notification at most once per day per target kind.
package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/calorix/calorix/internal/achievement"
	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/stats"
)

// CalorieGoalWindow is how close (in kcal) the consumed total must be to the
// daily target to count as hitting it.
const CalorieGoalWindow = 50

// CalorieGoalMinimum guards against firing on a nearly-empty log when the
// target itself is low.
const CalorieGoalMinimum = 1000

// HydrationMilestone is the fixed 2L milestone for the Hidratada badge,
// independent of the personalized water goal.
const HydrationMilestone = 2000

func notify(state *models.AppState, message string, now time.Time) {
	state.Notifications = append([]models.Notification{{
		ID:        uuid.New().String(),
		Type:      models.NotificationSystem,
		Message:   message,
		Timestamp: now,
	}}, state.Notifications...)
}

// Check runs the per-day goal checks for today. It is invoked after every
// state mutation that can affect today's totals. Order is fixed: calories,
// protein, water goal, hydration milestone; the checks are independent and
// the order only affects notification display order.
func Check(state *models.AppState, today string, now time.Time) {
	if state.Goal == nil {
		return
	}

	totals := stats.ConsumedTotals(state.FoodLog, today)
	day := stats.Ensure(state, today)

	calorieDiff := totals.Calories - state.Goal.DailyCalories
	if calorieDiff < 0 {
		calorieDiff = -calorieDiff
	}
	if calorieDiff < CalorieGoalWindow && totals.Calories > CalorieGoalMinimum && !day.NotifiedGoals.Calories {
		day.NotifiedGoals.Calories = true
		notify(state, "Parabéns! Você atingiu sua meta de calorias! 🎉", now)
		achievement.Award(state, achievement.ActionMeal, achievement.PointsCalorieGoal, now)
	}

	if totals.Protein >= float64(state.Goal.Macros.Protein) && !day.NotifiedGoals.Protein {
		day.NotifiedGoals.Protein = true
		notify(state, "Meta de proteínas batida! 💪", now)
	}

	if day.WaterIntake >= state.Goal.DailyWater && !day.NotifiedGoals.Water {
		day.NotifiedGoals.Water = true
		notify(state, "Hidratação completa! 💧", now)
	}

	if day.WaterIntake >= HydrationMilestone {
		achievement.Unlock(state, models.BadgeHydrated, now)
	}
}
