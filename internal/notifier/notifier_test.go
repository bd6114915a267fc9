package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/stats"
)

const today = "2024-03-01"

func stateWithGoal(t *testing.T) *models.AppState {
	t.Helper()
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	state := models.DefaultState(now)
	state.Goal = &models.Goal{
		DailyCalories: 1364,
		DailyWater:    2450,
		Macros:        models.Macros{Protein: 119, Carbs: 119, Fat: 45},
	}
	return state
}

func countSystem(state *models.AppState, message string) int {
	n := 0
	for _, notif := range state.Notifications {
		if notif.Message == message {
			n++
		}
	}
	return n
}

func TestCheckNoGoalIsNoOp(t *testing.T) {
	now := time.Now()
	state := models.DefaultState(now)
	before := len(state.Notifications)
	Check(state, today, now)
	assert.Len(t, state.Notifications, before)
	assert.Empty(t, state.DailyStats)
}

func TestCalorieGoalFiresOncePerDay(t *testing.T) {
	state := stateWithGoal(t)
	now := time.Now()

	state.FoodLog = []models.FoodItem{
		{ID: "a", Date: today, Calories: 500},
		{ID: "b", Date: today, Calories: 500},
		{ID: "c", Date: today, Calories: 400},
	}

	// |1400-1364| = 36 < 50 and 1400 > 1000
	Check(state, today, now)
	assert.Equal(t, 1, countSystem(state, "Parabéns! Você atingiu sua meta de calorias! 🎉"))
	assert.Equal(t, 100, state.User.Points)

	// crossing the threshold again the same day stays silent
	Check(state, today, now)
	assert.Equal(t, 1, countSystem(state, "Parabéns! Você atingiu sua meta de calorias! 🎉"))
	assert.Equal(t, 100, state.User.Points)
}

func TestCalorieGoalRequiresMinimumIntake(t *testing.T) {
	state := stateWithGoal(t)
	state.Goal.DailyCalories = 990
	state.FoodLog = []models.FoodItem{{ID: "a", Date: today, Calories: 980}}

	Check(state, today, time.Now())
	assert.False(t, state.DailyStats[today].NotifiedGoals.Calories)
	assert.Zero(t, state.User.Points)
}

func TestCalorieGoalOutsideWindow(t *testing.T) {
	state := stateWithGoal(t)
	state.FoodLog = []models.FoodItem{{ID: "a", Date: today, Calories: 1200}}

	Check(state, today, time.Now())
	assert.False(t, state.DailyStats[today].NotifiedGoals.Calories)
}

func TestProteinGoalNotifiesWithoutPoints(t *testing.T) {
	state := stateWithGoal(t)
	state.FoodLog = []models.FoodItem{
		{ID: "a", Date: today, Calories: 600, Protein: 120},
	}

	Check(state, today, time.Now())
	assert.Equal(t, 1, countSystem(state, "Meta de proteínas batida! 💪"))
	assert.True(t, state.DailyStats[today].NotifiedGoals.Protein)
	// the protein goal deliberately does not award points
	assert.Zero(t, state.User.Points)

	Check(state, today, time.Now())
	assert.Equal(t, 1, countSystem(state, "Meta de proteínas batida! 💪"))
}

func TestWaterGoalFlag(t *testing.T) {
	state := stateWithGoal(t)
	now := time.Now()
	day := stats.Ensure(state, today)
	day.WaterIntake = 2450

	Check(state, today, now)
	assert.Equal(t, 1, countSystem(state, "Hidratação completa! 💧"))
	assert.True(t, state.DailyStats[today].NotifiedGoals.Water)

	Check(state, today, now)
	assert.Equal(t, 1, countSystem(state, "Hidratação completa! 💧"))
}

func TestHydrationMilestoneIndependentOfGoal(t *testing.T) {
	// personalized goal is 2450ml; the fixed 2L milestone unlocks first
	state := stateWithGoal(t)
	now := time.Now()
	day := stats.Ensure(state, today)
	day.WaterIntake = 2000

	Check(state, today, now)
	assert.True(t, state.User.FindBadge(models.BadgeHydrated).Unlocked)
	assert.False(t, day.NotifiedGoals.Water, "goal-water flag stays unset below 2450ml")

	// idempotent across checks
	before := len(state.Notifications)
	Check(state, today, now)
	assert.Len(t, state.Notifications, before)
}

func TestFlagsArePerDate(t *testing.T) {
	state := stateWithGoal(t)
	now := time.Now()
	stats.Ensure(state, today).WaterIntake = 2450
	Check(state, today, now)

	// a new date owns fresh flags, so the same threshold fires again
	tomorrow := "2024-03-02"
	stats.Ensure(state, tomorrow).WaterIntake = 2450
	Check(state, tomorrow, now)
	assert.Equal(t, 2, countSystem(state, "Hidratação completa! 💧"))
}

func TestNotificationOrderNewestFirst(t *testing.T) {
	state := stateWithGoal(t)
	now := time.Now()
	state.FoodLog = []models.FoodItem{
		{ID: "a", Date: today, Calories: 1400, Protein: 130},
	}
	stats.Ensure(state, today).WaterIntake = 2450

	Check(state, today, now)

	require.GreaterOrEqual(t, len(state.Notifications), 4)
	// last-checked appears topmost: the hydration badge unlock
	assert.Equal(t, models.NotificationAchievement, state.Notifications[0].Type)
	assert.Equal(t, "Você desbloqueou a medalha Hidratada!", state.Notifications[0].Message)
	assert.Equal(t, "Hidratação completa! 💧", state.Notifications[1].Message)
	assert.Equal(t, "Meta de proteínas batida! 💪", state.Notifications[2].Message)
}
