package state

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/service"
	"github.com/calorix/calorix/internal/store"
	"github.com/calorix/calorix/internal/testhelpers"
)

var testStart = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newTestContainer(t *testing.T) (*Container, *store.MemoryStore, *testhelpers.Clock) {
	t.Helper()
	clock := testhelpers.NewClock(testStart)
	mem := store.NewMemoryStore()
	c := New(mem,
		WithClock(clock.Now),
		WithLogger(log.New(io.Discard, "", 0)),
		WithIntegrationSource(&service.FixedSource{Steps: 321, Calories: 12}),
	)
	return c, mem, clock
}

func onboard(t *testing.T, c *Container) models.Goal {
	t.Helper()
	return c.CompleteOnboarding(models.User{
		Name: "Maria", Age: 30, Gender: models.GenderFemale,
		Weight: 70, Height: 165,
		UnitSystem:    models.UnitMetric,
		ActivityLevel: models.ActivityModerate,
		GoalType:      models.GoalLoseWeight,
		AllowLocalStorage: true,
	})
}

func countMessage(state *models.AppState, message string) int {
	n := 0
	for _, notif := range state.Notifications {
		if notif.Message == message {
			n++
		}
	}
	return n
}

func TestNewFallsBackToDefaultState(t *testing.T) {
	c, _, _ := newTestContainer(t)
	snap := c.Snapshot()
	assert.False(t, snap.User.OnboardingCompleted)
	assert.Len(t, snap.User.Badges, 6)
	assert.Len(t, snap.WorkoutPlan, 7)
	assert.Nil(t, snap.Goal)
}

func TestNewRestoresSavedState(t *testing.T) {
	c, mem, clock := newTestContainer(t)
	onboard(t, c)
	c.AddWater(500)

	restored := New(mem, WithClock(clock.Now), WithLogger(log.New(io.Discard, "", 0)))
	snap := restored.Snapshot()
	assert.True(t, snap.User.OnboardingCompleted)
	assert.Equal(t, "Maria", snap.User.Name)
	assert.Equal(t, 500, snap.DailyStats[c.Today()].WaterIntake)
}

func TestNewSurvivesLoadFailure(t *testing.T) {
	failing := &testhelpers.FailingStore{LoadErr: errors.New("disk on fire")}
	c := New(failing, WithLogger(log.New(io.Discard, "", 0)))
	snap := c.Snapshot()
	assert.False(t, snap.User.OnboardingCompleted)
	assert.Len(t, snap.User.Badges, 6)
}

func TestSaveFailureDoesNotBreakTransitions(t *testing.T) {
	failing := &testhelpers.FailingStore{LoadErr: store.ErrNotFound, SaveErr: errors.New("quota exceeded")}
	c := New(failing, WithLogger(log.New(io.Discard, "", 0)))

	c.AddWater(250)
	assert.Equal(t, 250, c.Snapshot().DailyStats[c.Today()].WaterIntake)
	assert.Positive(t, failing.SaveCalls())
}

func TestCompleteOnboardingDerivesGoal(t *testing.T) {
	c, _, _ := newTestContainer(t)
	g := onboard(t, c)

	// BMR 1420.25, TDEE 2201, lose_weight -500
	assert.Equal(t, 1701, g.DailyCalories)
	assert.Equal(t, 2450, g.DailyWater)
	assert.Equal(t, models.GoalLoseWeight, g.Type)

	snap := c.Snapshot()
	assert.True(t, snap.User.OnboardingCompleted)
	require.NotNil(t, snap.Goal)
	assert.Equal(t, 1701, snap.Goal.DailyCalories)
}

func TestUpdateProfileReplacesGoalWholesale(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	profile := c.Snapshot().User
	profile.GoalType = models.GoalGainMuscle
	g := c.UpdateProfile(profile)
	assert.Equal(t, 2501, g.DailyCalories)

	// progression untouched by profile edits
	snap := c.Snapshot()
	assert.Len(t, snap.User.Badges, 6)
}

func TestAddFoodRejectsInvalidInput(t *testing.T) {
	c, mem, _ := newTestContainer(t)
	onboard(t, c)
	saves := mem.Saves()

	assert.False(t, c.AddFood(models.FoodItem{Calories: 100}))
	assert.False(t, c.AddFood(models.FoodItem{Name: "Café", Calories: 0}))
	assert.Empty(t, c.Snapshot().FoodLog)
	assert.Equal(t, saves, mem.Saves())
}

func TestAddFoodAwardsPointsAndFirstMealBadge(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	require.True(t, c.AddFood(models.FoodItem{Name: "Aveia", Calories: 150}))
	snap := c.Snapshot()
	assert.Equal(t, 10, snap.User.Points)
	assert.True(t, snap.User.FindBadge(models.BadgeFocused).Unlocked)
	require.Len(t, snap.FoodLog, 1)
	assert.Equal(t, c.Today(), snap.FoodLog[0].Date)
	assert.NotEmpty(t, snap.FoodLog[0].ID)

	require.True(t, c.AddFood(models.FoodItem{Name: "Iogurte", Calories: 120}))
	snap = c.Snapshot()
	assert.Equal(t, 20, snap.User.Points)
	assert.Equal(t, 1, countMessage(snap, "Você desbloqueou a medalha Focada!"))
	// newest first
	assert.Equal(t, "Iogurte", snap.FoodLog[0].Name)
}

func TestCalorieGoalScenario(t *testing.T) {
	// three meals totalling 1400 kcal against a 1364 kcal goal:
	// |1400-1364| = 36 < 50 and 1400 > 1000 -> one notification, +100 once
	c, _, _ := newTestContainer(t)
	onboard(t, c)
	c.UpdateGoal(models.Goal{
		DailyCalories: 1364, DailyWater: 2450,
		Macros: models.Macros{Protein: 119, Carbs: 119, Fat: 45},
	})

	c.AddFood(models.FoodItem{Name: "Café da manhã", Calories: 500})
	c.AddFood(models.FoodItem{Name: "Almoço", Calories: 500})
	snap := c.Snapshot()
	assert.Zero(t, countMessage(snap, "Parabéns! Você atingiu sua meta de calorias! 🎉"))

	c.AddFood(models.FoodItem{Name: "Jantar", Calories: 400})
	snap = c.Snapshot()
	assert.Equal(t, 1, countMessage(snap, "Parabéns! Você atingiu sua meta de calorias! 🎉"))
	// 3 meals * 10 + 100 bonus
	assert.Equal(t, 130, snap.User.Points)

	// further logging the same day never re-fires
	c.AddFood(models.FoodItem{Name: "Lanche", Calories: 30})
	snap = c.Snapshot()
	assert.Equal(t, 1, countMessage(snap, "Parabéns! Você atingiu sua meta de calorias! 🎉"))
	assert.Equal(t, 140, snap.User.Points)
}

func TestWaterScenarioHydrationBadge(t *testing.T) {
	// 7 increments of 250ml (1750ml) against a 2450ml goal: nothing fires;
	// the 8th crosses the fixed 2000ml milestone and unlocks Hidratada.
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	for i := 0; i < 7; i++ {
		c.AddWater(250)
	}
	snap := c.Snapshot()
	assert.Equal(t, 1750, snap.DailyStats[c.Today()].WaterIntake)
	assert.False(t, snap.DailyStats[c.Today()].NotifiedGoals.Water)
	assert.False(t, snap.User.FindBadge(models.BadgeHydrated).Unlocked)

	c.AddWater(250)
	snap = c.Snapshot()
	assert.True(t, snap.User.FindBadge(models.BadgeHydrated).Unlocked)
	assert.False(t, snap.DailyStats[c.Today()].NotifiedGoals.Water,
		"personalized 2450ml goal still unmet")
	// 8 * 5 water points
	assert.Equal(t, 40, snap.User.Points)
}

func TestRemoveFoodReversesMicronutrients(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	item := models.FoodItem{
		Name: "Laranja", Calories: 60,
		Micronutrients: &models.Micronutrients{VitaminC: 70, Potassium: 237},
	}
	require.True(t, c.AddFood(item))
	snap := c.Snapshot()
	id := snap.FoodLog[0].ID
	assert.InDelta(t, 70, snap.DailyStats[c.Today()].Micronutrients.VitaminC, 1e-9)

	require.True(t, c.RemoveFood(id))
	snap = c.Snapshot()
	assert.Empty(t, snap.FoodLog)
	assert.Zero(t, snap.DailyStats[c.Today()].Micronutrients.VitaminC)
	assert.Zero(t, snap.DailyStats[c.Today()].Micronutrients.Potassium)
}

func TestEditFoodLeavesAggregateAlone(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	require.True(t, c.AddFood(models.FoodItem{
		Name: "Laranja", Calories: 60,
		Micronutrients: &models.Micronutrients{VitaminC: 70},
	}))
	snap := c.Snapshot()
	edited := snap.FoodLog[0]
	edited.Name = "Tangerina"
	edited.Micronutrients = &models.Micronutrients{VitaminC: 30}

	require.True(t, c.EditFood(edited))
	snap = c.Snapshot()
	assert.Equal(t, "Tangerina", snap.FoodLog[0].Name)
	// the day's aggregate keeps the original contribution
	assert.InDelta(t, 70, snap.DailyStats[c.Today()].Micronutrients.VitaminC, 1e-9)

	assert.False(t, c.EditFood(models.FoodItem{ID: "missing"}))
}

func TestToggleWorkout(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	// the seeded rest day counts as a completed day, so no Fitness badge yet
	require.True(t, c.ToggleWorkout("1"))
	snap := c.Snapshot()
	assert.Equal(t, 50, snap.User.Points)
	assert.False(t, snap.User.FindBadge(models.BadgeFitness).Unlocked)

	// un-completing awards nothing
	require.True(t, c.ToggleWorkout("1"))
	assert.Equal(t, 50, c.Snapshot().User.Points)

	// with no completed day at all, completing one unlocks Fitness
	require.True(t, c.ToggleWorkout("7"))
	require.True(t, c.ToggleWorkout("2"))
	snap = c.Snapshot()
	assert.True(t, snap.User.FindBadge(models.BadgeFitness).Unlocked)

	assert.False(t, c.ToggleWorkout("99"))
}

func TestFastingStateMachine(t *testing.T) {
	c, _, clock := newTestContainer(t)
	onboard(t, c)

	c.StartFasting(models.FastingLion, 12)
	snap := c.Snapshot()
	assert.True(t, snap.Fasting.IsActive)
	require.NotNil(t, snap.Fasting.StartTime)
	assert.Equal(t, clock.Now(), *snap.Fasting.StartTime)

	clock.Advance(13 * time.Hour)
	c.StopFasting()
	snap = c.Snapshot()
	assert.False(t, snap.Fasting.IsActive)
	assert.Nil(t, snap.Fasting.StartTime)
	require.Len(t, snap.Fasting.History, 1)
	assert.InDelta(t, 13, snap.Fasting.History[0].Duration, 1e-9)
	assert.True(t, snap.Fasting.History[0].Completed)

	// stop without an active fast is a no-op
	c.StopFasting()
	assert.Len(t, c.Snapshot().Fasting.History, 1)
}

func TestCreatePostAwardsSocialBadge(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)

	post := c.CreatePost("Primeiro dia de dieta! 💪", "", "", "")
	require.NotNil(t, post)
	assert.Equal(t, models.SelfAuthorID, post.AuthorID)
	assert.Equal(t, "Maria", post.Author)
	assert.Equal(t, "general", post.Category)

	snap := c.Snapshot()
	assert.Equal(t, 20, snap.User.Points)
	assert.True(t, snap.User.FindBadge(models.BadgeSocial).Unlocked)
	assert.Equal(t, post.ID, snap.CommunityPosts[0].ID)

	assert.Nil(t, c.CreatePost("", "", "", ""))
}

func TestCommentsAndLikes(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)
	postID := c.Snapshot().CommunityPosts[0].ID

	comment := c.AddComment(postID, "Parabéns!!")
	require.NotNil(t, comment)
	snap := c.Snapshot()
	assert.Equal(t, 2, snap.CommunityPosts[0].CommentsCount)

	require.True(t, c.ToggleLike(postID))
	snap = c.Snapshot()
	assert.True(t, snap.CommunityPosts[0].IsLiked)
	assert.Equal(t, 13, snap.CommunityPosts[0].Likes)

	require.True(t, c.ToggleLike(postID))
	snap = c.Snapshot()
	assert.False(t, snap.CommunityPosts[0].IsLiked)
	assert.Equal(t, 12, snap.CommunityPosts[0].Likes)

	require.True(t, c.ToggleSave(postID))
	assert.True(t, c.Snapshot().CommunityPosts[0].IsSaved)

	assert.Nil(t, c.AddComment("missing", "oi"))
}

func TestToggleFollow(t *testing.T) {
	c, _, _ := newTestContainer(t)
	c.ToggleFollow("u1")
	assert.Equal(t, []string{"u1"}, c.Snapshot().User.Following)
	c.ToggleFollow("u1")
	assert.Empty(t, c.Snapshot().User.Following)
}

func TestSyncNowAppliesFixedSample(t *testing.T) {
	c, _, clock := newTestContainer(t)
	onboard(t, c)

	steps, calories := c.SyncNow()
	assert.Equal(t, 321, steps)
	assert.Equal(t, 12, calories)

	snap := c.Snapshot()
	day := snap.DailyStats[c.Today()]
	require.NotNil(t, day)
	assert.Equal(t, 321, day.Steps)
	assert.Equal(t, 12, day.CaloriesBurned)
	require.NotNil(t, snap.Integrations.LastSync)
	assert.Equal(t, clock.Now(), *snap.Integrations.LastSync)
}

func TestDisabledLocalStorageSkipsSaves(t *testing.T) {
	c, mem, _ := newTestContainer(t)
	profile := c.Snapshot().User
	profile.Name = "Maria"
	profile.AllowLocalStorage = false
	c.UpdateProfile(profile)

	saves := mem.Saves()
	c.AddWater(250)
	c.RecordActivity(1000, 50)
	assert.Equal(t, saves, mem.Saves())
}

func TestLastLoginTouchedOnNewDay(t *testing.T) {
	c, _, clock := newTestContainer(t)
	onboard(t, c)
	assert.Equal(t, testStart, c.Snapshot().User.LastLogin)

	clock.Advance(24 * time.Hour)
	c.AddWater(100)
	assert.Equal(t, clock.Now(), c.Snapshot().User.LastLogin)
}

func TestSetMicronutrient(t *testing.T) {
	c, _, _ := newTestContainer(t)
	onboard(t, c)
	c.SetMicronutrient(models.NutrientIron, 8.5)
	assert.InDelta(t, 8.5, c.Snapshot().DailyStats[c.Today()].Micronutrients.Iron, 1e-9)
}

func TestRemindersReplacedWholesale(t *testing.T) {
	c, _, _ := newTestContainer(t)
	c.SetReminders([]models.Reminder{{ID: "r1", Title: "Beber água", Time: "10:00", Active: true, Type: models.ReminderWater}})
	require.Len(t, c.Snapshot().Reminders, 1)
	c.SetReminders(nil)
	assert.Empty(t, c.Snapshot().Reminders)
}

func TestMarkNotificationRead(t *testing.T) {
	c, _, _ := newTestContainer(t)
	snap := c.Snapshot()
	require.NotEmpty(t, snap.Notifications)
	id := snap.Notifications[0].ID
	require.False(t, snap.Notifications[0].Read)

	require.True(t, c.MarkNotificationRead(id))
	assert.True(t, c.Snapshot().Notifications[0].Read)
	assert.False(t, c.MarkNotificationRead("missing"))
}
