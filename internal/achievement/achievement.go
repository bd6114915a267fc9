// Package achievement maintains point and level progression and the
// one-time badge unlocks tied to milestone actions.
package achievement

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/calorix/calorix/internal/models"
)

// ActionType identifies the user action being rewarded.
type ActionType string

const (
	ActionMeal    ActionType = "meal"
	ActionWater   ActionType = "water"
	ActionWorkout ActionType = "workout"
	ActionPost    ActionType = "post"
)

// Point values per action. The calorie-goal bonus is granted by the notifier
// under ActionMeal.
const (
	PointsMeal        = 10
	PointsWater       = 5
	PointsWorkout     = 50
	PointsPost        = 20
	PointsCalorieGoal = 100
)

// PointsPerLevel is the flat level threshold: level = points/1000 + 1.
const PointsPerLevel = 1000

// LevelForPoints computes the level for a point total. Levels start at 1.
func LevelForPoints(points int) int {
	return points/PointsPerLevel + 1
}

// Unlock flips a badge to unlocked if it is still locked, stamps the unlock
// time and prepends one achievement notification. Returns true when the
// badge was newly unlocked; a second call for the same badge is a no-op, as
// is an unknown id.
func Unlock(state *models.AppState, badgeID string, now time.Time) bool {
	badge := state.User.FindBadge(badgeID)
	if badge == nil || badge.Unlocked {
		return false
	}
	badge.Unlocked = true
	unlockedAt := now
	badge.DateUnlocked = &unlockedAt

	state.Notifications = append([]models.Notification{{
		ID:        uuid.New().String(),
		Type:      models.NotificationAchievement,
		Message:   fmt.Sprintf("Você desbloqueou a medalha %s!", badge.Name),
		Timestamp: now,
	}}, state.Notifications...)
	return true
}

// Award applies a point delta, recomputes the level and evaluates the badge
// rules for the action. The badge conditions read the state as it was before
// the action itself is applied, so the container must call Award before
// mutating the log the action touches.
func Award(state *models.AppState, action ActionType, points int, now time.Time) {
	state.User.Points += points
	state.User.Level = LevelForPoints(state.User.Points)

	switch action {
	case ActionMeal:
		if len(state.FoodLog) == 0 {
			Unlock(state, models.BadgeFocused, now)
		}
	case ActionWorkout:
		if completedWorkouts(state.WorkoutPlan) == 0 {
			Unlock(state, models.BadgeFitness, now)
		}
	case ActionPost:
		if ownPosts(state.CommunityPosts) == 0 {
			Unlock(state, models.BadgeSocial, now)
		}
	}

	if state.User.Level >= 5 {
		Unlock(state, models.BadgeMuse, now)
	}
}

func completedWorkouts(plan []models.WorkoutDay) int {
	n := 0
	for i := range plan {
		if plan[i].Completed {
			n++
		}
	}
	return n
}

func ownPosts(posts []models.Post) int {
	n := 0
	for i := range posts {
		if posts[i].AuthorID == models.SelfAuthorID {
			n++
		}
	}
	return n
}
