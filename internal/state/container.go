// Package state owns the single application-state aggregate and exposes the
// named action functions that transform it. Every action runs to completion
// under the container lock, then persists the snapshot and re-derives the
// goal-completion checks for today.
package state

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/calorix/calorix/internal/achievement"
	"github.com/calorix/calorix/internal/goal"
	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/notifier"
	"github.com/calorix/calorix/internal/service"
	"github.com/calorix/calorix/internal/stats"
	"github.com/calorix/calorix/internal/store"
)

const dateLayout = "2006-01-02"

// Container is the composition root for all state transitions. The state is
// only reachable through actions; Snapshot returns deep copies.
type Container struct {
	mu     sync.Mutex
	state  *models.AppState
	store  store.StateStore
	source service.IntegrationSource
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Container.
type Option func(*Container)

// WithClock fixes the container's notion of now. Tests use this to pin
// "today".
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.now = now }
}

// WithLogger replaces the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithIntegrationSource replaces the pseudo-random sync source.
func WithIntegrationSource(source service.IntegrationSource) Option {
	return func(c *Container) { c.source = source }
}

// New restores the container from the store. A missing or unreadable
// snapshot falls back to the fresh default state; load failures are never
// fatal.
func New(s store.StateStore, opts ...Option) *Container {
	c := &Container{
		store:  s,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		c.source = service.NewRandomSource(c.now().UnixNano())
	}

	loaded, err := s.Load(context.Background())
	switch {
	case err == nil:
		c.state = loaded
	case errors.Is(err, store.ErrNotFound):
		c.state = models.DefaultState(c.now())
	default:
		c.logger.Printf("failed to load state, starting fresh: %v", err)
		c.state = models.DefaultState(c.now())
	}
	return c
}

// Snapshot returns a deep copy of the current state for display.
func (c *Container) Snapshot() *models.AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Today returns the container's current ISO date.
func (c *Container) Today() string {
	return c.now().Format(dateLayout)
}

// finish runs after every mutation, still under the lock: stamp a new login
// day, re-run today's goal checks when the mutation could affect today's
// totals, then persist best-effort.
func (c *Container) finish(affectsToday bool) {
	now := c.now()
	today := now.Format(dateLayout)
	if c.state.User.LastLogin.Format(dateLayout) != today {
		c.state.User.LastLogin = now
	}
	if affectsToday {
		notifier.Check(c.state, today, now)
	}
	c.persist()
}

// persist writes the snapshot unless the user disabled local storage.
// Failure is logged and swallowed; it never breaks the transition.
func (c *Container) persist() {
	if !c.state.User.AllowLocalStorage {
		return
	}
	if err := c.store.Save(context.Background(), c.state); err != nil {
		c.logger.Printf("failed to persist state: %v", err)
	}
}

// applyProfile copies the onboarding/profile fields onto the user, leaving
// progression (points, level, badges, following) untouched.
func applyProfile(dst *models.User, src models.User) {
	dst.Name = src.Name
	dst.Age = src.Age
	dst.Gender = src.Gender
	dst.Weight = src.Weight
	dst.Height = src.Height
	dst.UnitSystem = src.UnitSystem
	dst.ActivityLevel = src.ActivityLevel
	dst.Sports = src.Sports
	dst.SportsType = src.SportsType
	dst.GoalType = src.GoalType
	dst.TargetWeight = src.TargetWeight
	dst.Deadline = src.Deadline
	dst.Conditions = src.Conditions
	dst.Allergies = src.Allergies
	dst.OtherCondition = src.OtherCondition
	dst.OtherAllergy = src.OtherAllergy
	dst.DietStyle = src.DietStyle
	dst.DietPreferences = src.DietPreferences
	dst.WaterConsumption = src.WaterConsumption
	dst.AlcoholConsumption = src.AlcoholConsumption
	dst.SleepHours = src.SleepHours
	dst.SleepQuality = src.SleepQuality
	dst.Discipline = src.Discipline
	dst.Motivation = src.Motivation
	dst.LikesNotifications = src.LikesNotifications
	dst.AllowLocalStorage = src.AllowLocalStorage
	dst.AutoPersonalization = src.AutoPersonalization
	if src.Avatar != "" {
		dst.Avatar = src.Avatar
	}
}

func (c *Container) regenerateGoal() *models.Goal {
	u := c.state.User
	return goal.Generate(u.Weight, u.Height, u.Age, u.Gender, u.ActivityLevel,
		u.Sports, u.GoalType, u.TargetWeight, u.Deadline, c.now())
}

// CompleteOnboarding stores the onboarding profile, derives the first goal
// and marks onboarding done. Returns a copy of the derived goal.
func (c *Container) CompleteOnboarding(profile models.User) models.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()

	applyProfile(&c.state.User, profile)
	c.state.User.OnboardingCompleted = true
	c.state.Goal = c.regenerateGoal()
	c.finish(true)
	return *c.state.Goal
}

// UpdateGoal replaces the goal snapshot wholesale.
func (c *Container) UpdateGoal(g models.Goal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Goal = &g
	c.finish(true)
}

// UpdateProfile applies a profile edit and recomputes the goal from the new
// biometrics. Returns a copy of the recomputed goal.
func (c *Container) UpdateProfile(profile models.User) models.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()

	applyProfile(&c.state.User, profile)
	c.state.Goal = c.regenerateGoal()
	c.finish(true)
	return *c.state.Goal
}

// AddFood logs a meal entry. Entries without a name or with non-positive
// calories are silently rejected. Returns whether the entry was accepted.
func (c *Container) AddFood(item models.FoodItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item.Name == "" || item.Calories <= 0 {
		c.logger.Printf("rejecting food entry without name or calories")
		return false
	}
	now := c.now()
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Date == "" {
		item.Date = now.Format(dateLayout)
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = now
	}

	// badge rules read the log as it was before this action
	achievement.Award(c.state, achievement.ActionMeal, achievement.PointsMeal, now)

	c.state.FoodLog = append([]models.FoodItem{item}, c.state.FoodLog...)
	stats.ApplyFoodEntry(stats.Ensure(c.state, item.Date), &item, +1)
	c.finish(true)
	return true
}

// EditFood replaces a logged entry by id. The day's micronutrient aggregate
// is deliberately left untouched; only remove+add rebuilds it.
func (c *Container) EditFood(item models.FoodItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.FoodLog {
		if c.state.FoodLog[i].ID == item.ID {
			c.state.FoodLog[i] = item
			c.finish(true)
			return true
		}
	}
	return false
}

// RemoveFood deletes a logged entry and reverses its micronutrient
// contribution on its own date.
func (c *Container) RemoveFood(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.FoodLog {
		if c.state.FoodLog[i].ID != id {
			continue
		}
		item := c.state.FoodLog[i]
		stats.ApplyFoodEntry(stats.Ensure(c.state, item.Date), &item, -1)
		c.state.FoodLog = append(c.state.FoodLog[:i], c.state.FoodLog[i+1:]...)
		c.finish(true)
		return true
	}
	return false
}

// ToggleWorkout flips a workout day's completed flag. Completing a day (not
// un-completing it) awards workout points.
func (c *Container) ToggleWorkout(dayID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.WorkoutPlan {
		if c.state.WorkoutPlan[i].ID != dayID {
			continue
		}
		completing := !c.state.WorkoutPlan[i].Completed
		if completing {
			achievement.Award(c.state, achievement.ActionWorkout, achievement.PointsWorkout, c.now())
		}
		c.state.WorkoutPlan[i].Completed = completing
		c.finish(false)
		return true
	}
	return false
}

// UpdateWorkoutDay replaces the exercise list for one day of the plan.
func (c *Container) UpdateWorkoutDay(dayID string, exercises []models.Exercise) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.WorkoutPlan {
		if c.state.WorkoutPlan[i].ID == dayID {
			c.state.WorkoutPlan[i].Exercises = exercises
			c.finish(false)
			return true
		}
	}
	return false
}

// RecordActivity adds step and burned-calorie deltas to today.
func (c *Container) RecordActivity(steps, calories int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	day := stats.Ensure(c.state, c.now().Format(dateLayout))
	stats.AddSteps(day, steps)
	stats.AddCaloriesBurned(day, calories)
	c.finish(true)
}

// AddWater adds a water delta in ml to today, clamped at 0. Positive
// increments award water points.
func (c *Container) AddWater(amount int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if amount > 0 {
		achievement.Award(c.state, achievement.ActionWater, achievement.PointsWater, now)
	}
	day := stats.Ensure(c.state, now.Format(dateLayout))
	stats.AddWater(day, amount)
	c.finish(true)
}

// SetMicronutrient overwrites one micronutrient total for today.
func (c *Container) SetMicronutrient(nutrient models.Nutrient, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	day := stats.Ensure(c.state, c.now().Format(dateLayout))
	day.Micronutrients.Set(nutrient, value)
	c.finish(true)
}

// StartFasting enters the ACTIVE fasting state, stamping the start time.
// Starting while already active restarts the window.
func (c *Container) StartFasting(mode models.FastingMode, targetHours int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.state.Fasting.IsActive = true
	c.state.Fasting.StartTime = &now
	c.state.Fasting.Mode = mode
	if targetHours > 0 {
		c.state.Fasting.TargetDuration = targetHours
	}
	c.finish(false)
}

// StopFasting returns to INACTIVE, clears the start time and appends one
// history entry. A stop without an active fast is a no-op.
func (c *Container) StopFasting() {
	c.mu.Lock()
	defer c.mu.Unlock()

	f := &c.state.Fasting
	if !f.IsActive || f.StartTime == nil {
		return
	}
	now := c.now()
	hours := now.Sub(*f.StartTime).Hours()
	f.History = append(f.History, models.FastingEntry{
		Date:      now.Format(dateLayout),
		Duration:  hours,
		Completed: hours >= float64(f.TargetDuration),
	})
	f.IsActive = false
	f.StartTime = nil
	c.finish(false)
}

// CreatePost publishes a post authored by the local user and awards post
// points. Empty content is silently rejected.
func (c *Container) CreatePost(content, image, video, category string) *models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()

	if content == "" {
		return nil
	}
	now := c.now()

	// the first-post badge checks the feed before this post lands
	achievement.Award(c.state, achievement.ActionPost, achievement.PointsPost, now)

	author := c.state.User.Name
	if author == "" {
		author = "Usuária"
	}
	avatar := c.state.User.Avatar
	if avatar == "" {
		avatar = "👩"
	}
	if category == "" {
		category = "general"
	}
	post := models.Post{
		ID:        uuid.New().String(),
		Author:    author,
		AuthorID:  models.SelfAuthorID,
		Avatar:    avatar,
		Content:   content,
		Image:     image,
		Video:     video,
		Comments:  []models.Comment{},
		Timestamp: now,
		Category:  category,
	}
	c.state.CommunityPosts = append([]models.Post{post}, c.state.CommunityPosts...)
	c.finish(false)
	return &post
}

// AddComment appends a comment to a post.
func (c *Container) AddComment(postID, content string) *models.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.CommunityPosts {
		if c.state.CommunityPosts[i].ID != postID {
			continue
		}
		author := c.state.User.Name
		if author == "" {
			author = "Eu"
		}
		avatar := c.state.User.Avatar
		if avatar == "" {
			avatar = "👩"
		}
		comment := models.Comment{
			ID:        uuid.New().String(),
			PostID:    postID,
			Author:    author,
			Avatar:    avatar,
			Content:   content,
			Timestamp: c.now(),
		}
		c.state.CommunityPosts[i].Comments = append(c.state.CommunityPosts[i].Comments, comment)
		c.state.CommunityPosts[i].CommentsCount++
		c.finish(false)
		return &comment
	}
	return nil
}

// ToggleLike flips the liked flag on a post, adjusting its like count.
func (c *Container) ToggleLike(postID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.CommunityPosts {
		if c.state.CommunityPosts[i].ID != postID {
			continue
		}
		p := &c.state.CommunityPosts[i]
		p.IsLiked = !p.IsLiked
		if p.IsLiked {
			p.Likes++
		} else {
			p.Likes--
		}
		c.finish(false)
		return true
	}
	return false
}

// ToggleSave flips the saved flag on a post.
func (c *Container) ToggleSave(postID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.CommunityPosts {
		if c.state.CommunityPosts[i].ID == postID {
			c.state.CommunityPosts[i].IsSaved = !c.state.CommunityPosts[i].IsSaved
			c.finish(false)
			return true
		}
	}
	return false
}

// ToggleFollow follows or unfollows another user.
func (c *Container) ToggleFollow(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, id := range c.state.User.Following {
		if id == userID {
			c.state.User.Following = append(c.state.User.Following[:i], c.state.User.Following[i+1:]...)
			c.finish(false)
			return
		}
	}
	c.state.User.Following = append(c.state.User.Following, userID)
	c.finish(false)
}

// SetReminders replaces the reminder list wholesale.
func (c *Container) SetReminders(reminders []models.Reminder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Reminders = reminders
	c.finish(false)
}

// ToggleIntegration flips one integration toggle.
func (c *Container) ToggleIntegration(key models.IntegrationKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Integrations.Toggle(key)
	c.finish(false)
}

// HasActiveIntegrations reports whether any integration toggle is on.
func (c *Container) HasActiveIntegrations() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Integrations.AnyActive()
}

// SyncNow pulls one sample from the integration source, adds it to today and
// stamps the last-sync time. Returns the applied deltas.
func (c *Container) SyncNow() (steps, calories int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	steps, calories = c.source.Sample()
	now := c.now()
	day := stats.Ensure(c.state, now.Format(dateLayout))
	stats.AddSteps(day, steps)
	stats.AddCaloriesBurned(day, calories)
	c.state.Integrations.LastSync = &now
	c.finish(true)
	return steps, calories
}

// MarkNotificationRead flips a notification to read.
func (c *Container) MarkNotificationRead(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.Notifications {
		if c.state.Notifications[i].ID == id {
			c.state.Notifications[i].Read = true
			c.finish(false)
			return true
		}
	}
	return false
}
