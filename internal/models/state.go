package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AppState is the single aggregate owned by the state container. There is no
// concurrent writer; every mutation runs through a container action.
type AppState struct {
	User           User                   `json:"user"`
	Goal           *Goal                  `json:"goal"`
	FoodLog        []FoodItem             `json:"foodLog"`
	WorkoutPlan    []WorkoutDay           `json:"workoutPlan"`
	DailyStats     map[string]*DailyStats `json:"dailyStats"`
	Fasting        FastingState           `json:"fasting"`
	CommunityPosts []Post                 `json:"communityPosts"`
	Notifications  []Notification         `json:"notifications"`
	Reminders      []Reminder             `json:"reminders"`
	Settings       Settings               `json:"settings"`
	Integrations   Integrations           `json:"integrations"`
}

// Clone returns a deep copy of the state via a JSON round trip. The snapshot
// is JSON-serializable by construction, so this cannot fail for states built
// through container actions.
func (s *AppState) Clone() *AppState {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	var out AppState
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// DefaultWorkoutPlan is the seeded weekly plan for a fresh state.
func DefaultWorkoutPlan() []WorkoutDay {
	return []WorkoutDay{
		{ID: "1", DayName: "Segunda", Focus: FocusQuadriceps, Exercises: []Exercise{{Name: "Agachamento", Sets: 4, Reps: "12"}}},
		{ID: "2", DayName: "Terça", Focus: FocusUpperBody, Exercises: []Exercise{{Name: "Supino", Sets: 3, Reps: "15"}}},
		{ID: "3", DayName: "Quarta", Focus: FocusGlutes, Exercises: []Exercise{{Name: "Elev. Pélvica", Sets: 4, Reps: "12"}}},
		{ID: "4", DayName: "Quinta", Focus: FocusPosterior, Exercises: []Exercise{{Name: "Stiff", Sets: 4, Reps: "12"}}},
		{ID: "5", DayName: "Sexta", Focus: FocusLowerBody, Exercises: []Exercise{{Name: "Afundo", Sets: 3, Reps: "12"}}},
		{ID: "6", DayName: "Sábado", Focus: FocusCardio, Exercises: []Exercise{{Name: "Esteira", Sets: 1, Reps: "30min"}}},
		{ID: "7", DayName: "Domingo", Focus: FocusRest, Completed: true, Exercises: []Exercise{}},
	}
}

func seedPosts(now time.Time) []Post {
	return []Post{
		{
			ID: uuid.New().String(), Author: "Ana Clara", AuthorID: "u1", Avatar: "👱‍♀️",
			Content:       "Meninas, consegui bater minha meta de jejum de 16h hoje! Estou muito feliz! 💪",
			Likes:         12,
			CommentsCount: 1,
			Comments: []Comment{
				{ID: uuid.New().String(), Author: "Mariana", Avatar: "👩", Content: "Parabéns!!", Timestamp: now},
			},
			Timestamp: now, Category: "motivation",
		},
		{
			ID: uuid.New().String(), Author: "Beatriz Costa", AuthorID: "u2", Avatar: "👩‍🦱",
			Content:   "Alguém tem receita de panqueca fit sem banana? 🥞",
			Likes:     5,
			Comments:  []Comment{},
			Timestamp: now.Add(-1 * time.Hour), IsLiked: true, Category: "recipes",
		},
		{
			ID: uuid.New().String(), Author: "Carla Dias", AuthorID: "u3", Avatar: "👩‍🦰",
			Content:       "Dica rápida: Bebam 500ml de água logo ao acordar. Ajuda muito a despertar e acelerar o metabolismo! 💧",
			Likes:         25,
			CommentsCount: 3,
			Comments:      []Comment{},
			Timestamp:     now.Add(-2 * time.Hour), IsSaved: true, Category: "tips",
		},
	}
}

func seedNotifications(now time.Time) []Notification {
	return []Notification{
		{ID: uuid.New().String(), Type: NotificationLike, Message: "Beatriz curtiu seu post.", Timestamp: now.Add(-100 * time.Second), FromUser: "Beatriz Costa"},
		{ID: uuid.New().String(), Type: NotificationSystem, Message: "Bem-vinda à comunidade!", Timestamp: now.Add(-500 * time.Second), Read: true},
	}
}

// DefaultState builds the fresh state used before onboarding and as the
// fallback when the persisted snapshot is missing or unreadable.
func DefaultState(now time.Time) *AppState {
	return &AppState{
		User: User{
			Gender:              GenderFemale,
			UnitSystem:          UnitMetric,
			ActivityLevel:       ActivitySedentary,
			GoalType:            GoalLoseWeight,
			Conditions:          []string{},
			Allergies:           []string{},
			DietStyle:           DietNormal,
			WaterConsumption:    "medium",
			AlcoholConsumption:  "sometimes",
			SleepHours:          Sleep6To7,
			SleepQuality:        SleepAverage,
			Discipline:          DisciplineMedium,
			Motivation:          []string{},
			LikesNotifications:  true,
			AllowLocalStorage:   true,
			AutoPersonalization: true,
			Points:              0,
			Level:               1,
			Badges:              InitialBadges(),
			LastLogin:           now,
			Following:           []string{},
		},
		FoodLog:     []FoodItem{},
		WorkoutPlan: DefaultWorkoutPlan(),
		DailyStats:  map[string]*DailyStats{},
		Fasting: FastingState{
			TargetDuration: 12,
			Mode:           FastingRabbit,
			History:        []FastingEntry{},
		},
		CommunityPosts: seedPosts(now),
		Notifications:  seedNotifications(now),
		Reminders:      []Reminder{},
		Settings:       Settings{Notifications: true, UnitSystem: UnitMetric},
	}
}
