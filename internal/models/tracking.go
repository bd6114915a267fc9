package models

import "time"

type WorkoutFocus string

const (
	FocusQuadriceps WorkoutFocus = "quadriceps"
	FocusPosterior  WorkoutFocus = "posterior"
	FocusGlutes     WorkoutFocus = "gluteos"
	FocusLowerBody  WorkoutFocus = "inferiores"
	FocusUpperBody  WorkoutFocus = "superiores"
	FocusCardio     WorkoutFocus = "cardio"
	FocusRest       WorkoutFocus = "descanso"
)

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

type WorkoutDay struct {
	ID        string       `json:"id"`
	DayName   string       `json:"dayName"`
	Focus     WorkoutFocus `json:"focus"`
	Completed bool         `json:"completed"`
	Exercises []Exercise   `json:"exercises"`
}

type FastingMode string

const (
	FastingRabbit FastingMode = "rabbit"
	FastingFox    FastingMode = "fox"
	FastingLion   FastingMode = "lion"
	FastingCustom FastingMode = "custom"
)

type FastingEntry struct {
	Date      string  `json:"date"`
	Duration  float64 `json:"duration"` // hours
	Completed bool    `json:"completed"`
}

// FastingState is a two-state machine: INACTIVE <-> ACTIVE. Starting stamps
// StartTime, stopping clears it and appends a history entry.
type FastingState struct {
	IsActive       bool           `json:"isActive"`
	StartTime      *time.Time     `json:"startTime"`
	TargetDuration int            `json:"targetDuration"` // hours
	Mode           FastingMode    `json:"mode"`
	History        []FastingEntry `json:"history"`
}

type ReminderType string

const (
	ReminderWater   ReminderType = "water"
	ReminderMeal    ReminderType = "meal"
	ReminderWorkout ReminderType = "workout"
)

type Reminder struct {
	ID     string       `json:"id"`
	Title  string       `json:"title"`
	Time   string       `json:"time"` // HH:mm
	Active bool         `json:"active"`
	Type   ReminderType `json:"type"`
}

type Settings struct {
	Notifications bool       `json:"notifications"`
	UnitSystem    UnitSystem `json:"unitSystem"`
}

// IntegrationKey names one of the mock health integrations.
type IntegrationKey string

const (
	IntegrationGoogleFit     IntegrationKey = "googleFit"
	IntegrationAppleHealth   IntegrationKey = "appleHealth"
	IntegrationFitbit        IntegrationKey = "fitbit"
	IntegrationSamsungHealth IntegrationKey = "samsungHealth"
	IntegrationGarmin        IntegrationKey = "garmin"
	IntegrationStrava        IntegrationKey = "strava"
	IntegrationXiaomi        IntegrationKey = "xiaomi"
	IntegrationAppleWatch    IntegrationKey = "appleWatch"
)

// Integrations holds the local mock integration toggles. No real protocol
// sits behind any of them.
type Integrations struct {
	GoogleFit     bool       `json:"googleFit"`
	AppleHealth   bool       `json:"appleHealth"`
	Fitbit        bool       `json:"fitbit"`
	SamsungHealth bool       `json:"samsungHealth"`
	Garmin        bool       `json:"garmin"`
	Strava        bool       `json:"strava"`
	Xiaomi        bool       `json:"xiaomi"`
	AppleWatch    bool       `json:"appleWatch"`
	LastSync      *time.Time `json:"lastSync,omitempty"`
}

// AnyActive reports whether at least one integration toggle is on.
func (i Integrations) AnyActive() bool {
	return i.GoogleFit || i.AppleHealth || i.Fitbit || i.SamsungHealth ||
		i.Garmin || i.Strava || i.Xiaomi || i.AppleWatch
}

// Toggle flips one integration by key. Unknown keys are ignored.
func (i *Integrations) Toggle(key IntegrationKey) {
	switch key {
	case IntegrationGoogleFit:
		i.GoogleFit = !i.GoogleFit
	case IntegrationAppleHealth:
		i.AppleHealth = !i.AppleHealth
	case IntegrationFitbit:
		i.Fitbit = !i.Fitbit
	case IntegrationSamsungHealth:
		i.SamsungHealth = !i.SamsungHealth
	case IntegrationGarmin:
		i.Garmin = !i.Garmin
	case IntegrationStrava:
		i.Strava = !i.Strava
	case IntegrationXiaomi:
		i.Xiaomi = !i.Xiaomi
	case IntegrationAppleWatch:
		i.AppleWatch = !i.AppleWatch
	}
}
