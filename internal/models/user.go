package models

import "time"

type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

type Gender string

const (
	GenderMale          Gender = "male"
	GenderFemale        Gender = "female"
	GenderNotSaid       Gender = "prefer_not_to_say"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type GoalType string

const (
	GoalLoseWeight         GoalType = "lose_weight"
	GoalGainMuscle         GoalType = "gain_muscle"
	GoalDefine             GoalType = "define"
	GoalCondition          GoalType = "condition"
	GoalMaintain           GoalType = "maintain"
	GoalReduceMeasurements GoalType = "reduce_measurements"
	GoalHealthyLifestyle   GoalType = "healthy_lifestyle"
)

type DietStyle string

const (
	DietNormal      DietStyle = "normal"
	DietVegetarian  DietStyle = "vegetarian"
	DietVegan       DietStyle = "vegan"
	DietLowCarb     DietStyle = "low_carb"
	DietHighProtein DietStyle = "high_protein"
	DietFlexible    DietStyle = "flexible"
)

type SleepDuration string

const (
	SleepLess5 SleepDuration = "less_5"
	Sleep5To6  SleepDuration = "5_6"
	Sleep6To7  SleepDuration = "6_7"
	Sleep7To8  SleepDuration = "7_8"
	SleepMore8 SleepDuration = "more_8"
)

type SleepQuality string

const (
	SleepBad     SleepQuality = "bad"
	SleepAverage SleepQuality = "average"
	SleepGood    SleepQuality = "good"
)

type DisciplineLevel string

const (
	DisciplineLow    DisciplineLevel = "low"
	DisciplineMedium DisciplineLevel = "medium"
	DisciplineHigh   DisciplineLevel = "high"
)

// User is the single local account: onboarding profile plus progression.
// There is exactly one per AppState and it is never deleted.
type User struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	UnitSystem    UnitSystem    `json:"unitSystem"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Sports        bool          `json:"sports"`
	SportsType    string        `json:"sportsType,omitempty"`

	GoalType     GoalType `json:"goalType"`
	TargetWeight float64  `json:"targetWeight,omitempty"`
	Deadline     int      `json:"deadline,omitempty"` // days

	Conditions     []string `json:"conditions"`
	Allergies      []string `json:"allergies"`
	OtherCondition string   `json:"otherCondition,omitempty"`
	OtherAllergy   string   `json:"otherAllergy,omitempty"`

	DietStyle          DietStyle `json:"dietStyle"`
	DietPreferences    []string  `json:"dietPreferences,omitempty"`
	WaterConsumption   string    `json:"waterConsumption"`
	AlcoholConsumption string    `json:"alcoholConsumption"`

	SleepHours   SleepDuration `json:"sleepHours"`
	SleepQuality SleepQuality  `json:"sleepQuality"`

	Discipline         DisciplineLevel `json:"discipline"`
	Motivation         []string        `json:"motivation"`
	LikesNotifications bool            `json:"likesNotifications"`

	OnboardingCompleted bool `json:"onboardingCompleted"`
	AllowLocalStorage   bool `json:"allowLocalStorage"`
	AutoPersonalization bool `json:"autoPersonalization"`

	Avatar    string    `json:"avatar,omitempty"`
	Points    int       `json:"points"`
	Level     int       `json:"level"`
	Badges    []Badge   `json:"badges"`
	LastLogin time.Time `json:"lastLogin"`
	Following []string  `json:"following"`
}

// FindBadge returns the badge with the given id, or nil if the catalog does
// not contain it.
func (u *User) FindBadge(id string) *Badge {
	for i := range u.Badges {
		if u.Badges[i].ID == id {
			return &u.Badges[i]
		}
	}
	return nil
}
