package models

import "time"

// Micronutrients tracks the five micronutrients the app surfaces, all in mg.
type Micronutrients struct {
	VitaminC  float64 `json:"vitaminC"`
	Iron      float64 `json:"iron"`
	Calcium   float64 `json:"calcium"`
	Potassium float64 `json:"potassium"`
	Magnesium float64 `json:"magnesium"`
}

// Nutrient is an enum key for type-safe per-nutrient updates.
type Nutrient string

const (
	NutrientVitaminC  Nutrient = "vitaminC"
	NutrientIron      Nutrient = "iron"
	NutrientCalcium   Nutrient = "calcium"
	NutrientPotassium Nutrient = "potassium"
	NutrientMagnesium Nutrient = "magnesium"
)

// Set overwrites a single component. Unknown keys are ignored.
func (m *Micronutrients) Set(n Nutrient, value float64) {
	switch n {
	case NutrientVitaminC:
		m.VitaminC = value
	case NutrientIron:
		m.Iron = value
	case NutrientCalcium:
		m.Calcium = value
	case NutrientPotassium:
		m.Potassium = value
	case NutrientMagnesium:
		m.Magnesium = value
	}
}

// Macros holds daily macro targets in grams.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
}

// Goal is the derived daily-target snapshot. It is replaced wholesale when
// biometrics or the objective change, never merged.
type Goal struct {
	CurrentWeight float64   `json:"currentWeight"`
	TargetWeight  float64   `json:"targetWeight"`
	Days          int       `json:"days"`
	Type          GoalType  `json:"type"`
	StartDate     time.Time `json:"startDate"`
	DailyCalories int       `json:"dailyCalories"`
	DailyWater    int       `json:"dailyWater"` // ml
	Macros        Macros    `json:"macros"`
}

type MealType string

const (
	MealBreakfast MealType = "cafe"
	MealLunch     MealType = "almoco"
	MealDinner    MealType = "jantar"
	MealSnack     MealType = "lanche"
)

type Feeling string

const (
	FeelingSatisfied    Feeling = "satisfeita"
	FeelingNotSatisfied Feeling = "nao_satisfez"
	FeelingBad          Feeling = "mal"
	FeelingRegret       Feeling = "arrependida"
)

// FoodItem is one logged meal entry. Immutable once created except through an
// explicit edit; owned by the food log list.
type FoodItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Calories       int             `json:"calories"`
	Protein        float64         `json:"protein"`
	Carbs          float64         `json:"carbs"`
	Fat            float64         `json:"fat"`
	Portion        string          `json:"portion,omitempty"`
	Feeling        Feeling         `json:"feeling,omitempty"`
	Date           string          `json:"date"` // ISO date, matches DailyStats key
	MealType       MealType        `json:"mealType"`
	Timestamp      time.Time       `json:"timestamp"`
	Micronutrients *Micronutrients `json:"micronutrients,omitempty"`
}

// NotifiedGoals records which per-day goal notifications already fired. The
// flags reset naturally because every date owns its own DailyStats record.
type NotifiedGoals struct {
	Calories bool `json:"calories"`
	Protein  bool `json:"protein"`
	Water    bool `json:"water"`
}

// DailyStats is the per-calendar-date aggregate, keyed by ISO date string in
// AppState. Created lazily on first write for the date.
type DailyStats struct {
	Date           string         `json:"date"`
	Steps          int            `json:"steps"`
	CaloriesBurned int            `json:"caloriesBurned"`
	WaterIntake    int            `json:"waterIntake"` // ml
	FastingHours   float64        `json:"fastingHours"`
	Mood           string         `json:"mood,omitempty"`
	Micronutrients Micronutrients `json:"micronutrients"`
	NotifiedGoals  NotifiedGoals  `json:"notifiedGoals"`
}
