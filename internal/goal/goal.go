// Package goal computes daily calorie, macro and hydration targets from the
// user's biometrics and objective.
package goal

import (
	"math"
	"time"

	"github.com/calorix/calorix/internal/models"
)

// MinDailyCalories is the safety floor applied after every objective
// adjustment.
const MinDailyCalories = 1200

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

// CalculateBMR returns the basal metabolic rate via the Mifflin-St Jeor
// equation. Anything other than male uses the female additive term.
func CalculateBMR(weightKg, heightCm float64, age int, gender models.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

// CalculateTDEE scales the BMR by the activity multiplier and rounds to the
// nearest kcal. Unrecognized levels fall back to sedentary.
func CalculateTDEE(bmr float64, activity models.ActivityLevel) int {
	mult, ok := activityMultipliers[activity]
	if !ok {
		mult = 1.2
	}
	return int(math.Round(bmr * mult))
}

// CalculateWaterGoal returns the daily hydration target in ml: 35 ml per kg
// of body weight, plus a flat 500 ml when the user practices sports.
func CalculateWaterGoal(weightKg float64, sports bool) int {
	water := weightKg * 35
	if sports {
		water += 500
	}
	return int(math.Round(water))
}

func splitFor(goalType models.GoalType) macroSplit {
	switch goalType {
	case models.GoalLoseWeight, models.GoalReduceMeasurements:
		return macroSplit{protein: 0.35, carbs: 0.35, fat: 0.30}
	case models.GoalDefine, models.GoalCondition:
		return macroSplit{protein: 0.40, carbs: 0.35, fat: 0.25}
	case models.GoalGainMuscle:
		return macroSplit{protein: 0.30, carbs: 0.50, fat: 0.20}
	default:
		return macroSplit{protein: 0.30, carbs: 0.40, fat: 0.30}
	}
}

func calorieAdjustment(goalType models.GoalType) int {
	switch goalType {
	case models.GoalLoseWeight, models.GoalReduceMeasurements:
		return -500
	case models.GoalDefine, models.GoalCondition:
		return -250
	case models.GoalGainMuscle:
		return +300
	default:
		return 0
	}
}

// Generate composes a full Goal snapshot. Inputs are trusted; callers
// validate positivity upstream. targetWeight and deadlineDays of zero take
// the defaults (current weight, 60 days).
func Generate(weightKg, heightCm float64, age int, gender models.Gender,
	activity models.ActivityLevel, sports bool, goalType models.GoalType,
	targetWeight float64, deadlineDays int, now time.Time) *models.Goal {

	bmr := CalculateBMR(weightKg, heightCm, age, gender)
	tdee := CalculateTDEE(bmr, activity)

	dailyCalories := tdee + calorieAdjustment(goalType)
	if dailyCalories < MinDailyCalories {
		dailyCalories = MinDailyCalories
	}

	split := splitFor(goalType)

	if targetWeight == 0 {
		targetWeight = weightKg
	}
	if deadlineDays == 0 {
		deadlineDays = 60
	}

	cals := float64(dailyCalories)
	return &models.Goal{
		CurrentWeight: weightKg,
		TargetWeight:  targetWeight,
		Days:          deadlineDays,
		Type:          goalType,
		StartDate:     now,
		DailyCalories: dailyCalories,
		DailyWater:    CalculateWaterGoal(weightKg, sports),
		Macros: models.Macros{
			Protein: int(math.Round(cals * split.protein / 4)),
			Carbs:   int(math.Round(cals * split.carbs / 4)),
			Fat:     int(math.Round(cals * split.fat / 9)),
		},
	}
}
