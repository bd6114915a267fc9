// Package stats folds food entries and manual updates into per-day records
// and derives display totals from the food log.
package stats

import "github.com/calorix/calorix/internal/models"

// Ensure returns the DailyStats record for the date, creating it lazily on
// first use.
func Ensure(state *models.AppState, date string) *models.DailyStats {
	if state.DailyStats == nil {
		state.DailyStats = map[string]*models.DailyStats{}
	}
	day, ok := state.DailyStats[date]
	if !ok {
		day = &models.DailyStats{Date: date}
		state.DailyStats[date] = day
	}
	return day
}

func applyComponent(total *float64, contribution float64, sign int) {
	*total += float64(sign) * contribution
	if *total < 0 {
		*total = 0
	}
}

// ApplyFoodEntry adds (sign=+1) or reverses (sign=-1) an entry's
// micronutrient contributions on the day. Every component is floored at 0 so
// partial data or rounding cannot drive a total negative.
func ApplyFoodEntry(day *models.DailyStats, item *models.FoodItem, sign int) {
	if item.Micronutrients == nil {
		return
	}
	m := &day.Micronutrients
	applyComponent(&m.VitaminC, item.Micronutrients.VitaminC, sign)
	applyComponent(&m.Iron, item.Micronutrients.Iron, sign)
	applyComponent(&m.Calcium, item.Micronutrients.Calcium, sign)
	applyComponent(&m.Potassium, item.Micronutrients.Potassium, sign)
	applyComponent(&m.Magnesium, item.Micronutrients.Magnesium, sign)
}

// AddSteps adds a step delta to the day.
func AddSteps(day *models.DailyStats, delta int) {
	day.Steps += delta
}

// AddCaloriesBurned adds a burned-calorie delta to the day.
func AddCaloriesBurned(day *models.DailyStats, delta int) {
	day.CaloriesBurned += delta
}

// AddWater adds a water delta in ml, clamping the result at 0 on decrement.
func AddWater(day *models.DailyStats, delta int) {
	day.WaterIntake += delta
	if day.WaterIntake < 0 {
		day.WaterIntake = 0
	}
}

// Totals are the derived calorie/macro sums for one date. They are computed
// on demand from the food log and never stored, so they stay consistent
// under add, edit and remove.
type Totals struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ConsumedTotals sums all food-log entries whose date matches.
func ConsumedTotals(foodLog []models.FoodItem, date string) Totals {
	var t Totals
	for i := range foodLog {
		if foodLog[i].Date != date {
			continue
		}
		t.Calories += foodLog[i].Calories
		t.Protein += foodLog[i].Protein
		t.Carbs += foodLog[i].Carbs
		t.Fat += foodLog[i].Fat
	}
	return t
}
