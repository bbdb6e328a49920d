package models

import "time"

// MenuItem is a dish that can be scheduled on a daily menu.
type MenuItem struct {
	ID   int64
	Name string
}

// DailyMenu is the set of dishes served on one date, per meal slot.
type DailyMenu struct {
	Date      time.Time
	Breakfast []MenuItem
	Lunch     []MenuItem
	Dinner    []MenuItem
}

// Items returns the dishes for a slot.
func (m *DailyMenu) Items(mt MealType) []MenuItem {
	switch mt {
	case MealBreakfast:
		return m.Breakfast
	case MealLunch:
		return m.Lunch
	case MealDinner:
		return m.Dinner
	}
	return nil
}

// Add appends a dish to a slot.
func (m *DailyMenu) Add(mt MealType, item MenuItem) {
	switch mt {
	case MealBreakfast:
		m.Breakfast = append(m.Breakfast, item)
	case MealLunch:
		m.Lunch = append(m.Lunch, item)
	case MealDinner:
		m.Dinner = append(m.Dinner, item)
	}
}
