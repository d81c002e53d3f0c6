package pantry

import "time"

// Meal is the meal of the day a suggestion is aimed at.
type Meal string

// Meal constants.
const (
	Breakfast Meal = "Breakfast"
	Lunch     Meal = "Lunch"
	Dinner    Meal = "Dinner"
)

// MealAt returns the meal for the given local time: breakfast from 5 to 11,
// lunch from 11 to 16, dinner otherwise.
func MealAt(t time.Time) Meal {
	switch h := t.Hour(); {
	case h >= 5 && h < 11:
		return Breakfast
	case h >= 11 && h < 16:
		return Lunch
	default:
		return Dinner
	}
}

// Greeting returns the banner shown when the pantry is opened.
func Greeting(m Meal) string {
	switch m {
	case Breakfast:
		return "Good Morning! Time for Breakfast."
	case Lunch:
		return "Good Afternoon! Thinking about Lunch?"
	default:
		return "Good Evening! Let's make Dinner."
	}
}
