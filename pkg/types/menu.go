// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MealType selects which menu a fetch targets.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
)

// MenuItem is one entry in a day's menu. Entries are either section titles
// or food items; a section title scopes every following food item until the
// next title.
type MenuItem struct {
	// IsSectionTitle distinguishes section headers from food items.
	IsSectionTitle bool `json:"is_section_title" yaml:"is_section_title"`

	// Text is the section title text. Set only for section titles.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Food is the food name. Set only for food items; may be empty when the
	// API returns a placeholder row.
	Food string `json:"food,omitempty" yaml:"food,omitempty"`
}

// MenuDay holds the ordered menu items for a single calendar date. Item
// order is significant.
type MenuDay struct {
	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date" yaml:"date"`

	// Items is the day's menu in API order.
	Items []MenuItem `json:"items" yaml:"items"`
}

// MenuWeek is the decoded weekly payload for one school and meal type.
// A failed fetch decodes to a week with zero days.
type MenuWeek struct {
	Days []MenuDay `json:"days" yaml:"days"`
}

// ResolvedMenu is the assembled breakfast and lunch item lists for one
// school on one date. It is constructed per request and never persisted.
type ResolvedMenu struct {
	// Date is the calendar date in YYYY-MM-DD form.
	Date string `json:"date" yaml:"date"`

	// DayOfWeek is the English weekday name (e.g. "Monday").
	DayOfWeek string `json:"day_of_week" yaml:"day_of_week"`

	// Breakfast lists deduplicated breakfast item names in menu order.
	Breakfast []string `json:"breakfast" yaml:"breakfast"`

	// Lunch lists deduplicated lunch item names in menu order.
	Lunch []string `json:"lunch" yaml:"lunch"`
}
