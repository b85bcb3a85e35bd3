// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mealslice/mealslice/pkg/types"
)

// FormatText writes one resolved menu as a readable block.
func FormatText(m types.ResolvedMenu, w io.Writer) {
	fmt.Fprintf(w, "📅 %s, %s\n\n", m.DayOfWeek, m.Date)

	writeMeal(w, "🥣 Breakfast", m.Breakfast)
	fmt.Fprintln(w)
	writeMeal(w, "🍽️  Lunch", m.Lunch)
}

func writeMeal(w io.Writer, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "%s: No menu available\n", label)
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(w, "   • %s\n", item)
	}
}

// FormatCompact writes one resolved menu as a single line, truncating each
// meal to its first three items.
func FormatCompact(m types.ResolvedMenu, w io.Writer) {
	fmt.Fprintf(w, "%s: 🥣 %s | 🍽️ %s\n", m.DayOfWeek, compactMeal(m.Breakfast), compactMeal(m.Lunch))
}

func compactMeal(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	shown := items
	if len(shown) > 3 {
		shown = shown[:3]
	}
	s := strings.Join(shown, ", ")
	if extra := len(items) - 3; extra > 0 {
		s += fmt.Sprintf(" (+%d more)", extra)
	}
	return s
}

// FormatJSON writes the menus as indented JSON: a single object for one
// date, an array for several.
func FormatJSON(menus []types.ResolvedMenu, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(menus) == 1 {
		return enc.Encode(menus[0])
	}
	return enc.Encode(menus)
}

// FormatTextAll writes every menu, separating consecutive days with a rule.
func FormatTextAll(menus []types.ResolvedMenu, w io.Writer) {
	for i, m := range menus {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("─", 40))
		}
		FormatText(m, w)
	}
}
