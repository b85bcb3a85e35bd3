// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu turns raw weekly payloads into deduplicated item lists and
// assembled daily menus.
package menu

import (
	"strings"

	"github.com/mealslice/mealslice/pkg/types"
)

// ExtractItems walks a day's menu in order and returns the food item names,
// deduplicated by exact name with first occurrence winning. Section titles
// are never emitted. With entreesOnly set, only items under a section whose
// uppercased title contains "ENTREE" are collected.
func ExtractItems(day types.MenuDay, entreesOnly bool) []string {
	return appendItems([]string{}, make(map[string]bool), day, entreesOnly)
}

// ItemsForDate extracts items from every day in the week payload whose date
// matches target, sharing one dedup set across matching days. A week with
// no matching day yields an empty list, not an error.
func ItemsForDate(week types.MenuWeek, target string, entreesOnly bool) []string {
	items := []string{}
	seen := make(map[string]bool)
	for _, day := range week.Days {
		if day.Date == target {
			items = appendItems(items, seen, day, entreesOnly)
		}
	}
	return items
}

func appendItems(items []string, seen map[string]bool, day types.MenuDay, entreesOnly bool) []string {
	inEntreeSection := false
	for _, item := range day.Items {
		if item.IsSectionTitle {
			inEntreeSection = strings.Contains(strings.ToUpper(item.Text), "ENTREE")
			continue
		}
		if entreesOnly && !inEntreeSection {
			continue
		}
		if item.Food == "" || seen[item.Food] {
			continue
		}
		seen[item.Food] = true
		items = append(items, item.Food)
	}
	return items
}
