// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mealslice/mealslice/pkg/types"
)

// Fetcher supplies weekly menu payloads. Satisfied by *nutrislice.Client.
type Fetcher interface {
	MenuWeek(ctx context.Context, slug string, meal types.MealType, day time.Time) (types.MenuWeek, error)
}

// DailyMenu fetches breakfast and lunch for one school and date and
// assembles the resolved menu. Fetch failures are reported as warnings on w
// and degrade to empty item lists; the result is always usable.
func DailyMenu(ctx context.Context, f Fetcher, slug string, day time.Time, entreesOnly bool, w io.Writer) types.ResolvedMenu {
	date := day.Format("2006-01-02")
	m := types.ResolvedMenu{
		Date:      date,
		DayOfWeek: day.Weekday().String(),
	}

	for _, meal := range []types.MealType{types.MealBreakfast, types.MealLunch} {
		week, err := f.MenuWeek(ctx, slug, meal, day)
		if err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
			week = types.MenuWeek{}
		}
		items := ItemsForDate(week, date, entreesOnly)
		switch meal {
		case types.MealBreakfast:
			m.Breakfast = items
		case types.MealLunch:
			m.Lunch = items
		}
	}
	return m
}

// FetchAll builds the resolved menu for every date. Dates are fetched
// concurrently but the returned slice preserves input order.
func FetchAll(ctx context.Context, f Fetcher, slug string, dates []time.Time, entreesOnly bool, w io.Writer) []types.ResolvedMenu {
	menus := make([]types.ResolvedMenu, len(dates))
	warnings := &lockedWriter{w: w}

	var wg sync.WaitGroup
	for i, day := range dates {
		wg.Add(1)
		go func(i int, day time.Time) {
			defer wg.Done()
			menus[i] = DailyMenu(ctx, f, slug, day, entreesOnly, warnings)
		}(i, day)
	}
	wg.Wait()

	return menus
}

// lockedWriter serializes warning output from concurrent date fetches.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// WeekDates returns Monday through Friday of the week containing today.
func WeekDates(today time.Time) []time.Time {
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)

	dates := make([]time.Time, 5)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}
