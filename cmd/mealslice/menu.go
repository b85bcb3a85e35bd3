// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mealslice/mealslice/internal/cache"
	"github.com/mealslice/mealslice/internal/menu"
	"github.com/mealslice/mealslice/internal/nutrislice"
	"github.com/mealslice/mealslice/internal/resolve"
	"github.com/mealslice/mealslice/pkg/types"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "mealslice/0.1"
)

var menuCmd = &cobra.Command{
	Use:   "menu [school]",
	Short: "Fetch breakfast and lunch menus for a school",
	Long: `Menu resolves a school name (exact slug, prefix, or partial match) within
the district and fetches its breakfast and lunch menus. By default it shows
today; --tomorrow, --date, and --week select other dates.`,
	Args: cobra.ExactArgs(1),
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().String("date", "", "specific date (YYYY-MM-DD)")
	menuCmd.Flags().BoolP("tomorrow", "t", false, "fetch tomorrow's menu")
	menuCmd.Flags().BoolP("week", "w", false, "fetch this week's menus (Mon-Fri)")
	menuCmd.Flags().BoolP("entrees", "e", false, "only show entree items (main dishes)")
	menuCmd.Flags().BoolP("compact", "c", false, "compact single-line output")
	menuCmd.Flags().BoolP("json", "j", false, "output as JSON")
	menuCmd.Flags().Bool("raw", false, "print the raw API response (for debugging)")
	menuCmd.Flags().String("save", "", "write the fetched menus to a YAML file")
	menuCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 10s)")
	menuCmd.Flags().Int("max-retries", 0, "retry attempts on rate-limited requests (default 3)")

	menuCmd.MarkFlagsMutuallyExclusive("date", "tomorrow", "week")
	menuCmd.MarkFlagsMutuallyExclusive("compact", "json")

	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	district, err := districtFromFlags(cmd)
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxRetries, _ := cmd.Flags().GetInt("max-retries")

	client := nutrislice.New(types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		District:   district,
		MaxRetries: maxRetries,
	})

	if dir := cacheDirFromFlags(cmd); dir != "" {
		store, err := cache.Open(types.CacheConfig{Dir: dir})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
		} else {
			defer store.Close()
			client.Cache = store
		}
	}

	ctx := context.Background()

	slug, err := resolveSchool(ctx, client, args[0])
	if err != nil {
		return err
	}

	dates, err := targetDates(cmd)
	if err != nil {
		return err
	}

	entrees, _ := cmd.Flags().GetBool("entrees")

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		return printRaw(ctx, client, slug, dates)
	}

	menus := menu.FetchAll(ctx, client, slug, dates, entrees, os.Stderr)

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := menu.WriteMenuFile(path, district, slug, entrees, menus); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved menus to %s\n", path)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return menu.FormatJSON(menus, os.Stdout)
	}
	if compact, _ := cmd.Flags().GetBool("compact"); compact {
		for _, m := range menus {
			menu.FormatCompact(m, os.Stdout)
		}
		return nil
	}
	menu.FormatTextAll(menus, os.Stdout)
	return nil
}

// resolveSchool fetches the district's school list and resolves the query.
// Ambiguous matches print their candidates to stderr before failing.
func resolveSchool(ctx context.Context, client *nutrislice.Client, query string) (string, error) {
	schools, err := client.Schools(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		schools = nil
	}

	slug, err := resolve.Resolve(query, schools)
	if err == nil {
		return slug, nil
	}

	var ambErr *resolve.AmbiguousError
	if errors.As(err, &ambErr) {
		fmt.Fprintf(os.Stderr, "Ambiguous school name %q. Did you mean one of these?\n", query)
		for _, c := range ambErr.Candidates {
			fmt.Fprintf(os.Stderr, "  %-40s (%s)\n", c.Slug, c.Name)
		}
		return "", fmt.Errorf("ambiguous school name %q", query)
	}

	fmt.Fprintf(os.Stderr, "Use 'mealslice schools --district %s' to see available schools\n", client.District())
	return "", fmt.Errorf("could not find school matching %q", query)
}

// targetDates translates the date flags into the list of dates to fetch.
func targetDates(cmd *cobra.Command) ([]time.Time, error) {
	today := time.Now()

	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: use YYYY-MM-DD", dateStr)
		}
		return []time.Time{d}, nil
	}
	if tomorrow, _ := cmd.Flags().GetBool("tomorrow"); tomorrow {
		return []time.Time{today.AddDate(0, 0, 1)}, nil
	}
	if week, _ := cmd.Flags().GetBool("week"); week {
		return menu.WeekDates(today), nil
	}
	return []time.Time{today}, nil
}

// printRaw dumps the raw lunch payload for each date.
func printRaw(ctx context.Context, client *nutrislice.Client, slug string, dates []time.Time) error {
	for _, day := range dates {
		fmt.Printf("\n=== Raw API response for %s ===\n", day.Format("2006-01-02"))
		body, err := client.RawMenuWeek(ctx, slug, types.MealLunch, day)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			continue
		}
		os.Stdout.Write(body)
		fmt.Println()
	}
	return nil
}
