// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mealslice/mealslice/internal/cache"
	"github.com/mealslice/mealslice/internal/nutrislice"
	"github.com/mealslice/mealslice/pkg/types"
)

var schoolsCmd = &cobra.Command{
	Use:   "schools",
	Short: "List the schools in a district",
	Long: `Schools fetches the district's school list and prints each school's slug
and display name, grouped into high, middle, and elementary schools by slug
pattern. Slugs are what the menu command resolves against.`,
	RunE: runSchools,
}

func init() {
	schoolsCmd.Flags().BoolP("json", "j", false, "output the school list as JSON")

	rootCmd.AddCommand(schoolsCmd)
}

func runSchools(cmd *cobra.Command, args []string) error {
	district, err := districtFromFlags(cmd)
	if err != nil {
		return err
	}

	client := nutrislice.New(types.ClientConfig{District: district})

	if dir := cacheDirFromFlags(cmd); dir != "" {
		store, err := cache.Open(types.CacheConfig{Dir: dir})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
		} else {
			defer store.Close()
			client.Cache = store
		}
	}

	schools, err := client.Schools(context.Background())
	if err != nil {
		return err
	}
	if len(schools) == 0 {
		return fmt.Errorf("no schools found for district %q: check that the district slug is correct", district)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(schools)
	}

	fmt.Printf("Schools in %q (%d total):\n\n", district, len(schools))

	sort.Slice(schools, func(i, j int) bool { return schools[i].Name < schools[j].Name })

	groups := map[string][]types.SchoolRecord{}
	for _, s := range schools {
		groups[schoolLevel(s.Slug)] = append(groups[schoolLevel(s.Slug)], s)
	}
	for _, level := range []string{"HIGH SCHOOLS", "MIDDLE SCHOOLS", "ELEMENTARY SCHOOLS", "OTHER"} {
		printGroup(level, groups[level])
	}
	return nil
}

// schoolLevel buckets a school by its slug pattern.
func schoolLevel(slug string) string {
	switch {
	case strings.Contains(slug, "high-school"):
		return "HIGH SCHOOLS"
	case strings.Contains(slug, "middle-school"):
		return "MIDDLE SCHOOLS"
	case strings.Contains(slug, "elementary"):
		return "ELEMENTARY SCHOOLS"
	default:
		return "OTHER"
	}
}

func printGroup(title string, schools []types.SchoolRecord) {
	if len(schools) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, s := range schools {
		fmt.Printf("  %-45s %s\n", s.Slug, s.Name)
	}
	fmt.Println()
}
