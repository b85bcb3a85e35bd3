// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"errors"
	"testing"

	"github.com/mealslice/mealslice/pkg/types"
)

func districtSchools() []types.SchoolRecord {
	return []types.SchoolRecord{
		{Slug: "lincoln-elementary", Name: "Lincoln Elementary"},
		{Slug: "washington-high-school", Name: "Washington High School"},
		{Slug: "roosevelt-middle-school", Name: "Roosevelt Middle School"},
		{Slug: "jefferson-elementary", Name: "Jefferson Elementary"},
	}
}

func TestResolveExactSlug(t *testing.T) {
	for _, s := range districtSchools() {
		got, err := Resolve(s.Slug, districtSchools())
		if err != nil {
			t.Fatalf("Resolve(%q): %v", s.Slug, err)
		}
		if got != s.Slug {
			t.Errorf("Resolve(%q) = %q, want %q", s.Slug, got, s.Slug)
		}
	}
}

func TestResolveExactSlugNormalizesCase(t *testing.T) {
	got, err := Resolve("  Lincoln-Elementary ", districtSchools())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "lincoln-elementary" {
		t.Errorf("Resolve = %q, want %q", got, "lincoln-elementary")
	}
}

func TestResolveUniquePrefix(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"lincoln", "lincoln-elementary"},
		{"wash", "washington-high-school"},
		{"roos", "roosevelt-middle-school"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := Resolve(tt.query, districtSchools())
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.query, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestResolveUniqueSlugSubstring(t *testing.T) {
	// "high" is not a prefix of any slug but appears inside exactly one.
	got, err := Resolve("high", districtSchools())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "washington-high-school" {
		t.Errorf("Resolve = %q, want %q", got, "washington-high-school")
	}
}

func TestResolveUniqueNameSubstring(t *testing.T) {
	schools := []types.SchoolRecord{
		{Slug: "pskw", Name: "Paul Sally K-8 West"},
		{Slug: "washington-high-school", Name: "Washington High School"},
	}
	got, err := Resolve("sally", schools)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "pskw" {
		t.Errorf("Resolve = %q, want %q", got, "pskw")
	}
}

func TestResolveAmbiguousPrefix(t *testing.T) {
	schools := []types.SchoolRecord{
		{Slug: "lincoln-elementary", Name: "Lincoln Elementary"},
		{Slug: "lincoln-high-school", Name: "Lincoln High School"},
	}

	_, err := Resolve("lincoln", schools)
	var ambErr *AmbiguousError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Resolve = %v, want AmbiguousError", err)
	}
	if len(ambErr.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(ambErr.Candidates))
	}
	// Candidates are sorted lexicographically by slug.
	if ambErr.Candidates[0].Slug != "lincoln-elementary" || ambErr.Candidates[1].Slug != "lincoln-high-school" {
		t.Errorf("Candidates = %v, want both lincoln schools in slug order", ambErr.Candidates)
	}
}

func TestResolveStopsAtAmbiguousStrategy(t *testing.T) {
	// Prefix is ambiguous; a later strategy (name substring) would have been
	// unique for "lincoln annex", but the cascade must not fall through.
	schools := []types.SchoolRecord{
		{Slug: "lincoln-elementary", Name: "Lincoln Elementary"},
		{Slug: "lincoln-high-school", Name: "Lincoln High School"},
		{Slug: "annex", Name: "Lincoln Annex"},
	}

	_, err := Resolve("lincoln", schools)
	var ambErr *AmbiguousError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Resolve = %v, want AmbiguousError", err)
	}
	// The candidate list is the union of prefix, slug-substring, and name
	// matches, so the annex shows up as a suggestion.
	if len(ambErr.Candidates) != 3 {
		t.Errorf("len(Candidates) = %d, want 3", len(ambErr.Candidates))
	}
}

func TestResolveSingleSchoolPrefix(t *testing.T) {
	schools := []types.SchoolRecord{{Slug: "lincoln-elementary", Name: "Lincoln Elementary"}}
	got, err := Resolve("lincoln", schools)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "lincoln-elementary" {
		t.Errorf("Resolve = %q, want %q", got, "lincoln-elementary")
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	// The empty string is a prefix of every slug: a one-school district
	// resolves, a multi-school district is ambiguous.
	single := []types.SchoolRecord{{Slug: "lincoln-elementary", Name: "Lincoln Elementary"}}
	got, err := Resolve("", single)
	if err != nil {
		t.Fatalf("Resolve on single-school district: %v", err)
	}
	if got != "lincoln-elementary" {
		t.Errorf("Resolve = %q, want %q", got, "lincoln-elementary")
	}

	_, err = Resolve("", districtSchools())
	var ambErr *AmbiguousError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Resolve on multi-school district = %v, want AmbiguousError", err)
	}
	if len(ambErr.Candidates) != len(districtSchools()) {
		t.Errorf("len(Candidates) = %d, want %d", len(ambErr.Candidates), len(districtSchools()))
	}
}

func TestResolveNoMatch(t *testing.T) {
	_, err := Resolve("hogwarts", districtSchools())
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve = %v, want ErrNoMatch", err)
	}
}

func TestResolveEmptySchoolList(t *testing.T) {
	_, err := Resolve("lincoln", nil)
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("Resolve = %v, want ErrNoMatch", err)
	}
}

func TestResolveCandidateCap(t *testing.T) {
	var schools []types.SchoolRecord
	for i := 0; i < 15; i++ {
		schools = append(schools, types.SchoolRecord{
			Slug: "school-" + string(rune('a'+i)),
			Name: "School " + string(rune('A'+i)),
		})
	}

	_, err := Resolve("school", schools)
	var ambErr *AmbiguousError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Resolve = %v, want AmbiguousError", err)
	}
	if len(ambErr.Candidates) != 10 {
		t.Errorf("len(Candidates) = %d, want cap of 10", len(ambErr.Candidates))
	}
}
