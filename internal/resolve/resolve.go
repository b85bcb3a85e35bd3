// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve maps a free-text school query to a district slug.
package resolve

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mealslice/mealslice/pkg/types"
)

// ErrNoMatch is returned when no school matches the query at all.
var ErrNoMatch = errors.New("no matching school")

// maxCandidates caps how many suggestions an AmbiguousError carries.
const maxCandidates = 10

// Candidate is one suggested school for an ambiguous query.
type Candidate struct {
	Slug string
	Name string
}

// AmbiguousError reports a query that matched more than one school. It
// carries up to maxCandidates suggestions sorted lexicographically by slug.
type AmbiguousError struct {
	Query      string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous school name %q: %d candidates", e.Query, len(e.Candidates))
}

// matchFunc is one resolution strategy: it returns every school the query
// matches under that strategy.
type matchFunc func(query string, schools []types.SchoolRecord) []types.SchoolRecord

// Resolve maps query to a school slug using a cascade of strategies:
// exact slug match, slug prefix, slug substring, then name substring
// (case-insensitive). The cascade stops at the first strategy yielding
// exactly one match. A strategy yielding more than one match also stops the
// cascade — it does not fall through even if a later strategy would have
// been unique — and produces an AmbiguousError listing the union of the
// prefix, slug-substring, and name-substring match sets.
func Resolve(query string, schools []types.SchoolRecord) (string, error) {
	if len(schools) == 0 {
		return "", ErrNoMatch
	}

	q := strings.ToLower(strings.TrimSpace(query))

	for _, s := range schools {
		if s.Slug == q {
			return s.Slug, nil
		}
	}

	strategies := []matchFunc{matchPrefix, matchSlugSubstring, matchNameSubstring}
	for _, strategy := range strategies {
		matches := strategy(q, schools)
		if len(matches) == 1 {
			return matches[0].Slug, nil
		}
		if len(matches) > 1 {
			return "", ambiguous(query, q, schools)
		}
	}

	return "", ErrNoMatch
}

func matchPrefix(q string, schools []types.SchoolRecord) []types.SchoolRecord {
	var out []types.SchoolRecord
	for _, s := range schools {
		if strings.HasPrefix(s.Slug, q) {
			out = append(out, s)
		}
	}
	return out
}

func matchSlugSubstring(q string, schools []types.SchoolRecord) []types.SchoolRecord {
	var out []types.SchoolRecord
	for _, s := range schools {
		if strings.Contains(s.Slug, q) {
			out = append(out, s)
		}
	}
	return out
}

func matchNameSubstring(q string, schools []types.SchoolRecord) []types.SchoolRecord {
	var out []types.SchoolRecord
	for _, s := range schools {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
		}
	}
	return out
}

// ambiguous builds an AmbiguousError from the union of all non-exact match
// sets, deduplicated by slug, sorted, and capped at maxCandidates.
func ambiguous(query, q string, schools []types.SchoolRecord) error {
	seen := make(map[string]bool)
	var candidates []Candidate
	for _, strategy := range []matchFunc{matchPrefix, matchSlugSubstring, matchNameSubstring} {
		for _, s := range strategy(q, schools) {
			if seen[s.Slug] {
				continue
			}
			seen[s.Slug] = true
			candidates = append(candidates, Candidate{Slug: s.Slug, Name: s.Name})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Slug < candidates[j].Slug
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return &AmbiguousError{Query: query, Candidates: candidates}
}
