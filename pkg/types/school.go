// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the mealslice CLI:
// school records, menu payloads, resolved daily menus, and stage
// configuration.
package types

// SchoolRecord identifies one school within a district as returned by the
// Nutrislice school-list endpoint.
type SchoolRecord struct {
	// Slug is the unique, lowercase, URL-safe identifier used in menu URLs
	// (e.g. "lincoln-elementary").
	Slug string `json:"slug" yaml:"slug"`

	// Name is the human-readable school name (e.g. "Lincoln Elementary").
	Name string `json:"name" yaml:"name"`
}
