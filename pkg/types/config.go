// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by anything that talks to the
// Nutrislice API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "mealslice/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the Nutrislice API client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// District is the Nutrislice district slug, the subdomain of the
	// district's API host (e.g. "mydistrict" for
	// mydistrict.api.nutrislice.com).
	District string `json:"district" yaml:"district"`

	// MaxRetries is the number of retry attempts on rate-limited requests
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CacheConfig holds settings for the optional on-disk payload cache. When
// Dir is empty the cache is disabled and every run fetches from the API.
type CacheConfig struct {
	// Dir is the directory holding the cache database (e.g.
	// "~/.cache/mealslice").
	Dir string `json:"dir" yaml:"dir"`

	// SchoolTTL is how long a cached school list stays fresh (default 24h).
	SchoolTTL time.Duration `json:"school_ttl" yaml:"school_ttl"`

	// MenuTTL is how long a cached menu week stays fresh (default 6h).
	MenuTTL time.Duration `json:"menu_ttl" yaml:"menu_ttl"`
}
