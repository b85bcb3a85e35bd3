// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nutrislice fetches school lists and weekly menu payloads from a
// district's Nutrislice API.
package nutrislice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mealslice/mealslice/internal/httputil"
	"github.com/mealslice/mealslice/pkg/types"
)

// apiBase returns the API origin for a district. Declared as a var so tests
// can substitute an httptest server.
var apiBase = func(district string) string {
	return "https://" + district + ".api.nutrislice.com"
}

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "mealslice/0.1"
)

// Cache is an optional read-through payload cache. A nil Cache disables
// caching; put failures are reported as warnings, never as fetch errors.
type Cache interface {
	GetSchools(district string) ([]types.SchoolRecord, bool)
	PutSchools(district string, schools []types.SchoolRecord) error
	GetMenuWeek(district, slug, meal, date string) (types.MenuWeek, bool)
	PutMenuWeek(district, slug, meal, date string, week types.MenuWeek) error
}

// Client fetches payloads for a single district. The school list is
// memoized for the lifetime of the client, so repeated resolution within a
// run hits the API at most once.
type Client struct {
	cfg        types.ClientConfig
	httpClient *http.Client

	// Cache, when non-nil, is consulted before the API and updated after
	// successful fetches.
	Cache Cache

	schools        []types.SchoolRecord
	schoolsFetched bool
}

// New builds a client for cfg.District, filling in timeout and User-Agent
// defaults.
func New(cfg types.ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// District returns the district slug this client is bound to.
func (c *Client) District() string {
	return c.cfg.District
}

// Schools returns the district's school list. The list is fetched at most
// once per client; later calls return the memoized copy.
func (c *Client) Schools(ctx context.Context) ([]types.SchoolRecord, error) {
	if c.schoolsFetched {
		return c.schools, nil
	}

	if c.Cache != nil {
		if schools, ok := c.Cache.GetSchools(c.cfg.District); ok {
			c.schools = schools
			c.schoolsFetched = true
			return schools, nil
		}
	}

	url := apiBase(c.cfg.District) + "/menu/api/schools"
	var wire []schoolJSON
	if err := c.getJSON(ctx, url, &wire); err != nil {
		return nil, fmt.Errorf("fetching schools for district %q: %w", c.cfg.District, err)
	}

	schools := make([]types.SchoolRecord, 0, len(wire))
	for _, s := range wire {
		schools = append(schools, types.SchoolRecord{Slug: s.Slug, Name: s.Name})
	}

	c.schools = schools
	c.schoolsFetched = true

	if c.Cache != nil {
		if err := c.Cache.PutSchools(c.cfg.District, schools); err != nil {
			fmt.Fprintf(os.Stderr, "warning: caching school list: %v\n", err)
		}
	}
	return schools, nil
}

// MenuWeek fetches the weekly menu payload covering day for one school and
// meal type. The API returns the whole calendar week containing day.
func (c *Client) MenuWeek(ctx context.Context, slug string, meal types.MealType, day time.Time) (types.MenuWeek, error) {
	date := day.Format("2006-01-02")

	if c.Cache != nil {
		if week, ok := c.Cache.GetMenuWeek(c.cfg.District, slug, string(meal), date); ok {
			return week, nil
		}
	}

	url := fmt.Sprintf("%s/menu/api/weeks/school/%s/menu-type/%s/%s/",
		apiBase(c.cfg.District), slug, meal, day.Format("2006/01/02"))

	var wire weekJSON
	if err := c.getJSON(ctx, url, &wire); err != nil {
		return types.MenuWeek{}, fmt.Errorf("fetching %s menu for %s: %w", meal, slug, err)
	}

	week := decodeWeek(wire)

	if c.Cache != nil {
		if err := c.Cache.PutMenuWeek(c.cfg.District, slug, string(meal), date, week); err != nil {
			fmt.Fprintf(os.Stderr, "warning: caching menu week: %v\n", err)
		}
	}
	return week, nil
}

// RawMenuWeek fetches the weekly payload and returns the undecoded body.
// Used by the --raw debugging flag; never cached.
func (c *Client) RawMenuWeek(ctx context.Context, slug string, meal types.MealType, day time.Time) ([]byte, error) {
	url := fmt.Sprintf("%s/menu/api/weeks/school/%s/menu-type/%s/%s/",
		apiBase(c.cfg.District), slug, meal, day.Format("2006/01/02"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrislice API returned HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// getJSON performs a GET with retry on 429 and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nutrislice API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing nutrislice response: %w", err)
	}
	return nil
}

// decodeWeek maps the wire payload into the shared menu types. Placeholder
// rows with neither a title nor a food survive as empty food items; the
// extractor skips them.
func decodeWeek(wire weekJSON) types.MenuWeek {
	week := types.MenuWeek{}
	for _, d := range wire.Days {
		day := types.MenuDay{Date: d.Date}
		for _, item := range d.MenuItems {
			mi := types.MenuItem{
				IsSectionTitle: item.IsSectionTitle,
				Text:           item.Text,
			}
			if item.Food != nil {
				mi.Food = item.Food.Name
			}
			day.Items = append(day.Items, mi)
		}
		week.Days = append(week.Days, day)
	}
	return week
}

// Nutrislice API JSON structures.
type schoolJSON struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type weekJSON struct {
	Days []dayJSON `json:"days"`
}

type dayJSON struct {
	Date      string         `json:"date"`
	MenuItems []menuItemJSON `json:"menu_items"`
}

type menuItemJSON struct {
	IsSectionTitle bool      `json:"is_section_title"`
	Text           string    `json:"text"`
	Food           *foodJSON `json:"food"`
}

type foodJSON struct {
	Name string `json:"name"`
}
