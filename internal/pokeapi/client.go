// Package pokeapi is a read-only client for a PokeAPI-compatible catalog
// service. Every operation is a single round trip: no retries, no caching.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/dhulst/pokedex-tui/internal/dex"
)

const (
	// DefaultBaseURL is the public catalog endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	userAgent = "rotom-dex/0.1"

	// spriteBase anchors the deterministic image URL scheme; no network call
	// is needed to derive a species' artwork location.
	spriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
)

// FetchError marks any transport or non-2xx failure from the catalog.
type FetchError struct {
	URL    string
	Status int // 0 when the request never produced a response
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client accesses the catalog. Zero value is not usable; construct with New.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	url := c.base + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{URL: url, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{URL: url, Err: errors.Wrap(err, "execute request")}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: url, Status: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{URL: url, Err: errors.Wrap(err, "decode response")}
	}
	return nil
}

// ArtworkURL derives the official artwork location for a species index.
func ArtworkURL(index int) string {
	return fmt.Sprintf("%s/other/official-artwork/%d.png", spriteBase, index)
}

// SpriteURL derives the fallback sprite location for a species index.
func SpriteURL(index int) string {
	return fmt.Sprintf("%s/%d.png", spriteBase, index)
}

// ListSpecies fetches the ordered catalog as stubs. Index is the 1-based
// position in the canonical ordering.
func (c *Client) ListSpecies(ctx context.Context, limit int) ([]dex.Species, error) {
	var body speciesListResponse
	if err := c.get(ctx, fmt.Sprintf("/pokemon?limit=%d", limit), &body); err != nil {
		return nil, err
	}
	out := make([]dex.Species, 0, len(body.Results))
	for i, r := range body.Results {
		idx := i + 1
		out = append(out, dex.Species{
			Index:      idx,
			Name:       r.Name,
			ArtworkURL: ArtworkURL(idx),
			SpriteURL:  SpriteURL(idx),
		})
	}
	return out, nil
}

// GetDetail fetches types and measurements for one species. Type order is
// preserved as served.
func (c *Client) GetDetail(ctx context.Context, index int) (dex.Detail, error) {
	var body pokemonResponse
	if err := c.get(ctx, fmt.Sprintf("/pokemon/%d", index), &body); err != nil {
		return dex.Detail{}, err
	}
	types := make([]string, 0, len(body.Types))
	for _, t := range body.Types {
		types = append(types, t.Type.Name)
	}
	return dex.Detail{Types: types, HeightDm: body.Height, WeightDg: body.Weight}, nil
}

// GetFlavor fetches the description candidates for one species.
func (c *Client) GetFlavor(ctx context.Context, index int) ([]dex.FlavorCandidate, error) {
	var body speciesResponse
	if err := c.get(ctx, fmt.Sprintf("/pokemon-species/%d", index), &body); err != nil {
		return nil, err
	}
	out := make([]dex.FlavorCandidate, 0, len(body.FlavorTextEntries))
	for _, e := range body.FlavorTextEntries {
		out = append(out, dex.FlavorCandidate{
			Language: e.Language.Name,
			Version:  e.Version.Name,
			Text:     e.FlavorText,
		})
	}
	return out, nil
}

// GetEncounters fetches wild-encounter data for one species, flattened from
// the nested per-location/per-version source shape.
func (c *Client) GetEncounters(ctx context.Context, index int) ([]dex.EncounterRow, error) {
	var body []encounterResponse
	if err := c.get(ctx, fmt.Sprintf("/pokemon/%d/encounters", index), &body); err != nil {
		return nil, err
	}
	var out []dex.EncounterRow
	for _, e := range body {
		for _, vd := range e.VersionDetails {
			out = append(out, dex.EncounterRow{
				LocationArea: e.LocationArea.Name,
				Version:      vd.Version.Name,
			})
		}
	}
	return out, nil
}
