package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const mapboxBase = "https://api.mapbox.com/geocoding/v5/mapbox.places"

var (
	ErrNoToken  = errors.New("mapbox token not set")
	ErrNotFound = errors.New("no match for location")
)

// Place is one resolved location.
type Place struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Client queries the Mapbox places API. BaseURL and HTTPClient are
// overridable so tests can point at a local stub server.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{token: token, baseURL: mapboxBase, httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type mapboxFeature struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
}

type mapboxResponse struct {
	Features []mapboxFeature `json:"features"`
}

func (c *Client) fetch(ctx context.Context, query string, params url.Values) (*mapboxResponse, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	params.Set("access_token", c.token)

	endpoint := fmt.Sprintf("%s/%s.json?%s", c.baseURL, url.PathEscape(query), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding failed with status %d", resp.StatusCode)
	}

	var out mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Geocode resolves a street address to coordinates using the best match.
func (c *Client) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	params := url.Values{"limit": {"1"}}
	out, err := c.fetch(ctx, address, params)
	if err != nil {
		return 0, 0, err
	}
	if len(out.Features) == 0 || len(out.Features[0].Center) < 2 {
		return 0, 0, ErrNotFound
	}
	center := out.Features[0].Center
	return center[1], center[0], nil
}

// Suggest returns up to limit autocomplete matches for a partial query.
func (c *Client) Suggest(ctx context.Context, query string, limit int) ([]Place, error) {
	params := url.Values{
		"autocomplete": {"true"},
		"limit":        {strconv.Itoa(limit)},
	}
	out, err := c.fetch(ctx, query, params)
	if err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(out.Features))
	for _, f := range out.Features {
		if len(f.Center) < 2 || f.PlaceName == "" {
			continue
		}
		places = append(places, Place{Label: f.PlaceName, Lat: f.Center[1], Lng: f.Center[0]})
	}
	return places, nil
}

// Reverse resolves coordinates to the nearest labeled place.
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	query := fmt.Sprintf("%f,%f", lng, lat)
	out, err := c.fetch(ctx, query, url.Values{"limit": {"1"}})
	if err != nil {
		return Place{}, err
	}
	if len(out.Features) == 0 || len(out.Features[0].Center) < 2 {
		return Place{}, ErrNotFound
	}
	f := out.Features[0]
	return Place{Label: f.PlaceName, Lat: f.Center[1], Lng: f.Center[0]}, nil
}
