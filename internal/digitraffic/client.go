// Package digitraffic talks to the Digitraffic open railway API and
// maps its wire entities into domain values.
package digitraffic

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://rata.digitraffic.fi/api/v1"
	DefaultTimeout = 15 * time.Second

	// The API asks callers to identify themselves.
	userHeader = "railboard"
)

// Client is the Digitraffic railway API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the production API.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a client against the given base URL,
// used by tests and development configs.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
	}
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("Digitraffic-User", userHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gr, err := gzip.NewReader(resp.Body)
		if err != nil {
			return fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Stations returns the full station metadata list.
func (c *Client) Stations(ctx context.Context) ([]StationEntity, error) {
	var stations []StationEntity
	if err := c.get(ctx, "/metadata/stations", &stations); err != nil {
		return nil, err
	}
	return stations, nil
}

// LiveTrainOptions bounds a live-trains request around the station.
type LiveTrainOptions struct {
	ArrivedTrains   int
	ArrivingTrains  int
	DepartedTrains  int
	DepartingTrains int
}

// DefaultLiveTrainOptions matches the station board: a handful of past
// movements, a full page of upcoming ones.
func DefaultLiveTrainOptions() LiveTrainOptions {
	return LiveTrainOptions{
		ArrivedTrains:   5,
		ArrivingTrains:  20,
		DepartedTrains:  5,
		DepartingTrains: 20,
	}
}

// TrainsAtStation returns the trains currently relevant to one station.
func (c *Client) TrainsAtStation(ctx context.Context, stationShortCode string, opts LiveTrainOptions) ([]TrainEntity, error) {
	params := url.Values{}
	params.Set("arrived_trains", strconv.Itoa(opts.ArrivedTrains))
	params.Set("arriving_trains", strconv.Itoa(opts.ArrivingTrains))
	params.Set("departed_trains", strconv.Itoa(opts.DepartedTrains))
	params.Set("departing_trains", strconv.Itoa(opts.DepartingTrains))

	var trains []TrainEntity
	path := fmt.Sprintf("/live-trains/station/%s?%s", url.PathEscape(stationShortCode), params.Encode())
	if err := c.get(ctx, path, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// Train returns a single train for a departure date. The API answers
// with a list; an empty list means the train does not exist.
func (c *Client) Train(ctx context.Context, departureDate string, trainNumber int) ([]TrainEntity, error) {
	var trains []TrainEntity
	path := fmt.Sprintf("/trains/%s/%d", url.PathEscape(departureDate), trainNumber)
	if err := c.get(ctx, path, &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// LatestTrain returns the most recent run of a train number.
func (c *Client) LatestTrain(ctx context.Context, trainNumber int) ([]TrainEntity, error) {
	var trains []TrainEntity
	if err := c.get(ctx, fmt.Sprintf("/trains/latest/%d", trainNumber), &trains); err != nil {
		return nil, err
	}
	return trains, nil
}

// CauseCategoryTables holds the three cause code tables as served by
// the API.
type CauseCategoryTables struct {
	Categories         []CategoryCodeEntity
	DetailedCategories []DetailedCategoryCodeEntity
	ThirdCategories    []ThirdCategoryCodeEntity
}

// CauseCategories fetches all three cause category code tables.
func (c *Client) CauseCategories(ctx context.Context) (CauseCategoryTables, error) {
	var tables CauseCategoryTables
	if err := c.get(ctx, "/metadata/cause-category-codes", &tables.Categories); err != nil {
		return CauseCategoryTables{}, err
	}
	if err := c.get(ctx, "/metadata/detailed-cause-category-codes", &tables.DetailedCategories); err != nil {
		return CauseCategoryTables{}, err
	}
	if err := c.get(ctx, "/metadata/third-cause-category-codes", &tables.ThirdCategories); err != nil {
		return CauseCategoryTables{}, err
	}
	return tables, nil
}
