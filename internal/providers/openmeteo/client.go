package openmeteo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://archive-api.open-meteo.com/v1/archive?latitude=-33.8678&longitude=151.2073&start_date=2024-06-01&end_date=2024-06-01&daily=temperature_2m_max,temperature_2m_min&timezone=Australia%2FSydney
const (
	baseArchiveURL  = "https://archive-api.open-meteo.com/v1/archive"
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"

	requestTimeout = 10 * time.Second
)

type Client struct {
	httpClient  *http.Client
	archiveURL  string
	forecastURL string
	timezone    string
	breaker     *gobreaker.CircuitBreaker
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the archive and forecast endpoints, used by tests.
func WithBaseURLs(archiveURL, forecastURL string) Option {
	return func(c *Client) {
		c.archiveURL = archiveURL
		c.forecastURL = forecastURL
	}
}

// WithTimeout overrides the outbound request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(timezone string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		archiveURL:  baseArchiveURL,
		forecastURL: baseForecastURL,
		timezone:    timezone,
		logger:      logger.With("component", "openmeteo-client"),
	}

	// Fail fast once the provider has been down for a while; no retries.
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	})

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetDailyHistory fetches settled daily measurements for a single past date.
func (c *Client) GetDailyHistory(latitude, longitude float64, date string, variables []string) (*APIResponse, error) {
	q := url.Values{}
	q.Set("start_date", date)
	q.Set("end_date", date)
	q.Set("daily", strings.Join(variables, ","))
	return c.get(c.archiveURL, latitude, longitude, q)
}

// GetHourlyHistory fetches settled hourly measurements for a single past date.
func (c *Client) GetHourlyHistory(latitude, longitude float64, date string, variables []string) (*APIResponse, error) {
	q := url.Values{}
	q.Set("start_date", date)
	q.Set("end_date", date)
	q.Set("hourly", strings.Join(variables, ","))
	return c.get(c.archiveURL, latitude, longitude, q)
}

// GetForecast fetches the rolling forecast window, daily and hourly
// granularity in one call.
func (c *Client) GetForecast(latitude, longitude float64, forecastDays int, dailyVars, hourlyVars []string) (*APIResponse, error) {
	q := url.Values{}
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	return c.get(c.forecastURL, latitude, longitude, q)
}

func (c *Client) get(baseURL string, latitude, longitude float64, params url.Values) (*APIResponse, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", longitude))
	q.Set("timezone", c.timezone)
	q.Set("timeformat", "iso8601")
	for key, values := range params {
		for _, v := range values {
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching Open-Meteo data", "url", u.String())

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(u.String())
	})
	if err != nil {
		c.logger.Error("failed to fetch Open-Meteo data", "url", u.String(), "error", err)
		return nil, err
	}

	return result.(*APIResponse), nil
}

func (c *Client) fetch(rawURL string) (*APIResponse, error) {
	resp, err := c.httpClient.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
