package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services"
)

// Client talks to the dashboard's own HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func locationQuery(lat, lon *float64, city string) url.Values {
	q := url.Values{}
	if lat != nil && lon != nil {
		q.Set("lat", strconv.FormatFloat(*lat, 'f', -1, 64))
		q.Set("lon", strconv.FormatFloat(*lon, 'f', -1, 64))
	} else if city != "" {
		q.Set("city", city)
	}
	return q
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}
	return json.Unmarshal(body, out)
}

func (c *Client) GetCurrent(ctx context.Context, lat, lon *float64, city string) (*models.CurrentWeather, error) {
	var weather models.CurrentWeather
	if err := c.get(ctx, "/weather/current", locationQuery(lat, lon, city), &weather); err != nil {
		return nil, err
	}
	return &weather, nil
}

func (c *Client) GetForecast(ctx context.Context, lat, lon *float64, city string) (*models.ForecastBundle, error) {
	var forecast models.ForecastBundle
	if err := c.get(ctx, "/weather/forecast", locationQuery(lat, lon, city), &forecast); err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (c *Client) GetEvents(ctx context.Context, lat, lon *float64, city string) ([]models.Event, error) {
	var resp struct {
		Events []models.Event `json:"events"`
	}
	if err := c.get(ctx, "/events", locationQuery(lat, lon, city), &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *Client) GetRecommendations(ctx context.Context, reqBody services.RecommendationRequest) (*models.RecommendationBundle, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendations", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var bundle models.RecommendationBundle
	if err := c.do(req, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}
