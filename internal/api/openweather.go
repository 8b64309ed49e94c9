package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weather-dashboard/internal/models"

	"github.com/avast/retry-go/v4"
)

// DefaultCity is used when a request carries neither coordinates nor a
// city name.
const DefaultCity = "San Francisco,US"

// CurrentConditions is the typed boundary for the provider's current
// weather payload. Raw units: °C, m/s, meters, hPa, unix seconds.
type CurrentConditions struct {
	Name        string
	Country     string
	Temp        float64
	FeelsLike   float64
	Humidity    int
	Pressure    float64
	Condition   string
	Description string
	Icon        string
	WindSpeed   float64
	Visibility  int
	Sunrise     time.Time
	Sunset      time.Time
	Coord       models.Coordinates
}

type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewOpenWeatherClient(apiKey, baseURL string) *OpenWeatherClient {
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// query builds the common parameter set. Location precedence: explicit
// lat/lon pair, else city, else DefaultCity.
func (c *OpenWeatherClient) query(lat, lon, city string) url.Values {
	q := url.Values{}
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	switch {
	case lat != "" && lon != "":
		q.Set("lat", lat)
		q.Set("lon", lon)
	case city != "":
		q.Set("q", city)
	default:
		q.Set("q", DefaultCity)
	}
	return q
}

// get performs the request with a single retry on transient network
// errors. HTTP error statuses are never retried.
func (c *OpenWeatherClient) get(ctx context.Context, endpoint string, q url.Values) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.http.Do(req)
			if err != nil {
				return fmt.Errorf("request failed: %w", err)
			}
			defer resp.Body.Close()

			b, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			if resp.StatusCode != http.StatusOK {
				return retry.Unrecoverable(fmt.Errorf("OpenWeather API error: %d", resp.StatusCode))
			}
			body = b
			return nil
		},
		retry.Attempts(2),
		retry.Delay(500*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	return body, err
}

// Current fetches current conditions for the resolved location.
func (c *OpenWeatherClient) Current(ctx context.Context, lat, lon, city string) (*CurrentConditions, error) {
	body, err := c.get(ctx, "/weather", c.query(lat, lon, city))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  int     `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Visibility int `json:"visibility"`
		Coord      struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("invalid weather payload: %w", err)
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("upstream contract violation: empty weather array")
	}

	return &CurrentConditions{
		Name:        resp.Name,
		Country:     resp.Sys.Country,
		Temp:        resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		Pressure:    resp.Main.Pressure,
		Condition:   resp.Weather[0].Main,
		Description: resp.Weather[0].Description,
		Icon:        resp.Weather[0].Icon,
		WindSpeed:   resp.Wind.Speed,
		Visibility:  resp.Visibility,
		Sunrise:     time.Unix(resp.Sys.Sunrise, 0),
		Sunset:      time.Unix(resp.Sys.Sunset, 0),
		Coord:       models.Coordinates{Lat: resp.Coord.Lat, Lon: resp.Coord.Lon},
	}, nil
}

// Forecast fetches the 3-hour-step forecast as chronological samples.
func (c *OpenWeatherClient) Forecast(ctx context.Context, lat, lon, city string) ([]models.ForecastSample, error) {
	body, err := c.get(ctx, "/forecast", c.query(lat, lon, city))
	if err != nil {
		return nil, err
	}

	var resp struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Main        string `json:"main"`
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Pop float64 `json:"pop"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("invalid forecast payload: %w", err)
	}

	samples := make([]models.ForecastSample, 0, len(resp.List))
	for _, item := range resp.List {
		if len(item.Weather) == 0 {
			return nil, fmt.Errorf("upstream contract violation: forecast entry without weather")
		}
		samples = append(samples, models.ForecastSample{
			Timestamp:     time.Unix(item.Dt, 0),
			Temperature:   item.Main.Temp,
			Condition:     item.Weather[0].Main,
			Description:   item.Weather[0].Description,
			Icon:          item.Weather[0].Icon,
			Precipitation: item.Pop,
		})
	}
	return samples, nil
}
