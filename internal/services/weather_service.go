package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"tripwise/pkg/utils"
)

// Condition is the normalized primary weather keyword of a forecast
// sample. The external payload is free text; it is parsed into this
// enum once at the boundary.
type Condition string

const (
	ConditionClear  Condition = "clear"
	ConditionClouds Condition = "clouds"
	ConditionRain   Condition = "rain"
	ConditionOther  Condition = "other"
)

// ParseCondition lowercases the primary weather keyword and maps it to
// the enum. Unknown keywords become ConditionOther but keep their label.
func ParseCondition(main string) (Condition, string) {
	label := strings.ToLower(main)
	switch label {
	case "clear":
		return ConditionClear, label
	case "clouds":
		return ConditionClouds, label
	case "rain":
		return ConditionRain, label
	default:
		return ConditionOther, label
	}
}

// WeatherSample is one 3-hour forecast interval. Hour is the hour field
// of the forecast timestamp string, which is what the time-of-day
// restrictions are defined against.
type WeatherSample struct {
	Timestamp time.Time
	DateTime  string
	Hour      int
	Condition Condition
	Label     string
	Temp      float64
	FeelsLike float64
	TempMin   float64
	TempMax   float64
}

type WeatherServiceInterface interface {
	// ForecastForDay returns the samples of a single day restricted to
	// the daylight window [06:00, 18:00). Callers iterate per day for
	// multi-day coverage.
	ForecastForDay(ctx context.Context, date time.Time, location orb.Point) ([]WeatherSample, error)
}

const openWeatherForecastURL = "https://api.openweathermap.org/data/2.5/forecast"

const (
	daylightStartHour = 6
	daylightEndHour   = 18
)

type OpenWeatherService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewOpenWeatherService() *OpenWeatherService {
	return &OpenWeatherService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    openWeatherForecastURL,
		apiKey:     os.Getenv("OPEN_WEATHER_KEY"),
	}
}

// NewOpenWeatherServiceWithURL injects the endpoint, used in tests.
func NewOpenWeatherServiceWithURL(baseURL, apiKey string) *OpenWeatherService {
	return &OpenWeatherService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	DtTxt string `json:"dt_txt"`
}

func (s *OpenWeatherService) ForecastForDay(ctx context.Context, date time.Time, location orb.Point) ([]WeatherSample, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", location.Lat()))
	q.Set("lon", fmt.Sprintf("%f", location.Lon()))
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: forecast API returned status %d", utils.ErrUpstreamFailure, resp.StatusCode)
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedForecast, err)
	}

	year, month, day := date.Date()
	windowStart := time.Date(year, month, day, daylightStartHour, 0, 0, 0, date.Location())
	windowEnd := time.Date(year, month, day, daylightEndHour, 0, 0, 0, date.Location())

	samples := make([]WeatherSample, 0, len(payload.List))
	for _, item := range payload.List {
		if len(item.Weather) == 0 || item.DtTxt == "" {
			return nil, fmt.Errorf("%w: sample at dt=%d has no weather entry", utils.ErrMalformedForecast, item.Dt)
		}

		ts := time.Unix(item.Dt, 0).In(date.Location())
		if ts.Before(windowStart) || !ts.Before(windowEnd) {
			continue
		}

		stamp, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			return nil, fmt.Errorf("%w: bad dt_txt %q", utils.ErrMalformedForecast, item.DtTxt)
		}

		condition, label := ParseCondition(item.Weather[0].Main)
		samples = append(samples, WeatherSample{
			Timestamp: ts,
			DateTime:  item.DtTxt,
			Hour:      stamp.Hour(),
			Condition: condition,
			Label:     label,
			Temp:      item.Main.Temp,
			FeelsLike: item.Main.FeelsLike,
			TempMin:   item.Main.TempMin,
			TempMax:   item.Main.TempMax,
		})
	}

	return samples, nil
}
