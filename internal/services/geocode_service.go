package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/paulmach/orb"

	"tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

type GeocodeServiceInterface interface {
	// Resolve turns a free-text place name into a lon/lat point. It
	// returns utils.ErrNoGeocodeResult when the provider has no match.
	Resolve(ctx context.Context, destination string) (orb.Point, error)
}

const openCageGeocodeURL = "https://api.opencagedata.com/geocode/v1/json"

// geocodeCacheTTL keeps resolved destinations around for a day;
// attraction coordinates do not move.
const geocodeCacheTTL = 24 * time.Hour

type OpenCageGeocoder struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *memcache.GeoCache
}

func NewOpenCageGeocoder(cache *memcache.GeoCache) *OpenCageGeocoder {
	return &OpenCageGeocoder{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    openCageGeocodeURL,
		apiKey:     os.Getenv("OPENCAGE_API_KEY"),
		cache:      cache,
	}
}

// NewOpenCageGeocoderWithURL injects the endpoint, used in tests.
func NewOpenCageGeocoderWithURL(baseURL, apiKey string, cache *memcache.GeoCache) *OpenCageGeocoder {
	return &OpenCageGeocoder{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache,
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"results"`
	Status struct {
		Code int `json:"code"`
	} `json:"status"`
}

func (g *OpenCageGeocoder) Resolve(ctx context.Context, destination string) (orb.Point, error) {
	if point, ok := g.cache.Get(destination); ok {
		return point, nil
	}

	q := url.Values{}
	q.Set("q", destination)
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return orb.Point{}, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, fmt.Errorf("%w: geocoder returned status %d", utils.ErrUpstreamFailure, resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return orb.Point{}, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	if len(payload.Results) == 0 {
		return orb.Point{}, utils.ErrNoGeocodeResult
	}

	geometry := payload.Results[0].Geometry
	point := orb.Point{geometry.Lng, geometry.Lat}
	g.cache.Set(destination, point, geocodeCacheTTL)
	return point, nil
}
