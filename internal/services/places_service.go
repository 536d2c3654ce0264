package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/paulmach/orb"

	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type PlacesServiceInterface interface {
	// NearbyRestaurants returns restaurants around a point. Results are
	// unfiltered and unsorted; ranking is the suggestion engine's job.
	NearbyRestaurants(ctx context.Context, location orb.Point) ([]response_models.Restaurant, error)
}

const googleNearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

// restaurantSearchRadiusMeters bounds the nearby search around an
// attraction.
const restaurantSearchRadiusMeters = 3000

type GooglePlacesService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewGooglePlacesService() *GooglePlacesService {
	return &GooglePlacesService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    googleNearbySearchURL,
		apiKey:     os.Getenv("GOOGLE_PLACES_KEY"),
	}
}

// NewGooglePlacesServiceWithURL injects the endpoint, used in tests.
func NewGooglePlacesServiceWithURL(baseURL, apiKey string) *GooglePlacesService {
	return &GooglePlacesService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type nearbySearchResponse struct {
	Results []struct {
		Name     string  `json:"name"`
		Vicinity string  `json:"vicinity"`
		Rating   float64 `json:"rating"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (p *GooglePlacesService) NearbyRestaurants(ctx context.Context, location orb.Point) ([]response_models.Restaurant, error) {
	if p.apiKey == "" {
		// No key configured: itineraries come back without enrichment.
		log.Println("Places API key not set, skipping restaurant search")
		return nil, nil
	}

	q := url.Values{}
	q.Set("location", fmt.Sprintf("%.6f,%.6f", location.Lat(), location.Lon()))
	q.Set("radius", fmt.Sprintf("%d", restaurantSearchRadiusMeters))
	q.Set("type", "restaurant")
	q.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: places API returned status %d", utils.ErrUpstreamFailure, resp.StatusCode)
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstreamFailure, err)
	}

	restaurants := make([]response_models.Restaurant, 0, len(payload.Results))
	for _, place := range payload.Results {
		restaurants = append(restaurants, response_models.Restaurant{
			Name:      place.Name,
			Address:   place.Vicinity,
			Rating:    place.Rating,
			Latitude:  place.Geometry.Location.Lat,
			Longitude: place.Geometry.Location.Lng,
		})
	}
	return restaurants, nil
}
