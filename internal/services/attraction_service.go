package services

import (
	"context"
	"errors"
	"log"
	"time"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type AttractionServiceInterface interface {
	PlanTrip(ctx context.Context, destination string, days int, category string, date time.Time) ([]response_models.DayPlan, error)
	GetAttractionDetails(ctx context.Context, name string) ([]db_models.Attraction, error)
}

// Radius policy: short trips stay close to the destination center,
// trips of two days or more widen the search.
const (
	shortTripRadiusKm = 5
	longTripRadiusKm  = 20
)

type AttractionService struct {
	attractionRepo repositories.AttractionRepository
	geocoder       GeocodeServiceInterface
	weather        WeatherServiceInterface
	suggestions    SuggestionServiceInterface
}

func NewAttractionService(
	attractionRepo repositories.AttractionRepository,
	geocoder GeocodeServiceInterface,
	weather WeatherServiceInterface,
	suggestions SuggestionServiceInterface,
) AttractionServiceInterface {
	return &AttractionService{
		attractionRepo: attractionRepo,
		geocoder:       geocoder,
		weather:        weather,
		suggestions:    suggestions,
	}
}

func (s *AttractionService) PlanTrip(ctx context.Context, destination string, days int, category string, date time.Time) ([]response_models.DayPlan, error) {
	if destination == "" || days <= 0 {
		return nil, utils.ErrInvalidInput
	}

	center, err := s.geocoder.Resolve(ctx, destination)
	if err != nil {
		if errors.Is(err, utils.ErrNoGeocodeResult) {
			return nil, err
		}
		log.Printf("Error geocoding %q: %v", destination, err)
		return nil, err
	}

	radius := float64(shortTripRadiusKm)
	if days >= 2 {
		radius = longTripRadiusKm
	}

	attractions, err := s.attractionRepo.WithinRadius(ctx, center, radius, category)
	if err != nil {
		log.Printf("Error fetching attractions near %q: %v", destination, err)
		return nil, utils.ErrDatabaseError
	}

	// The forecast contract is single-day; cover the trip window by
	// iterating per day and concatenating in day order.
	var weather []WeatherSample
	for day := 0; day < days; day++ {
		samples, err := s.weather.ForecastForDay(ctx, date.AddDate(0, 0, day), center)
		if err != nil {
			log.Printf("Error fetching forecast for %q day %d: %v", destination, day+1, err)
			return nil, err
		}
		weather = append(weather, samples...)
	}

	return s.suggestions.BuildItinerary(ctx, weather, attractions, days)
}

func (s *AttractionService) GetAttractionDetails(ctx context.Context, name string) ([]db_models.Attraction, error) {
	attractions, err := s.attractionRepo.FindByName(ctx, name)
	if err != nil {
		log.Printf("Error fetching attraction %q: %v", name, err)
		return nil, utils.ErrDatabaseError
	}
	if len(attractions) == 0 {
		return nil, utils.ErrAttractionNotFound
	}
	return attractions, nil
}
