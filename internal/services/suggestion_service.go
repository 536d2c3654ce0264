package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/pkg/utils"
)

type SuggestionServiceInterface interface {
	// BuildItinerary partitions the attractions eligible under the given
	// weather across `days` day plans. Assignment policy: eligible
	// attractions are collected in weather-sample order then
	// attraction-list order, deduplicated by id (first occurrence wins),
	// split evenly across days with ceiling division, and every weather
	// slot of a day repeats that day's full attraction subset.
	BuildItinerary(ctx context.Context, weather []WeatherSample, attractions []db_models.Attraction, days int) ([]response_models.DayPlan, error)
}

// Category-specific time restriction: waterfalls are only worth
// visiting between 10:00 and 16:00 inclusive.
const (
	waterfallCategory  = "waterfall"
	waterfallFirstHour = 10
	waterfallLastHour  = 16
)

// nearestRestaurantCap keeps only the closest restaurant per
// attraction.
const nearestRestaurantCap = 1

// minRestaurantRating drops poorly rated restaurants before ranking.
const minRestaurantRating = 3.0

// enrichmentConcurrency bounds parallel places lookups within one plan.
const enrichmentConcurrency = 4

type SuggestionService struct {
	places PlacesServiceInterface
}

func NewSuggestionService(places PlacesServiceInterface) SuggestionServiceInterface {
	return &SuggestionService{places: places}
}

// orderedIDSet is a sequence plus membership index so that "first
// occurrence wins" is an explicit rule rather than map iteration luck.
type orderedIDSet struct {
	ids  []uint
	seen map[uint]struct{}
}

func newOrderedIDSet() *orderedIDSet {
	return &orderedIDSet{seen: make(map[uint]struct{})}
}

// Add reports whether id was newly inserted.
func (s *orderedIDSet) Add(id uint) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *SuggestionService) BuildItinerary(ctx context.Context, weather []WeatherSample, attractions []db_models.Attraction, days int) ([]response_models.DayPlan, error) {
	if days <= 0 {
		return nil, utils.ErrInvalidInput
	}
	if len(weather) == 0 {
		return []response_models.DayPlan{}, nil
	}

	visited := newOrderedIDSet()
	var eligible []db_models.Attraction

	for _, sample := range weather {
		for _, attraction := range attractions {
			if !conditionMatches(sample.Condition, attraction.IdealWeather) {
				continue
			}
			if strings.EqualFold(attraction.Category, waterfallCategory) &&
				(sample.Hour < waterfallFirstHour || sample.Hour > waterfallLastHour) {
				continue
			}
			if !visited.Add(attraction.ID) {
				continue
			}
			eligible = append(eligible, attraction)
		}
	}

	nearby, err := s.nearestRestaurants(ctx, eligible)
	if err != nil {
		return nil, err
	}

	perDay := ceilDiv(len(eligible), days)
	perSlot := ceilDiv(len(weather), days)

	plans := make([]response_models.DayPlan, 0, days)
	for day := 0; day < days; day++ {
		daily := sliceRange(eligible, day*perDay, (day+1)*perDay)
		slots := sliceRange(weather, day*perSlot, (day+1)*perSlot)

		suggestions := make([]response_models.SuggestionSlot, 0, len(slots))
		for _, sample := range slots {
			pairs := make([]response_models.AttractionSuggestion, 0, len(daily))
			for _, attraction := range daily {
				pairs = append(pairs, response_models.AttractionSuggestion{
					Attraction: attraction,
					Restaurant: nearby[attraction.ID],
				})
			}
			suggestions = append(suggestions, slotFromSample(sample, pairs))
		}

		plans = append(plans, response_models.DayPlan{
			Day:         day + 1,
			Suggestions: suggestions,
		})
	}

	return plans, nil
}

// conditionMatches filters an attraction's free-text ideal weather
// against the sample condition. Cloudy and rainy samples require the
// matching keyword in the text; everything else passes all attractions.
func conditionMatches(condition Condition, idealWeather string) bool {
	ideal := strings.ToLower(idealWeather)
	switch condition {
	case ConditionClouds:
		return strings.Contains(ideal, "cloud")
	case ConditionRain:
		return strings.Contains(ideal, "rain")
	default:
		return true
	}
}

// nearestRestaurants resolves enrichment for every planned attraction,
// fanning lookups out concurrently. Any lookup failure fails the plan.
func (s *SuggestionService) nearestRestaurants(ctx context.Context, attractions []db_models.Attraction) (map[uint][]response_models.Restaurant, error) {
	nearby := make(map[uint][]response_models.Restaurant, len(attractions))
	if s.places == nil || len(attractions) == 0 {
		return nearby, nil
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentConcurrency)

	for _, attraction := range attractions {
		g.Go(func() error {
			restaurants, err := s.places.NearbyRestaurants(gCtx, attraction.Point())
			if err != nil {
				return err
			}

			ranked := rankRestaurants(attraction, restaurants)
			mu.Lock()
			nearby[attraction.ID] = ranked
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nearby, nil
}

// rankRestaurants keeps decently rated restaurants, annotates each with
// its distance to the attraction, and returns the closest few.
func rankRestaurants(attraction db_models.Attraction, restaurants []response_models.Restaurant) []response_models.Restaurant {
	ranked := make([]response_models.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.Rating < minRestaurantRating {
			continue
		}
		r.Distance = utils.Haversine(attraction.Point(), r.Point())
		ranked = append(ranked, r)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	if len(ranked) > nearestRestaurantCap {
		ranked = ranked[:nearestRestaurantCap]
	}
	return ranked
}

func slotFromSample(sample WeatherSample, pairs []response_models.AttractionSuggestion) response_models.SuggestionSlot {
	return response_models.SuggestionSlot{
		Date:        sample.Timestamp.UTC().Format("2006-01-02"),
		Weather:     sample.Label,
		DayTemp:     sample.Temp,
		FeelsLike:   sample.FeelsLike,
		LowTemp:     formatCelsius(sample.TempMin),
		HighTemp:    formatCelsius(sample.TempMax),
		Attractions: pairs,
		DateTime:    sample.DateTime,
	}
}

func formatCelsius(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "°C"
}

func ceilDiv(total, parts int) int {
	if total == 0 {
		return 0
	}
	return (total + parts - 1) / parts
}

func sliceRange[T any](items []T, start, end int) []T {
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
