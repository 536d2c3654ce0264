package response_models

import (
	"github.com/paulmach/orb"

	"tripwise/internal/models/db_models"
)

// DayPlan is one day of the itinerary returned by getAttraction.
type DayPlan struct {
	Day         int              `json:"day"`
	Suggestions []SuggestionSlot `json:"suggestions"`
}

// SuggestionSlot pairs one 3-hour forecast window with the attractions
// eligible for that day.
type SuggestionSlot struct {
	Date        string                 `json:"date"`
	Weather     string                 `json:"weather"`
	DayTemp     float64                `json:"day_temp"`
	FeelsLike   float64                `json:"feels_like"`
	LowTemp     string                 `json:"low_temp"`
	HighTemp    string                 `json:"high_temp"`
	Attractions []AttractionSuggestion `json:"attractions"`
	DateTime    string                 `json:"date_time"`
}

type AttractionSuggestion struct {
	Attraction db_models.Attraction `json:"attraction"`
	Restaurant []Restaurant         `json:"restaurant"`
}

// Restaurant is enrichment data computed on demand from the places
// lookup; it is never persisted.
type Restaurant struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Rating    float64 `json:"rating"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
}

// Point returns the restaurant coordinate as lon/lat.
func (r Restaurant) Point() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}
