package db_models

import "github.com/paulmach/orb"

// Attraction is a visitable point of interest belonging to a
// destination. The location column is a PostGIS geography point used by
// the radius lookup; latitude/longitude mirror it for plain reads.
type Attraction struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	DestinationID uint    `json:"destination_id"`
	BestClimate   string  `json:"best_climate"`
	IdealTempMin  float64 `json:"ideal_temp_min"`
	IdealTempMax  float64 `json:"ideal_temp_max"`
	IdealWeather  string  `json:"ideal_weather"`
	Location      string  `gorm:"type:geography(Point,4326)" json:"-"`
}

// Point returns the attraction coordinate as lon/lat.
func (a Attraction) Point() orb.Point {
	return orb.Point{a.Longitude, a.Latitude}
}
