package db_models

// Destination is a place a trip can be planned around. Rows are loaded
// by an administrative import and are read-only at request time.
type Destination struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	BestClimate  string  `json:"best_climate"`
	IdealTempMin float64 `json:"ideal_temp_min"`
	IdealTempMax float64 `json:"ideal_temp_max"`
	IdealWeather string  `json:"ideal_weather"`

	Attractions []Attraction `json:"-"`
}
