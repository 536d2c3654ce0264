package clientsfx

import (
	"go.uber.org/fx"

	"tripwise/internal/services"
	"tripwise/pkg/memcache"
)

var Module = fx.Provide(
	memcache.NewGeoCache,
	provideGeocoder,
	provideWeather,
	providePlaces,
)

func provideGeocoder(cache *memcache.GeoCache) services.GeocodeServiceInterface {
	return services.NewOpenCageGeocoder(cache)
}

func provideWeather() services.WeatherServiceInterface {
	return services.NewOpenWeatherService()
}

func providePlaces() services.PlacesServiceInterface {
	return services.NewGooglePlacesService()
}
