// Command coordsync re-geocodes every attraction by name and rewrites
// its latitude/longitude and PostGIS point. Run it after bulk data
// loads that only filled in names.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"tripwise/internal/infra"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
	"tripwise/pkg/memcache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	attractionRepo := repositories.NewAttractionRepository(db)
	geocoder := services.NewOpenCageGeocoder(memcache.NewGeoCache())

	ctx := context.Background()
	attractions, err := attractionRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("Error listing attractions: %v", err)
	}

	updated := 0
	for _, attraction := range attractions {
		point, err := geocoder.Resolve(ctx, attraction.Name)
		if err != nil {
			log.Printf("Failed to geocode %q: %v", attraction.Name, err)
			continue
		}
		if err := attractionRepo.UpdateCoordinates(ctx, attraction.ID, point); err != nil {
			log.Printf("Failed to update %q: %v", attraction.Name, err)
			continue
		}
		log.Printf("Updated %q with lat: %f, lng: %f", attraction.Name, point.Lat(), point.Lon())
		updated++
	}

	log.Printf("Coordinate sync complete: %d/%d attractions updated", updated, len(attractions))
}
