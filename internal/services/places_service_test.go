package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/services"
)

func TestNearbyRestaurantsDecodesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "restaurant", r.URL.Query().Get("type"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"name":     "Spice Garden",
					"vicinity": "Main Rd, Munnar",
					"rating":   4.2,
					"geometry": map[string]any{"location": map[string]any{"lat": 10.09, "lng": 77.06}},
				},
			},
		})
	}))
	defer server.Close()

	svc := services.NewGooglePlacesServiceWithURL(server.URL, "test-key")
	restaurants, err := svc.NearbyRestaurants(context.Background(), munnar)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	assert.Equal(t, "Spice Garden", restaurants[0].Name)
	assert.Equal(t, "Main Rd, Munnar", restaurants[0].Address)
	assert.Equal(t, 4.2, restaurants[0].Rating)
	assert.InDelta(t, 10.09, restaurants[0].Latitude, 1e-9)
}

func TestNearbyRestaurantsWithoutKeySkipsLookup(t *testing.T) {
	svc := services.NewGooglePlacesServiceWithURL("http://127.0.0.1:1", "")
	restaurants, err := svc.NearbyRestaurants(context.Background(), munnar)
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}
