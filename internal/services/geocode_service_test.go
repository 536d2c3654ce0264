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
	"tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

func TestResolveReturnsFirstMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Munnar", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"geometry": map[string]any{"lat": 10.0889, "lng": 77.0595}},
				{"geometry": map[string]any{"lat": 0.0, "lng": 0.0}},
			},
			"status": map[string]any{"code": 200},
		})
	}))
	defer server.Close()

	geocoder := services.NewOpenCageGeocoderWithURL(server.URL, "test-key", memcache.NewGeoCache())
	point, err := geocoder.Resolve(context.Background(), "Munnar")
	require.NoError(t, err)
	assert.InDelta(t, 10.0889, point.Lat(), 1e-9)
	assert.InDelta(t, 77.0595, point.Lon(), 1e-9)
}

func TestResolveNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{},
			"status":  map[string]any{"code": 200},
		})
	}))
	defer server.Close()

	geocoder := services.NewOpenCageGeocoderWithURL(server.URL, "test-key", memcache.NewGeoCache())
	_, err := geocoder.Resolve(context.Background(), "Nowhereville")
	assert.ErrorIs(t, err, utils.ErrNoGeocodeResult)
}

func TestResolveUsesCacheOnRepeatQueries(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"geometry": map[string]any{"lat": 10.0889, "lng": 77.0595}},
			},
			"status": map[string]any{"code": 200},
		})
	}))
	defer server.Close()

	geocoder := services.NewOpenCageGeocoderWithURL(server.URL, "test-key", memcache.NewGeoCache())

	first, err := geocoder.Resolve(context.Background(), "Munnar")
	require.NoError(t, err)
	second, err := geocoder.Resolve(context.Background(), "  munnar ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}

func TestResolveUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	geocoder := services.NewOpenCageGeocoderWithURL(server.URL, "test-key", memcache.NewGeoCache())
	_, err := geocoder.Resolve(context.Background(), "Munnar")
	assert.ErrorIs(t, err, utils.ErrUpstreamFailure)
}
