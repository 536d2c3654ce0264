package memcache

import (
	"strings"
	"sync"
	"time"

	"github.com/paulmach/orb"
)

// GeoCache remembers geocoding results for a while so repeated trip
// queries for the same destination skip the external call.
type GeoCache struct {
	mu   sync.RWMutex
	data map[string]geoEntry
}

type geoEntry struct {
	point     orb.Point
	expiresAt time.Time
}

func NewGeoCache() *GeoCache {
	return &GeoCache{data: make(map[string]geoEntry)}
}

func key(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (c *GeoCache) Set(query string, point orb.Point, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key(query)] = geoEntry{point: point, expiresAt: time.Now().Add(ttl)}
}

func (c *GeoCache) Get(query string) (orb.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[key(query)]
	if !ok || time.Now().After(e.expiresAt) {
		return orb.Point{}, false
	}
	return e.point, true
}
