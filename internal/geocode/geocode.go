// Package geocode resolves free-form place names to coordinates using a
// Nominatim server.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/gominatim"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	cacheExpiration = 30 * time.Minute
	cleanupInterval = 90 * time.Minute
)

var ErrNoResults = errors.New("no results found for location")

// Place is a resolved location.
type Place struct {
	Name string
	Lat  float64
	Lon  float64
}

// Geocoder looks up places, caching results and throttling requests to the
// server.
type Geocoder struct {
	cache   *cache.Cache
	limiter *rate.Limiter
	log     *slog.Logger
}

// New configures the Nominatim server and returns a geocoder allowing at most
// ratePerSec lookups per second.
func New(server string, ratePerSec float64, logger *slog.Logger) *Geocoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	gominatim.SetServer(server)
	return &Geocoder{
		cache:   cache.New(cacheExpiration, cleanupInterval),
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), 1),
		log:     logger,
	}
}

// Lookup returns the best match for query.
func (g *Geocoder) Lookup(ctx context.Context, query string) (Place, error) {
	key := cacheKey(query)
	if cached, ok := g.cache.Get(key); ok {
		g.log.Debug("Geocode cache hit", "query", query)
		return cached.(Place), nil
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return Place{}, err
	}

	q := gominatim.SearchQuery{Q: query}
	results, err := q.Get()
	if err != nil {
		return Place{}, fmt.Errorf("geocoding error: %w", err)
	}
	if len(results) == 0 {
		return Place{}, fmt.Errorf("%w: %s", ErrNoResults, query)
	}

	place, err := resultToPlace(results[0])
	if err != nil {
		return Place{}, err
	}
	g.cache.Set(key, place, cache.DefaultExpiration)
	g.log.Debug("Location found", "query", query, "name", place.Name)
	return place, nil
}

func cacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func resultToPlace(result gominatim.SearchResult) (Place, error) {
	lat, err := strconv.ParseFloat(result.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("error parsing latitude: %w", err)
	}

	lon, err := strconv.ParseFloat(result.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("error parsing longitude: %w", err)
	}

	return Place{Name: result.DisplayName, Lat: lat, Lon: lon}, nil
}
