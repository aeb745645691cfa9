package geo

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// listingsGeoKey is the sorted set holding listing coordinates.
const listingsGeoKey = "essenteil:listings:geo"

// Index is the Redis-backed geo index of listing coordinates. It holds a
// single shared client, established lazily on first use and reused until
// Close. The relational store stays authoritative: callers treat every error
// from here as "no geo filter", never as a request failure.
type Index struct {
	redisURL string

	once    sync.Once
	rdb     *redis.Client
	initErr error
}

// New returns an Index that connects to redisURL on first use.
func New(redisURL string) *Index {
	return &Index{redisURL: redisURL}
}

// NewWithClient returns an Index over an existing client (tests, shared wiring).
func NewWithClient(rdb *redis.Client) *Index {
	return &Index{rdb: rdb}
}

// client establishes the shared connection exactly once, even under
// concurrent first use.
func (i *Index) client() (*redis.Client, error) {
	i.once.Do(func() {
		if i.rdb != nil {
			return
		}
		opt, err := redis.ParseURL(i.redisURL)
		if err != nil {
			i.initErr = err
			return
		}
		i.rdb = redis.NewClient(opt)
	})
	if i.initErr != nil {
		return nil, i.initErr
	}
	return i.rdb, nil
}

// Add indexes a listing id at (lng, lat).
func (i *Index) Add(ctx context.Context, id string, lng, lat float64) error {
	rdb, err := i.client()
	if err != nil {
		return err
	}
	return rdb.GeoAdd(ctx, listingsGeoKey, &redis.GeoLocation{
		Name:      id,
		Longitude: lng,
		Latitude:  lat,
	}).Err()
}

// Radius returns the ids of all indexed listings within radiusKm kilometers
// of (lat, lng). Members may be stale: a returned id is not guaranteed to
// still have a listing row.
func (i *Index) Radius(ctx context.Context, lat, lng, radiusKm float64) ([]string, error) {
	rdb, err := i.client()
	if err != nil {
		return nil, err
	}
	locs, err := rdb.GeoRadius(ctx, listingsGeoKey, lng, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
	}).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(locs))
	for _, loc := range locs {
		ids = append(ids, loc.Name)
	}
	return ids, nil
}

// Remove drops a listing id from the index.
func (i *Index) Remove(ctx context.Context, id string) error {
	rdb, err := i.client()
	if err != nil {
		return err
	}
	return rdb.ZRem(ctx, listingsGeoKey, id).Err()
}

// Ping checks the Redis connection (health reporting).
func (i *Index) Ping(ctx context.Context) error {
	rdb, err := i.client()
	if err != nil {
		return err
	}
	return rdb.Ping(ctx).Err()
}

// Close tears down the shared connection. Safe to call when the lazy
// connection was never established.
func (i *Index) Close() error {
	if i.rdb != nil {
		return i.rdb.Close()
	}
	return nil
}
