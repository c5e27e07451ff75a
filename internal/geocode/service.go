package geocode

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	suggestLimit    = 5
	suggestCacheTTL = 15 * time.Minute
)

// Service fronts the Mapbox client with a read-through cache on autocomplete
// suggestions, the only endpoint hit per keystroke. A nil redis client
// disables caching without changing behavior.
type Service struct {
	client *Client
	cache  *redis.Client
	log    zerolog.Logger
}

func NewService(client *Client, cache *redis.Client, log zerolog.Logger) *Service {
	return &Service{client: client, cache: cache, log: log}
}

func (s *Service) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	return s.client.Geocode(ctx, address)
}

func (s *Service) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	return s.client.Reverse(ctx, lat, lng)
}

func (s *Service) Suggest(ctx context.Context, query string) ([]Place, error) {
	key := "geocode:suggest:" + query
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var places []Place
			if err := json.Unmarshal([]byte(raw), &places); err == nil {
				return places, nil
			}
		}
	}

	places, err := s.client.Suggest(ctx, query, suggestLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(places); err == nil {
			if err := s.cache.Set(ctx, key, raw, suggestCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("suggest cache write failed")
			}
		}
	}
	return places, nil
}
