package shipping

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bleeshop/bleeshop-backend/pkg/logger"
)

// QuoteCache is the subset of the redis client used for quote caching.
type QuoteCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	QuoteKey(digest string) string
}

// CachedService fronts a resolver with a short-lived quote cache. Cache
// trouble never blocks quoting; every failure degrades to a direct
// resolver call.
type CachedService struct {
	inner Service
	cache QuoteCache
	ttl   time.Duration
	logg  *logger.Logger
}

func NewCachedService(inner Service, cache QuoteCache, ttl time.Duration, logg *logger.Logger) *CachedService {
	return &CachedService{
		inner: inner,
		cache: cache,
		ttl:   ttl,
		logg:  logg,
	}
}

func (s *CachedService) Calculate(ctx context.Context, postalCode string, items []Item) ([]Quote, error) {
	if s.cache == nil || s.ttl <= 0 {
		return s.inner.Calculate(ctx, postalCode, items)
	}

	key := s.cache.QuoteKey(quoteDigest(postalCode, items))
	if raw, err := s.cache.Get(ctx, key); err == nil {
		var quotes []Quote
		if jsonErr := json.Unmarshal([]byte(raw), &quotes); jsonErr == nil && len(quotes) > 0 {
			return quotes, nil
		}
	}

	quotes, err := s.inner.Calculate(ctx, postalCode, items)
	if err != nil {
		return nil, err
	}

	if raw, jsonErr := json.Marshal(quotes); jsonErr == nil {
		if setErr := s.cache.Set(ctx, key, string(raw), s.ttl); setErr != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "cache_key", key), "shipping.quote_cache_write_failed")
		}
	}

	return quotes, nil
}

// quoteDigest hashes the normalized postal code plus the item list so
// formatted and bare codes share one cache entry.
func quoteDigest(postalCode string, items []Item) string {
	h := sha256.New()
	h.Write([]byte(normalizePostalCode(postalCode)))
	for _, item := range items {
		fmt.Fprintf(h, "|%s:%g:%g:%g:%g:%g:%d",
			item.ID, item.WidthCm, item.HeightCm, item.LengthCm,
			item.WeightKg, item.DeclaredValue, item.Quantity)
	}
	return hex.EncodeToString(h.Sum(nil))
}
