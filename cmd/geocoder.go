package cmd

import (
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/geocode"
)

// newGeocoder builds the reverse geocoder, with a Redis cache when one is configured.
// The returned func releases the cache connection.
func newGeocoder(conf configs.Geocoding, logger *zap.Logger) (*geocode.Client, func() error) {
	opts := []geocode.Option{
		geocode.WithHTTPClient(&http.Client{Timeout: conf.Timeout}),
		geocode.WithAPIKey(conf.APIKey),
		geocode.WithRateLimit(conf.RateLimit),
		geocode.WithLogger(logger),
	}

	if conf.BaseURL != "" {
		opts = append(opts, geocode.WithBaseURL(conf.BaseURL))
	}

	if conf.APIKey == "" {
		logger.Warn("no geocoding api key configured, reverse geocoding requests will be rejected upstream")
	}

	closeCache := func() error { return nil }

	if conf.Cache.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     conf.Cache.Addr,
			Password: conf.Cache.Password,
			DB:       conf.Cache.DB,
		})
		opts = append(opts, geocode.WithCache(geocode.NewRedisCache(rdb, conf.Cache.TTL)))
		closeCache = rdb.Close

		logger.Info("caching geocoding results", zap.String("addr", conf.Cache.Addr), zap.Duration("ttl", conf.Cache.TTL))
	}

	return geocode.NewClient(opts...), closeCache
}
