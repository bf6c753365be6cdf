// Package geocode resolves coordinates to place names through the Google Geocoding API.
package geocode

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"droscher.com/BusinessFinder/pkg/model"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	// Unknown stands in for any place name the provider did not return.
	Unknown = "Unknown"

	defaultTimeout   = 10 * time.Second
	defaultRateLimit = 10
)

type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

func UnknownLocation() *Location {
	return &Location{City: Unknown, State: Unknown, Country: Unknown}
}

func (l *Location) complete() bool {
	return l.City != Unknown && l.State != Unknown && l.Country != Unknown
}

type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*Location, error)
}

// Option configures the Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithRateLimit caps provider calls at rps requests per second. Zero or less disables the limit.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)

			return
		}

		c.limiter = rate.NewLimiter(rate.Limit(rps), int(math.Max(1, rps)))
	}
}

func WithCache(cache Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	cache      Cache
	logger     *zap.Logger
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(defaultRateLimit, defaultRateLimit),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ReverseGeocode returns the city, state and country at lat, lng. A zero coordinate is treated as missing.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*Location, error) {
	if !usable(lat) || !usable(lng) {
		return nil, eris.Wrapf(model.ErrInvalidArgument, "geocode: invalid coordinates (%g, %g)", lat, lng)
	}

	key := cacheKey(lat, lng)

	if c.cache != nil {
		cached, found, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("geocode cache read failed", zap.String("key", key), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	location, err := c.lookup(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, location); err != nil {
			c.logger.Warn("geocode cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return location, nil
}

func usable(coordinate float64) bool {
	return coordinate != 0 && !math.IsNaN(coordinate) && !math.IsInf(coordinate, 0)
}

func cacheKey(lat, lng float64) string {
	return fmt.Sprintf("geocode:%.5f,%.5f", lat, lng)
}
