package configs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port      int `default:"8080"`
	StaticDir string
}

type Search struct {
	DefaultRadiusKm float64 `default:"10"`
	MaxResults      int     `default:"50"`
	SpatialIndex    bool
}

type GeocodingCache struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration `default:"24h"`
}

type Geocoding struct {
	APIKey    string
	BaseURL   string        `default:"https://maps.googleapis.com/maps/api/geocode/json"`
	Timeout   time.Duration `default:"10s"`
	RateLimit float64       `default:"10"`
	Cache     GeocodingCache
}

type Auth struct {
	SecretKey   string        `validate:"required"`
	CookieName  string        `default:"session-token"`
	SessionTTL  time.Duration `default:"12h"`
	LoginPath   string        `default:"/admin/login"`
	LandingPath string        `default:"/admin"`
}

type Config struct {
	DB        DB
	Server    Server
	Search    Search
	Geocoding Geocoding
	Auth      Auth
}

const envPrefix = "BUSINESSFINDER" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}

	if err := load(&config, configFileName, logger); err != nil {
		return nil, err
	}

	if config.Search.MaxResults <= 0 || config.Search.DefaultRadiusKm <= 0 {
		return nil, errors.Join(ErrConfiguration, errors.New("search limits must be positive"))
	}

	return &config, nil
}

// GetGeocodingConfig loads only the geocoding section, for commands that never touch the database.
func GetGeocodingConfig(configFileName string, logger *zap.Logger) (*Geocoding, error) {
	section := struct {
		Geocoding Geocoding
	}{}

	if err := load(&section, configFileName, logger); err != nil {
		return nil, err
	}

	return &section.Geocoding, nil
}

// GetAuthConfig loads only the auth section.
func GetAuthConfig(configFileName string, logger *zap.Logger) (*Auth, error) {
	section := struct {
		Auth Auth
	}{}

	if err := load(&section, configFileName, logger); err != nil {
		return nil, err
	}

	return &section.Auth, nil
}

func load(target interface{}, configFileName string, logger *zap.Logger) error {
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(target, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil && strings.Contains(err.Error(), "file not found") {
		logger.Warn("Could not find config file", zap.String("file", configFileName))

		err = fig.Load(target, fig.IgnoreFile(), fig.UseEnv(envPrefix))
	}

	return err
}
