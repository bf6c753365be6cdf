package cmd

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/geo"
	"droscher.com/BusinessFinder/pkg/geolocation"
)

type LocateCmd struct {
	ConfigFile string        `default:".BusinessFinder.toml" help:"Path to config file" short:"c"`
	Lat        *float64      `help:"Latitude of the position"`
	Lng        *float64      `help:"Longitude of the position"`
	Timeout    time.Duration `default:"10s"                  help:"How long to wait for a position"`
}

func (l *LocateCmd) Run(ctx *Context) error {
	logger := developmentLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetGeocodingConfig(l.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	locator := geolocation.StaticLocator{Err: geolocation.ErrPositionUnavailable}
	if l.Lat != nil && l.Lng != nil {
		locator = geolocation.StaticLocator{Point: geo.Point{Lat: *l.Lat, Lng: *l.Lng}}
	}

	geocoder, closeCache := newGeocoder(*conf, logger)
	defer closeCache() //nolint:errcheck // nothing to do about a failed cache close on exit

	position, err := geolocation.Acquire(context.Background(), locator, geocoder, l.Timeout)
	if err != nil {
		logger.Error(geolocation.Reason(err), zap.Error(err))

		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(position)
}
