package cmd

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BusinessFinder.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) (err error) {
	logger := developmentLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(repo.Close))

	if err := repo.Migrate(context.Background(), conf.Search.SpatialIndex); err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("migration complete", zap.Bool("spatialIndex", conf.Search.SpatialIndex))

	return nil
}
