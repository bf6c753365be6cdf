package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BusinessFinder/configs"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.DB.Host, conf.DB.User, conf.DB.Password, conf.DB.Database, conf.DB.Port)

	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
	sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, nil
}

// Ping checks that the database answers.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
