package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BusinessFinder/configs"
	"droscher.com/BusinessFinder/pkg/auth"
	"droscher.com/BusinessFinder/pkg/repository"
	"droscher.com/BusinessFinder/pkg/search"
	"droscher.com/BusinessFinder/pkg/server"
)

const (
	timeout         = 5 * time.Second
	shutdownTimeout = 15 * time.Second
)

type ServeCmd struct {
	ConfigFile string `default:".BusinessFinder.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) (err error) {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
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

	geocoder, closeCache := newGeocoder(conf.Geocoding, logger)
	defer multierr.AppendInvoke(&err, multierr.Invoke(closeCache))

	authManager := auth.NewAuthManager(conf.Auth, logger)
	searchService := search.NewService(repo, conf.Search, logger)

	var adminPages http.Handler
	if conf.Server.StaticDir != "" {
		adminPages = http.FileServer(http.Dir(conf.Server.StaticDir))
	}

	handler := server.NewHandler(server.Routes{
		Businesses: server.NewBusinessServer(repo, searchService, logger),
		Geocode:    server.NewGeocodeServer(geocoder, logger),
		Sessions:   server.NewSessionServer(authManager, logger),
		Health:     server.NewHealthChecker(repo, logger),
		Auth:       authManager,
		AdminPages: adminPages,
		Logger:     logger,
	})

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(handler)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)

	go func() {
		logger.Info("listening", zap.String("address", address), zap.Bool("spatialIndex", conf.Search.SpatialIndex))
		serveErr <- svr.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", zap.Error(err))

			return err
		}

		return nil
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := svr.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-length",
			"content-type",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(handler)
}
