package server

import (
	"context"
	"fmt"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	"go.uber.org/zap"
)

// ServiceName is reported by the health endpoint alongside the empty (whole server) name.
const ServiceName = "businessfinder.v1.BusinessFinder"

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports NOT_SERVING while the database cannot be reached.
type HealthChecker struct {
	db     pinger
	logger *zap.Logger
}

func NewHealthChecker(db pinger, logger *zap.Logger) *HealthChecker {
	return &HealthChecker{db: db, logger: logger}
}

func (h *HealthChecker) Check(ctx context.Context, request *grpchealth.CheckRequest) (*grpchealth.CheckResponse, error) {
	if request.Service != "" && request.Service != ServiceName {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("unknown service %s", request.Service))
	}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))

		return &grpchealth.CheckResponse{Status: grpchealth.StatusNotServing}, nil
	}

	return &grpchealth.CheckResponse{Status: grpchealth.StatusServing}, nil
}
