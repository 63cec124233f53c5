package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/config"
	"github.com/animatch/animatch/internal/dataset"
)

type HealthService struct {
	config *config.Config
	logger *logrus.Logger
	data   *dataset.Provider
	cache  *redis.Client
}

type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]string      `json:"services"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

func NewHealthService(cfg *config.Config, logger *logrus.Logger, data *dataset.Provider, cache *redis.Client) *HealthService {
	return &HealthService{
		config: cfg,
		logger: logger,
		data:   data,
		cache:  cache,
	}
}

func (hs *HealthService) CheckHealth(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Services:  map[string]string{},
		Details:   map[string]interface{}{},
	}

	snapshot := hs.data.Snapshot()
	items := len(snapshot.CatalogItems())
	ratings := len(snapshot.Ratings())
	status.Details["catalog_items"] = items
	status.Details["rating_records"] = ratings

	if items == 0 {
		status.Services["catalog"] = "empty"
		status.Status = "unhealthy"
	} else {
		status.Services["catalog"] = "loaded"
	}

	if ratings == 0 {
		// Content scoring still works without ratings.
		status.Services["ratings"] = "empty"
		if status.Status == "healthy" {
			status.Status = "degraded"
		}
	} else {
		status.Services["ratings"] = "loaded"
	}

	if hs.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := hs.cache.Ping(pingCtx).Err(); err != nil {
			hs.logger.WithError(err).Warn("Result cache unreachable")
			status.Services["cache"] = "unreachable"
			if status.Status == "healthy" {
				status.Status = "degraded"
			}
		} else {
			status.Services["cache"] = "connected"
		}
	} else {
		status.Services["cache"] = "disabled"
	}

	return status
}
