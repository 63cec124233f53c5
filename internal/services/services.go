package services

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/config"
	"github.com/animatch/animatch/internal/dataset"
)

type Services struct {
	Health         *HealthService
	Metrics        *MetricsCollector
	Recommendation *RecommendationService
}

func New(cfg *config.Config, logger *logrus.Logger, data *dataset.Provider) (*Services, error) {
	cache, err := newCacheClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	metrics := NewMetricsCollector(logger)
	contentScorer := NewContentScorer(&cfg.Recommendation, logger, metrics)
	collaborativeScorer := NewCollaborativeScorer(&cfg.Recommendation, logger, metrics)

	recommendationService := NewRecommendationService(
		data, contentScorer, collaborativeScorer, cache, cfg, logger, metrics,
	)

	return &Services{
		Health:         NewHealthService(cfg, logger, data, cache),
		Metrics:        metrics,
		Recommendation: recommendationService,
	}, nil
}

func newCacheClient(cfg *config.Config, logger *logrus.Logger) (*redis.Client, error) {
	if cfg.Cache.URL == "" {
		logger.Debug("Result cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Cache.URL)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}
