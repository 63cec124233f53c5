package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/config"
	"github.com/animatch/animatch/internal/dataset"
	"github.com/animatch/animatch/pkg/models"
)

// RecommendationService dispatches scoring requests to the content or
// collaborative scorer against the current dataset snapshot, with an
// optional warm cache of rendered result lists.
type RecommendationService struct {
	data          *dataset.Provider
	content       *ContentScorer
	collaborative *CollaborativeScorer
	cache         *redis.Client // warm cache, nil when unconfigured
	config        *config.Config
	logger        *logrus.Logger
	metrics       *MetricsCollector
}

func NewRecommendationService(
	data *dataset.Provider,
	content *ContentScorer,
	collaborative *CollaborativeScorer,
	cache *redis.Client,
	cfg *config.Config,
	logger *logrus.Logger,
	metrics *MetricsCollector,
) *RecommendationService {
	return &RecommendationService{
		data:          data,
		content:       content,
		collaborative: collaborative,
		cache:         cache,
		config:        cfg,
		logger:        logger,
		metrics:       metrics,
	}
}

// Recommend runs one scoring request and returns the ordered display
// strings plus whether the result came from the cache.
func (s *RecommendationService) Recommend(ctx context.Context, req models.RecommendationRequest) ([]string, bool, error) {
	variant := req.Variant
	if req.Algorithm == models.AlgorithmCollaborative && variant == "" {
		variant = models.VariantCorrelation
	}

	seeds := req.Seeds
	if len(seeds) > s.config.Recommendation.MaxSeeds {
		seeds = seeds[:s.config.Recommendation.MaxSeeds]
	}

	cacheKey := s.cacheKey(req.Algorithm, variant, seeds)
	if cached, err := s.getCachedResults(ctx, cacheKey); err == nil && cached != nil {
		s.metrics.CacheLookup(true)
		s.logger.WithField("key", cacheKey).Debug("Recommendation cache hit")
		return cached, true, nil
	}
	s.metrics.CacheLookup(false)

	snapshot := s.data.Snapshot()
	index := NewCatalogIndex(snapshot.CatalogItems())

	started := time.Now()
	var results []string
	switch req.Algorithm {
	case models.AlgorithmContent:
		results = s.content.Score(seeds, index)
	case models.AlgorithmCollaborative:
		if !snapshot.CatalogHasIDs() {
			return nil, false, &dataset.ValidationError{Table: "catalog", Column: "anime_id"}
		}
		switch variant {
		case models.VariantPreference:
			pivot := NewItemRatingPivot(snapshot.Ratings(), index)
			results = s.collaborative.ScorePreference(seeds, pivot, index)
		default:
			matrix := NewUserItemMatrix(snapshot.Ratings())
			results = s.collaborative.ScoreCorrelation(seeds, matrix, index)
		}
	default:
		return nil, false, fmt.Errorf("unknown algorithm %q", req.Algorithm)
	}
	s.metrics.ObserveScoring(req.Algorithm, variant, time.Since(started))

	if err := s.cacheResults(ctx, cacheKey, results); err != nil {
		s.logger.WithError(err).Warn("Failed to cache recommendation results")
	}

	s.logger.WithFields(logrus.Fields{
		"algorithm": req.Algorithm,
		"variant":   variant,
		"seeds":     len(seeds),
		"results":   len(results),
	}).Debug("Scoring completed")

	return results, false, nil
}

func (s *RecommendationService) cacheKey(algorithm, variant string, seeds []string) string {
	normalized := make([]string, len(seeds))
	for i, seed := range seeds {
		normalized[i] = normalizeName(seed)
	}
	return fmt.Sprintf("recommendations:%s:%s:%s", algorithm, variant, strings.Join(normalized, "|"))
}

func (s *RecommendationService) getCachedResults(ctx context.Context, key string) ([]string, error) {
	if s.cache == nil {
		return nil, fmt.Errorf("cache disabled")
	}
	cached, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var results []string
	if err := json.Unmarshal([]byte(cached), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *RecommendationService) cacheResults(ctx context.Context, key string, results []string) error {
	if s.cache == nil {
		return nil
	}
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.config.Cache.ResultsTTL).Err()
}
