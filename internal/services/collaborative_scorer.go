package services

import (
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/animatch/animatch/internal/config"
)

// CollaborativeScorer ranks catalog items by rating-pattern similarity.
// Two variants exist and deliberately keep their distinct not-found
// behavior: the correlation variant emits an explicit marker for an
// unresolved seed, the preference variant silently skips it.
type CollaborativeScorer struct {
	config  *config.RecommendationConfig
	logger  *logrus.Logger
	metrics *MetricsCollector
}

func NewCollaborativeScorer(cfg *config.RecommendationConfig, logger *logrus.Logger, metrics *MetricsCollector) *CollaborativeScorer {
	return &CollaborativeScorer{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// ScoreCorrelation ranks, for each seed, the items whose rating
// columns correlate most strongly with the seed's column. Correlation
// is computed over users observed in both columns; items without
// enough overlap or with undefined correlation are dropped.
func (cs *CollaborativeScorer) ScoreCorrelation(seeds []string, matrix *UserItemMatrix, index *CatalogIndex) []string {
	results := []string{}

	for _, seed := range seeds {
		if strings.TrimSpace(seed) == "" {
			continue
		}

		seedID, ok := index.LookupID(seed)
		if !ok {
			cs.metrics.SeedNotFound()
			results = append(results, NotFoundMessage(seed))
			continue
		}

		seedVals, seedObs, ok := matrix.Column(seedID)
		if !ok {
			// In the catalog but never rated: nothing to correlate.
			cs.logger.WithField("seed", seed).Debug("Seed has no rating column")
			continue
		}

		results = append(results, cs.rankByCorrelation(seedID, seedVals, seedObs, matrix, index)...)
	}

	return results
}

func (cs *CollaborativeScorer) rankByCorrelation(seedID int, seedVals []float64, seedObs []bool, matrix *UserItemMatrix, index *CatalogIndex) []string {
	type scored struct {
		animeID     int
		correlation float64
	}

	var candidates []scored
	for _, animeID := range matrix.AnimeIDs {
		// The seed correlates 1.0 with itself; exclude it by id, not
		// by hoping the ranking pushes it out.
		if animeID == seedID {
			continue
		}

		vals, obs, _ := matrix.Column(animeID)
		var xs, ys []float64
		for i := range vals {
			if seedObs[i] && obs[i] {
				xs = append(xs, seedVals[i])
				ys = append(ys, vals[i])
			}
		}
		if len(xs) < cs.config.MinOverlap {
			continue
		}

		r := stat.Correlation(xs, ys, nil)
		if math.IsNaN(r) {
			continue
		}
		candidates = append(candidates, scored{animeID: animeID, correlation: r})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].correlation > candidates[b].correlation
	})
	if len(candidates) > cs.config.TopN {
		candidates = candidates[:cs.config.TopN]
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if name, ok := index.NameByID(c.animeID); ok {
			names = append(names, name)
		}
	}
	return names
}

// ScorePreference builds a synthetic preference vector over the pivot
// rows, high at each matched seed, and ranks name columns by cosine
// similarity against it. When the second-ranked similarity falls below
// the confidence threshold the whole result is replaced by the
// sentinel; that is a quality gate, not an error.
func (cs *CollaborativeScorer) ScorePreference(seeds []string, pivot *ItemRatingPivot, index *CatalogIndex) []string {
	preference := make([]float64, len(pivot.RowIDs))
	firstSeed := ""
	for _, seed := range seeds {
		if strings.TrimSpace(seed) == "" {
			continue
		}
		if firstSeed == "" {
			firstSeed = seed
		}
		id, ok := index.LookupID(seed)
		if !ok {
			// Unmatched seeds are skipped in this variant.
			continue
		}
		if row, ok := pivot.RowOf(id); ok {
			preference[row] = cs.config.PreferenceRating
		}
	}
	if firstSeed == "" {
		return []string{}
	}

	type scored struct {
		col        int
		similarity float64
	}
	ranked := make([]scored, len(pivot.Columns))
	for j := range pivot.Columns {
		ranked[j] = scored{col: j, similarity: cosineSimilarity(preference, pivot.ColumnVector(j))}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].similarity > ranked[b].similarity
	})

	// Rank 0 may trivially be a self-match, so the gate looks at the
	// second-ranked score.
	if len(ranked) < 2 || ranked[1].similarity < cs.config.ConfidenceThreshold {
		cs.metrics.SentinelReturned()
		return []string{SentinelNoRecommendations}
	}

	seedKey := normalizeName(firstSeed)
	topCol := -1
	for _, r := range ranked {
		if normalizeName(pivot.Columns[r.col]) != seedKey {
			topCol = r.col
			break
		}
	}
	if topCol == -1 {
		return []string{}
	}

	topID, ok := index.LookupID(pivot.Columns[topCol])
	if !ok {
		return []string{}
	}
	topRow, ok := pivot.RowOf(topID)
	if !ok {
		return []string{}
	}

	// Items sharing the top match's rating profile: cells equal to the
	// preference rating in the top item's row.
	results := []string{}
	for j, name := range pivot.Columns {
		if normalizeName(name) == seedKey {
			continue
		}
		if pivot.Cell(topRow, j) == cs.config.PreferenceRating {
			results = append(results, name)
			if len(results) == cs.config.TopN {
				break
			}
		}
	}
	return results
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}
