package services

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/animatch/animatch/internal/config"
)

// SentinelNoRecommendations is returned in place of a ranked list when
// the preference variant's quality gate fails. It signals low
// confidence, not an error.
const SentinelNoRecommendations = "No suitable recommendations found!"

// NotFoundMessage is the marker emitted for a seed name with no
// catalog match. The seed's literal text is embedded.
func NotFoundMessage(seed string) string {
	return fmt.Sprintf("Anime '%s' not found in dataset", seed)
}

// ContentScorer ranks catalog items by bag-of-words cosine similarity
// over each item's genre and name text.
type ContentScorer struct {
	config  *config.RecommendationConfig
	logger  *logrus.Logger
	metrics *MetricsCollector
}

func NewContentScorer(cfg *config.RecommendationConfig, logger *logrus.Logger, metrics *MetricsCollector) *ContentScorer {
	return &ContentScorer{
		config:  cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// Score returns the concatenated top-N lists for each seed, in seed
// input order. Empty seed strings are skipped; unresolved seeds emit a
// not-found marker instead of aborting the batch. Results are not
// deduplicated across seeds.
func (cs *ContentScorer) Score(seeds []string, index *CatalogIndex) []string {
	results := []string{}

	// Vocabulary and similarity matrix are derived fresh from the
	// catalog snapshot for every request.
	sim := cs.buildSimilarityMatrix(index)

	for _, seed := range seeds {
		if strings.TrimSpace(seed) == "" {
			continue
		}

		row, ok := index.LookupByName(seed)
		if !ok {
			cs.metrics.SeedNotFound()
			results = append(results, NotFoundMessage(seed))
			continue
		}

		for _, other := range cs.rankBySimilarity(sim, row, index.Len()) {
			results = append(results, index.NameAt(other))
		}
	}

	return results
}

// buildSimilarityMatrix computes pairwise cosine similarity between the
// count vectors of every catalog row. O(n^2) in catalog size, which is
// within interactive latency at the hundreds-to-low-thousands scale
// this serves.
func (cs *ContentScorer) buildSimilarityMatrix(index *CatalogIndex) *mat.Dense {
	items := index.Items()
	n := len(items)
	if n == 0 {
		return nil
	}

	vocabulary := make(map[string]int)
	rowTokens := make([][]string, n)
	for i, item := range items {
		tokens := tokenize(item.Genre + " " + item.Name)
		rowTokens[i] = tokens
		for _, token := range tokens {
			if _, ok := vocabulary[token]; !ok {
				vocabulary[token] = len(vocabulary)
			}
		}
	}

	width := len(vocabulary)
	if width == 0 {
		width = 1
	}

	counts := mat.NewDense(n, width, nil)
	for i, tokens := range rowTokens {
		for _, token := range tokens {
			j := vocabulary[token]
			counts.Set(i, j, counts.At(i, j)+1)
		}
	}

	// Row-normalize so the product below yields cosine similarity.
	for i := 0; i < n; i++ {
		row := counts.RawRowView(i)
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
	}

	sim := mat.NewDense(n, n, nil)
	sim.Mul(counts, counts.T())
	return sim
}

// rankBySimilarity orders all rows except the seed row by similarity
// descending, breaking ties by original catalog order, and keeps the
// top N.
func (cs *ContentScorer) rankBySimilarity(sim *mat.Dense, seedRow, n int) []int {
	candidates := make([]int, 0, n-1)
	for j := 0; j < n; j++ {
		if j != seedRow {
			candidates = append(candidates, j)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return sim.At(seedRow, candidates[a]) > sim.At(seedRow, candidates[b])
	})

	if len(candidates) > cs.config.TopN {
		candidates = candidates[:cs.config.TopN]
	}
	return candidates
}

// tokenize lowercases and splits on non-alphanumeric runs. No stemming.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
