package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animatch/animatch/pkg/models"
)

func collaborativeCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 101, Name: "Steins Gate", Genre: "Sci-Fi Thriller"},
		{ID: 102, Name: "Erased", Genre: "Mystery Thriller"},
		{ID: 103, Name: "Barakamon", Genre: "Slice of Life"},
		{ID: 104, Name: "Mushishi", Genre: "Mystery"},
	}
}

func TestCollaborativeScorer_CorrelationRanking(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	records := []models.RatingRecord{
		// 101 and 102 move together across three users.
		{UserID: 1, AnimeID: 101, Rating: 2}, {UserID: 1, AnimeID: 102, Rating: 2},
		{UserID: 2, AnimeID: 101, Rating: 4}, {UserID: 2, AnimeID: 102, Rating: 4},
		{UserID: 3, AnimeID: 101, Rating: 6}, {UserID: 3, AnimeID: 102, Rating: 7},
		// 103 overlaps with 101 on a single user only.
		{UserID: 1, AnimeID: 103, Rating: 9},
		// 104 overlaps twice but with zero variance.
		{UserID: 1, AnimeID: 104, Rating: 5},
		{UserID: 2, AnimeID: 104, Rating: 5},
	}
	matrix := NewUserItemMatrix(records)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	results := scorer.ScoreCorrelation([]string{"Steins Gate"}, matrix, index)

	// 103 lacks overlap, 104 has undefined correlation, and the seed
	// itself is excluded by id.
	assert.Equal(t, []string{"Erased"}, results)
}

func TestCollaborativeScorer_CorrelationExcludesSeedByID(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 101, Rating: 3},
		{UserID: 2, AnimeID: 101, Rating: 7},
	}
	matrix := NewUserItemMatrix(records)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	results := scorer.ScoreCorrelation([]string{"Steins Gate"}, matrix, index)

	assert.NotContains(t, results, "Steins Gate")
}

func TestCollaborativeScorer_CorrelationUnresolvedSeedMarker(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	matrix := NewUserItemMatrix(nil)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	results := scorer.ScoreCorrelation([]string{"Cowboy Bebop"}, matrix, index)

	assert.Equal(t, []string{"Anime 'Cowboy Bebop' not found in dataset"}, results)
}

func TestCollaborativeScorer_PreferenceSentinelBelowThreshold(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 101, Rating: 10},
		{UserID: 1, AnimeID: 102, Rating: 10},
		{UserID: 1, AnimeID: 103, Rating: 10},
	}
	pivot := NewItemRatingPivot(records, index)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	// A single seed concentrates all preference mass on its own row,
	// so the second-ranked similarity is 0 and the gate trips.
	results := scorer.ScorePreference([]string{"Steins Gate"}, pivot, index)

	assert.Equal(t, []string{"No suitable recommendations found!"}, results)
}

func TestCollaborativeScorer_PreferenceHappyPath(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 101, Rating: 10},
		{UserID: 1, AnimeID: 102, Rating: 10},
		{UserID: 1, AnimeID: 103, Rating: 10},
	}
	pivot := NewItemRatingPivot(records, index)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	results := scorer.ScorePreference([]string{"Steins Gate", "Erased"}, pivot, index)

	// The top non-seed match is Erased; its row carries a 10 only in
	// its own column, and the first seed's column is excluded.
	assert.Equal(t, []string{"Erased"}, results)
}

func TestCollaborativeScorer_PreferenceSkipsUnmatchedSeedsSilently(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 101, Rating: 10},
		{UserID: 1, AnimeID: 102, Rating: 10},
	}
	pivot := NewItemRatingPivot(records, index)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	results := scorer.ScorePreference([]string{"Steins Gate", "Cowboy Bebop", "Erased"}, pivot, index)

	// No not-found marker in this variant.
	for _, r := range results {
		assert.NotContains(t, r, "not found")
	}
}

func TestCollaborativeScorer_PreferenceEmptySeeds(t *testing.T) {
	index := NewCatalogIndex(collaborativeCatalog())
	pivot := NewItemRatingPivot(nil, index)
	scorer := NewCollaborativeScorer(testRecommendationConfig(), testLogger(), nil)

	assert.Empty(t, scorer.ScorePreference([]string{"", ""}, pivot, index))
}
