package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animatch/animatch/pkg/models"
)

func TestUserItemMatrix_Pivot(t *testing.T) {
	records := []models.RatingRecord{
		{UserID: 2, AnimeID: 269, Rating: 7},
		{UserID: 1, AnimeID: 20, Rating: 8},
		{UserID: 1, AnimeID: 269, Rating: 6},
	}

	m := NewUserItemMatrix(records)

	assert.Equal(t, []int{1, 2}, m.UserIDs)
	assert.Equal(t, []int{20, 269}, m.AnimeIDs)

	vals, obs, ok := m.Column(20)
	require.True(t, ok)
	assert.Equal(t, []float64{8, 0}, vals)
	assert.Equal(t, []bool{true, false}, obs)

	vals, obs, ok = m.Column(269)
	require.True(t, ok)
	assert.Equal(t, []float64{6, 7}, vals)
	assert.Equal(t, []bool{true, true}, obs)
}

func TestUserItemMatrix_DuplicateObservationsAveraged(t *testing.T) {
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 20, Rating: 6},
		{UserID: 1, AnimeID: 20, Rating: 10},
	}

	m := NewUserItemMatrix(records)

	vals, _, ok := m.Column(20)
	require.True(t, ok)
	assert.Equal(t, []float64{8}, vals)
}

func TestUserItemMatrix_UnknownColumn(t *testing.T) {
	m := NewUserItemMatrix([]models.RatingRecord{{UserID: 1, AnimeID: 20, Rating: 5}})

	_, _, ok := m.Column(999)
	assert.False(t, ok)
}

func TestItemRatingPivot_DeduplicatesOnItemAndRating(t *testing.T) {
	index := NewCatalogIndex(testCatalogItems())
	// Two users giving the same anime the same rating collapse to one
	// entry; distinct ratings for the same anime are averaged.
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 20, Rating: 10},
		{UserID: 2, AnimeID: 20, Rating: 10},
		{UserID: 1, AnimeID: 269, Rating: 6},
		{UserID: 2, AnimeID: 269, Rating: 10},
	}

	p := NewItemRatingPivot(records, index)

	assert.Equal(t, []int{20, 269}, p.RowIDs)
	assert.Equal(t, []string{"Bleach", "Naruto"}, p.Columns)

	narutoRow, ok := p.RowOf(20)
	require.True(t, ok)
	narutoCol, ok := p.ColOf("Naruto")
	require.True(t, ok)
	assert.Equal(t, 10.0, p.Cell(narutoRow, narutoCol))

	bleachRow, ok := p.RowOf(269)
	require.True(t, ok)
	bleachCol, ok := p.ColOf("Bleach")
	require.True(t, ok)
	assert.Equal(t, 8.0, p.Cell(bleachRow, bleachCol))

	// Off-profile cells stay at the fill value.
	assert.Equal(t, 0.0, p.Cell(narutoRow, bleachCol))
}

func TestItemRatingPivot_DropsRecordsWithoutCatalogRow(t *testing.T) {
	index := NewCatalogIndex(testCatalogItems())
	records := []models.RatingRecord{
		{UserID: 1, AnimeID: 999, Rating: 10},
		{UserID: 1, AnimeID: 20, Rating: 8},
	}

	p := NewItemRatingPivot(records, index)

	assert.Equal(t, []int{20}, p.RowIDs)
	assert.Equal(t, []string{"Naruto"}, p.Columns)
}
