package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animatch/animatch/pkg/models"
)

func testCatalogItems() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 20, Name: "Naruto", Genre: "Action Shounen"},
		{ID: 269, Name: "Bleach", Genre: "Action Shounen"},
		{ID: 2167, Name: "Clannad", Genre: "Drama Romance"},
	}
}

func TestCatalogIndex_LookupByNameCaseInsensitive(t *testing.T) {
	index := NewCatalogIndex(testCatalogItems())

	lower, ok := index.LookupByName("naruto")
	require.True(t, ok)
	upper, ok := index.LookupByName("NARUTO")
	require.True(t, ok)
	assert.Equal(t, lower, upper)

	padded, ok := index.LookupByName("  Naruto  ")
	require.True(t, ok)
	assert.Equal(t, lower, padded)
}

func TestCatalogIndex_LookupMiss(t *testing.T) {
	index := NewCatalogIndex(testCatalogItems())

	_, ok := index.LookupByName("Cowboy Bebop")
	assert.False(t, ok)

	_, ok = index.LookupID("Cowboy Bebop")
	assert.False(t, ok)
}

func TestCatalogIndex_FirstMatchWins(t *testing.T) {
	items := []models.CatalogItem{
		{ID: 1, Name: "Naruto", Genre: "Action"},
		{ID: 2, Name: "NARUTO", Genre: "Duplicate"},
	}
	index := NewCatalogIndex(items)

	row, ok := index.LookupByName("naruto")
	require.True(t, ok)
	assert.Equal(t, 0, row)

	id, ok := index.LookupID("naruto")
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestCatalogIndex_NameByID(t *testing.T) {
	index := NewCatalogIndex(testCatalogItems())

	name, ok := index.NameByID(269)
	require.True(t, ok)
	assert.Equal(t, "Bleach", name)

	_, ok = index.NameByID(999)
	assert.False(t, ok)
}
