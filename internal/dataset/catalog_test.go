package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCatalog(t *testing.T) {
	csv := "anime_id,name,genre\n" +
		"20,Naruto,Action Shounen\n" +
		"269,Bleach,Action Shounen\n" +
		"2167,Clannad,Drama Romance\n"

	catalog, err := ReadCatalog(strings.NewReader(csv))
	require.NoError(t, err)

	assert.True(t, catalog.HasIDs)
	require.Len(t, catalog.Items, 3)
	assert.Equal(t, 20, catalog.Items[0].ID)
	assert.Equal(t, "Naruto", catalog.Items[0].Name)
	assert.Equal(t, "Action Shounen", catalog.Items[0].Genre)
}

func TestReadCatalog_SynthesizedIDs(t *testing.T) {
	csv := "name\nNaruto\nBleach\n"

	catalog, err := ReadCatalog(strings.NewReader(csv))
	require.NoError(t, err)

	assert.False(t, catalog.HasIDs)
	require.Len(t, catalog.Items, 2)
	assert.Equal(t, 1, catalog.Items[0].ID)
	assert.Equal(t, 2, catalog.Items[1].ID)
	assert.Equal(t, "", catalog.Items[0].Genre)
}

func TestReadCatalog_MissingNameColumn(t *testing.T) {
	csv := "anime_id,genre\n20,Action\n"

	_, err := ReadCatalog(strings.NewReader(csv))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "catalog", validationErr.Table)
	assert.Equal(t, "name", validationErr.Column)
}

func TestReadCatalog_Empty(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader(""))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}
