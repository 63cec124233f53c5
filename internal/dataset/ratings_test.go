package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRatings(t *testing.T) {
	csv := "user_id,anime_id,rating\n" +
		"1,20,8\n" +
		"1,269,7.5\n" +
		"2,20,9\n"

	records, err := ReadRatings(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].UserID)
	assert.Equal(t, 20, records[0].AnimeID)
	assert.Equal(t, 8.0, records[0].Rating)
	assert.Equal(t, 7.5, records[1].Rating)
}

func TestReadRatings_SkipsUnparsableRows(t *testing.T) {
	csv := "user_id,anime_id,rating\n" +
		"1,20,8\n" +
		"x,269,7\n" +
		"2,20,not-a-number\n"

	records, err := ReadRatings(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 20, records[0].AnimeID)
}

func TestReadRatings_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		missing string
	}{
		{name: "no user_id", header: "anime_id,rating", missing: "user_id"},
		{name: "no anime_id", header: "user_id,rating", missing: "anime_id"},
		{name: "no rating", header: "user_id,anime_id", missing: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRatings(strings.NewReader(tt.header + "\n"))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "ratings", validationErr.Table)
			assert.Equal(t, tt.missing, validationErr.Column)
		})
	}
}
