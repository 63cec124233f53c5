package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/animatch/animatch/pkg/models"
)

// ReadRatings parses a ratings CSV from r. The header must contain
// user_id, anime_id and rating columns. Rows with unparsable values
// are skipped rather than failing the whole load.
func ReadRatings(r io.Reader) ([]models.RatingRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &ValidationError{Table: "ratings", Column: "user_id"}
		}
		return nil, fmt.Errorf("failed to read ratings header: %w", err)
	}

	cols := headerIndex(header)
	userCol, ok := cols["user_id"]
	if !ok {
		return nil, &ValidationError{Table: "ratings", Column: "user_id"}
	}
	animeCol, ok := cols["anime_id"]
	if !ok {
		return nil, &ValidationError{Table: "ratings", Column: "anime_id"}
	}
	ratingCol, ok := cols["rating"]
	if !ok {
		return nil, &ValidationError{Table: "ratings", Column: "rating"}
	}

	var records []models.RatingRecord
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read ratings row %d: %w", row+1, err)
		}
		row++
		if userCol >= len(record) || animeCol >= len(record) || ratingCol >= len(record) {
			continue
		}

		userID, err := strconv.Atoi(strings.TrimSpace(record[userCol]))
		if err != nil {
			continue
		}
		animeID, err := strconv.Atoi(strings.TrimSpace(record[animeCol]))
		if err != nil {
			continue
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(record[ratingCol]), 64)
		if err != nil {
			continue
		}

		records = append(records, models.RatingRecord{
			UserID:  userID,
			AnimeID: animeID,
			Rating:  rating,
		})
	}

	return records, nil
}

// LoadRatings reads the ratings table from a CSV file on disk.
func LoadRatings(path string) ([]models.RatingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ratings file: %w", err)
	}
	defer f.Close()

	return ReadRatings(f)
}
