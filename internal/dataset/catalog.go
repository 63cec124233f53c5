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

// Catalog is the parsed anime table plus a flag recording whether the
// source carried an explicit anime_id column. Synthesized ids are fine
// for the content path but the collaborative path needs real ids that
// line up with the ratings table.
type Catalog struct {
	Items  []models.CatalogItem
	HasIDs bool
}

// ReadCatalog parses a catalog CSV from r. The header must contain a
// name column; genre is optional and defaults to empty, anime_id is
// optional and synthesized from the row position when absent.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &ValidationError{Table: "catalog", Column: "name"}
		}
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := headerIndex(header)
	nameCol, ok := cols["name"]
	if !ok {
		return nil, &ValidationError{Table: "catalog", Column: "name"}
	}
	genreCol, hasGenre := cols["genre"]
	idCol, hasIDs := cols["anime_id"]

	catalog := &Catalog{HasIDs: hasIDs}
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row %d: %w", row+1, err)
		}
		if nameCol >= len(record) {
			continue
		}

		item := models.CatalogItem{
			ID:   row + 1,
			Name: strings.TrimSpace(record[nameCol]),
		}
		if hasIDs && idCol < len(record) {
			if id, err := strconv.Atoi(strings.TrimSpace(record[idCol])); err == nil {
				item.ID = id
			}
		}
		if hasGenre && genreCol < len(record) {
			item.Genre = strings.TrimSpace(record[genreCol])
		}

		catalog.Items = append(catalog.Items, item)
		row++
	}

	return catalog, nil
}

// LoadCatalog reads the catalog table from a CSV file on disk.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return ReadCatalog(f)
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := cols[key]; !exists {
			cols[key] = i
		}
	}
	return cols
}
