package services

import (
	"sort"

	"github.com/animatch/animatch/pkg/models"
)

// UserItemMatrix is the user_rows orientation of the rating pivot:
// rows are user ids, columns are anime ids, cells are ratings (mean
// when a user rated the same anime more than once). Missing cells read
// as 0 but stay distinguishable as unobserved for correlation.
type UserItemMatrix struct {
	UserIDs  []int
	AnimeIDs []int

	rowIndex map[int]int
	colIndex map[int]int
	ratings  [][]float64
	observed [][]bool
}

func NewUserItemMatrix(records []models.RatingRecord) *UserItemMatrix {
	userSet := make(map[int]struct{})
	animeSet := make(map[int]struct{})
	for _, r := range records {
		userSet[r.UserID] = struct{}{}
		animeSet[r.AnimeID] = struct{}{}
	}

	m := &UserItemMatrix{
		UserIDs:  sortedKeys(userSet),
		AnimeIDs: sortedKeys(animeSet),
	}
	m.rowIndex = indexOf(m.UserIDs)
	m.colIndex = indexOf(m.AnimeIDs)

	rows, cols := len(m.UserIDs), len(m.AnimeIDs)
	m.ratings = make([][]float64, rows)
	m.observed = make([][]bool, rows)
	counts := make([][]int, rows)
	for i := range m.ratings {
		m.ratings[i] = make([]float64, cols)
		m.observed[i] = make([]bool, cols)
		counts[i] = make([]int, cols)
	}

	for _, r := range records {
		i := m.rowIndex[r.UserID]
		j := m.colIndex[r.AnimeID]
		m.ratings[i][j] += r.Rating
		counts[i][j]++
		m.observed[i][j] = true
	}
	for i := range m.ratings {
		for j := range m.ratings[i] {
			if counts[i][j] > 1 {
				m.ratings[i][j] /= float64(counts[i][j])
			}
		}
	}

	return m
}

// Column returns an anime's rating column over all users together with
// its observed mask.
func (m *UserItemMatrix) Column(animeID int) (vals []float64, obs []bool, ok bool) {
	j, ok := m.colIndex[animeID]
	if !ok {
		return nil, nil, false
	}
	vals = make([]float64, len(m.UserIDs))
	obs = make([]bool, len(m.UserIDs))
	for i := range m.UserIDs {
		vals[i] = m.ratings[i][j]
		obs[i] = m.observed[i][j]
	}
	return vals, obs, true
}

// ItemRatingPivot is the item_rows orientation used by the preference
// variant: rows are anime ids, columns are anime names, built from
// records deduplicated on (anime_id, rating). The deduplication is a
// deliberate, documented policy of this variant even though it
// collapses identical ratings from different users.
type ItemRatingPivot struct {
	RowIDs  []int
	Columns []string

	rowIndex map[int]int
	colIndex map[string]int
	cells    [][]float64
}

// NewItemRatingPivot joins rating records to catalog names and pivots
// them. Records whose anime id has no catalog row are dropped.
func NewItemRatingPivot(records []models.RatingRecord, index *CatalogIndex) *ItemRatingPivot {
	type cellKey struct {
		animeID int
		rating  float64
	}
	deduped := make(map[cellKey]struct{})
	rowSet := make(map[int]struct{})
	colSet := make(map[string]struct{})

	for _, r := range records {
		name, ok := index.NameByID(r.AnimeID)
		if !ok {
			continue
		}
		deduped[cellKey{r.AnimeID, r.Rating}] = struct{}{}
		rowSet[r.AnimeID] = struct{}{}
		colSet[name] = struct{}{}
	}

	p := &ItemRatingPivot{
		RowIDs: sortedKeys(rowSet),
	}
	p.Columns = make([]string, 0, len(colSet))
	for name := range colSet {
		p.Columns = append(p.Columns, name)
	}
	sort.Strings(p.Columns)

	p.rowIndex = indexOf(p.RowIDs)
	p.colIndex = make(map[string]int, len(p.Columns))
	for j, name := range p.Columns {
		p.colIndex[normalizeName(name)] = j
	}

	rows, cols := len(p.RowIDs), len(p.Columns)
	p.cells = make([][]float64, rows)
	counts := make([][]int, rows)
	for i := range p.cells {
		p.cells[i] = make([]float64, cols)
		counts[i] = make([]int, cols)
	}

	for key := range deduped {
		name, _ := index.NameByID(key.animeID)
		i := p.rowIndex[key.animeID]
		j := p.colIndex[normalizeName(name)]
		p.cells[i][j] += key.rating
		counts[i][j]++
	}
	for i := range p.cells {
		for j := range p.cells[i] {
			if counts[i][j] > 1 {
				p.cells[i][j] /= float64(counts[i][j])
			}
		}
	}

	return p
}

func (p *ItemRatingPivot) Cell(row, col int) float64 {
	return p.cells[row][col]
}

func (p *ItemRatingPivot) RowOf(animeID int) (int, bool) {
	i, ok := p.rowIndex[animeID]
	return i, ok
}

func (p *ItemRatingPivot) ColOf(name string) (int, bool) {
	j, ok := p.colIndex[normalizeName(name)]
	return j, ok
}

// ColumnVector returns one name column over all rows.
func (p *ItemRatingPivot) ColumnVector(col int) []float64 {
	vals := make([]float64, len(p.RowIDs))
	for i := range p.RowIDs {
		vals[i] = p.cells[i][col]
	}
	return vals
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func indexOf(keys []int) map[int]int {
	idx := make(map[int]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}
	return idx
}
