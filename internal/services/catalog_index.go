package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/animatch/animatch/pkg/models"
)

// CatalogIndex provides case-insensitive name lookup over one catalog
// snapshot. When duplicate names or ids exist, the first row wins.
type CatalogIndex struct {
	items  []models.CatalogItem
	byName map[string]int
	byID   map[int]int
}

func NewCatalogIndex(items []models.CatalogItem) *CatalogIndex {
	ci := &CatalogIndex{
		items:  items,
		byName: make(map[string]int, len(items)),
		byID:   make(map[int]int, len(items)),
	}

	for i, item := range items {
		key := normalizeName(item.Name)
		if _, exists := ci.byName[key]; !exists {
			ci.byName[key] = i
		}
		if _, exists := ci.byID[item.ID]; !exists {
			ci.byID[item.ID] = i
		}
	}

	return ci
}

func (ci *CatalogIndex) Items() []models.CatalogItem {
	return ci.items
}

func (ci *CatalogIndex) Len() int {
	return len(ci.items)
}

// LookupByName resolves a name to its catalog row. A miss is not an
// error; callers degrade per their documented policy.
func (ci *CatalogIndex) LookupByName(name string) (int, bool) {
	row, ok := ci.byName[normalizeName(name)]
	return row, ok
}

// LookupID resolves a name to the item's anime id.
func (ci *CatalogIndex) LookupID(name string) (int, bool) {
	row, ok := ci.byName[normalizeName(name)]
	if !ok {
		return 0, false
	}
	return ci.items[row].ID, true
}

func (ci *CatalogIndex) NameAt(row int) string {
	return ci.items[row].Name
}

// NameByID maps an anime id back to its display name.
func (ci *CatalogIndex) NameByID(id int) (string, bool) {
	row, ok := ci.byID[id]
	if !ok {
		return "", false
	}
	return ci.items[row].Name, true
}

func normalizeName(s string) string {
	return norm.NFKC.String(strings.ToLower(strings.TrimSpace(s)))
}
