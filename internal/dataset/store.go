package dataset

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/config"
	"github.com/animatch/animatch/pkg/models"
)

// Store is one immutable snapshot of the loaded datasets. Scoring
// requests only ever read from a snapshot; a reload produces a new
// Store and never touches an existing one.
type Store struct {
	catalog *Catalog
	ratings []models.RatingRecord
}

func NewStore(catalog *Catalog, ratings []models.RatingRecord) *Store {
	return &Store{catalog: catalog, ratings: ratings}
}

func (s *Store) CatalogItems() []models.CatalogItem {
	return s.catalog.Items
}

func (s *Store) CatalogHasIDs() bool {
	return s.catalog.HasIDs
}

func (s *Store) Ratings() []models.RatingRecord {
	return s.ratings
}

// Provider owns the current Store snapshot. Snapshots swap atomically
// on reload so in-flight requests keep the snapshot they started with.
type Provider struct {
	config  config.DataConfig
	logger  *logrus.Logger
	current atomic.Pointer[Store]
}

func NewProvider(cfg config.DataConfig, logger *logrus.Logger) (*Provider, error) {
	p := &Provider{config: cfg, logger: logger}
	if _, err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot returns the current read-only Store.
func (p *Provider) Snapshot() *Store {
	return p.current.Load()
}

// Reload re-reads the configured dataset files and swaps in a fresh
// snapshot. On failure the previous snapshot stays in place.
func (p *Provider) Reload() (*Store, error) {
	catalog, err := LoadCatalog(p.config.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	ratings, err := LoadRatings(p.config.RatingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	store := NewStore(catalog, ratings)
	p.current.Store(store)

	p.logger.WithFields(logrus.Fields{
		"catalog_items":  len(catalog.Items),
		"rating_records": len(ratings),
		"explicit_ids":   catalog.HasIDs,
	}).Info("Datasets loaded")

	return store, nil
}
