package models

// CatalogItem is one anime row from the catalog dataset. Items are
// immutable after load; ID is synthesized from the row position when
// the source has no anime_id column.
type CatalogItem struct {
	ID    int    `json:"anime_id"`
	Name  string `json:"name"`
	Genre string `json:"genre"`
}

// RatingRecord is one observed (user, anime, rating) triple from the
// ratings dataset.
type RatingRecord struct {
	UserID  int     `json:"user_id"`
	AnimeID int     `json:"anime_id"`
	Rating  float64 `json:"rating"`
}
