package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AlgorithmContent       = "content"
	AlgorithmCollaborative = "collaborative"

	VariantCorrelation = "correlation"
	VariantPreference  = "preference"
)

type RecommendationRequest struct {
	Algorithm string   `json:"algorithm" binding:"required,oneof=content collaborative"`
	Variant   string   `json:"variant" binding:"omitempty,oneof=correlation preference"`
	Seeds     []string `json:"seeds" binding:"max=3,dive,max=200"`
}

type RecommendationResponse struct {
	ID          uuid.UUID `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Variant     string    `json:"variant,omitempty"`
	Results     []string  `json:"results"`
	GeneratedAt time.Time `json:"generated_at"`
	CacheHit    bool      `json:"cache_hit"`
}

type FeedbackRequest struct {
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comments string `json:"comments" binding:"max=2000"`
}

type PageContent struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`
}

type CommunityPicksResponse struct {
	Picks []string `json:"picks"`
}
