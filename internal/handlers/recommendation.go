package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/dataset"
	"github.com/animatch/animatch/internal/services"
	"github.com/animatch/animatch/pkg/models"
)

type RecommendationHandler struct {
	service *services.RecommendationService
	logger  *logrus.Logger
}

func NewRecommendationHandler(service *services.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Invalid recommendation request format",
			},
		})
		return
	}

	results, cacheHit, err := h.service.Recommend(c.Request.Context(), req)
	if err != nil {
		var validationErr *dataset.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": gin.H{
					"code":    "DATASET_VALIDATION_FAILED",
					"message": validationErr.Error(),
				},
			})
			return
		}

		h.logger.WithError(err).WithField("algorithm", req.Algorithm).
			Error("Failed to generate recommendations")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "RECOMMENDATION_GENERATION_FAILED",
				"message": "Failed to generate recommendations",
			},
		})
		return
	}

	variant := req.Variant
	if req.Algorithm == models.AlgorithmCollaborative && variant == "" {
		variant = models.VariantCorrelation
	}

	c.JSON(http.StatusOK, models.RecommendationResponse{
		ID:          uuid.New(),
		Algorithm:   req.Algorithm,
		Variant:     variant,
		Results:     results,
		GeneratedAt: time.Now().UTC(),
		CacheHit:    cacheHit,
	})
}
