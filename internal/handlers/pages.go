package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/pkg/models"
)

// PagesHandler serves the static informational content of the shell:
// the navigation pages, the community picks list, and the feedback
// form sink. Feedback is logged, not persisted.
type PagesHandler struct {
	logger *logrus.Logger
	pages  map[string]models.PageContent
	picks  []string
}

func NewPagesHandler(logger *logrus.Logger) *PagesHandler {
	return &PagesHandler{
		logger: logger,
		pages:  defaultPages(),
		picks: []string{
			"One Piece",
			"Naruto",
			"Bleach",
			"Attack on Titan",
			"My Hero Academia",
		},
	}
}

func (h *PagesHandler) GetPage(c *gin.Context) {
	page, ok := h.pages[c.Param("page")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":    "PAGE_NOT_FOUND",
				"message": "Unknown page",
			},
		})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PagesHandler) CommunityPicks(c *gin.Context) {
	c.JSON(http.StatusOK, models.CommunityPicksResponse{Picks: h.picks})
}

func (h *PagesHandler) SubmitFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Invalid feedback format",
			},
		})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"rating":   req.Rating,
		"comments": req.Comments,
	}).Info("Feedback received")

	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your feedback!"})
}

func defaultPages() map[string]models.PageContent {
	return map[string]models.PageContent{
		"home": {
			Title: "Welcome to AniMatch - Your Personalized Anime Discovery Companion",
			Body: []string{
				"AniMatch helps you find the perfect anime to watch based on your preferences and viewing history.",
			},
		},
		"about": {
			Title: "About AniMatch",
			Body: []string{
				"AniMatch combines content-based and collaborative filtering to suggest anime tailored to your tastes.",
				"Our mission is to create the most personalized and efficient anime recommendation experience.",
			},
		},
		"guidelines": {
			Title: "Guidelines",
			Body: []string{
				"1. Use the pre-loaded dataset: ensure your dataset contains anime titles, genres, and ratings.",
				"2. Choose your favorite anime: input up to three anime titles you like.",
				"3. Get recommendations: based on your input, AniMatch will suggest new anime for you.",
				"4. Explore community features: share your recommendations and see what others are watching.",
			},
		},
		"community": {
			Title: "Community Features",
			Body: []string{
				"Join discussions, share your watchlist, and see what others are watching.",
			},
		},
		"feedback": {
			Title: "Feedback",
			Body: []string{
				"We value your feedback! Please rate your experience and provide comments on the recommendations.",
			},
		},
	}
}
