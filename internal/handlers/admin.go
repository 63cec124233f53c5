package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/dataset"
)

type AdminHandler struct {
	logger *logrus.Logger
	data   *dataset.Provider
}

func NewAdminHandler(logger *logrus.Logger, data *dataset.Provider) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		data:   data,
	}
}

// ReloadDatasets re-reads the configured dataset files into a fresh
// snapshot. In-flight scoring requests keep the snapshot they started
// with.
func (h *AdminHandler) ReloadDatasets(c *gin.Context) {
	store, err := h.data.Reload()
	if err != nil {
		h.logger.WithError(err).Error("Dataset reload failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "DATASET_RELOAD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"catalog_items":  len(store.CatalogItems()),
		"rating_records": len(store.Ratings()),
	})
}
