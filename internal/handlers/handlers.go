package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/animatch/animatch/internal/dataset"
	"github.com/animatch/animatch/internal/services"
)

type Handlers struct {
	Health         *HealthHandler
	Recommendation *RecommendationHandler
	Pages          *PagesHandler
	Admin          *AdminHandler
}

func New(logger *logrus.Logger, svcs *services.Services, data *dataset.Provider) *Handlers {
	return &Handlers{
		Health:         NewHealthHandler(logger, svcs.Health),
		Recommendation: NewRecommendationHandler(svcs.Recommendation, logger),
		Pages:          NewPagesHandler(logger),
		Admin:          NewAdminHandler(logger, data),
	}
}
