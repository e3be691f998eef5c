package handler

import (
	"pr-activity-service/api"
	"pr-activity-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*ContributionHandler
	*StatsHandler
	*HealthHandler
}

func NewAPIHandler(
	contributionUseCase domain.ContributionUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		ContributionHandler: NewContributionHandler(contributionUseCase, logger),
		StatsHandler:        NewStatsHandler(statsUseCase, logger),
		HealthHandler:       NewHealthHandler(),
	}
}
