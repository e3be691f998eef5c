package handler

import (
	"net/http"

	"pr-activity-service/api"
	"pr-activity-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// StatsHandler обрабатывает HTTP-запросы для статистики
type StatsHandler struct {
	*BaseHandler
	statsUseCase domain.StatsUseCase
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUseCase domain.StatsUseCase, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  NewBaseHandler(logger),
		statsUseCase: statsUseCase,
	}
}

// GetGithubStats возвращает сводку по активности пользователя
func (h *StatsHandler) GetGithubStats(c echo.Context, params api.GetGithubStatsParams) error {
	user, repo, err := validateQuery(params.User, params.Repo)
	if err != nil {
		return h.respondError(c, err)
	}

	logEntry := h.logRequest(c, "get_stats").WithFields(logrus.Fields{
		"user":       user,
		"repository": repo,
	})

	stats, err := h.statsUseCase.GetContributionStats(c.Request().Context(), domain.ContributionsQuery{
		User:                user,
		Repository:          repo,
		ForceRefresh:        deref(params.Refresh),
		AuthorizationHeader: deref(params.Authorization),
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to get contribution stats")
		return h.respondError(c, err)
	}

	logEntry.Info("Contribution stats retrieved successfully")
	return c.JSON(http.StatusOK, toAPIStats(stats))
}
