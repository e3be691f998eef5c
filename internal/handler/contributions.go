package handler

import (
	"net/http"

	"pr-activity-service/api"
	"pr-activity-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ContributionHandler обрабатывает HTTP-запросы активности пользователя
type ContributionHandler struct {
	*BaseHandler
	contributionUseCase domain.ContributionUseCase
}

// NewContributionHandler создает новый экземпляр ContributionHandler
func NewContributionHandler(contributionUseCase domain.ContributionUseCase, logger *logrus.Logger) *ContributionHandler {
	return &ContributionHandler{
		BaseHandler:         NewBaseHandler(logger),
		contributionUseCase: contributionUseCase,
	}
}

// GetGithub возвращает созданные и просмотренные PR; токен берется из заголовка Authorization
func (h *ContributionHandler) GetGithub(c echo.Context, params api.GetGithubParams) error {
	return h.contributions(c, "get_contributions", params.User, params.Repo, deref(params.Refresh), "", deref(params.Authorization))
}

// PostGithub то же, что GetGithub, но параметры и токен клиента передаются в JSON теле
func (h *ContributionHandler) PostGithub(c echo.Context, params api.PostGithubParams) error {
	var req api.PostGithubJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind contributions request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "invalid JSON body"))
	}

	return h.contributions(c, "post_contributions", req.User, req.Repo, deref(req.Refresh), deref(req.Token), deref(params.Authorization))
}

func (h *ContributionHandler) contributions(c echo.Context, operation, rawUser, rawRepo string, refresh bool, token, authorization string) error {
	user, repo, err := validateQuery(rawUser, rawRepo)
	if err != nil {
		h.logRequest(c, operation).WithError(err).Warn("Invalid contributions request")
		return h.respondError(c, err)
	}

	logEntry := h.logRequest(c, operation).WithFields(logrus.Fields{
		"user":       user,
		"repository": repo,
		"refresh":    refresh,
	})
	logEntry.Info("Fetching contributions")

	result, err := h.contributionUseCase.GetContributions(c.Request().Context(), domain.ContributionsQuery{
		User:                user,
		Repository:          repo,
		ForceRefresh:        refresh,
		ClientToken:         token,
		AuthorizationHeader: authorization,
	})
	if err != nil {
		logEntry.WithError(err).Error("Failed to get contributions")
		return h.respondError(c, err)
	}

	logEntry.WithFields(logrus.Fields{
		"created":  len(result.Created),
		"reviewed": len(result.Reviewed),
		"cached":   result.Cached,
	}).Info("Contributions retrieved successfully")
	return c.JSON(http.StatusOK, toAPIContributions(result))
}
