package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"pr-activity-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Limiter ограничивает частоту запросов по ключу клиента.
type Limiter interface {
	Allow(key string) bool
}

// LoggingMiddleware добавляет структурированное логирование
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Выполняем запрос
			err := next(c)

			// Логируем детали запроса
			latency := time.Since(start)
			status := c.Response().Status

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().URL.Path,
				"status":     status,
				"latency":    latency,
				"user_agent": c.Request().UserAgent(),
				"ip":         c.RealIP(),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			if status >= 500 {
				entry.Error("Server error")
			} else if status >= 400 {
				entry.Warn("Client error")
			} else {
				entry.Info("Request processed")
			}

			return err
		}
	}
}

// AdmissionMiddleware отклоняет запросы к /api/ сверх лимита клиента с кодом 429.
// Остальные пути не ограничиваются.
func AdmissionMiddleware(limiter Limiter, logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, "/api/") {
				return next(c)
			}

			key := ClientKey(c)
			if !limiter.Allow(key) {
				logger.WithFields(logrus.Fields{
					"client": key,
					"path":   c.Request().URL.Path,
				}).Warn("Request rejected by rate limiter")

				httpErr, _ := domain.ToHTTPError(domain.ErrAdmissionDenied)
				return c.JSON(httpErr.Status, toAPIErrorResponse(httpErr))
			}

			return next(c)
		}
	}
}

// ClientKey определяет клиента: X-Forwarded-For, затем X-Real-IP, затем адрес соединения.
func ClientKey(c echo.Context) string {
	req := c.Request()
	if forwarded := req.Header.Get(echo.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(req.Header.Get(echo.HeaderXRealIP)); realIP != "" {
		return realIP
	}
	return c.RealIP()
}

// ErrorHandler отдает ошибки echo (404, ошибки привязки параметров) в формате ErrorResponse.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		code := "INTERNAL_ERROR"
		message := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
			switch {
			case status == http.StatusNotFound:
				code = "NOT_FOUND"
			case status < 500:
				code = "INVALID_REQUEST"
			}
		} else {
			logger.WithError(err).Error("Unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, toErrorResponse(code, message))
		}
		if err != nil {
			logger.WithError(err).Error("Failed to send error response")
		}
	}
}
