// Package mockgithub - упрощенная реализация GitHub REST API для локального запуска и тестов.
package mockgithub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"pr-activity-service/internal/github"

	"github.com/labstack/echo/v4"
)

// Fixture - содержимое JSON-файла с данными мок-сервера.
type Fixture struct {
	// Ключ - owner/repo
	PullRequests map[string][]github.PullRequestPayload `json:"pull_requests"`
	// Ключ - owner/repo#number
	Reviews map[string][]github.ReviewPayload `json:"reviews"`
}

// Failure - принудительный ответ с ошибкой для пути.
type Failure struct {
	Status  int
	Body    string
	Headers map[string]string
	Delay   time.Duration
}

// RecordedRequest - запрос, полученный мок-сервером.
type RecordedRequest struct {
	Path   string
	Query  string
	Header http.Header
}

// Server хранит данные и настройки мок-сервера.
type Server struct {
	mu            sync.RWMutex
	pulls         map[string][]github.PullRequestPayload
	reviews       map[string][]github.ReviewPayload
	failures      map[string]Failure
	requiredToken string
	requests      []RecordedRequest
}

// New создает пустой мок-сервер.
func New() *Server {
	return &Server{
		pulls:    make(map[string][]github.PullRequestPayload),
		reviews:  make(map[string][]github.ReviewPayload),
		failures: make(map[string]Failure),
	}
}

// LoadFixture читает данные из JSON-файла.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Apply добавляет данные фикстуры.
func (s *Server) Apply(f *Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for repo, prs := range f.PullRequests {
		s.pulls[repo] = append(s.pulls[repo], prs...)
	}
	for key, reviews := range f.Reviews {
		s.reviews[key] = append(s.reviews[key], reviews...)
	}
}

// AddPullRequest добавляет PR в конец списка репозитория.
func (s *Server) AddPullRequest(repo string, pr github.PullRequestPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pulls[repo] = append(s.pulls[repo], pr)
}

// AddReview добавляет ревью к PR с номером number.
func (s *Server) AddReview(repo string, number int, review github.ReviewPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := reviewKey(repo, number)
	s.reviews[key] = append(s.reviews[key], review)
}

// Fail заставляет сервер отвечать ошибкой на запросы к path.
func (s *Server) Fail(path string, f Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = f
}

// RequireToken включает проверку заголовка Authorization.
func (s *Server) RequireToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requiredToken = token
}

// Requests возвращает копию журнала запросов.
func (s *Server) Requests() []RecordedRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Handler возвращает echo-приложение с маршрутами API.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(s.recordMiddleware)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	e.GET("/repos/:owner/:repo/pulls", s.listPulls)
	e.GET("/repos/:owner/:repo/pulls/:number/reviews", s.listReviews)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return notFound(c)
	})

	return e
}

func (s *Server) recordMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Path:   req.URL.Path,
			Query:  req.URL.RawQuery,
			Header: req.Header.Clone(),
		})
		failure, failing := s.failures[req.URL.Path]
		requiredToken := s.requiredToken
		s.mu.Unlock()

		if failing {
			if failure.Delay > 0 {
				select {
				case <-time.After(failure.Delay):
				case <-req.Context().Done():
					return nil
				}
			}
			for k, v := range failure.Headers {
				c.Response().Header().Set(k, v)
			}
			if failure.Status == 0 {
				return next(c)
			}
			return c.Blob(failure.Status, echo.MIMEApplicationJSON, []byte(failure.Body))
		}

		if requiredToken != "" && req.Header.Get("Authorization") != "Bearer "+requiredToken {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"message":           "Bad credentials",
				"documentation_url": "https://docs.github.com/rest",
			})
		}

		return next(c)
	}
}

func (s *Server) listPulls(c echo.Context) error {
	repo := c.Param("owner") + "/" + c.Param("repo")

	s.mu.RLock()
	prs, ok := s.pulls[repo]
	s.mu.RUnlock()
	if !ok {
		return notFound(c)
	}

	state := c.QueryParam("state")
	if state == "" {
		state = "open"
	}
	filtered := make([]github.PullRequestPayload, 0, len(prs))
	for _, pr := range prs {
		if state == "all" || pr.State == state {
			filtered = append(filtered, pr)
		}
	}

	// Как и GitHub по умолчанию: сначала новые
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return sendPage(c, filtered)
}

func (s *Server) listReviews(c echo.Context) error {
	repo := c.Param("owner") + "/" + c.Param("repo")
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return notFound(c)
	}

	s.mu.RLock()
	reviews := s.reviews[reviewKey(repo, number)]
	s.mu.RUnlock()

	if reviews == nil {
		reviews = []github.ReviewPayload{}
	}
	return sendPage(c, reviews)
}

func sendPage[T any](c echo.Context, items []T) error {
	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage <= 0 {
		perPage = 30
	}
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	h := c.Response().Header()
	h.Set("X-GitHub-Media-Type", "github.v3; format=json")
	h.Set("X-RateLimit-Limit", "5000")
	if h.Get("X-RateLimit-Remaining") == "" {
		h.Set("X-RateLimit-Remaining", "4999")
	}
	h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))

	return c.JSON(http.StatusOK, items[start:end])
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{
		"message":           "Not Found",
		"documentation_url": "https://docs.github.com/rest",
	})
}

func reviewKey(repo string, number int) string {
	return fmt.Sprintf("%s#%d", repo, number)
}
