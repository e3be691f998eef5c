package domain

import (
	"context"
	"strings"
	"time"
)

// Состояния пул-реквеста
const (
	PRStateOpen   = "open"
	PRStateClosed = "closed"
)

// User представляет учетную запись на хостинге кода.
type User struct {
	Login string
	ID    int64
}

// PullRequest представляет пул-реквест репозитория вместе с его ревью.
type PullRequest struct {
	ID        int64
	Number    int
	Title     string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
	MergedAt  *time.Time
	User      User
	HTMLURL   string
	Reviews   []*Review
}

// Normalize приводит PR к инварианту: merged_at подразумевает closed_at и state=closed.
func (pr *PullRequest) Normalize() {
	if pr.MergedAt == nil {
		return
	}
	if pr.ClosedAt == nil {
		closedAt := *pr.MergedAt
		pr.ClosedAt = &closedAt
	}
	pr.State = PRStateClosed
}

// PullRequestWithReviews - PR с производными полями жизненного цикла ревью.
// Производные поля никогда не хранятся, а вычисляются из ревью.
type PullRequestWithReviews struct {
	PullRequest
	ReviewStartedAt  *time.Time
	ReviewApprovedAt *time.Time
}

// NewPullRequestWithReviews вычисляет жизненный цикл ревью с точки зрения viewpoint.
// Пустой viewpoint означает всех ревьюверов.
func NewPullRequestWithReviews(pr PullRequest, viewpoint string) *PullRequestWithReviews {
	SortReviews(pr.Reviews)
	lc := DeriveLifecycle(pr.Reviews, viewpoint)
	return &PullRequestWithReviews{
		PullRequest:      pr,
		ReviewStartedAt:  lc.StartedAt,
		ReviewApprovedAt: lc.ApprovedAt,
	}
}

// Contributions - результат агрегации для пары (репозиторий, пользователь).
type Contributions struct {
	Created  []*PullRequestWithReviews
	Reviewed []*PullRequestWithReviews

	// Только для транспорта, в кэш не пишутся
	Cached   bool
	Warnings []string
}

// ContributionsQuery описывает входящий запрос на получение активности пользователя.
type ContributionsQuery struct {
	User                string
	Repository          string
	ForceRefresh        bool
	ClientToken         string
	AuthorizationHeader string
}

// SplitRepository разбирает строку вида owner/repo.
func SplitRepository(repository string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", ErrInvalidRepository
	}
	return owner, name, nil
}

// PRSource определяет контракт удаленного источника пул-реквестов.
type PRSource interface {
	ListPullRequests(ctx context.Context, owner, repo string) ([]*PullRequest, error)
	ListReviews(ctx context.Context, owner, repo string, number int) ([]*Review, error)
}

// ContributionRepository определяет контракт кэша пул-реквестов и ревью.
type ContributionRepository interface {
	Init(ctx context.Context) error
	HasCachedData(ctx context.Context, user, repository string) (bool, error)
	GetCachedData(ctx context.Context, user, repository string) (*Contributions, error)
	Upsert(ctx context.Context, pr *PullRequestWithReviews, repository string) error
}
