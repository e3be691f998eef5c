package usecase

import (
	"context"
	"fmt"

	"pr-activity-service/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Aggregator собирает созданные и просмотренные пользователем PR репозитория.
type Aggregator struct {
	source      domain.PRSource
	concurrency int
	logger      *logrus.Logger
}

// NewAggregator создает новый экземпляр Aggregator.
// concurrency ограничивает число одновременных запросов ревью.
func NewAggregator(source domain.PRSource, concurrency int, logger *logrus.Logger) *Aggregator {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Aggregator{
		source:      source,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Aggregate загружает все PR репозитория и их ревью.
// Ошибка получения списка PR фатальна, ошибка получения ревью одного PR
// превращается в пустой список ревью и предупреждение.
func (a *Aggregator) Aggregate(ctx context.Context, owner, repo, user string) (*domain.Contributions, error) {
	// 1. Список PR
	prs, err := a.source.ListPullRequests(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	// 2. Ревью каждого PR, результаты по индексу
	reviews := make([][]*domain.Review, len(prs))
	failures := make([]error, len(prs))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, pr := range prs {
		i, pr := i, pr
		g.Go(func() error {
			list, err := a.source.ListReviews(ctx, owner, repo, pr.Number)
			if err != nil {
				failures[i] = err
				return nil
			}
			reviews[i] = list
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Разбиваем на созданные и просмотренные, сохраняя порядок списка
	result := &domain.Contributions{
		Created:  make([]*domain.PullRequestWithReviews, 0),
		Reviewed: make([]*domain.PullRequestWithReviews, 0),
	}
	for i, pr := range prs {
		pr.Reviews = reviews[i]
		if failures[i] != nil {
			a.logger.WithFields(logrus.Fields{
				"repository": owner + "/" + repo,
				"pr_number":  pr.Number,
				"error":      failures[i].Error(),
			}).Warn("Failed to fetch reviews, continuing without them")
			result.Warnings = append(result.Warnings, fmt.Sprintf("reviews for PR #%d are unavailable: %v", pr.Number, failures[i]))
		}
		if pr.Reviews == nil {
			pr.Reviews = []*domain.Review{}
		}

		if pr.User.Login == user {
			result.Created = append(result.Created, domain.NewPullRequestWithReviews(*pr, ""))
			continue
		}
		if len(domain.ReviewsBy(pr.Reviews, user)) > 0 {
			result.Reviewed = append(result.Reviewed, domain.NewPullRequestWithReviews(*pr, user))
		}
	}

	return result, nil
}
