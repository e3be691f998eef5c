package usecase

import (
	"context"
	"time"

	"pr-activity-service/internal/domain"
)

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	contributions domain.ContributionUseCase
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
func NewStatsUseCase(contributions domain.ContributionUseCase) domain.StatsUseCase {
	return &StatsUseCase{
		contributions: contributions,
	}
}

// GetContributionStats возвращает сводку по активности пользователя в репозитории.
func (uc *StatsUseCase) GetContributionStats(ctx context.Context, query domain.ContributionsQuery) (*domain.ContributionStats, error) {
	contributions, err := uc.contributions.GetContributions(ctx, query)
	if err != nil {
		return nil, err
	}
	return Summarize(query.User, query.Repository, contributions), nil
}

// Summarize считает показатели по созданным и просмотренным PR.
// Средние времена считаются только по созданным PR, у которых есть соответствующее ревью.
func Summarize(user, repository string, c *domain.Contributions) *domain.ContributionStats {
	stats := &domain.ContributionStats{
		User:          user,
		Repository:    repository,
		CreatedCount:  len(c.Created),
		ReviewedCount: len(c.Reviewed),
		Cached:        c.Cached,
	}

	var toReview, toApproval []time.Duration
	for _, pr := range c.Created {
		if pr.MergedAt != nil {
			stats.MergedCount++
		}
		if pr.State == domain.PRStateOpen {
			stats.OpenCount++
		}
		if pr.ReviewStartedAt != nil {
			toReview = append(toReview, pr.ReviewStartedAt.Sub(pr.CreatedAt))
		}
		if pr.ReviewApprovedAt != nil {
			toApproval = append(toApproval, pr.ReviewApprovedAt.Sub(pr.CreatedAt))
		}
	}
	for _, pr := range c.Reviewed {
		if pr.ReviewApprovedAt != nil {
			stats.ApprovedCount++
		}
	}

	stats.AvgTimeToFirstReview = average(toReview)
	stats.AvgTimeToApproval = average(toApproval)
	return stats
}

func average(values []time.Duration) *time.Duration {
	if len(values) == 0 {
		return nil
	}
	var sum time.Duration
	for _, v := range values {
		sum += v
	}
	avg := sum / time.Duration(len(values))
	return &avg
}
