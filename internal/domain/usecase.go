package domain

import "context"

// ContributionUseCase определяет бизнес-логику получения активности пользователя.
type ContributionUseCase interface {
	GetContributions(ctx context.Context, query ContributionsQuery) (*Contributions, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetContributionStats(ctx context.Context, query ContributionsQuery) (*ContributionStats, error)
}
