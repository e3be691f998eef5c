package usecase

import (
	"context"

	"pr-activity-service/internal/domain"

	"github.com/sirupsen/logrus"
)

// SourceFactory создает источник PR, подписывающий запросы учетными данными.
// nil означает анонимный доступ.
type SourceFactory func(cred *domain.Credential) domain.PRSource

// ContributionUseCase реализует получение активности пользователя: кэш или живая загрузка.
type ContributionUseCase struct {
	repo        domain.ContributionRepository
	resolver    domain.CredentialResolver
	sources     SourceFactory
	concurrency int
	logger      *logrus.Logger
}

// NewContributionUseCase создает новый экземпляр ContributionUseCase.
func NewContributionUseCase(
	repo domain.ContributionRepository,
	resolver domain.CredentialResolver,
	sources SourceFactory,
	concurrency int,
	logger *logrus.Logger,
) domain.ContributionUseCase {
	return &ContributionUseCase{
		repo:        repo,
		resolver:    resolver,
		sources:     sources,
		concurrency: concurrency,
		logger:      logger,
	}
}

// GetContributions возвращает данные из кэша, если они есть и обновление не запрошено.
// Иначе запускает агрегацию и сохраняет каждый полученный PR в кэш.
func (uc *ContributionUseCase) GetContributions(ctx context.Context, query domain.ContributionsQuery) (*domain.Contributions, error) {
	// Валидация входных данных
	if query.User == "" {
		return nil, domain.ErrInvalidUser
	}
	owner, name, err := domain.SplitRepository(query.Repository)
	if err != nil {
		return nil, err
	}

	log := uc.logger.WithFields(logrus.Fields{
		"user":       query.User,
		"repository": query.Repository,
	})

	// 1. Кэш
	if !query.ForceRefresh {
		has, err := uc.repo.HasCachedData(ctx, query.User, query.Repository)
		if err != nil {
			return nil, err
		}
		if has {
			cached, err := uc.repo.GetCachedData(ctx, query.User, query.Repository)
			if err != nil {
				return nil, err
			}
			cached.Cached = true
			log.Debug("Returning cached contributions")
			return cached, nil
		}
	}

	// 2. Учетные данные
	var cred *domain.Credential
	if c, ok := uc.resolver.Resolve(query.ClientToken, query.AuthorizationHeader); ok {
		cred = &c
		log = log.WithField("token_source", c.Source)
	} else {
		log.Warn("No valid GitHub token, using unauthenticated requests")
	}

	// 3. Живая загрузка
	result, err := NewAggregator(uc.sources(cred), uc.concurrency, uc.logger).Aggregate(ctx, owner, name, query.User)
	if err != nil {
		log.WithError(err).Error("Failed to aggregate contributions")
		return nil, err
	}

	// 4. Сохраняем в кэш
	for _, set := range [][]*domain.PullRequestWithReviews{result.Created, result.Reviewed} {
		for _, pr := range set {
			if err := uc.repo.Upsert(ctx, pr, query.Repository); err != nil {
				return nil, err
			}
		}
	}

	log.WithFields(logrus.Fields{
		"created":  len(result.Created),
		"reviewed": len(result.Reviewed),
		"warnings": len(result.Warnings),
	}).Info("Contributions fetched from GitHub")

	return result, nil
}
