package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"pr-activity-service/internal/database"
	"pr-activity-service/internal/domain"
)

const prColumns = `p.id, p.number, p.title, p.state, p.created_at, p.updated_at, p.closed_at, p.merged_at, p.user_login, p.user_id, p.html_url`

const (
	countCreatedQuery = `SELECT COUNT(*) FROM pull_requests WHERE user_login = $1 AND repository = $2`

	countReviewsQuery = `SELECT COUNT(*) FROM reviews WHERE user_login = $1 AND repository = $2`

	createdPRsQuery = `SELECT ` + prColumns + `
		FROM pull_requests p
		WHERE p.user_login = $1 AND p.repository = $2
		ORDER BY p.created_at DESC, p.id DESC`

	reviewedPRsQuery = `SELECT ` + prColumns + `
		FROM pull_requests p
		WHERE p.repository = $2
		  AND p.user_login <> $1
		  AND EXISTS (SELECT 1 FROM reviews r WHERE r.pr_id = p.id AND r.user_login = $1)
		ORDER BY p.created_at DESC, p.id DESC`

	// Ревью всех PR, попадающих в created или reviewed
	reviewsQuery = `SELECT r.id, r.pr_id, r.user_login, r.user_id, r.body, r.state, r.submitted_at
		FROM reviews r
		JOIN pull_requests p ON p.id = r.pr_id
		WHERE p.repository = $2
		  AND (p.user_login = $1
		       OR EXISTS (SELECT 1 FROM reviews r2 WHERE r2.pr_id = p.id AND r2.user_login = $1))
		ORDER BY r.submitted_at, r.id`

	upsertPRQuery = `INSERT INTO pull_requests
		(id, number, title, state, created_at, updated_at, closed_at, merged_at, user_login, user_id, html_url, repository)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			number = excluded.number,
			title = excluded.title,
			state = excluded.state,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			closed_at = excluded.closed_at,
			merged_at = excluded.merged_at,
			user_login = excluded.user_login,
			user_id = excluded.user_id,
			html_url = excluded.html_url,
			repository = excluded.repository`

	upsertReviewQuery = `INSERT INTO reviews
		(id, pr_id, user_login, user_id, body, state, submitted_at, repository)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			pr_id = excluded.pr_id,
			user_login = excluded.user_login,
			user_id = excluded.user_id,
			body = excluded.body,
			state = excluded.state,
			submitted_at = excluded.submitted_at,
			repository = excluded.repository`
)

// ContributionRepository реализует кэш пул-реквестов и ревью в SQL базе (SQLite или PostgreSQL).
type ContributionRepository struct {
	db      *sql.DB
	dialect string
	// Сериализует запись
	mu sync.Mutex
}

// NewContributionRepository создает новый экземпляр ContributionRepository.
// Перед использованием нужно вызвать Init.
func NewContributionRepository(db *sql.DB, dialect string) domain.ContributionRepository {
	return &ContributionRepository{
		db:      db,
		dialect: dialect,
	}
}

// Init создает схему. Идемпотентна.
func (r *ContributionRepository) Init(ctx context.Context) error {
	if err := database.MigrateDB(ctx, r.db, r.dialect); err != nil {
		return cacheError("failed to migrate cache schema", err)
	}
	return nil
}

// HasCachedData проверяет, есть ли в кэше PR пользователя или его ревью в репозитории.
func (r *ContributionRepository) HasCachedData(ctx context.Context, user, repository string) (bool, error) {
	var created int
	if err := r.db.QueryRowContext(ctx, countCreatedQuery, user, repository).Scan(&created); err != nil {
		return false, cacheError("failed to count cached PRs", err)
	}
	if created > 0 {
		return true, nil
	}

	var reviews int
	if err := r.db.QueryRowContext(ctx, countReviewsQuery, user, repository).Scan(&reviews); err != nil {
		return false, cacheError("failed to count cached reviews", err)
	}
	return reviews > 0, nil
}

// GetCachedData восстанавливает результат агрегации из кэша.
// Производные поля жизненного цикла вычисляются заново из сохраненных ревью.
func (r *ContributionRepository) GetCachedData(ctx context.Context, user, repository string) (*domain.Contributions, error) {
	// 1. Ревью, сгруппированные по PR
	reviews, err := r.loadReviews(ctx, user, repository)
	if err != nil {
		return nil, err
	}

	// 2. Созданные пользователем PR
	created, err := r.loadPRs(ctx, createdPRsQuery, user, repository)
	if err != nil {
		return nil, err
	}

	// 3. PR других авторов с ревью пользователя
	reviewed, err := r.loadPRs(ctx, reviewedPRsQuery, user, repository)
	if err != nil {
		return nil, err
	}

	result := &domain.Contributions{
		Created:  make([]*domain.PullRequestWithReviews, 0, len(created)),
		Reviewed: make([]*domain.PullRequestWithReviews, 0, len(reviewed)),
	}
	for _, pr := range created {
		pr.Reviews = reviewsOf(reviews, pr.ID)
		result.Created = append(result.Created, domain.NewPullRequestWithReviews(*pr, ""))
	}
	for _, pr := range reviewed {
		pr.Reviews = reviewsOf(reviews, pr.ID)
		result.Reviewed = append(result.Reviewed, domain.NewPullRequestWithReviews(*pr, user))
	}

	return result, nil
}

// Upsert сохраняет PR и его ревью, заменяя строки с теми же ID.
func (r *ContributionRepository) Upsert(ctx context.Context, pr *domain.PullRequestWithReviews, repository string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return cacheError("failed to begin transaction", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. PR
	_, err = tx.ExecContext(ctx, upsertPRQuery,
		pr.ID,
		pr.Number,
		pr.Title,
		pr.State,
		pr.CreatedAt.UTC(),
		pr.UpdatedAt.UTC(),
		nullTime(pr.ClosedAt),
		nullTime(pr.MergedAt),
		pr.User.Login,
		pr.User.ID,
		pr.HTMLURL,
		repository,
	)
	if err != nil {
		return cacheError(fmt.Sprintf("failed to upsert PR %d", pr.ID), err)
	}

	// 2. Ревью
	for _, review := range pr.Reviews {
		_, err = tx.ExecContext(ctx, upsertReviewQuery,
			review.ID,
			pr.ID,
			review.User.Login,
			review.User.ID,
			nullString(review.Body),
			string(review.State),
			review.SubmittedAt.UTC(),
			repository,
		)
		if err != nil {
			return cacheError(fmt.Sprintf("failed to upsert review %d", review.ID), err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return cacheError("failed to commit transaction", err)
	}

	return nil
}

func (r *ContributionRepository) loadPRs(ctx context.Context, query, user, repository string) ([]*domain.PullRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, user, repository)
	if err != nil {
		return nil, cacheError("failed to query cached PRs", err)
	}
	defer rows.Close()

	var result []*domain.PullRequest
	for rows.Next() {
		var (
			pr                   domain.PullRequest
			createdAt, updatedAt timestamp
			closedAt, mergedAt   timestamp
		)
		if err := rows.Scan(
			&pr.ID,
			&pr.Number,
			&pr.Title,
			&pr.State,
			&createdAt,
			&updatedAt,
			&closedAt,
			&mergedAt,
			&pr.User.Login,
			&pr.User.ID,
			&pr.HTMLURL,
		); err != nil {
			return nil, cacheError("failed to scan cached PR", err)
		}
		pr.CreatedAt = createdAt.Time
		pr.UpdatedAt = updatedAt.Time
		pr.ClosedAt = closedAt.ptr()
		pr.MergedAt = mergedAt.ptr()
		result = append(result, &pr)
	}
	if err := rows.Err(); err != nil {
		return nil, cacheError("failed to read cached PRs", err)
	}

	return result, nil
}

// loadReviews возвращает ревью по ID пул-реквеста в порядке отправки.
func (r *ContributionRepository) loadReviews(ctx context.Context, user, repository string) (map[int64][]*domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, reviewsQuery, user, repository)
	if err != nil {
		return nil, cacheError("failed to query cached reviews", err)
	}
	defer rows.Close()

	result := make(map[int64][]*domain.Review)
	for rows.Next() {
		var (
			review      domain.Review
			prID        int64
			body        sql.NullString
			state       string
			submittedAt timestamp
		)
		if err := rows.Scan(
			&review.ID,
			&prID,
			&review.User.Login,
			&review.User.ID,
			&body,
			&state,
			&submittedAt,
		); err != nil {
			return nil, cacheError("failed to scan cached review", err)
		}
		if body.Valid {
			review.Body = &body.String
		}
		review.State = domain.ReviewState(state)
		review.SubmittedAt = submittedAt.Time
		result[prID] = append(result[prID], &review)
	}
	if err := rows.Err(); err != nil {
		return nil, cacheError("failed to read cached reviews", err)
	}

	return result, nil
}

func reviewsOf(reviews map[int64][]*domain.Review, prID int64) []*domain.Review {
	if list, ok := reviews[prID]; ok {
		return list
	}
	return []*domain.Review{}
}

func cacheError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrCacheUnavailable, msg, err)
}
