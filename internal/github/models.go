package github

import (
	"time"

	"pr-activity-service/internal/domain"
)

// UserPayload - пользователь в ответах REST API.
type UserPayload struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// PullRequestPayload - элемент ответа GET /repos/{owner}/{repo}/pulls.
type PullRequestPayload struct {
	ID        int64        `json:"id"`
	Number    int          `json:"number"`
	Title     string       `json:"title"`
	State     string       `json:"state"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	ClosedAt  *time.Time   `json:"closed_at"`
	MergedAt  *time.Time   `json:"merged_at"`
	User      *UserPayload `json:"user"`
	HTMLURL   string       `json:"html_url"`
}

// ReviewPayload - элемент ответа GET /repos/{owner}/{repo}/pulls/{number}/reviews.
type ReviewPayload struct {
	ID          int64        `json:"id"`
	User        *UserPayload `json:"user"`
	Body        *string      `json:"body"`
	State       string       `json:"state"`
	SubmittedAt *time.Time   `json:"submitted_at"`
}

// ghostLogin подставляется для удаленных учетных записей (user: null).
const ghostLogin = "ghost"

func toDomainUser(u *UserPayload) domain.User {
	if u == nil {
		return domain.User{Login: ghostLogin}
	}
	return domain.User{Login: u.Login, ID: u.ID}
}

func toDomainPullRequest(p PullRequestPayload) *domain.PullRequest {
	pr := &domain.PullRequest{
		ID:        p.ID,
		Number:    p.Number,
		Title:     p.Title,
		State:     p.State,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
		ClosedAt:  utcPtr(p.ClosedAt),
		MergedAt:  utcPtr(p.MergedAt),
		User:      toDomainUser(p.User),
		HTMLURL:   p.HTMLURL,
		Reviews:   []*domain.Review{},
	}
	pr.Normalize()
	return pr
}

// toDomainReview возвращает false для ревью вне словаря состояний (например, PENDING)
// и для ревью без времени отправки.
func toDomainReview(p ReviewPayload) (*domain.Review, bool) {
	state := domain.ReviewState(p.State)
	if !state.Valid() || p.SubmittedAt == nil {
		return nil, false
	}
	return &domain.Review{
		ID:          p.ID,
		User:        toDomainUser(p.User),
		Body:        p.Body,
		State:       state,
		SubmittedAt: p.SubmittedAt.UTC(),
	}, true
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
