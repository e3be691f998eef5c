package domain

import (
	"slices"
	"time"
)

// ReviewState - вердикт ревью.
type ReviewState string

const (
	ReviewCommented        ReviewState = "COMMENTED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
	ReviewApproved         ReviewState = "APPROVED"
	ReviewDismissed        ReviewState = "DISMISSED"
)

// Valid сообщает, входит ли состояние в поддерживаемый словарь.
func (s ReviewState) Valid() bool {
	switch s {
	case ReviewCommented, ReviewChangesRequested, ReviewApproved, ReviewDismissed:
		return true
	}
	return false
}

// startsReview - DISMISSED началом ревью не считается.
func (s ReviewState) startsReview() bool {
	return s == ReviewCommented || s == ReviewChangesRequested || s == ReviewApproved
}

// Review представляет одно ревью пул-реквеста.
type Review struct {
	ID          int64
	User        User
	Body        *string
	State       ReviewState
	SubmittedAt time.Time
}

// Lifecycle - производные отметки времени жизненного цикла ревью.
type Lifecycle struct {
	StartedAt  *time.Time
	ApprovedAt *time.Time
}

// SortReviews упорядочивает ревью по времени отправки, при равенстве по ID.
func SortReviews(reviews []*Review) {
	slices.SortStableFunc(reviews, func(a, b *Review) int {
		if c := a.SubmittedAt.Compare(b.SubmittedAt); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
}

// ReviewsBy возвращает ревью пользователя login с сохранением порядка.
func ReviewsBy(reviews []*Review, login string) []*Review {
	result := make([]*Review, 0, len(reviews))
	for _, r := range reviews {
		if r.User.Login == login {
			result = append(result, r)
		}
	}
	return result
}

// DeriveLifecycle вычисляет начало ревью и момент первого одобрения.
// Если viewpoint не пуст, учитываются только ревью этого пользователя.
// Одна и та же функция используется при живой загрузке и при чтении из кэша.
func DeriveLifecycle(reviews []*Review, viewpoint string) Lifecycle {
	considered := reviews
	if viewpoint != "" {
		considered = ReviewsBy(reviews, viewpoint)
	}

	ordered := slices.Clone(considered)
	SortReviews(ordered)

	var lc Lifecycle
	for _, r := range ordered {
		if lc.StartedAt == nil && r.State.startsReview() {
			t := r.SubmittedAt
			lc.StartedAt = &t
		}
		if lc.ApprovedAt == nil && r.State == ReviewApproved {
			t := r.SubmittedAt
			lc.ApprovedAt = &t
		}
		if lc.StartedAt != nil && lc.ApprovedAt != nil {
			break
		}
	}
	return lc
}
