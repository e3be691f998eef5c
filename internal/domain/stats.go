package domain

import "time"

// ContributionStats - сводка по активности пользователя в репозитории.
type ContributionStats struct {
	User       string
	Repository string

	CreatedCount  int
	MergedCount   int
	OpenCount     int
	ReviewedCount int
	ApprovedCount int

	// Среднее время от создания PR до первого ревью и до одобрения (по созданным PR)
	AvgTimeToFirstReview *time.Duration
	AvgTimeToApproval    *time.Duration

	Cached bool
}
