package handler

import (
	"pr-activity-service/api"
	"pr-activity-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user domain.User) api.User {
	return api.User{
		Id:    user.ID,
		Login: user.Login,
	}
}

func toAPIReviews(reviews []*domain.Review) []api.Review {
	result := make([]api.Review, len(reviews))
	for i, r := range reviews {
		result[i] = api.Review{
			Id:          r.ID,
			User:        toAPIUser(r.User),
			Body:        r.Body,
			State:       api.ReviewState(r.State),
			SubmittedAt: r.SubmittedAt,
		}
	}
	return result
}

func toAPIPullRequests(prs []*domain.PullRequestWithReviews) []api.PullRequest {
	result := make([]api.PullRequest, len(prs))
	for i, pr := range prs {
		result[i] = api.PullRequest{
			Id:               pr.ID,
			Number:           pr.Number,
			Title:            pr.Title,
			State:            api.PullRequestState(pr.State),
			CreatedAt:        pr.CreatedAt,
			UpdatedAt:        pr.UpdatedAt,
			ClosedAt:         pr.ClosedAt,
			MergedAt:         pr.MergedAt,
			User:             toAPIUser(pr.User),
			HtmlUrl:          pr.HTMLURL,
			Reviews:          toAPIReviews(pr.Reviews),
			ReviewStartedAt:  pr.ReviewStartedAt,
			ReviewApprovedAt: pr.ReviewApprovedAt,
		}
	}
	return result
}

func toAPIContributions(c *domain.Contributions) api.ContributionsResponse {
	resp := api.ContributionsResponse{
		CreatedPrs:  toAPIPullRequests(c.Created),
		ReviewedPrs: toAPIPullRequests(c.Reviewed),
		Cached:      c.Cached,
	}
	if len(c.Warnings) > 0 {
		warnings := c.Warnings
		resp.Warnings = &warnings
	}
	return resp
}

func toAPIStats(s *domain.ContributionStats) api.ContributionStats {
	resp := api.ContributionStats{
		User:          s.User,
		Repo:          s.Repository,
		CreatedCount:  s.CreatedCount,
		MergedCount:   s.MergedCount,
		OpenCount:     s.OpenCount,
		ReviewedCount: s.ReviewedCount,
		ApprovedCount: s.ApprovedCount,
		Cached:        s.Cached,
	}
	if s.AvgTimeToFirstReview != nil {
		hours := s.AvgTimeToFirstReview.Hours()
		resp.AvgHoursToFirstReview = &hours
	}
	if s.AvgTimeToApproval != nil {
		hours := s.AvgTimeToApproval.Hours()
		resp.AvgHoursToApproval = &hours
	}
	return resp
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: struct {
			Code    api.ErrorResponseErrorCode `json:"code"`
			Message string                     `json:"message"`
		}{
			Code:    api.ErrorResponseErrorCode(code),
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
