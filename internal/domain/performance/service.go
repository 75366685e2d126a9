package performance

import "context"

type PerformanceService interface {
	// MyPerformance returns an empty record with rating 0 when the employee
	// has not been reviewed yet.
	MyPerformance(ctx context.Context, employeeID string) (PerformanceResponse, error)

	ListRatings(ctx context.Context) ([]RatingEntry, error)
	Detail(ctx context.Context, employeeID string) (PerformanceResponse, error)
	Upsert(ctx context.Context, employeeID string, req UpsertPerformanceRequest) (PerformanceResponse, error)
	SetSkill(ctx context.Context, employeeID string, req SkillScoreRequest) (PerformanceResponse, error)
	DeleteSkill(ctx context.Context, skillScoreID string) error
	AddFeedback(ctx context.Context, employeeID string, req FeedbackRequest) (PerformanceResponse, error)
	DeleteFeedback(ctx context.Context, feedbackID string) error
}
