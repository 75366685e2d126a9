package performance

import "context"

type PerformanceRepository interface {
	// GetByEmployee loads the record with skills and feedback (oldest first).
	GetByEmployee(ctx context.Context, employeeID string) (Performance, error)
	GetByID(ctx context.Context, id string) (Performance, error)
	// Upsert creates or updates the metrics of the employee's record.
	Upsert(ctx context.Context, record Performance) (Performance, error)
	// ListAll returns every record with its skills, without feedback.
	ListAll(ctx context.Context) ([]Performance, error)

	// GetOrCreateSkill finds a skill by name, creating it with color when absent.
	GetOrCreateSkill(ctx context.Context, name, color string) (Skill, error)
	// UpsertSkillScore sets the score of skill on the performance record.
	UpsertSkillScore(ctx context.Context, performanceID, skillID string, value int) (SkillScore, error)
	DeleteSkillScore(ctx context.Context, id string) (performanceID string, err error)

	AddFeedback(ctx context.Context, fb Feedback) (Feedback, error)
	DeleteFeedback(ctx context.Context, id string) (performanceID string, err error)
}
