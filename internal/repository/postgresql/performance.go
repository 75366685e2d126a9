package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

const performanceColumns = `
	id, employee_id, goals_achieved, total_goals, projects_completed, achievements,
	manager_comment, created_at, updated_at`

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

func scanPerformance(row pgx.Row) (performance.Performance, error) {
	var p performance.Performance
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.GoalsAchieved,
		&p.TotalGoals,
		&p.ProjectsCompleted,
		&p.Achievements,
		&p.ManagerComment,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return performance.Performance{}, performance.ErrPerformanceNotFound
	}
	return p, err
}

// GetByEmployee implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPerformance(q.QueryRow(ctx, `SELECT `+performanceColumns+` FROM performances WHERE employee_id = $1`, employeeID))
	if err != nil {
		if errors.Is(err, performance.ErrPerformanceNotFound) {
			return performance.Performance{}, err
		}
		return performance.Performance{}, fmt.Errorf("failed to get performance: %w", err)
	}
	return r.loadDetails(ctx, p, true)
}

// GetByID implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPerformance(q.QueryRow(ctx, `SELECT `+performanceColumns+` FROM performances WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, performance.ErrPerformanceNotFound) {
			return performance.Performance{}, err
		}
		return performance.Performance{}, fmt.Errorf("failed to get performance with id %s: %w", id, err)
	}
	return r.loadDetails(ctx, p, true)
}

func (r *performanceRepositoryImpl) loadDetails(ctx context.Context, p performance.Performance, withFeedback bool) (performance.Performance, error) {
	skills, err := r.skillScores(ctx, []string{p.ID})
	if err != nil {
		return performance.Performance{}, err
	}
	p.Skills = skills[p.ID]

	if !withFeedback {
		return p, nil
	}

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `
		SELECT id, performance_id, author, text, color, created_at
		FROM feedbacks
		WHERE performance_id = $1
		ORDER BY created_at
	`, p.ID)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to load feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fb performance.Feedback
		if err := rows.Scan(&fb.ID, &fb.PerformanceID, &fb.Author, &fb.Text, &fb.Color, &fb.CreatedAt); err != nil {
			return performance.Performance{}, err
		}
		p.Feedback = append(p.Feedback, fb)
	}
	return p, rows.Err()
}

// skillScores loads scores for every performance id, keyed by performance id.
func (r *performanceRepositoryImpl) skillScores(ctx context.Context, performanceIDs []string) (map[string][]performance.SkillScore, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT ps.id, ps.performance_id, ps.value, s.id, s.name, s.color
		FROM performance_skills ps
		JOIN skills s ON s.id = ps.skill_id
		WHERE ps.performance_id = ANY($1::uuid[])
		ORDER BY s.name
	`, performanceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill scores: %w", err)
	}
	defer rows.Close()

	scores := make(map[string][]performance.SkillScore, len(performanceIDs))
	for rows.Next() {
		var ss performance.SkillScore
		if err := rows.Scan(&ss.ID, &ss.PerformanceID, &ss.Value, &ss.Skill.ID, &ss.Skill.Name, &ss.Skill.Color); err != nil {
			return nil, err
		}
		scores[ss.PerformanceID] = append(scores[ss.PerformanceID], ss)
	}
	return scores, rows.Err()
}

// Upsert implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Upsert(ctx context.Context, record performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performances (id, employee_id, goals_achieved, total_goals, projects_completed, achievements, manager_comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id) DO UPDATE SET
			goals_achieved     = EXCLUDED.goals_achieved,
			total_goals        = EXCLUDED.total_goals,
			projects_completed = EXCLUDED.projects_completed,
			achievements       = EXCLUDED.achievements,
			manager_comment    = EXCLUDED.manager_comment,
			updated_at         = NOW()
		RETURNING ` + performanceColumns

	p, err := scanPerformance(q.QueryRow(ctx, query,
		newID(),
		record.EmployeeID,
		record.GoalsAchieved,
		record.TotalGoals,
		record.ProjectsCompleted,
		record.Achievements,
		record.ManagerComment,
	))
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to upsert performance: %w", err)
	}
	return p, nil
}

// ListAll implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) ListAll(ctx context.Context) ([]performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+performanceColumns+` FROM performances ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance: %w", err)
	}
	defer rows.Close()

	var (
		records []performance.Performance
		ids     []string
	)
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	scores, err := r.skillScores(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Skills = scores[records[i].ID]
	}
	return records, nil
}

// GetOrCreateSkill implements performance.PerformanceRepository. An existing
// skill keeps its color.
func (r *performanceRepositoryImpl) GetOrCreateSkill(ctx context.Context, name, color string) (performance.Skill, error) {
	q := GetQuerier(ctx, r.db)

	var s performance.Skill
	err := q.QueryRow(ctx, `
		INSERT INTO skills (id, name, color) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, color
	`, newID(), name, color).Scan(&s.ID, &s.Name, &s.Color)
	if err != nil {
		return performance.Skill{}, fmt.Errorf("failed to get or create skill: %w", err)
	}
	return s, nil
}

// UpsertSkillScore implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) UpsertSkillScore(ctx context.Context, performanceID, skillID string, value int) (performance.SkillScore, error) {
	q := GetQuerier(ctx, r.db)

	ss := performance.SkillScore{PerformanceID: performanceID, Skill: performance.Skill{ID: skillID}, Value: value}
	err := q.QueryRow(ctx, `
		INSERT INTO performance_skills (id, performance_id, skill_id, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uq_performance_skills_pair DO UPDATE SET value = EXCLUDED.value
		RETURNING id
	`, newID(), performanceID, skillID, value).Scan(&ss.ID)
	if err != nil {
		return performance.SkillScore{}, fmt.Errorf("failed to save skill score: %w", err)
	}
	return ss, nil
}

// DeleteSkillScore implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) DeleteSkillScore(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var performanceID string
	err := q.QueryRow(ctx, `DELETE FROM performance_skills WHERE id = $1 RETURNING performance_id`, id).Scan(&performanceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", performance.ErrSkillScoreNotFound
		}
		return "", fmt.Errorf("failed to delete skill score: %w", err)
	}
	return performanceID, nil
}

// AddFeedback implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) AddFeedback(ctx context.Context, fb performance.Feedback) (performance.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	created := fb
	err := q.QueryRow(ctx, `
		INSERT INTO feedbacks (id, performance_id, author, text, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, newID(), fb.PerformanceID, fb.Author, fb.Text, fb.Color).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return performance.Feedback{}, fmt.Errorf("failed to add feedback: %w", err)
	}
	return created, nil
}

// DeleteFeedback implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) DeleteFeedback(ctx context.Context, id string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var performanceID string
	err := q.QueryRow(ctx, `DELETE FROM feedbacks WHERE id = $1 RETURNING performance_id`, id).Scan(&performanceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", performance.ErrFeedbackNotFound
		}
		return "", fmt.Errorf("failed to delete feedback: %w", err)
	}
	return performanceID, nil
}
