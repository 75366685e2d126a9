package performance

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/managely-hr/hr-backend-go/internal/domain/dashboard"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	performance.PerformanceRepository
	employee.EmployeeRepository
	dashboardCache dashboard.CacheInvalidator
}

func NewPerformanceService(performanceRepo performance.PerformanceRepository, employeeRepo employee.EmployeeRepository, dashboardCache dashboard.CacheInvalidator) performance.PerformanceService {
	return &PerformanceServiceImpl{
		PerformanceRepository: performanceRepo,
		EmployeeRepository:    employeeRepo,
		dashboardCache:        dashboardCache,
	}
}

// invalidateDashboard drops the admin overview, whose top performers follow
// skill scores.
func (s *PerformanceServiceImpl) invalidateDashboard(ctx context.Context) {
	if s.dashboardCache != nil {
		s.dashboardCache.InvalidateAdmin(ctx)
	}
}

func toResponse(p performance.Performance) performance.PerformanceResponse {
	return performance.ToResponse(p, OverallRating(p.SkillValues()))
}

// MyPerformance implements performance.PerformanceService.
func (s *PerformanceServiceImpl) MyPerformance(ctx context.Context, employeeID string) (performance.PerformanceResponse, error) {
	p, err := s.PerformanceRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, performance.ErrPerformanceNotFound) {
			return toResponse(performance.Performance{EmployeeID: employeeID}), nil
		}
		return performance.PerformanceResponse{}, err
	}
	return toResponse(p), nil
}

// ListRatings implements performance.PerformanceService. Entries are sorted
// by rating, best first.
func (s *PerformanceServiceImpl) ListRatings(ctx context.Context) ([]performance.RatingEntry, error) {
	records, err := s.PerformanceRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance records: %w", err)
	}

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.EmployeeID)
	}
	names, err := s.EmployeeRepository.ListNames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee names: %w", err)
	}

	entries := make([]performance.RatingEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, performance.RatingEntry{
			EmployeeID:    r.EmployeeID,
			EmployeeName:  names[r.EmployeeID],
			OverallRating: OverallRating(r.SkillValues()),
		})
	}
	slices.SortStableFunc(entries, func(a, b performance.RatingEntry) int {
		if c := cmp.Compare(b.OverallRating, a.OverallRating); c != 0 {
			return c
		}
		return cmp.Compare(a.EmployeeName, b.EmployeeName)
	})
	return entries, nil
}

// Detail implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Detail(ctx context.Context, employeeID string) (performance.PerformanceResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	p, err := s.PerformanceRepository.GetByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, performance.ErrPerformanceNotFound) {
		return performance.PerformanceResponse{}, err
	}
	if err != nil {
		p = performance.Performance{EmployeeID: employeeID}
	}

	resp := toResponse(p)
	resp.EmployeeName = e.FullName
	return resp, nil
}

// Upsert implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Upsert(ctx context.Context, employeeID string, req performance.UpsertPerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return performance.PerformanceResponse{}, err
	}

	if _, err := s.PerformanceRepository.Upsert(ctx, performance.Performance{
		EmployeeID:        employeeID,
		GoalsAchieved:     req.GoalsAchieved,
		TotalGoals:        req.TotalGoals,
		ProjectsCompleted: req.ProjectsCompleted,
		Achievements:      req.Achievements,
		ManagerComment:    req.ManagerComment,
	}); err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to save performance: %w", err)
	}
	return s.reload(ctx, employeeID)
}

// SetSkill implements performance.PerformanceService. Skills are shared by
// name; the score is per employee.
func (s *PerformanceServiceImpl) SetSkill(ctx context.Context, employeeID string, req performance.SkillScoreRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	p, err := s.ensurePerformance(ctx, employeeID)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	skill, err := s.PerformanceRepository.GetOrCreateSkill(ctx, req.Name, req.Color)
	if err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to resolve skill: %w", err)
	}
	if _, err := s.PerformanceRepository.UpsertSkillScore(ctx, p.ID, skill.ID, req.Value); err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to save skill score: %w", err)
	}
	s.invalidateDashboard(ctx)
	return s.reload(ctx, employeeID)
}

// DeleteSkill implements performance.PerformanceService.
func (s *PerformanceServiceImpl) DeleteSkill(ctx context.Context, skillScoreID string) error {
	performanceID, err := s.PerformanceRepository.DeleteSkillScore(ctx, skillScoreID)
	if err != nil {
		return err
	}
	slog.Info("skill score deleted", "skill_score_id", skillScoreID, "performance_id", performanceID)
	s.invalidateDashboard(ctx)
	return nil
}

// AddFeedback implements performance.PerformanceService.
func (s *PerformanceServiceImpl) AddFeedback(ctx context.Context, employeeID string, req performance.FeedbackRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	p, err := s.ensurePerformance(ctx, employeeID)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	if _, err := s.PerformanceRepository.AddFeedback(ctx, performance.Feedback{
		PerformanceID: p.ID,
		Author:        req.Author,
		Text:          req.Text,
		Color:         req.Color,
	}); err != nil {
		return performance.PerformanceResponse{}, fmt.Errorf("failed to add feedback: %w", err)
	}
	return s.reload(ctx, employeeID)
}

// DeleteFeedback implements performance.PerformanceService.
func (s *PerformanceServiceImpl) DeleteFeedback(ctx context.Context, feedbackID string) error {
	performanceID, err := s.PerformanceRepository.DeleteFeedback(ctx, feedbackID)
	if err != nil {
		return err
	}
	slog.Info("feedback deleted", "feedback_id", feedbackID, "performance_id", performanceID)
	return nil
}

// ensurePerformance returns the employee's record, creating an empty one on
// first use.
func (s *PerformanceServiceImpl) ensurePerformance(ctx context.Context, employeeID string) (performance.Performance, error) {
	p, err := s.PerformanceRepository.GetByEmployee(ctx, employeeID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, performance.ErrPerformanceNotFound) {
		return performance.Performance{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return performance.Performance{}, err
	}
	p, err = s.PerformanceRepository.Upsert(ctx, performance.Performance{EmployeeID: employeeID})
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to create performance record: %w", err)
	}
	return p, nil
}

func (s *PerformanceServiceImpl) reload(ctx context.Context, employeeID string) (performance.PerformanceResponse, error) {
	p, err := s.PerformanceRepository.GetByEmployee(ctx, employeeID)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}
	return toResponse(p), nil
}
