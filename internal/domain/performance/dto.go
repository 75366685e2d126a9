package performance

import (
	"strings"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

type UpsertPerformanceRequest struct {
	GoalsAchieved     int     `json:"goals_achieved" validate:"gte=0"`
	TotalGoals        int     `json:"total_goals" validate:"gte=0"`
	ProjectsCompleted int     `json:"projects_completed" validate:"gte=0"`
	Achievements      int     `json:"achievements" validate:"gte=0"`
	ManagerComment    *string `json:"manager_comment,omitempty"`
}

func (r *UpsertPerformanceRequest) Validate() error {
	errs := validator.Struct(r)
	if r.TotalGoals > 0 && r.GoalsAchieved > r.TotalGoals {
		errs.Add("goals_achieved", "goals_achieved must not exceed total_goals")
	}
	return errs.OrNil()
}

type SkillScoreRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Value int    `json:"value" validate:"gte=0,lte=100"`
	Color string `json:"color"`
}

func (r *SkillScoreRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Color = strings.ToLower(strings.TrimSpace(r.Color))
	if r.Color == "" {
		r.Color = DefaultColor
	}

	errs := validator.Struct(r)
	if !validator.IsInSlice(r.Color, Colors) {
		errs.Add("color", "color must be one of: "+strings.Join(Colors, ", "))
	}
	return errs.OrNil()
}

type FeedbackRequest struct {
	Author string `json:"author" validate:"required,max=100"`
	Text   string `json:"text" validate:"required"`
	Color  string `json:"color"`
}

func (r *FeedbackRequest) Validate() error {
	r.Author = strings.TrimSpace(r.Author)
	r.Text = strings.TrimSpace(r.Text)
	r.Color = strings.ToLower(strings.TrimSpace(r.Color))
	if r.Color == "" {
		r.Color = DefaultColor
	}

	errs := validator.Struct(r)
	if !validator.IsInSlice(r.Color, Colors) {
		errs.Add("color", "color must be one of: "+strings.Join(Colors, ", "))
	}
	return errs.OrNil()
}

type SkillResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type FeedbackResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Color     string `json:"color"`
	CreatedAt string `json:"created_at"`
}

type PerformanceResponse struct {
	ID                string             `json:"id"`
	EmployeeID        string             `json:"employee_id"`
	EmployeeName      string             `json:"employee_name,omitempty"`
	GoalsAchieved     int                `json:"goals_achieved"`
	TotalGoals        int                `json:"total_goals"`
	ProjectsCompleted int                `json:"projects_completed"`
	Achievements      int                `json:"achievements"`
	ManagerComment    *string            `json:"manager_comment"`
	OverallRating     float64            `json:"overall_rating"`
	Skills            []SkillResponse    `json:"skills"`
	Feedback          []FeedbackResponse `json:"feedback"`
}

// ToResponse maps p; rating is computed by the caller.
func ToResponse(p Performance, rating float64) PerformanceResponse {
	resp := PerformanceResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		GoalsAchieved:     p.GoalsAchieved,
		TotalGoals:        p.TotalGoals,
		ProjectsCompleted: p.ProjectsCompleted,
		Achievements:      p.Achievements,
		ManagerComment:    p.ManagerComment,
		OverallRating:     rating,
		Skills:            make([]SkillResponse, 0, len(p.Skills)),
		Feedback:          make([]FeedbackResponse, 0, len(p.Feedback)),
	}
	for _, s := range p.Skills {
		resp.Skills = append(resp.Skills, SkillResponse{ID: s.ID, Name: s.Skill.Name, Value: s.Value, Color: s.Skill.Color})
	}
	for _, f := range p.Feedback {
		resp.Feedback = append(resp.Feedback, FeedbackResponse{
			ID:        f.ID,
			Author:    f.Author,
			Text:      f.Text,
			Color:     f.Color,
			CreatedAt: f.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}

type RatingEntry struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	OverallRating float64 `json:"overall_rating"`
}
