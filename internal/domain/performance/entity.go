package performance

import "time"

type Skill struct {
	ID    string
	Name  string
	Color string
}

type SkillScore struct {
	ID            string
	PerformanceID string
	Skill         Skill
	Value         int // 0-100
}

type Feedback struct {
	ID            string
	PerformanceID string
	Author        string
	Text          string
	Color         string
	CreatedAt     time.Time
}

// Performance is the review record of one employee. The overall rating is
// always derived from Skills and never stored.
type Performance struct {
	ID                string
	EmployeeID        string
	GoalsAchieved     int
	TotalGoals        int
	ProjectsCompleted int
	Achievements      int
	ManagerComment    *string
	Skills            []SkillScore
	Feedback          []Feedback
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SkillValues extracts the raw scores for rating.
func (p Performance) SkillValues() []int {
	values := make([]int, 0, len(p.Skills))
	for _, s := range p.Skills {
		values = append(values, s.Value)
	}
	return values
}

const DefaultColor = "blue"

// Colors the front end knows how to render.
var Colors = []string{"blue", "green", "red", "yellow", "purple", "indigo", "pink", "gray"}
