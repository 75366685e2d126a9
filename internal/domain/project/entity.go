package project

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type Status string

const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusReview     Status = "Review"
	StatusCompleted  Status = "Completed"
)

var (
	Priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}
	Statuses   = []string{string(StatusPlanning), string(StatusInProgress), string(StatusReview), string(StatusCompleted)}
)

type Project struct {
	ID          string
	Title       string
	Description string
	AssignedTo  string // employee id
	AssignedBy  string // display name of the back-office user
	Progress    int    // 0-100
	DueDate     time.Time
	Priority    Priority
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Progresses extracts progress values for the success rate.
func Progresses(projects []Project) []int {
	out := make([]int, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Progress)
	}
	return out
}
