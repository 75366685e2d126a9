package performance

import "errors"

var (
	ErrPerformanceNotFound = errors.New("performance record not found")
	ErrSkillScoreNotFound  = errors.New("skill score not found")
	ErrFeedbackNotFound    = errors.New("feedback not found")
)
