package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillScoreRequest_Validate(t *testing.T) {
	req := SkillScoreRequest{Name: " Go ", Value: 80}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Go", req.Name)
	assert.Equal(t, DefaultColor, req.Color)

	assert.Error(t, (&SkillScoreRequest{Name: "Go", Value: 101}).Validate())
	assert.Error(t, (&SkillScoreRequest{Name: "Go", Value: -1}).Validate())
	assert.Error(t, (&SkillScoreRequest{Name: "Go", Value: 50, Color: "teal"}).Validate())
	assert.Error(t, (&SkillScoreRequest{Value: 50}).Validate())
}

func TestFeedbackRequest_Validate(t *testing.T) {
	assert.NoError(t, (&FeedbackRequest{Author: "Lead", Text: "Great quarter"}).Validate())
	assert.Error(t, (&FeedbackRequest{Author: "Lead", Text: "  "}).Validate())
	assert.Error(t, (&FeedbackRequest{Text: "x"}).Validate())
}

func TestUpsertPerformanceRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpsertPerformanceRequest{GoalsAchieved: 3, TotalGoals: 5}).Validate())
	assert.Error(t, (&UpsertPerformanceRequest{GoalsAchieved: 6, TotalGoals: 5}).Validate())
	assert.Error(t, (&UpsertPerformanceRequest{Achievements: -1}).Validate())
}

func TestToResponse(t *testing.T) {
	p := Performance{
		ID:         "p1",
		EmployeeID: "e1",
		Skills:     []SkillScore{{ID: "s1", Skill: Skill{Name: "Go", Color: "green"}, Value: 90}},
	}
	resp := ToResponse(p, 4.5)

	assert.Equal(t, 4.5, resp.OverallRating)
	require.Len(t, resp.Skills, 1)
	assert.Equal(t, "Go", resp.Skills[0].Name)
	assert.NotNil(t, resp.Feedback)
	assert.Equal(t, []int{90}, p.SkillValues())
}
