package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectRequest_Validate(t *testing.T) {
	req := CreateProjectRequest{Title: "Payroll revamp", AssignedTo: "e1", DueDate: "2025-06-30", Progress: 10}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Medium", req.Priority)
	assert.Equal(t, "Planning", req.Status)

	p := req.ToEntity("Dana Admin")
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), p.DueDate)
	assert.Equal(t, "Dana Admin", p.AssignedBy)

	missingDue := CreateProjectRequest{Title: "x", AssignedTo: "e1"}
	assert.Error(t, missingDue.Validate())

	badStatus := CreateProjectRequest{Title: "x", AssignedTo: "e1", DueDate: "2025-06-30", Status: "Done"}
	assert.Error(t, badStatus.Validate())

	tooFar := CreateProjectRequest{Title: "x", AssignedTo: "e1", DueDate: "2025-06-30", Progress: 120}
	assert.Error(t, tooFar.Validate())
}

func TestUpdateProjectRequest_Apply(t *testing.T) {
	p := Project{Title: "Old", Progress: 10, Status: StatusPlanning, AssignedBy: "Someone Else", DueDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	progress := 60
	status := string(StatusInProgress)

	req := UpdateProjectRequest{Progress: &progress, Status: &status}
	require.NoError(t, req.Validate())
	got := req.Apply(p, "Dana Admin")

	assert.Equal(t, "Old", got.Title)
	assert.Equal(t, 60, got.Progress)
	assert.Equal(t, StatusInProgress, got.Status)
	assert.Equal(t, "Dana Admin", got.AssignedBy)
	assert.Equal(t, p.DueDate, got.DueDate)
}

func TestToResponse_Initials(t *testing.T) {
	resp := ToResponse(Project{AssignedBy: "dana maria admin", DueDate: time.Now()})
	assert.Equal(t, "DM", resp.AssignedByInitials)
}
