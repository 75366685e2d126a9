package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/domain/auth"
	"github.com/managely-hr/hr-backend-go/internal/domain/document"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/managely-hr/hr-backend-go/internal/domain/performance"
	"github.com/managely-hr/hr-backend-go/internal/domain/project"
	"github.com/managely-hr/hr-backend-go/internal/domain/user"
	"github.com/managely-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrRefreshTokenRevoked), errors.Is(err, auth.ErrRefreshTokenNotFound):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrPasswordAlreadyChanged):
		Conflict(w, "Password has already been changed")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrStaffAccessRequired),
		errors.Is(err, user.ErrEmployeeAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrInvalidCurrentPassword):
		BadRequest(w, "Current password is incorrect", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeAlreadyActive),
		errors.Is(err, employee.ErrEmployeeAlreadyInactive):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")
	case errors.Is(err, employee.ErrEmployeeHasNoEmail),
		errors.Is(err, employee.ErrInvalidAvatar):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotCheckedIn),
		errors.Is(err, attendance.ErrInvalidTimeRange),
		errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this employee and month")
	case errors.Is(err, payroll.ErrPayslipNotAvailable):
		NotFound(w, "Payslip not available")
	case errors.Is(err, payroll.ErrUnsupportedPayslipType):
		BadRequest(w, err.Error(), nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrPerformanceNotFound):
		NotFound(w, "Performance record not found")
	case errors.Is(err, performance.ErrSkillScoreNotFound):
		NotFound(w, "Skill score not found")
	case errors.Is(err, performance.ErrFeedbackNotFound):
		NotFound(w, "Feedback not found")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrDocumentViewOnly):
		Forbidden(w, "Document is view only")
	case errors.Is(err, document.ErrUnsupportedFileType):
		BadRequest(w, "Unsupported file type", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
