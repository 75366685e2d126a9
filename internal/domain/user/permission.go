package user

type Permission string

const (
	// Self service
	PermissionViewOwnProfile    Permission = "profile.view_own"
	PermissionEditOwnProfile    Permission = "profile.edit_own"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCheckIn Permission = "attendance.check_in"
	PermissionLeaveViewOwn      Permission = "leave.view_own"
	PermissionLeaveCreate       Permission = "leave.create"
	PermissionPayrollViewOwn    Permission = "payroll.view_own"
	PermissionPerformanceOwn    Permission = "performance.view_own"
	PermissionProjectViewOwn    Permission = "project.view_own"
	PermissionDocumentViewOwn   Permission = "document.view_own"
	PermissionDashboardViewOwn  Permission = "dashboard.view_own"

	// Back office
	PermissionEmployeeViewAll   Permission = "employee.view_all"
	PermissionEmployeeManage    Permission = "employee.manage"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceManage  Permission = "attendance.manage"
	PermissionLeaveViewAll      Permission = "leave.view_all"
	PermissionLeaveApprove      Permission = "leave.approve"
	PermissionDocumentManage    Permission = "document.manage"
	PermissionPayrollManage     Permission = "payroll.manage"
	PermissionPerformanceManage Permission = "performance.manage"
	PermissionProjectManage     Permission = "project.manage"
	PermissionDashboardView     Permission = "dashboard.view"
	PermissionSettingsManage    Permission = "settings.manage"
)

var selfService = []Permission{
	PermissionViewOwnProfile,
	PermissionEditOwnProfile,
	PermissionAttendanceViewOwn,
	PermissionAttendanceCheckIn,
	PermissionLeaveViewOwn,
	PermissionLeaveCreate,
	PermissionPayrollViewOwn,
	PermissionPerformanceOwn,
	PermissionProjectViewOwn,
	PermissionDocumentViewOwn,
	PermissionDashboardViewOwn,
}

var peopleOps = []Permission{
	PermissionEmployeeViewAll,
	PermissionEmployeeManage,
	PermissionAttendanceViewAll,
	PermissionAttendanceManage,
	PermissionLeaveViewAll,
	PermissionLeaveApprove,
	PermissionDocumentManage,
	PermissionDashboardView,
	PermissionSettingsManage,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: append(append([]Permission{}, peopleOps...),
		PermissionPayrollManage,
		PermissionPerformanceManage,
		PermissionProjectManage,
	),
	RoleHR:       peopleOps,
	RoleEmployee: selfService,
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
