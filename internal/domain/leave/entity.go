package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "Annual"
	LeaveTypeSick      LeaveType = "Sick"
	LeaveTypePersonal  LeaveType = "Personal"
	LeaveTypeMaternity LeaveType = "Maternity"
	LeaveTypeEmergency LeaveType = "Emergency"
)

// LeaveTypes lists every category in display order.
var LeaveTypes = []LeaveType{
	LeaveTypeAnnual,
	LeaveTypeSick,
	LeaveTypePersonal,
	LeaveTypeMaternity,
	LeaveTypeEmergency,
}

// Entitlements is the fixed annual allowance in days per category.
var Entitlements = map[LeaveType]int{
	LeaveTypeAnnual:    18,
	LeaveTypeSick:      8,
	LeaveTypePersonal:  5,
	LeaveTypeMaternity: 90,
	LeaveTypeEmergency: 5,
}

func (t LeaveType) Valid() bool {
	_, ok := Entitlements[t]
	return ok
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Statuses in lifecycle order.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Decision is a terminal status an administrator can move a request to.
func (s Status) Decision() bool {
	return s == StatusApproved || s == StatusRejected
}

type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    LeaveType
	NumberOfDays int
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	DecidedBy    *string
	DecidedAt    *time.Time
	CreatedAt    time.Time
}

// Balances maps each leave type to its remaining days. Values may be negative.
type Balances map[LeaveType]int
