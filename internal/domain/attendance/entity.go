package attendance

import (
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	Status     Status
	TotalHours *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from employees for admin views
	EmployeeName  *string
	EmployeeEmail *string
}

type Status string

const (
	StatusOnTime    Status = "on_time"
	StatusLate      Status = "late"
	StatusAbsent    Status = "absent"
	StatusPermit    Status = "permit"
	StatusSickLeave Status = "sick_leave"
)

// ValidStatuses lists every accepted attendance status value.
var ValidStatuses = []string{
	string(StatusOnTime),
	string(StatusLate),
	string(StatusAbsent),
	string(StatusPermit),
	string(StatusSickLeave),
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOnTime, StatusLate, StatusAbsent, StatusPermit, StatusSickLeave:
		return true
	}
	return false
}
