package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Create relies on the unique (employee_id, date) key and reports a
// violation as ErrAlreadyClockedIn; SetClockOut writes clock_out only when
// it is still unset and reports ErrAlreadyClockedOut otherwise. Both keep
// the one-record-per-day invariant under concurrent calls.
type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance record with employee fields joined
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a date.
	// Used to prevent double clock-in; returns nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetClockOut writes clock_out on the record iff it is still unset
	SetClockOut(ctx context.Context, id string, clockOut time.Time) error

	// Update overwrites status/clock_in/clock_out/total_hours on a record
	Update(ctx context.Context, att Attendance) error

	// List retrieves records with filters and pagination, employee joined
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// GetMyAttendance retrieves records for a single employee
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// CountByDate returns present and late counts for a calendar day
	CountByDate(ctx context.Context, date time.Time) (present int64, late int64, err error)
}
