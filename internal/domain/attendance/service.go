package attendance

import (
	"context"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/auth"
)

// AttendanceService enforces the daily clock-in/clock-out state machine.
// It is the only writer of the attendance store.
type AttendanceService interface {
	// ClockIn creates today's record for the caller; status follows the
	// 09:15 punctuality cutoff. Fails with ErrAlreadyClockedIn when a
	// record for (employee, today) already exists.
	ClockIn(ctx context.Context, ident auth.Identity) (AttendanceResponse, error)

	// ClockOut stamps clock_out on today's record. Fails with
	// ErrNotClockedInYet or ErrAlreadyClockedOut.
	ClockOut(ctx context.Context, ident auth.Identity) (AttendanceResponse, error)

	// UpdateAttendance is the administrative correction: any supplied
	// non-empty field overwrites the stored one, everything else keeps
	// its prior value.
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// GetMyAttendance lists the caller's own records
	GetMyAttendance(ctx context.Context, ident auth.Identity, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// ListAttendance lists all records with employee name/email joined
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
