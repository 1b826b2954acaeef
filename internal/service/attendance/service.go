package attendance

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/auth"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/clock"
)

// Punctuality cutoff: a clock-in strictly after 09:15 local time is
// late; exactly 09:15 is still on time.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 15
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	clk clock.Clock
	loc *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	clk clock.Clock,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		clk:                  clk,
		loc:                  loc,
	}
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, ident auth.Identity) (attendance.AttendanceResponse, error) {
	if ident.EmployeeID == "" {
		return attendance.AttendanceResponse{}, auth.ErrMissingEmployeeID
	}

	now := a.clk.Now().In(a.loc)
	today := dateOf(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, ident.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	status := attendance.StatusOnTime
	if isLate(now) {
		status = attendance.StatusLate
	}

	data := attendance.Attendance{
		EmployeeID: ident.EmployeeID,
		Date:       today,
		ClockIn:    &now,
		Status:     status,
	}

	// The pre-check above is not atomic with the insert; the unique
	// (employee_id, date) key is, and the repository reports a violation
	// as ErrAlreadyClockedIn.
	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.mapToResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, ident auth.Identity) (attendance.AttendanceResponse, error) {
	if ident.EmployeeID == "" {
		return attendance.AttendanceResponse{}, auth.ErrMissingEmployeeID
	}

	now := a.clk.Now().In(a.loc)
	today := dateOf(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, ident.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}
	if existing == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedInYet
	}
	if existing.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	// First write wins; a concurrent clock-out surfaces as
	// ErrAlreadyClockedOut from the repository.
	if err := a.AttendanceRepository.SetClockOut(ctx, existing.ID, now); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing.ClockOut = &now
	return a.mapToResponse(*existing), nil
}

// UpdateAttendance implements attendance.AttendanceService. This lets an
// admin fix attendance data: wrong clock times, employee forgot to clock
// in/out, leave statuses, etc.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Supplied, non-empty fields overwrite; everything else falls back
	// to the stored value.
	if req.Status != nil && *req.Status != "" {
		att.Status = attendance.Status(strings.ToLower(*req.Status))
	}
	if req.ClockIn != nil && *req.ClockIn != "" {
		t := a.combineDateTime(att.Date, *req.ClockIn)
		att.ClockIn = &t
	}
	if req.ClockOut != nil && *req.ClockOut != "" {
		t := a.combineDateTime(att.Date, *req.ClockOut)
		att.ClockOut = &t
	}
	if req.TotalHours != nil && *req.TotalHours != "" {
		att.TotalHours = req.TotalHours
	}

	if err := a.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get updated attendance: %w", err)
	}

	return a.mapToResponse(updated), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, ident auth.Identity, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if ident.EmployeeID == "" {
		return attendance.ListAttendanceResponse{}, auth.ErrMissingEmployeeID
	}

	attendances, total, err := a.AttendanceRepository.GetMyAttendance(ctx, ident.EmployeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get my attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, a.mapToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages(total, filter.Limit),
		Attendances: responses,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, a.mapToResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages(total, filter.Limit),
		Attendances: responses,
	}, nil
}

// isLate applies the punctuality rule to a local instant.
func isLate(now time.Time) bool {
	return now.Hour() > lateCutoffHour ||
		(now.Hour() == lateCutoffHour && now.Minute() > lateCutoffMinute)
}

// dateOf truncates an instant to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// combineDateTime places an HH:MM (or HH:MM:SS) wall time on the
// record's calendar day in the service's location.
func (a *AttendanceServiceImpl) combineDateTime(date time.Time, timeStr string) time.Time {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		t, _ = time.Parse("15:04:05", timeStr)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, a.loc)
}

func totalPages(total int64, limit int) int {
	if limit == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// mapToResponse converts an Attendance entity to AttendanceResponse,
// rendering instants as wall times in the service's location.
func (a *AttendanceServiceImpl) mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  att.EmployeeName,
		EmployeeEmail: att.EmployeeEmail,
		Date:          att.Date.Format("2006-01-02"),
		ClockIn:       a.formatTime(att.ClockIn),
		ClockOut:      a.formatTime(att.ClockOut),
		Status:        string(att.Status),
		TotalHours:    att.TotalHours,
		CreatedAt:     att.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     att.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatTime safely converts a *time.Time to an "HH:MM" string.
func (a *AttendanceServiceImpl) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(a.loc).Format("15:04")
	return &formatted
}
