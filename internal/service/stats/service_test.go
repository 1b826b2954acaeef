package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	total int64
	err   error
}

func (s *stubEmployeeRepo) CountAll(context.Context) (int64, error) {
	return s.total, s.err
}

func (s *stubEmployeeRepo) GetByID(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository

	present int64
	late    int64
	err     error
	gotDate time.Time
}

func (s *stubAttendanceRepo) CountByDate(_ context.Context, date time.Time) (int64, int64, error) {
	s.gotDate = date
	return s.present, s.late, s.err
}

func TestGetDailyStats(t *testing.T) {
	ctx := context.Background()
	attRepo := &stubAttendanceRepo{present: 6, late: 2}
	svc := NewStatsService(attRepo, &stubEmployeeRepo{total: 10}, clock.Fixed{})

	result, err := svc.GetDailyStats(ctx, "2024-03-11")

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.TotalEmployees)
	assert.Equal(t, int64(6), result.PresentToday)
	assert.Equal(t, int64(2), result.Late)
	assert.Equal(t, int64(4), result.OnLeave)
	assert.Equal(t, "2024-03-11", result.Date)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), attRepo.gotDate)
}

func TestGetDailyStats_DefaultsToToday(t *testing.T) {
	ctx := context.Background()
	attRepo := &stubAttendanceRepo{present: 1}
	clk := clock.Fixed{Instant: time.Date(2024, 3, 11, 14, 30, 0, 0, time.UTC)}
	svc := NewStatsService(attRepo, &stubEmployeeRepo{total: 3}, clk)

	result, err := svc.GetDailyStats(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", result.Date)
}

func TestGetDailyStats_MalformedDateFallsBackToToday(t *testing.T) {
	ctx := context.Background()
	clk := clock.Fixed{Instant: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)}
	svc := NewStatsService(&stubAttendanceRepo{}, &stubEmployeeRepo{total: 3}, clk)

	result, err := svc.GetDailyStats(ctx, "11-03-2024")

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", result.Date)
}

func TestGetDailyStats_NegativeOnLeave(t *testing.T) {
	ctx := context.Background()
	// more attendance records than registered employees; on_leave goes
	// negative rather than being clamped
	svc := NewStatsService(&stubAttendanceRepo{present: 5}, &stubEmployeeRepo{total: 3}, clock.Fixed{})

	result, err := svc.GetDailyStats(ctx, "2024-03-11")

	require.NoError(t, err)
	assert.Equal(t, int64(-2), result.OnLeave)
}

func TestGetDailyStats_RepoErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	svc := NewStatsService(&stubAttendanceRepo{err: boom}, &stubEmployeeRepo{total: 3}, clock.Fixed{})

	_, err := svc.GetDailyStats(ctx, "2024-03-11")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
