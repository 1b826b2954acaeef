package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/employee"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/stats"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type StatsServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clk            clock.Clock
}

func NewStatsService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) stats.StatsService {
	return &StatsServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clk:            clk,
	}
}

// GetDailyStats implements stats.StatsService. The two counts run in
// parallel; both are point-in-time reads, so a write landing between
// them can undercount a request and is tolerated.
func (s *StatsServiceImpl) GetDailyStats(ctx context.Context, date string) (stats.DailyStatsResponse, error) {
	day := s.parseDate(date)

	var (
		totalEmployees int64
		present        int64
		late           int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.employeeRepo.CountAll(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		present, late, err = s.attendanceRepo.CountByDate(gCtx, day)
		return err
	})

	if err := g.Wait(); err != nil {
		return stats.DailyStatsResponse{}, fmt.Errorf("failed to compute daily stats: %w", err)
	}

	// on_leave = headcount - present, deliberately unclamped: negative
	// means records outnumber registered employees.
	return stats.DailyStatsResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   present,
		Late:           late,
		OnLeave:        totalEmployees - present,
		Date:           day.Format("2006-01-02"),
	}, nil
}

// parseDate parses YYYY-MM-DD, defaulting to the clock's today.
func (s *StatsServiceImpl) parseDate(date string) time.Time {
	now := s.clk.Now()
	if date != "" {
		if parsed, err := time.Parse("2006-01-02", date); err == nil {
			now = parsed
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
