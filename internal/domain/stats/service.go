package stats

import "context"

// StatsService derives same-day attendance counts from the attendance
// store plus the employee directory headcount.
type StatsService interface {
	// GetDailyStats computes stats for the given YYYY-MM-DD date; an
	// empty date means today.
	GetDailyStats(ctx context.Context, date string) (DailyStatsResponse, error)
}
