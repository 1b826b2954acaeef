package stats

// DailyStatsResponse is the same-day attendance summary for the admin
// dashboard. OnLeave is TotalEmployees minus PresentToday and is NOT
// clamped: a negative value means attendance records outnumber the
// registered headcount (e.g. records kept for since-deleted employees)
// and should be read as a data-integrity signal, not a count.
type DailyStatsResponse struct {
	TotalEmployees int64  `json:"total_employees"`
	PresentToday   int64  `json:"present_today"`
	Late           int64  `json:"late"`
	OnLeave        int64  `json:"on_leave"`
	Date           string `json:"date"` // YYYY-MM-DD
}
