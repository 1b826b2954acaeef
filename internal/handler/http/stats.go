package http

import (
	"net/http"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/stats"
	"github.com/staffhub-id/attendance-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	GetDailyStats(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// GetDailyStats implements StatsHandler. An absent date parameter means
// today.
func (h *statsHandlerImpl) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.statsService.GetDailyStats(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
