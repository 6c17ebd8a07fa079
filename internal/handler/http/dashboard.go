package http

import (
	"log/slog"
	"net/http"

	"github.com/checkmate-hq/checkmate-backend-go/internal/domain/dashboard"
	"github.com/checkmate-hq/checkmate-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetTeamOverview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetTeamOverview implements DashboardHandler.
func (h *DashboardHandlerImpl) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	stats, err := h.dashboardService.GetTeamOverview(r.Context(), startDate, endDate)
	if err != nil {
		slog.Error("GetTeamOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
