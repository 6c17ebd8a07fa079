package dashboard

import "context"

// DashboardService computes the admin team overview.
type DashboardService interface {
	// GetTeamOverview aggregates all users' attendance over the inclusive
	// [startDate, endDate] range (zero-padded YYYY-MM-DD).
	GetTeamOverview(ctx context.Context, startDate, endDate string) (TeamStats, error)
}
