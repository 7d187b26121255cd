package analytics

import "context"

type AnalyticsService interface {
	Dashboard(ctx context.Context, month, year int) (DashboardResponse, error)
}
