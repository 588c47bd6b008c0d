package analytics

import "context"

type AnalyticsService interface {
	// Get is admin only.
	Get(ctx context.Context) (AnalyticsResponse, error)
}
