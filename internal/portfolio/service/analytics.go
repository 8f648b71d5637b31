package service

import (
	"context"
	"time"

	"github.com/foliohq/folio/internal/portfolio/domain"
	"github.com/foliohq/folio/internal/portfolio/store"
)

// recentWindow is the activity window for the "recent" dashboard counters.
const recentWindow = 30 * 24 * time.Hour

type AnalyticsService struct {
	Store store.Store
}

// Summary computes the dashboard snapshot: entity totals plus counts of rows
// created within the last 30 days.
func (s *AnalyticsService) Summary(ctx context.Context) (domain.AnalyticsSummary, error) {
	since := time.Now().UTC().Add(-recentWindow)
	return s.Store.Analytics().Summary(ctx, since)
}
