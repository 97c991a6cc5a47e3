package service

import (
	"context"

	"campus_transport/internal/store"
)

// DashboardService backs the admin landing page.
type DashboardService struct {
	store store.Store
}

func (s *DashboardService) Counts(ctx context.Context) (store.Counts, error) {
	return s.store.Counts(ctx)
}
