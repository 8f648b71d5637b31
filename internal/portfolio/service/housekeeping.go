package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/foliohq/folio/internal/portfolio/store"
)

// HousekeepingService periodically sweeps old contact messages so the inbox
// table does not grow without bound, and reports how many pending invitations
// have lapsed past their expiry. Invitation rows are never deleted; their
// history is part of the audit trail and expiry is observed lazily on read.
type HousekeepingService struct {
	Store            store.Store
	Logger           *slog.Logger
	Interval         time.Duration
	ContactRetention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A non-positive
// interval defaults to 1 hour; a non-positive retention defaults to 90 days.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if retention <= 0 {
		retention = 90 * 24 * time.Hour
	}

	return &HousekeepingService{
		Store:            store,
		Logger:           logger,
		Interval:         interval,
		ContactRetention: retention,
		stopCh:           make(chan struct{}),
		doneCh:           make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to shut the
// worker down gracefully.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval,
		"contact_retention", s.ContactRetention,
	)
}

// Stop shuts down the background worker, blocking until any in-progress
// sweep has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep performs one housekeeping pass. The two steps are independent -
// a failure in one won't stop the other.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	now := time.Now().UTC()

	cutoff := now.Add(-s.ContactRetention)
	deleted, err := s.Store.Contacts().DeleteContactsBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to sweep old contact messages", "error", err)
	} else if deleted > 0 {
		s.Logger.Info("swept old contact messages", "deleted", deleted)
	}

	lapsed, err := s.Store.Invitations().CountExpiredPending(ctx, now)
	if err != nil {
		s.Logger.Error("failed to count lapsed invitations", "error", err)
	} else if lapsed > 0 {
		s.Logger.Info("pending invitations past expiry", "count", lapsed)
	}
}
