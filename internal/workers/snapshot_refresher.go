package workers

import (
	"context"
	"time"

	"log/slog"

	"github.com/Dipanshu93198/DRS/internal/domain"
)

type SOSLister interface {
	ListActive(ctx context.Context, limit int) ([]domain.SOSReport, error)
}

type SOSSnapshot interface {
	SetActive(ctx context.Context, reports []domain.SOSReport, ttl time.Duration) error
}

// SnapshotRefresher keeps the active-reports snapshot warm so the map
// view's cluster and nearby polls rarely miss. Write-path invalidation
// still happens in the service; this worker only repopulates.
type SnapshotRefresher struct {
	logger   *slog.Logger
	reports  SOSLister
	cache    SOSSnapshot
	interval time.Duration
	ttl      time.Duration
}

func NewSnapshotRefresher(logger *slog.Logger, reports SOSLister, cache SOSSnapshot, interval, ttl time.Duration) *SnapshotRefresher {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SnapshotRefresher{
		logger:   logger,
		reports:  reports,
		cache:    cache,
		interval: interval,
		ttl:      ttl,
	}
}

func (w *SnapshotRefresher) Run(ctx context.Context) {
	w.logger.Info("snapshot refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("snapshot refresher stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *SnapshotRefresher) refresh(ctx context.Context) {
	reports, err := w.reports.ListActive(ctx, 0)
	if err != nil {
		w.logger.Warn("snapshot refresh read failed", slog.Any("error", err))
		return
	}
	if err := w.cache.SetActive(ctx, reports, w.ttl); err != nil {
		w.logger.Warn("snapshot refresh write failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("snapshot refreshed", slog.Int("count", len(reports)))
}
